// Package assistant provides the chat and quiz panel for the TUI.
//
// Every open of the panel starts a new session with its own context and
// generation number. Replies, quizzes and transcripts are tagged with the
// generation that requested them and dropped when it is no longer current.
package assistant

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/adapters/driving/tui/components/input"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/adapters/driving/tui/keymap"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/adapters/driving/tui/messages"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/adapters/driving/tui/styles"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/domain"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/ports/driving"
)

// Tab is a panel tab.
type Tab int

const (
	// TabChat is the assistant conversation.
	TabChat Tab = iota
	// TabQuiz is the quiz generator.
	TabQuiz
)

// UnsupportedNotice is shown when voice input cannot be used.
const UnsupportedNotice = "عذراً، التعرف على الصوت غير مدعوم في هذا الجهاز. اضغط أي مفتاح للمتابعة."

// Services holds the ports the panel uses. Quiz, Actions and Speech may be nil.
type Services struct {
	Assistant driving.AssistantService
	Quiz      driving.QuizService
	Actions   driving.ActionService
	Speech    driving.SpeechService
}

// View is the assistant panel.
type View struct {
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	services Services

	parent     context.Context
	ctx        context.Context
	cancel     context.CancelFunc
	generation uint64

	tab       Tab
	chat      []domain.ChatMessage
	chatInput *input.TextInput
	quizInput *input.TextInput
	spinner   spinner.Model
	pending   bool
	listening bool
	notice    string
	current   domain.TopicID

	questions []domain.QuizQuestion
	quizTopic domain.TopicID
	answers   map[int]int
	cursor    int

	width  int
	height int
}

// NewView creates a new assistant panel.
func NewView(s *styles.Styles, km *keymap.KeyMap, svc Services) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	sp := spinner.New(spinner.WithSpinner(spinner.Dot))
	sp.Style = lipgloss.NewStyle().Foreground(s.Theme().Primary)

	return &View{
		styles:    s,
		keymap:    km,
		services:  svc,
		parent:    context.Background(),
		ctx:       context.Background(),
		cancel:    func() {},
		chatInput: input.New(s, "سؤالك: ", "اكتب سؤالك هنا..."),
		quizInput: input.New(s, "موضوع: ", "اكتب موضوع الكويز أو اتركه فارغاً للموضوع الحالي"),
		spinner:   sp,
		answers:   map[int]int{},
		width:     80,
		height:    24,
	}
}

// WithContext sets the parent context of every panel session.
func (v *View) WithContext(ctx context.Context) *View {
	v.parent = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Open starts a new session for the given current topic.
func (v *View) Open(current domain.TopicID) tea.Cmd {
	v.cancel()
	v.ctx, v.cancel = context.WithCancel(v.parent)
	v.generation++

	v.current = current
	v.tab = TabChat
	v.chat = []domain.ChatMessage{v.welcome()}
	v.pending = false
	v.listening = false
	v.notice = ""
	v.questions = nil
	v.quizTopic = ""
	v.answers = map[int]int{}
	v.cursor = 0
	v.chatInput.Reset()
	v.quizInput.Reset()
	v.quizInput.Blur()
	return v.chatInput.Focus()
}

// Close ends the session. In-flight work is cancelled and its results dropped.
func (v *View) Close() {
	v.cancel()
	v.generation++
	v.pending = false
	v.listening = false
}

func (v *View) welcome() domain.ChatMessage {
	if v.services.Assistant != nil {
		return v.services.Assistant.Welcome()
	}
	return domain.ChatMessage{Role: domain.RoleAssistant, Text: domain.WelcomeText}
}

// Update handles messages for the panel.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return v.handleKey(msg)

	case messages.ReplyReceived:
		if msg.Generation != v.generation {
			return v, nil
		}
		v.pending = false
		if msg.Err != nil {
			v.chat = append(v.chat, domain.FallbackReply().Message())
			return v, nil
		}
		v.chat = append(v.chat, msg.Reply.Message())
		return v, nil

	case messages.QuizReady:
		if msg.Generation != v.generation {
			return v, nil
		}
		v.pending = false
		if msg.Err != nil {
			return v, errorCmd(msg.Err)
		}
		v.questions = msg.Questions
		v.quizTopic = msg.TopicID
		v.answers = map[int]int{}
		v.cursor = 0
		return v, nil

	case messages.SpeechHeard:
		if msg.Generation != v.generation {
			return v, nil
		}
		v.listening = false
		switch {
		case errors.Is(msg.Err, domain.ErrSpeechUnsupported):
			v.notice = UnsupportedNotice
		case msg.Err != nil:
			// failed or empty captures reset quietly
		default:
			v.activeInput().SetValue(msg.Text)
		}
		return v, nil

	case spinner.TickMsg:
		if !v.pending && !v.listening {
			return v, nil
		}
		var cmd tea.Cmd
		v.spinner, cmd = v.spinner.Update(msg)
		return v, cmd
	}

	var cmd tea.Cmd
	in := v.activeInput()
	_, cmd = in.Update(msg)
	return v, cmd
}

//nolint:gocyclo // key dispatch
func (v *View) handleKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	if v.notice != "" {
		v.notice = ""
		return v, nil
	}

	switch {
	case key.Matches(msg, v.keymap.Back):
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewGuide}
		}

	case key.Matches(msg, v.keymap.Tab):
		v.switchTab()
		return v, nil

	case key.Matches(msg, v.keymap.Listen):
		return v, v.listen()

	case key.Matches(msg, v.keymap.GoToTopic):
		if id := v.LastTarget(); id != "" {
			return v, func() tea.Msg {
				return messages.TopicSelected{ID: id}
			}
		}
		return v, nil

	case msg.String() == "ctrl+y":
		if v.tab == TabQuiz {
			return v, v.copyQuiz()
		}
		return v, nil

	case v.tab == TabQuiz && msg.Type == tea.KeyUp:
		if v.cursor > 0 {
			v.cursor--
		}
		return v, nil

	case v.tab == TabQuiz && msg.Type == tea.KeyDown:
		if v.cursor < v.optionCount()-1 {
			v.cursor++
		}
		return v, nil

	case msg.Type == tea.KeyEnter:
		return v, v.submit()
	}

	var cmd tea.Cmd
	_, cmd = v.activeInput().Update(msg)
	return v, cmd
}

func (v *View) switchTab() {
	if v.tab == TabChat {
		v.tab = TabQuiz
		v.chatInput.Blur()
		v.quizInput.Focus()
		return
	}
	v.tab = TabChat
	v.quizInput.Blur()
	v.chatInput.Focus()
}

func (v *View) activeInput() *input.TextInput {
	if v.tab == TabQuiz {
		return v.quizInput
	}
	return v.chatInput
}

// submit sends the chat question, generates a quiz, or answers the
// question under the cursor when the quiz input is empty.
func (v *View) submit() tea.Cmd {
	if v.tab == TabQuiz {
		text := strings.TrimSpace(v.quizInput.Value())
		if text == "" && len(v.questions) > 0 {
			v.answer()
			return nil
		}
		return v.generateQuiz(text)
	}

	text := strings.TrimSpace(v.chatInput.Value())
	if text == "" || v.pending || v.services.Assistant == nil {
		return nil
	}
	v.chatInput.Reset()
	v.chat = append(v.chat, domain.ChatMessage{Role: domain.RoleUser, Text: text})
	v.pending = true

	ctx, gen, current := v.ctx, v.generation, v.current
	svc := v.services.Assistant
	return tea.Batch(v.spinner.Tick, func() tea.Msg {
		reply, err := svc.Ask(ctx, text, current)
		return messages.ReplyReceived{Generation: gen, Reply: reply, Err: err}
	})
}

func (v *View) generateQuiz(text string) tea.Cmd {
	if v.pending || v.services.Quiz == nil {
		return nil
	}
	v.quizInput.Reset()
	v.pending = true

	ctx, gen, current := v.ctx, v.generation, v.current
	svc := v.services.Quiz
	return tea.Batch(v.spinner.Tick, func() tea.Msg {
		questions, id, err := svc.ForText(ctx, text, current)
		return messages.QuizReady{Generation: gen, TopicID: id, Questions: questions, Err: err}
	})
}

// answer records the option under the cursor for its question.
func (v *View) answer() {
	q, o := v.position(v.cursor)
	if q < 0 {
		return
	}
	if _, done := v.answers[q]; done {
		return
	}
	v.answers[q] = o
}

// position maps the flat cursor to a question and option index.
func (v *View) position(cursor int) (question, option int) {
	for i := range v.questions {
		n := len(v.questions[i].Options)
		if cursor < n {
			return i, cursor
		}
		cursor -= n
	}
	return -1, -1
}

func (v *View) optionCount() int {
	n := 0
	for i := range v.questions {
		n += len(v.questions[i].Options)
	}
	return n
}

func (v *View) listen() tea.Cmd {
	if v.services.Speech == nil || !v.services.Speech.Supported() {
		v.notice = UnsupportedNotice
		return nil
	}
	if v.listening {
		return nil
	}
	v.listening = true

	ctx, gen := v.ctx, v.generation
	svc := v.services.Speech
	return tea.Batch(v.spinner.Tick, func() tea.Msg {
		text, err := svc.Listen(ctx)
		return messages.SpeechHeard{Generation: gen, Text: text, Err: err}
	})
}

func (v *View) copyQuiz() tea.Cmd {
	if v.services.Actions == nil || len(v.questions) == 0 {
		return nil
	}
	ctx := v.ctx
	questions := v.questions
	svc := v.services.Actions
	return func() tea.Msg {
		return messages.Copied{Label: "الكويز", Err: svc.CopyQuiz(ctx, questions)}
	}
}

func errorCmd(err error) tea.Cmd {
	return func() tea.Msg {
		return messages.ErrorOccurred{Err: err}
	}
}

// View renders the panel.
func (v *View) View() string {
	if v.notice != "" {
		return lipgloss.Place(v.width, v.height, lipgloss.Center, lipgloss.Center,
			v.styles.Notice.Width(min(v.width-4, 60)).Render(v.notice))
	}

	var body string
	if v.tab == TabQuiz {
		body = v.renderQuiz()
	} else {
		body = v.renderChat()
	}

	status := ""
	switch {
	case v.listening:
		status = v.spinner.View() + " جارٍ الاستماع..."
	case v.pending && v.tab == TabQuiz:
		status = v.spinner.View() + " جارٍ إعداد الكويز..."
	case v.pending:
		status = v.spinner.View() + " المساعد يكتب..."
	}

	parts := []string{v.renderHeader(), body, v.styles.Muted.Render(status), v.activeInput().View()}
	return v.styles.Border.
		Width(max(v.width-2, 20)).
		Align(lipgloss.Right).
		Render(strings.Join(parts, "\n\n"))
}

func (v *View) renderHeader() string {
	chat, quiz := v.styles.Muted.Render("المساعد"), v.styles.Muted.Render("الكويز")
	if v.tab == TabQuiz {
		quiz = v.styles.Title.Underline(true).Render("الكويز")
	} else {
		chat = v.styles.Title.Underline(true).Render("المساعد")
	}
	scope := "بدون موضوع"
	if v.current != "" {
		scope = "الموضوع الحالي: " + v.current.String()
	}
	return quiz + "  |  " + chat + "\n" + v.styles.Muted.Render(scope)
}

func (v *View) renderChat() string {
	lines := make([]string, 0, len(v.chat))
	for _, m := range v.chat {
		if m.Role == domain.RoleUser {
			lines = append(lines, v.styles.Subtitle.Render(m.Text+" :أنت"))
			continue
		}
		line := v.styles.Normal.Render(m.Text + " :المساعد")
		if m.HasTarget() {
			line += "\n" + v.styles.Muted.Render(fmt.Sprintf("(ctrl+g) انتقل إلى %s", m.TopicID))
		}
		lines = append(lines, line)
	}

	// Keep the latest messages when the history outgrows the panel
	if keep := max(v.height/3, 3); len(lines) > keep {
		lines = lines[len(lines)-keep:]
	}
	return strings.Join(lines, "\n")
}

func (v *View) renderQuiz() string {
	if len(v.questions) == 0 {
		return v.styles.Muted.Render("اضغط enter لإنشاء كويز من الموضوع الحالي")
	}

	var b strings.Builder
	if v.quizTopic != "" {
		b.WriteString(v.styles.Muted.Render("من موضوع: "+v.quizTopic.String()) + "\n\n")
	}
	flat := 0
	for qi := range v.questions {
		q := &v.questions[qi]
		b.WriteString(v.styles.Subtitle.Render(fmt.Sprintf("%s .%d", q.Question, qi+1)) + "\n")
		chosen, answered := v.answers[qi]
		for oi, opt := range q.Options {
			marker := "  "
			if flat == v.cursor {
				marker = " ◂"
			}
			style := v.styles.Normal
			switch {
			case answered && q.IsCorrect(opt):
				style = v.styles.Success
				opt += " ✓"
			case answered && oi == chosen:
				style = v.styles.Error
				opt += " ✗"
			case flat == v.cursor:
				style = v.styles.Selected
			}
			b.WriteString(style.Render(opt) + marker + "\n")
			flat++
		}
		b.WriteString("\n")
	}
	b.WriteString(v.styles.Muted.Render(fmt.Sprintf("النتيجة: %d / %d   (ctrl+y نسخ)", v.Score(), len(v.questions))))
	return b.String()
}

// Score counts correctly answered questions.
func (v *View) Score() int {
	n := 0
	for qi, oi := range v.answers {
		q := &v.questions[qi]
		if q.IsCorrect(q.Options[oi]) {
			n++
		}
	}
	return n
}

// LastTarget returns the topic of the latest assistant reply that has one.
func (v *View) LastTarget() domain.TopicID {
	for i := len(v.chat) - 1; i >= 0; i-- {
		if v.chat[i].Role == domain.RoleAssistant && v.chat[i].HasTarget() {
			return v.chat[i].TopicID
		}
	}
	return ""
}

// Generation returns the current session number.
func (v *View) Generation() uint64 {
	return v.generation
}

// Messages returns the chat history.
func (v *View) Messages() []domain.ChatMessage {
	return v.chat
}

// Questions returns the current quiz.
func (v *View) Questions() []domain.QuizQuestion {
	return v.questions
}

// Tab returns the active tab.
func (v *View) Tab() Tab {
	return v.tab
}

// Pending reports whether a reply or quiz is awaited.
func (v *View) Pending() bool {
	return v.pending
}

// Listening reports whether a voice capture is running.
func (v *View) Listening() bool {
	return v.listening
}

// Notice returns the blocking notice, if any.
func (v *View) Notice() string {
	return v.notice
}

// SetStyles replaces the styles after a theme change.
func (v *View) SetStyles(s *styles.Styles) {
	v.styles = s
	v.chatInput.SetStyles(s)
	v.quizInput.SetStyles(s)
	v.spinner.Style = lipgloss.NewStyle().Foreground(s.Theme().Primary)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.chatInput.SetWidth(width - 6)
	v.quizInput.SetWidth(width - 6)
}
