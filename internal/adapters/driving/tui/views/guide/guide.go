// Package guide provides the topic page: checklist, FAQ, tips and
// navigation to neighbouring topics.
package guide

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/adapters/driving/markdown"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/adapters/driving/tui/keymap"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/adapters/driving/tui/messages"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/adapters/driving/tui/styles"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/domain"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/ports/driving"
)

// View renders the active topic.
type View struct {
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	catalog  driving.CatalogService
	progress driving.ProgressService
	feedback driving.FeedbackService
	actions  driving.ActionService
	ctx      context.Context

	topic   *domain.Topic
	checked domain.CheckedSteps
	cursor  int
	voted   domain.Vote
	focused bool

	// Toggle replies can arrive in any order. While more than one toggle is
	// in flight no reply is trusted; the last one triggers a reload.
	pending    int
	overlapped bool

	viewport viewport.Model
	width    int
	height   int
}

// NewView creates a new topic page view. feedback and actions may be nil.
func NewView(
	s *styles.Styles,
	km *keymap.KeyMap,
	catalog driving.CatalogService,
	progress driving.ProgressService,
	feedback driving.FeedbackService,
	actions driving.ActionService,
) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:   s,
		keymap:   km,
		catalog:  catalog,
		progress: progress,
		feedback: feedback,
		actions:  actions,
		ctx:      context.Background(),
		focused:  true,
		viewport: viewport.New(60, 20),
		width:    60,
		height:   20,
	}
}

// WithContext sets the context for service calls.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// SetTopic opens a topic and returns the command that loads its progress.
func (v *View) SetTopic(t *domain.Topic) tea.Cmd {
	v.topic = t
	v.checked = nil
	v.cursor = 0
	v.voted = ""
	v.pending, v.overlapped = 0, false
	v.viewport.SetYOffset(0)
	if t == nil {
		return nil
	}
	return v.loadProgress(t.ID)
}

// Topic returns the open topic.
func (v *View) Topic() *domain.Topic {
	return v.topic
}

// Checked returns the checked steps of the open topic.
func (v *View) Checked() domain.CheckedSteps {
	return v.checked
}

// TogglesPending reports how many toggles have not been answered yet.
func (v *View) TogglesPending() int {
	return v.pending
}

// Cursor returns the checklist cursor. Steps come first, then FAQ items.
func (v *View) Cursor() int {
	return v.cursor
}

// Update handles messages for the topic page.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case messages.ProgressLoaded:
		if v.isOpen(msg.TopicID) && msg.Err == nil {
			v.checked = msg.Checked
		}
		return v, nil

	case messages.StepToggled:
		if !v.isOpen(msg.TopicID) {
			return v, nil
		}
		v.pending = max(v.pending-1, 0)
		if v.pending > 0 {
			return v, nil
		}
		if v.overlapped {
			v.overlapped = false
			return v, v.loadProgress(msg.TopicID)
		}
		if msg.Err == nil {
			v.checked = msg.Checked
		}
		return v, nil

	case messages.FeedbackSent:
		if v.isOpen(msg.TopicID) && msg.Err == nil {
			v.voted = msg.Vote
		}
		return v, nil

	case tea.MouseMsg:
		var cmd tea.Cmd
		v.viewport, cmd = v.viewport.Update(msg)
		return v, cmd

	case tea.KeyMsg:
		if !v.focused || v.topic == nil {
			return v, nil
		}
		return v.handleKey(msg)
	}

	return v, nil
}

func (v *View) handleKey(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch {
	case key.Matches(msg, v.keymap.Up):
		if v.cursor > 0 {
			v.cursor--
		}
	case key.Matches(msg, v.keymap.Down):
		if v.cursor < v.itemCount()-1 {
			v.cursor++
		}
	case key.Matches(msg, v.keymap.Toggle):
		if v.cursor < v.topic.StepCount() {
			return v, v.toggle(v.topic.ID, v.cursor)
		}
	case key.Matches(msg, v.keymap.Copy):
		if i := v.cursor - v.topic.StepCount(); i >= 0 && i < len(v.topic.FAQ) {
			return v, v.copyFAQ(v.topic.FAQ[i])
		}
	case key.Matches(msg, v.keymap.Helpful):
		return v, v.vote(domain.VoteUp)
	case key.Matches(msg, v.keymap.NotHelpful):
		return v, v.vote(domain.VoteDown)
	case key.Matches(msg, v.keymap.NextTopic):
		_, next := v.catalog.Neighbours(v.topic.ID)
		return v, selectTopic(next)
	case key.Matches(msg, v.keymap.PrevTopic):
		prev, _ := v.catalog.Neighbours(v.topic.ID)
		return v, selectTopic(prev)
	}
	return v, nil
}

func (v *View) isOpen(id domain.TopicID) bool {
	return v.topic != nil && v.topic.ID == id
}

func (v *View) itemCount() int {
	return v.topic.StepCount() + len(v.topic.FAQ)
}

func (v *View) loadProgress(id domain.TopicID) tea.Cmd {
	ctx := v.ctx
	return func() tea.Msg {
		checked, err := v.progress.Load(ctx, id)
		return messages.ProgressLoaded{TopicID: id, Checked: checked, Err: err}
	}
}

func (v *View) toggle(id domain.TopicID, index int) tea.Cmd {
	v.pending++
	if v.pending > 1 {
		v.overlapped = true
	}
	ctx := v.ctx
	return func() tea.Msg {
		checked, complete, err := v.progress.Toggle(ctx, id, index)
		return messages.StepToggled{TopicID: id, Index: index, Checked: checked, Complete: complete, Err: err}
	}
}

func (v *View) copyFAQ(item domain.FAQItem) tea.Cmd {
	if v.actions == nil {
		return nil
	}
	ctx := v.ctx
	return func() tea.Msg {
		return messages.Copied{Label: item.Question, Err: v.actions.CopyFAQ(ctx, item)}
	}
}

func (v *View) vote(vote domain.Vote) tea.Cmd {
	if v.feedback == nil || v.voted != "" {
		return nil
	}
	ctx := v.ctx
	id := v.topic.ID
	return func() tea.Msg {
		_, err := v.feedback.Vote(ctx, id, vote)
		return messages.FeedbackSent{TopicID: id, Vote: vote, Err: err}
	}
}

func selectTopic(t *domain.Topic) tea.Cmd {
	if t == nil {
		return nil
	}
	id := t.ID
	return func() tea.Msg {
		return messages.TopicSelected{ID: id}
	}
}

// View renders the topic page.
func (v *View) View() string {
	if v.topic == nil {
		return v.styles.Muted.Render("لا توجد مواضيع")
	}

	lines, cursorLine := v.render()
	v.viewport.SetContent(v.styles.Page.Width(v.width).Render(strings.Join(lines, "\n")))

	// Keep the cursor in view
	if cursorLine >= 0 {
		if cursorLine < v.viewport.YOffset {
			v.viewport.SetYOffset(cursorLine)
		} else if cursorLine >= v.viewport.YOffset+v.viewport.Height {
			v.viewport.SetYOffset(cursorLine - v.viewport.Height + 1)
		}
	}
	return v.viewport.View()
}

// render builds the page lines and returns the line holding the cursor.
//
//nolint:funlen // one section per block
func (v *View) render() ([]string, int) {
	t := v.topic
	accent := v.styles.Accent(t.Color)
	cursorLine := -1
	lines := []string{
		accent.Render(t.Title + " " + styles.Icon(t.Icon)),
		v.styles.Muted.Render(t.Description),
	}

	if t.StepCount() > 0 {
		lines = append(lines, "", v.styles.Subtitle.Render(
			fmt.Sprintf("%s (%d / %d مكتمل)", markdown.StepsHeading, v.checked.Count(), t.StepCount()),
		))
		for i, step := range t.Steps {
			if i == v.cursor {
				cursorLine = len(lines)
			}
			lines = append(lines, v.renderStep(i, step))
		}
	}

	if t.HasFAQ() {
		lines = append(lines, "", v.styles.Subtitle.Render(markdown.FAQHeading))
		for i, item := range t.FAQ {
			marker := "  "
			question := v.styles.Normal.Bold(true).Render(item.Question)
			if t.StepCount()+i == v.cursor {
				cursorLine = len(lines)
				marker = " ◂"
				question = v.styles.Selected.Render(item.Question)
			}
			lines = append(lines, question+marker, v.styles.Muted.Render(item.Answer)+"  ")
		}
	}

	if t.HasTips() {
		lines = append(lines, "", v.styles.Subtitle.Render(markdown.TipsHeading))
		for _, tip := range t.Tips {
			lines = append(lines, v.styles.Warning.Render(tip+" ★"))
		}
	}

	lines = append(lines, "", v.renderFeedback(), v.renderNeighbours())
	return lines, cursorLine
}

func (v *View) renderStep(i int, step string) string {
	box := "☐"
	text := v.styles.Normal.Render(step)
	if v.checked.Contains(i) {
		box = v.styles.Success.Render("☑")
		text = v.styles.Muted.Strikethrough(true).Render(step)
	}
	if v.topic.ID == domain.TopicTroubleshooting {
		if symptom, fix, ok := domain.SplitTroubleshootingStep(step); ok {
			text = v.styles.Error.Render(symptom) + v.styles.Muted.Render(" ← ") + v.styles.Success.Render(fix)
		}
	}

	marker := "  "
	if i == v.cursor && v.focused {
		marker = " ◂"
		if !v.checked.Contains(i) {
			box = v.styles.Title.Render(box)
		}
	}
	return text + " " + box + marker
}

func (v *View) renderFeedback() string {
	if v.feedback == nil {
		return ""
	}
	if v.voted != "" {
		return v.styles.Success.Render("شكراً لملاحظاتك!")
	}
	return v.styles.Muted.Render("هل كانت هذه الصفحة مفيدة؟ (+ / -)")
}

func (v *View) renderNeighbours() string {
	prev, next := v.catalog.Neighbours(v.topic.ID)
	parts := make([]string, 0, 2)
	if next != nil {
		parts = append(parts, "← التالي: "+next.Title)
	}
	if prev != nil {
		parts = append(parts, "السابق: "+prev.Title+" →")
	}
	return v.styles.Muted.Render(strings.Join(parts, "    "))
}

// Focus gives the page keyboard focus.
func (v *View) Focus() {
	v.focused = true
}

// Blur removes keyboard focus.
func (v *View) Blur() {
	v.focused = false
}

// Focused reports whether the page has focus.
func (v *View) Focused() bool {
	return v.focused
}

// SetStyles replaces the styles after a theme change.
func (v *View) SetStyles(s *styles.Styles) {
	v.styles = s
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.viewport.Width = width
	v.viewport.Height = height
}
