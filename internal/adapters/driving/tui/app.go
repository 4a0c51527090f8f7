package tui

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/spinner"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/adapters/driving/tui/components/status"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/adapters/driving/tui/keymap"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/adapters/driving/tui/messages"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/adapters/driving/tui/styles"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/adapters/driving/tui/views/assistant"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/adapters/driving/tui/views/guide"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/adapters/driving/tui/views/help"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/adapters/driving/tui/views/presentation"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/adapters/driving/tui/views/search"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/adapters/driving/tui/views/sidebar"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/domain"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/logger"
)

// StatusTimeout is how long transient status messages stay visible.
const StatusTimeout = 3 * time.Second

// App is the main TUI application following the Elm architecture.
// It implements tea.Model for use with Bubbletea.
type App struct {
	// ports provides access to core services via driving ports.
	ports *Ports

	// ctx is the context for cancellation.
	ctx context.Context

	styles *styles.Styles
	keymap *keymap.KeyMap
	theme  domain.Theme

	sidebarView      *sidebar.View
	guideView        *guide.View
	searchView       *search.View
	assistantView    *assistant.View
	presentationView *presentation.View
	helpView         *help.View
	statusbar        *status.Bar

	// currentView tracks which view is active.
	currentView messages.ViewType

	// statusSeq identifies the latest transient status message.
	statusSeq int

	// err holds the last error that occurred.
	err error

	// width and height are terminal dimensions.
	width  int
	height int

	// ready indicates if the app has initialised.
	ready bool
}

// Ensure App implements tea.Model.
var _ tea.Model = (*App)(nil)

// NewApp creates a new TUI application with the given ports.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, fmt.Errorf("creating app: %w", err)
	}

	theme := domain.ThemeDark
	if ports.Settings != nil {
		if settings, err := ports.Settings.Get(); err == nil {
			theme = settings.EffectiveTheme()
		} else {
			logger.Warn("TUI: loading settings: %v", err)
		}
	}

	s := styles.ForTheme(theme)
	km := keymap.DefaultKeyMap()

	a := &App{
		ports:            ports,
		ctx:              context.Background(),
		styles:           s,
		keymap:           km,
		theme:            theme,
		sidebarView:      sidebar.NewView(s, km, ports.Catalog),
		guideView:        guide.NewView(s, km, ports.Catalog, ports.Progress, ports.Feedback, ports.Actions),
		searchView:       search.NewView(s, km, ports.Search),
		presentationView: presentation.NewView(s, km),
		helpView:         help.NewView(s, km),
		statusbar:        status.NewBar(s, km),
		currentView:      messages.ViewGuide,
	}
	a.assistantView = assistant.NewView(s, km, assistant.Services{
		Assistant: ports.Assistant,
		Quiz:      ports.Quiz,
		Actions:   ports.Actions,
		Speech:    ports.Speech,
	})
	return a, nil
}

// WithContext sets the context for the app and its views.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	a.guideView.WithContext(ctx)
	a.searchView.WithContext(ctx)
	a.assistantView.WithContext(ctx)
	return a
}

// Init implements tea.Model.
// It opens the first topic and loads the completion badges.
func (a *App) Init() tea.Cmd {
	cmds := []tea.Cmd{tea.SetWindowTitle(domain.AppName), a.loadCompletion()}
	if first := a.ports.Catalog.First(); first != nil {
		cmds = append(cmds, a.openTopic(first))
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
// It handles messages and updates the model state.
//
//nolint:gocognit,gocyclo,funlen // central message handler requires complexity
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.SetDimensions(msg.Width, msg.Height)
		return a, nil

	case tea.KeyMsg:
		// Global quit with ctrl+c
		if msg.String() == "ctrl+c" {
			return a, tea.Quit
		}
		return a.handleKey(msg)

	case tea.MouseMsg:
		switch a.currentView {
		case messages.ViewPresentation:
			a.presentationView, cmd = a.presentationView.Update(msg)
		case messages.ViewGuide:
			a.guideView, cmd = a.guideView.Update(msg)
		case messages.ViewSearch, messages.ViewAssistant, messages.ViewHelp:
		}
		return a, cmd

	case messages.ViewChanged:
		return a, a.switchView(msg.View)

	case messages.TopicSelected:
		t, err := a.ports.Catalog.Get(msg.ID)
		if err != nil {
			return a, a.flash(status.StateError, err.Error())
		}
		return a, tea.Batch(a.switchView(messages.ViewGuide), a.openTopic(t))

	case messages.ProgressLoaded:
		if msg.Err != nil {
			return a, a.fail(msg.Err)
		}
		a.guideView, cmd = a.guideView.Update(msg)
		return a, cmd

	case messages.StepToggled:
		a.guideView, cmd = a.guideView.Update(msg)
		if msg.Err != nil {
			return a, tea.Batch(cmd, a.fail(msg.Err))
		}
		if a.guideView.TogglesPending() > 0 {
			return a, nil
		}
		if cmd != nil {
			// Toggles overlapped, so this flag may predate the last write.
			return a, tea.Batch(cmd, a.loadCompletion())
		}
		done := a.sidebarView.Done()
		wasDone := done[msg.TopicID]
		done[msg.TopicID] = msg.Complete
		a.updateProgress()
		if msg.Complete && !wasDone {
			return a, a.flash(status.StateSuccess, "أحسنت! أكملت هذا الموضوع")
		}
		return a, nil

	case messages.CompletionLoaded:
		if msg.Err != nil {
			return a, a.fail(msg.Err)
		}
		a.sidebarView, _ = a.sidebarView.Update(msg)
		a.updateProgress()
		return a, nil

	case messages.SearchCompleted:
		a.searchView, cmd = a.searchView.Update(msg)
		return a, cmd

	case messages.ReplyReceived, messages.QuizReady, messages.SpeechHeard, spinner.TickMsg:
		a.assistantView, cmd = a.assistantView.Update(msg)
		return a, cmd

	case messages.Copied:
		if msg.Err != nil {
			return a, a.fail(msg.Err)
		}
		return a, a.flash(status.StateSuccess, "تم النسخ: "+msg.Label)

	case messages.FeedbackSent:
		if msg.Err != nil {
			return a, a.fail(msg.Err)
		}
		a.guideView, _ = a.guideView.Update(msg)
		return a, a.flash(status.StateSuccess, "شكراً لملاحظاتك!")

	case messages.ThemeChanged:
		if msg.Err != nil {
			return a, a.fail(msg.Err)
		}
		a.applyTheme(msg.Theme)
		return a, nil

	case messages.CatalogReloaded:
		if msg.Err != nil {
			return a, a.fail(fmt.Errorf("reloading catalog: %w", msg.Err))
		}
		return a, tea.Batch(a.refreshCatalog(), a.flash(status.StateNotice, "تم تحديث الدليل"))

	case messages.StatusExpired:
		if msg.Seq == a.statusSeq {
			a.statusbar.Clear()
		}
		return a, nil

	case messages.ErrorOccurred:
		return a, a.fail(msg.Err)

	case messages.Quit:
		return a, tea.Quit
	}

	// Forward other messages to the active text inputs
	switch a.currentView {
	case messages.ViewSearch:
		a.searchView, cmd = a.searchView.Update(msg)
	case messages.ViewAssistant:
		a.assistantView, cmd = a.assistantView.Update(msg)
	case messages.ViewGuide, messages.ViewPresentation, messages.ViewHelp:
	}
	return a, cmd
}

// handleKey routes key presses to the active view.
func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch a.currentView {
	case messages.ViewSearch:
		a.searchView, cmd = a.searchView.Update(msg)
	case messages.ViewAssistant:
		a.assistantView, cmd = a.assistantView.Update(msg)
	case messages.ViewPresentation:
		a.presentationView, cmd = a.presentationView.Update(msg)
	case messages.ViewHelp:
		a.helpView, cmd = a.helpView.Update(msg)
	case messages.ViewGuide:
		return a.handleGuideKey(msg)
	}
	return a, cmd
}

// handleGuideKey handles the page-level shortcuts before the focused pane.
func (a *App) handleGuideKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch {
	case key.Matches(msg, a.keymap.Quit):
		return a, tea.Quit
	case key.Matches(msg, a.keymap.Help):
		return a, a.switchView(messages.ViewHelp)
	case key.Matches(msg, a.keymap.Search):
		return a, a.switchView(messages.ViewSearch)
	case key.Matches(msg, a.keymap.Assistant):
		return a, a.switchView(messages.ViewAssistant)
	case key.Matches(msg, a.keymap.Present):
		if a.guideView.Topic() == nil {
			return a, nil
		}
		return a, a.switchView(messages.ViewPresentation)
	case key.Matches(msg, a.keymap.Theme):
		return a, a.toggleTheme()
	case key.Matches(msg, a.keymap.Focus):
		a.toggleFocus()
		return a, nil
	}

	if a.sidebarView.Focused() {
		a.sidebarView, cmd = a.sidebarView.Update(msg)
		return a, cmd
	}
	a.guideView, cmd = a.guideView.Update(msg)
	return a, cmd
}

// switchView activates a view, closing the assistant session when it is left.
func (a *App) switchView(view messages.ViewType) tea.Cmd {
	if a.currentView == messages.ViewAssistant && view != messages.ViewAssistant {
		a.assistantView.Close()
	}
	prev := a.currentView
	a.currentView = view

	switch view {
	case messages.ViewSearch:
		a.statusbar.SetHints(a.keymap.ShortHelp())
		a.searchView.Reset()
		return a.searchView.Init()
	case messages.ViewAssistant:
		a.statusbar.SetHints(a.keymap.AssistantHelp())
		if prev == messages.ViewAssistant {
			return nil
		}
		return a.assistantView.Open(a.activeTopic())
	case messages.ViewPresentation:
		a.statusbar.SetHints(a.keymap.PresentationHelp())
		a.presentationView.Start(a.guideView.Topic())
	case messages.ViewGuide:
		a.statusbar.SetHints(a.keymap.ShortHelp())
	case messages.ViewHelp:
	}
	return nil
}

// openTopic makes t the active page.
func (a *App) openTopic(t *domain.Topic) tea.Cmd {
	a.sidebarView.SetActive(t.ID)
	a.sidebarView.Blur()
	a.guideView.Focus()
	return a.guideView.SetTopic(t)
}

func (a *App) activeTopic() domain.TopicID {
	if t := a.guideView.Topic(); t != nil {
		return t.ID
	}
	return ""
}

func (a *App) toggleFocus() {
	if a.sidebarView.Focused() {
		a.sidebarView.Blur()
		a.guideView.Focus()
		return
	}
	a.guideView.Blur()
	a.sidebarView.Focus()
}

func (a *App) loadCompletion() tea.Cmd {
	ctx := a.ctx
	progress := a.ports.Progress
	return func() tea.Msg {
		done, err := progress.Completion(ctx)
		return messages.CompletionLoaded{Done: done, Err: err}
	}
}

// refreshCatalog re-reads the topics after a reload and reopens the active
// topic, or the first one if it disappeared.
func (a *App) refreshCatalog() tea.Cmd {
	a.sidebarView.Refresh()
	cmds := []tea.Cmd{a.loadCompletion()}

	t, err := a.ports.Catalog.Get(a.activeTopic())
	if err != nil {
		t = a.ports.Catalog.First()
	}
	if t != nil {
		cmds = append(cmds, a.openTopic(t))
	}
	return tea.Batch(cmds...)
}

func (a *App) toggleTheme() tea.Cmd {
	if a.ports.Settings == nil {
		theme := a.theme.Toggle()
		return func() tea.Msg {
			return messages.ThemeChanged{Theme: theme}
		}
	}
	settings := a.ports.Settings
	return func() tea.Msg {
		theme, err := settings.ToggleTheme()
		return messages.ThemeChanged{Theme: theme, Err: err}
	}
}

// applyTheme rebuilds the styles of every view.
func (a *App) applyTheme(theme domain.Theme) {
	a.theme = theme
	a.styles = styles.ForTheme(theme)
	a.sidebarView.SetStyles(a.styles)
	a.guideView.SetStyles(a.styles)
	a.searchView.SetStyles(a.styles)
	a.assistantView.SetStyles(a.styles)
	a.presentationView.SetStyles(a.styles)
	a.helpView.SetStyles(a.styles)
	a.statusbar.SetStyles(a.styles)
}

func (a *App) updateProgress() {
	a.statusbar.SetProgress(a.sidebarView.Done().CompletedCount(), len(a.sidebarView.Topics()))
}

// flash shows a status message that clears itself after StatusTimeout.
func (a *App) flash(state status.State, message string) tea.Cmd {
	a.statusSeq++
	seq := a.statusSeq
	a.statusbar.Show(state, message)
	return tea.Tick(StatusTimeout, func(time.Time) tea.Msg {
		return messages.StatusExpired{Seq: seq}
	})
}

func (a *App) fail(err error) tea.Cmd {
	if err == nil || errors.Is(err, context.Canceled) {
		return nil
	}
	a.err = err
	logger.Error("TUI: %v", err)
	return a.flash(status.StateError, err.Error())
}

// View implements tea.Model.
// It renders the current view as a string.
func (a *App) View() string {
	if !a.ready {
		return "جارٍ التحميل..."
	}

	var body string
	switch a.currentView {
	case messages.ViewPresentation:
		return a.presentationView.View()
	case messages.ViewHelp:
		body = a.helpView.View()
	case messages.ViewSearch:
		body = a.searchView.View()
	case messages.ViewAssistant:
		body = a.assistantView.View()
	case messages.ViewGuide:
		body = lipgloss.JoinHorizontal(lipgloss.Top, a.guideView.View(), a.sidebarView.View())
	}

	return lipgloss.JoinVertical(lipgloss.Left, a.renderHeader(), body, a.statusbar.View())
}

func (a *App) renderHeader() string {
	hint := a.styles.Muted.Render("(/) ابحث في الدليل")
	return a.styles.Page.Width(a.width).Render(hint + "   " + a.styles.Title.Render(domain.AppName))
}

// Run starts the TUI application.
func (a *App) Run(opts ...tea.ProgramOption) error {
	_, err := a.Program(opts...).Run()
	return err
}

// Program builds a program for the app with the alternate screen enabled.
func (a *App) Program(opts ...tea.ProgramOption) *tea.Program {
	opts = append([]tea.ProgramOption{tea.WithAltScreen(), tea.WithContext(a.ctx)}, opts...)
	return tea.NewProgram(a, opts...)
}

// CurrentView returns the current view type.
func (a *App) CurrentView() messages.ViewType {
	return a.currentView
}

// ActiveTopic returns the open topic.
func (a *App) ActiveTopic() domain.TopicID {
	return a.activeTopic()
}

// Theme returns the active theme.
func (a *App) Theme() domain.Theme {
	return a.theme
}

// Err returns the last error that occurred.
func (a *App) Err() error {
	return a.err
}

// Ready returns whether the app has been initialised.
func (a *App) Ready() bool {
	return a.ready
}

// SetDimensions lays out the views for the terminal size.
func (a *App) SetDimensions(width, height int) {
	a.width = width
	a.height = height
	a.ready = true

	bodyHeight := max(height-2, 5)
	sidebarWidth := min(36, width/3)

	a.sidebarView.SetDimensions(sidebarWidth, bodyHeight)
	a.guideView.SetDimensions(width-sidebarWidth, bodyHeight)
	a.searchView.SetDimensions(width, bodyHeight)
	a.assistantView.SetDimensions(width, bodyHeight)
	a.presentationView.SetDimensions(width, height)
	a.helpView.SetDimensions(width, bodyHeight)
	a.statusbar.SetWidth(width)
}
