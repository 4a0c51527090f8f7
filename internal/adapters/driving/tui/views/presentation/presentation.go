// Package presentation provides the full-screen slide view of a topic's steps.
package presentation

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/progress"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/adapters/driving/tui/keymap"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/adapters/driving/tui/messages"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/adapters/driving/tui/styles"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/domain"
)

// View shows one slide at a time. Slide 0 is the title slide.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap
	deck   *domain.Presentation
	bar    progress.Model
	width  int
	height int
}

// NewView creates a new presentation view.
func NewView(s *styles.Styles, km *keymap.KeyMap) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles: s,
		keymap: km,
		deck:   domain.NewPresentation(nil),
		bar:    newBar(s),
		width:  80,
		height: 24,
	}
}

func newBar(s *styles.Styles) progress.Model {
	t := s.Theme()
	return progress.New(
		progress.WithGradient(string(t.Secondary), string(t.Primary)),
		progress.WithoutPercentage(),
	)
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Start opens a presentation of the topic at the title slide.
func (v *View) Start(t *domain.Topic) {
	v.deck = domain.NewPresentation(t)
}

// Deck returns the underlying presentation state.
func (v *View) Deck() *domain.Presentation {
	return v.deck
}

// Update handles messages for the presentation.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch {
		case key.Matches(msg, v.keymap.Back):
			return v, v.close()
		case key.Matches(msg, v.keymap.SlideNext):
			v.deck.Next()
		case key.Matches(msg, v.keymap.SlidePrev):
			v.deck.Prev()
		}

	case tea.MouseMsg:
		if msg.Action != tea.MouseActionPress || msg.Button != tea.MouseButtonLeft {
			return v, nil
		}
		// Only the outer fifth on each side navigates. Right-to-left, so
		// the left edge moves forward.
		zone := max(v.width/5, 1)
		switch {
		case msg.X < zone:
			v.deck.Next()
		case msg.X >= v.width-zone:
			v.deck.Prev()
		}
	}
	return v, nil
}

func (v *View) close() tea.Cmd {
	v.deck.Close()
	return func() tea.Msg {
		return messages.ViewChanged{View: messages.ViewGuide}
	}
}

// View renders the current slide.
func (v *View) View() string {
	t := v.deck.Topic()
	if t == nil {
		return v.styles.Muted.Render("لا يوجد موضوع للعرض")
	}

	var body string
	if v.deck.IsTitleSlide() {
		body = strings.Join([]string{
			v.styles.Accent(t.Color).Render(styles.Icon(t.Icon)),
			v.styles.Title.Render(t.Title),
			v.styles.Muted.Render(t.Description),
			v.styles.Normal.Render(fmt.Sprintf("%d خطوات", t.StepCount())),
		}, "\n\n")
	} else {
		body = strings.Join([]string{
			v.styles.Muted.Render(fmt.Sprintf("الخطوة %d من %d", v.deck.Slide(), t.StepCount())),
			v.styles.Normal.Bold(true).Width(min(v.width-10, 70)).Align(lipgloss.Center).Render(v.deck.Step()),
		}, "\n\n")
	}

	controls := v.styles.Muted.Render("→ السابق    esc إغلاق    التالي ←")
	footer := v.bar.ViewAs(v.deck.Progress()/100) + "\n" + controls

	//nolint:misspell // lipgloss.Center is the correct constant from the library
	slide := lipgloss.Place(v.width, max(v.height-3, 1), lipgloss.Center, lipgloss.Center, body)
	return slide + "\n" + lipgloss.PlaceHorizontal(v.width, lipgloss.Center, footer)
}

// SetStyles replaces the styles after a theme change.
func (v *View) SetStyles(s *styles.Styles) {
	v.styles = s
	v.bar = newBar(s)
	v.bar.Width = max(v.width-10, 10)
}

// SetDimensions sets the view dimensions.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.bar.Width = max(width-10, 10)
}
