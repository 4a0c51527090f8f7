// Package sidebar provides the topic navigation column for the TUI.
package sidebar

import (
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/adapters/driving/tui/keymap"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/adapters/driving/tui/messages"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/adapters/driving/tui/styles"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/domain"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/ports/driving"
)

// View lists the catalog topics with completion badges.
type View struct {
	styles  *styles.Styles
	keymap  *keymap.KeyMap
	catalog driving.CatalogService

	topics   []domain.Topic
	done     domain.ProgressMap
	active   domain.TopicID
	selected int
	focused  bool
	width    int
	height   int
}

// NewView creates a new sidebar view.
func NewView(s *styles.Styles, km *keymap.KeyMap, catalog driving.CatalogService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	v := &View{
		styles:  s,
		keymap:  km,
		catalog: catalog,
		done:    domain.ProgressMap{},
		width:   30,
		height:  24,
	}
	v.Refresh()
	return v
}

// Init initialises the sidebar.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update handles messages for the sidebar.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case messages.CompletionLoaded:
		if msg.Err == nil {
			v.done = msg.Done
		}
		return v, nil

	case tea.KeyMsg:
		if !v.focused {
			return v, nil
		}
		switch {
		case key.Matches(msg, v.keymap.Up):
			if v.selected > 0 {
				v.selected--
			}
		case key.Matches(msg, v.keymap.Down):
			if v.selected < len(v.topics)-1 {
				v.selected++
			}
		case key.Matches(msg, v.keymap.Select):
			if len(v.topics) == 0 {
				return v, nil
			}
			id := v.topics[v.selected].ID
			return v, func() tea.Msg {
				return messages.TopicSelected{ID: id}
			}
		}
	}

	return v, nil
}

// View renders the sidebar.
func (v *View) View() string {
	var b strings.Builder

	b.WriteString(v.styles.Title.Render(domain.AppName))
	b.WriteString("\n")
	b.WriteString(v.styles.Muted.Render(domain.AppDesc))
	b.WriteString("\n\n")

	for i := range v.topics {
		b.WriteString(v.renderItem(i, &v.topics[i]))
		b.WriteString("\n")
	}

	border := v.styles.Border
	if v.focused {
		border = border.BorderForeground(v.styles.Theme().Primary)
	}
	return border.
		Width(max(v.width-2, 10)).
		Height(max(v.height-2, 1)).
		Align(lipgloss.Right).
		Render(strings.TrimRight(b.String(), "\n"))
}

// renderItem renders one topic row: badge, title, icon, cursor.
func (v *View) renderItem(i int, t *domain.Topic) string {
	badge := "  "
	if v.done[t.ID] {
		badge = v.styles.Success.Render("✓ ")
	}

	title := t.Title
	switch {
	case v.focused && i == v.selected:
		title = v.styles.Selected.Render(title)
	case t.ID == v.active:
		title = v.styles.Accent(t.Color).Render(title)
	default:
		title = v.styles.Normal.Render(title)
	}

	cursor := "  "
	if t.ID == v.active {
		cursor = v.styles.Accent(t.Color).Render(" ▌")
	}

	return badge + title + " " + v.styles.Accent(t.Color).Render(styles.Icon(t.Icon)) + cursor
}

// Refresh re-reads the topics from the catalog, keeping the active topic.
func (v *View) Refresh() {
	if v.catalog == nil {
		return
	}
	v.topics = v.catalog.Topics()
	v.selected = min(v.selected, max(len(v.topics)-1, 0))
	if v.active != "" {
		v.SetActive(v.active)
	}
}

// SetActive marks a topic as the open page and moves the cursor to it.
func (v *View) SetActive(id domain.TopicID) {
	v.active = id
	for i := range v.topics {
		if v.topics[i].ID == id {
			v.selected = i
			return
		}
	}
}

// Active returns the open topic.
func (v *View) Active() domain.TopicID {
	return v.active
}

// SetDone replaces the completion map.
func (v *View) SetDone(done domain.ProgressMap) {
	v.done = done
}

// Done returns the completion map.
func (v *View) Done() domain.ProgressMap {
	return v.done
}

// Topics returns the listed topics.
func (v *View) Topics() []domain.Topic {
	return v.topics
}

// Selected returns the cursor index.
func (v *View) Selected() int {
	return v.selected
}

// Focus gives the sidebar keyboard focus.
func (v *View) Focus() {
	v.focused = true
}

// Blur removes keyboard focus.
func (v *View) Blur() {
	v.focused = false
}

// Focused reports whether the sidebar has focus.
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
}
