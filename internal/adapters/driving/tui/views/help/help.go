// Package help provides the keybindings view for the TUI.
package help

import (
	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/adapters/driving/tui/keymap"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/adapters/driving/tui/messages"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/adapters/driving/tui/styles"
)

// View lists every keybinding.
type View struct {
	styles *styles.Styles
	keymap *keymap.KeyMap
	help   help.Model
	width  int
}

// NewView creates a new help view.
func NewView(s *styles.Styles, km *keymap.KeyMap) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	v := &View{keymap: km, help: help.New(), width: 80}
	v.SetStyles(s)
	return v
}

// Init initialises the view.
func (v *View) Init() tea.Cmd {
	return nil
}

// Update closes the view on esc or ?.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	if msg, ok := msg.(tea.KeyMsg); ok {
		if msg.Type == tea.KeyEsc || msg.String() == "?" {
			return v, func() tea.Msg {
				return messages.ViewChanged{View: messages.ViewGuide}
			}
		}
	}
	return v, nil
}

// View renders the help.
func (v *View) View() string {
	return v.styles.Title.Render("اختصارات لوحة المفاتيح") + "\n\n" +
		v.help.FullHelpView(v.keymap.FullHelp()) + "\n\n" +
		v.styles.Muted.Render("[esc] رجوع")
}

// SetStyles replaces the styles after a theme change.
func (v *View) SetStyles(s *styles.Styles) {
	v.styles = s
	v.help.Styles.FullKey = s.Subtitle
	v.help.Styles.FullDesc = s.Normal
	v.help.Styles.FullSeparator = s.Muted
}

// SetDimensions sets the view width.
func (v *View) SetDimensions(width, _ int) {
	v.width = width
	v.help.Width = width
}
