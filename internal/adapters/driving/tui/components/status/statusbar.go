// Package status draws the one-line footer: key hints on the left and a
// flash message or topic progress on the right.
package status

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/lipgloss"

	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/adapters/driving/tui/keymap"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/adapters/driving/tui/styles"
)

// State selects how the right-hand message is coloured.
type State string

const (
	StateReady   State = "ready"
	StateBusy    State = "busy"
	StateError   State = "error"
	StateNotice  State = "notice"
	StateSuccess State = "success"
)

// Bar is passive: the app sets its fields and calls View.
type Bar struct {
	styles   *styles.Styles
	keymap   *keymap.KeyMap
	hints    []key.Binding
	state    State
	message  string
	complete int
	total    int
	width    int
}

// NewBar returns a ready bar showing the keymap's short help.
func NewBar(s *styles.Styles, km *keymap.KeyMap) *Bar {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}
	return &Bar{styles: s, keymap: km, hints: km.ShortHelp(), state: StateReady, width: 80}
}

func (b *Bar) View() string {
	left, right := b.hintsText(), b.statusText()
	gap := max(b.width-lipgloss.Width(left)-lipgloss.Width(right)-2, 1)
	return b.styles.StatusBar.Width(b.width).Render(left + strings.Repeat(" ", gap) + right)
}

func (b *Bar) hintsText() string {
	parts := make([]string, len(b.hints))
	for i, binding := range b.hints {
		h := binding.Help()
		parts[i] = h.Key + ": " + h.Desc
	}
	return b.styles.Muted.Render(strings.Join(parts, " | "))
}

// statusText shows the message for non-ready states and the completed
// topic count otherwise.
func (b *Bar) statusText() string {
	msg := b.message
	switch b.state {
	case StateBusy:
		if msg == "" {
			msg = "..."
		}
		return b.styles.Muted.Render(msg)
	case StateError:
		if msg == "" {
			return b.styles.Error.Render("خطأ")
		}
		return b.styles.Error.Render("خطأ: " + msg)
	case StateSuccess:
		return b.styles.Success.Render(msg)
	case StateNotice:
		return b.styles.Warning.Render(msg)
	case StateReady:
	}
	if b.total == 0 {
		return ""
	}
	return b.styles.Normal.Render(fmt.Sprintf("%d / %d مواضيع مكتملة", b.complete, b.total))
}

// Show replaces the state and message together.
func (b *Bar) Show(state State, message string) {
	b.state, b.message = state, message
}

// Clear returns to the ready state with no message.
func (b *Bar) Clear() { b.Show(StateReady, "") }

func (b *Bar) State() State               { return b.state }
func (b *Bar) Message() string            { return b.message }
func (b *Bar) SetMessage(m string)        { b.message = m }
func (b *Bar) SetHints(h []key.Binding)   { b.hints = h }
func (b *Bar) SetStyles(s *styles.Styles) { b.styles = s }
func (b *Bar) SetWidth(w int)             { b.width = w }
func (b *Bar) Width() int                 { return b.width }

// SetProgress records how many topics are complete out of total.
func (b *Bar) SetProgress(complete, total int) {
	b.complete, b.total = complete, total
}

// Progress returns the counts last passed to SetProgress.
func (b *Bar) Progress() (complete, total int) { return b.complete, b.total }
