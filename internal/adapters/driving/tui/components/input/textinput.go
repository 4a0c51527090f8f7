// Package input is the labelled single-line field used for search, chat
// questions and quiz topics.
package input

import (
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/adapters/driving/tui/styles"
)

const (
	maxChars = 256
	minWidth = 20
	// chrome is the border and padding drawn around the field.
	chrome = 6
)

// TextInput is a bubbles textinput with its label drawn on the right, so
// the field reads naturally in a right-to-left layout.
type TextInput struct {
	field  textinput.Model
	styles *styles.Styles
	label  string
	width  int
}

// New returns a focused field.
func New(s *styles.Styles, label, placeholder string) *TextInput {
	if s == nil {
		s = styles.DefaultStyles()
	}
	f := textinput.New()
	f.Placeholder = placeholder
	f.CharLimit = maxChars
	f.Focus()

	t := &TextInput{field: f, styles: s, label: label}
	t.SetWidth(50 + lipgloss.Width(label) + chrome)
	return t
}

// NewSearchInput returns the field shown above the search results.
func NewSearchInput(s *styles.Styles) *TextInput {
	return New(s, "بحث: ", "ابحث في الدليل...")
}

func (t *TextInput) Init() tea.Cmd { return textinput.Blink }

func (t *TextInput) Update(msg tea.Msg) (*TextInput, tea.Cmd) {
	var cmd tea.Cmd
	t.field, cmd = t.field.Update(msg)
	return t, cmd
}

func (t *TextInput) View() string {
	//nolint:misspell // lipgloss constant
	return lipgloss.JoinHorizontal(lipgloss.Center,
		t.styles.InputField.Render(t.field.View()),
		t.styles.Title.Render(t.label),
	)
}

// Value returns the text typed so far.
func (t *TextInput) Value() string { return t.field.Value() }

// SetValue replaces the text and moves the cursor to its end.
func (t *TextInput) SetValue(v string) {
	t.field.SetValue(v)
	t.field.CursorEnd()
}

func (t *TextInput) Focus() tea.Cmd { return t.field.Focus() }
func (t *TextInput) Blur()          { t.field.Blur() }
func (t *TextInput) Focused() bool  { return t.field.Focused() }
func (t *TextInput) Reset()         { t.field.Reset() }

// SetStyles swaps the palette after a theme toggle.
func (t *TextInput) SetStyles(s *styles.Styles) { t.styles = s }

// SetWidth sizes the whole component, label included. The editable part
// never shrinks below minWidth cells.
func (t *TextInput) SetWidth(width int) {
	t.width = width
	t.field.Width = max(width-lipgloss.Width(t.label)-chrome, minWidth)
}

// Width returns the width last passed to SetWidth.
func (t *TextInput) Width() int { return t.width }
