package input

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewSearchInput(t *testing.T) {
	in := NewSearchInput(nil)

	require.NotNil(t, in)
	assert.True(t, in.Focused())
	assert.Equal(t, "", in.Value())
	assert.NotNil(t, in.Init())
}

func TestTextInput_Typing(t *testing.T) {
	in := New(nil, "سؤال: ", "")

	in, _ = in.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune("رفع")})

	assert.Equal(t, "رفع", in.Value())
	assert.Contains(t, in.View(), "سؤال: ")
}

func TestTextInput_FocusAndReset(t *testing.T) {
	in := New(nil, "", "")
	in.SetValue("كويز")

	in.Blur()
	assert.False(t, in.Focused())
	in.Focus()
	assert.True(t, in.Focused())

	in.Reset()
	assert.Equal(t, "", in.Value())
}

func TestTextInput_SetWidth(t *testing.T) {
	in := New(nil, "x", "")

	in.SetWidth(10)
	assert.Equal(t, 10, in.Width())
	assert.Equal(t, minWidth, in.field.Width)

	in.SetWidth(100)
	assert.Equal(t, 100-1-chrome, in.field.Width)
}

func TestNew_DefaultFieldWidth(t *testing.T) {
	in := New(nil, "بحث: ", "")
	assert.Equal(t, 50, in.field.Width)
	assert.Equal(t, maxChars, in.field.CharLimit)
}
