package help

import (
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/adapters/driving/tui/messages"
)

func TestView_ListsBindings(t *testing.T) {
	v := NewView(nil, nil)
	v.SetDimensions(200, 40)

	view := v.View()
	assert.Contains(t, view, "check step")
	assert.Contains(t, view, "next slide")
	assert.Contains(t, view, "voice")
	assert.Nil(t, v.Init())
}

func TestView_Closes(t *testing.T) {
	for _, msg := range []tea.KeyMsg{
		{Type: tea.KeyEsc},
		{Type: tea.KeyRunes, Runes: []rune{'?'}},
	} {
		v := NewView(nil, nil)
		_, cmd := v.Update(msg)
		require.NotNil(t, cmd)
		assert.Equal(t, messages.ViewChanged{View: messages.ViewGuide}, cmd())
	}
}

func TestView_OtherKeysIgnored(t *testing.T) {
	v := NewView(nil, nil)

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})

	assert.Nil(t, cmd)
}
