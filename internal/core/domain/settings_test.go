package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTheme_IsValid(t *testing.T) {
	tests := []struct {
		name     string
		theme    Theme
		expected bool
	}{
		{name: "dark is valid", theme: ThemeDark, expected: true},
		{name: "light is valid", theme: ThemeLight, expected: true},
		{name: "empty is invalid", theme: Theme(""), expected: false},
		{name: "unknown is invalid", theme: Theme("sepia"), expected: false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.expected, tt.theme.IsValid())
		})
	}
}

func TestTheme_Toggle(t *testing.T) {
	assert.Equal(t, ThemeLight, ThemeDark.Toggle())
	assert.Equal(t, ThemeDark, ThemeLight.Toggle())
	assert.Equal(t, ThemeDark, Theme("").Toggle())
}

func TestTheme_Description(t *testing.T) {
	assert.Equal(t, "Dark", ThemeDark.Description())
	assert.Equal(t, "Light", ThemeLight.Description())
	assert.Equal(t, "Unknown", Theme("x").Description())
}

func TestDefaultAppSettings(t *testing.T) {
	s := DefaultAppSettings()

	assert.Equal(t, Theme(""), s.UI.Theme)
	assert.True(t, s.UI.Mouse)
	assert.Equal(t, DefaultAssistantDelay, s.Assistant.Delay)
	assert.Equal(t, 3, s.Quiz.Size)
	assert.Equal(t, DefaultQuizDelay, s.Quiz.Delay)
	assert.Equal(t, 5, s.Search.Limit)
	assert.Equal(t, "ar-SA", s.Speech.Language)
	assert.False(t, s.Speech.Enabled)
	assert.Empty(t, s.Catalog.Path)
}

func TestAppSettings_EffectiveTheme(t *testing.T) {
	s := DefaultAppSettings()
	assert.Equal(t, ThemeDark, s.EffectiveTheme())

	s.UI.Theme = ThemeLight
	assert.Equal(t, ThemeLight, s.EffectiveTheme())

	s.UI.Theme = Theme("bogus")
	assert.Equal(t, ThemeDark, s.EffectiveTheme())
}

func TestSpeechSettings_IsConfigured(t *testing.T) {
	assert.False(t, SpeechSettings{}.IsConfigured())
	assert.False(t, SpeechSettings{Enabled: true}.IsConfigured())
	assert.False(t, SpeechSettings{RecordCommand: "arecord"}.IsConfigured())
	assert.True(t, SpeechSettings{Enabled: true, RecordCommand: "arecord"}.IsConfigured())
}

func TestAllThemes(t *testing.T) {
	assert.Equal(t, []Theme{ThemeDark, ThemeLight}, AllThemes())
}
