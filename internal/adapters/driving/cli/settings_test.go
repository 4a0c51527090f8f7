package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/domain"
)

func TestSettingsCmd_ShowListsKeys(t *testing.T) {
	setupTestServices(t)

	out, err := executeCommand(t, "settings")

	require.NoError(t, err)
	assert.Contains(t, out, "Current Settings")
	assert.Contains(t, out, "ui.theme")
	assert.Contains(t, out, "quiz.size")
	assert.Contains(t, out, "Theme: "+domain.ThemeDark.Description())
}

func TestSettingsSetAndGet(t *testing.T) {
	svc, _ := setupTestServices(t)

	out, err := executeCommand(t, "settings", "set", "quiz.size", "5")
	require.NoError(t, err)
	assert.Contains(t, out, "Set quiz.size = 5")

	out, err = executeCommand(t, "settings", "get", "quiz.size")
	require.NoError(t, err)
	assert.Equal(t, "5\n", out)

	settings, err := svc.Settings.Get()
	require.NoError(t, err)
	assert.Equal(t, 5, settings.Quiz.Size)
}

func TestSettingsSet_Invalid(t *testing.T) {
	setupTestServices(t)

	_, err := executeCommand(t, "settings", "set", "quiz.size", "zero")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	_, err = executeCommand(t, "settings", "get", "no.such.key")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSettingsThemeCmd(t *testing.T) {
	svc, _ := setupTestServices(t)

	out, err := executeCommand(t, "settings", "theme")
	require.NoError(t, err)
	assert.Equal(t, "dark\n", out)

	out, err = executeCommand(t, "settings", "theme", "toggle")
	require.NoError(t, err)
	assert.Contains(t, out, domain.ThemeLight.Description())

	settings, err := svc.Settings.Get()
	require.NoError(t, err)
	assert.Equal(t, domain.ThemeLight, settings.EffectiveTheme())

	_, err = executeCommand(t, "settings", "theme", "dark")
	require.NoError(t, err)

	_, err = executeCommand(t, "settings", "theme", "sepia")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}

func TestSettingsWizard_NeedsTerminal(t *testing.T) {
	setupTestServices(t)

	_, err := executeCommand(t, "settings", "wizard")

	require.Error(t, err)
	assert.Contains(t, err.Error(), "terminal")
}

func TestPositiveIntAndValidDuration(t *testing.T) {
	assert.NoError(t, positiveInt("3"))
	assert.Error(t, positiveInt("0"))
	assert.Error(t, positiveInt("x"))

	assert.NoError(t, validDuration("800ms"))
	assert.NoError(t, validDuration("0s"))
	assert.Error(t, validDuration("-1s"))
	assert.Error(t, validDuration("soon"))
}

func TestSettingsResetCmd(t *testing.T) {
	setupTestServices(t)

	_, err := executeCommand(t, "settings", "set", "search.limit", "9")
	require.NoError(t, err)

	out, err := executeCommand(t, "settings")
	require.NoError(t, err)
	assert.Contains(t, out, "* search.limit")

	out, err = executeCommand(t, "settings", "reset", "search.limit")
	require.NoError(t, err)
	assert.Contains(t, out, "Reset search.limit = 5")

	_, err = executeCommand(t, "settings", "reset", "nope")
	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
