package styles

import (
	"testing"

	"github.com/charmbracelet/lipgloss"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/domain"
)

func TestThemeFor(t *testing.T) {
	assert.Equal(t, domain.ThemeDark, ThemeFor(domain.ThemeDark).Name)
	assert.Equal(t, domain.ThemeLight, ThemeFor(domain.ThemeLight).Name)
	assert.Equal(t, domain.ThemeDark, ThemeFor("").Name)
	assert.Equal(t, DarkTheme(), DefaultTheme())
}

func TestThemeFor_ReturnsCopy(t *testing.T) {
	th := DarkTheme()
	th.Primary = "#000000"
	assert.Equal(t, lipgloss.Color("#38BDF8"), DarkTheme().Primary)
}

func TestNewStyles_NilTheme(t *testing.T) {
	s := NewStyles(nil)
	require.NotNil(t, s.Theme())
	assert.Equal(t, domain.ThemeDark, s.Theme().Name)
}

func TestForTheme(t *testing.T) {
	s := ForTheme(domain.ThemeLight)
	assert.Equal(t, LightTheme().Primary, s.Theme().Primary)
	assert.Equal(t, lipgloss.Right, s.Page.GetAlignHorizontal())
}

func TestAccentColor(t *testing.T) {
	assert.Equal(t, lipgloss.Color("#34D399"), AccentColor(domain.ColorEmerald, domain.ThemeDark))
	assert.Equal(t, lipgloss.Color("#047857"), AccentColor(domain.ColorEmerald, domain.ThemeLight))
	assert.Equal(t, LightTheme().Primary, AccentColor("chartreuse", domain.ThemeLight))
}

func TestEveryKnownTagAndIconIsMapped(t *testing.T) {
	tags := []domain.ColorTag{
		domain.ColorSky, domain.ColorEmerald, domain.ColorIndigo, domain.ColorPurple,
		domain.ColorBlue, domain.ColorAmber, domain.ColorTeal, domain.ColorRed,
	}
	for _, tag := range tags {
		_, ok := accents[tag]
		assert.True(t, ok, tag)
	}

	iconIDs := []domain.IconID{
		domain.IconUploadCloud, domain.IconBookOpen, domain.IconFileQuestion, domain.IconBarChart,
		domain.IconUsers, domain.IconAward, domain.IconSmartphone, domain.IconAlertTriangle,
	}
	for _, id := range iconIDs {
		assert.NotEqual(t, "•", Icon(id), id)
	}
	assert.Equal(t, "•", Icon("rocket"))
}
