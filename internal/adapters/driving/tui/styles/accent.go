package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/domain"
)

// accent pairs a colour tag's dark- and light-theme shades.
type accent struct {
	dark, light lipgloss.Color
}

var accents = map[domain.ColorTag]accent{
	domain.ColorSky:     {dark: "#38BDF8", light: "#0369A1"},
	domain.ColorEmerald: {dark: "#34D399", light: "#047857"},
	domain.ColorIndigo:  {dark: "#818CF8", light: "#4338CA"},
	domain.ColorPurple:  {dark: "#C084FC", light: "#7E22CE"},
	domain.ColorBlue:    {dark: "#60A5FA", light: "#1D4ED8"},
	domain.ColorAmber:   {dark: "#FBBF24", light: "#B45309"},
	domain.ColorTeal:    {dark: "#2DD4BF", light: "#0F766E"},
	domain.ColorRed:     {dark: "#F87171", light: "#B91C1C"},
}

// AccentColor returns the shade of tag for theme t. Unknown tags use the
// theme's primary colour.
func AccentColor(tag domain.ColorTag, t domain.Theme) lipgloss.Color {
	a, ok := accents[tag]
	if !ok {
		return ThemeFor(t).Primary
	}
	if t == domain.ThemeLight {
		return a.light
	}
	return a.dark
}

var icons = map[domain.IconID]string{
	domain.IconUploadCloud:   "⇪",
	domain.IconBookOpen:      "📖",
	domain.IconFileQuestion:  "❓",
	domain.IconBarChart:      "📊",
	domain.IconUsers:         "👥",
	domain.IconAward:         "🏅",
	domain.IconSmartphone:    "📱",
	domain.IconAlertTriangle: "⚠",
}

// Icon returns the glyph drawn for an icon identifier.
func Icon(id domain.IconID) string {
	if g, ok := icons[id]; ok {
		return g
	}
	return "•"
}
