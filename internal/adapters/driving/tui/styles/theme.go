// Package styles holds the guide's two colour palettes and the lipgloss
// styles derived from them.
package styles

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/domain"
)

// Theme is one palette. Field names describe roles, not hues.
type Theme struct {
	Name domain.Theme

	Primary    lipgloss.Color
	Secondary  lipgloss.Color
	Background lipgloss.Color
	Foreground lipgloss.Color
	Muted      lipgloss.Color
	Success    lipgloss.Color
	Warning    lipgloss.Color
	Error      lipgloss.Color
	Border     lipgloss.Color
	Bar        lipgloss.Color // status bar fill
}

// palettes uses the Tailwind slate scale for neutrals. The dark accents are
// the 400 shades and the light accents the 700 shades, matching accents.
var palettes = map[domain.Theme]Theme{
	domain.ThemeDark: {
		Name:    domain.ThemeDark,
		Primary: "#38BDF8", Secondary: "#A78BFA",
		Background: "#0F172A", Foreground: "#E2E8F0", Muted: "#64748B",
		Success: "#34D399", Warning: "#FBBF24", Error: "#F87171",
		Border: "#334155", Bar: "#1E293B",
	},
	domain.ThemeLight: {
		Name:    domain.ThemeLight,
		Primary: "#0369A1", Secondary: "#6D28D9",
		Background: "#F8FAFC", Foreground: "#0F172A", Muted: "#64748B",
		Success: "#047857", Warning: "#B45309", Error: "#B91C1C",
		Border: "#CBD5E1", Bar: "#E2E8F0",
	},
}

// DarkTheme returns a copy of the dark palette.
func DarkTheme() *Theme { return ThemeFor(domain.ThemeDark) }

// LightTheme returns a copy of the light palette.
func LightTheme() *Theme { return ThemeFor(domain.ThemeLight) }

// DefaultTheme is the palette used until a preference is loaded.
func DefaultTheme() *Theme { return DarkTheme() }

// ThemeFor returns the palette for t. Anything but light is dark.
func ThemeFor(t domain.Theme) *Theme {
	p, ok := palettes[t]
	if !ok {
		p = palettes[domain.ThemeDark]
	}
	return &p
}

// Styles are the rendered styles every view draws with.
type Styles struct {
	theme *Theme

	Title, Subtitle lipgloss.Style
	Normal, Muted   lipgloss.Style
	Selected        lipgloss.Style
	Error, Success  lipgloss.Style
	Warning         lipgloss.Style
	InputField      lipgloss.Style
	StatusBar, Help lipgloss.Style
	Border          lipgloss.Style
	Page            lipgloss.Style // right-aligned topic text
	Notice          lipgloss.Style // blocking notices
}

// NewStyles derives styles from theme; nil means DefaultTheme.
func NewStyles(theme *Theme) *Styles {
	if theme == nil {
		theme = DefaultTheme()
	}
	fg := func(c lipgloss.Color) lipgloss.Style { return lipgloss.NewStyle().Foreground(c) }
	boxed := lipgloss.NewStyle().BorderStyle(lipgloss.RoundedBorder()).BorderForeground(theme.Border)

	return &Styles{
		theme:      theme,
		Title:      fg(theme.Primary).Bold(true),
		Subtitle:   fg(theme.Secondary).Bold(true),
		Normal:     fg(theme.Foreground),
		Muted:      fg(theme.Muted),
		Selected:   fg(theme.Background).Background(theme.Primary).Bold(true),
		Error:      fg(theme.Error),
		Success:    fg(theme.Success),
		Warning:    fg(theme.Warning),
		InputField: boxed.Padding(0, 1),
		StatusBar:  fg(theme.Muted).Background(theme.Bar).Padding(0, 1),
		Help:       fg(theme.Muted),
		Border:     boxed,
		Page:       fg(theme.Foreground).Align(lipgloss.Right),
		Notice: fg(theme.Foreground).
			BorderStyle(lipgloss.DoubleBorder()).
			BorderForeground(theme.Warning).
			Padding(1, 3).
			Align(lipgloss.Center),
	}
}

// DefaultStyles returns styles for the dark palette.
func DefaultStyles() *Styles { return NewStyles(DefaultTheme()) }

// ForTheme returns styles for t.
func ForTheme(t domain.Theme) *Styles { return NewStyles(ThemeFor(t)) }

// Theme returns the palette behind s.
func (s *Styles) Theme() *Theme { return s.theme }

// Accent returns a bold style in the topic's accent colour.
func (s *Styles) Accent(tag domain.ColorTag) lipgloss.Style {
	return lipgloss.NewStyle().Bold(true).Foreground(AccentColor(tag, s.theme.Name))
}
