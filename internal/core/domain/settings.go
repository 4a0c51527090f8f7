package domain

import "time"

const unknownDescription = "Unknown"

// Theme is the colour scheme preference.
type Theme string

// Available themes.
const (
	// ThemeDark is the dark colour scheme.
	ThemeDark Theme = "dark"

	// ThemeLight is the light colour scheme.
	ThemeLight Theme = "light"
)

// IsValid returns true if the theme is recognised.
func (t Theme) IsValid() bool {
	return t == ThemeDark || t == ThemeLight
}

// Toggle returns the opposite theme.
func (t Theme) Toggle() Theme {
	if t == ThemeDark {
		return ThemeLight
	}
	return ThemeDark
}

// String returns the string representation.
func (t Theme) String() string {
	return string(t)
}

// Description returns a human-readable description of the theme.
func (t Theme) Description() string {
	switch t {
	case ThemeDark:
		return "Dark"
	case ThemeLight:
		return "Light"
	default:
		return unknownDescription
	}
}

// UISettings holds view preferences.
type UISettings struct {
	// Theme is the colour scheme. Empty means "not chosen yet".
	Theme Theme

	// Mouse enables click zones in presentation mode.
	Mouse bool
}

// AssistantSettings holds assistant panel behaviour.
type AssistantSettings struct {
	// Delay is the simulated "typing" latency before a reply resolves.
	Delay time.Duration
}

// QuizSettings holds quiz selection behaviour.
type QuizSettings struct {
	// Size is the maximum number of questions drawn.
	Size int

	// Delay is the simulated "generating" latency.
	Delay time.Duration
}

// SearchSettings holds header search behaviour.
type SearchSettings struct {
	// Limit caps the number of header-search results.
	Limit int
}

// SpeechSettings holds speech capture configuration.
type SpeechSettings struct {
	// Enabled turns on the cloud speech capability.
	Enabled bool

	// Language is the recognition locale.
	Language string

	// RecordCommand is the shell command that writes raw LINEAR16 audio to stdout.
	RecordCommand string

	// CredentialsFile is an optional service-account JSON path.
	CredentialsFile string

	// SampleRate is the recorded sample rate in hertz.
	SampleRate int
}

// IsConfigured returns true if speech capture can be attempted.
func (s SpeechSettings) IsConfigured() bool {
	return s.Enabled && s.RecordCommand != ""
}

// CatalogSettings controls where topics come from.
type CatalogSettings struct {
	// Path is an optional YAML file overriding the built-in catalog.
	Path string

	// Watch reloads the catalog when Path changes on disk.
	Watch bool
}

// AppSettings holds all application settings.
type AppSettings struct {
	UI        UISettings
	Assistant AssistantSettings
	Quiz      QuizSettings
	Search    SearchSettings
	Speech    SpeechSettings
	Catalog   CatalogSettings
}

// Default latencies preserve the feel of a remote call.
const (
	DefaultAssistantDelay = 800 * time.Millisecond
	DefaultQuizDelay      = 1200 * time.Millisecond
	DefaultSpeechLanguage = "ar-SA"
	DefaultSampleRate     = 16000
)

// DefaultAppSettings returns settings with sensible defaults.
// Theme is left unset so the first run falls back to the dark scheme
// without recording a choice.
func DefaultAppSettings() AppSettings {
	return AppSettings{
		UI: UISettings{
			Mouse: true,
		},
		Assistant: AssistantSettings{
			Delay: DefaultAssistantDelay,
		},
		Quiz: QuizSettings{
			Size:  DefaultQuizSize,
			Delay: DefaultQuizDelay,
		},
		Search: SearchSettings{
			Limit: DefaultSearchLimit,
		},
		Speech: SpeechSettings{
			Language:   DefaultSpeechLanguage,
			SampleRate: DefaultSampleRate,
		},
	}
}

// EffectiveTheme returns the configured theme, or dark when unset.
func (s *AppSettings) EffectiveTheme() Theme {
	if s.UI.Theme.IsValid() {
		return s.UI.Theme
	}
	return ThemeDark
}

// AllThemes returns all available themes.
func AllThemes() []Theme {
	return []Theme{ThemeDark, ThemeLight}
}
