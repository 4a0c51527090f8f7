package driving

import "github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/domain"

// SettingsService manages application settings.
type SettingsService interface {
	// Get retrieves current application settings.
	Get() (*domain.AppSettings, error)

	// Save persists application settings.
	Save(settings *domain.AppSettings) error

	// SetTheme records the theme preference.
	SetTheme(theme domain.Theme) error

	// ToggleTheme flips the effective theme and returns the new one.
	ToggleTheme() (domain.Theme, error)

	// GetValue returns one setting by dotted key as text.
	GetValue(key string) (string, error)

	// SetValue parses and stores one setting by dotted key.
	SetValue(key, value string) error

	// Reset removes a stored value so its default applies again.
	Reset(key string) error

	// Keys lists the settable keys.
	Keys() []string

	// Customised lists the settable keys that hold a stored value.
	Customised() []string

	// GetDefaults returns default settings.
	GetDefaults() domain.AppSettings
}
