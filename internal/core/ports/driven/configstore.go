package driven

import "time"

// ConfigStore holds user settings as flat dotted keys ("ui.theme",
// "quiz.size"). A key that was never written reads as absent so the
// settings service can fall back to its defaults.
type ConfigStore interface {
	// Get returns the raw value for key and whether it is set.
	Get(key string) (any, bool)

	// GetString returns the value as a string, or "" when unset or not a string.
	GetString(key string) string

	// GetInt returns the value as an int, or 0 when unset or not numeric.
	GetInt(key string) int

	// GetBool returns the value as a bool, or false when unset or not a bool.
	GetBool(key string) bool

	// GetDuration parses a duration stored as text ("800ms"). ok is false
	// when the key is unset or does not parse.
	GetDuration(key string) (d time.Duration, ok bool)

	// Set writes one value and persists it.
	Set(key string, value any) error

	// SetMany writes several values with a single persist.
	SetMany(values map[string]any) error

	// Unset removes key so it reads as absent again.
	Unset(key string) error

	// Keys lists the keys currently set, sorted.
	Keys() []string

	// Load re-reads the backing storage, replacing the in-memory view.
	Load() error

	// Path describes where settings are kept.
	Path() string
}
