package services

import (
	"fmt"
	"sort"
	"strconv"
	"time"

	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/domain"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/ports/driven"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/ports/driving"
)

// Ensure SettingsService implements the interface.
var _ driving.SettingsService = (*SettingsService)(nil)

// Config keys for settings storage.
const (
	keyTheme            = "ui.theme"
	keyMouse            = "ui.mouse"
	keyAssistantDelay   = "assistant.delay"
	keyQuizSize         = "quiz.size"
	keyQuizDelay        = "quiz.delay"
	keySearchLimit      = "search.limit"
	keySpeechEnabled    = "speech.enabled"
	keySpeechLanguage   = "speech.language"
	keySpeechRecord     = "speech.record_command"
	keySpeechCreds      = "speech.credentials_file"
	keySpeechSampleRate = "speech.sample_rate"
	keyCatalogPath      = "catalog.path"
	keyCatalogWatch     = "catalog.watch"
)

// settingKind drives parsing for SetValue.
type settingKind int

const (
	kindString settingKind = iota
	kindBool
	kindInt
	kindDuration
	kindTheme
)

var settingKinds = map[string]settingKind{
	keyTheme:            kindTheme,
	keyMouse:            kindBool,
	keyAssistantDelay:   kindDuration,
	keyQuizSize:         kindInt,
	keyQuizDelay:        kindDuration,
	keySearchLimit:      kindInt,
	keySpeechEnabled:    kindBool,
	keySpeechLanguage:   kindString,
	keySpeechRecord:     kindString,
	keySpeechCreds:      kindString,
	keySpeechSampleRate: kindInt,
	keyCatalogPath:      kindString,
	keyCatalogWatch:     kindBool,
}

// SettingsService manages application settings.
type SettingsService struct {
	configStore driven.ConfigStore
}

// NewSettingsService creates a new settings service.
func NewSettingsService(configStore driven.ConfigStore) *SettingsService {
	return &SettingsService{configStore: configStore}
}

// Get retrieves current application settings.
func (s *SettingsService) Get() (*domain.AppSettings, error) {
	defaults := domain.DefaultAppSettings()

	settings := &domain.AppSettings{
		UI: domain.UISettings{
			Theme: s.getTheme(),
			Mouse: s.getBool(keyMouse, defaults.UI.Mouse),
		},
		Assistant: domain.AssistantSettings{
			Delay: s.getDuration(keyAssistantDelay, defaults.Assistant.Delay),
		},
		Quiz: domain.QuizSettings{
			Size:  s.getInt(keyQuizSize, defaults.Quiz.Size),
			Delay: s.getDuration(keyQuizDelay, defaults.Quiz.Delay),
		},
		Search: domain.SearchSettings{
			Limit: s.getInt(keySearchLimit, defaults.Search.Limit),
		},
		Speech: domain.SpeechSettings{
			Enabled:         s.getBool(keySpeechEnabled, defaults.Speech.Enabled),
			Language:        s.getString(keySpeechLanguage, defaults.Speech.Language),
			RecordCommand:   s.configStore.GetString(keySpeechRecord),
			CredentialsFile: s.configStore.GetString(keySpeechCreds),
			SampleRate:      s.getInt(keySpeechSampleRate, defaults.Speech.SampleRate),
		},
		Catalog: domain.CatalogSettings{
			Path:  s.configStore.GetString(keyCatalogPath),
			Watch: s.getBool(keyCatalogWatch, defaults.Catalog.Watch),
		},
	}

	return settings, nil
}

// Save persists application settings in one write.
func (s *SettingsService) Save(settings *domain.AppSettings) error {
	values := map[string]any{
		keyMouse:            settings.UI.Mouse,
		keyAssistantDelay:   settings.Assistant.Delay.String(),
		keyQuizSize:         settings.Quiz.Size,
		keyQuizDelay:        settings.Quiz.Delay.String(),
		keySearchLimit:      settings.Search.Limit,
		keySpeechEnabled:    settings.Speech.Enabled,
		keySpeechLanguage:   settings.Speech.Language,
		keySpeechRecord:     settings.Speech.RecordCommand,
		keySpeechCreds:      settings.Speech.CredentialsFile,
		keySpeechSampleRate: settings.Speech.SampleRate,
		keyCatalogPath:      settings.Catalog.Path,
		keyCatalogWatch:     settings.Catalog.Watch,
	}
	// An unset theme stays unset so the dark default keeps applying.
	if settings.UI.Theme.IsValid() {
		values[keyTheme] = settings.UI.Theme.String()
	}

	if err := s.configStore.SetMany(values); err != nil {
		return fmt.Errorf("save settings: %w", err)
	}
	return nil
}

// Reset removes a stored value so its default applies again.
func (s *SettingsService) Reset(key string) error {
	if _, ok := settingKinds[key]; !ok {
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}
	if err := s.configStore.Unset(key); err != nil {
		return fmt.Errorf("reset %s: %w", key, err)
	}
	return nil
}

// Customised lists the settable keys that hold a stored value.
func (s *SettingsService) Customised() []string {
	var keys []string
	for _, k := range s.configStore.Keys() {
		if _, ok := settingKinds[k]; ok {
			keys = append(keys, k)
		}
	}
	return keys
}

// SetTheme records the theme preference.
func (s *SettingsService) SetTheme(theme domain.Theme) error {
	if !theme.IsValid() {
		return fmt.Errorf("%w: theme %q", domain.ErrInvalidInput, theme)
	}
	if err := s.configStore.Set(keyTheme, theme.String()); err != nil {
		return fmt.Errorf("save theme: %w", err)
	}
	return nil
}

// ToggleTheme flips the effective theme and persists it.
func (s *SettingsService) ToggleTheme() (domain.Theme, error) {
	settings, err := s.Get()
	if err != nil {
		return "", err
	}
	next := settings.EffectiveTheme().Toggle()
	if err := s.SetTheme(next); err != nil {
		return "", err
	}
	return next, nil
}

// GetValue returns one setting as text.
func (s *SettingsService) GetValue(key string) (string, error) {
	if _, ok := settingKinds[key]; !ok {
		return "", fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}
	settings, err := s.Get()
	if err != nil {
		return "", err
	}

	switch key {
	case keyTheme:
		return settings.EffectiveTheme().String(), nil
	case keyMouse:
		return strconv.FormatBool(settings.UI.Mouse), nil
	case keyAssistantDelay:
		return settings.Assistant.Delay.String(), nil
	case keyQuizSize:
		return strconv.Itoa(settings.Quiz.Size), nil
	case keyQuizDelay:
		return settings.Quiz.Delay.String(), nil
	case keySearchLimit:
		return strconv.Itoa(settings.Search.Limit), nil
	case keySpeechEnabled:
		return strconv.FormatBool(settings.Speech.Enabled), nil
	case keySpeechLanguage:
		return settings.Speech.Language, nil
	case keySpeechRecord:
		return settings.Speech.RecordCommand, nil
	case keySpeechCreds:
		return settings.Speech.CredentialsFile, nil
	case keySpeechSampleRate:
		return strconv.Itoa(settings.Speech.SampleRate), nil
	case keyCatalogPath:
		return settings.Catalog.Path, nil
	default:
		return strconv.FormatBool(settings.Catalog.Watch), nil
	}
}

// SetValue parses and stores one setting.
func (s *SettingsService) SetValue(key, value string) error {
	kind, ok := settingKinds[key]
	if !ok {
		return fmt.Errorf("%w: unknown setting %q", domain.ErrInvalidInput, key)
	}

	var parsed any
	switch kind {
	case kindTheme:
		return s.SetTheme(domain.Theme(value))
	case kindBool:
		b, err := strconv.ParseBool(value)
		if err != nil {
			return fmt.Errorf("%w: %s expects true or false", domain.ErrInvalidInput, key)
		}
		parsed = b
	case kindInt:
		n, err := strconv.Atoi(value)
		if err != nil || n <= 0 {
			return fmt.Errorf("%w: %s expects a positive integer", domain.ErrInvalidInput, key)
		}
		parsed = n
	case kindDuration:
		d, err := time.ParseDuration(value)
		if err != nil || d < 0 {
			return fmt.Errorf("%w: %s expects a duration such as 800ms", domain.ErrInvalidInput, key)
		}
		parsed = d.String()
	default:
		parsed = value
	}

	if err := s.configStore.Set(key, parsed); err != nil {
		return fmt.Errorf("save %s: %w", key, err)
	}
	return nil
}

// Keys lists the settable keys in sorted order.
func (s *SettingsService) Keys() []string {
	keys := make([]string, 0, len(settingKinds))
	for k := range settingKinds {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	return keys
}

// GetDefaults returns default settings.
func (s *SettingsService) GetDefaults() domain.AppSettings {
	return domain.DefaultAppSettings()
}

// Helper methods for reading config with defaults.

func (s *SettingsService) getString(key, defaultVal string) string {
	val := s.configStore.GetString(key)
	if val == "" {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getInt(key string, defaultVal int) int {
	val := s.configStore.GetInt(key)
	if val <= 0 {
		return defaultVal
	}
	return val
}

func (s *SettingsService) getBool(key string, defaultVal bool) bool {
	if _, exists := s.configStore.Get(key); !exists {
		return defaultVal
	}
	return s.configStore.GetBool(key)
}

func (s *SettingsService) getDuration(key string, defaultVal time.Duration) time.Duration {
	d, ok := s.configStore.GetDuration(key)
	if !ok || d < 0 {
		return defaultVal
	}
	return d
}

// getTheme returns the stored theme, or empty when unset or unrecognised.
func (s *SettingsService) getTheme() domain.Theme {
	theme := domain.Theme(s.configStore.GetString(keyTheme))
	if !theme.IsValid() {
		return ""
	}
	return theme
}
