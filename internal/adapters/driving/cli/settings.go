package cli

import (
	"errors"
	"fmt"
	"os"
	"slices"
	"strconv"
	"time"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/domain"
)

var settingsCmd = &cobra.Command{
	Use:   "settings",
	Short: "Manage application settings",
	Long: `View and change the theme, assistant and quiz timing, search limit,
voice input and catalog location.

Use subcommands to change one value or run the interactive wizard.`,
	RunE: runSettingsShow,
}

var settingsShowCmd = &cobra.Command{
	Use:   "show",
	Short: "Show current settings",
	RunE:  runSettingsShow,
}

var settingsGetCmd = &cobra.Command{
	Use:   "get [key]",
	Short: "Print one setting",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsGet,
}

var settingsSetCmd = &cobra.Command{
	Use:   "set [key] [value]",
	Short: "Change one setting",
	Long: `Changes one setting by its dotted key, for example:

  lmsguide settings set ui.theme light
  lmsguide settings set quiz.size 5
  lmsguide settings set assistant.delay 500ms`,
	Args: cobra.ExactArgs(2),
	RunE: runSettingsSet,
}

var settingsResetCmd = &cobra.Command{
	Use:   "reset [key]",
	Short: "Restore one setting to its default",
	Args:  cobra.ExactArgs(1),
	RunE:  runSettingsReset,
}

var settingsThemeCmd = &cobra.Command{
	Use:       "theme [dark|light|toggle]",
	Short:     "Show or change the colour theme",
	Args:      cobra.MaximumNArgs(1),
	ValidArgs: []string{"dark", "light", "toggle"},
	RunE:      runSettingsTheme,
}

var settingsWizardCmd = &cobra.Command{
	Use:   "wizard",
	Short: "Interactive setup wizard",
	Long:  `Run an interactive wizard to configure the common settings step by step.`,
	RunE:  runSettingsWizard,
}

func init() {
	settingsCmd.AddCommand(settingsShowCmd)
	settingsCmd.AddCommand(settingsGetCmd)
	settingsCmd.AddCommand(settingsSetCmd)
	settingsCmd.AddCommand(settingsResetCmd)
	settingsCmd.AddCommand(settingsThemeCmd)
	settingsCmd.AddCommand(settingsWizardCmd)
	rootCmd.AddCommand(settingsCmd)
}

func runSettingsShow(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return fmt.Errorf("settings: %w", ErrNotConfigured)
	}

	cmd.Println("Current Settings")
	cmd.Println("================")
	cmd.Println()
	customised := settingsService.Customised()
	for _, key := range settingsService.Keys() {
		value, err := settingsService.GetValue(key)
		if err != nil {
			return fmt.Errorf("failed to read %s: %w", key, err)
		}
		if value == "" {
			value = "(not set)"
		}
		marker := " "
		if slices.Contains(customised, key) {
			marker = "*"
		}
		cmd.Printf(" %s %-24s %s\n", marker, key, value)
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}
	cmd.Println()
	cmd.Println("* changed from the default")
	cmd.Printf("Theme: %s\n", settings.EffectiveTheme().Description())
	if settings.Speech.Enabled && !settings.Speech.IsConfigured() {
		cmd.Println("Warning: speech is enabled but speech.record_command is empty.")
	}
	return nil
}

func runSettingsGet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return fmt.Errorf("settings: %w", ErrNotConfigured)
	}
	value, err := settingsService.GetValue(args[0])
	if err != nil {
		return err
	}
	cmd.Println(value)
	return nil
}

func runSettingsSet(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return fmt.Errorf("settings: %w", ErrNotConfigured)
	}
	if err := settingsService.SetValue(args[0], args[1]); err != nil {
		return fmt.Errorf("failed to set %s: %w", args[0], err)
	}
	cmd.Printf("Set %s = %s\n", args[0], args[1])
	return nil
}

func runSettingsReset(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return fmt.Errorf("settings: %w", ErrNotConfigured)
	}
	if err := settingsService.Reset(args[0]); err != nil {
		return fmt.Errorf("failed to reset %s: %w", args[0], err)
	}
	value, err := settingsService.GetValue(args[0])
	if err != nil {
		return err
	}
	cmd.Printf("Reset %s = %s\n", args[0], value)
	return nil
}

func runSettingsTheme(cmd *cobra.Command, args []string) error {
	if settingsService == nil {
		return fmt.Errorf("settings: %w", ErrNotConfigured)
	}

	if len(args) == 0 {
		settings, err := settingsService.Get()
		if err != nil {
			return fmt.Errorf("failed to get settings: %w", err)
		}
		cmd.Println(settings.EffectiveTheme())
		return nil
	}

	if args[0] == "toggle" {
		theme, err := settingsService.ToggleTheme()
		if err != nil {
			return fmt.Errorf("failed to toggle theme: %w", err)
		}
		cmd.Printf("Theme: %s\n", theme.Description())
		return nil
	}

	theme := domain.Theme(args[0])
	if !theme.IsValid() {
		return fmt.Errorf("%w: theme must be dark or light", domain.ErrInvalidInput)
	}
	if err := settingsService.SetTheme(theme); err != nil {
		return fmt.Errorf("failed to set theme: %w", err)
	}
	cmd.Printf("Theme: %s\n", theme.Description())
	return nil
}

func runSettingsWizard(cmd *cobra.Command, _ []string) error {
	if settingsService == nil {
		return fmt.Errorf("settings: %w", ErrNotConfigured)
	}
	if !isTerminal(os.Stdin) {
		return errors.New("the wizard needs a terminal")
	}

	settings, err := settingsService.Get()
	if err != nil {
		return fmt.Errorf("failed to get settings: %w", err)
	}

	theme := settings.EffectiveTheme()
	quizSize := strconv.Itoa(settings.Quiz.Size)
	delay := settings.Assistant.Delay.String()
	speechEnabled := settings.Speech.Enabled
	recordCommand := settings.Speech.RecordCommand
	catalogPath := settings.Catalog.Path

	themeOptions := make([]huh.Option[domain.Theme], 0, len(domain.AllThemes()))
	for _, t := range domain.AllThemes() {
		themeOptions = append(themeOptions, huh.NewOption(t.Description(), t))
	}

	form := huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[domain.Theme]().Title("Theme").Options(themeOptions...).Value(&theme),
			huh.NewInput().Title("Questions per quiz").Value(&quizSize).Validate(positiveInt),
			huh.NewInput().Title("Assistant reply delay").Description("e.g. 800ms, 0s").Value(&delay).Validate(validDuration),
		),
		huh.NewGroup(
			huh.NewConfirm().Title("Enable voice input?").Value(&speechEnabled),
			huh.NewInput().Title("Record command").
				Description("writes raw 16-bit mono audio to stdout").
				Placeholder("arecord -q -f S16_LE -r 16000 -c 1 -d 5 -t raw").
				Value(&recordCommand),
		),
		huh.NewGroup(
			huh.NewInput().Title("Catalog file").Description("empty uses the built-in topics").Value(&catalogPath),
		),
	)
	if err := form.Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			cmd.Println("Cancelled.")
			return nil
		}
		return err
	}

	settings.UI.Theme = theme
	settings.Quiz.Size, _ = strconv.Atoi(quizSize)
	settings.Assistant.Delay, _ = time.ParseDuration(delay)
	settings.Speech.Enabled = speechEnabled
	settings.Speech.RecordCommand = recordCommand
	settings.Catalog.Path = catalogPath

	if err := settingsService.Save(settings); err != nil {
		return fmt.Errorf("failed to save settings: %w", err)
	}
	cmd.Println("Settings saved.")
	return nil
}

func positiveInt(s string) error {
	n, err := strconv.Atoi(s)
	if err != nil || n < 1 {
		return errors.New("enter a whole number of at least 1")
	}
	return nil
}

func validDuration(s string) error {
	d, err := time.ParseDuration(s)
	if err != nil || d < 0 {
		return errors.New("enter a duration such as 800ms")
	}
	return nil
}
