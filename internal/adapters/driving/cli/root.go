// Package cli implements the lmsguide command line.
//
// Commands drive the core services through package-level ports that are
// set once at startup, either directly with SetServices or lazily by the
// Bootstrap hook once global flags have been parsed.
package cli

import (
	"context"
	"errors"
	"os"

	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/domain"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/ports/driven"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/ports/driving"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/logger"
)

// version is set at build time with -ldflags "-X ...cli.version=...".
var version = "dev"

// ErrNotConfigured is returned when a command runs without its service.
var ErrNotConfigured = errors.New("service not configured")

// Services holds the core services the commands drive.
type Services struct {
	Catalog   driving.CatalogService
	Assistant driving.AssistantService
	Search    driving.SearchService
	Quiz      driving.QuizService
	Progress  driving.ProgressService
	Feedback  driving.FeedbackService
	Settings  driving.SettingsService
	Actions   driving.ActionService
	Speech    driving.SpeechService

	// Watcher reloads the catalog while the TUI runs. Optional.
	Watcher driven.CatalogWatcher
}

// Options are the global flags passed to the bootstrap hook.
type Options struct {
	Verbose   bool
	Ephemeral bool
	ConfigDir string
	DataDir   string
}

// Bootstrap builds the services for opts. The returned cleanup runs after
// the command finishes.
type Bootstrap func(ctx context.Context, opts Options) (*Services, func(), error)

var (
	catalogService   driving.CatalogService
	assistantService driving.AssistantService
	searchService    driving.SearchService
	quizService      driving.QuizService
	progressService  driving.ProgressService
	feedbackService  driving.FeedbackService
	settingsService  driving.SettingsService
	actionService    driving.ActionService
	speechService    driving.SpeechService
	catalogWatcher   driven.CatalogWatcher

	bootstrap Bootstrap
	cleanup   func()
	options   Options
)

var rootCmd = &cobra.Command{
	Use:   "lmsguide",
	Short: "United Pharmacies LMS help guide",
	Long: domain.AppName + "\n" + domain.AppDesc + `

Browse step-by-step guides for the Moodle LMS, track your checklist
progress, ask the keyword assistant and practise with short quizzes.

Run without a command in a terminal to open the interactive guide.`,
	SilenceUsage:      true,
	PersistentPreRunE: setup,
	RunE:              runRoot,
}

func init() {
	flags := rootCmd.PersistentFlags()
	flags.BoolVarP(&options.Verbose, "verbose", "v", false, "print diagnostic output to stderr")
	flags.BoolVar(&options.Ephemeral, "ephemeral", false, "keep progress, feedback and settings in memory only")
	flags.StringVar(&options.ConfigDir, "config-dir", "", "configuration directory (default ~/.lmsguide)")
	flags.StringVar(&options.DataDir, "data-dir", "", "data directory (default ~/.lmsguide/data)")
}

// SetServices installs the services directly, bypassing Bootstrap.
func SetServices(s *Services) {
	catalogService = s.Catalog
	assistantService = s.Assistant
	searchService = s.Search
	quizService = s.Quiz
	progressService = s.Progress
	feedbackService = s.Feedback
	settingsService = s.Settings
	actionService = s.Actions
	speechService = s.Speech
	catalogWatcher = s.Watcher
}

// SetBootstrap registers the hook that builds services from global flags.
func SetBootstrap(b Bootstrap) {
	bootstrap = b
}

// Execute runs the root command.
func Execute(ctx context.Context) error {
	defer func() {
		if cleanup != nil {
			cleanup()
			cleanup = nil
		}
	}()
	return rootCmd.ExecuteContext(ctx)
}

func setup(cmd *cobra.Command, _ []string) error {
	logger.SetVerbose(options.Verbose)
	if bootstrap == nil || catalogService != nil {
		return nil
	}

	logger.Section("Startup")
	svc, done, err := bootstrap(cmd.Context(), options)
	if err != nil {
		return err
	}
	SetServices(svc)
	cleanup = done
	return nil
}

func runRoot(cmd *cobra.Command, args []string) error {
	if isTerminal(os.Stdin) && isTerminal(os.Stdout) {
		return runTUI(cmd, args)
	}
	return cmd.Help()
}

func isTerminal(f *os.File) bool {
	if f == nil {
		return false
	}
	return term.IsTerminal(int(f.Fd())) //nolint:gosec // Fd fits in int
}

// terminalWidth returns the width of stdout, or fallback when stdout is
// not a terminal.
func terminalWidth(fallback int) int {
	if !isTerminal(os.Stdout) {
		return fallback
	}
	w, _, err := term.GetSize(int(os.Stdout.Fd())) //nolint:gosec // Fd fits in int
	if err != nil || w <= 0 {
		return fallback
	}
	return w
}

// parseTopic resolves a topic argument and checks the catalog has it.
func parseTopic(arg string) (*domain.Topic, error) {
	if catalogService == nil {
		return nil, ErrNotConfigured
	}
	id, err := domain.ParseTopicID(arg)
	if err != nil {
		return nil, err
	}
	return catalogService.Get(id)
}

// stdoutFile returns the command's output as a file when it is one.
func stdoutFile(cmd *cobra.Command) *os.File {
	if f, ok := cmd.OutOrStdout().(*os.File); ok {
		return f
	}
	return nil
}
