package cli

import (
	"context"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/adapters/driving/tui"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/adapters/driving/tui/messages"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/logger"
)

// tuiLogFile receives log output while the TUI owns the terminal.
const tuiLogFile = "lmsguide.log"

// tuiCmd represents the tui command.
var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Open the interactive guide",
	Long: `Open the interactive terminal guide.

Controls:
  ↑/k, ↓/j   Move through steps and FAQ
  space/x    Check or uncheck a step
  ←/], →/[   Next / previous topic
  tab        Switch between sidebar and page
  /          Search
  a          Assistant and quiz
  p          Presentation mode
  t          Toggle theme
  ?          Help
  q          Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Add panic recovery to get stack traces
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	ports := &tui.Ports{
		Catalog:   catalogService,
		Progress:  progressService,
		Assistant: assistantService,
		Search:    searchService,
		Quiz:      quizService,
		Feedback:  feedbackService,
		Settings:  settingsService,
		Actions:   actionService,
		Speech:    speechService,
	}

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	app.WithContext(ctx)

	// Log lines would corrupt the alternate screen
	restore, err := redirectLogs()
	if err != nil {
		return err
	}
	defer restore()

	var opts []tea.ProgramOption
	if mouseEnabled() {
		opts = append(opts, tea.WithMouseCellMotion())
	}
	p := app.Program(opts...)

	if catalogWatcher != nil {
		go watchCatalog(ctx, p)
	}

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}

// watchCatalog reloads the catalog on file changes and tells the app.
func watchCatalog(ctx context.Context, p *tea.Program) {
	err := catalogWatcher.Watch(ctx, func() {
		err := catalogService.Reload(ctx)
		if err != nil {
			logger.Warn("Catalog reload failed: %v", err)
		}
		p.Send(messages.CatalogReloaded{Err: err})
	})
	if err != nil && ctx.Err() == nil {
		logger.Warn("Catalog watcher stopped: %v", err)
	}
}

// redirectLogs sends logger output to a file in the temp dir when verbose,
// or discards it otherwise. The returned func restores the previous output.
func redirectLogs() (func(), error) {
	if !logger.IsVerbose() {
		prev := logger.SetOutput(io.Discard)
		return func() { logger.SetOutput(prev) }, nil
	}

	f, err := tea.LogToFile(filepath.Join(os.TempDir(), tuiLogFile), "lmsguide")
	if err != nil {
		return nil, fmt.Errorf("opening log file: %w", err)
	}
	prev := logger.SetOutput(f)
	return func() {
		logger.SetOutput(prev)
		_ = f.Close()
	}, nil
}

func mouseEnabled() bool {
	if settingsService == nil {
		return false
	}
	settings, err := settingsService.Get()
	if err != nil {
		return false
	}
	return settings.UI.Mouse
}
