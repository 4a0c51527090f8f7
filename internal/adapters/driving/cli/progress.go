package cli

import (
	"fmt"
	"os"
	"path/filepath"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/domain"
)

var (
	progressResetAll bool
	progressOut      string
)

var progressCmd = &cobra.Command{
	Use:   "progress",
	Short: "Show and edit checklist progress",
	Long: `Shows how many steps are checked in each topic and how many topics
are complete. Use the subcommands to check steps, reset a topic or export
a report.`,
	Args: cobra.NoArgs,
	RunE: runProgress,
}

var progressToggleCmd = &cobra.Command{
	Use:   "toggle [topic] [step]",
	Short: "Check or uncheck a step",
	Long:  `Flips one checklist step. Steps are numbered from 1 as shown by "lmsguide show".`,
	Args:  cobra.ExactArgs(2),
	RunE:  runProgressToggle,
}

var progressResetCmd = &cobra.Command{
	Use:   "reset [topic]",
	Short: "Clear checked steps",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runProgressReset,
}

var progressExportCmd = &cobra.Command{
	Use:   "export",
	Short: "Export progress and feedback to a spreadsheet",
	Args:  cobra.NoArgs,
	RunE:  runProgressExport,
}

func init() {
	progressResetCmd.Flags().BoolVar(&progressResetAll, "all", false, "reset every topic")
	progressExportCmd.Flags().StringVarP(&progressOut, "out", "o", "lmsguide-progress.xlsx", "output file")
	progressCmd.AddCommand(progressToggleCmd)
	progressCmd.AddCommand(progressResetCmd)
	progressCmd.AddCommand(progressExportCmd)
	rootCmd.AddCommand(progressCmd)
}

func runProgress(cmd *cobra.Command, _ []string) error {
	if progressService == nil {
		return fmt.Errorf("progress: %w", ErrNotConfigured)
	}

	summary, err := progressService.Summary(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to load progress: %w", err)
	}

	complete := 0
	for _, tp := range summary {
		mark := " "
		if tp.Complete {
			mark = "✓"
			complete++
		}
		cmd.Printf("  %s %-18s %d / %d\n", mark, tp.TopicID, tp.Checked.Count(), tp.Total)
	}
	cmd.Println()
	cmd.Printf("%d / %d topics complete\n", complete, len(summary))
	return nil
}

func runProgressToggle(cmd *cobra.Command, args []string) error {
	if progressService == nil {
		return fmt.Errorf("progress: %w", ErrNotConfigured)
	}

	topic, err := parseTopic(args[0])
	if err != nil {
		return err
	}
	step, err := strconv.Atoi(args[1])
	if err != nil || step < 1 || step > topic.StepCount() {
		return fmt.Errorf("%w: step must be between 1 and %d", domain.ErrInvalidInput, topic.StepCount())
	}

	checked, complete, err := progressService.Toggle(cmd.Context(), topic.ID, step-1)
	if err != nil {
		return fmt.Errorf("failed to update progress: %w", err)
	}

	state := "unchecked"
	if checked.Contains(step - 1) {
		state = "checked"
	}
	cmd.Printf("Step %d %s: %s\n", step, state, topic.Steps[step-1])
	cmd.Printf("%d / %d مكتمل\n", checked.Count(), topic.StepCount())
	if complete {
		cmd.Println("أحسنت! أكملت جميع خطوات هذا القسم.")
	}
	return nil
}

func runProgressReset(cmd *cobra.Command, args []string) error {
	if progressService == nil {
		return fmt.Errorf("progress: %w", ErrNotConfigured)
	}

	switch {
	case progressResetAll:
		if catalogService == nil {
			return fmt.Errorf("catalog: %w", ErrNotConfigured)
		}
		for _, t := range catalogService.Topics() {
			if err := progressService.Reset(cmd.Context(), t.ID); err != nil {
				return fmt.Errorf("failed to reset %s: %w", t.ID, err)
			}
		}
		cmd.Println("All progress cleared.")
		return nil
	case len(args) == 1:
		topic, err := parseTopic(args[0])
		if err != nil {
			return err
		}
		if err := progressService.Reset(cmd.Context(), topic.ID); err != nil {
			return fmt.Errorf("failed to reset %s: %w", topic.ID, err)
		}
		cmd.Printf("Progress cleared for %s.\n", topic.ID)
		return nil
	default:
		return fmt.Errorf("%w: name a topic or pass --all", domain.ErrInvalidInput)
	}
}

func runProgressExport(cmd *cobra.Command, _ []string) error {
	if progressService == nil {
		return fmt.Errorf("progress: %w", ErrNotConfigured)
	}

	f, err := os.Create(filepath.Clean(progressOut))
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", progressOut, err)
	}
	if err := progressService.Export(cmd.Context(), f); err != nil {
		_ = f.Close()
		_ = os.Remove(progressOut)
		return fmt.Errorf("failed to export: %w", err)
	}
	if err := f.Close(); err != nil {
		return fmt.Errorf("failed to write %s: %w", progressOut, err)
	}
	cmd.Printf("Wrote %s\n", progressOut)
	return nil
}
