package cli

import (
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/domain"
)

var feedbackCmd = &cobra.Command{
	Use:   "feedback [topic] [up|down]",
	Short: "Rate whether a topic was helpful",
	Long: `Records a helpfulness vote for a topic page, the "هل كان هذا مفيداً؟"
buttons at the bottom of each page. With only a topic the current counts
are shown.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runFeedback,
}

func init() {
	rootCmd.AddCommand(feedbackCmd)
}

func runFeedback(cmd *cobra.Command, args []string) error {
	if feedbackService == nil {
		return fmt.Errorf("feedback: %w", ErrNotConfigured)
	}

	topic, err := parseTopic(args[0])
	if err != nil {
		return err
	}

	if len(args) == 2 {
		vote := domain.Vote(args[1])
		if !vote.IsValid() {
			return fmt.Errorf("%w: vote must be up or down", domain.ErrInvalidInput)
		}
		if _, err := feedbackService.Vote(cmd.Context(), topic.ID, vote); err != nil {
			return fmt.Errorf("failed to record feedback: %w", err)
		}
		cmd.Println("شكراً لملاحظاتك!")
	}

	summary, err := feedbackService.Summary(cmd.Context(), topic.ID)
	if err != nil {
		return fmt.Errorf("failed to load feedback: %w", err)
	}
	cmd.Printf("%s: 👍 %d  👎 %d\n", topic.Title, summary.Up, summary.Down)
	return nil
}
