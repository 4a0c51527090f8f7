package cli

import (
	"fmt"
	"strconv"

	"github.com/spf13/cobra"

	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/domain"
)

var copyCmd = &cobra.Command{
	Use:   "copy",
	Short: "Copy guide content to the clipboard",
}

var copyFAQCmd = &cobra.Command{
	Use:   "faq [topic] [number]",
	Short: "Copy one FAQ question and answer",
	Args:  cobra.ExactArgs(2),
	RunE:  runCopyFAQ,
}

var copyQuizCmd = &cobra.Command{
	Use:   "quiz [topic]",
	Short: "Copy a quiz for the topic as JSON",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runCopyQuiz,
}

func init() {
	copyCmd.AddCommand(copyFAQCmd)
	copyCmd.AddCommand(copyQuizCmd)
	rootCmd.AddCommand(copyCmd)
}

func runCopyFAQ(cmd *cobra.Command, args []string) error {
	if actionService == nil {
		return fmt.Errorf("clipboard: %w", ErrNotConfigured)
	}
	topic, err := parseTopic(args[0])
	if err != nil {
		return err
	}
	n, err := strconv.Atoi(args[1])
	if err != nil || n < 1 || n > len(topic.FAQ) {
		return fmt.Errorf("%w: %s has %d FAQ entries", domain.ErrInvalidInput, topic.ID, len(topic.FAQ))
	}

	if err := actionService.CopyFAQ(cmd.Context(), topic.FAQ[n-1]); err != nil {
		return err
	}
	cmd.Println("تم النسخ")
	return nil
}

func runCopyQuiz(cmd *cobra.Command, args []string) error {
	if actionService == nil || quizService == nil {
		return fmt.Errorf("clipboard: %w", ErrNotConfigured)
	}

	var id domain.TopicID
	if len(args) == 1 {
		topic, err := parseTopic(args[0])
		if err != nil {
			return err
		}
		id = topic.ID
	}
	questions, err := quizService.Select(cmd.Context(), id)
	if err != nil {
		return fmt.Errorf("failed to draw quiz: %w", err)
	}
	if err := actionService.CopyQuiz(cmd.Context(), questions); err != nil {
		return err
	}
	cmd.Printf("تم نسخ %d أسئلة\n", len(questions))
	return nil
}
