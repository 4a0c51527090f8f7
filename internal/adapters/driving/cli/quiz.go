package cli

import (
	"errors"
	"fmt"
	"os"

	"github.com/charmbracelet/huh"
	"github.com/spf13/cobra"

	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/adapters/driving/markdown"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/domain"
)

var (
	quizTopic       string
	quizText        string
	quizJSON        bool
	quizReveal      bool
	quizInteractive bool
	quizCopy        bool
)

var quizCmd = &cobra.Command{
	Use:   "quiz",
	Short: "Practise with a short quiz",
	Long: `Draws a few questions from a topic's question bank.

Use --topic to pick the topic directly, or --text to name it in free
text (the first topic the text matches is used). Without either a
general question is shown. --interactive asks each question in turn
and scores your answers.`,
	Args: cobra.NoArgs,
	RunE: runQuiz,
}

var quizValidateCmd = &cobra.Command{
	Use:   "validate [file]",
	Short: "Validate a quiz JSON document",
	Long: `Checks a quiz JSON document: an array of objects with question,
options (two or more, no repeats) and correctAnswer, where the correct
answer must be one of the options.`,
	Args: cobra.ExactArgs(1),
	RunE: runQuizValidate,
}

func init() {
	quizCmd.Flags().StringVarP(&quizTopic, "topic", "t", "", "topic to draw questions from")
	quizCmd.Flags().StringVar(&quizText, "text", "", "free text naming a topic")
	quizCmd.Flags().BoolVar(&quizJSON, "json", false, "output questions as quiz JSON")
	quizCmd.Flags().BoolVar(&quizReveal, "reveal", false, "mark the correct answers")
	quizCmd.Flags().BoolVarP(&quizInteractive, "interactive", "i", false, "answer the questions one by one")
	quizCmd.Flags().BoolVar(&quizCopy, "copy", false, "copy the questions as JSON to the clipboard")
	quizCmd.MarkFlagsMutuallyExclusive("topic", "text")
	quizCmd.MarkFlagsMutuallyExclusive("json", "interactive")
	quizCmd.AddCommand(quizValidateCmd)
	rootCmd.AddCommand(quizCmd)
}

func runQuiz(cmd *cobra.Command, _ []string) error {
	if quizService == nil {
		return fmt.Errorf("quiz: %w", ErrNotConfigured)
	}

	questions, err := drawQuiz(cmd)
	if err != nil {
		return err
	}

	if quizCopy {
		if actionService == nil {
			return fmt.Errorf("clipboard: %w", ErrNotConfigured)
		}
		if err := actionService.CopyQuiz(cmd.Context(), questions); err != nil {
			return err
		}
		cmd.PrintErrln("تم نسخ الأسئلة")
	}

	switch {
	case quizJSON:
		data, err := quizService.Encode(questions)
		if err != nil {
			return err
		}
		cmd.Println(string(data))
		return nil
	case quizInteractive:
		return runInteractiveQuiz(cmd, questions)
	default:
		return printMarkdown(cmd, markdown.Quiz(questions, quizReveal))
	}
}

func drawQuiz(cmd *cobra.Command) ([]domain.QuizQuestion, error) {
	if quizText != "" {
		questions, id, err := quizService.ForText(cmd.Context(), quizText, "")
		if err != nil {
			return nil, fmt.Errorf("failed to draw quiz: %w", err)
		}
		if id != "" {
			cmd.PrintErrf("topic: %s\n", id)
		}
		return questions, nil
	}

	var id domain.TopicID
	if quizTopic != "" {
		t, err := parseTopic(quizTopic)
		if err != nil {
			return nil, err
		}
		id = t.ID
	}
	questions, err := quizService.Select(cmd.Context(), id)
	if err != nil {
		return nil, fmt.Errorf("failed to draw quiz: %w", err)
	}
	return questions, nil
}

func runInteractiveQuiz(cmd *cobra.Command, questions []domain.QuizQuestion) error {
	if !isTerminal(os.Stdin) {
		return errors.New("--interactive needs a terminal")
	}

	score := 0
	for i := range questions {
		q := &questions[i]
		var choice string
		err := huh.NewForm(huh.NewGroup(
			huh.NewSelect[string]().
				Title(fmt.Sprintf("%d/%d  %s", i+1, len(questions), q.Question)).
				Options(huh.NewOptions(q.Options...)...).
				Value(&choice),
		)).Run()
		if errors.Is(err, huh.ErrUserAborted) {
			break
		}
		if err != nil {
			return err
		}

		if q.IsCorrect(choice) {
			score++
			cmd.Println("✓ إجابة صحيحة")
		} else {
			cmd.Printf("✗ الإجابة الصحيحة: %s\n", q.CorrectAnswer)
		}
	}
	cmd.Printf("\nالنتيجة: %d / %d\n", score, len(questions))
	return nil
}

func runQuizValidate(cmd *cobra.Command, args []string) error {
	if quizService == nil {
		return fmt.Errorf("quiz: %w", ErrNotConfigured)
	}

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read quiz: %w", err)
	}
	questions, err := quizService.Decode(data)
	if err != nil {
		return fmt.Errorf("invalid quiz: %w", err)
	}
	cmd.Printf("%s: %d valid questions\n", args[0], len(questions))
	return nil
}
