package cli

import (
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/domain"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/logger"
)

var (
	askTopic  string
	askListen bool
	askJSON   bool
)

var askCmd = &cobra.Command{
	Use:   "ask [question]",
	Short: "Ask the guide assistant",
	Long: `Answers a question from the guide's topics.

Greetings get a greeting. Otherwise the FAQ and steps of --topic are
checked first, then every topic's title, tips, steps and FAQ in order.
With --listen the question is captured from the microphone instead.`,
	Args: cobra.ArbitraryArgs,
	RunE: runAsk,
}

func init() {
	askCmd.Flags().StringVarP(&askTopic, "topic", "t", "", "topic you are reading, preferred when matching")
	askCmd.Flags().BoolVar(&askListen, "listen", false, "capture the question by voice")
	askCmd.Flags().BoolVar(&askJSON, "json", false, "output the reply as JSON")
	rootCmd.AddCommand(askCmd)
}

func runAsk(cmd *cobra.Command, args []string) error {
	if assistantService == nil {
		return fmt.Errorf("assistant: %w", ErrNotConfigured)
	}

	var current domain.TopicID
	if askTopic != "" {
		t, err := parseTopic(askTopic)
		if err != nil {
			return err
		}
		current = t.ID
	}

	query := strings.Join(args, " ")
	if askListen {
		heard, err := listen(cmd)
		if err != nil {
			return err
		}
		query = heard
	}
	if strings.TrimSpace(query) == "" {
		return errors.New("ask needs a question, or --listen")
	}

	reply, err := assistantService.Ask(cmd.Context(), query, current)
	if err != nil {
		return fmt.Errorf("ask failed: %w", err)
	}
	logger.Debug("Ask: %q matched %s", query, reply.Kind)

	if askJSON {
		return printJSON(cmd, reply)
	}
	cmd.Println(reply.Text)
	if reply.TopicID != "" {
		cmd.Println()
		cmd.Printf("  → lmsguide show %s\n", reply.TopicID)
	}
	return nil
}

func listen(cmd *cobra.Command) (string, error) {
	if speechService == nil || !speechService.Supported() {
		return "", domain.ErrSpeechUnsupported
	}
	cmd.PrintErrln("جاري الاستماع...")
	text, err := speechService.Listen(cmd.Context())
	if err != nil {
		return "", fmt.Errorf("voice capture failed: %w", err)
	}
	cmd.PrintErrf("سمعت: %s\n", text)
	return text, nil
}
