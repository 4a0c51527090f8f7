package cli

import (
	"fmt"

	"github.com/charmbracelet/glamour"
	"github.com/goccy/go-json"
	"github.com/spf13/cobra"

	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/adapters/driving/markdown"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/domain"
)

var (
	topicsJSON bool
	showRaw    bool
)

var topicsCmd = &cobra.Command{
	Use:   "topics",
	Short: "List guide topics",
	Long: `Lists every topic in sidebar order with its checklist progress.
A check mark follows topics whose steps are all completed.`,
	Args: cobra.NoArgs,
	RunE: runTopics,
}

var showCmd = &cobra.Command{
	Use:   "show [topic]",
	Short: "Show a topic page",
	Long: `Renders a topic's steps, FAQ and tips in the terminal.
Without a topic the first topic in the catalog is shown.`,
	Args: cobra.MaximumNArgs(1),
	RunE: runShow,
}

func init() {
	topicsCmd.Flags().BoolVar(&topicsJSON, "json", false, "output topics as JSON")
	showCmd.Flags().BoolVar(&showRaw, "raw", false, "print Markdown without styling")
	rootCmd.AddCommand(topicsCmd)
	rootCmd.AddCommand(showCmd)
}

type topicRow struct {
	ID      domain.TopicID `json:"id"`
	Title   string         `json:"title"`
	Checked int            `json:"checked"`
	Total   int            `json:"total"`
	Done    bool           `json:"complete"`
}

func runTopics(cmd *cobra.Command, _ []string) error {
	if progressService == nil {
		return fmt.Errorf("progress: %w", ErrNotConfigured)
	}

	summary, err := progressService.Summary(cmd.Context())
	if err != nil {
		return fmt.Errorf("failed to load progress: %w", err)
	}

	rows := make([]topicRow, len(summary))
	for i, tp := range summary {
		rows[i] = topicRow{ID: tp.TopicID, Title: tp.Title, Checked: tp.Checked.Count(), Total: tp.Total, Done: tp.Complete}
	}

	if topicsJSON {
		return printJSON(cmd, rows)
	}

	for i, r := range rows {
		badge := ""
		if r.Done {
			badge = " ✓"
		}
		cmd.Printf("  [%d] %s%s\n", i+1, r.Title, badge)
		cmd.Printf("      %s  %d / %d مكتمل\n", r.ID, r.Checked, r.Total)
	}
	return nil
}

func runShow(cmd *cobra.Command, args []string) error {
	if catalogService == nil {
		return fmt.Errorf("catalog: %w", ErrNotConfigured)
	}

	topic := catalogService.First()
	if len(args) == 1 {
		var err error
		if topic, err = parseTopic(args[0]); err != nil {
			return err
		}
	}

	var checked domain.CheckedSteps
	if progressService != nil {
		var err error
		if checked, err = progressService.Load(cmd.Context(), topic.ID); err != nil {
			return fmt.Errorf("failed to load progress: %w", err)
		}
	}

	return printMarkdown(cmd, markdown.Topic(topic, checked))
}

// printMarkdown renders md with glamour in the configured theme, or prints
// it as-is with --raw or when stdout is not a terminal.
func printMarkdown(cmd *cobra.Command, md string) error {
	if showRaw || !isTerminal(stdoutFile(cmd)) {
		cmd.Print(md)
		return nil
	}

	r, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(glamourStyle()),
		glamour.WithWordWrap(terminalWidth(80)-4),
	)
	if err != nil {
		return fmt.Errorf("failed to create renderer: %w", err)
	}
	out, err := r.Render(md)
	if err != nil {
		return fmt.Errorf("failed to render: %w", err)
	}
	cmd.Print(out)
	return nil
}

func glamourStyle() string {
	if settingsService == nil {
		return "dark"
	}
	settings, err := settingsService.Get()
	if err != nil || settings.EffectiveTheme() == domain.ThemeDark {
		return "dark"
	}
	return "light"
}

func printJSON(cmd *cobra.Command, v any) error {
	data, err := json.MarshalIndentWithOption(v, "", "  ", json.DisableHTMLEscape())
	if err != nil {
		return fmt.Errorf("failed to marshal output: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
