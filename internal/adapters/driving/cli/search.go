package cli

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/domain"
)

var (
	searchLimit int
	searchJSON  bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query]",
	Short: "Search topic titles, steps and FAQ",
	Long: `Searches the guide the way the header search box does.
Matches are case-insensitive and listed in catalog order: for each topic
a title match, then matching steps, then matching FAQ questions.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", domain.DefaultSearchLimit, "maximum number of results")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	if searchService == nil {
		return fmt.Errorf("search: %w", ErrNotConfigured)
	}

	query := strings.Join(args, " ")
	results, err := searchService.Search(cmd.Context(), query, searchLimit)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	if searchJSON {
		return printJSON(cmd, results)
	}
	return outputSearchTable(cmd, results)
}

var matchLabels = map[domain.MatchType]string{
	domain.MatchTitle: "عنوان",
	domain.MatchStep:  "خطوة",
	domain.MatchFAQ:   "سؤال",
	domain.MatchTip:   "نصيحة",
}

// outputSearchTable groups consecutive hits under their topic. Search
// returns hits in catalog order, so each topic appears once.
func outputSearchTable(cmd *cobra.Command, results []domain.SearchResult) error {
	if len(results) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	cmd.Printf("Results (%d):\n", len(results))
	var current domain.TopicID
	for i, r := range results {
		if r.TopicID != current || i == 0 {
			current = r.TopicID
			cmd.Printf("\n  %s  (lmsguide show %s)\n", r.TopicTitle, r.TopicID)
		}
		cmd.Printf("    %d. [%s] %s\n", i+1, matchLabels[r.MatchType], r.Text)
	}
	return nil
}
