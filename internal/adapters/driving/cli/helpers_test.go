package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"
	"github.com/stretchr/testify/require"

	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/adapters/driven/catalog"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/adapters/driven/export"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/adapters/driven/quizjson"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/adapters/driven/storage/memory"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/services"
)

// MockClipboard records what the commands copy.
type MockClipboard struct {
	Text      string
	Writes    int
	Available bool
}

func (m *MockClipboard) WriteText(text string) error {
	m.Text = text
	m.Writes++
	return nil
}

func (m *MockClipboard) Supported() bool { return m.Available }

// setupTestServices installs real services over the built-in catalog and
// in-memory stores, and restores an empty set when the test ends.
func setupTestServices(t *testing.T) (*Services, *MockClipboard) {
	t.Helper()
	svc, clip := newTestServices(t)
	SetServices(svc)
	resetFlags()

	t.Cleanup(func() {
		SetServices(&Services{})
		resetFlags()
	})
	return svc, clip
}

func newTestServices(t *testing.T) (*Services, *MockClipboard) {
	t.Helper()
	ctx := context.Background()

	cat, err := services.NewCatalogService(ctx, catalog.NewSource(""))
	require.NoError(t, err)
	codec, err := quizjson.NewCodec()
	require.NoError(t, err)

	feedbackStore := memory.NewFeedbackStore()
	quiz := services.NewQuizService(cat, services.NoLatency{}, codec, services.QuizConfig{})
	clip := &MockClipboard{Available: true}

	svc := &Services{
		Catalog:   cat,
		Assistant: services.NewAssistantService(cat, services.NoLatency{}, 0),
		Search:    services.NewSearchService(cat, 0),
		Quiz:      quiz,
		Progress:  services.NewProgressService(cat, memory.NewProgressStore(), feedbackStore, export.NewXLSX()),
		Feedback:  services.NewFeedbackService(cat, feedbackStore),
		Settings:  services.NewSettingsService(memory.NewConfigStore()),
		Actions:   services.NewActionService(clip, quiz),
	}
	return svc, clip
}

// resetFlags puts every flag of every command back to its default so
// values and mutual-exclusion state do not leak between executions.
func resetFlags() {
	var walk func(c *cobra.Command)
	walk = func(c *cobra.Command) {
		reset := func(f *pflag.Flag) {
			_ = f.Value.Set(f.DefValue)
			f.Changed = false
		}
		c.Flags().VisitAll(reset)
		c.PersistentFlags().VisitAll(reset)
		for _, sub := range c.Commands() {
			walk(sub)
		}
	}
	walk(rootCmd)
}

// executeCommand runs the root command with args and returns its output.
func executeCommand(t *testing.T, args ...string) (string, error) {
	t.Helper()
	resetFlags()

	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	defer func() {
		rootCmd.SetOut(nil)
		rootCmd.SetErr(nil)
		rootCmd.SetArgs(nil)
	}()

	err := rootCmd.ExecuteContext(context.Background())
	return buf.String(), err
}
