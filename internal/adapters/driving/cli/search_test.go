package cli

import (
	"strings"
	"testing"

	"github.com/goccy/go-json"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/domain"
)

func TestSearchCmd_PrintsResults(t *testing.T) {
	setupTestServices(t)

	out, err := executeCommand(t, "search", "Question", "Bank")

	require.NoError(t, err)
	assert.Contains(t, out, "Results (")
	assert.Contains(t, out, "(lmsguide show quiz_setup)")
	assert.Contains(t, out, "[سؤال]")
}

func TestSearchCmd_NoResults(t *testing.T) {
	setupTestServices(t)

	out, err := executeCommand(t, "search", "zzzz")

	require.NoError(t, err)
	assert.Contains(t, out, "No results found.")
}

func TestSearchCmd_GroupsByTopic(t *testing.T) {
	setupTestServices(t)

	out, err := executeCommand(t, "search", "اضغط", "--limit", "2")

	require.NoError(t, err)
	assert.Contains(t, out, "Results (2):")
	assert.Equal(t, 1, strings.Count(out, "lmsguide show upload"))
	assert.Contains(t, out, "1. [")
	assert.Contains(t, out, "2. [")
}

func TestSearchCmd_LimitAndJSON(t *testing.T) {
	setupTestServices(t)

	out, err := executeCommand(t, "search", "اضغط", "--limit", "2", "--json")
	require.NoError(t, err)

	var results []domain.SearchResult
	require.NoError(t, json.Unmarshal([]byte(out), &results))
	assert.Len(t, results, 2)
	assert.Equal(t, domain.TopicUpload, results[0].TopicID)
}
