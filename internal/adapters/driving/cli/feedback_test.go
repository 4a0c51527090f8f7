package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/domain"
)

func TestFeedbackCmd_RecordsVotes(t *testing.T) {
	setupTestServices(t)

	out, err := executeCommand(t, "feedback", "reports", "up")
	require.NoError(t, err)
	assert.Contains(t, out, "شكراً لملاحظاتك!")
	assert.Contains(t, out, "استخراج التقارير: 👍 1  👎 0")

	_, err = executeCommand(t, "feedback", "reports", "down")
	require.NoError(t, err)

	out, err = executeCommand(t, "feedback", "reports")
	require.NoError(t, err)
	assert.NotContains(t, out, "شكراً")
	assert.Contains(t, out, "👍 1  👎 1")
}

func TestFeedbackCmd_InvalidVote(t *testing.T) {
	setupTestServices(t)

	_, err := executeCommand(t, "feedback", "reports", "maybe")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
}
