package cli

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/domain"
)

func TestCopyFAQCmd(t *testing.T) {
	_, clip := setupTestServices(t)

	out, err := executeCommand(t, "copy", "faq", "upload", "2")

	require.NoError(t, err)
	assert.Contains(t, out, "تم النسخ")
	assert.Contains(t, clip.Text, "هل يمكن إضافة ملفات كبيرة؟")
	assert.Contains(t, clip.Text, "500MB")
}

func TestCopyFAQCmd_OutOfRange(t *testing.T) {
	_, clip := setupTestServices(t)

	_, err := executeCommand(t, "copy", "faq", "upload", "3")

	assert.ErrorIs(t, err, domain.ErrInvalidInput)
	assert.Zero(t, clip.Writes)
}

func TestCopyFAQCmd_NoClipboard(t *testing.T) {
	_, clip := setupTestServices(t)
	clip.Available = false

	_, err := executeCommand(t, "copy", "faq", "upload", "1")

	assert.ErrorIs(t, err, domain.ErrClipboardUnavailable)
}

func TestCopyQuizCmd(t *testing.T) {
	_, clip := setupTestServices(t)

	out, err := executeCommand(t, "copy", "quiz", "upload")

	require.NoError(t, err)
	assert.Contains(t, out, "تم نسخ 3 أسئلة")
	assert.Contains(t, clip.Text, `"question"`)
}
