package driving

import (
	"context"

	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/domain"
)

// ActionService provides clipboard actions for external actors.
// This is used by TUI, CLI, and MCP adapters.
type ActionService interface {
	// CopyFAQ copies a question/answer pair.
	CopyFAQ(ctx context.Context, item domain.FAQItem) error

	// CopyQuiz copies questions as indented quiz JSON.
	CopyQuiz(ctx context.Context, questions []domain.QuizQuestion) error

	// CanCopy reports whether a clipboard is available.
	CanCopy() bool
}
