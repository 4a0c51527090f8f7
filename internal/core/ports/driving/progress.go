package driving

import (
	"context"
	"io"

	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/domain"
)

// ProgressService tracks checklist progress per topic.
type ProgressService interface {
	// Load returns the checked steps for a topic, dropping stale indices.
	Load(ctx context.Context, id domain.TopicID) (domain.CheckedSteps, error)

	// Toggle flips one step, persists the result and reports completion.
	Toggle(ctx context.Context, id domain.TopicID, index int) (domain.CheckedSteps, bool, error)

	// Completion returns the complete flag for every topic.
	Completion(ctx context.Context) (domain.ProgressMap, error)

	// Summary returns per-topic progress in catalog order.
	Summary(ctx context.Context) ([]domain.TopicProgress, error)

	// Reset deletes a topic's record.
	Reset(ctx context.Context, id domain.TopicID) error

	// Export writes the progress report to w.
	Export(ctx context.Context, w io.Writer) error
}
