package driven

import (
	"context"

	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/domain"
)

// ProgressStore persists checked-step sets keyed by topic.
type ProgressStore interface {
	// Load returns the checked steps for a topic.
	// Returns an empty set (not an error) when nothing was saved.
	Load(ctx context.Context, id domain.TopicID) (domain.CheckedSteps, error)

	// Save replaces the checked steps for a topic.
	Save(ctx context.Context, id domain.TopicID, steps domain.CheckedSteps) error

	// Update replaces a topic's steps with fn applied to the saved steps.
	// No other write to the topic can land between the read and the write,
	// including writes from another process sharing the same storage.
	Update(ctx context.Context, id domain.TopicID, fn func(domain.CheckedSteps) domain.CheckedSteps) (domain.CheckedSteps, error)

	// Delete removes a topic's record.
	Delete(ctx context.Context, id domain.TopicID) error

	// List returns every saved record.
	List(ctx context.Context) (map[domain.TopicID]domain.CheckedSteps, error)
}
