package driven

import (
	"context"

	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/domain"
)

// FeedbackStore persists helpfulness votes.
type FeedbackStore interface {
	// Save records a vote.
	Save(ctx context.Context, fb domain.Feedback) error

	// List returns the votes for one topic, oldest first.
	List(ctx context.Context, id domain.TopicID) ([]domain.Feedback, error)

	// Summaries returns vote counts for every topic that has votes.
	Summaries(ctx context.Context) ([]domain.FeedbackSummary, error)
}
