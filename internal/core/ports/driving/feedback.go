package driving

import (
	"context"

	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/domain"
)

// FeedbackService records helpfulness votes for topics.
type FeedbackService interface {
	// Vote records one vote and returns the stored record.
	Vote(ctx context.Context, id domain.TopicID, vote domain.Vote) (*domain.Feedback, error)

	// Summary returns the vote counts for a topic.
	Summary(ctx context.Context, id domain.TopicID) (domain.FeedbackSummary, error)
}
