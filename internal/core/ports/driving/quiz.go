package driving

import (
	"context"

	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/domain"
)

// QuizService draws practice questions from topic banks.
type QuizService interface {
	// Select draws a random subset of the topic's bank.
	// An empty id or empty bank yields the generic fallback question.
	Select(ctx context.Context, id domain.TopicID) ([]domain.QuizQuestion, error)

	// ForText picks the topic named by text (falling back to current)
	// and draws from it. Returns the topic actually used.
	ForText(ctx context.Context, text string, current domain.TopicID) ([]domain.QuizQuestion, domain.TopicID, error)

	// Decode validates a quiz JSON document.
	Decode(data []byte) ([]domain.QuizQuestion, error)

	// Encode renders questions as quiz JSON.
	Encode(questions []domain.QuizQuestion) ([]byte, error)
}
