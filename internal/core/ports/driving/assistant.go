package driving

import (
	"context"

	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/domain"
)

// AssistantService answers free-text questions from the catalog.
type AssistantService interface {
	// Ask matches query against the catalog, preferring the current topic.
	// current may be empty. A miss yields the fallback reply, not an error.
	Ask(ctx context.Context, query string, current domain.TopicID) (domain.Reply, error)

	// Welcome returns the message that opens every conversation.
	Welcome() domain.ChatMessage
}
