package driving

import (
	"context"

	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/domain"
)

// CatalogService exposes the ordered topic catalog.
type CatalogService interface {
	// Topics returns every topic in catalog order.
	Topics() []domain.Topic

	// Get returns a topic by ID.
	// Returns domain.ErrNotFound if the catalog has no such topic.
	Get(id domain.TopicID) (*domain.Topic, error)

	// First returns the first topic, the default selection.
	First() *domain.Topic

	// Neighbours returns the topics before and after id.
	Neighbours(id domain.TopicID) (prev, next *domain.Topic)

	// Reload re-reads the catalog source. On failure the previous
	// catalog stays active.
	Reload(ctx context.Context) error

	// Source describes where the catalog was loaded from.
	Source() string
}
