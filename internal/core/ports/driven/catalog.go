package driven

import (
	"context"

	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/domain"
)

// CatalogSource produces the ordered topic catalog.
type CatalogSource interface {
	// Load reads and validates the full catalog.
	// The returned slice is owned by the caller.
	Load(ctx context.Context) ([]domain.Topic, error)

	// Name describes where the catalog came from (for logs and status).
	Name() string
}

// CatalogWatcher notifies when the catalog's backing file changes.
type CatalogWatcher interface {
	// Watch blocks until ctx is cancelled, calling onChange after each
	// settled burst of file events.
	Watch(ctx context.Context, onChange func()) error
}
