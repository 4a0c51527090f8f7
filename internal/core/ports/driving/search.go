package driving

import (
	"context"

	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/domain"
)

// SearchService provides header search across the catalog.
type SearchService interface {
	// Search returns up to limit matches in catalog order.
	// A blank query returns no results. limit <= 0 uses the configured default.
	Search(ctx context.Context, query string, limit int) ([]domain.SearchResult, error)
}
