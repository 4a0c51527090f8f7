package services

import (
	"context"
	"strings"

	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/domain"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/ports/driving"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/logger"
)

// Ensure SearchService implements the interface.
var _ driving.SearchService = (*SearchService)(nil)

// SearchService provides header search over the catalog.
type SearchService struct {
	catalog      driving.CatalogService
	defaultLimit int
}

// NewSearchService creates a new search service.
// defaultLimit <= 0 falls back to domain.DefaultSearchLimit.
func NewSearchService(catalog driving.CatalogService, defaultLimit int) *SearchService {
	if defaultLimit <= 0 {
		defaultLimit = domain.DefaultSearchLimit
	}
	return &SearchService{
		catalog:      catalog,
		defaultLimit: defaultLimit,
	}
}

// Search returns up to limit matches in catalog order.
func (s *SearchService) Search(ctx context.Context, query string, limit int) ([]domain.SearchResult, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	if strings.TrimSpace(query) == "" {
		return []domain.SearchResult{}, nil
	}
	if limit <= 0 {
		limit = s.defaultLimit
	}

	results := HeaderSearch(s.catalog.Topics(), query, limit)
	logger.Debug("Search: %q -> %d results (limit %d)", query, len(results), limit)
	return results, nil
}
