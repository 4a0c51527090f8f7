package services

import (
	"context"
	"fmt"
	"sync"

	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/domain"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/ports/driven"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/ports/driving"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/logger"
)

// Ensure CatalogService implements the interface.
var _ driving.CatalogService = (*CatalogService)(nil)

// CatalogService holds the active topic catalog.
// It is safe for concurrent use; Reload swaps the whole catalog atomically.
type CatalogService struct {
	source driven.CatalogSource

	mu     sync.RWMutex
	topics []domain.Topic
	index  map[domain.TopicID]int
}

// NewCatalogService loads the catalog from source.
func NewCatalogService(ctx context.Context, source driven.CatalogSource) (*CatalogService, error) {
	s := &CatalogService{source: source}
	if err := s.Reload(ctx); err != nil {
		return nil, err
	}
	return s, nil
}

// Topics returns every topic in catalog order.
func (s *CatalogService) Topics() []domain.Topic {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]domain.Topic, len(s.topics))
	copy(out, s.topics)
	return out
}

// Get returns a topic by ID.
func (s *CatalogService) Get(id domain.TopicID) (*domain.Topic, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	i, ok := s.index[id]
	if !ok {
		return nil, fmt.Errorf("topic %q: %w", id, domain.ErrNotFound)
	}
	t := s.topics[i]
	return &t, nil
}

// First returns the first topic.
func (s *CatalogService) First() *domain.Topic {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if len(s.topics) == 0 {
		return nil
	}
	t := s.topics[0]
	return &t
}

// Neighbours returns the topics before and after id.
func (s *CatalogService) Neighbours(id domain.TopicID) (prev, next *domain.Topic) {
	return domain.Neighbours(s.Topics(), id)
}

// Reload re-reads the catalog source. The previous catalog stays active
// when the new one fails to load or validate.
func (s *CatalogService) Reload(ctx context.Context) error {
	logger.Debug("Loading catalog from %s", s.source.Name())

	topics, err := s.source.Load(ctx)
	if err != nil {
		return fmt.Errorf("load catalog: %w", err)
	}
	if err := domain.ValidateCatalog(topics); err != nil {
		return fmt.Errorf("validate catalog: %w", err)
	}

	index := make(map[domain.TopicID]int, len(topics))
	for i := range topics {
		index[topics[i].ID] = i
	}

	s.mu.Lock()
	s.topics = topics
	s.index = index
	s.mu.Unlock()

	logger.Info("Catalog loaded: %d topics", len(topics))
	return nil
}

// Source describes where the catalog was loaded from.
func (s *CatalogService) Source() string {
	return s.source.Name()
}
