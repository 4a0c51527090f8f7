package memory

import (
	"context"

	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/domain"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/ports/driven"
)

// Ensure CatalogSource implements the interface.
var _ driven.CatalogSource = (*CatalogSource)(nil)

// CatalogSource serves a fixed topic list.
type CatalogSource struct {
	topics []domain.Topic
	err    error
}

// NewCatalogSource creates a source returning topics.
func NewCatalogSource(topics []domain.Topic) *CatalogSource {
	return &CatalogSource{topics: topics}
}

// SetTopics replaces the served topics.
func (s *CatalogSource) SetTopics(topics []domain.Topic) {
	s.topics = topics
}

// SetError makes subsequent loads fail with err.
func (s *CatalogSource) SetError(err error) {
	s.err = err
}

// Load returns a copy of the topics.
func (s *CatalogSource) Load(_ context.Context) ([]domain.Topic, error) {
	if s.err != nil {
		return nil, s.err
	}
	out := make([]domain.Topic, len(s.topics))
	copy(out, s.topics)
	return out, nil
}

// Name identifies the source.
func (s *CatalogSource) Name() string {
	return "memory"
}
