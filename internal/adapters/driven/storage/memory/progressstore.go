package memory

import (
	"context"
	"slices"
	"sync"

	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/domain"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/ports/driven"
)

// Ensure ProgressStore implements the interface.
var _ driven.ProgressStore = (*ProgressStore)(nil)

// ProgressStore is an in-memory implementation of driven.ProgressStore.
type ProgressStore struct {
	mu      sync.RWMutex
	records map[domain.TopicID]domain.CheckedSteps
}

// NewProgressStore creates a new in-memory progress store.
func NewProgressStore() *ProgressStore {
	return &ProgressStore{
		records: make(map[domain.TopicID]domain.CheckedSteps),
	}
}

// Load returns a copy of the saved steps, or an empty set.
func (s *ProgressStore) Load(_ context.Context, id domain.TopicID) (domain.CheckedSteps, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	steps, ok := s.records[id]
	if !ok {
		return domain.CheckedSteps{}, nil
	}
	return slices.Clone(steps), nil
}

// Save replaces the saved steps.
func (s *ProgressStore) Save(_ context.Context, id domain.TopicID, steps domain.CheckedSteps) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.records[id] = slices.Clone(steps)
	return nil
}

// Update applies fn under the write lock.
func (s *ProgressStore) Update(
	_ context.Context, id domain.TopicID, fn func(domain.CheckedSteps) domain.CheckedSteps,
) (domain.CheckedSteps, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	current := slices.Clone(s.records[id])
	if current == nil {
		current = domain.CheckedSteps{}
	}
	next := slices.Clone(fn(current))
	s.records[id] = next
	return slices.Clone(next), nil
}

// Delete removes a record.
func (s *ProgressStore) Delete(_ context.Context, id domain.TopicID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	delete(s.records, id)
	return nil
}

// List returns every record.
func (s *ProgressStore) List(_ context.Context) (map[domain.TopicID]domain.CheckedSteps, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make(map[domain.TopicID]domain.CheckedSteps, len(s.records))
	for id, steps := range s.records {
		out[id] = slices.Clone(steps)
	}
	return out, nil
}
