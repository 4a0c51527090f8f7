package memory

import (
	"context"
	"sync"

	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/domain"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/ports/driven"
)

// Ensure FeedbackStore implements the interface.
var _ driven.FeedbackStore = (*FeedbackStore)(nil)

// FeedbackStore is an in-memory implementation of driven.FeedbackStore.
type FeedbackStore struct {
	mu    sync.RWMutex
	votes []domain.Feedback
}

// NewFeedbackStore creates a new in-memory feedback store.
func NewFeedbackStore() *FeedbackStore {
	return &FeedbackStore{}
}

// Save appends a vote.
func (s *FeedbackStore) Save(_ context.Context, fb domain.Feedback) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.votes = append(s.votes, fb)
	return nil
}

// List returns a topic's votes in insertion order.
func (s *FeedbackStore) List(_ context.Context, id domain.TopicID) ([]domain.Feedback, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.Feedback
	for _, v := range s.votes {
		if v.TopicID == id {
			out = append(out, v)
		}
	}
	return out, nil
}

// Summaries counts votes per topic in first-vote order.
func (s *FeedbackStore) Summaries(_ context.Context) ([]domain.FeedbackSummary, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	var out []domain.FeedbackSummary
	pos := make(map[domain.TopicID]int)
	for _, v := range s.votes {
		i, ok := pos[v.TopicID]
		if !ok {
			i = len(out)
			pos[v.TopicID] = i
			out = append(out, domain.FeedbackSummary{TopicID: v.TopicID})
		}
		if v.Vote == domain.VoteUp {
			out[i].Up++
		} else {
			out[i].Down++
		}
	}
	return out, nil
}
