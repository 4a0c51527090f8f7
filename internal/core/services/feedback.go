package services

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/domain"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/ports/driven"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/ports/driving"
)

// Ensure FeedbackService implements the interface.
var _ driving.FeedbackService = (*FeedbackService)(nil)

// FeedbackService records helpfulness votes.
type FeedbackService struct {
	catalog driving.CatalogService
	store   driven.FeedbackStore
	now     func() time.Time
}

// NewFeedbackService creates a new feedback service.
func NewFeedbackService(catalog driving.CatalogService, store driven.FeedbackStore) *FeedbackService {
	return &FeedbackService{
		catalog: catalog,
		store:   store,
		now:     time.Now,
	}
}

// Vote records one vote.
func (s *FeedbackService) Vote(ctx context.Context, id domain.TopicID, vote domain.Vote) (*domain.Feedback, error) {
	if !vote.IsValid() {
		return nil, fmt.Errorf("%w: vote %q", domain.ErrInvalidInput, vote)
	}
	if _, err := s.catalog.Get(id); err != nil {
		return nil, err
	}

	fb := domain.Feedback{
		ID:        uuid.New().String(),
		TopicID:   id,
		Vote:      vote,
		CreatedAt: s.now().UTC(),
	}
	if err := s.store.Save(ctx, fb); err != nil {
		return nil, fmt.Errorf("save feedback: %w", err)
	}
	return &fb, nil
}

// Summary returns the vote counts for a topic.
func (s *FeedbackService) Summary(ctx context.Context, id domain.TopicID) (domain.FeedbackSummary, error) {
	votes, err := s.store.List(ctx, id)
	if err != nil {
		return domain.FeedbackSummary{}, fmt.Errorf("list feedback: %w", err)
	}
	sum := domain.FeedbackSummary{TopicID: id}
	for _, v := range votes {
		switch v.Vote {
		case domain.VoteUp:
			sum.Up++
		case domain.VoteDown:
			sum.Down++
		}
	}
	return sum, nil
}
