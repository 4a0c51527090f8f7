package services

import (
	"context"
	"fmt"
	"io"
	"sync"
	"time"

	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/domain"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/ports/driven"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/ports/driving"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/logger"
)

// Ensure ProgressService implements the interface.
var _ driving.ProgressService = (*ProgressService)(nil)

// ProgressService tracks checklist progress. Writes are serialised so
// concurrent toggles on one topic each see the previous result.
type ProgressService struct {
	mu       sync.Mutex
	catalog  driving.CatalogService
	store    driven.ProgressStore
	feedback driven.FeedbackStore
	exporter driven.ProgressExporter
	now      func() time.Time
}

// NewProgressService creates a new progress service.
// feedback and exporter are optional (can be nil).
func NewProgressService(
	catalog driving.CatalogService,
	store driven.ProgressStore,
	feedback driven.FeedbackStore,
	exporter driven.ProgressExporter,
) *ProgressService {
	return &ProgressService{
		catalog:  catalog,
		store:    store,
		feedback: feedback,
		exporter: exporter,
		now:      time.Now,
	}
}

// Load returns the checked steps for a topic. Indices that no longer
// refer to a step are dropped.
func (s *ProgressService) Load(ctx context.Context, id domain.TopicID) (domain.CheckedSteps, error) {
	t, err := s.catalog.Get(id)
	if err != nil {
		return nil, err
	}
	return s.load(ctx, t)
}

func (s *ProgressService) load(ctx context.Context, t *domain.Topic) (domain.CheckedSteps, error) {
	steps, err := s.store.Load(ctx, t.ID)
	if err != nil {
		return nil, fmt.Errorf("load progress for %s: %w", t.ID, err)
	}
	return s.sanitize(t, steps), nil
}

func (s *ProgressService) sanitize(t *domain.Topic, steps domain.CheckedSteps) domain.CheckedSteps {
	clean := steps.Sanitize(t.StepCount())
	if len(clean) != len(steps) {
		logger.Warn("Progress: dropped %d stale step indices for %s", len(steps)-len(clean), t.ID)
	}
	return clean
}

// Toggle flips one step and persists the result.
func (s *ProgressService) Toggle(
	ctx context.Context, id domain.TopicID, index int,
) (domain.CheckedSteps, bool, error) {
	t, err := s.catalog.Get(id)
	if err != nil {
		return nil, false, err
	}
	if index < 0 || index >= t.StepCount() {
		return nil, false, fmt.Errorf("%w: step %d of %s (has %d)", domain.ErrInvalidInput, index, id, t.StepCount())
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	steps, err := s.store.Update(ctx, id, func(saved domain.CheckedSteps) domain.CheckedSteps {
		return s.sanitize(t, saved).Toggle(index)
	})
	if err != nil {
		return nil, false, fmt.Errorf("save progress for %s: %w", id, err)
	}

	complete := steps.IsComplete(t.StepCount())
	logger.Debug("Progress: %s step %d -> %d/%d", id, index, steps.Count(), t.StepCount())
	return steps, complete, nil
}

// Completion returns the complete flag for every topic.
func (s *ProgressService) Completion(ctx context.Context) (domain.ProgressMap, error) {
	summary, err := s.Summary(ctx)
	if err != nil {
		return nil, err
	}
	out := make(domain.ProgressMap, len(summary))
	for _, p := range summary {
		out[p.TopicID] = p.Complete
	}
	return out, nil
}

// Summary returns per-topic progress in catalog order.
func (s *ProgressService) Summary(ctx context.Context) ([]domain.TopicProgress, error) {
	topics := s.catalog.Topics()
	out := make([]domain.TopicProgress, 0, len(topics))
	for i := range topics {
		t := &topics[i]
		steps, err := s.load(ctx, t)
		if err != nil {
			return nil, err
		}
		out = append(out, domain.TopicProgress{
			TopicID:  t.ID,
			Title:    t.Title,
			Checked:  steps,
			Total:    t.StepCount(),
			Complete: steps.IsComplete(t.StepCount()),
		})
	}
	return out, nil
}

// Reset deletes a topic's record.
func (s *ProgressService) Reset(ctx context.Context, id domain.TopicID) error {
	if _, err := s.catalog.Get(id); err != nil {
		return err
	}
	s.mu.Lock()
	defer s.mu.Unlock()
	if err := s.store.Delete(ctx, id); err != nil {
		return fmt.Errorf("reset progress for %s: %w", id, err)
	}
	return nil
}

// Export writes the progress report to w.
func (s *ProgressService) Export(ctx context.Context, w io.Writer) error {
	if s.exporter == nil {
		return fmt.Errorf("progress exporter: %w", domain.ErrNotFound)
	}

	summary, err := s.Summary(ctx)
	if err != nil {
		return err
	}
	report := &domain.ProgressReport{
		GeneratedAt: s.now(),
		Topics:      summary,
	}
	if s.feedback != nil {
		report.Feedback, err = s.feedback.Summaries(ctx)
		if err != nil {
			return fmt.Errorf("load feedback: %w", err)
		}
	}

	logger.Info("Exporting progress for %d topics", len(summary))
	return s.exporter.Export(ctx, w, report)
}
