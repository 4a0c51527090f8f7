package sqlite

import (
	"context"
	"fmt"
	"time"

	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/domain"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/ports/driven"
)

// feedbackStore implements driven.FeedbackStore.
type feedbackStore struct {
	store *Store
}

var _ driven.FeedbackStore = (*feedbackStore)(nil)

// Save records a vote.
func (s *feedbackStore) Save(ctx context.Context, fb domain.Feedback) error {
	_, err := s.store.db.ExecContext(ctx,
		"INSERT INTO feedback (id, topic_id, vote, created_at) VALUES (?, ?, ?, ?)",
		fb.ID, string(fb.TopicID), string(fb.Vote), fb.CreatedAt.UTC(),
	)
	if err != nil {
		return fmt.Errorf("saving feedback: %w", err)
	}
	return nil
}

// List returns a topic's votes, oldest first.
func (s *feedbackStore) List(ctx context.Context, id domain.TopicID) ([]domain.Feedback, error) {
	rows, err := s.store.db.QueryContext(ctx,
		"SELECT id, vote, created_at FROM feedback WHERE topic_id = ? ORDER BY created_at, id",
		string(id),
	)
	if err != nil {
		return nil, fmt.Errorf("querying feedback: %w", err)
	}
	defer rows.Close()

	var out []domain.Feedback
	for rows.Next() {
		var (
			fb      domain.Feedback
			vote    string
			created time.Time
		)
		if err := rows.Scan(&fb.ID, &vote, &created); err != nil {
			return nil, fmt.Errorf("scanning feedback: %w", err)
		}
		fb.TopicID = id
		fb.Vote = domain.Vote(vote)
		fb.CreatedAt = created
		out = append(out, fb)
	}
	return out, rows.Err()
}

// Summaries counts votes per topic, ordered by topic id.
func (s *feedbackStore) Summaries(ctx context.Context) ([]domain.FeedbackSummary, error) {
	rows, err := s.store.db.QueryContext(ctx, `
		SELECT topic_id,
		       SUM(CASE WHEN vote = 'up' THEN 1 ELSE 0 END),
		       SUM(CASE WHEN vote = 'down' THEN 1 ELSE 0 END)
		FROM feedback
		GROUP BY topic_id
		ORDER BY topic_id
	`)
	if err != nil {
		return nil, fmt.Errorf("querying feedback summaries: %w", err)
	}
	defer rows.Close()

	var out []domain.FeedbackSummary
	for rows.Next() {
		var (
			sum domain.FeedbackSummary
			id  string
		)
		if err := rows.Scan(&id, &sum.Up, &sum.Down); err != nil {
			return nil, fmt.Errorf("scanning feedback summary: %w", err)
		}
		sum.TopicID = domain.TopicID(id)
		out = append(out, sum)
	}
	return out, rows.Err()
}
