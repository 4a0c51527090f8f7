package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	"github.com/goccy/go-json"

	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/domain"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/ports/driven"
)

// progressStore implements driven.ProgressStore.
type progressStore struct {
	store *Store
}

var _ driven.ProgressStore = (*progressStore)(nil)

// execQuerier is satisfied by both *sql.DB and a *sql.Conn holding a
// transaction.
type execQuerier interface {
	ExecContext(ctx context.Context, query string, args ...any) (sql.Result, error)
	QueryRowContext(ctx context.Context, query string, args ...any) *sql.Row
}

// Load returns the saved steps, or an empty set.
func (s *progressStore) Load(ctx context.Context, id domain.TopicID) (domain.CheckedSteps, error) {
	return loadSteps(ctx, s.store.db, id)
}

// Save replaces the saved steps.
func (s *progressStore) Save(ctx context.Context, id domain.TopicID, steps domain.CheckedSteps) error {
	return saveSteps(ctx, s.store.db, id, steps)
}

// Update reads and writes inside one BEGIN IMMEDIATE transaction. The
// immediate lock blocks other writers, in this process or another, until
// commit; they wait up to the connection's busy timeout.
func (s *progressStore) Update(
	ctx context.Context, id domain.TopicID, fn func(domain.CheckedSteps) domain.CheckedSteps,
) (steps domain.CheckedSteps, err error) {
	conn, err := s.store.db.Conn(ctx)
	if err != nil {
		return nil, fmt.Errorf("acquiring connection: %w", err)
	}
	defer conn.Close()

	if _, err := conn.ExecContext(ctx, "BEGIN IMMEDIATE"); err != nil {
		return nil, fmt.Errorf("beginning progress update: %w", err)
	}
	defer func() {
		if err != nil {
			_, _ = conn.ExecContext(context.WithoutCancel(ctx), "ROLLBACK")
		}
	}()

	current, err := loadSteps(ctx, conn, id)
	if err != nil {
		return nil, err
	}
	steps = fn(current)
	if err := saveSteps(ctx, conn, id, steps); err != nil {
		return nil, err
	}
	if _, err := conn.ExecContext(ctx, "COMMIT"); err != nil {
		return nil, fmt.Errorf("committing progress update: %w", err)
	}
	return steps, nil
}

func loadSteps(ctx context.Context, q execQuerier, id domain.TopicID) (domain.CheckedSteps, error) {
	var raw string
	err := q.QueryRowContext(ctx,
		"SELECT steps FROM progress WHERE key = ?", domain.ProgressKey(id),
	).Scan(&raw)
	if errors.Is(err, sql.ErrNoRows) {
		return domain.CheckedSteps{}, nil
	}
	if err != nil {
		return nil, fmt.Errorf("querying progress: %w", err)
	}
	return decodeSteps(raw)
}

func saveSteps(ctx context.Context, q execQuerier, id domain.TopicID, steps domain.CheckedSteps) error {
	if steps == nil {
		steps = domain.CheckedSteps{}
	}
	raw, err := json.Marshal(steps)
	if err != nil {
		return fmt.Errorf("marshalling steps: %w", err)
	}

	_, err = q.ExecContext(ctx, `
		INSERT INTO progress (key, topic_id, steps, updated_at)
		VALUES (?, ?, ?, ?)
		ON CONFLICT(key) DO UPDATE SET
			steps = excluded.steps,
			updated_at = excluded.updated_at
	`, domain.ProgressKey(id), string(id), string(raw), time.Now().UTC())
	if err != nil {
		return fmt.Errorf("saving progress: %w", err)
	}
	return nil
}

// Delete removes a record. Deleting a missing record is not an error.
func (s *progressStore) Delete(ctx context.Context, id domain.TopicID) error {
	if _, err := s.store.db.ExecContext(ctx, "DELETE FROM progress WHERE key = ?", domain.ProgressKey(id)); err != nil {
		return fmt.Errorf("deleting progress: %w", err)
	}
	return nil
}

// List returns every record.
func (s *progressStore) List(ctx context.Context) (map[domain.TopicID]domain.CheckedSteps, error) {
	rows, err := s.store.db.QueryContext(ctx, "SELECT topic_id, steps FROM progress")
	if err != nil {
		return nil, fmt.Errorf("querying progress: %w", err)
	}
	defer rows.Close()

	out := make(map[domain.TopicID]domain.CheckedSteps)
	for rows.Next() {
		var id, raw string
		if err := rows.Scan(&id, &raw); err != nil {
			return nil, fmt.Errorf("scanning progress: %w", err)
		}
		steps, err := decodeSteps(raw)
		if err != nil {
			return nil, err
		}
		out[domain.TopicID(id)] = steps
	}
	return out, rows.Err()
}

func decodeSteps(raw string) (domain.CheckedSteps, error) {
	steps := domain.CheckedSteps{}
	if raw == "" || raw == "null" {
		return steps, nil
	}
	if err := json.Unmarshal([]byte(raw), &steps); err != nil {
		return nil, fmt.Errorf("unmarshalling steps: %w", err)
	}
	return steps, nil
}
