package sqlite

import (
	"context"
	"path/filepath"
	"sync"
	"testing"
	"testing/fstest"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/domain"
)

// setupTestStore creates a SQLite store in a temporary directory.
func setupTestStore(t *testing.T) *Store {
	t.Helper()

	store, err := NewStore(t.TempDir())
	require.NoError(t, err)
	require.NotNil(t, store)
	t.Cleanup(func() { assert.NoError(t, store.Close()) })

	return store
}

func TestNewStore_RunsMigrations(t *testing.T) {
	store := setupTestStore(t)

	v, err := store.version(context.Background())
	require.NoError(t, err)
	assert.Equal(t, 1, v)
	assert.Equal(t, DatabaseFile, filepath.Base(store.Path()))
}

func TestNewStore_ReopenIsIdempotent(t *testing.T) {
	dir := t.TempDir()

	first, err := NewStore(dir)
	require.NoError(t, err)
	require.NoError(t, first.ProgressStore().Save(context.Background(), domain.TopicUsers, domain.CheckedSteps{1}))
	require.NoError(t, first.Close())

	second, err := NewStore(dir)
	require.NoError(t, err)
	defer second.Close()

	steps, err := second.ProgressStore().Load(context.Background(), domain.TopicUsers)
	require.NoError(t, err)
	assert.Equal(t, domain.CheckedSteps{1}, steps)
}

func TestProgressStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	progress := setupTestStore(t).ProgressStore()

	steps, err := progress.Load(ctx, domain.TopicQuizSetup)
	require.NoError(t, err)
	assert.Empty(t, steps)

	require.NoError(t, progress.Save(ctx, domain.TopicQuizSetup, domain.CheckedSteps{2}))
	steps, err = progress.Load(ctx, domain.TopicQuizSetup)
	require.NoError(t, err)
	assert.Equal(t, domain.CheckedSteps{2}, steps)

	// Overwrite keeps insertion order.
	require.NoError(t, progress.Save(ctx, domain.TopicQuizSetup, domain.CheckedSteps{3, 0, 2}))
	steps, err = progress.Load(ctx, domain.TopicQuizSetup)
	require.NoError(t, err)
	assert.Equal(t, domain.CheckedSteps{3, 0, 2}, steps)
}

func TestProgressStore_UpdateAcrossConnections(t *testing.T) {
	ctx := context.Background()
	dir := t.TempDir()

	// Two stores on one file stand in for the TUI and the MCP server.
	stores := make([]*Store, 2)
	for i := range stores {
		s, err := NewStore(dir)
		require.NoError(t, err)
		t.Cleanup(func() { _ = s.Close() })
		stores[i] = s
	}

	var wg sync.WaitGroup
	for i := range 4 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			progress := stores[i%len(stores)].ProgressStore()
			_, err := progress.Update(ctx, domain.TopicQuizSetup, func(saved domain.CheckedSteps) domain.CheckedSteps {
				time.Sleep(20 * time.Millisecond)
				return saved.Toggle(i)
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	steps, err := stores[0].ProgressStore().Load(ctx, domain.TopicQuizSetup)
	require.NoError(t, err)
	assert.ElementsMatch(t, domain.CheckedSteps{0, 1, 2, 3}, steps)
}

func TestProgressStore_UpdateRollsBackOnCancel(t *testing.T) {
	progress := setupTestStore(t).ProgressStore()
	require.NoError(t, progress.Save(context.Background(), domain.TopicUsers, domain.CheckedSteps{0}))

	ctx, cancel := context.WithCancel(context.Background())
	_, err := progress.Update(ctx, domain.TopicUsers, func(saved domain.CheckedSteps) domain.CheckedSteps {
		cancel()
		return saved.Toggle(1)
	})
	require.Error(t, err)

	steps, err := progress.Load(context.Background(), domain.TopicUsers)
	require.NoError(t, err)
	assert.Equal(t, domain.CheckedSteps{0}, steps)

	// The connection was returned without an open transaction.
	_, err = progress.Update(context.Background(), domain.TopicUsers, func(saved domain.CheckedSteps) domain.CheckedSteps {
		return saved.Toggle(2)
	})
	require.NoError(t, err)
}

func TestProgressStore_SaveNil(t *testing.T) {
	ctx := context.Background()
	progress := setupTestStore(t).ProgressStore()

	require.NoError(t, progress.Save(ctx, domain.TopicUpload, nil))
	steps, err := progress.Load(ctx, domain.TopicUpload)
	require.NoError(t, err)
	assert.Equal(t, domain.CheckedSteps{}, steps)
}

func TestProgressStore_ListAndDelete(t *testing.T) {
	ctx := context.Background()
	progress := setupTestStore(t).ProgressStore()
	require.NoError(t, progress.Save(ctx, domain.TopicUpload, domain.CheckedSteps{0}))
	require.NoError(t, progress.Save(ctx, domain.TopicReports, domain.CheckedSteps{1, 2}))

	all, err := progress.List(ctx)
	require.NoError(t, err)
	assert.Equal(t, map[domain.TopicID]domain.CheckedSteps{
		domain.TopicUpload:  {0},
		domain.TopicReports: {1, 2},
	}, all)

	require.NoError(t, progress.Delete(ctx, domain.TopicUpload))
	require.NoError(t, progress.Delete(ctx, domain.TopicUpload))

	all, err = progress.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)
}

func TestFeedbackStore(t *testing.T) {
	ctx := context.Background()
	feedback := setupTestStore(t).FeedbackStore()
	base := time.Date(2026, 3, 1, 9, 0, 0, 0, time.UTC)

	votes := []domain.Feedback{
		{ID: "a", TopicID: domain.TopicUpload, Vote: domain.VoteUp, CreatedAt: base},
		{ID: "b", TopicID: domain.TopicUpload, Vote: domain.VoteDown, CreatedAt: base.Add(time.Minute)},
		{ID: "c", TopicID: domain.TopicReports, Vote: domain.VoteUp, CreatedAt: base},
	}
	for _, v := range votes {
		require.NoError(t, feedback.Save(ctx, v))
	}

	list, err := feedback.List(ctx, domain.TopicUpload)
	require.NoError(t, err)
	require.Len(t, list, 2)
	assert.Equal(t, "a", list[0].ID)
	assert.Equal(t, domain.VoteDown, list[1].Vote)
	assert.True(t, base.Equal(list[0].CreatedAt))

	sums, err := feedback.Summaries(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.FeedbackSummary{
		{TopicID: domain.TopicReports, Up: 1},
		{TopicID: domain.TopicUpload, Up: 1, Down: 1},
	}, sums)
}

func TestFeedbackStore_RejectsUnknownVote(t *testing.T) {
	feedback := setupTestStore(t).FeedbackStore()

	err := feedback.Save(context.Background(), domain.Feedback{
		ID: "x", TopicID: domain.TopicUpload, Vote: "meh", CreatedAt: time.Now(),
	})

	assert.Error(t, err)
}

func TestLoadMigrations_OrdersAndLabels(t *testing.T) {
	fsys := fstest.MapFS{
		"010_feedback_index.up.sql": {Data: []byte("SELECT 10;")},
		"002_feedback.up.sql":       {Data: []byte("SELECT 2;")},
		"002_feedback.down.sql":     {Data: []byte("SELECT -2;")},
		"001_initial.up.sql":        {Data: []byte("SELECT 1;")},
	}

	got, err := loadMigrations(fsys)

	require.NoError(t, err)
	require.Len(t, got, 3)
	assert.Equal(t, []int{1, 2, 10}, []int{got[0].version, got[1].version, got[2].version})
	assert.Equal(t, "feedback_index", got[2].name)
	assert.Equal(t, "SELECT 2;", got[1].script)
}

func TestLoadMigrations_RejectsBadFiles(t *testing.T) {
	_, err := loadMigrations(fstest.MapFS{"initial.up.sql": {Data: []byte("SELECT 1;")}})
	assert.ErrorIs(t, err, ErrBadMigrationName)

	_, err = loadMigrations(fstest.MapFS{
		"001_a.up.sql": {Data: []byte("SELECT 1;")},
		"1_b.up.sql":   {Data: []byte("SELECT 1;")},
	})
	assert.ErrorIs(t, err, ErrDuplicateMigration)
}

func TestMigrate_AppliesOnlyNewVersions(t *testing.T) {
	store := setupTestStore(t)
	ctx := context.Background()

	extra := fstest.MapFS{
		"001_initial.up.sql": {Data: []byte("SELECT 1;")},
		"002_scratch.up.sql": {Data: []byte("CREATE TABLE scratch (id INTEGER);")},
	}
	require.NoError(t, store.migrate(ctx, extra))
	require.NoError(t, store.migrate(ctx, extra))

	v, err := store.version(ctx)
	require.NoError(t, err)
	assert.Equal(t, 2, v)

	var name string
	require.NoError(t, store.db.QueryRowContext(ctx,
		"SELECT name FROM schema_migrations WHERE version = 2").Scan(&name))
	assert.Equal(t, "scratch", name)
}
