package memory

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/domain"
)

func TestProgressStore_RoundTrip(t *testing.T) {
	ctx := context.Background()
	store := NewProgressStore()

	steps, err := store.Load(ctx, domain.TopicUpload)
	require.NoError(t, err)
	assert.Empty(t, steps)

	require.NoError(t, store.Save(ctx, domain.TopicUpload, domain.CheckedSteps{2, 0}))
	steps, err = store.Load(ctx, domain.TopicUpload)
	require.NoError(t, err)
	assert.Equal(t, domain.CheckedSteps{2, 0}, steps)

	all, err := store.List(ctx)
	require.NoError(t, err)
	assert.Len(t, all, 1)

	require.NoError(t, store.Delete(ctx, domain.TopicUpload))
	steps, err = store.Load(ctx, domain.TopicUpload)
	require.NoError(t, err)
	assert.Empty(t, steps)
}

func TestProgressStore_CopiesOnSave(t *testing.T) {
	ctx := context.Background()
	store := NewProgressStore()
	steps := domain.CheckedSteps{1}

	require.NoError(t, store.Save(ctx, domain.TopicUsers, steps))
	steps[0] = 7

	got, _ := store.Load(ctx, domain.TopicUsers)
	assert.Equal(t, domain.CheckedSteps{1}, got)
}

func TestProgressStore_UpdateIsAtomic(t *testing.T) {
	ctx := context.Background()
	store := NewProgressStore()

	var wg sync.WaitGroup
	for i := range 3 {
		wg.Add(1)
		go func() {
			defer wg.Done()
			_, err := store.Update(ctx, domain.TopicUpload, func(saved domain.CheckedSteps) domain.CheckedSteps {
				time.Sleep(5 * time.Millisecond)
				return saved.Toggle(i)
			})
			assert.NoError(t, err)
		}()
	}
	wg.Wait()

	steps, err := store.Load(ctx, domain.TopicUpload)
	require.NoError(t, err)
	assert.ElementsMatch(t, domain.CheckedSteps{0, 1, 2}, steps)
}

func TestProgressStore_UpdateStartsFromEmpty(t *testing.T) {
	var seen domain.CheckedSteps
	steps, err := NewProgressStore().Update(context.Background(), domain.TopicUsers,
		func(saved domain.CheckedSteps) domain.CheckedSteps {
			seen = saved
			return saved.Toggle(1)
		})

	require.NoError(t, err)
	assert.NotNil(t, seen)
	assert.Empty(t, seen)
	assert.Equal(t, domain.CheckedSteps{1}, steps)
}

func TestFeedbackStore_Summaries(t *testing.T) {
	ctx := context.Background()
	store := NewFeedbackStore()
	_ = store.Save(ctx, domain.Feedback{ID: "1", TopicID: domain.TopicReports, Vote: domain.VoteUp})
	_ = store.Save(ctx, domain.Feedback{ID: "2", TopicID: domain.TopicUpload, Vote: domain.VoteDown})
	_ = store.Save(ctx, domain.Feedback{ID: "3", TopicID: domain.TopicReports, Vote: domain.VoteUp})

	votes, err := store.List(ctx, domain.TopicReports)
	require.NoError(t, err)
	assert.Len(t, votes, 2)

	sums, err := store.Summaries(ctx)
	require.NoError(t, err)
	assert.Equal(t, []domain.FeedbackSummary{
		{TopicID: domain.TopicReports, Up: 2},
		{TopicID: domain.TopicUpload, Down: 1},
	}, sums)
}

func TestCatalogSource(t *testing.T) {
	src := NewCatalogSource([]domain.Topic{{ID: domain.TopicUpload, Title: "x"}})

	topics, err := src.Load(context.Background())
	require.NoError(t, err)
	assert.Len(t, topics, 1)
	assert.Equal(t, "memory", src.Name())

	boom := errors.New("boom")
	src.SetError(boom)
	_, err = src.Load(context.Background())
	assert.ErrorIs(t, err, boom)
}
