package services

import (
	"context"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/domain"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/ports/driving"
)

// countingCatalog counts how often the topic list is copied.
type countingCatalog struct {
	driving.CatalogService
	topicsCalls int
}

func (c *countingCatalog) Topics() []domain.Topic {
	c.topicsCalls++
	return c.CatalogService.Topics()
}

func TestSearchService_Search(t *testing.T) {
	svc := NewSearchService(newTestCatalog(t), 0)

	results, err := svc.Search(context.Background(), ".", 0)

	require.NoError(t, err)
	assert.Len(t, results, 5)
}

func TestSearchService_ExplicitLimit(t *testing.T) {
	svc := NewSearchService(newTestCatalog(t), 5)

	results, err := svc.Search(context.Background(), ".", 2)

	require.NoError(t, err)
	assert.Len(t, results, 2)
}

func TestSearchService_EmptyQuery(t *testing.T) {
	svc := NewSearchService(newTestCatalog(t), 5)

	results, err := svc.Search(context.Background(), "", 5)

	require.NoError(t, err)
	assert.Empty(t, results)
}

func TestSearchService_BlankQuerySkipsCatalog(t *testing.T) {
	cat := &countingCatalog{CatalogService: newTestCatalog(t)}
	svc := NewSearchService(cat, 5)

	for _, q := range []string{"", "   ", "\t\n"} {
		results, err := svc.Search(context.Background(), q, 5)
		require.NoError(t, err)
		assert.NotNil(t, results)
		assert.Empty(t, results)
	}
	assert.Zero(t, cat.topicsCalls)

	_, err := svc.Search(context.Background(), "رفع", 5)
	require.NoError(t, err)
	assert.Equal(t, 1, cat.topicsCalls)
}

func TestSearchService_CancelledContext(t *testing.T) {
	svc := NewSearchService(newTestCatalog(t), 5)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := svc.Search(ctx, "رفع", 5)

	assert.ErrorIs(t, err, context.Canceled)
}
