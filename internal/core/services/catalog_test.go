package services

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/adapters/driven/storage/memory"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/domain"
)

func TestNewCatalogService_RejectsInvalid(t *testing.T) {
	_, err := NewCatalogService(context.Background(), memory.NewCatalogSource(nil))
	assert.ErrorIs(t, err, domain.ErrEmptyCatalog)

	dup := append(testTopics(), testTopics()[0])
	_, err = NewCatalogService(context.Background(), memory.NewCatalogSource(dup))
	assert.ErrorIs(t, err, domain.ErrDuplicateTopic)
}

func TestCatalogService_Get(t *testing.T) {
	c := newTestCatalog(t)

	topic, err := c.Get(domain.TopicReports)
	require.NoError(t, err)
	assert.Equal(t, "استخراج التقارير", topic.Title)

	_, err = c.Get(domain.TopicUsers)
	assert.ErrorIs(t, err, domain.ErrNotFound)
}

func TestCatalogService_TopicsIsACopy(t *testing.T) {
	c := newTestCatalog(t)

	topics := c.Topics()
	topics[0].Title = "changed"

	assert.Equal(t, "رفع المحتوى", c.First().Title)
}

func TestCatalogService_Neighbours(t *testing.T) {
	c := newTestCatalog(t)

	prev, next := c.Neighbours(domain.TopicQuizSetup)
	require.NotNil(t, prev)
	require.NotNil(t, next)
	assert.Equal(t, domain.TopicUpload, prev.ID)
	assert.Equal(t, domain.TopicReports, next.ID)
}

func TestCatalogService_ReloadKeepsOldOnFailure(t *testing.T) {
	src := memory.NewCatalogSource(testTopics())
	c, err := NewCatalogService(context.Background(), src)
	require.NoError(t, err)

	src.SetError(errors.New("disk gone"))
	require.Error(t, c.Reload(context.Background()))
	assert.Len(t, c.Topics(), 4)

	src.SetError(nil)
	src.SetTopics(testTopics()[:2])
	require.NoError(t, c.Reload(context.Background()))
	assert.Len(t, c.Topics(), 2)
	assert.Equal(t, "memory", c.Source())
}
