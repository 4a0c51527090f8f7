package sidebar

import (
	"context"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/adapters/driven/storage/memory"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/adapters/driving/tui/messages"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/domain"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/services"
)

func newCatalog(t *testing.T) *services.CatalogService {
	t.Helper()
	cat, err := services.NewCatalogService(context.Background(), memory.NewCatalogSource([]domain.Topic{
		{ID: domain.TopicUpload, Title: "رفع المحتوى", Icon: domain.IconUploadCloud, Color: domain.ColorSky, Steps: []string{"a"}},
		{ID: domain.TopicReports, Title: "التقارير", Icon: domain.IconBarChart, Color: domain.ColorBlue},
		{ID: domain.TopicUsers, Title: "المستخدمين", Icon: domain.IconUsers, Color: domain.ColorAmber},
	}))
	require.NoError(t, err)
	return cat
}

func TestNewView(t *testing.T) {
	v := NewView(nil, nil, newCatalog(t))

	require.NotNil(t, v)
	assert.Len(t, v.Topics(), 3)
	assert.False(t, v.Focused())
	assert.Nil(t, v.Init())
}

func TestView_NilCatalog(t *testing.T) {
	v := NewView(nil, nil, nil)

	assert.Empty(t, v.Topics())
	v.Focus()
	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
}

func TestView_KeysIgnoredWithoutFocus(t *testing.T) {
	v := NewView(nil, nil, newCatalog(t))

	v, cmd := v.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Nil(t, cmd)
	assert.Equal(t, 0, v.Selected())
}

func TestView_NavigateAndSelect(t *testing.T) {
	v := NewView(nil, nil, newCatalog(t))
	v.Focus()

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyDown})
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyDown})
	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Equal(t, 2, v.Selected())

	v, _ = v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'k'}})
	assert.Equal(t, 1, v.Selected())

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	assert.Equal(t, messages.TopicSelected{ID: domain.TopicReports}, cmd())
}

func TestView_SetActiveMovesCursor(t *testing.T) {
	v := NewView(nil, nil, newCatalog(t))

	v.SetActive(domain.TopicUsers)

	assert.Equal(t, domain.TopicUsers, v.Active())
	assert.Equal(t, 2, v.Selected())
}

func TestView_CompletionBadge(t *testing.T) {
	v := NewView(nil, nil, newCatalog(t))
	v.SetDimensions(40, 20)

	assert.NotContains(t, v.View(), "✓")

	v, _ = v.Update(messages.CompletionLoaded{Done: domain.ProgressMap{domain.TopicUpload: true}})
	assert.True(t, v.Done()[domain.TopicUpload])
	assert.Contains(t, v.View(), "✓")
	assert.Contains(t, v.View(), domain.AppName)
}

func TestView_CompletionErrorKeepsMap(t *testing.T) {
	v := NewView(nil, nil, newCatalog(t))
	v.SetDone(domain.ProgressMap{domain.TopicUpload: true})

	v, _ = v.Update(messages.CompletionLoaded{Err: assert.AnError})

	assert.True(t, v.Done()[domain.TopicUpload])
}

func TestView_Refresh(t *testing.T) {
	src := memory.NewCatalogSource([]domain.Topic{
		{ID: domain.TopicUpload, Title: "a"},
		{ID: domain.TopicReports, Title: "b"},
	})
	cat, err := services.NewCatalogService(context.Background(), src)
	require.NoError(t, err)
	v := NewView(nil, nil, cat)
	v.SetActive(domain.TopicReports)

	src.SetTopics([]domain.Topic{{ID: domain.TopicReports, Title: "b"}})
	require.NoError(t, cat.Reload(context.Background()))
	v.Refresh()

	assert.Len(t, v.Topics(), 1)
	assert.Equal(t, 0, v.Selected())
}
