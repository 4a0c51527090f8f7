package mcp

import (
	"context"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/adapters/driven/catalog"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/adapters/driven/storage/memory"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/services"
)

// newTestPorts wires real services over the built-in catalog and memory stores.
func newTestPorts(t *testing.T) (*Ports, *services.ProgressService) {
	t.Helper()
	cat, err := services.NewCatalogService(context.Background(), catalog.NewSource(""))
	require.NoError(t, err)

	progress := services.NewProgressService(cat, memory.NewProgressStore(), nil, nil)
	return &Ports{
		Catalog:   cat,
		Assistant: services.NewAssistantService(cat, services.NoLatency{}, 0),
		Search:    services.NewSearchService(cat, 0),
		Quiz:      services.NewQuizService(cat, services.NoLatency{}, nil, services.QuizConfig{}),
		Progress:  progress,
	}, progress
}

func newTestServer(t *testing.T) (*Server, *services.ProgressService) {
	t.Helper()
	ports, progress := newTestPorts(t)
	server, err := NewServer(ports)
	require.NoError(t, err)
	return server, progress
}
