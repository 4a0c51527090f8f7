package mcp

import (
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Catalog lists topics and backs the topic resources.
	Catalog driving.CatalogService

	// Assistant answers free-text questions.
	Assistant driving.AssistantService

	// Search provides header search.
	Search driving.SearchService

	// Quiz draws practice questions.
	Quiz driving.QuizService

	// Progress marks completed steps in topic resources.
	Progress driving.ProgressService
}

// Validate ensures all required ports are set.
// Only the catalog is required; tools whose port is nil are not registered.
func (p *Ports) Validate() error {
	if p.Catalog == nil {
		return ErrMissingCatalogService
	}
	return nil
}
