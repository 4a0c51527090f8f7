// Package tui provides the interactive terminal guide.
// It implements a driving adapter following hexagonal architecture principles.
package tui

import (
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the TUI.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Catalog provides the topics.
	Catalog driving.CatalogService

	// Progress tracks checked steps.
	Progress driving.ProgressService

	// Assistant answers chat questions.
	Assistant driving.AssistantService

	// Search powers the header search.
	Search driving.SearchService

	// Quiz draws quiz questions.
	Quiz driving.QuizService

	// Feedback records page votes.
	Feedback driving.FeedbackService

	// Settings persists the theme preference.
	Settings driving.SettingsService

	// Actions copies FAQ items and quizzes.
	Actions driving.ActionService

	// Speech captures voice questions.
	Speech driving.SpeechService
}

// NewPorts creates a new Ports aggregate with the required services.
func NewPorts(catalog driving.CatalogService, progress driving.ProgressService) *Ports {
	return &Ports{
		Catalog:  catalog,
		Progress: progress,
	}
}

// Validate ensures all required ports are set.
// Optional ports disable their features when nil.
func (p *Ports) Validate() error {
	if p.Catalog == nil {
		return ErrMissingCatalogService
	}
	if p.Progress == nil {
		return ErrMissingProgressService
	}
	return nil
}
