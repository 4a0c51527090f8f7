// Package messages defines Bubbletea message types for the TUI.
// Messages represent events and commands that flow through the Elm architecture.
package messages

import (
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/domain"
)

// ViewType identifies which view is currently active.
type ViewType int

const (
	// ViewGuide is the sidebar and topic page.
	ViewGuide ViewType = iota
	// ViewSearch is the header search overlay.
	ViewSearch
	// ViewAssistant is the chat and quiz panel.
	ViewAssistant
	// ViewPresentation is the full-screen slide view of a topic's steps.
	ViewPresentation
	// ViewHelp is the help/keybindings view.
	ViewHelp
)

// String returns the string representation of the view type.
func (v ViewType) String() string {
	switch v {
	case ViewGuide:
		return "guide"
	case ViewSearch:
		return "search"
	case ViewAssistant:
		return "assistant"
	case ViewPresentation:
		return "presentation"
	case ViewHelp:
		return "help"
	default:
		return "unknown"
	}
}

// ViewChanged is sent when navigating between views.
type ViewChanged struct {
	View ViewType
}

// TopicSelected makes a topic the active page.
type TopicSelected struct {
	ID domain.TopicID
}

// ProgressLoaded carries a topic's checked steps.
type ProgressLoaded struct {
	TopicID domain.TopicID
	Checked domain.CheckedSteps
	Err     error
}

// StepToggled reports the result of flipping one checklist step.
type StepToggled struct {
	TopicID  domain.TopicID
	Index    int
	Checked  domain.CheckedSteps
	Complete bool
	Err      error
}

// CompletionLoaded carries the completion flag of every topic.
type CompletionLoaded struct {
	Done domain.ProgressMap
	Err  error
}

// SearchCompleted carries header-search results back to the model.
type SearchCompleted struct {
	Query   string
	Results []domain.SearchResult
	Err     error
}

// ReplyReceived carries an assistant reply. Generation identifies the
// panel session that asked; replies from older sessions are dropped.
type ReplyReceived struct {
	Generation uint64
	Reply      domain.Reply
	Err        error
}

// QuizReady carries drawn quiz questions for a panel session.
type QuizReady struct {
	Generation uint64
	TopicID    domain.TopicID
	Questions  []domain.QuizQuestion
	Err        error
}

// SpeechHeard carries the transcript of one voice capture.
type SpeechHeard struct {
	Generation uint64
	Text       string
	Err        error
}

// Copied reports a clipboard write.
type Copied struct {
	Label string
	Err   error
}

// FeedbackSent reports a recorded helpfulness vote.
type FeedbackSent struct {
	TopicID domain.TopicID
	Vote    domain.Vote
	Err     error
}

// ThemeChanged reports a theme switch.
type ThemeChanged struct {
	Theme domain.Theme
	Err   error
}

// CatalogReloaded is sent after the catalog file changed on disk.
type CatalogReloaded struct {
	Err error
}

// StatusExpired clears a transient status message if Seq is still current.
type StatusExpired struct {
	Seq int
}

// ErrorOccurred signals that an error happened.
type ErrorOccurred struct {
	Err error
}

// Quit signals the application should exit.
type Quit struct{}
