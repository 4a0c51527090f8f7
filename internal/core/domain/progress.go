package domain

import (
	"slices"
	"time"
)

// ProgressKeyPrefix namespaces persisted progress keys.
const ProgressKeyPrefix = "progress-"

// ProgressKey returns the storage key for a topic's checked steps.
func ProgressKey(id TopicID) string {
	return ProgressKeyPrefix + string(id)
}

// CheckedSteps is the ordered set of completed step indices for one topic.
// Order is the order in which steps were checked.
type CheckedSteps []int

// Contains reports whether index is checked.
func (c CheckedSteps) Contains(index int) bool {
	return slices.Contains(c, index)
}

// Toggle returns a new set with index added if absent or removed if present.
func (c CheckedSteps) Toggle(index int) CheckedSteps {
	if i := slices.Index(c, index); i >= 0 {
		out := make(CheckedSteps, 0, len(c)-1)
		out = append(out, c[:i]...)
		return append(out, c[i+1:]...)
	}
	out := make(CheckedSteps, 0, len(c)+1)
	out = append(out, c...)
	return append(out, index)
}

// Sanitize drops duplicates and indices outside [0, stepCount).
func (c CheckedSteps) Sanitize(stepCount int) CheckedSteps {
	out := make(CheckedSteps, 0, len(c))
	for _, idx := range c {
		if idx < 0 || idx >= stepCount || out.Contains(idx) {
			continue
		}
		out = append(out, idx)
	}
	return out
}

// Count returns the number of checked steps.
func (c CheckedSteps) Count() int {
	return len(c)
}

// IsComplete reports whether every one of stepCount steps is checked.
// A topic without steps is never complete.
func (c CheckedSteps) IsComplete(stepCount int) bool {
	return stepCount > 0 && len(c) == stepCount
}

// ProgressMap maps topic identifiers to their derived completion flag.
type ProgressMap map[TopicID]bool

// CompletedCount returns how many topics are complete.
func (p ProgressMap) CompletedCount() int {
	n := 0
	for _, done := range p {
		if done {
			n++
		}
	}
	return n
}

// TopicProgress summarises one topic's checklist state.
type TopicProgress struct {
	TopicID  TopicID
	Title    string
	Checked  CheckedSteps
	Total    int
	Complete bool
}

// ProgressReport is the exportable view of all topics' progress.
type ProgressReport struct {
	GeneratedAt time.Time
	Topics      []TopicProgress
	Feedback    []FeedbackSummary
}
