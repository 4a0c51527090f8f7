package domain

import (
	"fmt"
	"strings"
)

// TopicID identifies a knowledge-base topic.
// Identifiers are stable strings drawn from a closed enumeration.
type TopicID string

// Known topic identifiers, in default catalog order.
const (
	TopicUpload          TopicID = "upload"
	TopicCourseSetup     TopicID = "course_setup"
	TopicQuizSetup       TopicID = "quiz_setup"
	TopicReports         TopicID = "reports"
	TopicUsers           TopicID = "users"
	TopicCertificates    TopicID = "certificates"
	TopicMobileApp       TopicID = "mobile_app"
	TopicTroubleshooting TopicID = "troubleshooting"
)

// AllTopicIDs returns every known topic identifier in default order.
func AllTopicIDs() []TopicID {
	return []TopicID{
		TopicUpload,
		TopicCourseSetup,
		TopicQuizSetup,
		TopicReports,
		TopicUsers,
		TopicCertificates,
		TopicMobileApp,
		TopicTroubleshooting,
	}
}

// IsValid returns true if the identifier is part of the enumeration.
func (id TopicID) IsValid() bool {
	for _, known := range AllTopicIDs() {
		if id == known {
			return true
		}
	}
	return false
}

// String returns the string representation.
func (id TopicID) String() string {
	return string(id)
}

// ParseTopicID converts a string into a TopicID.
func ParseTopicID(s string) (TopicID, error) {
	id := TopicID(strings.TrimSpace(s))
	if !id.IsValid() {
		return "", fmt.Errorf("%w: %q", ErrUnknownTopic, s)
	}
	return id, nil
}

// IconID names the glyph a view should draw for a topic.
// The data model stays renderer-agnostic; views map icons to glyphs.
type IconID string

// Known icons.
const (
	IconUploadCloud   IconID = "upload_cloud"
	IconBookOpen      IconID = "book_open"
	IconFileQuestion  IconID = "file_question"
	IconBarChart      IconID = "bar_chart"
	IconUsers         IconID = "users"
	IconAward         IconID = "award"
	IconSmartphone    IconID = "smartphone"
	IconAlertTriangle IconID = "alert_triangle"
)

// IsValid returns true if the icon is recognised.
func (i IconID) IsValid() bool {
	switch i {
	case IconUploadCloud, IconBookOpen, IconFileQuestion, IconBarChart,
		IconUsers, IconAward, IconSmartphone, IconAlertTriangle:
		return true
	default:
		return false
	}
}

// ColorTag is the accent colour name attached to a topic.
type ColorTag string

// Known colour tags.
const (
	ColorSky     ColorTag = "sky"
	ColorEmerald ColorTag = "emerald"
	ColorIndigo  ColorTag = "indigo"
	ColorPurple  ColorTag = "purple"
	ColorBlue    ColorTag = "blue"
	ColorAmber   ColorTag = "amber"
	ColorTeal    ColorTag = "teal"
	ColorRed     ColorTag = "red"
)

// FAQItem is a question/answer pair attached to a topic.
type FAQItem struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Text returns the pair in its copyable form.
func (f FAQItem) Text() string {
	return f.Question + "\n" + f.Answer
}

// Topic is one knowledge-base section.
type Topic struct {
	ID          TopicID        `json:"id"`
	Title       string         `json:"title"`
	Description string         `json:"description"`
	Icon        IconID         `json:"icon"`
	Color       ColorTag       `json:"color"`
	Steps       []string       `json:"steps"`
	FAQ         []FAQItem      `json:"faq"`
	Tips        []string       `json:"tips"`
	Quizzes     []QuizQuestion `json:"quizzes"`
}

// StepCount returns the number of checklist steps.
func (t *Topic) StepCount() int {
	return len(t.Steps)
}

// HasFAQ returns true if the topic has at least one FAQ pair.
func (t *Topic) HasFAQ() bool {
	return len(t.FAQ) > 0
}

// HasTips returns true if the topic has at least one tip.
func (t *Topic) HasTips() bool {
	return len(t.Tips) > 0
}

// Validate checks the topic against the catalog invariants.
func (t *Topic) Validate() error {
	if !t.ID.IsValid() {
		return fmt.Errorf("%w: %q", ErrUnknownTopic, t.ID)
	}
	if strings.TrimSpace(t.Title) == "" {
		return fmt.Errorf("%w: topic %s has no title", ErrInvalidInput, t.ID)
	}
	for i := range t.Quizzes {
		if err := t.Quizzes[i].Validate(); err != nil {
			return fmt.Errorf("topic %s quiz %d: %w", t.ID, i, err)
		}
	}
	return nil
}

// ValidateCatalog checks a full ordered catalog: every topic valid and
// identifiers unique.
func ValidateCatalog(topics []Topic) error {
	if len(topics) == 0 {
		return ErrEmptyCatalog
	}
	seen := make(map[TopicID]bool, len(topics))
	for i := range topics {
		if err := topics[i].Validate(); err != nil {
			return err
		}
		if seen[topics[i].ID] {
			return fmt.Errorf("%w: %s", ErrDuplicateTopic, topics[i].ID)
		}
		seen[topics[i].ID] = true
	}
	return nil
}

// Neighbours returns the topics before and after id in catalog order.
// Either may be nil at the ends of the catalog.
func Neighbours(topics []Topic, id TopicID) (prev, next *Topic) {
	for i := range topics {
		if topics[i].ID != id {
			continue
		}
		if i > 0 {
			prev = &topics[i-1]
		}
		if i < len(topics)-1 {
			next = &topics[i+1]
		}
		return prev, next
	}
	return nil, nil
}

// SplitTroubleshootingStep splits a "symptom -> fix" step into its parts.
// ok is false when the step does not follow that form.
func SplitTroubleshootingStep(step string) (symptom, fix string, ok bool) {
	parts := strings.SplitN(step, "->", 2)
	if len(parts) != 2 {
		return "", "", false
	}
	return strings.TrimSpace(parts[0]), strings.TrimSpace(parts[1]), true
}
