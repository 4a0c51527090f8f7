package catalog

import (
	"bytes"
	"context"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/domain"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/ports/driven"
)

// Ensure Source implements the interface.
var _ driven.CatalogSource = (*Source)(nil)

// document is the on-disk catalog shape.
type document struct {
	Topics []topicDTO `yaml:"topics"`
}

type topicDTO struct {
	ID          string    `yaml:"id"`
	Title       string    `yaml:"title"`
	Description string    `yaml:"description"`
	Icon        string    `yaml:"icon"`
	Color       string    `yaml:"color"`
	Steps       []string  `yaml:"steps"`
	FAQ         []faqDTO  `yaml:"faq"`
	Tips        []string  `yaml:"tips"`
	Quizzes     []quizDTO `yaml:"quizzes"`
}

type faqDTO struct {
	Question string `yaml:"question"`
	Answer   string `yaml:"answer"`
}

type quizDTO struct {
	Question      string   `yaml:"question"`
	Options       []string `yaml:"options"`
	CorrectAnswer string   `yaml:"correctAnswer"`
}

var knownColors = map[domain.ColorTag]bool{
	domain.ColorSky: true, domain.ColorEmerald: true, domain.ColorIndigo: true, domain.ColorPurple: true,
	domain.ColorBlue: true, domain.ColorAmber: true, domain.ColorTeal: true, domain.ColorRed: true,
}

// Source reads the catalog from an override file, or from the embedded
// default when no path is set.
type Source struct {
	path string
}

// NewSource creates a catalog source. An empty path selects the embedded catalog.
func NewSource(path string) *Source {
	return &Source{path: path}
}

// Path returns the override file path, or empty for the embedded catalog.
func (s *Source) Path() string {
	return s.path
}

// Name describes the source.
func (s *Source) Name() string {
	if s.path == "" {
		return "built-in catalog"
	}
	return s.path
}

// Load reads and converts the catalog.
func (s *Source) Load(ctx context.Context) ([]domain.Topic, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}

	data := defaultCatalog
	if s.path != "" {
		raw, err := os.ReadFile(s.path)
		if err != nil {
			return nil, fmt.Errorf("read catalog: %w", err)
		}
		data = raw
	}
	return Parse(data)
}

// Parse decodes a YAML catalog document. Unknown fields are rejected so
// typos in hand-edited files surface instead of silently dropping content.
func Parse(data []byte) ([]domain.Topic, error) {
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)

	var doc document
	if err := dec.Decode(&doc); err != nil {
		return nil, fmt.Errorf("decode catalog: %w", err)
	}

	topics := make([]domain.Topic, 0, len(doc.Topics))
	for i, t := range doc.Topics {
		topic, err := t.toDomain()
		if err != nil {
			return nil, fmt.Errorf("topic %d: %w", i, err)
		}
		topics = append(topics, topic)
	}
	if err := domain.ValidateCatalog(topics); err != nil {
		return nil, err
	}
	return topics, nil
}

func (t topicDTO) toDomain() (domain.Topic, error) {
	icon := domain.IconID(t.Icon)
	if !icon.IsValid() {
		return domain.Topic{}, fmt.Errorf("%w: %q", ErrUnknownIcon, t.Icon)
	}
	color := domain.ColorTag(t.Color)
	if !knownColors[color] {
		return domain.Topic{}, fmt.Errorf("%w: %q", ErrUnknownColor, t.Color)
	}

	topic := domain.Topic{
		ID:          domain.TopicID(t.ID),
		Title:       t.Title,
		Description: t.Description,
		Icon:        icon,
		Color:       color,
		Steps:       t.Steps,
		Tips:        t.Tips,
	}
	for _, f := range t.FAQ {
		topic.FAQ = append(topic.FAQ, domain.FAQItem{Question: f.Question, Answer: f.Answer})
	}
	for _, q := range t.Quizzes {
		topic.Quizzes = append(topic.Quizzes, domain.QuizQuestion{
			Question:      q.Question,
			Options:       q.Options,
			CorrectAnswer: q.CorrectAnswer,
		})
	}
	return topic, nil
}
