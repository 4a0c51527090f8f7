// Package quizjson reads and writes the quiz JSON document format:
// an array of {question, options, correctAnswer} objects.
package quizjson

import (
	"errors"
	"fmt"
	"strings"

	"github.com/goccy/go-json"
	"github.com/xeipuuv/gojsonschema"

	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/domain"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/ports/driven"
)

// Ensure Codec implements the interface.
var _ driven.QuizDecoder = (*Codec)(nil)

// ErrSchema indicates a document that does not match the quiz schema.
var ErrSchema = errors.New("quiz document does not match schema")

// Schema is the JSON Schema for quiz documents.
const Schema = `{
  "$schema": "http://json-schema.org/draft-07/schema#",
  "type": "array",
  "minItems": 1,
  "items": {
    "type": "object",
    "additionalProperties": false,
    "required": ["question", "options", "correctAnswer"],
    "properties": {
      "question": {"type": "string", "minLength": 1},
      "options": {
        "type": "array",
        "minItems": 2,
        "items": {"type": "string", "minLength": 1}
      },
      "correctAnswer": {"type": "string", "minLength": 1}
    }
  }
}`

// Codec validates quiz documents against Schema.
type Codec struct {
	schema *gojsonschema.Schema
}

// NewCodec compiles the schema.
func NewCodec() (*Codec, error) {
	schema, err := gojsonschema.NewSchema(gojsonschema.NewStringLoader(Schema))
	if err != nil {
		return nil, fmt.Errorf("compile quiz schema: %w", err)
	}
	return &Codec{schema: schema}, nil
}

// Decode validates data and returns its questions. Beyond the schema, every
// correct answer must be one of its question's options.
func (c *Codec) Decode(data []byte) ([]domain.QuizQuestion, error) {
	result, err := c.schema.Validate(gojsonschema.NewBytesLoader(data))
	if err != nil {
		return nil, fmt.Errorf("%w: %w", ErrSchema, err)
	}
	if !result.Valid() {
		msgs := make([]string, 0, len(result.Errors()))
		for _, e := range result.Errors() {
			msgs = append(msgs, e.String())
		}
		return nil, fmt.Errorf("%w: %s", ErrSchema, strings.Join(msgs, "; "))
	}

	var questions []domain.QuizQuestion
	if err := json.Unmarshal(data, &questions); err != nil {
		return nil, fmt.Errorf("decode quiz: %w", err)
	}
	for i := range questions {
		if err := questions[i].Validate(); err != nil {
			return nil, fmt.Errorf("question %d: %w", i+1, err)
		}
	}
	return questions, nil
}

// Encode renders questions as indented JSON without HTML escaping, so
// Arabic text and "&" stay readable when pasted.
func (c *Codec) Encode(questions []domain.QuizQuestion) ([]byte, error) {
	data, err := json.MarshalIndentWithOption(questions, "", "  ", json.DisableHTMLEscape())
	if err != nil {
		return nil, fmt.Errorf("encode quiz: %w", err)
	}
	return data, nil
}
