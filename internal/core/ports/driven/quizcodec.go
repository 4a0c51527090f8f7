package driven

import "github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/domain"

// QuizDecoder parses and validates quiz JSON documents.
type QuizDecoder interface {
	// Decode validates data against the quiz document schema and returns
	// the questions it contains.
	Decode(data []byte) ([]domain.QuizQuestion, error)

	// Encode renders questions as an indented JSON array.
	Encode(questions []domain.QuizQuestion) ([]byte, error)
}
