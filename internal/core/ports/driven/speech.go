package driven

import "context"

// SpeechRecognizer turns one utterance into text.
type SpeechRecognizer interface {
	// Supported reports whether recognition can be attempted at all.
	Supported() bool

	// Recognize captures a single utterance and returns its transcript.
	// Returns domain.ErrNoSpeechResult when capture ended without text.
	Recognize(ctx context.Context) (string, error)
}
