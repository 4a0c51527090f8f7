package driving

import "context"

// SpeechService runs single-utterance voice capture.
type SpeechService interface {
	// Supported reports whether capture can be attempted.
	Supported() bool

	// Listen captures one utterance. Only one capture runs at a time;
	// a concurrent call fails with domain.ErrCaptureInProgress.
	Listen(ctx context.Context) (string, error)

	// Listening reports whether a capture is running.
	Listening() bool
}
