package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrUnknownTopic indicates a topic identifier outside the closed enumeration.
	ErrUnknownTopic = errors.New("unknown topic")

	// ErrDuplicateTopic indicates two catalog entries share an identifier.
	ErrDuplicateTopic = errors.New("duplicate topic")

	// ErrInvalidQuiz indicates a quiz question whose correct answer is not
	// one of its options, or which has fewer than two options.
	ErrInvalidQuiz = errors.New("invalid quiz question")

	// ErrAmbiguousOption indicates a quiz question repeats an option text,
	// which would make the correct answer ambiguous.
	ErrAmbiguousOption = errors.New("ambiguous quiz option")

	// ErrEmptyQuery indicates a blank query reached an operation that needs text.
	ErrEmptyQuery = errors.New("empty query")

	// ErrEmptyCatalog indicates the catalog source produced no topics.
	ErrEmptyCatalog = errors.New("catalog is empty")

	// Capability Errors.

	// ErrSpeechUnsupported indicates no speech recognition capability is available.
	ErrSpeechUnsupported = errors.New("speech recognition unsupported")

	// ErrCaptureInProgress indicates a speech capture session is already running.
	ErrCaptureInProgress = errors.New("speech capture in progress")

	// ErrNoSpeechResult indicates a capture ended without a transcript.
	ErrNoSpeechResult = errors.New("no speech result")

	// ErrClipboardUnavailable indicates the system clipboard cannot be written.
	ErrClipboardUnavailable = errors.New("clipboard unavailable")
)
