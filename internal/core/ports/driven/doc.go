// Package driven declares what the core needs from the outside world.
//
// The guide cannot start without a CatalogSource, a ConfigStore, a
// ProgressStore and a Latency. The rest may be nil or an "unsupported"
// implementation, and the service that uses it reports a sentinel error
// instead:
//
//   - FeedbackStore: feedback commands return ErrNotFound
//   - Clipboard: copy actions return ErrClipboardUnavailable
//   - SpeechRecognizer: voice input returns ErrSpeechUnsupported
//   - CatalogWatcher, ProgressExporter, QuizDecoder: the feature is off
//
// Implementations live under internal/adapters/driven and may import only
// domain and this package from the core.
package driven
