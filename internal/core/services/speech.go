package services

import (
	"context"
	"strings"
	"sync/atomic"

	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/domain"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/ports/driven"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/ports/driving"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/logger"
)

// Ensure SpeechService implements the interface.
var _ driving.SpeechService = (*SpeechService)(nil)

// SpeechService admits one capture session at a time.
type SpeechService struct {
	recognizer driven.SpeechRecognizer
	active     atomic.Bool
}

// NewSpeechService creates a new speech service.
// recognizer may be nil, in which case speech is unsupported.
func NewSpeechService(recognizer driven.SpeechRecognizer) *SpeechService {
	return &SpeechService{recognizer: recognizer}
}

// Supported reports whether capture can be attempted.
func (s *SpeechService) Supported() bool {
	return s.recognizer != nil && s.recognizer.Supported()
}

// Listen captures one utterance.
func (s *SpeechService) Listen(ctx context.Context) (string, error) {
	if !s.Supported() {
		return "", domain.ErrSpeechUnsupported
	}
	if !s.active.CompareAndSwap(false, true) {
		return "", domain.ErrCaptureInProgress
	}
	defer s.active.Store(false)

	logger.Debug("Speech: capture started")
	text, err := s.recognizer.Recognize(ctx)
	if err != nil {
		logger.Debug("Speech: capture failed: %v", err)
		return "", err
	}
	text = strings.TrimSpace(text)
	if text == "" {
		return "", domain.ErrNoSpeechResult
	}
	return text, nil
}

// Listening reports whether a capture is running.
func (s *SpeechService) Listening() bool {
	return s.active.Load()
}
