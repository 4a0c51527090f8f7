package services

import (
	"context"
	"sync"
	"time"

	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/domain"
)

// recordingLatency records requested delays and can block until released.
type recordingLatency struct {
	mu       sync.Mutex
	delays   []time.Duration
	WaitFunc func(ctx context.Context, d time.Duration) error
}

func (l *recordingLatency) Wait(ctx context.Context, d time.Duration) error {
	l.mu.Lock()
	l.delays = append(l.delays, d)
	l.mu.Unlock()
	if l.WaitFunc != nil {
		return l.WaitFunc(ctx, d)
	}
	return ctx.Err()
}

// mockClipboard implements driven.Clipboard.
type mockClipboard struct {
	text        string
	unsupported bool
	WriteFunc   func(text string) error
}

func (m *mockClipboard) WriteText(text string) error {
	if m.WriteFunc != nil {
		return m.WriteFunc(text)
	}
	m.text = text
	return nil
}

func (m *mockClipboard) Supported() bool {
	return !m.unsupported
}

// mockRecognizer implements driven.SpeechRecognizer.
type mockRecognizer struct {
	unsupported   bool
	RecognizeFunc func(ctx context.Context) (string, error)
}

func (m *mockRecognizer) Supported() bool {
	return !m.unsupported
}

func (m *mockRecognizer) Recognize(ctx context.Context) (string, error) {
	if m.RecognizeFunc != nil {
		return m.RecognizeFunc(ctx)
	}
	return "", domain.ErrNoSpeechResult
}

// stubCodec implements driven.QuizDecoder with plain text.
type stubCodec struct {
	encoded []domain.QuizQuestion
}

func (s *stubCodec) Decode(_ []byte) ([]domain.QuizQuestion, error) {
	return []domain.QuizQuestion{domain.FallbackQuestion()}, nil
}

func (s *stubCodec) Encode(questions []domain.QuizQuestion) ([]byte, error) {
	s.encoded = questions
	return []byte("[quiz]"), nil
}
