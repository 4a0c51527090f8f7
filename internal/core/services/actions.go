package services

import (
	"context"
	"fmt"

	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/domain"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/ports/driven"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/ports/driving"
)

// Ensure ActionService implements the interface.
var _ driving.ActionService = (*ActionService)(nil)

// ActionService copies guide content to the clipboard.
type ActionService struct {
	clipboard driven.Clipboard
	quiz      driving.QuizService
}

// NewActionService creates a new action service.
// clipboard may be nil when no backend is present.
func NewActionService(clipboard driven.Clipboard, quiz driving.QuizService) *ActionService {
	return &ActionService{
		clipboard: clipboard,
		quiz:      quiz,
	}
}

// CopyFAQ copies "question\nanswer".
func (s *ActionService) CopyFAQ(_ context.Context, item domain.FAQItem) error {
	return s.write(item.Text())
}

// CopyQuiz copies questions as indented quiz JSON.
func (s *ActionService) CopyQuiz(_ context.Context, questions []domain.QuizQuestion) error {
	if len(questions) == 0 {
		return fmt.Errorf("%w: no questions to copy", domain.ErrInvalidInput)
	}
	data, err := s.quiz.Encode(questions)
	if err != nil {
		return fmt.Errorf("encode quiz: %w", err)
	}
	return s.write(string(data))
}

// CanCopy reports whether a clipboard is available.
func (s *ActionService) CanCopy() bool {
	return s.clipboard != nil && s.clipboard.Supported()
}

func (s *ActionService) write(text string) error {
	if !s.CanCopy() {
		return domain.ErrClipboardUnavailable
	}
	if err := s.clipboard.WriteText(text); err != nil {
		return fmt.Errorf("%w: %w", domain.ErrClipboardUnavailable, err)
	}
	return nil
}
