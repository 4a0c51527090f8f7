package domain

import "fmt"

// QuizQuestion is a pre-authored multiple-choice question.
// Correctness is by value: CorrectAnswer must equal one option's text.
type QuizQuestion struct {
	Question      string   `json:"question"`
	Options       []string `json:"options"`
	CorrectAnswer string   `json:"correctAnswer"`
}

// Validate checks that the correct answer appears exactly once among at
// least two options.
func (q *QuizQuestion) Validate() error {
	if q.Question == "" {
		return fmt.Errorf("%w: empty question text", ErrInvalidQuiz)
	}
	if len(q.Options) < 2 {
		return fmt.Errorf("%w: %q needs at least two options", ErrInvalidQuiz, q.Question)
	}
	seen := make(map[string]bool, len(q.Options))
	for _, opt := range q.Options {
		if seen[opt] {
			return fmt.Errorf("%w: %q repeats option %q", ErrAmbiguousOption, q.Question, opt)
		}
		seen[opt] = true
	}
	if !seen[q.CorrectAnswer] {
		return fmt.Errorf("%w: %q correct answer %q is not an option", ErrInvalidQuiz, q.Question, q.CorrectAnswer)
	}
	return nil
}

// IsCorrect reports whether option is the designated correct answer.
func (q *QuizQuestion) IsCorrect(option string) bool {
	return option == q.CorrectAnswer
}

// CorrectIndex returns the index of the correct option, or -1.
func (q *QuizQuestion) CorrectIndex() int {
	for i, opt := range q.Options {
		if opt == q.CorrectAnswer {
			return i
		}
	}
	return -1
}

// DefaultQuizSize is the number of questions drawn per quiz.
const DefaultQuizSize = 3

// FallbackQuestion is served when no topic bank is available.
func FallbackQuestion() QuizQuestion {
	return QuizQuestion{
		Question: "ما هو الهدف الأساسي من نظام إدارة التعلم (LMS)؟",
		Options: []string{
			"تنظيم المحتوى التعليمي ومتابعة تقدم الموظفين",
			"إدارة المبيعات في الصيدليات",
			"حجز مواعيد الإجازات",
			"إرسال الفواتير للعملاء",
		},
		CorrectAnswer: "تنظيم المحتوى التعليمي ومتابعة تقدم الموظفين",
	}
}
