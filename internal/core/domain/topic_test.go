package domain

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func validQuestion() QuizQuestion {
	return QuizQuestion{
		Question:      "أين تجد تقرير الإكمال؟",
		Options:       []string{"Reports", "Users", "Quiz"},
		CorrectAnswer: "Reports",
	}
}

func TestTopicID_IsValid(t *testing.T) {
	for _, id := range AllTopicIDs() {
		assert.True(t, id.IsValid(), id)
	}
	assert.False(t, TopicID("").IsValid())
	assert.False(t, TopicID("billing").IsValid())
}

func TestParseTopicID(t *testing.T) {
	id, err := ParseTopicID(" quiz_setup ")
	require.NoError(t, err)
	assert.Equal(t, TopicQuizSetup, id)

	_, err = ParseTopicID("nope")
	require.Error(t, err)
	assert.True(t, errors.Is(err, ErrUnknownTopic))
}

func TestQuizQuestion_Validate(t *testing.T) {
	tests := []struct {
		name    string
		mutate  func(q *QuizQuestion)
		wantErr error
	}{
		{name: "valid", mutate: func(*QuizQuestion) {}},
		{name: "empty question", mutate: func(q *QuizQuestion) { q.Question = "" }, wantErr: ErrInvalidQuiz},
		{name: "one option", mutate: func(q *QuizQuestion) { q.Options = []string{"Reports"} }, wantErr: ErrInvalidQuiz},
		{name: "answer missing", mutate: func(q *QuizQuestion) { q.CorrectAnswer = "Gradebook" }, wantErr: ErrInvalidQuiz},
		{
			name:    "duplicate option text",
			mutate:  func(q *QuizQuestion) { q.Options = []string{"Reports", "Reports", "Users"} },
			wantErr: ErrAmbiguousOption,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			q := validQuestion()
			tt.mutate(&q)
			err := q.Validate()
			if tt.wantErr == nil {
				assert.NoError(t, err)
				return
			}
			assert.True(t, errors.Is(err, tt.wantErr), "got %v", err)
		})
	}
}

func TestQuizQuestion_CorrectIndex(t *testing.T) {
	q := validQuestion()
	assert.Equal(t, 0, q.CorrectIndex())
	assert.True(t, q.IsCorrect("Reports"))
	assert.False(t, q.IsCorrect("Users"))

	q.CorrectAnswer = "none"
	assert.Equal(t, -1, q.CorrectIndex())
}

func TestFallbackQuestion_IsValid(t *testing.T) {
	q := FallbackQuestion()
	assert.NoError(t, q.Validate())
}

func TestValidateCatalog(t *testing.T) {
	good := []Topic{
		{ID: TopicUpload, Title: "رفع المحتوى", Quizzes: []QuizQuestion{validQuestion()}},
		{ID: TopicReports, Title: "استخراج التقارير"},
	}
	require.NoError(t, ValidateCatalog(good))

	assert.ErrorIs(t, ValidateCatalog(nil), ErrEmptyCatalog)

	dup := []Topic{good[0], good[0]}
	assert.ErrorIs(t, ValidateCatalog(dup), ErrDuplicateTopic)

	unknown := []Topic{{ID: "billing", Title: "x"}}
	assert.ErrorIs(t, ValidateCatalog(unknown), ErrUnknownTopic)

	untitled := []Topic{{ID: TopicUsers}}
	assert.ErrorIs(t, ValidateCatalog(untitled), ErrInvalidInput)

	badQuiz := []Topic{{ID: TopicUsers, Title: "x", Quizzes: []QuizQuestion{{Question: "q", Options: []string{"a", "b"}, CorrectAnswer: "c"}}}}
	assert.ErrorIs(t, ValidateCatalog(badQuiz), ErrInvalidQuiz)
}

func TestNeighbours(t *testing.T) {
	topics := []Topic{{ID: TopicUpload}, {ID: TopicCourseSetup}, {ID: TopicQuizSetup}}

	prev, next := Neighbours(topics, TopicUpload)
	assert.Nil(t, prev)
	require.NotNil(t, next)
	assert.Equal(t, TopicCourseSetup, next.ID)

	prev, next = Neighbours(topics, TopicCourseSetup)
	assert.Equal(t, TopicUpload, prev.ID)
	assert.Equal(t, TopicQuizSetup, next.ID)

	prev, next = Neighbours(topics, TopicQuizSetup)
	assert.Equal(t, TopicCourseSetup, prev.ID)
	assert.Nil(t, next)

	prev, next = Neighbours(topics, TopicUsers)
	assert.Nil(t, prev)
	assert.Nil(t, next)
}

func TestSplitTroubleshootingStep(t *testing.T) {
	symptom, fix, ok := SplitTroubleshootingStep("فيديو لا يعمل -> تحقق من نوع الملف")
	require.True(t, ok)
	assert.Equal(t, "فيديو لا يعمل", symptom)
	assert.Equal(t, "تحقق من نوع الملف", fix)

	_, _, ok = SplitTroubleshootingStep("اضغط Save")
	assert.False(t, ok)
}

func TestTopic_Sections(t *testing.T) {
	topic := Topic{ID: TopicTroubleshooting, Title: "حل المشكلات", Steps: []string{"a"}}

	assert.Equal(t, 1, topic.StepCount())
	assert.False(t, topic.HasFAQ())
	assert.False(t, topic.HasTips())
}

func TestFAQItem_Text(t *testing.T) {
	f := FAQItem{Question: "q?", Answer: "a."}
	assert.Equal(t, "q?\na.", f.Text())
}
