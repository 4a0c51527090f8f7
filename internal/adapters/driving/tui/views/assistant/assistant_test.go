package assistant

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/adapters/driven/storage/memory"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/adapters/driving/tui/messages"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/domain"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/services"
)

// MockSpeechService implements driving.SpeechService for testing.
type MockSpeechService struct {
	SupportedValue bool
	ListenFunc     func(ctx context.Context) (string, error)
}

func (m *MockSpeechService) Supported() bool { return m.SupportedValue }

func (m *MockSpeechService) Listen(ctx context.Context) (string, error) {
	if m.ListenFunc != nil {
		return m.ListenFunc(ctx)
	}
	return "", nil
}

func (m *MockSpeechService) Listening() bool { return false }

// MockActionService implements driving.ActionService for testing.
type MockActionService struct {
	quizzes [][]domain.QuizQuestion
}

func (m *MockActionService) CopyFAQ(context.Context, domain.FAQItem) error { return nil }

func (m *MockActionService) CopyQuiz(_ context.Context, q []domain.QuizQuestion) error {
	m.quizzes = append(m.quizzes, q)
	return nil
}

func (m *MockActionService) CanCopy() bool { return true }

func topics() []domain.Topic {
	return []domain.Topic{
		{
			ID: domain.TopicUpload, Title: "رفع المحتوى", Description: "رفع الملفات إلى الكورس",
			Steps: []string{"اضغط على رفع ملف"},
			Quizzes: []domain.QuizQuestion{
				{Question: "أين ترفع الملف؟", Options: []string{"الكورس", "البريد"}, CorrectAnswer: "الكورس"},
			},
		},
		{ID: domain.TopicReports, Title: "التقارير", Description: "استخراج التقارير"},
	}
}

func newView(t *testing.T, speech *MockSpeechService) (*View, *MockActionService) {
	t.Helper()
	cat, err := services.NewCatalogService(context.Background(), memory.NewCatalogSource(topics()))
	require.NoError(t, err)

	actions := &MockActionService{}
	svc := Services{
		Assistant: services.NewAssistantService(cat, services.NoLatency{}, 0),
		Quiz:      services.NewQuizService(cat, services.NoLatency{}, nil, services.QuizConfig{}),
		Actions:   actions,
	}
	if speech != nil {
		svc.Speech = speech
	}
	v := NewView(nil, nil, svc)
	v.SetDimensions(100, 40)
	return v, actions
}

// collect runs cmd and returns every message it yields, flattening batches.
func collect(cmd tea.Cmd) []tea.Msg {
	if cmd == nil {
		return nil
	}
	msg := cmd()
	if batch, ok := msg.(tea.BatchMsg); ok {
		var out []tea.Msg
		for _, c := range batch {
			out = append(out, collect(c)...)
		}
		return out
	}
	return []tea.Msg{msg}
}

func find[T tea.Msg](t *testing.T, cmd tea.Cmd) T {
	t.Helper()
	for _, msg := range collect(cmd) {
		if m, ok := msg.(T); ok {
			return m
		}
	}
	var zero T
	t.Fatalf("no %T in command output", zero)
	return zero
}

func typeText(v *View, text string) {
	for _, r := range text {
		v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
}

func enter(v *View) tea.Cmd {
	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEnter})
	return cmd
}

func TestOpen_SeedsWelcome(t *testing.T) {
	v, _ := newView(t, nil)

	v.Open(domain.TopicUpload)

	require.Len(t, v.Messages(), 1)
	assert.Equal(t, domain.WelcomeText, v.Messages()[0].Text)
	assert.Equal(t, TabChat, v.Tab())
	assert.Contains(t, v.View(), "الموضوع الحالي: upload")
}

func TestChat_AskAndReply(t *testing.T) {
	v, _ := newView(t, nil)
	v.Open(domain.TopicUpload)

	typeText(v, "رفع")
	reply := find[messages.ReplyReceived](t, enter(v))
	assert.True(t, v.Pending())
	require.Len(t, v.Messages(), 2)
	assert.Equal(t, domain.RoleUser, v.Messages()[1].Role)

	v.Update(reply)

	assert.False(t, v.Pending())
	require.Len(t, v.Messages(), 3)
	assert.Equal(t, domain.TopicUpload, v.Messages()[2].TopicID)
	assert.Equal(t, domain.TopicUpload, v.LastTarget())
}

func TestChat_EmptyInputIgnored(t *testing.T) {
	v, _ := newView(t, nil)
	v.Open("")

	assert.Nil(t, enter(v))
	assert.Len(t, v.Messages(), 1)
}

func TestChat_LateReplyDropped(t *testing.T) {
	v, _ := newView(t, nil)
	v.Open(domain.TopicUpload)
	typeText(v, "رفع")
	cmd := enter(v)

	v.Close()
	v.Open(domain.TopicUpload)
	v.Update(find[messages.ReplyReceived](t, cmd))

	assert.Len(t, v.Messages(), 1, "reopened panel shows only the welcome")
	assert.False(t, v.Pending())
}

func TestChat_CloseCancelsSession(t *testing.T) {
	v, _ := newView(t, nil)
	v.Open("")
	ctx := v.ctx

	v.Close()

	assert.ErrorIs(t, ctx.Err(), context.Canceled)
}

func TestChat_GoToTopic(t *testing.T) {
	v, _ := newView(t, nil)
	v.Open("")

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyCtrlG})
	assert.Nil(t, cmd, "welcome has no target")

	typeText(v, "التقارير")
	v.Update(find[messages.ReplyReceived](t, enter(v)))

	_, cmd = v.Update(tea.KeyMsg{Type: tea.KeyCtrlG})
	require.NotNil(t, cmd)
	assert.Equal(t, messages.TopicSelected{ID: domain.TopicReports}, cmd())
}

func TestEscGoesBack(t *testing.T) {
	v, _ := newView(t, nil)
	v.Open("")

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyEsc})

	require.NotNil(t, cmd)
	assert.Equal(t, messages.ViewChanged{View: messages.ViewGuide}, cmd())
}

func TestQuiz_GenerateAnswerAndCopy(t *testing.T) {
	v, actions := newView(t, nil)
	v.Open(domain.TopicUpload)
	v.Update(tea.KeyMsg{Type: tea.KeyTab})
	require.Equal(t, TabQuiz, v.Tab())

	ready := find[messages.QuizReady](t, enter(v))
	require.NoError(t, ready.Err)
	assert.Equal(t, domain.TopicUpload, ready.TopicID)
	v.Update(ready)
	require.Len(t, v.Questions(), 1)

	// second option is wrong
	v.Update(tea.KeyMsg{Type: tea.KeyDown})
	assert.Nil(t, enter(v))
	assert.Equal(t, 0, v.Score())
	assert.Contains(t, v.View(), "البريد ✗")
	assert.Contains(t, v.View(), "الكورس ✓")

	// answers are final
	v.Update(tea.KeyMsg{Type: tea.KeyUp})
	enter(v)
	assert.Equal(t, 0, v.Score())

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyCtrlY})
	require.NotNil(t, cmd)
	copied := cmd().(messages.Copied)
	assert.NoError(t, copied.Err)
	require.Len(t, actions.quizzes, 1)
}

func TestQuiz_TextNamesTopic(t *testing.T) {
	v, _ := newView(t, nil)
	v.Open(domain.TopicUpload)
	v.Update(tea.KeyMsg{Type: tea.KeyTab})

	typeText(v, "التقارير")
	ready := find[messages.QuizReady](t, enter(v))

	assert.Equal(t, domain.TopicReports, ready.TopicID)
	require.Len(t, ready.Questions, 1)
	assert.Equal(t, domain.FallbackQuestion().Question, ready.Questions[0].Question)
}

func TestQuiz_LateQuizDropped(t *testing.T) {
	v, _ := newView(t, nil)
	v.Open(domain.TopicUpload)
	v.Update(tea.KeyMsg{Type: tea.KeyTab})
	cmd := enter(v)

	v.Close()
	v.Update(find[messages.QuizReady](t, cmd))

	assert.Empty(t, v.Questions())
}

func TestQuiz_Error(t *testing.T) {
	v, _ := newView(t, nil)
	v.Open("")

	_, cmd := v.Update(messages.QuizReady{Generation: v.Generation(), Err: errors.New("boom")})

	require.NotNil(t, cmd)
	assert.IsType(t, messages.ErrorOccurred{}, cmd())
	assert.False(t, v.Pending())
}

func TestSpeech_UnsupportedShowsNotice(t *testing.T) {
	v, _ := newView(t, &MockSpeechService{SupportedValue: false})
	v.Open("")

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyCtrlR})

	assert.Nil(t, cmd)
	assert.Equal(t, UnsupportedNotice, v.Notice())
	assert.Contains(t, v.View(), "غير مدعوم")

	// any key dismisses the notice
	v.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{'x'}})
	assert.Empty(t, v.Notice())
}

func TestSpeech_NoServiceShowsNotice(t *testing.T) {
	v, _ := newView(t, nil)
	v.Open("")

	v.Update(tea.KeyMsg{Type: tea.KeyCtrlR})

	assert.Equal(t, UnsupportedNotice, v.Notice())
}

func TestSpeech_TranscriptFillsInput(t *testing.T) {
	speech := &MockSpeechService{
		SupportedValue: true,
		ListenFunc: func(context.Context) (string, error) {
			return "كيف أرفع ملف", nil
		},
	}
	v, _ := newView(t, speech)
	v.Open("")

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	assert.True(t, v.Listening())

	_, again := v.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	assert.Nil(t, again, "one capture at a time")

	v.Update(find[messages.SpeechHeard](t, cmd))
	assert.False(t, v.Listening())
	assert.Equal(t, "كيف أرفع ملف", v.chatInput.Value())
}

func TestSpeech_FailureResetsSilently(t *testing.T) {
	speech := &MockSpeechService{
		SupportedValue: true,
		ListenFunc: func(context.Context) (string, error) {
			return "", domain.ErrNoSpeechResult
		},
	}
	v, _ := newView(t, speech)
	v.Open("")

	_, cmd := v.Update(tea.KeyMsg{Type: tea.KeyCtrlR})
	v.Update(find[messages.SpeechHeard](t, cmd))

	assert.False(t, v.Listening())
	assert.Empty(t, v.Notice())
	assert.Empty(t, v.chatInput.Value())
}

func TestSpeech_StaleTranscriptDropped(t *testing.T) {
	v, _ := newView(t, &MockSpeechService{SupportedValue: true})
	v.Open("")
	gen := v.Generation()
	v.Close()
	v.Open("")

	v.Update(messages.SpeechHeard{Generation: gen, Text: "قديم"})

	assert.Empty(t, v.chatInput.Value())
}
