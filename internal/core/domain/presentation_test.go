package domain

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"pgregory.net/rapid"
)

func threeStepTopic() *Topic {
	return &Topic{
		ID:    TopicReports,
		Title: "استخراج التقارير",
		Steps: []string{"one", "two", "three"},
	}
}

func TestPresentation_StartsAtTitleSlide(t *testing.T) {
	p := NewPresentation(threeStepTopic())

	assert.Equal(t, 0, p.Slide())
	assert.True(t, p.IsTitleSlide())
	assert.Equal(t, "", p.Step())
	assert.Equal(t, 4, p.Total())
	assert.InDelta(t, 25.0, p.Progress(), 0.001)
}

func TestPresentation_NextClampsAtLastSlide(t *testing.T) {
	p := NewPresentation(threeStepTopic())

	for i := 0; i < 4; i++ {
		p.Next()
	}
	assert.Equal(t, 3, p.Slide())
	assert.Equal(t, "three", p.Step())

	p.Next()
	assert.Equal(t, 3, p.Slide())
	assert.InDelta(t, 100.0, p.Progress(), 0.001)
}

func TestPresentation_PrevAtTitleIsNoop(t *testing.T) {
	p := NewPresentation(threeStepTopic())

	p.Prev()

	assert.Equal(t, 0, p.Slide())
}

func TestPresentation_Close(t *testing.T) {
	p := NewPresentation(threeStepTopic())
	p.Next()

	p.Close()
	p.Next()
	p.Prev()

	assert.True(t, p.Closed())
	assert.Equal(t, 1, p.Slide())
}

func TestPresentation_NoSteps(t *testing.T) {
	p := NewPresentation(&Topic{ID: TopicMobileApp, Title: "x"})

	p.Next()

	assert.Equal(t, 0, p.Slide())
	assert.Equal(t, 1, p.Total())
	assert.InDelta(t, 100.0, p.Progress(), 0.001)
}

// Any sequence of next/prev stays within [0, N] and progress within (0, 100].
func TestPresentation_StaysInBounds(t *testing.T) {
	rapid.Check(t, func(t *rapid.T) {
		n := rapid.IntRange(0, 8).Draw(t, "steps")
		steps := make([]string, n)
		for i := range steps {
			steps[i] = "step"
		}
		p := NewPresentation(&Topic{ID: TopicUpload, Title: "t", Steps: steps})

		moves := rapid.SliceOf(rapid.Bool()).Draw(t, "moves")
		for _, forward := range moves {
			if forward {
				p.Next()
			} else {
				p.Prev()
			}
			if p.Slide() < 0 || p.Slide() > n {
				t.Fatalf("slide %d outside [0, %d]", p.Slide(), n)
			}
			if p.Progress() <= 0 || p.Progress() > 100 {
				t.Fatalf("progress %f out of range", p.Progress())
			}
		}
	})
}
