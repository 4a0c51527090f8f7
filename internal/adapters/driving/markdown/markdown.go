// Package markdown renders topics and quizzes as Markdown documents for
// the CLI (through glamour) and the MCP resources.
package markdown

import (
	"fmt"
	"strings"

	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/domain"
)

// Section headings.
const (
	StepsHeading = "الخطوات"
	FAQHeading   = "الأسئلة الشائعة"
	TipsHeading  = "نصائح"
	QuizHeading  = "اختبر معلوماتك"
)

// Topic renders a topic page. checked marks completed steps; it may be nil.
func Topic(t *domain.Topic, checked domain.CheckedSteps) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n\n%s\n", t.Title, t.Description)

	if len(t.Steps) > 0 {
		fmt.Fprintf(&b, "\n## %s (%d / %d مكتمل)\n\n", StepsHeading, checked.Count(), t.StepCount())
		for i, step := range t.Steps {
			mark := " "
			if checked.Contains(i) {
				mark = "x"
			}
			if t.ID == domain.TopicTroubleshooting {
				if symptom, fix, ok := domain.SplitTroubleshootingStep(step); ok {
					fmt.Fprintf(&b, "- [%s] **%s** ← %s\n", mark, symptom, fix)
					continue
				}
			}
			fmt.Fprintf(&b, "- [%s] %s\n", mark, step)
		}
	}

	if t.HasFAQ() {
		fmt.Fprintf(&b, "\n## %s\n", FAQHeading)
		for _, item := range t.FAQ {
			fmt.Fprintf(&b, "\n**%s**\n\n%s\n", item.Question, item.Answer)
		}
	}

	if t.HasTips() {
		fmt.Fprintf(&b, "\n## %s\n\n", TipsHeading)
		quoted := make([]string, len(t.Tips))
		for i, tip := range t.Tips {
			quoted[i] = "> " + tip
		}
		b.WriteString(strings.Join(quoted, "\n>\n") + "\n")
	}
	return b.String()
}

// Quiz renders numbered questions. With reveal the correct option is
// marked and listed under each question.
func Quiz(questions []domain.QuizQuestion, reveal bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# %s\n", QuizHeading)
	for i := range questions {
		q := &questions[i]
		fmt.Fprintf(&b, "\n%d. %s\n\n", i+1, q.Question)
		for j, opt := range q.Options {
			marker := fmt.Sprint(j + 1)
			if j < len(arabicLetters) {
				marker = arabicLetters[j]
			}
			if reveal && q.IsCorrect(opt) {
				fmt.Fprintf(&b, "   - %s) **%s** ✓\n", marker, opt)
				continue
			}
			fmt.Fprintf(&b, "   - %s) %s\n", marker, opt)
		}
	}
	return b.String()
}

var arabicLetters = []string{"أ", "ب", "ج", "د", "هـ", "و"}

// Catalog renders the topic index with completion badges.
func Catalog(topics []domain.Topic, done domain.ProgressMap) string {
	var b strings.Builder
	b.WriteString("# " + domain.AppName + "\n\n")
	for i := range topics {
		badge := ""
		if done[topics[i].ID] {
			badge = " ✓"
		}
		fmt.Fprintf(&b, "- **%s**%s (`%s`): %s\n", topics[i].Title, badge, topics[i].ID, topics[i].Description)
	}
	return b.String()
}
