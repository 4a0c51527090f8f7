package services

import (
	"strings"
	"unicode"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/unicode/norm"

	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/domain"
)

// greetings open a conversation rather than ask about a topic.
var greetings = []string{"hello", "hi", "hey", "مرحبا", "اهلا", "أهلا", "السلام", "هلا"}

// fold normalises s for case-insensitive containment checks.
// NFKC first so Arabic presentation forms and full-width Latin compare
// equal to their plain forms.
func fold(s string) string {
	return cases.Fold().String(norm.NFKC.String(s))
}

// contains reports whether haystack contains an already folded needle.
func contains(haystack, foldedNeedle string) bool {
	return strings.Contains(fold(haystack), foldedNeedle)
}

// isGreeting reports whether the folded query starts with a greeting
// followed by the end of input or a non-letter.
func isGreeting(q string) bool {
	for _, g := range greetings {
		g = fold(g)
		if !strings.HasPrefix(q, g) {
			continue
		}
		rest := q[len(g):]
		if rest == "" {
			return true
		}
		r, _ := utf8.DecodeRuneInString(rest)
		if !unicode.IsLetter(r) && !unicode.Is(unicode.Mn, r) {
			return true
		}
	}
	return false
}

// Match answers query from topics, preferring current when it is set.
// ok is false for a blank query, in which case nothing is scanned.
// A query nothing matches yields the fallback reply with ok true.
func Match(topics []domain.Topic, query string, current *domain.Topic) (reply domain.Reply, ok bool) {
	q := fold(strings.TrimSpace(query))
	if q == "" {
		return domain.Reply{}, false
	}

	if isGreeting(q) {
		return domain.Reply{Text: domain.GreetingText, Kind: domain.ReplyGreeting}, true
	}

	if current != nil {
		for _, f := range current.FAQ {
			if contains(f.Question, q) || contains(f.Answer, q) {
				return domain.Reply{Text: f.Answer, TopicID: current.ID, Kind: domain.ReplyCurrentFAQ}, true
			}
		}
		for _, step := range current.Steps {
			if contains(step, q) {
				return domain.Reply{Text: step, TopicID: current.ID, Kind: domain.ReplyCurrentStep}, true
			}
		}
	}

	for i := range topics {
		t := &topics[i]
		if contains(t.Title, q) {
			return domain.Reply{Text: t.Description, TopicID: t.ID, Kind: domain.ReplyGlobalTitle}, true
		}
		for _, tip := range t.Tips {
			if contains(tip, q) {
				return domain.Reply{Text: tip, TopicID: t.ID, Kind: domain.ReplyGlobalTip}, true
			}
		}
		for _, step := range t.Steps {
			if contains(step, q) {
				return domain.Reply{Text: step, TopicID: t.ID, Kind: domain.ReplyGlobalStep}, true
			}
		}
		for _, f := range t.FAQ {
			if contains(f.Question, q) || contains(f.Answer, q) {
				return domain.Reply{Text: f.Text(), TopicID: t.ID, Kind: domain.ReplyGlobalFAQ}, true
			}
		}
	}

	return domain.FallbackReply(), true
}

// HeaderSearch returns up to limit hits in catalog order: per topic a
// title hit, then every matching step, then every matching FAQ.
// A blank query returns no results without scanning.
func HeaderSearch(topics []domain.Topic, query string, limit int) []domain.SearchResult {
	q := fold(strings.TrimSpace(query))
	if q == "" || limit <= 0 {
		return []domain.SearchResult{}
	}

	results := make([]domain.SearchResult, 0, limit)
	add := func(t *domain.Topic, mt domain.MatchType, text string) bool {
		results = append(results, domain.SearchResult{
			TopicID:    t.ID,
			TopicTitle: t.Title,
			MatchType:  mt,
			Text:       text,
		})
		return len(results) >= limit
	}

	for i := range topics {
		t := &topics[i]
		if contains(t.Title, q) && add(t, domain.MatchTitle, t.Description) {
			return results
		}
		for _, step := range t.Steps {
			if contains(step, q) && add(t, domain.MatchStep, step) {
				return results
			}
		}
		for _, f := range t.FAQ {
			if (contains(f.Question, q) || contains(f.Answer, q)) && add(t, domain.MatchFAQ, f.Question) {
				return results
			}
		}
	}
	return results
}
