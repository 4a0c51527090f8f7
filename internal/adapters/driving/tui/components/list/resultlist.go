// Package list renders search hits as a scrollable, keyboard-driven list.
package list

import (
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/adapters/driving/tui/styles"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/domain"
)

// linesPerHit is the rendered height of one hit: a heading and a preview.
const linesPerHit = 2

// ResultList shows search hits with a cursor.
type ResultList struct {
	hits   []domain.SearchResult
	cursor int
	styles *styles.Styles
	width  int
	height int
}

// NewResultList returns an empty list. A nil s uses the dark palette.
func NewResultList(s *styles.Styles) *ResultList {
	if s == nil {
		s = styles.DefaultStyles()
	}
	return &ResultList{styles: s, width: 80, height: 10}
}

// Update moves the cursor. Arrow keys step one hit, page keys step a
// screen and home/end jump to the ends.
func (r *ResultList) Update(msg tea.Msg) (*ResultList, tea.Cmd) {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return r, nil
	}
	switch key.String() {
	case "up":
		r.moveBy(-1)
	case "down":
		r.moveBy(1)
	case "pgup":
		r.moveBy(-r.pageSize())
	case "pgdown":
		r.moveBy(r.pageSize())
	case "home":
		r.cursor = 0
	case "end":
		r.cursor = max(len(r.hits)-1, 0)
	}
	return r, nil
}

// MatchLabel names where a query matched, in Arabic.
func MatchLabel(m domain.MatchType) string {
	labels := map[domain.MatchType]string{
		domain.MatchTitle: "عنوان",
		domain.MatchStep:  "خطوة",
		domain.MatchFAQ:   "سؤال شائع",
		domain.MatchTip:   "نصيحة",
	}
	if label, ok := labels[m]; ok {
		return label
	}
	return string(m)
}

// View renders the visible window of hits around the cursor.
func (r *ResultList) View() string {
	if len(r.hits) == 0 {
		return r.styles.Muted.Render("لا توجد نتائج")
	}

	var b strings.Builder
	b.WriteString(r.styles.Subtitle.Render(fmt.Sprintf("النتائج (%d)", len(r.hits))))
	b.WriteString("\n")

	first, last := r.window()
	for i := first; i < last; i++ {
		b.WriteString("\n")
		b.WriteString(r.renderHit(i))
	}
	return b.String()
}

// window returns the half-open range of hit indices that fit on screen
// while keeping the cursor visible.
func (r *ResultList) window() (int, int) {
	page := r.pageSize()
	first := 0
	if r.cursor >= page {
		first = r.cursor - page + 1
	}
	return first, min(first+page, len(r.hits))
}

func (r *ResultList) pageSize() int {
	return max((r.height-2)/linesPerHit, 1)
}

func (r *ResultList) renderHit(i int) string {
	hit := &r.hits[i]
	heading := hit.TopicTitle + "  [" + MatchLabel(hit.MatchType) + "]"

	style := r.styles.Normal
	marker := "  "
	if i == r.cursor {
		style = r.styles.Selected
		marker = " ◂"
	}
	preview := r.styles.Muted.Render("    " + truncate(hit.Text, max(r.width-6, 20)))
	return style.Render(heading+marker) + "\n" + preview
}

func (r *ResultList) moveBy(delta int) {
	if len(r.hits) == 0 {
		return
	}
	r.cursor = min(max(r.cursor+delta, 0), len(r.hits)-1)
}

// truncate flattens s to one line of at most n runes.
func truncate(s string, n int) string {
	flat := []rune(strings.Join(strings.Fields(s), " "))
	if len(flat) <= n {
		return string(flat)
	}
	return string(flat[:n-1]) + "…"
}

// SetResults replaces the hits and puts the cursor on the first one.
func (r *ResultList) SetResults(hits []domain.SearchResult) {
	r.hits = hits
	r.cursor = 0
}

// Results returns the hits being shown.
func (r *ResultList) Results() []domain.SearchResult { return r.hits }

// Selected returns the cursor index.
func (r *ResultList) Selected() int { return r.cursor }

// SetSelected moves the cursor; out-of-range indices are ignored.
func (r *ResultList) SetSelected(i int) {
	if i >= 0 && i < len(r.hits) {
		r.cursor = i
	}
}

// SelectedResult returns the hit under the cursor, or nil.
func (r *ResultList) SelectedResult() *domain.SearchResult {
	if r.cursor < 0 || r.cursor >= len(r.hits) {
		return nil
	}
	return &r.hits[r.cursor]
}

// SetStyles swaps the palette after a theme toggle.
func (r *ResultList) SetStyles(s *styles.Styles) { r.styles = s }

// SetDimensions sets the area the list may draw into.
func (r *ResultList) SetDimensions(width, height int) {
	r.width, r.height = width, height
}

// IsEmpty reports whether there is nothing to show.
func (r *ResultList) IsEmpty() bool { return len(r.hits) == 0 }
