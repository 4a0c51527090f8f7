// Package search is the overlay opened from the header search box. It
// queries the catalog on every keystroke and opens the chosen topic.
package search

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/adapters/driving/tui/components/input"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/adapters/driving/tui/components/list"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/adapters/driving/tui/keymap"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/adapters/driving/tui/messages"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/adapters/driving/tui/styles"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/domain"
	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/ports/driving"
)

// View searches the catalog as the user types.
type View struct {
	styles        *styles.Styles
	keymap        *keymap.KeyMap
	input         *input.TextInput
	list          *list.ResultList
	searchService driving.SearchService
	ctx           context.Context

	query  string
	err    error
	width  int
	height int
}

// NewView returns an empty overlay. A nil searchService never queries.
func NewView(s *styles.Styles, km *keymap.KeyMap, searchService driving.SearchService) *View {
	if s == nil {
		s = styles.DefaultStyles()
	}
	if km == nil {
		km = keymap.DefaultKeyMap()
	}

	return &View{
		styles:        s,
		keymap:        km,
		input:         input.NewSearchInput(s),
		list:          list.NewResultList(s),
		searchService: searchService,
		ctx:           context.Background(),
		width:         80,
		height:        24,
	}
}

// WithContext bounds the searches the view starts.
func (v *View) WithContext(ctx context.Context) *View {
	v.ctx = ctx
	return v
}

// Init starts the cursor blinking.
func (v *View) Init() tea.Cmd {
	return v.input.Init()
}

// Update routes keys and applies results for the current query.
func (v *View) Update(msg tea.Msg) (*View, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return v.handleKeyMsg(msg)

	case messages.SearchCompleted:
		// Results for an older query arrive after newer keystrokes
		if msg.Query != v.query {
			return v, nil
		}
		v.err = msg.Err
		v.list.SetResults(msg.Results)
		return v, nil
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	return v, cmd
}

// listKeys move the result cursor instead of editing the query.
var listKeys = map[tea.KeyType]bool{
	tea.KeyUp: true, tea.KeyDown: true,
	tea.KeyPgUp: true, tea.KeyPgDown: true,
	tea.KeyHome: true, tea.KeyEnd: true,
}

func (v *View) handleKeyMsg(msg tea.KeyMsg) (*View, tea.Cmd) {
	switch {
	case msg.Type == tea.KeyEsc:
		return v, func() tea.Msg {
			return messages.ViewChanged{View: messages.ViewGuide}
		}

	case listKeys[msg.Type]:
		v.list, _ = v.list.Update(msg)
		return v, nil

	case key.Matches(msg, v.keymap.Select):
		result := v.list.SelectedResult()
		if result == nil {
			return v, nil
		}
		id := result.TopicID
		return v, func() tea.Msg {
			return messages.TopicSelected{ID: id}
		}
	}

	var cmd tea.Cmd
	v.input, cmd = v.input.Update(msg)
	changed := v.input.Value() != v.query
	v.query = v.input.Value()
	switch {
	case !changed:
		return v, cmd
	case strings.TrimSpace(v.query) == "":
		v.err = nil
		v.list.SetResults(nil)
		return v, cmd
	}
	return v, tea.Batch(cmd, v.search(v.query))
}

func (v *View) search(query string) tea.Cmd {
	if v.searchService == nil {
		return nil
	}
	ctx := v.ctx
	return func() tea.Msg {
		results, err := v.searchService.Search(ctx, query, 0)
		return messages.SearchCompleted{Query: query, Results: results, Err: err}
	}
}

func (v *View) View() string {
	var below string
	switch {
	case v.err != nil:
		below = v.styles.Error.Render(v.err.Error())
	case strings.TrimSpace(v.query) == "":
		below = v.styles.Muted.Render("اكتب للبحث في العناوين والخطوات والأسئلة")
	default:
		below = v.list.View()
	}
	frame := v.styles.Border.Width(max(v.width-4, 20)).Padding(0, 1)
	return frame.Render(v.input.View() + "\n\n" + below)
}

// Reset empties the box, for the next time the overlay opens.
func (v *View) Reset() {
	v.input.Reset()
	v.list.SetResults(nil)
	v.query = ""
	v.err = nil
}

func (v *View) Query() string                  { return v.query }
func (v *View) Results() []domain.SearchResult { return v.list.Results() }
func (v *View) Err() error                     { return v.err }

// SetStyles replaces the styles after a theme change.
func (v *View) SetStyles(s *styles.Styles) {
	v.styles = s
	v.input.SetStyles(s)
	v.list.SetStyles(s)
}

// SetDimensions leaves room for the frame and padding.
func (v *View) SetDimensions(width, height int) {
	v.width = width
	v.height = height
	v.input.SetWidth(width - 8)
	v.list.SetDimensions(width-8, height-8)
}
