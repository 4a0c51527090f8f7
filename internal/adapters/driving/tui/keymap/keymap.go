// Package keymap defines keybindings for the TUI.
//
// Content is right-to-left, so horizontal keys are mirrored: left moves
// forward (next topic, next slide) and right moves back.
package keymap

import (
	"github.com/charmbracelet/bubbles/key"
)

// KeyMap defines all keybindings for the TUI.
type KeyMap struct {
	// Quit exits the application.
	Quit key.Binding

	// Help shows the help view.
	Help key.Binding

	// Back closes the current overlay or panel.
	Back key.Binding

	// Up navigates up in a list.
	Up key.Binding

	// Down navigates down in a list.
	Down key.Binding

	// Select confirms a selection.
	Select key.Binding

	// Focus switches between the sidebar and the topic page.
	Focus key.Binding

	// Toggle checks or unchecks the step under the cursor.
	Toggle key.Binding

	// NextTopic and PrevTopic move through the catalog.
	NextTopic key.Binding
	PrevTopic key.Binding

	// Search opens the header search.
	Search key.Binding

	// Assistant opens the chat and quiz panel.
	Assistant key.Binding

	// Present starts presentation mode for the active topic.
	Present key.Binding

	// Theme switches between dark and light.
	Theme key.Binding

	// Copy copies the FAQ under the cursor, or the quiz in the quiz tab.
	Copy key.Binding

	// Helpful and NotHelpful record page feedback.
	Helpful    key.Binding
	NotHelpful key.Binding

	// Tab switches between the chat and quiz tabs.
	Tab key.Binding

	// Listen starts a voice capture.
	Listen key.Binding

	// GoToTopic opens the topic named by the last assistant reply.
	GoToTopic key.Binding

	// SlideNext and SlidePrev move through presentation slides.
	SlideNext key.Binding
	SlidePrev key.Binding
}

// DefaultKeyMap returns the default keybindings.
func DefaultKeyMap() *KeyMap {
	return &KeyMap{
		Quit: key.NewBinding(
			key.WithKeys("q", "ctrl+c"),
			key.WithHelp("q", "quit"),
		),
		Help: key.NewBinding(
			key.WithKeys("?"),
			key.WithHelp("?", "help"),
		),
		Back: key.NewBinding(
			key.WithKeys("esc"),
			key.WithHelp("esc", "back"),
		),
		Up: key.NewBinding(
			key.WithKeys("up", "k"),
			key.WithHelp("↑/k", "up"),
		),
		Down: key.NewBinding(
			key.WithKeys("down", "j"),
			key.WithHelp("↓/j", "down"),
		),
		Select: key.NewBinding(
			key.WithKeys("enter"),
			key.WithHelp("enter", "select"),
		),
		Focus: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "sidebar/page"),
		),
		Toggle: key.NewBinding(
			key.WithKeys(" ", "x"),
			key.WithHelp("space", "check step"),
		),
		NextTopic: key.NewBinding(
			key.WithKeys("left", "]"),
			key.WithHelp("←/]", "next topic"),
		),
		PrevTopic: key.NewBinding(
			key.WithKeys("right", "["),
			key.WithHelp("→/[", "previous topic"),
		),
		Search: key.NewBinding(
			key.WithKeys("/", "ctrl+f"),
			key.WithHelp("/", "search"),
		),
		Assistant: key.NewBinding(
			key.WithKeys("a"),
			key.WithHelp("a", "assistant"),
		),
		Present: key.NewBinding(
			key.WithKeys("p"),
			key.WithHelp("p", "present"),
		),
		Theme: key.NewBinding(
			key.WithKeys("t"),
			key.WithHelp("t", "theme"),
		),
		Copy: key.NewBinding(
			key.WithKeys("c", "ctrl+y"),
			key.WithHelp("c", "copy"),
		),
		Helpful: key.NewBinding(
			key.WithKeys("+"),
			key.WithHelp("+", "helpful"),
		),
		NotHelpful: key.NewBinding(
			key.WithKeys("-"),
			key.WithHelp("-", "not helpful"),
		),
		Tab: key.NewBinding(
			key.WithKeys("tab"),
			key.WithHelp("tab", "chat/quiz"),
		),
		Listen: key.NewBinding(
			key.WithKeys("ctrl+r"),
			key.WithHelp("ctrl+r", "voice"),
		),
		GoToTopic: key.NewBinding(
			key.WithKeys("ctrl+g"),
			key.WithHelp("ctrl+g", "open topic"),
		),
		SlideNext: key.NewBinding(
			key.WithKeys("left", "h", " ", "enter"),
			key.WithHelp("←/space", "next slide"),
		),
		SlidePrev: key.NewBinding(
			key.WithKeys("right", "l", "backspace"),
			key.WithHelp("→/⌫", "previous slide"),
		),
	}
}

// ShortHelp returns the bindings shown in the status bar.
func (k *KeyMap) ShortHelp() []key.Binding {
	return []key.Binding{k.Search, k.Assistant, k.Present, k.Help, k.Quit}
}

// GuideHelp returns the bindings for the topic page.
func (k *KeyMap) GuideHelp() []key.Binding {
	return []key.Binding{k.Toggle, k.NextTopic, k.PrevTopic, k.Copy, k.Focus}
}

// AssistantHelp returns the bindings for the assistant panel.
func (k *KeyMap) AssistantHelp() []key.Binding {
	return []key.Binding{k.Select, k.Tab, k.Listen, k.GoToTopic, k.Back}
}

// PresentationHelp returns the bindings for presentation mode.
func (k *KeyMap) PresentationHelp() []key.Binding {
	return []key.Binding{k.SlideNext, k.SlidePrev, k.Back}
}

// FullHelp returns the full list of keybindings for the help view.
func (k *KeyMap) FullHelp() [][]key.Binding {
	return [][]key.Binding{
		{k.Up, k.Down, k.Select, k.Focus, k.Toggle},
		{k.NextTopic, k.PrevTopic, k.Copy, k.Helpful, k.NotHelpful},
		{k.Search, k.Assistant, k.Present, k.Theme},
		{k.Tab, k.Listen, k.GoToTopic},
		{k.SlideNext, k.SlidePrev},
		{k.Back, k.Help, k.Quit},
	}
}

// Matches checks if a key string matches a binding.
func Matches(keyStr string, binding key.Binding) bool {
	for _, k := range binding.Keys() {
		if k == keyStr {
			return true
		}
	}
	return false
}
