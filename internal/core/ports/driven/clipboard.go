package driven

// Clipboard is a write-only handle on the system clipboard.
type Clipboard interface {
	// WriteText replaces the clipboard contents.
	WriteText(text string) error

	// Supported reports whether a clipboard backend is present.
	Supported() bool
}
