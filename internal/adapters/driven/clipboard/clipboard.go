// Package clipboard writes to the system clipboard through atotto/clipboard.
package clipboard

import (
	"github.com/atotto/clipboard"

	"github.com/mohamedomar00700-sudo/United-Pharmacies-LMS-Guide1/internal/core/ports/driven"
)

// Ensure System implements the interface.
var _ driven.Clipboard = (*System)(nil)

// System is the OS clipboard (pbcopy, xclip/xsel/wl-copy, or the Windows API).
type System struct {
	write       func(string) error
	unsupported func() bool
}

// New returns the system clipboard.
func New() *System {
	return &System{
		write:       clipboard.WriteAll,
		unsupported: func() bool { return clipboard.Unsupported },
	}
}

// WriteText replaces the clipboard contents.
func (s *System) WriteText(text string) error {
	return s.write(text)
}

// Supported reports whether a clipboard utility was found.
func (s *System) Supported() bool {
	return !s.unsupported()
}
