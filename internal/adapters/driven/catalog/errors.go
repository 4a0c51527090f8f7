package catalog

import "errors"

var (
	// ErrUnknownIcon indicates a topic names an icon outside the closed set.
	ErrUnknownIcon = errors.New("unknown icon")

	// ErrUnknownColor indicates a topic names an unsupported colour tag.
	ErrUnknownColor = errors.New("unknown colour tag")

	// ErrFileRemoved indicates the watched catalog file disappeared.
	ErrFileRemoved = errors.New("watched catalog file was removed")
)
