// Package memory provides in-memory implementations of the driven storage
// ports. They back the unit tests and the --ephemeral CLI mode, where
// nothing should touch the user's data directory.
package memory
