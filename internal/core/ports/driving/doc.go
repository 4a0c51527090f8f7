// Package driving lists what the guide can do, as seen by the TUI, the
// CLI and the MCP server. Each interface is one capability: browse the
// catalog, ask the assistant, search, take a quiz, track progress, vote on
// topics, copy content, change settings, listen for a spoken question.
//
// internal/core/services holds the only implementations. Adapters receive
// these interfaces and never construct services themselves.
package driving
