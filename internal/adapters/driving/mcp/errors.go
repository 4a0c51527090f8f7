// Package mcp provides an MCP (Model Context Protocol) server adapter for
// the LMS guide. It lets AI assistants read topics and ask the guide's
// assistant, search and quiz services.
package mcp

import "errors"

// ErrMissingCatalogService is returned when the catalog service is not provided.
var ErrMissingCatalogService = errors.New("mcp: catalog service is required")
