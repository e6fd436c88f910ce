// Package mcp provides an MCP (Model Context Protocol) server adapter for taxo.
// It lets AI assistants like Claude browse and query the generated skill taxonomy.
package mcp

import "errors"

// ErrMissingQueryService is returned when the taxonomy query service is not provided.
var ErrMissingQueryService = errors.New("mcp: taxonomy query service is required")
