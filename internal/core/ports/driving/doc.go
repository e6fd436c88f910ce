// Package driving provides interfaces for the use cases the application
// exposes (primary/inbound ports). The CLI and MCP adapters depend on
// these interfaces; the services package implements them.
package driving
