// Package file provides a TOML file-backed configuration store.
// Configuration lives in ~/.taxo/config.toml by default and holds the
// catalogue term code, scrape limits, and Anthropic credentials.
package file
