// Package mcp provides an MCP (Model Context Protocol) server adapter for
// KeyScout. It lets AI assistants and editors look up translation keys for
// on-page text.
package mcp

import "errors"

// ErrMissingExtractionService is returned when the extraction service is not provided.
var ErrMissingExtractionService = errors.New("mcp: extraction service is required")

// ErrMissingSearchService is returned when the search service is not provided.
var ErrMissingSearchService = errors.New("mcp: search service is required")

// ErrMissingResolverService is returned when the resolver service is not provided.
var ErrMissingResolverService = errors.New("mcp: resolver service is required")
