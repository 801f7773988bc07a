package mcp

import (
	"github.com/custodia-labs/keyscout-cli/internal/core/ports/driving"
)

// Ports aggregates all driving port interfaces required by the MCP server.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Extraction turns the captured page state into translation records.
	Extraction driving.ExtractionService

	// Search ranks translation records against query text.
	Search driving.KeySearchService

	// Resolver extracts display text from HTML fragments.
	Resolver driving.TextResolver

	// History reports recorded lookups. Optional.
	History driving.HistoryService
}

// Validate ensures all required ports are set.
// Returns an error if any required port is nil.
func (p *Ports) Validate() error {
	if p.Extraction == nil {
		return ErrMissingExtractionService
	}
	if p.Search == nil {
		return ErrMissingSearchService
	}
	if p.Resolver == nil {
		return ErrMissingResolverService
	}
	// History is optional
	return nil
}
