package tui

import (
	"errors"

	"github.com/custodia-labs/keyscout-cli/internal/core/ports/driven"
	"github.com/custodia-labs/keyscout-cli/internal/core/ports/driving"
)

// Ports aggregates the port interfaces the TUI depends on.
// This provides a single injection point for dependency injection.
type Ports struct {
	// Extraction turns the captured page state into translation records.
	Extraction driving.ExtractionService

	// Search ranks translation records against query text.
	Search driving.KeySearchService

	// Clipboard copies the selected key. Optional; without it Enter only
	// shows the key.
	Clipboard driven.Clipboard

	// History records lookups. Optional.
	History driving.HistoryService
}

// Validate ensures all required ports are set.
func (p *Ports) Validate() error {
	if p.Extraction == nil {
		return errors.New("tui: extraction service is required")
	}
	if p.Search == nil {
		return errors.New("tui: search service is required")
	}
	return nil
}
