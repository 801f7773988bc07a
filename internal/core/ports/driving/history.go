package driving

import (
	"context"

	"github.com/custodia-labs/keyscout-cli/internal/core/ports/driven"
)

// HistoryService records and reports key lookup activity.
type HistoryService interface {
	// RecordLookup stores one search and the key that was selected.
	RecordLookup(ctx context.Context, query, key, confidence string) error

	// Recent returns the most recent lookups, newest first.
	Recent(ctx context.Context, limit int) ([]driven.Lookup, error)

	// TopKeys returns the most frequently selected keys.
	TopKeys(ctx context.Context, limit int) ([]driven.KeyCount, error)
}
