package driven

import (
	"context"
	"time"
)

// Lookup is one recorded key search: what was asked and what was picked.
type Lookup struct {
	// ID is the unique identifier for the lookup.
	ID string

	// Query is the text the developer searched for.
	Query string

	// Key is the translation key that was selected, empty if none.
	Key string

	// Confidence is the display bucket of the selected result.
	Confidence string

	// CreatedAt is when the lookup happened.
	CreatedAt time.Time
}

// KeyCount pairs a translation key with how often it was selected.
type KeyCount struct {
	// Key is the translation key.
	Key string

	// Count is the number of times it was selected.
	Count int
}

// HistoryStore persists lookup history and per-key selection statistics.
// Translation data itself is never persisted; only what the developer
// searched for and copied.
type HistoryStore interface {
	// Record stores one lookup.
	Record(ctx context.Context, lookup Lookup) error

	// Recent returns the most recent lookups, newest first.
	Recent(ctx context.Context, limit int) ([]Lookup, error)

	// TopKeys returns the most frequently selected keys, descending.
	TopKeys(ctx context.Context, limit int) ([]KeyCount, error)

	// Close releases underlying resources.
	Close() error
}
