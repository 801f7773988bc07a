package services

import (
	"context"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/keyscout-cli/internal/core/ports/driven"
	"github.com/custodia-labs/keyscout-cli/internal/core/ports/driving"
)

// Ensure History implements the interface.
var _ driving.HistoryService = (*History)(nil)

// History records lookup activity. The store is optional: without one,
// recording is a silent no-op and reads return nothing.
type History struct {
	store driven.HistoryStore
}

// NewHistory creates the history service. The store can be nil.
func NewHistory(store driven.HistoryStore) *History {
	return &History{store: store}
}

// RecordLookup stores one search and the selected key.
func (h *History) RecordLookup(ctx context.Context, query, key, confidence string) error {
	if h.store == nil {
		return nil
	}
	return h.store.Record(ctx, driven.Lookup{
		ID:         uuid.New().String(),
		Query:      query,
		Key:        key,
		Confidence: confidence,
		CreatedAt:  time.Now(),
	})
}

// Recent returns the most recent lookups, newest first.
func (h *History) Recent(ctx context.Context, limit int) ([]driven.Lookup, error) {
	if h.store == nil {
		return nil, nil
	}
	return h.store.Recent(ctx, limit)
}

// TopKeys returns the most frequently selected keys.
func (h *History) TopKeys(ctx context.Context, limit int) ([]driven.KeyCount, error) {
	if h.store == nil {
		return nil, nil
	}
	return h.store.TopKeys(ctx, limit)
}
