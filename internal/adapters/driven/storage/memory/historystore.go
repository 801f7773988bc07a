// Package memory provides in-memory implementations of driven port
// interfaces, used in tests and when history persistence is disabled.
package memory

import (
	"context"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/keyscout-cli/internal/core/ports/driven"
)

// Ensure HistoryStore implements the interface.
var _ driven.HistoryStore = (*HistoryStore)(nil)

// HistoryStore is an in-memory implementation of driven.HistoryStore.
type HistoryStore struct {
	mu      sync.RWMutex
	lookups []driven.Lookup
}

// NewHistoryStore creates a new in-memory history store.
func NewHistoryStore() *HistoryStore {
	return &HistoryStore{}
}

// Record stores one lookup. A missing ID or timestamp is filled in.
func (s *HistoryStore) Record(_ context.Context, lookup driven.Lookup) error {
	if strings.TrimSpace(lookup.Query) == "" {
		return fmt.Errorf("lookup query is empty")
	}
	if lookup.ID == "" {
		lookup.ID = uuid.New().String()
	}
	if lookup.CreatedAt.IsZero() {
		lookup.CreatedAt = time.Now()
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.lookups = append(s.lookups, lookup)
	return nil
}

// Recent returns the most recent lookups, newest first.
func (s *HistoryStore) Recent(_ context.Context, limit int) ([]driven.Lookup, error) {
	if limit <= 0 {
		limit = 10
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	sorted := make([]driven.Lookup, len(s.lookups))
	copy(sorted, s.lookups)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].CreatedAt.After(sorted[j].CreatedAt)
	})

	if len(sorted) > limit {
		sorted = sorted[:limit]
	}
	return sorted, nil
}

// TopKeys returns the most frequently selected keys, descending.
func (s *HistoryStore) TopKeys(_ context.Context, limit int) ([]driven.KeyCount, error) {
	if limit <= 0 {
		limit = 10
	}

	s.mu.RLock()
	defer s.mu.RUnlock()

	tally := make(map[string]int)
	for _, l := range s.lookups {
		if l.Key != "" {
			tally[l.Key]++
		}
	}

	counts := make([]driven.KeyCount, 0, len(tally))
	for key, n := range tally {
		counts = append(counts, driven.KeyCount{Key: key, Count: n})
	}
	sort.Slice(counts, func(i, j int) bool {
		if counts[i].Count != counts[j].Count {
			return counts[i].Count > counts[j].Count
		}
		return counts[i].Key < counts[j].Key
	})

	if len(counts) > limit {
		counts = counts[:limit]
	}
	return counts, nil
}

// Close is a no-op for the in-memory store.
func (s *HistoryStore) Close() error {
	return nil
}
