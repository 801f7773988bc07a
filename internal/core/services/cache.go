package services

import (
	"sync"

	"github.com/custodia-labs/keyscout-cli/internal/core/domain"
)

// ResultCache holds the current extraction batch and arbitrates between
// the immediate and delayed extraction passes. The rule is "never regress
// to empty": a populated cache is never replaced, and an empty candidate
// is never stored. The outcome is therefore independent of which pass
// completes first.
type ResultCache struct {
	mu    sync.Mutex
	batch domain.ExtractionBatch
	held  bool
}

// NewResultCache creates an empty cache.
func NewResultCache() *ResultCache {
	return &ResultCache{}
}

// Current returns the cached batch, if one is held.
func (c *ResultCache) Current() (domain.ExtractionBatch, bool) {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.batch, c.held
}

// Offer proposes a batch. It is stored only when the cache holds nothing
// yet and the candidate carries records. Returns true if the batch was
// accepted.
func (c *ResultCache) Offer(batch domain.ExtractionBatch) bool {
	if batch.IsEmpty() {
		return false
	}

	c.mu.Lock()
	defer c.mu.Unlock()
	if c.held {
		return false
	}
	c.batch = batch
	c.held = true
	return true
}

// Reset clears the cache for a new page/extraction cycle.
func (c *ResultCache) Reset() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.batch = domain.ExtractionBatch{}
	c.held = false
}
