package driving

import (
	"context"

	"github.com/custodia-labs/keyscout-cli/internal/core/domain"
)

// ExtractionService turns a captured page state into a flat batch of
// translation records.
type ExtractionService interface {
	// Extract begins a new extraction cycle: discard any cached batch,
	// classify the page route, locate the dictionary (retrying the
	// alternate strategy once on a miss), flatten it, and offer the batch
	// to the result cache.
	// Returns domain.ErrNoTranslationData when both strategies miss.
	Extract(ctx context.Context) (domain.ExtractionBatch, error)

	// ExtractLater schedules one delayed re-extraction pass within the
	// current cycle, to catch dictionaries that load after the first
	// attempt. The pass never replaces a populated cache and is a no-op
	// if the context is cancelled before the delay elapses.
	ExtractLater(ctx context.Context)

	// Watch blocks, beginning a fresh extraction cycle whenever the
	// captured page snapshot changes, until ctx is cancelled or the
	// snapshot source stops.
	Watch(ctx context.Context) error

	// Current returns the batch held by the result cache, if any.
	Current() (domain.ExtractionBatch, bool)
}
