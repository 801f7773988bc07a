package services

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/custodia-labs/keyscout-cli/internal/core/domain"
	"github.com/custodia-labs/keyscout-cli/internal/core/ports/driven"
	"github.com/custodia-labs/keyscout-cli/internal/core/ports/driving"
	"github.com/custodia-labs/keyscout-cli/internal/logger"
)

// Ensure Extraction implements the interface.
var _ driving.ExtractionService = (*Extraction)(nil)

// DefaultRetryDelay is how long the delayed re-extraction pass waits. It
// exists to catch dictionaries the page loads after the first attempt.
const DefaultRetryDelay = 2 * time.Second

// Extraction orchestrates one extraction cycle:
// classify route -> locate dictionary -> flatten -> offer to cache.
// The locator checks a single strategy per call; this service owns the
// one-shot cross-strategy retry.
type Extraction struct {
	classifier domain.RouteClassifier
	locator    *Locator
	flattener  *Flattener
	snapshots  driven.SnapshotSource
	cache      *ResultCache
	retryDelay time.Duration
}

// NewExtraction creates the extraction service.
func NewExtraction(
	classifier domain.RouteClassifier,
	locator *Locator,
	flattener *Flattener,
	snapshots driven.SnapshotSource,
) *Extraction {
	return &Extraction{
		classifier: classifier,
		locator:    locator,
		flattener:  flattener,
		snapshots:  snapshots,
		cache:      NewResultCache(),
		retryDelay: DefaultRetryDelay,
	}
}

// SetRetryDelay overrides the delayed-pass timeout. Useful for tests.
func (s *Extraction) SetRetryDelay(d time.Duration) {
	if d > 0 {
		s.retryDelay = d
	}
}

// Extract begins a new extraction cycle against the current snapshot. Any
// previously cached batch belongs to the old page and is discarded first;
// the cache's never-regress rule only arbitrates passes within one cycle.
func (s *Extraction) Extract(ctx context.Context) (domain.ExtractionBatch, error) {
	s.cache.Reset()
	return s.extract(ctx)
}

// extract runs one extraction pass without starting a new cycle.
func (s *Extraction) extract(ctx context.Context) (domain.ExtractionBatch, error) {
	logger.Section("Extraction")

	snap, err := s.snapshots.Load(ctx)
	if err != nil {
		return domain.ExtractionBatch{}, fmt.Errorf("load snapshot: %w", err)
	}

	pageCtx, err := domain.NewPageContext(s.classifier, snap.Domain, snap.Pathname)
	if err != nil {
		return domain.ExtractionBatch{}, err
	}
	logger.Debug("Page: domain=%q path=%q target=%t detail=%t lang=%q",
		pageCtx.Domain, pageCtx.Pathname, pageCtx.IsTargetDomain, pageCtx.IsDetailRoute, pageCtx.Language)

	strategy, err := pageCtx.Strategy()
	if err != nil {
		return domain.ExtractionBatch{}, err
	}

	located, err := s.locator.Locate(strategy, pageCtx.Language, snap.State)
	if errors.Is(err, domain.ErrNotFound) {
		// Single fallback: try the alternate strategy once before
		// declaring overall failure.
		alt := strategy.Alternate()
		logger.Info("Strategy %s missed, retrying %s", strategy, alt)
		located, err = s.locator.Locate(alt, pageCtx.Language, snap.State)
		if err == nil {
			strategy = alt
		}
	}
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return domain.ExtractionBatch{}, fmt.Errorf("%w: %v", domain.ErrNoTranslationData, err)
		}
		return domain.ExtractionBatch{}, err
	}

	batch := domain.ExtractionBatch{
		ID:          uuid.New().String(),
		Records:     s.flattener.Flatten(located.Raw),
		SourceLabel: located.SourceLabel,
		Strategy:    strategy,
		Language:    pageCtx.Language,
		ExtractedAt: time.Now(),
	}
	logger.Info("Extracted %d records from %q (%s strategy)", len(batch.Records), batch.SourceLabel, batch.Strategy)

	if s.cache.Offer(batch) {
		logger.Debug("Batch %s cached", batch.ID)
	}
	return batch, nil
}

// ExtractLater schedules one delayed re-extraction pass. The pass becomes
// a no-op when the context is cancelled before the delay elapses; there is
// no backoff sequence and no further retries.
func (s *Extraction) ExtractLater(ctx context.Context) {
	timer := time.NewTimer(s.retryDelay)
	go func() {
		defer timer.Stop()
		select {
		case <-ctx.Done():
			return
		case <-timer.C:
		}
		if ctx.Err() != nil {
			// The page context was torn down while the pass was pending.
			return
		}
		if _, err := s.extract(ctx); err != nil {
			logger.Debug("Delayed extraction pass: %v", err)
		}
	}()
}

// Watch blocks until ctx is cancelled or the snapshot source stops,
// running a fresh extraction cycle each time the source reports a change.
// A change means the extension captured a new page, so the old cache is
// discarded even when the new page yields nothing.
func (s *Extraction) Watch(ctx context.Context) error {
	changes, err := s.snapshots.Watch(ctx)
	if err != nil {
		return fmt.Errorf("watch snapshot: %w", err)
	}

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case _, ok := <-changes:
			if !ok {
				return nil
			}
			if _, err := s.Extract(ctx); err != nil {
				logger.Debug("Extraction after snapshot change: %v", err)
			}
		}
	}
}

// Current returns the batch held by the result cache, if any.
func (s *Extraction) Current() (domain.ExtractionBatch, bool) {
	return s.cache.Current()
}
