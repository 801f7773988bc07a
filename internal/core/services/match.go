package services

import (
	"sort"
	"strings"

	"github.com/custodia-labs/keyscout-cli/internal/core/domain"
	"github.com/custodia-labs/keyscout-cli/internal/core/ports/driven"
	"github.com/custodia-labs/keyscout-cli/internal/core/ports/driving"
	"github.com/custodia-labs/keyscout-cli/internal/logger"
)

// Ensure MatchEngine implements the interface.
var _ driving.KeySearchService = (*MatchEngine)(nil)

// MatchEngine ranks translation records against a query using the tiered
// scoring model: exact 0.0, prefix 0.2, both-fields-contain 0.4,
// one-field-contains 0.6, otherwise excluded. "Fuzzy" here means tolerant
// substring matching with tiered confidence, not edit-distance matching;
// the optional fallback scorer only fills the band above 0.6 when
// explicitly requested.
type MatchEngine struct {
	fallback driven.FallbackScorer
}

// NewMatchEngine creates a match engine. The fallback scorer is optional
// (can be nil); without it the Fuzzy option is ignored.
func NewMatchEngine(fallback driven.FallbackScorer) *MatchEngine {
	return &MatchEngine{fallback: fallback}
}

// Search performs tiered matching over the records. An empty query after
// trimming is a caller contract violation.
func (e *MatchEngine) Search(records []domain.TranslationRecord, query string, opts domain.SearchOptions) ([]domain.SearchResult, error) {
	q := normalizeText(query)
	if q == "" {
		return nil, domain.ErrEmptyQuery
	}
	return e.rank(records, q, opts), nil
}

// SmartSearch is the forgiving entry point: it pre-normalizes the query
// and returns an empty list instead of an error on empty input.
func (e *MatchEngine) SmartSearch(records []domain.TranslationRecord, query string, opts domain.SearchOptions) []domain.SearchResult {
	q := normalizeText(query)
	if q == "" {
		return []domain.SearchResult{}
	}
	return e.rank(records, q, opts)
}

// rank is the single scorer shared by both entry points.
// The query must already be normalized.
func (e *MatchEngine) rank(records []domain.TranslationRecord, query string, opts domain.SearchOptions) []domain.SearchResult {
	logger.Section("Key Search")
	logger.Debug("Query: %q, candidates: %d, fuzzy: %t", query, len(records), opts.Fuzzy)

	results := make([]domain.SearchResult, 0, len(records))
	for i, rec := range records {
		score, ok := e.scoreCandidate(query, rec, opts.Fuzzy)
		if !ok {
			continue
		}
		res, err := domain.NewSearchResult(rec, score, i)
		if err != nil {
			// Scores come from the fixed tier table or the clamped fuzzy
			// band; a failure here means a broken scorer implementation.
			logger.Warn("Dropping candidate %q: %v", rec.Key(), err)
			continue
		}
		results = append(results, res)
	}

	// Ascending by score; SliceStable preserves candidate order for ties,
	// and rank index keeps the comparison fully deterministic.
	sort.SliceStable(results, func(i, j int) bool {
		if results[i].Score() != results[j].Score() {
			return results[i].Score() < results[j].Score()
		}
		if results[i].RankIndex() != results[j].RankIndex() {
			return results[i].RankIndex() < results[j].RankIndex()
		}
		return results[i].Record().Key() < results[j].Record().Key()
	})

	if opts.MinRelevancePercent > 0 {
		filtered := results[:0]
		for _, r := range results {
			if r.RelevancePercent() >= opts.MinRelevancePercent {
				filtered = append(filtered, r)
			}
		}
		results = filtered
	}

	limit := opts.Limit
	if limit <= 0 {
		limit = domain.DefaultSearchLimit
	}
	if len(results) > limit {
		results = results[:limit]
	}

	logger.Debug("Results: %d", len(results))
	return results
}

// scoreCandidate assigns the best tier that applies, or reports exclusion.
func (e *MatchEngine) scoreCandidate(query string, rec domain.TranslationRecord, fuzzy bool) (float64, bool) {
	key := normalizeText(rec.Key())
	value := normalizeText(rec.Value())

	keyContains := strings.Contains(key, query)
	valueContains := strings.Contains(value, query)

	switch {
	case key == query || value == query:
		return domain.ScoreExact, true
	case strings.HasPrefix(key, query) || strings.HasPrefix(value, query):
		return domain.ScorePrefix, true
	case keyContains && valueContains:
		return domain.ScoreBothContain, true
	case keyContains || valueContains:
		return domain.ScoreOneContains, true
	}

	if !fuzzy || e.fallback == nil {
		return 0, false
	}

	// Fuzzy-only hits land strictly below every substring tier: the
	// distance is mapped into (0.6, 1.0]. A distance of 0 cannot occur
	// here, it would have matched the exact tier.
	d := e.fallback.Distance(query, key)
	if dv := e.fallback.Distance(query, value); dv < d {
		d = dv
	}
	if d < 0 {
		d = 0
	} else if d > 1 {
		d = 1
	}
	return domain.ScoreOneContains + 0.4*d, true
}

// normalizeText trims, collapses internal whitespace runs to single
// spaces, and lowercases. Applied to queries and candidate fields alike.
func normalizeText(s string) string {
	return strings.ToLower(strings.Join(strings.Fields(s), " "))
}
