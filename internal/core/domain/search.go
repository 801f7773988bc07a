package domain

import (
	"fmt"
	"math"
)

// Tier score values for the discrete relevance model. Lower is better.
const (
	// ScoreExact is assigned when key or value equals the query.
	ScoreExact = 0.0

	// ScorePrefix is assigned when key or value starts with the query.
	ScorePrefix = 0.2

	// ScoreBothContain is assigned when both key and value contain the query.
	ScoreBothContain = 0.4

	// ScoreOneContains is assigned when exactly one field contains the query.
	ScoreOneContains = 0.6
)

// SearchOptions configures a search query.
type SearchOptions struct {
	// Limit is the maximum number of results. Zero or negative means the
	// default of 20.
	Limit int

	// MinRelevancePercent drops results whose relevance percentage falls
	// below this value. Zero disables the filter.
	MinRelevancePercent int

	// Fuzzy scores candidates that fail every substring tier with a
	// continuous edit-distance score in (0.6, 1.0] instead of excluding
	// them. Tiers 1-4 are unaffected.
	Fuzzy bool
}

// DefaultSearchLimit is applied when SearchOptions.Limit is unset.
const DefaultSearchLimit = 20

// Confidence is a human-facing bucket derived from a score, display only.
type Confidence string

// Confidence buckets, best to worst.
const (
	// ConfidencePerfect is an exact match (score 0).
	ConfidencePerfect Confidence = "perfect"

	// ConfidenceHigh is a near-exact match (score below 0.2).
	ConfidenceHigh Confidence = "high"

	// ConfidenceMedium is a strong partial match (score below 0.4).
	ConfidenceMedium Confidence = "medium"

	// ConfidenceLow is a weak partial match (score below 0.6).
	ConfidenceLow Confidence = "low"

	// ConfidenceVeryLow is anything worse.
	ConfidenceVeryLow Confidence = "very_low"
)

// String returns the string representation.
func (c Confidence) String() string {
	return string(c)
}

// SearchResult is a single scored match. The record is held by value, so
// later mutation of the producer's data cannot affect an issued result.
type SearchResult struct {
	record    TranslationRecord
	score     float64
	rankIndex int
}

// NewSearchResult constructs a validated result.
// The score is a normalized distance: 0 is a perfect match, 1 the worst
// representable. Out-of-range or non-finite scores and negative rank
// indices are contract violations and fail fast.
func NewSearchResult(record TranslationRecord, score float64, rankIndex int) (SearchResult, error) {
	if math.IsNaN(score) || score < 0 || score > 1 {
		return SearchResult{}, fmt.Errorf("%w: %v", ErrScoreOutOfRange, score)
	}
	if rankIndex < 0 {
		return SearchResult{}, fmt.Errorf("%w: rank index must be non-negative, got %d", ErrInvalidInput, rankIndex)
	}
	return SearchResult{record: record, score: score, rankIndex: rankIndex}, nil
}

// Record returns the matched translation record.
func (r SearchResult) Record() TranslationRecord {
	return r.record
}

// Score returns the normalized distance in [0, 1]. Lower is better.
func (r SearchResult) Score() float64 {
	return r.score
}

// RankIndex returns the position in the original unsorted candidate list.
// It is a stable tie-break and diagnostic, not a semantic score.
func (r SearchResult) RankIndex() int {
	return r.rankIndex
}

// RelevancePercent converts the score to a display percentage.
func (r SearchResult) RelevancePercent() int {
	return int(math.Round((1 - r.score) * 100))
}

// Confidence returns the display bucket for this result's score.
func (r SearchResult) Confidence() Confidence {
	switch {
	case r.score == 0:
		return ConfidencePerfect
	case r.score < 0.2:
		return ConfidenceHigh
	case r.score < 0.4:
		return ConfidenceMedium
	case r.score < 0.6:
		return ConfidenceLow
	default:
		return ConfidenceVeryLow
	}
}
