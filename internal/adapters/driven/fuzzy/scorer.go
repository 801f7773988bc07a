// Package fuzzy provides the Levenshtein-based fallback scorer used when
// fuzzy matching is requested.
package fuzzy

import (
	"github.com/agnivade/levenshtein"

	"github.com/custodia-labs/keyscout-cli/internal/core/ports/driven"
)

// Ensure Scorer implements the interface.
var _ driven.FallbackScorer = (*Scorer)(nil)

// Scorer computes normalized Levenshtein distances.
type Scorer struct{}

// NewScorer creates a Levenshtein scorer.
func NewScorer() *Scorer {
	return &Scorer{}
}

// Distance returns the edit distance between query and candidate divided
// by the length of the longer string, yielding a value in [0, 1].
func (s *Scorer) Distance(query, candidate string) float64 {
	if query == candidate {
		return 0
	}

	longest := len([]rune(query))
	if l := len([]rune(candidate)); l > longest {
		longest = l
	}
	if longest == 0 {
		return 0
	}

	d := levenshtein.ComputeDistance(query, candidate)
	return float64(d) / float64(longest)
}
