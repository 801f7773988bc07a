package driven

// FallbackScorer scores a candidate field against a query when no
// substring relationship exists. Implementations return a normalized
// distance in [0, 1] where 0 is identical and 1 is maximally different.
//
// The match engine maps this into the (0.6, 1.0] band so fuzzy-only hits
// always rank below every substring tier.
type FallbackScorer interface {
	// Distance returns the normalized distance between two normalized
	// strings.
	Distance(query, candidate string) float64
}
