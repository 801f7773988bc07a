package domain

import "errors"

// Domain errors represent business logic failures.
// These are distinct from infrastructure errors.
var (
	// ErrNotFound indicates a requested entity does not exist.
	ErrNotFound = errors.New("not found")

	// ErrInvalidInput indicates malformed or invalid input.
	ErrInvalidInput = errors.New("invalid input")

	// ErrEmptyQuery indicates the strict search entry point was called with
	// an empty or whitespace-only query. This is a caller contract
	// violation; SmartSearch short-circuits to an empty result list instead.
	ErrEmptyQuery = errors.New("empty query")

	// ErrNoTranslationData indicates no translation dictionary could be
	// located for either strategy. This is the single user-facing failure
	// surfaced after the cross-strategy retry is exhausted.
	ErrNoTranslationData = errors.New("no translation data found")

	// ErrWrongDomain indicates a location strategy was requested for a page
	// outside the target domain. Strategy selection is only meaningful on
	// the target site.
	ErrWrongDomain = errors.New("page is not on the target domain")

	// ErrScoreOutOfRange indicates a search result was constructed with a
	// score outside the closed [0, 1] range.
	ErrScoreOutOfRange = errors.New("score out of range")
)
