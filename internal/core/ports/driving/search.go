package driving

import (
	"github.com/custodia-labs/keyscout-cli/internal/core/domain"
)

// KeySearchService ranks translation records against free-form query text.
// Two entry points share one scorer and differ only in input validation:
// Search rejects empty queries, SmartSearch forgives them.
type KeySearchService interface {
	// Search performs tiered matching over the records.
	// An empty or whitespace-only query is a caller contract violation
	// and returns domain.ErrEmptyQuery.
	Search(records []domain.TranslationRecord, query string, opts domain.SearchOptions) ([]domain.SearchResult, error)

	// SmartSearch normalizes the query first and returns an empty result
	// list for empty input.
	SmartSearch(records []domain.TranslationRecord, query string, opts domain.SearchOptions) []domain.SearchResult
}
