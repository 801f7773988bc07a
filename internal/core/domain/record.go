package domain

import (
	"fmt"
	"time"
)

// TranslationRecord is one flattened translation entry: the dotted i18n key
// and its human-readable value. Records are immutable after construction and
// live only for the extraction cycle that produced them.
type TranslationRecord struct {
	key   string
	value string
}

// NewTranslationRecord constructs a validated record.
// The key must be non-empty. The value may be empty but must have been a
// string in the source data; producers drop non-string leaves before this
// point. Validation failures are programming errors upstream and fail fast.
func NewTranslationRecord(key, value string) (TranslationRecord, error) {
	if key == "" {
		return TranslationRecord{}, fmt.Errorf("%w: translation record key must not be empty", ErrInvalidInput)
	}
	return TranslationRecord{key: key, value: value}, nil
}

// Key returns the dotted translation key (e.g. "greeting.hello").
func (r TranslationRecord) Key() string {
	return r.key
}

// Value returns the translated text. May be empty, never absent.
func (r TranslationRecord) Value() string {
	return r.value
}

// ExtractionBatch is the output of one extraction pass over a page's state.
// Batches are independent: a new page inspection rebuilds everything and the
// previous batch is discarded.
type ExtractionBatch struct {
	// ID uniquely identifies the extraction pass, for diagnostics.
	ID string

	// Records are the flattened translation entries, in source order.
	Records []TranslationRecord

	// SourceLabel names the probe location that produced the dictionary.
	SourceLabel string

	// Strategy is the location strategy that succeeded.
	Strategy Strategy

	// Language is the language tag the locator resolved (fallback applied).
	Language string

	// ExtractedAt is when the pass completed.
	ExtractedAt time.Time
}

// IsEmpty reports whether the batch carries no records.
func (b ExtractionBatch) IsEmpty() bool {
	return len(b.Records) == 0
}
