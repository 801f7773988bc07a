package services

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/custodia-labs/keyscout-cli/internal/core/domain"
	"github.com/custodia-labs/keyscout-cli/internal/core/ports/driving"
)

// Ensure Resolver implements the interface.
var _ driving.TextResolver = (*Resolver)(nil)

// Resolver defaults.
const (
	// DefaultShortTextThreshold is the raw-text length above which the
	// resolver prefers the visible-only representation.
	DefaultShortTextThreshold = 100

	// DefaultMaxSnippetLength bounds what gets sent through messaging and
	// matched.
	DefaultMaxSnippetLength = 200
)

// truncationMarker is appended to snippets cut at the length bound.
const truncationMarker = "…"

// hiddenSelector matches content that is not rendered for the user.
const hiddenSelector = "script, style, noscript, template, [hidden], [aria-hidden='true']"

// Resolver extracts a bounded, whitespace-normalized text snippet from an
// element's HTML fragment. Short fragments use the full text content; long
// ones prefer visible text only, so collapsed or scripted descendants do
// not pollute the match input.
type Resolver struct {
	// ShortTextThreshold is the raw length cutoff. Zero means the default.
	ShortTextThreshold int

	// MaxSnippetLength is the truncation bound. Zero means the default.
	MaxSnippetLength int
}

// NewResolver creates a resolver with default bounds.
func NewResolver() *Resolver {
	return &Resolver{
		ShortTextThreshold: DefaultShortTextThreshold,
		MaxSnippetLength:   DefaultMaxSnippetLength,
	}
}

// ResolveText returns the match snippet for the fragment.
// An empty result means "no text to search" and is not an error; only an
// unparseable fragment fails.
func (r *Resolver) ResolveText(fragment string) (string, error) {
	threshold := r.ShortTextThreshold
	if threshold <= 0 {
		threshold = DefaultShortTextThreshold
	}
	maxLen := r.MaxSnippetLength
	if maxLen <= 0 {
		maxLen = DefaultMaxSnippetLength
	}

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return "", fmt.Errorf("%w: parsing element fragment: %v", domain.ErrInvalidInput, err)
	}

	raw := collapseWhitespace(doc.Text())
	text := raw
	if len([]rune(raw)) > threshold {
		// Prefer visible text for long content; fall back to the raw
		// content when stripping leaves nothing.
		doc.Find(hiddenSelector).Remove()
		if visible := collapseWhitespace(doc.Text()); visible != "" {
			text = visible
		}
	}

	return truncateRunes(text, maxLen), nil
}

// collapseWhitespace folds whitespace runs into single spaces and trims.
func collapseWhitespace(s string) string {
	return strings.Join(strings.Fields(s), " ")
}

// truncateRunes cuts s at max runes, appending the truncation marker.
func truncateRunes(s string, max int) string {
	runes := []rune(s)
	if len(runes) <= max {
		return s
	}
	return string(runes[:max]) + truncationMarker
}
