package domain

import (
	"fmt"
	"strings"
)

// PageContext is the route classification for one inspected page.
// It is rebuilt fresh for every inspection and never persisted.
type PageContext struct {
	// Domain is the page host (e.g. "www.example-target.com").
	Domain string

	// Pathname is the URL path. Must start with "/".
	Pathname string

	// IsTargetDomain reports whether the page belongs to the target site.
	IsTargetDomain bool

	// IsDetailRoute reports whether the path matches the product detail
	// pattern. Only meaningful when IsTargetDomain is true.
	IsDetailRoute bool

	// Language is the leading language tag of the path, possibly empty.
	Language string
}

// NewPageContext constructs a validated context. A pathname that does not
// start with "/" indicates a malformed upstream producer and fails fast.
func NewPageContext(classifier RouteClassifier, domain, pathname string) (PageContext, error) {
	if !strings.HasPrefix(pathname, "/") {
		return PageContext{}, fmt.Errorf("%w: pathname must start with '/', got %q", ErrInvalidInput, pathname)
	}
	return classifier.Classify(domain, pathname), nil
}

// Strategy returns the dictionary-location strategy for this page.
// Requesting a strategy for a page outside the target domain is an error:
// the classification fields are meaningless there.
func (p PageContext) Strategy() (Strategy, error) {
	if !p.IsTargetDomain {
		return "", fmt.Errorf("%w: %s", ErrWrongDomain, p.Domain)
	}
	if p.IsDetailRoute {
		return StrategyDetail, nil
	}
	return StrategyGeneral, nil
}
