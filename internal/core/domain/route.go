package domain

import (
	"regexp"
	"strings"
)

// DefaultTargetDomain is the root domain of the supported site family.
// Subdomains of it are also considered target pages.
const DefaultTargetDomain = "example-target.com"

// Pre-compiled route patterns. Classification is case-insensitive; the
// language tag is returned as found in the path.
var (
	// detailRoutePattern matches /{lang}/product/{digits} with optional
	// trailing segments. Plural "products", missing ids and non-numeric ids
	// do not match.
	detailRoutePattern = regexp.MustCompile(`(?i)^/[a-z]{2}(?:-[a-z]{2})?/product/[0-9]+`)

	// langSegmentPattern captures a leading 2-letter language code with an
	// optional 2-letter region suffix.
	langSegmentPattern = regexp.MustCompile(`(?i)^/([a-z]{2}(?:-[a-z]{2})?)(?:/|$)`)
)

// IsDetailRoute reports whether the pathname is a product detail route,
// i.e. a language-prefixed path addressing a single numeric product id.
// It is a pure function of its input and never fails; malformed input
// simply classifies false.
func IsDetailRoute(pathname string) bool {
	return detailRoutePattern.MatchString(pathname)
}

// ExtractLanguage returns the leading language segment of the pathname
// ("en", "zh-tw", ...), or the empty string when the path does not start
// with one. Case is preserved as found.
func ExtractLanguage(pathname string) string {
	m := langSegmentPattern.FindStringSubmatch(pathname)
	if m == nil {
		return ""
	}
	return m[1]
}

// RouteClassifier decides which location strategy applies to a page URL.
// The zero value classifies against DefaultTargetDomain.
type RouteClassifier struct {
	// TargetDomain is the root domain to match. Empty means the default.
	TargetDomain string
}

// NewRouteClassifier creates a classifier for the given root domain.
// An empty root falls back to DefaultTargetDomain.
func NewRouteClassifier(targetDomain string) RouteClassifier {
	return RouteClassifier{TargetDomain: targetDomain}
}

// root returns the effective root domain, lowercased.
func (c RouteClassifier) root() string {
	if c.TargetDomain == "" {
		return DefaultTargetDomain
	}
	return strings.ToLower(c.TargetDomain)
}

// IsTargetDomain reports whether the domain is the target root domain or a
// true dot-subdomain of it. Matching is case-insensitive. Look-alike
// domains that merely embed the root as a substring are rejected.
func (c RouteClassifier) IsTargetDomain(domain string) bool {
	d := strings.ToLower(domain)
	root := c.root()
	return d == root || strings.HasSuffix(d, "."+root)
}

// Classify builds a PageContext from a page's domain and pathname.
// It is total over its inputs: malformed values produce false/empty
// classification fields, never an error.
func (c RouteClassifier) Classify(domain, pathname string) PageContext {
	return PageContext{
		Domain:         domain,
		Pathname:       pathname,
		IsTargetDomain: c.IsTargetDomain(domain),
		IsDetailRoute:  IsDetailRoute(pathname),
		Language:       ExtractLanguage(pathname),
	}
}
