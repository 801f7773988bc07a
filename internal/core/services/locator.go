package services

import (
	"fmt"
	"strings"

	"github.com/custodia-labs/keyscout-cli/internal/core/domain"
	"github.com/custodia-labs/keyscout-cli/internal/logger"
)

// scopedDictPrefix is the key prefix of the language-scoped dictionary
// container on product detail pages ("$scopedDict_en", "$scopedDict_zh-tw").
const scopedDictPrefix = "$scopedDict_"

// DefaultFallbackLanguage is used when the page path carries no language
// tag. It matches the site's primary locale.
const DefaultFallbackLanguage = "en"

// LocateResult is a successfully located raw dictionary plus provenance.
type LocateResult struct {
	// Raw is the dictionary container, still nested.
	Raw map[string]any

	// SourceLabel names the probe that matched, for diagnostics and the
	// extraction response envelope.
	SourceLabel string
}

// Probe is one named location check: a pure extractor over a raw state
// object. New site shapes are supported by appending probes, not by
// branching inside existing ones.
type Probe struct {
	// Name labels the location for provenance.
	Name string

	// Strategy is the location strategy this probe belongs to.
	Strategy domain.Strategy

	// Extract returns the dictionary container at this location, if present.
	Extract func(state map[string]any, language string) (map[string]any, bool)
}

// Locator searches an ordered set of known locations for a translation
// dictionary. It checks only the strategy it is asked for; cross-strategy
// fallback is the caller's concern.
type Locator struct {
	probes           []Probe
	fallbackLanguage string
}

// NewLocator creates a locator with the default probe set.
// An empty fallbackLanguage falls back to DefaultFallbackLanguage.
func NewLocator(fallbackLanguage string) *Locator {
	if fallbackLanguage == "" {
		fallbackLanguage = DefaultFallbackLanguage
	}
	return &Locator{
		probes:           defaultProbes(),
		fallbackLanguage: fallbackLanguage,
	}
}

// AddProbe appends a probe to the search order.
func (l *Locator) AddProbe(p Probe) {
	l.probes = append(l.probes, p)
}

// Locate searches the hinted strategy's locations in order and returns the
// first viable dictionary. Absence is a recoverable condition reported as
// an error wrapping domain.ErrNotFound with a human-readable reason; it
// never panics regardless of how malformed the state object is.
func (l *Locator) Locate(strategy domain.Strategy, language string, state map[string]any) (*LocateResult, error) {
	if !strategy.IsValid() {
		return nil, fmt.Errorf("%w: unknown strategy %q", domain.ErrInvalidInput, strategy.String())
	}
	if state == nil {
		return nil, fmt.Errorf("%w: no global state object for %s strategy", domain.ErrNotFound, strategy)
	}

	lang := language
	if lang == "" {
		lang = l.fallbackLanguage
	}

	for _, p := range l.probes {
		if p.Strategy != strategy {
			continue
		}
		raw, ok := p.Extract(state, lang)
		if !ok {
			logger.Debug("Probe %q: no dictionary", p.Name)
			continue
		}
		logger.Info("Probe %q matched (%d top-level keys)", p.Name, len(raw))
		return &LocateResult{Raw: raw, SourceLabel: p.Name}, nil
	}

	return nil, fmt.Errorf("%w: no %s-strategy dictionary in page state (language %q)",
		domain.ErrNotFound, strategy, lang)
}

// defaultProbes returns the known dictionary locations, in search order.
func defaultProbes() []Probe {
	return []Probe{
		{
			Name:     "scoped-dict",
			Strategy: domain.StrategyDetail,
			Extract: func(state map[string]any, language string) (map[string]any, bool) {
				return asObject(state[scopedDictKey(language)])
			},
		},
		{
			Name:     "page-props-scoped-dict",
			Strategy: domain.StrategyDetail,
			Extract: func(state map[string]any, language string) (map[string]any, bool) {
				props, ok := asObject(state["pageProps"])
				if !ok {
					return nil, false
				}
				return asObject(props[scopedDictKey(language)])
			},
		},
		{
			Name:     "translation-state",
			Strategy: domain.StrategyGeneral,
			Extract: func(state map[string]any, _ string) (map[string]any, bool) {
				return asObject(state["translations"])
			},
		},
		{
			Name:     "i18n-messages",
			Strategy: domain.StrategyGeneral,
			Extract: func(state map[string]any, _ string) (map[string]any, bool) {
				i18n, ok := asObject(state["i18n"])
				if !ok {
					return nil, false
				}
				return asObject(i18n["messages"])
			},
		},
	}
}

// scopedDictKey builds the language-scoped container key. The language tag
// is lowercased to match how the site writes its state keys.
func scopedDictKey(language string) string {
	return scopedDictPrefix + strings.ToLower(language)
}

// asObject narrows an arbitrary decoded value to a non-empty-capable plain
// object. Arrays, nils and scalars do not qualify.
func asObject(v any) (map[string]any, bool) {
	m, ok := v.(map[string]any)
	if !ok || m == nil {
		return nil, false
	}
	return m, true
}
