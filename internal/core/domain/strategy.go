package domain

// Strategy identifies which dictionary-location strategy applies to a page.
type Strategy string

// Available strategies.
const (
	// StrategyDetail targets product detail pages, where the dictionary
	// lives in a language-scoped state container.
	StrategyDetail Strategy = "detail"

	// StrategyGeneral targets every other page, where the dictionary lives
	// in a flat container not keyed by language.
	StrategyGeneral Strategy = "general"
)

// IsValid returns true if the strategy is recognised.
func (s Strategy) IsValid() bool {
	switch s {
	case StrategyDetail, StrategyGeneral:
		return true
	default:
		return false
	}
}

// Alternate returns the other strategy. The locator never crosses
// strategies itself; callers use this for the single fallback retry.
func (s Strategy) Alternate() Strategy {
	if s == StrategyDetail {
		return StrategyGeneral
	}
	return StrategyDetail
}

// String returns the string representation.
func (s Strategy) String() string {
	return string(s)
}

// Description returns a human-readable description of the strategy.
func (s Strategy) Description() string {
	switch s {
	case StrategyDetail:
		return "Detail (language-scoped product dictionary)"
	case StrategyGeneral:
		return "General (flat page dictionary)"
	default:
		return "Unknown"
	}
}
