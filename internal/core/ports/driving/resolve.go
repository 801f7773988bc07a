package driving

// TextResolver extracts a bounded, whitespace-normalized text snippet from
// a page element, suitable as match input.
type TextResolver interface {
	// ResolveText returns the snippet for an element's HTML fragment.
	// An empty result means "no text to search" and is not an error.
	ResolveText(fragment string) (string, error)
}
