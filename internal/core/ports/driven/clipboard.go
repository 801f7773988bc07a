package driven

// Clipboard writes text to the system clipboard.
type Clipboard interface {
	// WriteText places the given text on the clipboard.
	WriteText(text string) error
}
