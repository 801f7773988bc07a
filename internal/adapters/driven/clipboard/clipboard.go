// Package clipboard provides the system clipboard adapter used to copy
// matched translation keys.
package clipboard

import (
	"github.com/atotto/clipboard"

	"github.com/custodia-labs/keyscout-cli/internal/core/ports/driven"
)

// Ensure Writer implements the interface.
var _ driven.Clipboard = (*Writer)(nil)

// Writer copies text to the OS clipboard.
type Writer struct{}

// NewWriter creates a clipboard writer.
func NewWriter() *Writer {
	return &Writer{}
}

// WriteText places the given text on the clipboard.
func (w *Writer) WriteText(text string) error {
	return clipboard.WriteAll(text)
}
