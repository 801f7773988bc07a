package cli

import (
	"bytes"
	"context"
	"testing"

	"github.com/custodia-labs/keyscout-cli/internal/core/domain"
	"github.com/custodia-labs/keyscout-cli/internal/core/ports/driven"
	"github.com/custodia-labs/keyscout-cli/internal/core/services"
)

// stubSnapshotSource serves a fixed in-memory snapshot.
type stubSnapshotSource struct {
	snap driven.PageSnapshot
}

func (s *stubSnapshotSource) Load(_ context.Context) (*driven.PageSnapshot, error) {
	snap := s.snap
	return &snap, nil
}

func (s *stubSnapshotSource) Watch(_ context.Context) (<-chan struct{}, error) {
	ch := make(chan struct{})
	close(ch)
	return ch, nil
}

// stubClipboard remembers what was copied.
type stubClipboard struct {
	copied []string
}

func (c *stubClipboard) WriteText(text string) error {
	c.copied = append(c.copied, text)
	return nil
}

// setupTestServices wires the commands to real services over a fixed
// snapshot and returns a cleanup func restoring the previous wiring.
func setupTestServices() func() {
	prev := Services{
		Extraction: extractionService,
		Search:     searchService,
		Resolver:   resolverService,
		History:    historyService,
		Clipboard:  clipboardWriter,
	}

	source := &stubSnapshotSource{snap: driven.PageSnapshot{
		Domain:   "www.example-target.com",
		Pathname: "/en/product/1",
		State: map[string]any{
			"$scopedDict_en": map[string]any{
				"greeting": map[string]any{"hello": "Hello there"},
				"checkout": map[string]any{"pay": "Pay now"},
			},
		},
	}}

	SetServices(Services{
		Extraction: services.NewExtraction(
			domain.NewRouteClassifier(""), services.NewLocator(""), services.NewFlattener(), source),
		Search:    services.NewMatchEngine(nil),
		Resolver:  services.NewResolver(),
		History:   services.NewHistory(nil),
		Clipboard: &stubClipboard{},
	})

	return func() { SetServices(prev) }
}

// execute runs the root command with args and captures combined output.
func execute(t *testing.T, args ...string) (string, error) {
	t.Helper()
	buf := new(bytes.Buffer)
	rootCmd.SetOut(buf)
	rootCmd.SetErr(buf)
	rootCmd.SetArgs(args)
	t.Cleanup(func() { rootCmd.SetArgs(nil) })

	err := rootCmd.Execute()
	return buf.String(), err
}
