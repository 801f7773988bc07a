package tui

import (
	"context"
	"errors"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/custodia-labs/keyscout-cli/internal/core/domain"
	"github.com/custodia-labs/keyscout-cli/internal/core/ports/driven"
	"github.com/custodia-labs/keyscout-cli/internal/core/services"
)

// stubExtraction serves a fixed batch.
type stubExtraction struct {
	batch domain.ExtractionBatch
	err   error
}

func (s *stubExtraction) Extract(_ context.Context) (domain.ExtractionBatch, error) {
	if s.err != nil {
		return domain.ExtractionBatch{}, s.err
	}
	return s.batch, nil
}

func (s *stubExtraction) ExtractLater(_ context.Context) {}

func (s *stubExtraction) Watch(ctx context.Context) error {
	<-ctx.Done()
	return ctx.Err()
}

func (s *stubExtraction) Current() (domain.ExtractionBatch, bool) {
	return s.batch, s.err == nil
}

// stubClipboard remembers what was copied.
type stubClipboard struct {
	copied []string
	err    error
}

func (c *stubClipboard) WriteText(text string) error {
	if c.err != nil {
		return c.err
	}
	c.copied = append(c.copied, text)
	return nil
}

// stubHistory remembers recorded lookups.
type stubHistory struct {
	queries []string
	keys    []string
}

func (h *stubHistory) RecordLookup(_ context.Context, query, key, _ string) error {
	h.queries = append(h.queries, query)
	h.keys = append(h.keys, key)
	return nil
}

func (h *stubHistory) Recent(_ context.Context, _ int) ([]driven.Lookup, error) {
	return nil, nil
}

func (h *stubHistory) TopKeys(_ context.Context, _ int) ([]driven.KeyCount, error) {
	return nil, nil
}

func testBatch(t *testing.T) domain.ExtractionBatch {
	t.Helper()
	records := make([]domain.TranslationRecord, 0, 2)
	for _, pair := range [][2]string{
		{"greeting.hello", "Hello there"},
		{"checkout.pay", "Pay now"},
	} {
		r, err := domain.NewTranslationRecord(pair[0], pair[1])
		require.NoError(t, err)
		records = append(records, r)
	}
	return domain.ExtractionBatch{
		ID:          "batch-1",
		Records:     records,
		SourceLabel: "scoped-dict",
		Strategy:    domain.StrategyDetail,
	}
}

func newTestApp(t *testing.T, ports *Ports) *App {
	t.Helper()
	if ports.Search == nil {
		ports.Search = services.NewMatchEngine(nil)
	}
	app, err := NewApp(ports)
	require.NoError(t, err)
	return app
}

func typeText(app *App, text string) tea.Model {
	var model tea.Model = app
	for _, r := range text {
		model, _ = model.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	}
	return model
}

// TestNewApp_Validation tests required ports
func TestNewApp_Validation(t *testing.T) {
	_, err := NewApp(&Ports{Search: services.NewMatchEngine(nil)})
	assert.Error(t, err)

	_, err = NewApp(&Ports{Extraction: &stubExtraction{}})
	assert.Error(t, err)

	_, err = NewApp(&Ports{Extraction: &stubExtraction{}, Search: services.NewMatchEngine(nil)})
	assert.NoError(t, err)
}

// TestApp_ExtractedBatch tests that extraction results populate the status
func TestApp_ExtractedBatch(t *testing.T) {
	app := newTestApp(t, &Ports{Extraction: &stubExtraction{batch: testBatch(t)}})

	model, _ := app.Update(extractedMsg{batch: testBatch(t)})
	a := model.(*App)

	assert.Contains(t, a.status, "2 records")
	assert.Contains(t, a.View(), "scoped-dict")
}

// TestApp_ExtractionError tests the error state
func TestApp_ExtractionError(t *testing.T) {
	app := newTestApp(t, &Ports{Extraction: &stubExtraction{}})

	model, _ := app.Update(extractedMsg{err: errors.New("no snapshot")})
	a := model.(*App)

	assert.Contains(t, a.View(), "no snapshot")
}

// TestApp_TypingSearches tests live search over the extracted batch
func TestApp_TypingSearches(t *testing.T) {
	app := newTestApp(t, &Ports{Extraction: &stubExtraction{batch: testBatch(t)}})
	model, _ := app.Update(extractedMsg{batch: testBatch(t)})

	model = typeText(model.(*App), "pay now")
	a := model.(*App)

	require.Len(t, a.results, 1)
	assert.Equal(t, "checkout.pay", a.results[0].Record().Key())
	assert.Contains(t, a.View(), "checkout.pay")
}

// TestApp_AdoptsRefreshedBatch tests that a batch cached by a background
// re-extraction replaces the displayed one on the next keystroke
func TestApp_AdoptsRefreshedBatch(t *testing.T) {
	stub := &stubExtraction{batch: testBatch(t)}
	app := newTestApp(t, &Ports{Extraction: stub})
	model, _ := app.Update(extractedMsg{batch: stub.batch})

	// The snapshot watcher extracted a new page behind the scenes.
	record, err := domain.NewTranslationRecord("pageB.title", "Beta title")
	require.NoError(t, err)
	stub.batch = domain.ExtractionBatch{
		ID:          "batch-2",
		Records:     []domain.TranslationRecord{record},
		SourceLabel: "scoped-dict",
		Strategy:    domain.StrategyDetail,
	}

	model = typeText(model.(*App), "beta title")
	a := model.(*App)

	require.Len(t, a.results, 1)
	assert.Equal(t, "pageB.title", a.results[0].Record().Key())
}

// TestApp_EnterCopiesSelected tests the copy flow and history recording
func TestApp_EnterCopiesSelected(t *testing.T) {
	clip := &stubClipboard{}
	history := &stubHistory{}
	app := newTestApp(t, &Ports{
		Extraction: &stubExtraction{batch: testBatch(t)},
		Clipboard:  clip,
		History:    history,
	})
	model, _ := app.Update(extractedMsg{batch: testBatch(t)})
	model = typeText(model.(*App), "hello there")

	model, cmd := model.Update(tea.KeyMsg{Type: tea.KeyEnter})
	require.NotNil(t, cmd)
	msg := cmd()
	model, _ = model.Update(msg)
	a := model.(*App)

	assert.Equal(t, []string{"greeting.hello"}, clip.copied)
	assert.Equal(t, []string{"hello there"}, history.queries)
	assert.Equal(t, []string{"greeting.hello"}, history.keys)
	assert.Contains(t, a.status, "copied greeting.hello")
}

// TestApp_EnterWithoutResults tests that Enter is a no-op with nothing
// selected
func TestApp_EnterWithoutResults(t *testing.T) {
	app := newTestApp(t, &Ports{Extraction: &stubExtraction{batch: testBatch(t)}})

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEnter})
	assert.Nil(t, cmd)
}

// TestApp_Navigation tests cursor movement bounds
func TestApp_Navigation(t *testing.T) {
	app := newTestApp(t, &Ports{Extraction: &stubExtraction{batch: testBatch(t)}})
	model, _ := app.Update(extractedMsg{batch: testBatch(t)})
	model = typeText(model.(*App), "o") // matches both values

	a := model.(*App)
	require.Len(t, a.results, 2)
	assert.Equal(t, 0, a.cursor)

	model, _ = a.Update(tea.KeyMsg{Type: tea.KeyDown})
	a = model.(*App)
	assert.Equal(t, 1, a.cursor)

	// Bottom of the list: no further movement.
	model, _ = a.Update(tea.KeyMsg{Type: tea.KeyDown})
	a = model.(*App)
	assert.Equal(t, 1, a.cursor)

	model, _ = a.Update(tea.KeyMsg{Type: tea.KeyUp})
	a = model.(*App)
	assert.Equal(t, 0, a.cursor)
}

// TestApp_EscQuits tests the quit keys
func TestApp_EscQuits(t *testing.T) {
	app := newTestApp(t, &Ports{Extraction: &stubExtraction{batch: testBatch(t)}})

	_, cmd := app.Update(tea.KeyMsg{Type: tea.KeyEsc})
	require.NotNil(t, cmd)
	assert.Equal(t, tea.Quit(), cmd())
}
