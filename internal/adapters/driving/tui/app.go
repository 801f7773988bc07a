// Package tui provides the interactive terminal UI: type on-page text,
// see ranked translation keys, press Enter to copy the selected one.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/custodia-labs/keyscout-cli/internal/core/domain"
)

// maxVisibleResults bounds the result list so the view fits small terminals.
const maxVisibleResults = 10

// extractedMsg carries the result of the initial extraction.
type extractedMsg struct {
	batch domain.ExtractionBatch
	err   error
}

// copiedMsg reports the outcome of a clipboard copy.
type copiedMsg struct {
	key string
	err error
}

// App is the bubbletea model for the key search UI.
type App struct {
	ports  *Ports
	styles *Styles
	ctx    context.Context

	input   textinput.Model
	batch   domain.ExtractionBatch
	results []domain.SearchResult
	cursor  int

	status string
	err    error
	width  int
	ready  bool
}

// NewApp creates the TUI application.
func NewApp(ports *Ports) (*App, error) {
	if err := ports.Validate(); err != nil {
		return nil, err
	}

	input := textinput.New()
	input.Placeholder = "Type the on-page text..."
	input.Prompt = "> "
	input.Focus()

	return &App{
		ports:  ports,
		styles: DefaultStyles(),
		ctx:    context.Background(),
		input:  input,
		width:  80,
	}, nil
}

// WithContext sets the context used for service calls.
func (a *App) WithContext(ctx context.Context) *App {
	a.ctx = ctx
	return a
}

// Init starts the initial extraction.
func (a *App) Init() tea.Cmd {
	return tea.Batch(textinput.Blink, a.extract())
}

// extract loads translation data in the background.
func (a *App) extract() tea.Cmd {
	return func() tea.Msg {
		batch, err := a.ports.Extraction.Extract(a.ctx)
		return extractedMsg{batch: batch, err: err}
	}
}

// Update handles messages.
func (a *App) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		a.width = msg.Width
		a.ready = true
		return a, nil

	case extractedMsg:
		if msg.err != nil {
			a.err = msg.err
			return a, nil
		}
		a.err = nil
		a.batch = msg.batch
		a.status = fmt.Sprintf("%d records from %s (%s)", len(msg.batch.Records), msg.batch.SourceLabel, msg.batch.Strategy)
		a.refreshResults()
		return a, nil

	case copiedMsg:
		if msg.err != nil {
			a.status = fmt.Sprintf("copy failed: %v", msg.err)
		} else {
			a.status = fmt.Sprintf("copied %s", msg.key)
		}
		return a, nil

	case tea.KeyMsg:
		return a.handleKey(msg)
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	return a, cmd
}

// handleKey processes keyboard input.
func (a *App) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyCtrlC, tea.KeyEsc:
		return a, tea.Quit

	case tea.KeyUp:
		if a.cursor > 0 {
			a.cursor--
		}
		return a, nil

	case tea.KeyDown:
		if a.cursor < len(a.results)-1 {
			a.cursor++
		}
		return a, nil

	case tea.KeyCtrlR:
		a.status = "re-extracting..."
		return a, a.extract()

	case tea.KeyEnter:
		return a, a.selectCurrent()
	}

	var cmd tea.Cmd
	a.input, cmd = a.input.Update(msg)
	a.refreshResults()
	return a, cmd
}

// refreshResults re-runs the search for the current input text. A snapshot
// watcher may have started a new extraction cycle in the background, so
// the freshest cached batch is adopted first.
func (a *App) refreshResults() {
	if cached, ok := a.ports.Extraction.Current(); ok && cached.ID != a.batch.ID {
		a.batch = cached
		a.status = fmt.Sprintf("%d records from %s (%s)", len(cached.Records), cached.SourceLabel, cached.Strategy)
	}
	query := a.input.Value()
	a.results = a.ports.Search.SmartSearch(a.batch.Records, query, domain.SearchOptions{Limit: maxVisibleResults})
	if a.cursor >= len(a.results) {
		a.cursor = 0
	}
}

// selectCurrent copies the highlighted key and records the lookup.
func (a *App) selectCurrent() tea.Cmd {
	if a.cursor >= len(a.results) {
		return nil
	}
	selected := a.results[a.cursor]
	key := selected.Record().Key()
	query := a.input.Value()

	if a.ports.History != nil {
		// Best effort; a history failure must not disturb the session.
		_ = a.ports.History.RecordLookup(a.ctx, query, key, string(selected.Confidence()))
	}

	if a.ports.Clipboard == nil {
		a.status = key
		return nil
	}
	return func() tea.Msg {
		return copiedMsg{key: key, err: a.ports.Clipboard.WriteText(key)}
	}
}

// View renders the app.
func (a *App) View() string {
	var b strings.Builder

	b.WriteString(a.styles.Title.Render("KeyScout"))
	b.WriteString("\n\n")
	b.WriteString(a.input.View())
	b.WriteString("\n\n")

	switch {
	case a.err != nil:
		b.WriteString(a.styles.Error.Render(fmt.Sprintf("error: %v", a.err)))
		b.WriteString("\n")
	case len(a.results) == 0 && a.input.Value() != "":
		b.WriteString(a.styles.Muted.Render("No matching keys."))
		b.WriteString("\n")
	default:
		for i, r := range a.results {
			line := fmt.Sprintf("%s  %s %s",
				r.Record().Key(),
				a.styles.Badge(r.Confidence()),
				a.styles.Muted.Render(fmt.Sprintf("%d%%", r.RelevancePercent())))
			if i == a.cursor {
				b.WriteString(a.styles.Selected.Render("> " + line))
			} else {
				b.WriteString(a.styles.Normal.Render("  " + line))
			}
			b.WriteString("\n")
			b.WriteString(a.styles.Muted.Render("      " + r.Record().Value()))
			b.WriteString("\n")
		}
	}

	b.WriteString("\n")
	if a.status != "" {
		b.WriteString(a.styles.Success.Render(a.status))
		b.WriteString("\n")
	}
	b.WriteString(a.styles.Muted.Render("enter copy | ctrl+r re-extract | esc quit"))
	b.WriteString("\n")

	return b.String()
}
