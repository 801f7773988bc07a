package cli

import (
	"context"
	"errors"
	"fmt"
	"os"
	"runtime/debug"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/custodia-labs/keyscout-cli/internal/adapters/driving/tui"
	"github.com/custodia-labs/keyscout-cli/internal/logger"
)

var tuiCmd = &cobra.Command{
	Use:   "tui",
	Short: "Launch the interactive terminal UI",
	Long: `Launch the interactive terminal user interface for KeyScout.

Type the text you see on the page; matching translation keys appear as
you type, ranked by relevance with confidence badges.

Controls:
  ↑/↓     - Navigate results
  Enter   - Copy the selected key
  Ctrl+R  - Re-extract from the snapshot
  Esc     - Quit`,
	RunE: runTUI,
}

func init() {
	rootCmd.AddCommand(tuiCmd)
}

func runTUI(cmd *cobra.Command, _ []string) error {
	// Panic recovery to get stack traces out of the alt screen
	defer func() {
		if r := recover(); r != nil {
			fmt.Fprintf(os.Stderr, "Panic in TUI: %v\n", r)
			fmt.Fprintf(os.Stderr, "Stack trace:\n%s\n", debug.Stack())
		}
	}()

	ports := &tui.Ports{
		Extraction: extractionService,
		Search:     searchService,
		Clipboard:  clipboardWriter,
		History:    historyService,
	}

	app, err := tui.NewApp(ports)
	if err != nil {
		return fmt.Errorf("failed to create TUI: %w", err)
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()
	app.WithContext(ctx)

	// Keep the extraction cache current while the UI runs; results pick
	// up the fresh batch on the next keystroke.
	go func() {
		if err := extractionService.Watch(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Warn("Snapshot watch stopped: %v", err)
		}
	}()

	p := tea.NewProgram(app, tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("TUI error: %w", err)
	}
	return nil
}
