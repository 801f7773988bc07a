package cli

import (
	"context"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/keyscout-cli/internal/adapters/driving/host"
	"github.com/custodia-labs/keyscout-cli/internal/logger"
)

var hostCmd = &cobra.Command{
	Use:   "host",
	Short: "Run the browser extension messaging host",
	Long: `Runs the native-messaging host the browser extension talks to.
Requests and responses are length-prefixed JSON frames over stdio, so
this command is meant to be launched by the browser, not interactively.

Register the host binary in the browser's native messaging manifest:
  {
    "name": "com.custodia_labs.keyscout",
    "path": "/path/to/keyscout",
    "type": "stdio",
    "args": ["host"]
  }`,
	Args: cobra.NoArgs,
	RunE: runHost,
}

func init() {
	rootCmd.AddCommand(hostCmd)
}

func runHost(cmd *cobra.Command, _ []string) error {
	if extractionService == nil || searchService == nil || resolverService == nil {
		return errors.New("host services not configured")
	}

	h, err := host.NewHost(&host.Ports{
		Extraction: extractionService,
		Search:     searchService,
		Resolver:   resolverService,
	}, cmd.InOrStdin(), cmd.OutOrStdout())
	if err != nil {
		return err
	}

	ctx, cancel := context.WithCancel(cmd.Context())
	defer cancel()

	// Re-extract whenever the extension writes a new snapshot, so search
	// requests rank the page the user is actually on.
	go func() {
		if err := extractionService.Watch(ctx); err != nil && !errors.Is(err, context.Canceled) {
			logger.Warn("Snapshot watch stopped: %v", err)
		}
	}()

	if err := h.Run(ctx); err != nil {
		return fmt.Errorf("host stopped: %w", err)
	}
	return nil
}
