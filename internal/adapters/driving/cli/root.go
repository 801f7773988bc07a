// Package cli implements the KeyScout command-line interface.
// Commands are thin adapters over the driving ports; services are injected
// by the composition root via SetServices.
package cli

import (
	"github.com/spf13/cobra"

	"github.com/custodia-labs/keyscout-cli/internal/core/ports/driven"
	"github.com/custodia-labs/keyscout-cli/internal/core/ports/driving"
	"github.com/custodia-labs/keyscout-cli/internal/logger"
)

var (
	version = "dev"
	verbose bool
)

// Service singletons used by the commands.
var (
	extractionService driving.ExtractionService
	searchService     driving.KeySearchService
	resolverService   driving.TextResolver
	historyService    driving.HistoryService
	clipboardWriter   driven.Clipboard
)

// Services bundles the implementations the commands depend on.
type Services struct {
	Extraction driving.ExtractionService
	Search     driving.KeySearchService
	Resolver   driving.TextResolver
	History    driving.HistoryService
	Clipboard  driven.Clipboard
}

// SetServices injects the service implementations used by the commands.
func SetServices(s Services) {
	extractionService = s.Extraction
	searchService = s.Search
	resolverService = s.Resolver
	historyService = s.History
	clipboardWriter = s.Clipboard
}

// SetVersion sets the version string reported by the version command.
func SetVersion(v string) {
	if v != "" {
		version = v
	}
}

var rootCmd = &cobra.Command{
	Use:   "keyscout",
	Short: "Find the translation key behind on-page text",
	Long: `KeyScout finds the i18n key behind text seen on a web page.

It reads a captured page-state snapshot, extracts the translation
dictionary for the current route, and ranks the keys against the text
you search for.`,
	SilenceUsage: true,
	PersistentPreRun: func(_ *cobra.Command, _ []string) {
		logger.SetVerbose(verbose)
	},
}

// Execute runs the root command.
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable verbose logging")
}
