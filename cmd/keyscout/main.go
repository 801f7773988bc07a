// Command keyscout is the KeyScout CLI: it finds the i18n key behind text
// seen on a web page, working from a captured page-state snapshot.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	clipboardadapter "github.com/custodia-labs/keyscout-cli/internal/adapters/driven/clipboard"
	configfile "github.com/custodia-labs/keyscout-cli/internal/adapters/driven/config/file"
	"github.com/custodia-labs/keyscout-cli/internal/adapters/driven/fuzzy"
	snapshotfile "github.com/custodia-labs/keyscout-cli/internal/adapters/driven/snapshot/file"
	"github.com/custodia-labs/keyscout-cli/internal/adapters/driven/storage/sqlite"
	"github.com/custodia-labs/keyscout-cli/internal/adapters/driving/cli"
	"github.com/custodia-labs/keyscout-cli/internal/core/domain"
	"github.com/custodia-labs/keyscout-cli/internal/core/ports/driven"
	"github.com/custodia-labs/keyscout-cli/internal/core/services"
	"github.com/custodia-labs/keyscout-cli/internal/logger"
)

// version is set at build time via -ldflags.
var version = "dev"

func main() {
	if err := run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run() error {
	cfg, err := configfile.NewConfigStore("")
	if err != nil {
		return fmt.Errorf("loading config: %w", err)
	}

	snapshotPath := cfg.GetString("snapshot.path")
	if snapshotPath == "" {
		home, err := os.UserHomeDir()
		if err != nil {
			return fmt.Errorf("getting home directory: %w", err)
		}
		snapshotPath = filepath.Join(home, ".keyscout", "snapshot.json")
	}

	classifier := domain.NewRouteClassifier(cfg.GetString("target.domain"))
	locator := services.NewLocator(cfg.GetString("language.fallback"))
	snapshots := snapshotfile.NewSource(snapshotPath)

	extraction := services.NewExtraction(classifier, locator, services.NewFlattener(), snapshots)
	search := services.NewMatchEngine(fuzzy.NewScorer())
	resolver := services.NewResolver()

	var store driven.HistoryStore
	if !cfg.GetBool("history.disabled") {
		store, err = sqlite.NewStore("")
		if err != nil {
			// History is a convenience; a broken store must not block lookups.
			logger.Warn("History store unavailable: %v", err)
			store = nil
		} else {
			defer store.Close()
		}
	}

	cli.SetVersion(version)
	cli.SetServices(cli.Services{
		Extraction: extraction,
		Search:     search,
		Resolver:   resolver,
		History:    services.NewHistory(store),
		Clipboard:  clipboardadapter.NewWriter(),
	})

	return cli.Execute()
}
