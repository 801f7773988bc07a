package cli

import (
	"encoding/json"
	"errors"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/keyscout-cli/internal/core/domain"
)

var (
	extractJSON bool
	extractKeys bool
)

var extractCmd = &cobra.Command{
	Use:   "extract",
	Short: "Extract translation data from the captured page",
	Long: `Reads the captured page-state snapshot, classifies its route, and
extracts the translation dictionary as flat key/value records.
When the route-preferred location has no data the alternate location is
tried once before giving up.`,
	Args: cobra.NoArgs,
	RunE: runExtract,
}

func init() {
	extractCmd.Flags().BoolVar(&extractJSON, "json", false, "output the batch as JSON")
	extractCmd.Flags().BoolVar(&extractKeys, "keys", false, "list every extracted key")
	rootCmd.AddCommand(extractCmd)
}

func runExtract(cmd *cobra.Command, _ []string) error {
	if extractionService == nil {
		return errors.New("extraction service not configured")
	}

	batch, err := extractionService.Extract(cmd.Context())
	if err != nil {
		if errors.Is(err, domain.ErrNoTranslationData) {
			return errors.New("no translation data found on the captured page")
		}
		return fmt.Errorf("extraction failed: %w", err)
	}

	if extractJSON {
		return outputBatchJSON(cmd, batch)
	}

	cmd.Printf("Extracted %d records\n", len(batch.Records))
	cmd.Printf("  Source:   %s\n", batch.SourceLabel)
	cmd.Printf("  Strategy: %s\n", batch.Strategy)
	if batch.Language != "" {
		cmd.Printf("  Language: %s\n", batch.Language)
	}

	if extractKeys {
		cmd.Println()
		for _, r := range batch.Records {
			cmd.Printf("  %s\n", r.Key())
		}
	}
	return nil
}

// batchJSON is the wire shape of an extraction batch.
type batchJSON struct {
	ID       string       `json:"id"`
	Source   string       `json:"dataSource"`
	Strategy string       `json:"strategy"`
	Language string       `json:"language,omitempty"`
	Count    int          `json:"count"`
	Records  []recordJSON `json:"data"`
}

// recordJSON is the wire shape of one translation record.
type recordJSON struct {
	Key string `json:"key"`
	Val string `json:"val"`
}

func encodeBatch(batch domain.ExtractionBatch) batchJSON {
	records := make([]recordJSON, 0, len(batch.Records))
	for _, r := range batch.Records {
		records = append(records, recordJSON{Key: r.Key(), Val: r.Value()})
	}
	return batchJSON{
		ID:       batch.ID,
		Source:   batch.SourceLabel,
		Strategy: batch.Strategy.String(),
		Language: batch.Language,
		Count:    len(batch.Records),
		Records:  records,
	}
}

func outputBatchJSON(cmd *cobra.Command, batch domain.ExtractionBatch) error {
	data, err := json.MarshalIndent(encodeBatch(batch), "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal batch: %w", err)
	}
	cmd.Println(string(data))
	return nil
}
