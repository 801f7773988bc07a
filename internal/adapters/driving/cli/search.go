package cli

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"

	"github.com/spf13/cobra"

	"github.com/custodia-labs/keyscout-cli/internal/core/domain"
)

var (
	searchLimit        int
	searchMinRelevance int
	searchFuzzy        bool
	searchJSON         bool
	searchCopy         bool
)

var searchCmd = &cobra.Command{
	Use:   "search [query...]",
	Short: "Search extracted translation data for a key",
	Long: `Extracts translation data from the captured page and ranks the keys
against the query. Matching is tiered: exact matches first, then prefix
matches, then substring matches. Use --fuzzy to also include close
non-substring matches.`,
	Args: cobra.MinimumNArgs(1),
	RunE: runSearch,
}

func init() {
	searchCmd.Flags().IntVarP(&searchLimit, "limit", "n", domain.DefaultSearchLimit, "maximum number of results")
	searchCmd.Flags().IntVar(&searchMinRelevance, "min-relevance", 0, "drop results below this relevance percentage")
	searchCmd.Flags().BoolVar(&searchFuzzy, "fuzzy", false, "include approximate matches")
	searchCmd.Flags().BoolVar(&searchJSON, "json", false, "output results as JSON")
	searchCmd.Flags().BoolVar(&searchCopy, "copy", false, "copy the best key to the clipboard")
	rootCmd.AddCommand(searchCmd)
}

func runSearch(cmd *cobra.Command, args []string) error {
	query := strings.Join(args, " ")

	if extractionService == nil || searchService == nil {
		return errors.New("search service not configured")
	}

	batch, err := extractionService.Extract(cmd.Context())
	if err != nil {
		if errors.Is(err, domain.ErrNoTranslationData) {
			return errors.New("no translation data found on the captured page")
		}
		return fmt.Errorf("extraction failed: %w", err)
	}

	opts := domain.SearchOptions{
		Limit:               searchLimit,
		MinRelevancePercent: searchMinRelevance,
		Fuzzy:               searchFuzzy,
	}

	results, err := searchService.Search(batch.Records, query, opts)
	if err != nil {
		return fmt.Errorf("search failed: %w", err)
	}

	recordSearchLookup(cmd, query, results)

	if searchCopy && len(results) > 0 && clipboardWriter != nil {
		key := results[0].Record().Key()
		if err := clipboardWriter.WriteText(key); err != nil {
			cmd.PrintErrf("clipboard copy failed: %v\n", err)
		} else {
			cmd.Printf("Copied %q to clipboard.\n", key)
		}
	}

	if searchJSON {
		return outputSearchJSON(cmd, results)
	}
	return outputSearchTable(cmd, results)
}

// recordSearchLookup stores the lookup in history, best effort.
func recordSearchLookup(cmd *cobra.Command, query string, results []domain.SearchResult) {
	if historyService == nil {
		return
	}

	key, confidence := "", ""
	if len(results) > 0 {
		key = results[0].Record().Key()
		confidence = string(results[0].Confidence())
	}
	if err := historyService.RecordLookup(cmd.Context(), query, key, confidence); err != nil {
		cmd.PrintErrf("history not recorded: %v\n", err)
	}
}

// resultJSON is the wire shape of one search result.
type resultJSON struct {
	Item      recordJSON `json:"item"`
	Score     float64    `json:"score"`
	Relevance int        `json:"relevance"`
}

func outputSearchJSON(cmd *cobra.Command, results []domain.SearchResult) error {
	out := make([]resultJSON, 0, len(results))
	for _, r := range results {
		out = append(out, resultJSON{
			Item:      recordJSON{Key: r.Record().Key(), Val: r.Record().Value()},
			Score:     r.Score(),
			Relevance: r.RelevancePercent(),
		})
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return fmt.Errorf("failed to marshal results: %w", err)
	}
	cmd.Println(string(data))
	return nil
}

func outputSearchTable(cmd *cobra.Command, results []domain.SearchResult) error {
	if len(results) == 0 {
		cmd.Println("No results found.")
		return nil
	}

	cmd.Println("Results:")
	cmd.Println()
	for i, r := range results {
		cmd.Printf("  [%d] %s (%d%%, %s)\n", i+1, r.Record().Key(), r.RelevancePercent(), r.Confidence())
		cmd.Printf("      %s\n", r.Record().Value())
		cmd.Println()
	}
	return nil
}
