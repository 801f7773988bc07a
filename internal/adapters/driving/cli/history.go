package cli

import (
	"errors"

	"github.com/spf13/cobra"
)

var historyLimit int

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Lookup history commands",
	Long:  `Commands for inspecting recorded key lookups.`,
}

var historyRecentCmd = &cobra.Command{
	Use:   "recent",
	Short: "Show the most recent lookups",
	Args:  cobra.NoArgs,
	RunE:  runHistoryRecent,
}

var historyTopCmd = &cobra.Command{
	Use:   "top",
	Short: "Show the most frequently selected keys",
	Args:  cobra.NoArgs,
	RunE:  runHistoryTop,
}

func init() {
	historyCmd.PersistentFlags().IntVarP(&historyLimit, "limit", "n", 10, "maximum number of entries")
	historyCmd.AddCommand(historyRecentCmd)
	historyCmd.AddCommand(historyTopCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryRecent(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	lookups, err := historyService.Recent(cmd.Context(), historyLimit)
	if err != nil {
		return err
	}
	if len(lookups) == 0 {
		cmd.Println("No lookups recorded yet.")
		return nil
	}

	for _, l := range lookups {
		key := l.Key
		if key == "" {
			key = "(no selection)"
		}
		cmd.Printf("  %s  %-30q -> %s\n", l.CreatedAt.Local().Format("2006-01-02 15:04"), l.Query, key)
	}
	return nil
}

func runHistoryTop(cmd *cobra.Command, _ []string) error {
	if historyService == nil {
		return errors.New("history service not configured")
	}

	counts, err := historyService.TopKeys(cmd.Context(), historyLimit)
	if err != nil {
		return err
	}
	if len(counts) == 0 {
		cmd.Println("No lookups recorded yet.")
		return nil
	}

	for _, kc := range counts {
		cmd.Printf("  %4d  %s\n", kc.Count, kc.Key)
	}
	return nil
}
