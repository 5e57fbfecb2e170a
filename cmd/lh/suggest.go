package main

import (
	"fmt"

	"github.com/spf13/cobra"
)

var suggestCmd = &cobra.Command{
	Use:   "suggest <prefix>",
	Short: "Show records previously selected for a query prefix",
	Long: `List up to 10 distinct records that were launched for queries starting
with the given prefix, most-selected first. The match is case-sensitive.`,
	Args: cobra.ExactArgs(1),
	RunE: runSuggest,
}

func init() {
	rootCmd.AddCommand(suggestCmd)
}

func runSuggest(cmd *cobra.Command, args []string) error {
	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	records, err := db.PreviousResultsForQuery(args[0])
	if err != nil {
		return fmt.Errorf("failed to look up previous results: %w", err)
	}

	for _, entry := range records {
		fmt.Printf("%6d  %s\n", entry.Value, entry.Record.String())
	}

	return nil
}
