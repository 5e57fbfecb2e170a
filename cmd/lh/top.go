package main

import (
	"fmt"

	"github.com/franz/launch-history/internal/rank"
	"github.com/franz/launch-history/internal/record"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

var topCmd = &cobra.Command{
	Use:   "top",
	Short: "Show the most relevant records",
	Long: `Rank the launch history and print the best records, one per line.

The --mode flag selects the strategy: recency (default), frequency,
frecency or adaptive. Unrecognized modes fall back to recency. With
--sort the limited result set is re-ordered by display name instead of
rank; the set of records stays the same.`,
	RunE: runTop,
}

func init() {
	topCmd.Flags().Int("limit", 10, "maximum number of records")
	topCmd.Flags().String("mode", "recency", "ranking strategy")
	topCmd.Flags().Bool("sort", false, "sort results alphabetically by display name")

	viper.BindPFlag("limit", topCmd.Flags().Lookup("limit"))
	viper.BindPFlag("mode", topCmd.Flags().Lookup("mode"))
	viper.BindPFlag("sort", topCmd.Flags().Lookup("sort"))

	rootCmd.AddCommand(topCmd)
}

// targetNameResolver derives a display name from the record identifier
// itself. The launcher process resolves real names against its installed
// apps; the CLI has no such catalog, so the target segment stands in.
type targetNameResolver struct{}

func (targetNameResolver) ResolveDisplayName(rec record.ID) (string, bool) {
	if rec.Name == "" {
		return "", false
	}
	return rec.Name, true
}

func runTop(cmd *cobra.Command, args []string) error {
	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	limit := viper.GetInt("limit")
	if limit <= 0 {
		limit = 10
	}
	mode := rank.ParseMode(viper.GetString("mode"))

	engine := rank.New(&rank.Config{Store: db})

	records, err := engine.History(limit, mode, viper.GetBool("sort"), targetNameResolver{})
	if err != nil {
		return fmt.Errorf("ranking failed: %w", err)
	}

	for _, entry := range records {
		fmt.Printf("%6d  %s\n", entry.Value, entry.Record.String())
	}

	return nil
}
