package main

import (
	"github.com/franz/launch-history/internal/util"
	"github.com/spf13/cobra"
)

var statsCmd = &cobra.Command{
	Use:   "stats",
	Short: "Show store statistics",
	RunE:  runStats,
}

func init() {
	rootCmd.AddCommand(statsCmd)
}

func runStats(cmd *cobra.Command, args []string) error {
	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	length, err := db.HistoryLength()
	if err != nil {
		return err
	}

	shortcuts, err := db.Shortcuts()
	if err != nil {
		return err
	}

	tags, err := db.LoadTags()
	if err != nil {
		return err
	}

	badges, err := db.LoadBadges()
	if err != nil {
		return err
	}

	util.InfoLog("Database: %s", db.Path())
	util.InfoLog("  Launch events: %d", length)
	util.InfoLog("  Shortcuts:     %d", len(shortcuts))
	util.InfoLog("  Tagged items:  %d", len(tags))
	util.InfoLog("  Badges:        %d", len(badges))

	return nil
}
