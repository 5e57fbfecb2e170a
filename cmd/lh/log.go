package main

import (
	"fmt"

	"github.com/franz/launch-history/internal/record"
	"github.com/franz/launch-history/internal/util"
	"github.com/spf13/cobra"
)

var logCmd = &cobra.Command{
	Use:   "log <record> [query]",
	Short: "Record a launch event",
	Long: `Record that an item was launched, optionally for a given partial query.

The record is a scheme-prefixed identifier such as app://org.example.mail
or shortcut://compose. Every call appends a new row; launches are never
deduplicated.`,
	Args: cobra.RangeArgs(1, 2),
	RunE: runLog,
}

func init() {
	rootCmd.AddCommand(logCmd)
}

func runLog(cmd *cobra.Command, args []string) error {
	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	logger := newEventLogger()
	defer logger.Close()

	rec := record.Parse(args[0])
	query := ""
	if len(args) > 1 {
		query = args[1]
	}

	if err := db.InsertHistory(query, rec); err != nil {
		logger.LogError("log", err)
		return fmt.Errorf("failed to record launch: %w", err)
	}

	logger.LogLaunch(rec.String(), query)
	util.DebugLog("Recorded launch of %s (%s)", rec.String(), rec.Kind)

	return nil
}
