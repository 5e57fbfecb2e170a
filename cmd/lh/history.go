package main

import (
	"fmt"

	"github.com/franz/launch-history/internal/record"
	"github.com/franz/launch-history/internal/util"
	"github.com/spf13/cobra"
)

var historyCmd = &cobra.Command{
	Use:   "history",
	Short: "Manage launch history",
}

var historyRmCmd = &cobra.Command{
	Use:   "rm <record>",
	Short: "Remove all launch events for a record",
	Args:  cobra.ExactArgs(1),
	RunE:  runHistoryRm,
}

var historyClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Delete the entire launch history",
	RunE:  runHistoryClear,
}

func init() {
	historyCmd.AddCommand(historyRmCmd)
	historyCmd.AddCommand(historyClearCmd)
	rootCmd.AddCommand(historyCmd)
}

func runHistoryRm(cmd *cobra.Command, args []string) error {
	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	logger := newEventLogger()
	defer logger.Close()

	rec := record.Parse(args[0])
	if err := db.RemoveFromHistory(rec); err != nil {
		logger.LogError("history rm", err)
		return fmt.Errorf("failed to remove from history: %w", err)
	}

	logger.LogRemove(rec.String())
	util.SuccessLog("Removed %s from history", rec.String())

	return nil
}

func runHistoryClear(cmd *cobra.Command, args []string) error {
	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	logger := newEventLogger()
	defer logger.Close()

	length, err := db.HistoryLength()
	if err != nil {
		return err
	}

	if err := db.ClearHistory(); err != nil {
		logger.LogError("history clear", err)
		return fmt.Errorf("failed to clear history: %w", err)
	}

	logger.LogClear(length)
	util.SuccessLog("Cleared %d launch events", length)

	return nil
}
