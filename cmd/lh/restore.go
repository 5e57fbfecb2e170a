package main

import (
	"fmt"
	"os"
	"time"

	"github.com/franz/launch-history/internal/util"
	"github.com/spf13/cobra"
)

var restoreCmd = &cobra.Command{
	Use:   "restore <file>",
	Short: "Replace the store with a snapshot",
	Long: `Overwrite the database with a previously exported snapshot. The cached
connection is invalidated, so the next command runs against the restored
content. Make sure nothing else is using the database file.`,
	Args: cobra.ExactArgs(1),
	RunE: runRestore,
}

func init() {
	rootCmd.AddCommand(restoreCmd)
}

func runRestore(cmd *cobra.Command, args []string) error {
	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	logger := newEventLogger()
	defer logger.Close()

	data, err := os.ReadFile(args[0])
	if err != nil {
		return fmt.Errorf("failed to read snapshot: %w", err)
	}

	start := time.Now()

	if err := db.Import(data); err != nil {
		logger.LogError("restore", err)
		return fmt.Errorf("import failed: %w", err)
	}

	duration := time.Since(start)
	logger.LogSnapshot("import", int64(len(data)), duration)

	length, err := db.HistoryLength()
	if err != nil {
		return fmt.Errorf("restored store is not readable: %w", err)
	}

	util.SuccessLog("Restored %d bytes in %v (%d launch events)", len(data), duration.Round(time.Millisecond), length)

	return nil
}
