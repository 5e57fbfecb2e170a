package main

import (
	"fmt"
	"os"
	"time"

	"github.com/franz/launch-history/internal/util"
	"github.com/spf13/cobra"
)

var backupCmd = &cobra.Command{
	Use:   "backup <file>",
	Short: "Export the whole store to a file",
	Long: `Write the entire database as an opaque snapshot. The export is
whole-file; there is no incremental form.`,
	Args: cobra.ExactArgs(1),
	RunE: runBackup,
}

func init() {
	rootCmd.AddCommand(backupCmd)
}

func runBackup(cmd *cobra.Command, args []string) error {
	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	logger := newEventLogger()
	defer logger.Close()

	start := time.Now()

	data, err := db.Export()
	if err != nil {
		logger.LogError("backup", err)
		return fmt.Errorf("export failed: %w", err)
	}

	if err := os.WriteFile(args[0], data, 0600); err != nil {
		logger.LogError("backup", err)
		return fmt.Errorf("failed to write snapshot: %w", err)
	}

	duration := time.Since(start)
	logger.LogSnapshot("export", int64(len(data)), duration)
	util.SuccessLog("Exported %d bytes to %s in %v", len(data), args[0], duration.Round(time.Millisecond))

	return nil
}
