package main

import (
	"github.com/franz/launch-history/internal/store"
	"github.com/franz/launch-history/internal/util"
	"github.com/spf13/cobra"
)

var doctorCmd = &cobra.Command{
	Use:   "doctor",
	Short: "Check database health",
	RunE:  runDoctor,
}

func init() {
	rootCmd.AddCommand(doctorCmd)
}

func runDoctor(cmd *cobra.Command, args []string) error {
	util.InfoLog("SQLite version: %s", store.SQLiteVersion())

	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	if err := db.CheckIntegrity(); err != nil {
		util.ErrorLog("Integrity check failed: %v", err)
		return err
	}
	util.SuccessLog("Integrity check passed")

	length, err := db.HistoryLength()
	if err != nil {
		return err
	}
	util.InfoLog("Launch events: %d", length)

	return nil
}
