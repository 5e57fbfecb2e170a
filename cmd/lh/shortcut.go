package main

import (
	"fmt"
	"os"

	"github.com/franz/launch-history/internal/store"
	"github.com/franz/launch-history/internal/util"
	"github.com/spf13/cobra"
)

var shortcutCmd = &cobra.Command{
	Use:   "shortcut",
	Short: "Manage pinned shortcuts",
}

var shortcutAddCmd = &cobra.Command{
	Use:   "add <name>",
	Short: "Pin a shortcut",
	Long: `Pin a shortcut. Duplicates are rejected: two shortcuts may not share a
(package, intent URI) pair, and when no package is given the intent URI
alone must be unique.`,
	Args: cobra.ExactArgs(1),
	RunE: runShortcutAdd,
}

var shortcutLsCmd = &cobra.Command{
	Use:   "ls [package]",
	Short: "List shortcuts, optionally for one package",
	Args:  cobra.MaximumNArgs(1),
	RunE:  runShortcutLs,
}

var shortcutRmCmd = &cobra.Command{
	Use:   "rm",
	Short: "Remove the shortcut matching --package and --intent",
	RunE:  runShortcutRm,
}

var shortcutPruneCmd = &cobra.Command{
	Use:   "prune <package>",
	Short: "Remove shortcuts by package substring, cascading to history",
	Long: `Remove every shortcut whose package name contains the given substring.
Launch history recorded under the removed shortcuts' names is deleted
as well.`,
	Args: cobra.ExactArgs(1),
	RunE: runShortcutPrune,
}

var shortcutClearCmd = &cobra.Command{
	Use:   "clear",
	Short: "Remove all shortcuts",
	RunE:  runShortcutClear,
}

func init() {
	shortcutAddCmd.Flags().String("package", "", "owning package name (may be empty)")
	shortcutAddCmd.Flags().String("icon", "", "icon resource reference")
	shortcutAddCmd.Flags().String("intent", "", "intent URI the shortcut fires")
	shortcutAddCmd.Flags().String("icon-file", "", "file holding the raw icon bytes")

	shortcutRmCmd.Flags().String("package", "", "owning package name")
	shortcutRmCmd.Flags().String("intent", "", "intent URI")

	shortcutCmd.AddCommand(shortcutAddCmd)
	shortcutCmd.AddCommand(shortcutLsCmd)
	shortcutCmd.AddCommand(shortcutRmCmd)
	shortcutCmd.AddCommand(shortcutPruneCmd)
	shortcutCmd.AddCommand(shortcutClearCmd)
	rootCmd.AddCommand(shortcutCmd)
}

func runShortcutAdd(cmd *cobra.Command, args []string) error {
	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	logger := newEventLogger()
	defer logger.Close()

	packageName, _ := cmd.Flags().GetString("package")
	icon, _ := cmd.Flags().GetString("icon")
	intent, _ := cmd.Flags().GetString("intent")
	iconFile, _ := cmd.Flags().GetString("icon-file")

	var iconBlob []byte
	if iconFile != "" {
		iconBlob, err = os.ReadFile(iconFile)
		if err != nil {
			return fmt.Errorf("failed to read icon file: %w", err)
		}
	}

	shortcut := &store.ShortcutRecord{
		Name:         args[0],
		PackageName:  packageName,
		IconResource: icon,
		IntentURI:    intent,
		IconBlob:     iconBlob,
	}

	inserted, err := db.InsertShortcut(shortcut)
	if err != nil {
		logger.LogError("shortcut add", err)
		return fmt.Errorf("failed to insert shortcut: %w", err)
	}

	if !inserted {
		util.WarnLog("Shortcut already exists, not added")
		return nil
	}

	logger.LogShortcut("add", shortcut.Name, shortcut.PackageName)
	util.SuccessLog("Pinned shortcut %q", shortcut.Name)

	return nil
}

func runShortcutLs(cmd *cobra.Command, args []string) error {
	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	var records []*store.ShortcutRecord
	if len(args) > 0 {
		records, err = db.ShortcutsForPackage(args[0])
	} else {
		records, err = db.Shortcuts()
	}
	if err != nil {
		return fmt.Errorf("failed to list shortcuts: %w", err)
	}

	for _, entry := range records {
		pkg := entry.PackageName
		if pkg == "" {
			pkg = "-"
		}
		fmt.Printf("%-24s  %-32s  %s\n", entry.Name, pkg, entry.IntentURI)
	}

	return nil
}

func runShortcutRm(cmd *cobra.Command, args []string) error {
	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	logger := newEventLogger()
	defer logger.Close()

	packageName, _ := cmd.Flags().GetString("package")
	intent, _ := cmd.Flags().GetString("intent")

	shortcut := &store.ShortcutRecord{PackageName: packageName, IntentURI: intent}
	if err := db.RemoveShortcut(shortcut); err != nil {
		logger.LogError("shortcut rm", err)
		return fmt.Errorf("failed to remove shortcut: %w", err)
	}

	logger.LogShortcut("rm", "", packageName)
	util.SuccessLog("Removed shortcut for %s", packageName)

	return nil
}

func runShortcutPrune(cmd *cobra.Command, args []string) error {
	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	logger := newEventLogger()
	defer logger.Close()

	if err := db.RemoveShortcutsForPackage(args[0]); err != nil {
		logger.LogError("shortcut prune", err)
		return fmt.Errorf("failed to prune shortcuts: %w", err)
	}

	logger.LogShortcut("prune", "", args[0])
	util.SuccessLog("Pruned shortcuts matching %q", args[0])

	return nil
}

func runShortcutClear(cmd *cobra.Command, args []string) error {
	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	logger := newEventLogger()
	defer logger.Close()

	if err := db.RemoveAllShortcuts(); err != nil {
		logger.LogError("shortcut clear", err)
		return fmt.Errorf("failed to clear shortcuts: %w", err)
	}

	logger.LogShortcut("clear", "", "")
	util.SuccessLog("Removed all shortcuts")

	return nil
}
