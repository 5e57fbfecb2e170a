package main

import (
	"fmt"
	"sort"
	"strconv"

	"github.com/franz/launch-history/internal/util"
	"github.com/spf13/cobra"
)

var badgeCmd = &cobra.Command{
	Use:   "badge",
	Short: "Manage badge counts",
}

var badgeSetCmd = &cobra.Command{
	Use:   "set <package> <count>",
	Short: "Set a package's badge count",
	Long: `Set the unread-notification badge count for a package. A count of zero
or less removes the badge entirely.`,
	Args: cobra.ExactArgs(2),
	RunE: runBadgeSet,
}

var badgeLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List badge counts",
	RunE:  runBadgeLs,
}

func init() {
	badgeCmd.AddCommand(badgeSetCmd)
	badgeCmd.AddCommand(badgeLsCmd)
	rootCmd.AddCommand(badgeCmd)
}

func runBadgeSet(cmd *cobra.Command, args []string) error {
	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	logger := newEventLogger()
	defer logger.Close()

	count, err := strconv.Atoi(args[1])
	if err != nil {
		return fmt.Errorf("invalid badge count %q: %w", args[1], err)
	}

	if err := db.SetBadgeCount(args[0], count); err != nil {
		return fmt.Errorf("failed to set badge count: %w", err)
	}

	logger.LogBadge(args[0], count)
	if count > 0 {
		util.SuccessLog("Badge for %s set to %d", args[0], count)
	} else {
		util.SuccessLog("Badge for %s cleared", args[0])
	}

	return nil
}

func runBadgeLs(cmd *cobra.Command, args []string) error {
	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	badges, err := db.LoadBadges()
	if err != nil {
		return fmt.Errorf("failed to load badges: %w", err)
	}

	packages := make([]string, 0, len(badges))
	for pkg := range badges {
		packages = append(packages, pkg)
	}
	sort.Strings(packages)

	for _, pkg := range packages {
		fmt.Printf("%6d  %s\n", badges[pkg], pkg)
	}

	return nil
}
