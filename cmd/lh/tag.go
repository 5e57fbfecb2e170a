package main

import (
	"fmt"
	"sort"

	"github.com/franz/launch-history/internal/record"
	"github.com/franz/launch-history/internal/util"
	"github.com/spf13/cobra"
)

var tagCmd = &cobra.Command{
	Use:   "tag",
	Short: "Manage record tags",
}

var tagSetCmd = &cobra.Command{
	Use:   "set <record> <tag>",
	Short: "Tag a record",
	Args:  cobra.ExactArgs(2),
	RunE:  runTagSet,
}

var tagRmCmd = &cobra.Command{
	Use:   "rm <record>",
	Short: "Remove a record's tags",
	Args:  cobra.ExactArgs(1),
	RunE:  runTagRm,
}

var tagLsCmd = &cobra.Command{
	Use:   "ls",
	Short: "List all tagged records",
	RunE:  runTagLs,
}

func init() {
	tagCmd.AddCommand(tagSetCmd)
	tagCmd.AddCommand(tagRmCmd)
	tagCmd.AddCommand(tagLsCmd)
	rootCmd.AddCommand(tagCmd)
}

func runTagSet(cmd *cobra.Command, args []string) error {
	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	rec := record.Parse(args[0])
	if err := db.InsertTagForID(args[1], rec); err != nil {
		return fmt.Errorf("failed to tag record: %w", err)
	}

	util.SuccessLog("Tagged %s as %q", rec.String(), args[1])
	return nil
}

func runTagRm(cmd *cobra.Command, args []string) error {
	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	rec := record.Parse(args[0])
	if err := db.DeleteTagsForID(rec); err != nil {
		return fmt.Errorf("failed to remove tags: %w", err)
	}

	util.SuccessLog("Removed tags for %s", rec.String())
	return nil
}

func runTagLs(cmd *cobra.Command, args []string) error {
	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	tags, err := db.LoadTags()
	if err != nil {
		return fmt.Errorf("failed to load tags: %w", err)
	}

	keys := make([]record.ID, 0, len(tags))
	for rec := range tags {
		keys = append(keys, rec)
	}
	sort.Slice(keys, func(i, j int) bool {
		return keys[i].String() < keys[j].String()
	})

	for _, rec := range keys {
		fmt.Printf("%-48s  %s\n", rec.String(), tags[rec])
	}

	return nil
}
