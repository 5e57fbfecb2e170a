package main

import (
	"bufio"
	"encoding/json"
	"fmt"
	"os"
	"time"

	"github.com/franz/launch-history/internal/record"
	"github.com/franz/launch-history/internal/report"
	"github.com/franz/launch-history/internal/util"
	"github.com/schollz/progressbar/v3"
	"github.com/spf13/cobra"
)

var replayCmd = &cobra.Command{
	Use:   "replay <events.jsonl>",
	Short: "Re-ingest launch events from a JSONL event log",
	Long: `Read a JSONL event log (as written with --events) and insert its launch
events back into the history table. Non-launch events are skipped.
Useful for rebuilding a history database from audit logs.`,
	Args: cobra.ExactArgs(1),
	RunE: runReplay,
}

func init() {
	rootCmd.AddCommand(replayCmd)
}

func runReplay(cmd *cobra.Command, args []string) error {
	db, err := openStore()
	if err != nil {
		return err
	}
	defer db.Close()

	file, err := os.Open(args[0])
	if err != nil {
		return fmt.Errorf("failed to open event log: %w", err)
	}
	defer file.Close()

	var bar *progressbar.ProgressBar
	if util.IsTerminal(os.Stderr.Fd()) {
		bar = progressbar.NewOptions(-1,
			progressbar.OptionSetDescription("Replaying"),
			progressbar.OptionSetWidth(40),
			progressbar.OptionShowCount(),
			progressbar.OptionShowIts(),
			progressbar.OptionSetItsString("events"),
			progressbar.OptionThrottle(200*time.Millisecond),
			progressbar.OptionClearOnFinish(),
		)
	}

	inserted := 0
	skipped := 0
	malformed := 0

	scanner := bufio.NewScanner(file)
	scanner.Buffer(make([]byte, 0, 64*1024), 4*1024*1024)

	for scanner.Scan() {
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}

		var event report.Event
		if err := json.Unmarshal(line, &event); err != nil {
			malformed++
			continue
		}

		if event.Event != report.EventLaunch || event.Record == "" {
			skipped++
			continue
		}

		if err := db.InsertHistory(event.Query, record.Parse(event.Record)); err != nil {
			return fmt.Errorf("failed to insert replayed launch: %w", err)
		}
		inserted++

		if bar != nil {
			bar.Add(1)
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read event log: %w", err)
	}

	if bar != nil {
		bar.Finish()
	}

	util.SuccessLog("Replayed %d launch events (%d skipped)", inserted, skipped)
	if malformed > 0 {
		util.WarnLog("Ignored %d malformed lines", malformed)
	}

	return nil
}
