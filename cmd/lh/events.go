package main

import (
	"github.com/franz/launch-history/internal/report"
	"github.com/franz/launch-history/internal/util"
	"github.com/spf13/viper"
)

// newEventLogger opens the JSONL audit log when --events points at a
// directory. Falls back to a null logger on failure; auditing is
// best-effort and never blocks the actual operation.
func newEventLogger() *report.EventLogger {
	outputDir := viper.GetString("events")
	if outputDir == "" {
		return report.NullLogger()
	}

	level := report.LevelInfo
	if viper.GetBool("quiet") {
		level = report.LevelWarning
	} else if viper.GetBool("verbose") {
		level = report.LevelDebug
	}

	logger, err := report.NewEventLogger(outputDir, level)
	if err != nil {
		util.WarnLog("Failed to create event logger: %v", err)
		return report.NullLogger()
	}

	if logger.Path() != "" {
		util.DebugLog("Event log: %s", logger.Path())
	}
	return logger
}
