// Package report writes an append-only JSONL audit log of store
// mutations. The log doubles as an ingest format: `lh replay` feeds a
// previously written log back into the history table.
package report

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// EventType represents the type of event
type EventType string

const (
	EventLaunch   EventType = "launch"
	EventRemove   EventType = "remove"
	EventClear    EventType = "clear"
	EventShortcut EventType = "shortcut"
	EventTag      EventType = "tag"
	EventBadge    EventType = "badge"
	EventSnapshot EventType = "snapshot"
	EventError    EventType = "error"
)

// EventLevel represents the severity level
type EventLevel string

const (
	LevelDebug   EventLevel = "debug"
	LevelInfo    EventLevel = "info"
	LevelWarning EventLevel = "warning"
	LevelError   EventLevel = "error"
)

// levelPriority maps event levels to numeric priorities for comparison
var levelPriority = map[EventLevel]int{
	LevelDebug:   0,
	LevelInfo:    1,
	LevelWarning: 2,
	LevelError:   3,
}

// Event represents a single audited store mutation
type Event struct {
	Timestamp time.Time  `json:"ts"`
	Level     EventLevel `json:"level"`
	Event     EventType  `json:"event"`
	Record    string     `json:"record,omitempty"`
	Query     string     `json:"query,omitempty"`
	Package   string     `json:"package,omitempty"`
	Tag       string     `json:"tag,omitempty"`
	Count     int        `json:"count,omitempty"`
	Action    string     `json:"action,omitempty"`
	Bytes     int64      `json:"bytes,omitempty"`
	Duration  int64      `json:"duration_ms,omitempty"`
	Error     string     `json:"error,omitempty"`
}

// EventLogger writes events to a JSONL file
type EventLogger struct {
	file     *os.File
	encoder  *json.Encoder
	mu       sync.Mutex
	path     string
	minLevel EventLevel
}

// NewEventLogger creates a new event logger with a minimum log level.
// minLevel determines which events are written (e.g., LevelInfo skips
// LevelDebug).
func NewEventLogger(outputDir string, minLevel EventLevel) (*EventLogger, error) {
	if err := os.MkdirAll(outputDir, 0755); err != nil {
		return nil, fmt.Errorf("failed to create output directory: %w", err)
	}

	timestamp := time.Now().Format("20060102-150405")
	filename := fmt.Sprintf("events-%s.jsonl", timestamp)
	path := filepath.Join(outputDir, filename)

	file, err := os.Create(path)
	if err != nil {
		return nil, fmt.Errorf("failed to create event log: %w", err)
	}

	return &EventLogger{
		file:     file,
		encoder:  json.NewEncoder(file),
		path:     path,
		minLevel: minLevel,
	}, nil
}

// NullLogger returns a logger that silently drops every event
func NullLogger() *EventLogger {
	return &EventLogger{}
}

// Path returns the log file location, or "" for a null logger
func (l *EventLogger) Path() string {
	if l == nil {
		return ""
	}
	return l.path
}

// Log writes an event to the JSONL file
func (l *EventLogger) Log(event *Event) error {
	if l == nil || l.file == nil {
		return nil // Silently ignore if logger not initialized
	}

	if levelPriority[event.Level] < levelPriority[l.minLevel] {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	if event.Timestamp.IsZero() {
		event.Timestamp = time.Now()
	}

	if err := l.encoder.Encode(event); err != nil {
		return fmt.Errorf("failed to encode event: %w", err)
	}

	return nil
}

// LogLaunch records a history insert
func (l *EventLogger) LogLaunch(record, query string) {
	l.Log(&Event{
		Level:  LevelInfo,
		Event:  EventLaunch,
		Record: record,
		Query:  query,
	})
}

// LogRemove records a history removal
func (l *EventLogger) LogRemove(record string) {
	l.Log(&Event{
		Level:  LevelInfo,
		Event:  EventRemove,
		Record: record,
	})
}

// LogClear records a bulk history clear
func (l *EventLogger) LogClear(count int) {
	l.Log(&Event{
		Level: LevelInfo,
		Event: EventClear,
		Count: count,
	})
}

// LogShortcut records a shortcut mutation (add, remove, prune, clear)
func (l *EventLogger) LogShortcut(action, name, packageName string) {
	l.Log(&Event{
		Level:   LevelInfo,
		Event:   EventShortcut,
		Action:  action,
		Record:  name,
		Package: packageName,
	})
}

// LogBadge records a badge count update
func (l *EventLogger) LogBadge(packageName string, count int) {
	l.Log(&Event{
		Level:   LevelDebug,
		Event:   EventBadge,
		Package: packageName,
		Count:   count,
	})
}

// LogSnapshot records an export or import
func (l *EventLogger) LogSnapshot(action string, bytes int64, duration time.Duration) {
	l.Log(&Event{
		Level:    LevelInfo,
		Event:    EventSnapshot,
		Action:   action,
		Bytes:    bytes,
		Duration: duration.Milliseconds(),
	})
}

// LogError records a failed operation
func (l *EventLogger) LogError(op string, err error) {
	l.Log(&Event{
		Level:  LevelError,
		Event:  EventError,
		Action: op,
		Error:  err.Error(),
	})
}

// Close flushes and closes the log file
func (l *EventLogger) Close() error {
	if l == nil || l.file == nil {
		return nil
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	err := l.file.Close()
	l.file = nil
	return err
}
