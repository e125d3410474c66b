package model

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrUnknownLevel is returned by ParseLevel for unrecognised severities.
var ErrUnknownLevel = errors.New("unknown log level")

// Level is the severity of a dashboard log entry.
type Level string

const (
	LevelInfo    Level = "info"
	LevelSuccess Level = "success"
	LevelWarning Level = "warning"
	LevelError   Level = "error"
)

// Levels lists every level in display order.
var Levels = []Level{LevelInfo, LevelSuccess, LevelWarning, LevelError}

// Valid reports whether l is one of the known levels.
func (l Level) Valid() bool {
	switch l {
	case LevelInfo, LevelSuccess, LevelWarning, LevelError:
		return true
	}
	return false
}

// Tag is the upper-case form used in exports and badges.
func (l Level) Tag() string {
	return strings.ToUpper(string(l))
}

// ParseLevel accepts the canonical names plus a few common aliases.
func ParseLevel(s string) (Level, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "info", "information":
		return LevelInfo, nil
	case "success", "ok":
		return LevelSuccess, nil
	case "warning", "warn":
		return LevelWarning, nil
	case "error", "err":
		return LevelError, nil
	}
	return "", fmt.Errorf("%w: %q", ErrUnknownLevel, s)
}

// LogEntry is a single line of the robot's activity log.
type LogEntry struct {
	ID        uint64    `json:"id"`
	Timestamp string    `json:"timestamp"` // human-readable capture time
	Time      time.Time `json:"time"`
	Level     Level     `json:"level"`
	Message   string    `json:"message"`
}

// Line renders the entry in export format: "[timestamp] LEVEL: message".
func (e LogEntry) Line() string {
	return "[" + e.Timestamp + "] " + e.Level.Tag() + ": " + e.Message
}
