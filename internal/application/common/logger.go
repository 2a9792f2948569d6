package common

import (
	"fmt"
	"log"
	"sort"
)

// Logger provides structured logging for the editor and adapters.
type Logger interface {
	Log(level, message string, metadata map[string]interface{})
}

// Log levels, lowest to highest.
const (
	LevelDebug = "debug"
	LevelInfo  = "info"
	LevelWarn  = "warn"
	LevelError = "error"
)

var levelRank = map[string]int{
	LevelDebug: 0,
	LevelInfo:  1,
	LevelWarn:  2,
	LevelError: 3,
}

// stdLogger writes through the standard log package, dropping entries
// below its minimum level.
type stdLogger struct {
	min int
}

// NewStdLogger creates a logger filtering below the given level.
// Unknown levels fall back to info.
func NewStdLogger(level string) Logger {
	min, ok := levelRank[level]
	if !ok {
		min = levelRank[LevelInfo]
	}
	return &stdLogger{min: min}
}

func (l *stdLogger) Log(level, message string, metadata map[string]interface{}) {
	rank, ok := levelRank[level]
	if !ok {
		rank = levelRank[LevelInfo]
	}
	if rank < l.min {
		return
	}
	if len(metadata) == 0 {
		log.Printf("[%s] %s", level, message)
		return
	}

	keys := make([]string, 0, len(metadata))
	for k := range metadata {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	line := ""
	for _, k := range keys {
		line += fmt.Sprintf(" %s=%v", k, metadata[k])
	}
	log.Printf("[%s] %s%s", level, message, line)
}

// NewNopLogger returns a logger that discards everything.
func NewNopLogger() Logger {
	return &nopLogger{}
}

type nopLogger struct{}

func (l *nopLogger) Log(level, message string, metadata map[string]interface{}) {
}
