package logger

import (
	"sync"

	"github.com/amirhossein-jamali/credit-ledger/internal/domain/port/core"
)

// Entry is one captured log call
type Entry struct {
	Level   core.LogLevel
	Message string
	Fields  map[string]any
}

// RecordingLogger keeps entries in memory so tests can assert on what was logged
type RecordingLogger struct {
	mu      *sync.Mutex
	level   core.LogLevel
	base    map[string]any
	entries *[]Entry
}

// NewRecordingLogger creates a logger that records at debug level and above
func NewRecordingLogger() *RecordingLogger {
	return &RecordingLogger{mu: &sync.Mutex{}, entries: &[]Entry{}}
}

func (l *RecordingLogger) SetLevel(level core.LogLevel) { l.level = level }
func (l *RecordingLogger) GetLevel() core.LogLevel      { return l.level }

func (l *RecordingLogger) Debug(msg string, fields map[string]any) {
	l.add(core.LogLevelDebug, msg, fields)
}

func (l *RecordingLogger) Info(msg string, fields map[string]any) {
	l.add(core.LogLevelInfo, msg, fields)
}

func (l *RecordingLogger) Warn(msg string, fields map[string]any) {
	l.add(core.LogLevelWarn, msg, fields)
}

func (l *RecordingLogger) Error(msg string, fields map[string]any) {
	l.add(core.LogLevelError, msg, fields)
}

// With returns a child that shares the entry buffer
func (l *RecordingLogger) With(fields map[string]any) core.Logger {
	merged := make(map[string]any, len(l.base)+len(fields))
	for k, v := range l.base {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}
	return &RecordingLogger{mu: l.mu, level: l.level, base: merged, entries: l.entries}
}

func (l *RecordingLogger) Flush() error { return nil }

func (l *RecordingLogger) add(level core.LogLevel, msg string, fields map[string]any) {
	if level < l.level {
		return
	}
	merged := make(map[string]any, len(l.base)+len(fields))
	for k, v := range l.base {
		merged[k] = v
	}
	for k, v := range fields {
		merged[k] = v
	}

	l.mu.Lock()
	*l.entries = append(*l.entries, Entry{Level: level, Message: msg, Fields: merged})
	l.mu.Unlock()
}

// Entries returns a copy of everything recorded
func (l *RecordingLogger) Entries() []Entry {
	l.mu.Lock()
	defer l.mu.Unlock()
	return append([]Entry(nil), (*l.entries)...)
}

// Has reports whether a message was logged at level
func (l *RecordingLogger) Has(level core.LogLevel, msg string) bool {
	for _, e := range l.Entries() {
		if e.Level == level && e.Message == msg {
			return true
		}
	}
	return false
}
