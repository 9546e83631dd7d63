package mocks

import (
	"fmt"
	"sync"

	"github.com/user/storeshots/pkg/ports"
)

// LogEntry is a message captured by Logger. Msg is the untranslated key.
type LogEntry struct {
	Level     ports.LogLevel
	Component string
	Msg       string
	Args      []interface{}
}

// Text returns the entry formatted without translation.
func (e LogEntry) Text() string {
	return fmt.Sprintf(e.Msg, e.Args...)
}

// Logger is a mock ports.Logger that records every message.
// Loggers returned by WithComponent share the parent's entries.
type Logger struct {
	component string
	store     *logStore
}

type logStore struct {
	mu      sync.Mutex
	entries []LogEntry
}

// NewLogger creates a new recording Logger.
func NewLogger() *Logger {
	return &Logger{store: &logStore{}}
}

func (m *Logger) Debug(msg string, args ...interface{}) { m.add(ports.LevelDebug, msg, args) }

func (m *Logger) Info(msg string, args ...interface{}) { m.add(ports.LevelInfo, msg, args) }

func (m *Logger) Warn(msg string, args ...interface{}) { m.add(ports.LevelWarn, msg, args) }

func (m *Logger) Error(msg string, args ...interface{}) { m.add(ports.LevelError, msg, args) }

func (m *Logger) WithComponent(component string) ports.Logger {
	return &Logger{component: component, store: m.store}
}

// Entries returns every recorded message in order.
func (m *Logger) Entries() []LogEntry {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	return append([]LogEntry(nil), m.store.entries...)
}

// EntriesAt returns the recorded messages at level.
func (m *Logger) EntriesAt(level ports.LogLevel) []LogEntry {
	var out []LogEntry
	for _, e := range m.Entries() {
		if e.Level == level {
			out = append(out, e)
		}
	}
	return out
}

func (m *Logger) add(level ports.LogLevel, msg string, args []interface{}) {
	m.store.mu.Lock()
	defer m.store.mu.Unlock()
	m.store.entries = append(m.store.entries, LogEntry{
		Level:     level,
		Component: m.component,
		Msg:       msg,
		Args:      args,
	})
}

var _ ports.Logger = (*Logger)(nil)
