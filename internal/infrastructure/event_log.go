package infrastructure

import (
	"sync"
	"time"

	"pagemind/internal/entities"
)

const logCapacity = 100

// EventLog is a bounded, most-recent-first buffer of pipeline activity.
// It lives for the process lifetime only; the dashboard reads it and
// old entries fall off the end.
type EventLog struct {
	mu      sync.Mutex
	entries []entities.LogEntry
	limit   int
}

func NewEventLog() *EventLog {
	return &EventLog{limit: logCapacity}
}

// Add records one event, evicting the oldest entry when full.
func (l *EventLog) Add(entryType string, data interface{}) {
	l.mu.Lock()
	defer l.mu.Unlock()

	entry := entities.LogEntry{
		Timestamp: time.Now(),
		Type:      entryType,
		Data:      data,
	}
	l.entries = append([]entities.LogEntry{entry}, l.entries...)
	if len(l.entries) > l.limit {
		l.entries = l.entries[:l.limit]
	}
}

// Entries returns a snapshot, newest first.
func (l *EventLog) Entries() []entities.LogEntry {
	l.mu.Lock()
	defer l.mu.Unlock()

	out := make([]entities.LogEntry, len(l.entries))
	copy(out, l.entries)
	return out
}

// Len returns the current number of entries.
func (l *EventLog) Len() int {
	l.mu.Lock()
	defer l.mu.Unlock()
	return len(l.entries)
}

// Clear drops all entries.
func (l *EventLog) Clear() {
	l.mu.Lock()
	defer l.mu.Unlock()
	l.entries = nil
}
