package entities

import "time"

// Log entry types recorded by the webhook pipeline.
const (
	LogVerification = "verification"
	LogReceived     = "received"
	LogMessage      = "message"
	LogSent         = "sent"
	LogError        = "error"
	LogSkip         = "skip"
)

// LogEntry is one operator-visible pipeline event.
type LogEntry struct {
	Timestamp time.Time   `json:"timestamp"`
	Type      string      `json:"type"`
	Data      interface{} `json:"data"`
}
