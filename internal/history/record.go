// Package history keeps a local log of connection attempts.
//
// Only the route key, the display name and the outcome are stored.
// Resolved addresses and passwords never reach the database.
package history

import "time"

const (
	OutcomeSuccess = "success"
	OutcomeError   = "error"
)

// Entry is one persisted connection attempt.
type Entry struct {
	ID         int64     `json:"id"`
	Timestamp  time.Time `json:"timestamp"`
	Command    string    `json:"command"`
	Route      string    `json:"route"`
	ServerName string    `json:"server_name,omitempty"`
	ConnType   string    `json:"conn_type,omitempty"`
	Outcome    string    `json:"outcome"`
	Detail     string    `json:"detail,omitempty"`
	DurationMs int64     `json:"duration_ms"`
}

// NewEntry builds an entry for an attempt that started at start and ended
// now with err.
func NewEntry(command, route, serverName, connType string, start time.Time, err error) *Entry {
	e := &Entry{
		Timestamp:  start.UTC(),
		Command:    command,
		Route:      route,
		ServerName: serverName,
		ConnType:   connType,
		DurationMs: time.Since(start).Milliseconds(),
		Outcome:    OutcomeSuccess,
	}
	if err != nil {
		e.Outcome = OutcomeError
		e.Detail = err.Error()
	}
	return e
}
