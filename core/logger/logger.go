// Package logger is a standardized event logging framework for the
// interpreter. Events are newline-delimited JSON objects, one per
// interpreter action, grouped by session ID.
package logger

import (
	"encoding/json"
	"fmt"
	"io"
	"time"

	"github.com/google/uuid"
)

// Event is one interpreter activity record.
type Event struct {
	// TimestampMicros is the number of microseconds since the unix
	// epoch when the event was recorded.
	TimestampMicros int64  `json:"timestamp_micros"`
	SessionID       string `json:"session_id"`

	// Kind is one of "run", "compile_error" or "builtin".
	Kind string `json:"kind"`

	// Line is the raw input line that produced the event.
	Line string `json:"line,omitempty"`

	// Statuses holds one rendered status report per stage of a run.
	Statuses []string `json:"statuses,omitempty"`

	// Error holds the compile diagnostic for a compile_error event.
	Error string `json:"error,omitempty"`

	// Builtin names the builtin executed for a builtin event.
	Builtin string `json:"builtin,omitempty"`
}

// Recorder is a callback that stores events in an external datastore.
type Recorder func(e *Event) error

// Logger captures interpreter activity.
type Logger struct {
	Record Recorder
}

// NewJSONLinesRecorder creates a Logger that exports events in
// newline-delimited JSON object format.
func NewJSONLinesRecorder(w io.Writer) *Logger {
	return &Logger{
		Record: func(e *Event) error {
			entry, err := json.Marshal(e)
			if err != nil {
				return err
			}
			_, err = fmt.Fprintln(w, string(entry))
			return err
		},
	}
}

// Discard returns a Logger that drops every event.
func Discard() *Logger {
	return &Logger{Record: func(*Event) error { return nil }}
}

func (l *Logger) record(sessionID string, e *Event) error {
	e.TimestampMicros = time.Now().UnixMicro()
	e.SessionID = sessionID
	return l.Record(e)
}

// NewSession creates a logger with an attached session ID.
func (l *Logger) NewSession() *SessionLogger {
	return &SessionLogger{logger: l, sessionID: uuid.NewString()}
}

// SessionLogger tags every event with one session's ID.
type SessionLogger struct {
	logger    *Logger
	sessionID string
}

// SessionID returns the session's unique ID.
func (s *SessionLogger) SessionID() string {
	return s.sessionID
}

// Run records one executed pipeline with its per-stage statuses.
func (s *SessionLogger) Run(line string, statuses []string) error {
	return s.logger.record(s.sessionID, &Event{
		Kind:     "run",
		Line:     line,
		Statuses: statuses,
	})
}

// CompileError records a line rejected before launch.
func (s *SessionLogger) CompileError(line string, compileErr error) error {
	return s.logger.record(s.sessionID, &Event{
		Kind:  "compile_error",
		Line:  line,
		Error: compileErr.Error(),
	})
}

// Builtin records execution of a shell builtin.
func (s *SessionLogger) Builtin(line, name string) error {
	return s.logger.record(s.sessionID, &Event{
		Kind:    "builtin",
		Line:    line,
		Builtin: name,
	})
}

// ReadJSONLinesLog parses a newline-delimited JSON event log.
func ReadJSONLinesLog(r io.Reader, handler func(e *Event)) error {
	decoder := json.NewDecoder(r)
	for decoder.More() {
		var e Event
		if err := decoder.Decode(&e); err != nil {
			return err
		}
		handler(&e)
	}
	return nil
}
