package internal

import (
	"encoding/json"
	"fmt"
	"os"
	"path/filepath"
	"sync"
	"time"
)

// HistoryFileName is the JSON-lines run history inside the state directory
const HistoryFileName = ".history"

// HistoryLogger appends self-test events to <state-dir>/.history
type HistoryLogger struct {
	file   *os.File
	mu     sync.Mutex
	seqNum int64
	source string
}

// HistoryEntry represents a single log entry
type HistoryEntry struct {
	Seq       int64  `json:"seq"`
	Timestamp string `json:"ts"`
	Source    string `json:"src"`            // "run" or "watch"
	Type      string `json:"type"`           // "run", "mismatch", "error", "info", "debug"
	Case      string `json:"case,omitempty"` // for mismatches
	Expected  string `json:"expected,omitempty"`
	Actual    string `json:"actual,omitempty"`
	Total     int    `json:"total,omitempty"`
	Passed    int    `json:"passed,omitempty"`
	Failed    int    `json:"failed,omitempty"`
	Duration  string `json:"duration,omitempty"`
	Error     any    `json:"error,omitempty"`
	Message   string `json:"msg,omitempty"`
}

// NewHistoryLogger creates a new history logger with given source
func NewHistoryLogger(stateDir, source string) (*HistoryLogger, error) {
	historyPath := filepath.Join(stateDir, HistoryFileName)
	f, err := os.OpenFile(historyPath, os.O_CREATE|os.O_APPEND|os.O_WRONLY, 0644)
	if err != nil {
		return nil, fmt.Errorf("failed to open history file: %w", err)
	}
	return &HistoryLogger{file: f, source: source}, nil
}

// Log writes an entry to the history file
func (h *HistoryLogger) Log(entry HistoryEntry) {
	if h == nil {
		return
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.file == nil {
		return
	}

	h.seqNum++
	entry.Seq = h.seqNum
	entry.Timestamp = time.Now().Format(time.RFC3339Nano)
	entry.Source = h.source

	data, err := json.Marshal(entry)
	if err != nil {
		return
	}
	_, _ = h.file.Write(data)
	_, _ = h.file.Write([]byte("\n"))
}

// LogRun records the outcome of one self-test run
func (h *HistoryLogger) LogRun(total, passed, failed int, d time.Duration) {
	h.Log(HistoryEntry{
		Type:     "run",
		Total:    total,
		Passed:   passed,
		Failed:   failed,
		Duration: d.String(),
	})
}

// LogMismatch records a case whose actual output differs from the expected one
func (h *HistoryLogger) LogMismatch(name, expected, actual string) {
	h.Log(HistoryEntry{Type: "mismatch", Case: name, Expected: expected, Actual: actual})
}

// LogError logs an error
func (h *HistoryLogger) LogError(message string, err error) {
	entry := HistoryEntry{Type: "error", Message: message}
	if err != nil {
		entry.Error = err.Error()
	}
	h.Log(entry)
}

// LogInfo logs an informational message
func (h *HistoryLogger) LogInfo(format string, v ...any) {
	msg := format
	if len(v) > 0 {
		msg = fmt.Sprintf(format, v...)
	}
	h.Log(HistoryEntry{Type: "info", Message: msg})
}

// LogDebug logs a debug message
func (h *HistoryLogger) LogDebug(format string, v ...any) {
	msg := format
	if len(v) > 0 {
		msg = fmt.Sprintf(format, v...)
	}
	h.Log(HistoryEntry{Type: "debug", Message: msg})
}

// Close closes the history file
func (h *HistoryLogger) Close() error {
	if h == nil {
		return nil
	}
	h.mu.Lock()
	defer h.mu.Unlock()
	if h.file != nil {
		err := h.file.Close()
		h.file = nil
		return err
	}
	return nil
}
