// Package internal provides shared utilities for prefixsum
package internal

import (
	"fmt"
	"io"
	"os"
	"strings"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/term"
)

var (
	logMu      sync.Mutex
	logger     = newLogger(os.Stderr, zerolog.InfoLevel)
	historyLog *HistoryLogger
)

func newLogger(w io.Writer, level zerolog.Level) zerolog.Logger {
	console := zerolog.ConsoleWriter{Out: w, TimeFormat: "15:04:05.000", NoColor: !IsTerminal(w)}
	return zerolog.New(console).
		Level(level).
		With().
		Timestamp().
		Logger()
}

// IsTerminal reports whether w is a terminal file descriptor
func IsTerminal(w io.Writer) bool {
	f, ok := w.(*os.File)
	return ok && term.IsTerminal(int(f.Fd()))
}

// ParseLogLevel maps error/notice/info/debug to a zerolog level.
// Unknown or empty levels fall back to info.
func ParseLogLevel(level string) zerolog.Level {
	switch strings.ToLower(level) {
	case "error":
		return zerolog.ErrorLevel
	case "notice":
		return zerolog.WarnLevel
	case "debug":
		return zerolog.DebugLevel
	default:
		return zerolog.InfoLevel
	}
}

// SetLogLevel sets the minimum level for console output
func SetLogLevel(level string) {
	logMu.Lock()
	defer logMu.Unlock()
	logger = logger.Level(ParseLogLevel(level))
}

// SetLogOutput redirects console output, keeping the current level
func SetLogOutput(w io.Writer) {
	logMu.Lock()
	defer logMu.Unlock()
	logger = newLogger(w, logger.GetLevel())
}

// InitHistoryLogger mirrors log messages into stateDir/.history
func InitHistoryLogger(stateDir, source string) {
	h, err := NewHistoryLogger(stateDir, source)
	if err != nil {
		LogError("Failed to open history log: %v", err)
		return
	}
	logMu.Lock()
	historyLog = h
	logMu.Unlock()
}

// CloseHistoryLogger closes the history logger
func CloseHistoryLogger() {
	logMu.Lock()
	defer logMu.Unlock()
	if historyLog != nil {
		historyLog.Close()
		historyLog = nil
	}
}

// History returns the active history logger, nil if none
func History() *HistoryLogger {
	logMu.Lock()
	defer logMu.Unlock()
	return historyLog
}

func current() (zerolog.Logger, *HistoryLogger) {
	logMu.Lock()
	defer logMu.Unlock()
	return logger, historyLog
}

func LogError(format string, v ...any) {
	l, h := current()
	msg := fmt.Sprintf(format, v...)
	l.Error().Msg(msg)
	h.LogError(msg, nil)
}

func LogNotice(format string, v ...any) {
	l, h := current()
	msg := fmt.Sprintf(format, v...)
	l.Warn().Msg(msg)
	h.LogInfo("%s", msg)
}

func LogInfo(format string, v ...any) {
	l, h := current()
	msg := fmt.Sprintf(format, v...)
	l.Info().Msg(msg)
	h.LogInfo("%s", msg)
}

func LogDebug(format string, v ...any) {
	l, h := current()
	msg := fmt.Sprintf(format, v...)
	l.Debug().Msg(msg)
	h.LogDebug("%s", msg)
}
