package internal_test

import (
	"encoding/json"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/YoungY620/prefixsum/internal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func readHistory(t *testing.T, stateDir string) []internal.HistoryEntry {
	t.Helper()
	data, err := os.ReadFile(filepath.Join(stateDir, internal.HistoryFileName))
	require.NoError(t, err)

	var entries []internal.HistoryEntry
	for _, line := range strings.Split(strings.TrimSpace(string(data)), "\n") {
		var entry internal.HistoryEntry
		require.NoError(t, json.Unmarshal([]byte(line), &entry))
		entries = append(entries, entry)
	}
	return entries
}

func TestNewHistoryLogger(t *testing.T) {
	stateDir := t.TempDir()

	logger, err := internal.NewHistoryLogger(stateDir, "run")
	require.NoError(t, err)
	defer logger.Close()

	_, err = os.Stat(filepath.Join(stateDir, internal.HistoryFileName))
	assert.NoError(t, err, "History file should be created")
}

func TestNewHistoryLogger_InvalidDir(t *testing.T) {
	_, err := internal.NewHistoryLogger("/nonexistent/path/state", "run")
	assert.Error(t, err)
}

func TestHistoryLogger_Log(t *testing.T) {
	stateDir := t.TempDir()

	logger, err := internal.NewHistoryLogger(stateDir, "run")
	require.NoError(t, err)

	logger.LogRun(11, 10, 1, 3*time.Millisecond)
	logger.LogMismatch("subarray #2", "2", "3")
	logger.LogInfo("info %s", "message")
	logger.LogDebug("debug message")
	logger.LogError("error message", os.ErrNotExist)
	require.NoError(t, logger.Close())

	entries := readHistory(t, stateDir)
	require.Len(t, entries, 5)

	assert.Equal(t, int64(1), entries[0].Seq)
	assert.Equal(t, "run", entries[0].Source)
	assert.Equal(t, "run", entries[0].Type)
	assert.Equal(t, 11, entries[0].Total)
	assert.Equal(t, 10, entries[0].Passed)
	assert.Equal(t, 1, entries[0].Failed)
	assert.Equal(t, "3ms", entries[0].Duration)

	assert.Equal(t, "mismatch", entries[1].Type)
	assert.Equal(t, "subarray #2", entries[1].Case)
	assert.Equal(t, "2", entries[1].Expected)
	assert.Equal(t, "3", entries[1].Actual)

	assert.Equal(t, "info message", entries[2].Message)
	assert.Equal(t, "debug", entries[3].Type)
	assert.Equal(t, "error", entries[4].Type)
	assert.Equal(t, "file does not exist", entries[4].Error)
	assert.Equal(t, int64(5), entries[4].Seq)
}

func TestHistoryLogger_Appends(t *testing.T) {
	stateDir := t.TempDir()

	for i := 0; i < 2; i++ {
		logger, err := internal.NewHistoryLogger(stateDir, "watch")
		require.NoError(t, err)
		logger.LogInfo("pass %d", i)
		require.NoError(t, logger.Close())
	}

	entries := readHistory(t, stateDir)
	require.Len(t, entries, 2)
	assert.Equal(t, "pass 0", entries[0].Message)
	assert.Equal(t, "pass 1", entries[1].Message)
	assert.Equal(t, "watch", entries[1].Source)
}

func TestHistoryLogger_NilSafe(t *testing.T) {
	var logger *internal.HistoryLogger

	assert.NotPanics(t, func() {
		logger.Log(internal.HistoryEntry{Type: "test"})
		logger.LogRun(1, 1, 0, time.Second)
		logger.LogMismatch("case", "1", "2")
		logger.LogInfo("test")
		logger.LogDebug("test")
		logger.LogError("test", nil)
		logger.Close()
	})
}

func TestHistoryLogger_DoubleClose(t *testing.T) {
	logger, err := internal.NewHistoryLogger(t.TempDir(), "run")
	require.NoError(t, err)

	require.NoError(t, logger.Close())
	assert.NoError(t, logger.Close())
	assert.NotPanics(t, func() { logger.LogInfo("after close") })
}
