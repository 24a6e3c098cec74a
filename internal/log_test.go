package internal_test

import (
	"bytes"
	"os"
	"strings"
	"testing"

	"github.com/YoungY620/prefixsum/internal"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseLogLevel(t *testing.T) {
	testCases := []struct {
		level    string
		expected zerolog.Level
	}{
		{"error", zerolog.ErrorLevel},
		{"ERROR", zerolog.ErrorLevel},
		{"notice", zerolog.WarnLevel},
		{"info", zerolog.InfoLevel},
		{"debug", zerolog.DebugLevel},
		{"invalid", zerolog.InfoLevel},
		{"", zerolog.InfoLevel},
	}

	for _, tc := range testCases {
		t.Run(tc.level, func(t *testing.T) {
			assert.Equal(t, tc.expected, internal.ParseLogLevel(tc.level))
		})
	}
}

func TestLogLevelFiltering(t *testing.T) {
	var buf bytes.Buffer
	internal.SetLogOutput(&buf)
	t.Cleanup(func() {
		internal.SetLogOutput(os.Stderr)
		internal.SetLogLevel("info")
	})

	internal.SetLogLevel("error")
	internal.LogDebug("hidden debug")
	internal.LogInfo("hidden info")
	internal.LogError("shown error %d", 1)

	out := buf.String()
	assert.NotContains(t, out, "hidden")
	assert.Contains(t, out, "shown error 1")

	buf.Reset()
	internal.SetLogLevel("debug")
	internal.LogDebug("visible debug")
	internal.LogNotice("visible notice")
	assert.Contains(t, buf.String(), "visible debug")
	assert.Contains(t, buf.String(), "visible notice")
}

func TestInitHistoryLogger(t *testing.T) {
	stateDir := t.TempDir()
	internal.SetLogOutput(&bytes.Buffer{})
	t.Cleanup(func() { internal.SetLogOutput(os.Stderr) })

	internal.InitHistoryLogger(stateDir, "run")
	require.NotNil(t, internal.History())

	internal.LogInfo("mirrored %s", "line")
	internal.CloseHistoryLogger()
	assert.Nil(t, internal.History())

	entries := readHistory(t, stateDir)
	require.NotEmpty(t, entries)
	found := false
	for _, e := range entries {
		if strings.Contains(e.Message, "mirrored line") {
			found = true
		}
	}
	assert.True(t, found, "log line should be mirrored to history")

	// Double close should not panic
	assert.NotPanics(t, internal.CloseHistoryLogger)
}

func TestInitHistoryLogger_InvalidDir(t *testing.T) {
	internal.SetLogOutput(&bytes.Buffer{})
	t.Cleanup(func() { internal.SetLogOutput(os.Stderr) })

	assert.NotPanics(t, func() {
		internal.InitHistoryLogger("/nonexistent/path/state", "run")
	})
	assert.Nil(t, internal.History())
}
