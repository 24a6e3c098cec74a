package selftest_test

import (
	"bytes"
	"strings"
	"testing"

	"github.com/YoungY620/prefixsum/selftest"
	"github.com/stretchr/testify/assert"
)

func TestPrintBanner(t *testing.T) {
	testCases := []struct {
		name  string
		width int
	}{
		{"full", 80},
		{"compact", 50},
		{"minimal", 30},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			selftest.PrintBanner(&buf, selftest.BannerOptions{
				Version:   "1.0.0",
				Source:    "/test/cases",
				CaseCount: 9,
				Width:     tc.width,
			})

			out := buf.String()
			assert.Contains(t, out, "1.0.0")
			assert.Contains(t, out, "9 cases")
			assert.NotContains(t, out, "\033[", "no colors when not a terminal")
		})
	}
}

func TestPrintBanner_FullBoxAligned(t *testing.T) {
	var buf bytes.Buffer
	selftest.PrintBanner(&buf, selftest.BannerOptions{
		Version:   "dev",
		Source:    "/very/long/path/that/might/need/truncation/to/fit/in/the/banner/display/properly",
		CaseCount: 3,
		Width:     100,
	})

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	for _, line := range lines {
		assert.Equal(t, 60, selftest.RuneWidth(line), "line %q", line)
	}
	assert.Contains(t, buf.String(), "...")
}

func TestTruncatePath(t *testing.T) {
	assert.Equal(t, "/short", selftest.TruncatePath("/short", 20))
	assert.Equal(t, ".../c/d", selftest.TruncatePath("/a/b/c/d", 7))
	assert.Equal(t, "...", selftest.TruncatePath("/abc", 2))
}

func TestRuneWidth(t *testing.T) {
	assert.Equal(t, 5, selftest.RuneWidth("Σ ╭─╮"))
	assert.Equal(t, 4, selftest.RuneWidth("用例"))
	assert.Equal(t, 9, selftest.RuneWidth("abcé 用例"))
}

func TestTruncatePath_WideRunes(t *testing.T) {
	got := selftest.TruncatePath("/cases/用例/edge.yaml", 14)
	assert.Equal(t, ".../edge.yaml", got)
	assert.LessOrEqual(t, selftest.RuneWidth(got), 14)
}
