package selftest_test

import (
	"context"
	"os"
	"path/filepath"
	"sync"
	"testing"
	"time"

	"github.com/YoungY620/prefixsum/selftest"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type changeRecorder struct {
	mu    sync.Mutex
	calls [][]string
}

func (r *changeRecorder) onChange(files []string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.calls = append(r.calls, files)
}

func (r *changeRecorder) snapshot() [][]string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([][]string(nil), r.calls...)
}

func TestNewWatcher(t *testing.T) {
	w, err := selftest.NewWatcher(t.TempDir(), []string{".git"}, 50, 500, func([]string) {})
	require.NoError(t, err)
	assert.NoError(t, w.Close())
}

func TestNewWatcher_MissingDir(t *testing.T) {
	_, err := selftest.NewWatcher(filepath.Join(t.TempDir(), "missing"), nil, 50, 500, nil)
	assert.Error(t, err)
}

func TestWatcher_FlushCoalesces(t *testing.T) {
	rec := &changeRecorder{}
	w, err := selftest.NewWatcher(t.TempDir(), nil, 10000, 20000, rec.onChange)
	require.NoError(t, err)
	defer w.Close()

	w.Trigger("b.yaml")
	w.Trigger(filepath.Join("cases", "a.yaml"))
	w.Trigger("b.yaml")
	w.Flush()

	calls := rec.snapshot()
	require.Len(t, calls, 1)
	assert.Equal(t, []string{"a.yaml", "b.yaml"}, calls[0])

	// nothing pending, no callback
	w.Flush()
	assert.Len(t, rec.snapshot(), 1)
}

func TestWatcher_Debounce(t *testing.T) {
	rec := &changeRecorder{}
	w, err := selftest.NewWatcher(t.TempDir(), nil, 20, 1000, rec.onChange)
	require.NoError(t, err)
	defer w.Close()

	w.Trigger("cases.yaml")

	assert.Eventually(t, func() bool {
		return len(rec.snapshot()) == 1
	}, 2*time.Second, 10*time.Millisecond)
}

func TestWatcher_RunDetectsWrites(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.MkdirAll(filepath.Join(dir, ".git"), 0755))

	rec := &changeRecorder{}
	w, err := selftest.NewWatcher(dir, []string{".git", "*.swp", "draft.*"}, 20, 500, rec.onChange)
	require.NoError(t, err)
	defer w.Close()

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- w.Run(ctx) }()

	require.NoError(t, os.WriteFile(filepath.Join(dir, ".cases.yaml.swp"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "notes.txt"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "draft.yaml"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, ".git", "HEAD.yaml"), []byte("x"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "cases.yaml"), []byte("cases: []"), 0644))

	assert.Eventually(t, func() bool {
		return len(rec.snapshot()) > 0
	}, 3*time.Second, 20*time.Millisecond)

	for _, call := range rec.snapshot() {
		for _, f := range call {
			assert.Equal(t, "cases.yaml", f, "only case files that are not ignored trigger a run")
		}
	}

	cancel()
	select {
	case err := <-done:
		assert.ErrorIs(t, err, context.Canceled)
	case <-time.After(2 * time.Second):
		t.Fatal("Run did not return after cancel")
	}
}
