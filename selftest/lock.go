package selftest

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strconv"
	"strings"
)

// WatchLockFile is the file a watcher locks inside the state directory.
const WatchLockFile = "watch.lock"

// ErrLocked is returned by TryLock when another watcher owns the state directory.
var ErrLocked = errors.New("another watcher is already running on this state directory")

// WatchLock is the exclusive claim one watcher holds on a state directory.
type WatchLock struct {
	f *os.File
}

// TryLock claims stateDir without blocking. If another watcher holds it the
// error wraps ErrLocked and names the owner's pid when it can be read.
func TryLock(stateDir string) (*WatchLock, error) {
	f, err := os.OpenFile(filepath.Join(stateDir, WatchLockFile), os.O_CREATE|os.O_RDWR, 0644)
	if err != nil {
		return nil, fmt.Errorf("open watch lock: %w", err)
	}
	if err := lockFile(f); err != nil {
		f.Close()
		if pid, ok := LockOwner(stateDir); ok {
			return nil, fmt.Errorf("%w: %s (pid %d)", ErrLocked, stateDir, pid)
		}
		return nil, fmt.Errorf("%w: %s", ErrLocked, stateDir)
	}

	if err := f.Truncate(0); err == nil {
		fmt.Fprintf(f, "%d\n", os.Getpid())
		f.Sync()
	}
	return &WatchLock{f: f}, nil
}

// Release gives up the claim. Safe on a nil lock and on repeated calls.
func (l *WatchLock) Release() {
	if l == nil || l.f == nil {
		return
	}
	unlockFile(l.f)
	l.f.Close()
	l.f = nil
}

// LockOwner returns the pid recorded in the watch lock of stateDir.
func LockOwner(stateDir string) (int, bool) {
	data, err := os.ReadFile(filepath.Join(stateDir, WatchLockFile))
	if err != nil {
		return 0, false
	}
	pid, err := strconv.Atoi(strings.TrimSpace(string(data)))
	return pid, err == nil && pid > 0
}
