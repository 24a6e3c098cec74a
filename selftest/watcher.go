package selftest

import (
	"context"
	"path/filepath"
	"sort"
	"sync"
	"time"

	"github.com/YoungY620/prefixsum/catalog"
	"github.com/YoungY620/prefixsum/internal"
	"github.com/fsnotify/fsnotify"
)

// Watcher re-runs the self-test when case files in a directory change.
//
// Only the files LoadCaseDir would read count: top-level *.yaml and *.yml
// entries that match no ignore pattern. A burst of changes results in one
// onChange call, debounceMs after the last change or maxWaitMs after the
// first, whichever comes first.
type Watcher struct {
	dir      string
	ignore   []string
	debounce time.Duration
	maxWait  time.Duration
	onChange func(changed []string)
	fsw      *fsnotify.Watcher

	mu       sync.Mutex
	changed  map[string]struct{}
	quiet    *time.Timer // fires debounce after the latest change
	deadline *time.Timer // fires maxWait after the first change of a burst
	running  chan struct{}
}

// NewWatcher watches dir. onChange receives the sorted base names of the
// case files changed since the previous call.
func NewWatcher(dir string, ignore []string, debounceMs, maxWaitMs int, onChange func(changed []string)) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, err
	}
	return &Watcher{
		dir:      dir,
		ignore:   ignore,
		debounce: time.Duration(debounceMs) * time.Millisecond,
		maxWait:  time.Duration(maxWaitMs) * time.Millisecond,
		onChange: onChange,
		fsw:      fsw,
		changed:  make(map[string]struct{}),
		running:  make(chan struct{}, 1),
	}, nil
}

// Trigger records name as changed, as if an event had been received.
func (w *Watcher) Trigger(name string) {
	w.record(filepath.Base(name))
}

// relevant reports whether a change to path can alter the loaded cases.
func (w *Watcher) relevant(path string) bool {
	if filepath.Dir(path) != filepath.Clean(w.dir) {
		return false
	}
	base := filepath.Base(path)
	if !catalog.IsCaseFile(base) {
		return false
	}
	for _, p := range w.ignore {
		if matched, _ := filepath.Match(p, base); matched || base == p {
			return false
		}
	}
	return true
}

// Run handles file system events until ctx is done or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) error {
	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case e, ok := <-w.fsw.Events:
			if !ok {
				return nil
			}
			if e.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Remove|fsnotify.Rename) == 0 || !w.relevant(e.Name) {
				continue
			}
			internal.LogDebug("Case file %s: %s", e.Op, e.Name)
			w.record(filepath.Base(e.Name))
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return nil
			}
			if err != nil {
				internal.LogError("Watcher error: %v", err)
			}
		}
	}
}

func (w *Watcher) record(name string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if len(w.changed) == 0 {
		w.deadline = time.AfterFunc(w.maxWait, w.Flush)
	}
	w.changed[name] = struct{}{}

	if w.quiet != nil {
		w.quiet.Stop()
	}
	w.quiet = time.AfterFunc(w.debounce, w.Flush)
}

// takeChanged stops both timers and empties the changed set.
func (w *Watcher) takeChanged() []string {
	w.mu.Lock()
	defer w.mu.Unlock()

	w.stopTimers()
	names := make([]string, 0, len(w.changed))
	for name := range w.changed {
		names = append(names, name)
	}
	w.changed = make(map[string]struct{})
	sort.Strings(names)
	return names
}

func (w *Watcher) stopTimers() {
	if w.quiet != nil {
		w.quiet.Stop()
		w.quiet = nil
	}
	if w.deadline != nil {
		w.deadline.Stop()
		w.deadline = nil
	}
}

// Flush passes the changed case files to onChange. While a previous self-test
// is still running the changes are kept for the next flush.
func (w *Watcher) Flush() {
	select {
	case w.running <- struct{}{}:
	default:
		internal.LogDebug("Self-test still running, keeping changes for the next run")
		w.mu.Lock()
		if w.quiet != nil {
			w.quiet.Stop()
		}
		w.quiet = time.AfterFunc(w.debounce, w.Flush)
		w.mu.Unlock()
		return
	}
	defer func() { <-w.running }()

	if names := w.takeChanged(); len(names) > 0 && w.onChange != nil {
		w.onChange(names)
	}
}

// Close stops pending timers and the underlying fsnotify watcher.
func (w *Watcher) Close() error {
	w.mu.Lock()
	w.stopTimers()
	w.mu.Unlock()
	return w.fsw.Close()
}
