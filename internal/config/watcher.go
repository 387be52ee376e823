// ABOUTME: Polling-based file watcher used for lexicon hot-reload
// ABOUTME: Compares mtime on an interval; no external watch dependencies

package config

import (
	"os"
	"sync"
	"time"
)

// Watcher polls one file's mtime and fires onChange when it moves.
// Creation and deletion of the file count as changes.
type Watcher struct {
	path     string
	onChange func()

	mu       sync.Mutex
	interval time.Duration
	mtime    time.Time
	exists   bool
	running  bool

	stopCh   chan struct{}
	stopOnce sync.Once
}

// NewWatcher creates a watcher for path. onChange runs on the polling
// goroutine, so it must not block for long.
func NewWatcher(path string, onChange func()) *Watcher {
	return &Watcher{
		path:     path,
		onChange: onChange,
		interval: 2 * time.Second,
		stopCh:   make(chan struct{}),
	}
}

// SetInterval overrides the default 2s polling interval. Call before
// Start.
func (w *Watcher) SetInterval(d time.Duration) {
	w.mu.Lock()
	w.interval = d
	w.mu.Unlock()
}

// Start begins polling. Subsequent calls are no-ops.
func (w *Watcher) Start() {
	w.mu.Lock()
	if w.running {
		w.mu.Unlock()
		return
	}
	w.running = true
	w.mtime, w.exists = stat(w.path)
	interval := w.interval
	w.mu.Unlock()

	go w.loop(interval)
}

// Stop halts polling. Safe to call multiple times.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() { close(w.stopCh) })
}

func (w *Watcher) loop(interval time.Duration) {
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-w.stopCh:
			return
		case <-ticker.C:
			if w.check() {
				w.onChange()
			}
		}
	}
}

// check reports whether the file changed since the last poll and
// records the new state.
func (w *Watcher) check() bool {
	mtime, exists := stat(w.path)

	w.mu.Lock()
	defer w.mu.Unlock()

	changed := exists != w.exists || (exists && !mtime.Equal(w.mtime))
	w.mtime, w.exists = mtime, exists
	return changed
}

func stat(path string) (time.Time, bool) {
	info, err := os.Stat(path)
	if err != nil {
		return time.Time{}, false
	}
	return info.ModTime(), true
}
