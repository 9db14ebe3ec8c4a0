// Package watch re-runs a callback whenever a puzzle input file changes.
package watch

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"aoc2023/internal/logging"
)

// Handler is invoked with the watched path once a burst of changes settles.
type Handler func(ctx context.Context, path string)

// Stats tracks watcher activity.
type Stats struct {
	Events        int
	Triggers      int
	Errors        int
	LastEventTime time.Time
	LastEventType string
}

// InputWatcher watches the directory holding one file, since editors often
// replace files by rename and a watch on the file itself would be lost.
type InputWatcher struct {
	mu          sync.Mutex
	watcher     *fsnotify.Watcher
	path        string
	handler     Handler
	debounceDur time.Duration
	pending     time.Time // zero when nothing is pending
	stopCh      chan struct{}
	doneCh      chan struct{}
	running     bool
	stats       Stats
}

// New creates a watcher for path. debounce <= 0 falls back to 300ms.
func New(path string, debounce time.Duration, handler Handler) (*InputWatcher, error) {
	if handler == nil {
		return nil, fmt.Errorf("watch: handler required")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch: resolve %s: %w", path, err)
	}
	if debounce <= 0 {
		debounce = 300 * time.Millisecond
	}
	w, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &InputWatcher{
		watcher:     w,
		path:        abs,
		handler:     handler,
		debounceDur: debounce,
		stopCh:      make(chan struct{}),
		doneCh:      make(chan struct{}),
	}, nil
}

// Start begins watching. It is non-blocking; events are handled on one
// goroutine until Stop is called or ctx is cancelled.
func (iw *InputWatcher) Start(ctx context.Context) error {
	iw.mu.Lock()
	if iw.running {
		iw.mu.Unlock()
		return nil
	}
	iw.running = true
	iw.mu.Unlock()

	dir := filepath.Dir(iw.path)
	if err := iw.watcher.Add(dir); err != nil {
		iw.mu.Lock()
		iw.running = false
		iw.mu.Unlock()
		return fmt.Errorf("watch: add %s: %w", dir, err)
	}
	logging.Watch("watching %s", iw.path)

	go iw.run(ctx)
	return nil
}

// Stop stops the watcher and waits for the event loop to exit. It is safe to
// call more than once and after the context was cancelled.
func (iw *InputWatcher) Stop() {
	iw.mu.Lock()
	wasRunning := iw.running
	iw.running = false
	iw.mu.Unlock()

	if wasRunning {
		close(iw.stopCh)
		<-iw.doneCh
	}
	if err := iw.watcher.Close(); err != nil {
		logging.Get(logging.CategoryWatch).Error("error closing watcher: %v", err)
	}
}

// Stats returns a snapshot of the counters.
func (iw *InputWatcher) Stats() Stats {
	iw.mu.Lock()
	defer iw.mu.Unlock()
	return iw.stats
}

func (iw *InputWatcher) run(ctx context.Context) {
	defer close(iw.doneCh)

	tick := iw.debounceDur / 4
	if tick < 10*time.Millisecond {
		tick = 10 * time.Millisecond
	}
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			logging.WatchDebug("context cancelled")
			return

		case <-iw.stopCh:
			logging.WatchDebug("stop signal received")
			return

		case event, ok := <-iw.watcher.Events:
			if !ok {
				return
			}
			iw.handleEvent(event)

		case err, ok := <-iw.watcher.Errors:
			if !ok {
				return
			}
			logging.Get(logging.CategoryWatch).Error("watcher error: %v", err)
			iw.mu.Lock()
			iw.stats.Errors++
			iw.mu.Unlock()

		case <-ticker.C:
			if iw.settled() {
				iw.handler(ctx, iw.path)
			}
		}
	}
}

func (iw *InputWatcher) handleEvent(event fsnotify.Event) {
	if filepath.Clean(event.Name) != iw.path {
		return
	}

	var eventType string
	switch {
	case event.Op&fsnotify.Create != 0:
		eventType = "create"
	case event.Op&fsnotify.Write != 0:
		eventType = "modify"
	case event.Op&fsnotify.Rename != 0:
		eventType = "rename"
	default:
		return // Removal and chmod leave nothing to solve
	}
	logging.WatchDebug("%s event for %s", eventType, event.Name)

	iw.mu.Lock()
	iw.stats.Events++
	iw.stats.LastEventTime = time.Now()
	iw.stats.LastEventType = eventType
	iw.pending = time.Now()
	iw.mu.Unlock()
}

// settled reports, and clears, a pending change older than the debounce window.
func (iw *InputWatcher) settled() bool {
	iw.mu.Lock()
	defer iw.mu.Unlock()
	if iw.pending.IsZero() || time.Since(iw.pending) < iw.debounceDur {
		return false
	}
	iw.pending = time.Time{}
	iw.stats.Triggers++
	return true
}
