// File: slate/watch.go
package slate

import (
	"context"
	"os"
	"sync"
	"time"
)

// Timing constants for file watching.
const (
	// MinPollInterval is the hard floor for file stat polling.
	MinPollInterval = 100 * time.Millisecond

	// DefaultPollInterval is the standard file monitoring frequency.
	DefaultPollInterval = time.Second

	// DefaultDebounce is the file change coalescence period.
	DefaultDebounce = 500 * time.Millisecond
)

// WatchOptions configures file watching behavior.
type WatchOptions struct {
	// PollInterval for file stat checks (minimum 100ms)
	PollInterval time.Duration

	// Debounce duration to coalesce rapid changes
	Debounce time.Duration
}

// DefaultWatchOptions returns sensible defaults for file watching.
func DefaultWatchOptions() WatchOptions {
	return WatchOptions{
		PollInterval: DefaultPollInterval,
		Debounce:     DefaultDebounce,
	}
}

// Watch polls the locator's backing file and reloads it when its
// modification time or size changes. Changed paths are delivered on
// the returned channel (buffered; slow receivers miss notifications
// rather than blocking the watcher). The stop function terminates the
// watcher and closes the channel; it is safe to call once.
func (l *FileLocator) Watch(opts WatchOptions) (<-chan string, func()) {
	if opts.PollInterval < MinPollInterval {
		opts.PollInterval = MinPollInterval
	}
	if opts.Debounce < 0 {
		opts.Debounce = 0
	}

	ctx, cancel := context.WithCancel(context.Background())
	ch := make(chan string, 16)

	w := &fileWatcher{
		loc:  l,
		opts: opts,
		ch:   ch,
	}
	if info, err := os.Stat(l.path); err == nil {
		w.lastModTime = info.ModTime()
		w.lastSize = info.Size()
	}

	var done sync.WaitGroup
	done.Add(1)
	go func() {
		defer done.Done()
		w.loop(ctx)
	}()

	stop := func() {
		cancel()
		done.Wait()
		close(ch)
	}

	return ch, stop
}

// fileWatcher tracks the observed file state between polls. All state
// is owned by the loop goroutine; notifications are only ever sent
// from there, so closing the channel after the loop exits is safe.
type fileWatcher struct {
	loc         *FileLocator
	opts        WatchOptions
	ch          chan string
	lastModTime time.Time
	lastSize    int64
	changedAt   time.Time
	pending     bool
}

func (w *fileWatcher) loop(ctx context.Context) {
	ticker := time.NewTicker(w.opts.PollInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-ticker.C:
			w.check()
		}
	}
}

// check stats the file, records changes, and performs the reload once
// the debounce window has settled.
func (w *fileWatcher) check() {
	info, err := os.Stat(w.loc.path)
	if err == nil {
		if !info.ModTime().Equal(w.lastModTime) || info.Size() != w.lastSize {
			w.lastModTime = info.ModTime()
			w.lastSize = info.Size()
			w.changedAt = time.Now()
			w.pending = true
		}
	}

	if !w.pending || time.Since(w.changedAt) < w.opts.Debounce {
		return
	}
	w.pending = false

	changed, err := w.loc.Reload()
	if err != nil {
		w.notify("reload_error")
		return
	}
	for _, path := range changed {
		w.notify(path)
	}
}

func (w *fileWatcher) notify(path string) {
	select {
	case w.ch <- path:
	default:
		// Channel full; drop rather than block the watcher.
	}
}
