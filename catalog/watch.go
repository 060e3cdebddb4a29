package catalog

import (
	"errors"
	"fmt"
	"log/slog"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// DefaultDebounce is how long the watcher waits after the last file
// event before reloading. Editors and atomic-save tools emit bursts of
// events per save; the debounce collapses each burst into one reload.
const DefaultDebounce = 250 * time.Millisecond

// Watcher reloads a catalog file when it changes on disk and hands the
// validated result to a callback. A file revision that fails to parse or
// validate is reported and skipped, so the previous catalog stays in
// effect.
type Watcher struct {
	path     string
	debounce time.Duration
	onReload func(*Catalog)
	onError  func(error)

	watcher *fsnotify.Watcher

	mu        sync.Mutex
	timer     *time.Timer
	closeOnce sync.Once
}

// WatchOption configures a Watcher.
type WatchOption func(*Watcher)

// WithDebounce sets the event settle delay before a reload.
func WithDebounce(d time.Duration) WatchOption {
	return func(w *Watcher) {
		if d > 0 {
			w.debounce = d
		}
	}
}

// WithErrorHandler replaces the default log-and-continue handling of
// reload and watch errors.
func WithErrorHandler(fn func(error)) WatchOption {
	return func(w *Watcher) {
		if fn != nil {
			w.onError = fn
		}
	}
}

// Watch validates the catalog file once, then watches it for changes,
// invoking onReload with each valid new revision. The initial load is
// not delivered to the callback; callers already hold it via Load.
//
// The watch is on the file's directory rather than the file itself:
// editors replace files by rename, which silently drops a direct file
// watch.
func Watch(path string, onReload func(*Catalog), opts ...WatchOption) (*Watcher, error) {
	if onReload == nil {
		return nil, errors.New("nil reload callback")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve catalog path: %w", err)
	}
	if _, err := Load(abs); err != nil {
		return nil, err
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create catalog watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch catalog directory: %w", err)
	}

	w := &Watcher{
		path:     abs,
		debounce: DefaultDebounce,
		onReload: onReload,
		onError: func(err error) {
			slog.Warn("catalog watch error", slog.Any("error", err))
		},
		watcher: fw,
	}
	for _, opt := range opts {
		opt(w)
	}

	go w.run()
	return w, nil
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Close stops watching. Pending debounced reloads are canceled.
func (w *Watcher) Close() error {
	var closeErr error
	w.closeOnce.Do(func() {
		w.mu.Lock()
		if w.timer != nil {
			w.timer.Stop()
		}
		w.mu.Unlock()
		closeErr = w.watcher.Close()
	})
	return closeErr
}

func (w *Watcher) run() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != w.path {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.schedule()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			if err != nil {
				w.onError(err)
			}
		}
	}
}

// schedule arms the debounce timer, restarting it if a burst is still
// in flight.
func (w *Watcher) schedule() {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.timer != nil {
		w.timer.Stop()
	}
	w.timer = time.AfterFunc(w.debounce, w.reload)
}

func (w *Watcher) reload() {
	cat, err := Load(w.path)
	if err != nil {
		w.onError(err)
		return
	}
	w.onReload(cat)
}
