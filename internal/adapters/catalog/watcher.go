package catalog

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.trai.ch/assetimport/internal/core/domain"
	"go.trai.ch/assetimport/internal/core/ports"
	"go.trai.ch/zerr"
)

// DefaultDebounceWindow is how long the watcher waits for a burst of writes to settle.
const DefaultDebounceWindow = 200 * time.Millisecond

// Invalidator is notified when the catalog file changes.
type Invalidator interface {
	Invalidate()
}

// Watcher invalidates the catalog store whenever the catalog file changes.
//
// The parent directory is watched rather than the file itself so that editors
// replacing the file through a rename are noticed.
type Watcher struct {
	path   string
	target Invalidator
	logger ports.Logger
	window time.Duration
}

// NewWatcher creates a watcher for the catalog file at path.
func NewWatcher(path string, target Invalidator, logger ports.Logger) *Watcher {
	return &Watcher{
		path:   filepath.Clean(path),
		target: target,
		logger: logger,
		window: DefaultDebounceWindow,
	}
}

// WithWindow overrides the debounce window.
func (w *Watcher) WithWindow(d time.Duration) *Watcher {
	w.window = d
	return w
}

// Run watches until ctx is done. It returns an error only when watching
// cannot start.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return errors.Join(domain.ErrWatcherFailed, err)
	}
	defer fsw.Close() //nolint:errcheck // Best effort close in defer

	dir := filepath.Dir(w.path)
	if err := fsw.Add(dir); err != nil {
		return zerr.With(errors.Join(domain.ErrWatcherFailed, err), "dir", dir)
	}

	debouncer := NewDebouncer(w.window, func() {
		w.logger.Info(fmt.Sprintf("catalog %s changed, reloading", w.path))
		w.target.Invalidate()
	})
	defer debouncer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if w.relevant(event) {
				debouncer.Trigger()
			}
		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warn(fmt.Sprintf("catalog watcher: %v", err))
		}
	}
}

func (w *Watcher) relevant(event fsnotify.Event) bool {
	if filepath.Clean(event.Name) != w.path {
		return false
	}
	return event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
		event.Has(fsnotify.Rename) || event.Has(fsnotify.Remove)
}
