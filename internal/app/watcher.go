package app

import (
	"context"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher monitors a single parameter document for changes. The containing
// directory is watched rather than the file itself, since most editors
// replace the file on save.
type Watcher struct {
	path   string
	logger *slog.Logger
	Ready  chan struct{}

	newWatcher func() (*fsnotify.Watcher, error)
}

// NewWatcher creates a Watcher for the given file path.
func NewWatcher(path string, logger *slog.Logger) *Watcher {
	return &Watcher{
		path:       path,
		logger:     logger.With("component", "watcher"),
		Ready:      make(chan struct{}),
		newWatcher: fsnotify.NewWatcher,
	}
}

// Watch starts monitoring the file. It calls the provided callback whenever
// the file is written or recreated. It blocks until the context is cancelled.
func (w *Watcher) Watch(ctx context.Context, callback func()) error {
	watcher, err := w.newWatcher()
	if err != nil {
		return err
	}
	defer watcher.Close()

	dir := filepath.Dir(w.path)
	if err := watcher.Add(dir); err != nil {
		return err
	}

	w.logger.Info("Watching for changes", "path", w.path)
	if w.Ready != nil {
		close(w.Ready)
	}

	target, err := filepath.Abs(w.path)
	if err != nil {
		return err
	}

	var timer *time.Timer
	const debounceDuration = 100 * time.Millisecond

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case err := <-watcher.Errors:
			w.logger.Error("Watcher error", "error", err)
		case event, ok := <-watcher.Events:
			if !ok {
				return nil
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) {
				continue
			}
			name, err := filepath.Abs(event.Name)
			if err != nil || name != target {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(debounceDuration, callback)
		}
	}
}
