package script

import (
	"context"
	"fmt"
	"log/slog"
	"path/filepath"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fsnotify/fsnotify"
	"github.com/spf13/afero"
)

// WatchFunc is called with the script's content each time it changes.
type WatchFunc func(ctx context.Context, content []byte) error

// Watcher re-runs a script file when its content changes.
type Watcher struct {
	fs       afero.Fs
	path     string
	debounce time.Duration
	log      *slog.Logger

	lastSum  uint64
	haveLast bool
}

// NewWatcher returns a Watcher for path. The file is read through fs; change
// notifications come from the operating system, so fs should be backed by it.
func NewWatcher(fs afero.Fs, path string, debounce time.Duration, log *slog.Logger) *Watcher {
	if log == nil {
		log = slog.New(slog.DiscardHandler)
	}
	return &Watcher{fs: fs, path: path, debounce: debounce, log: log}
}

// Changed reads the file and reports whether its content differs from the
// last call that returned true. The content is returned either way.
func (w *Watcher) Changed() ([]byte, bool, error) {
	b, err := afero.ReadFile(w.fs, w.path)
	if err != nil {
		return nil, false, err
	}
	sum := xxhash.Sum64(b)
	if w.haveLast && sum == w.lastSum {
		return b, false, nil
	}
	w.lastSum, w.haveLast = sum, true
	return b, true, nil
}

// Watch calls fn once with the current content, then again after every
// change, until ctx is done. Errors from fn are logged, not returned.
func (w *Watcher) Watch(ctx context.Context, fn WatchFunc) error {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to initialize watcher: %w", err)
	}
	defer fw.Close()

	// Editors often replace the file, so watch its directory.
	dir := filepath.Dir(w.path)
	if err := fw.Add(dir); err != nil {
		return fmt.Errorf("watch %s: %w", dir, err)
	}
	target := filepath.Clean(w.path)

	w.reload(ctx, fn)

	var (
		timer *time.Timer
		fire  <-chan time.Time
	)
	for {
		select {
		case <-ctx.Done():
			if timer != nil {
				timer.Stop()
			}
			return nil

		case event, ok := <-fw.Events:
			if !ok {
				return nil
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			// Debounce to run only once for a burst of writes.
			if timer != nil {
				timer.Stop()
			}
			timer = time.NewTimer(w.debounce)
			fire = timer.C

		case <-fire:
			fire = nil
			w.reload(ctx, fn)

		case err, ok := <-fw.Errors:
			if !ok {
				return nil
			}
			w.log.Warn("watch error", "err", err)
		}
	}
}

func (w *Watcher) reload(ctx context.Context, fn WatchFunc) {
	b, changed, err := w.Changed()
	if err != nil {
		w.log.Warn("read script", "path", w.path, "err", err)
		return
	}
	if !changed {
		w.log.Debug("script unchanged", "path", w.path)
		return
	}
	w.log.Info("running script", "path", w.path, "bytes", len(b))
	if err := fn(ctx, b); err != nil {
		w.log.Warn("script failed", "path", w.path, "err", err)
	}
}
