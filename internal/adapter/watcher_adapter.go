package adapter

import (
	"context"
	"io/fs"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	m "pushup.dev/pkg/pushup/internal/model"
)

var watchSkippedDirs = map[string]struct{}{
	"build":        {},
	"Pods":         {},
	"DerivedData":  {},
	".gradle":      {},
	".cxx":         {},
	"node_modules": {},
}

// WatcherAdapter reports file changes under a set of directories.
type WatcherAdapter interface {
	// Watch emits the path of every created or written file under roots until
	// ctx is done. Directories created later are watched too. Both channels
	// are closed when watching stops.
	Watch(ctx context.Context, roots []m.Path) (<-chan m.Path, <-chan error)
}

// FSNotifyWatcherAdapter is the fsnotify backed WatcherAdapter.
type FSNotifyWatcherAdapter struct{}

// NewFSNotifyWatcherAdapter creates a FSNotifyWatcherAdapter.
func NewFSNotifyWatcherAdapter() *FSNotifyWatcherAdapter {
	return &FSNotifyWatcherAdapter{}
}

// Watch starts an fsnotify watcher on roots.
func (a *FSNotifyWatcherAdapter) Watch(ctx context.Context, roots []m.Path) (<-chan m.Path, <-chan error) {
	changes := make(chan m.Path)
	errs := make(chan error, 1)

	w, err := fsnotify.NewWatcher()
	if err != nil {
		errs <- err
		close(changes)
		close(errs)

		return changes, errs
	}

	for _, root := range roots {
		if err := addDirsRecursive(w, string(root)); err != nil {
			_ = w.Close()
			errs <- err
			close(changes)
			close(errs)

			return changes, errs
		}
	}

	slog.Info("Watcher started", "roots", roots)

	go func() {
		defer close(errs)
		defer close(changes)
		defer func() { _ = w.Close() }()

		for {
			select {
			case <-ctx.Done():
				slog.Info("Watcher stopped")
				return

			case ev, ok := <-w.Events:
				if !ok {
					return
				}

				if ev.Op&(fsnotify.Create|fsnotify.Write) == 0 {
					continue
				}

				if ev.Op&fsnotify.Create != 0 {
					if info, statErr := os.Stat(ev.Name); statErr == nil && info.IsDir() {
						if addErr := addDirsRecursive(w, ev.Name); addErr != nil {
							slog.Warn("Watcher could not add new directory", "path", ev.Name, "error", addErr)
						}

						continue
					}
				}

				select {
				case changes <- m.Path(ev.Name):
				case <-ctx.Done():
					return
				}

			case watchErr, ok := <-w.Errors:
				if !ok {
					return
				}

				slog.Error("Watcher error", "error", watchErr)

				select {
				case errs <- watchErr:
				default:
				}
			}
		}
	}()

	return changes, errs
}

// addDirsRecursive adds root and its subdirectories, leaving out build output.
func addDirsRecursive(w *fsnotify.Watcher, root string) error {
	return filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() {
			return nil
		}

		if _, skip := watchSkippedDirs[d.Name()]; skip && path != root {
			return filepath.SkipDir
		}

		return w.Add(path)
	})
}
