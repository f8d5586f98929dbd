// Package watch invalidates dataset cache entries when backing JSON files
// change on disk, so long-running processes pick up edits without a full
// cache clear.
package watch

import (
	"context"
	"errors"
	"log/slog"
	"os"
	"path/filepath"
	"strings"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/AaronRai123/REASON/internal/bootstrap/logging"
	"github.com/AaronRai123/REASON/internal/errs"
)

// Invalidator is the slice of the dataset store the watcher needs.
type Invalidator interface {
	Invalidate(dataType, name string)
}

type Watcher struct {
	root    string
	store   Invalidator
	watcher *fsnotify.Watcher

	closeOnce sync.Once
	done      chan struct{}
}

// NewWatcher watches the dataset root and every category subdirectory.
// Category directories created later are picked up automatically.
func NewWatcher(ctx context.Context, root string, store Invalidator) (*Watcher, error) {
	if ctx == nil {
		return nil, errors.New("context is required")
	}
	if store == nil {
		return nil, errors.New("invalidator is required")
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, errs.Wrap(err, "create fsnotify watcher")
	}

	w := &Watcher{
		root:    root,
		store:   store,
		watcher: fsw,
		done:    make(chan struct{}),
	}

	if err := fsw.Add(root); err != nil {
		fsw.Close()
		return nil, errs.Wrapf(err, "watch %q", root)
	}

	entries, err := os.ReadDir(root)
	if err != nil {
		fsw.Close()
		return nil, errs.Wrapf(err, "read %q", root)
	}
	for _, entry := range entries {
		if !entry.IsDir() {
			continue
		}
		if err := fsw.Add(filepath.Join(root, entry.Name())); err != nil {
			fsw.Close()
			return nil, errs.Wrapf(err, "watch %q", entry.Name())
		}
	}

	logCtx := logging.WithAttrs(ctx, slog.String("component", "watch"))
	logging.Info(logCtx, "data directory watcher started", slog.String("root", root))

	go w.loop(logCtx)

	return w, nil
}

func (w *Watcher) loop(ctx context.Context) {
	defer close(w.done)

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handle(ctx, event)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			logging.Warn(ctx, "watcher error", slog.Any("err", errs.Loggable(err)))
		}
	}
}

func (w *Watcher) handle(ctx context.Context, event fsnotify.Event) {
	// New category directory: start watching it.
	if event.Op.Has(fsnotify.Create) {
		if info, err := os.Stat(event.Name); err == nil && info.IsDir() {
			if err := w.watcher.Add(event.Name); err != nil {
				logging.Warn(ctx, "cannot watch new directory",
					slog.String("dir", event.Name), slog.Any("err", errs.Loggable(err)))
			}
			return
		}
	}

	if !event.Op.Has(fsnotify.Write) && !event.Op.Has(fsnotify.Create) &&
		!event.Op.Has(fsnotify.Remove) && !event.Op.Has(fsnotify.Rename) {
		return
	}

	dataType, name, ok := w.split(event.Name)
	if !ok {
		return
	}

	logging.Debug(ctx, "invalidating changed dataset",
		slog.String("data_type", dataType), slog.String("name", name))
	w.store.Invalidate(dataType, name)
}

// split maps <root>/<dataType>/<name>.json to its cache coordinates.
func (w *Watcher) split(path string) (dataType, name string, ok bool) {
	rel, err := filepath.Rel(w.root, path)
	if err != nil {
		return "", "", false
	}

	parts := strings.Split(filepath.ToSlash(rel), "/")
	if len(parts) != 2 {
		return "", "", false
	}

	name = strings.TrimSuffix(parts[1], ".json")
	if name == parts[1] {
		return "", "", false
	}
	return parts[0], name, true
}

// Close stops the watcher. Safe to call multiple times.
func (w *Watcher) Close() {
	w.closeOnce.Do(func() {
		w.watcher.Close()
		<-w.done
	})
}
