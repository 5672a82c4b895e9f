package state

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"

	"github.com/opd-ai/go-lander/pkg/logging"
)

// Watcher keeps the latest good scene loaded from a file and reloads it
// whenever the file changes. A reload that fails keeps the previous scene.
type Watcher struct {
	path    string
	logger  *logging.Logger
	watcher *fsnotify.Watcher

	mu      sync.RWMutex
	scene   Scene
	version uint64
	lastErr error
}

// NewWatcher loads path and starts watching its directory, so editors that
// replace the file on save are noticed too.
func NewWatcher(path string, logger *logging.Logger) (*Watcher, error) {
	if logger == nil {
		logger = logging.NewNopLogger()
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve scene path: %w", err)
	}
	scene, err := LoadScene(abs)
	if err != nil {
		return nil, err
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create file watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch scene directory: %w", err)
	}

	return &Watcher{
		path:    abs,
		logger:  logger,
		watcher: fw,
		scene:   scene,
		version: 1,
	}, nil
}

// Current returns the latest scene and a version that grows on every
// successful reload.
func (w *Watcher) Current() (Scene, uint64) {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.scene, w.version
}

// Err returns the error of the most recent failed reload, cleared by the
// next successful one.
func (w *Watcher) Err() error {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.lastErr
}

// Run processes file events until ctx is done or the watcher is closed.
func (w *Watcher) Run(ctx context.Context) {
	const changed = fsnotify.Write | fsnotify.Create | fsnotify.Rename

	for {
		select {
		case <-ctx.Done():
			return
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path || ev.Op&changed == 0 {
				continue
			}
			w.Reload(ctx)
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn(ctx, "scene watcher error", "path", w.path, "error", err.Error())
		}
	}
}

// Reload reads the file now.
func (w *Watcher) Reload(ctx context.Context) error {
	scene, err := LoadScene(w.path)

	w.mu.Lock()
	defer w.mu.Unlock()
	if err != nil {
		w.lastErr = err
		w.logger.Warn(ctx, "scene reload failed, keeping previous scene", "path", w.path, "error", err.Error())
		return err
	}
	w.scene = scene
	w.version++
	w.lastErr = nil
	w.logger.Info(ctx, "scene reloaded", "path", w.path, "objects", scene.Len(), "version", w.version)
	return nil
}

// Close stops watching.
func (w *Watcher) Close() error {
	return w.watcher.Close()
}
