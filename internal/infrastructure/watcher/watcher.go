// Package watcher reports external changes to the configuration file being edited.
package watcher

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/bnema/pdm/internal/application/port"
)

// ErrClosed is returned by Next after Close.
var ErrClosed = errors.New("watcher closed")

// DefaultIgnoreWindow is how long IgnoreNext mutes events. An atomic save
// produces several events in quick succession.
const DefaultIgnoreWindow = 500 * time.Millisecond

// Watcher implements port.FileWatcher with fsnotify. It watches the parent
// directory so that files replaced by rename keep being reported.
type Watcher struct {
	fsw          *fsnotify.Watcher
	ignoreWindow time.Duration
	now          func() time.Time

	mu          sync.Mutex
	path        string
	dir         string
	ignoreUntil time.Time
}

// New creates a watcher. Call Watch before Next.
func New() (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create fsnotify watcher: %w", err)
	}
	return &Watcher{
		fsw:          fsw,
		ignoreWindow: DefaultIgnoreWindow,
		now:          time.Now,
	}, nil
}

// Watch replaces the watched file with path.
func (w *Watcher) Watch(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return fmt.Errorf("resolve watch path: %w", err)
	}
	dir := filepath.Dir(abs)

	w.mu.Lock()
	defer w.mu.Unlock()

	if dir != w.dir {
		if w.dir != "" {
			_ = w.fsw.Remove(w.dir)
		}
		if err := w.fsw.Add(dir); err != nil {
			w.dir = ""
			return fmt.Errorf("watch %s: %w", dir, err)
		}
		w.dir = dir
	}
	w.path = abs
	return nil
}

// IgnoreNext mutes notifications for the ignore window, covering our own save.
func (w *Watcher) IgnoreNext() {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.ignoreUntil = w.now().Add(w.ignoreWindow)
}

// Next blocks until the watched file changes, ctx is done or the watcher is closed.
func (w *Watcher) Next(ctx context.Context) (port.FileChange, error) {
	for {
		select {
		case <-ctx.Done():
			return port.FileChange{}, ctx.Err()
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return port.FileChange{}, ErrClosed
			}
			return port.FileChange{}, fmt.Errorf("watch config file: %w", err)
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return port.FileChange{}, ErrClosed
			}
			if change, ok := w.filter(ev); ok {
				return change, nil
			}
		}
	}
}

func (w *Watcher) filter(ev fsnotify.Event) (port.FileChange, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.path == "" || filepath.Clean(ev.Name) != w.path {
		return port.FileChange{}, false
	}
	if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Remove) && !ev.Has(fsnotify.Rename) {
		return port.FileChange{}, false
	}
	if w.now().Before(w.ignoreUntil) {
		return port.FileChange{}, false
	}

	return port.FileChange{
		Path:    w.path,
		Removed: ev.Has(fsnotify.Remove) || ev.Has(fsnotify.Rename),
	}, true
}

// Close stops watching. Pending Next calls return ErrClosed.
func (w *Watcher) Close() error {
	return w.fsw.Close()
}

var _ port.FileWatcher = (*Watcher)(nil)
