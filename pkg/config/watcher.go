package config

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	tideerrors "github.com/go-tide/tide/pkg/errors"
)

// debounceDelay coalesces the burst of filesystem events editors produce
// for a single save into one reload.
const debounceDelay = 100 * time.Millisecond

// Watcher reloads tide.yaml when it changes on disk and hands the resolved
// result to subscribers. The preview server uses it for --watch.
type Watcher struct {
	dir     string
	watcher *fsnotify.Watcher
	ctx     context.Context
	cancel  context.CancelFunc

	mu       sync.RWMutex
	current  *Resolved
	onChange []func(*Resolved)
}

// NewWatcher loads the configuration in dir and starts watching it. Close
// releases the filesystem watch.
func NewWatcher(dir string) (*Watcher, error) {
	cfg, err := LoadOptional(dir)
	if err != nil {
		return nil, err
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	// Watch the directory, not the file: editors replace files on save and
	// a direct file watch would die with the old inode.
	if err := fsw.Add(dir); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", dir, err)
	}

	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		dir:     dir,
		watcher: fsw,
		ctx:     ctx,
		cancel:  cancel,
		current: cfg.Resolve(),
	}
	go w.loop()
	return w, nil
}

// Current returns the most recently resolved configuration.
func (w *Watcher) Current() *Resolved {
	w.mu.RLock()
	defer w.mu.RUnlock()
	return w.current
}

// OnChange registers fn to run with each newly resolved configuration.
func (w *Watcher) OnChange(fn func(*Resolved)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onChange = append(w.onChange, fn)
}

// Close stops watching. Pending debounced reloads are abandoned.
func (w *Watcher) Close() error {
	w.cancel()
	return w.watcher.Close()
}

func (w *Watcher) loop() {
	var debounce *time.Timer
	for {
		select {
		case <-w.ctx.Done():
			if debounce != nil {
				debounce.Stop()
			}
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Base(event.Name) != File {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			if debounce != nil {
				debounce.Stop()
			}
			debounce = time.AfterFunc(debounceDelay, w.reload)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			tideerrors.Report(tideerrors.Config("config.Watcher", err))
		}
	}
}

func (w *Watcher) reload() {
	if w.ctx.Err() != nil {
		return
	}
	cfg, err := LoadOptional(w.dir)
	if err != nil {
		// Keep serving the last good configuration.
		if terr, ok := err.(*tideerrors.TideError); ok {
			tideerrors.Report(terr)
		} else {
			tideerrors.Report(tideerrors.Config("config.Watcher", err))
		}
		return
	}
	resolved := cfg.Resolve()

	w.mu.Lock()
	w.current = resolved
	callbacks := append(([]func(*Resolved))(nil), w.onChange...)
	w.mu.Unlock()

	for _, fn := range callbacks {
		fn(resolved)
	}
}
