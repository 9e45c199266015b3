package config

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a config file after it changes on disk. Bursts of events
// from one save are folded into a single reload.
type Watcher struct {
	path     string
	fsw      *fsnotify.Watcher
	onChange func(Config)
	onError  func(error)

	// Debounce is how long the file must stay quiet before a reload.
	Debounce time.Duration

	stopCh   chan struct{}
	doneCh   chan struct{}
	stopOnce sync.Once
}

// NewWatcher watches the directory holding path, so editors that replace
// the file on save are seen too. onError may be nil.
func NewWatcher(path string, onChange func(Config), onError func(error)) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve %s: %w", path, err)
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("failed to watch %s: %w", filepath.Dir(abs), err)
	}
	if onError == nil {
		onError = func(error) {}
	}
	return &Watcher{
		path:     abs,
		fsw:      fsw,
		onChange: onChange,
		onError:  onError,
		Debounce: 200 * time.Millisecond,
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// Start runs the event loop until ctx is done or Stop is called.
func (w *Watcher) Start(ctx context.Context) {
	go w.run(ctx)
}

// Stop ends the event loop and releases the watcher.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		close(w.stopCh)
		<-w.doneCh
		w.fsw.Close()
	})
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	tick := w.Debounce / 4
	if tick <= 0 {
		tick = time.Millisecond
	}
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	var changed time.Time
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if ev.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) != 0 {
				changed = time.Now()
			}
		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.onError(fmt.Errorf("config watcher: %w", err))
		case <-ticker.C:
			if changed.IsZero() || time.Since(changed) < w.Debounce {
				continue
			}
			changed = time.Time{}
			cfg, err := Load(w.path)
			if err != nil {
				w.onError(err)
				continue
			}
			if w.onChange != nil {
				w.onChange(cfg)
			}
		}
	}
}
