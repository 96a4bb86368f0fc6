// Copyright (c) 2026 Folio Team
// Folio - terminal and static portfolio
// This source code is licensed under the MIT license found in the LICENSE file.

package content

import (
	"context"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/oelhwry/folio/core/model"
)

// DefaultDebounce groups bursts of editor writes into one reload.
const DefaultDebounce = 250 * time.Millisecond

// ReloadFunc receives every successfully reloaded portfolio. err is set when
// the changed file failed to load; the previous portfolio stays in effect.
type ReloadFunc func(p model.Portfolio, err error)

// Watcher reloads a content file when it changes on disk. The parent
// directory is watched so editors that replace files atomically are seen.
type Watcher struct {
	mu       sync.Mutex
	source   Source
	onReload ReloadFunc
	debounce time.Duration

	watcher *fsnotify.Watcher
	stopCh  chan struct{}
	doneCh  chan struct{}
	running bool
	pending bool
	lastMod time.Time
}

// NewWatcher creates a watcher for src. src must name a file.
func NewWatcher(src Source, onReload ReloadFunc) *Watcher {
	return &Watcher{
		source:   src,
		onReload: onReload,
		debounce: DefaultDebounce,
	}
}

// SetDebounce changes the quiet period before a reload. Call before Start.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if d > 0 {
		w.debounce = d
	}
}

// Start begins watching. It returns immediately.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return nil
	}
	if w.source.Path == "" {
		return nil
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}
	if err := fw.Add(w.source.AssetDir()); err != nil {
		fw.Close()
		return err
	}

	w.watcher = fw
	w.stopCh = make(chan struct{})
	w.doneCh = make(chan struct{})
	w.running = true

	go w.run(ctx)
	return nil
}

// Stop ends watching and waits for the loop to exit.
func (w *Watcher) Stop() {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return
	}
	w.running = false
	close(w.stopCh)
	done := w.doneCh
	w.mu.Unlock()

	<-done
	w.watcher.Close()
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	ticker := time.NewTicker(w.debounce)
	defer ticker.Stop()

	target := filepath.Clean(w.source.Path)
	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(event.Name) != target {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create|fsnotify.Rename) == 0 {
				continue
			}
			w.mu.Lock()
			w.pending = true
			w.lastMod = time.Now()
			w.mu.Unlock()
		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
		case <-ticker.C:
			w.mu.Lock()
			fire := w.pending && time.Since(w.lastMod) >= w.debounce
			if fire {
				w.pending = false
			}
			w.mu.Unlock()
			if fire {
				w.reload()
			}
		}
	}
}

func (w *Watcher) reload() {
	p, err := w.source.Load()
	if w.onReload != nil {
		w.onReload(p, err)
	}
}
