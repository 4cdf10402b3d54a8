package backend

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"

	"github.com/atomicstack/navmenu/internal/logging/events"
	"github.com/atomicstack/navmenu/internal/menu"
)

// Event carries a freshly loaded link list or the error that prevented it.
type Event struct {
	Path  string
	Items []menu.Item
	Err   error
}

// Watcher reloads a links file whenever it changes on disk and publishes
// the result.
type Watcher struct {
	path     string
	fs       *fsnotify.Watcher
	throttle *throttle

	ctx    context.Context
	cancel context.CancelFunc

	events chan Event
	wg     sync.WaitGroup
}

// NewWatcher starts watching path. Reloads are spaced at least minInterval
// apart so editors that write in several steps trigger a single reload.
func NewWatcher(path string, minInterval time.Duration) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve links path: %w", err)
	}
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create file watcher: %w", err)
	}
	// watch the directory: editors often replace the file rather than write it
	if err := fsw.Add(filepath.Dir(abs)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}
	ctx, cancel := context.WithCancel(context.Background())
	w := &Watcher{
		path:     abs,
		fs:       fsw,
		throttle: newThrottle(minInterval),
		ctx:      ctx,
		cancel:   cancel,
		events:   make(chan Event, 4),
	}
	w.wg.Add(1)
	go w.loop()
	go func() {
		w.wg.Wait()
		close(w.events)
	}()
	return w, nil
}

// Events returns the channel of reload results. It is closed after Stop.
func (w *Watcher) Events() <-chan Event {
	return w.events
}

// Path returns the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Stop cancels the watcher and releases the underlying file watch.
func (w *Watcher) Stop() {
	w.cancel()
}

// Wait blocks until the watch loop has exited and Events is closed.
func (w *Watcher) Wait() {
	w.wg.Wait()
}

func (w *Watcher) loop() {
	defer w.wg.Done()
	defer w.fs.Close()
	for {
		select {
		case <-w.ctx.Done():
			return
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if !w.throttle.wait(w.ctx) {
				return
			}
			items, err := menu.LoadFile(w.path)
			if err != nil {
				events.Links.Error(w.path, err)
			} else {
				events.Links.Reload(w.path, len(items))
			}
			if !w.emit(Event{Path: w.path, Items: items, Err: err}) {
				return
			}
		case err, ok := <-w.fs.Errors:
			if !ok {
				return
			}
			events.Links.Error(w.path, err)
			if !w.emit(Event{Path: w.path, Err: err}) {
				return
			}
		}
	}
}

func (w *Watcher) emit(evt Event) bool {
	select {
	case <-w.ctx.Done():
		return false
	case w.events <- evt:
		return true
	}
}
