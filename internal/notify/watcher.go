package notify

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// debounceWindow coalesces the burst of writes SQLite makes per
// transaction into a single store-changed event.
const debounceWindow = 250 * time.Millisecond

// Watcher publishes KindStoreChanged on a Hub whenever the database
// file is written by anyone, which is how one dashboard process
// notices another one changing shared data. SQLite in WAL mode writes
// the -wal sidecar, so the watch covers the whole directory and
// filters by basename.
type Watcher struct {
	hub     *Hub
	watcher *fsnotify.Watcher
	done    chan struct{}
}

// StartWatcher begins watching the store at dbPath. Close the returned
// watcher to stop. In-memory databases cannot be watched.
func StartWatcher(hub *Hub, dbPath string) (*Watcher, error) {
	if dbPath == ":memory:" {
		return nil, fmt.Errorf("cannot watch an in-memory database")
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating store watcher: %w", err)
	}
	if err := fsw.Add(filepath.Dir(dbPath)); err != nil {
		fsw.Close()
		return nil, fmt.Errorf("watching store directory: %w", err)
	}

	w := &Watcher{hub: hub, watcher: fsw, done: make(chan struct{})}
	go w.loop(filepath.Base(dbPath))
	return w, nil
}

func (w *Watcher) loop(base string) {
	var timer *time.Timer
	fire := make(chan struct{}, 1)

	for {
		select {
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			name := filepath.Base(ev.Name)
			if name != base && !strings.HasPrefix(name, base+"-") {
				continue
			}
			if timer == nil {
				timer = time.AfterFunc(debounceWindow, func() {
					select {
					case fire <- struct{}{}:
					default:
					}
				})
			} else {
				timer.Reset(debounceWindow)
			}

		case <-fire:
			timer = nil
			w.hub.Publish(Event{Kind: KindStoreChanged})

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Watch errors are not fatal; a missed event only delays
			// the next refresh.

		case <-w.done:
			return
		}
	}
}

// Close stops the watcher.
func (w *Watcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}
