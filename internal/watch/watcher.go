// Package watch raises refresh signals when the database file changes on
// disk. It is the subscription mechanism the TUI consumes: views do not
// care how data changed, only that their materialized snapshot is stale.
package watch

import (
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Watcher debounces filesystem events on a SQLite database (including
// its -wal sidecar) into a single refresh signal per burst.
type Watcher struct {
	fs       *fsnotify.Watcher
	events   chan struct{}
	done     chan struct{}
	debounce time.Duration
}

// New watches the database at dbPath. Events are coalesced: writes
// arriving within the debounce window produce one signal.
func New(dbPath string, debounce time.Duration) (*Watcher, error) {
	fs, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	// Watch the directory: SQLite swaps files during WAL checkpoints,
	// and a watch on the file itself goes stale when that happens.
	if err := fs.Add(filepath.Dir(dbPath)); err != nil {
		fs.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(dbPath), err)
	}

	w := &Watcher{
		fs:       fs,
		events:   make(chan struct{}, 1),
		done:     make(chan struct{}),
		debounce: debounce,
	}
	go w.loop(filepath.Base(dbPath))
	return w, nil
}

// Events returns the refresh channel. The channel has capacity one and
// signals are dropped, not queued, while a refresh is already pending.
func (w *Watcher) Events() <-chan struct{} {
	return w.events
}

func (w *Watcher) loop(base string) {
	var timer *time.Timer
	var fire <-chan time.Time

	for {
		select {
		case <-w.done:
			if timer != nil {
				timer.Stop()
			}
			return
		case ev, ok := <-w.fs.Events:
			if !ok {
				return
			}
			name := filepath.Base(ev.Name)
			if name != base && !strings.HasPrefix(name, base+"-") {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			if timer == nil {
				timer = time.NewTimer(w.debounce)
				fire = timer.C
			} else {
				timer.Reset(w.debounce)
			}
		case <-fire:
			timer = nil
			fire = nil
			select {
			case w.events <- struct{}{}:
			default:
			}
		case _, ok := <-w.fs.Errors:
			if !ok {
				return
			}
		}
	}
}

// Close stops the watcher and releases its OS resources.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fs.Close()
}
