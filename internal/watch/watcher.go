// Package watch monitors corpus input files and signals when the published
// learning-order snapshot should be recomputed.
package watch

import (
	"path/filepath"
	"time"

	"github.com/fsnotify/fsnotify"
)

// Change reports that a watched input file was modified, created, or
// removed and the snapshot needs a rebuild.
type Change struct {
	// File is the absolute path of the changed input.
	File string
}

// Watcher monitors a set of input files using fsnotify. Editors often
// replace files via rename-and-create, so the watcher observes the parent
// directories and filters events down to the named files.
type Watcher struct {
	Changes <-chan Change // read-only external channel

	files    map[string]bool
	debounce time.Duration
	changes  chan Change
	done     chan struct{}
	watcher  *fsnotify.Watcher
}

// New creates a watcher for the given files. debounce collapses editor
// write bursts into a single change event; zero uses 200ms.
func New(debounce time.Duration, files ...string) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if debounce <= 0 {
		debounce = 200 * time.Millisecond
	}

	tracked := make(map[string]bool, len(files))
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			fw.Close()
			return nil, err
		}
		tracked[abs] = true
	}

	ch := make(chan Change, 16)
	w := &Watcher{
		Changes:  ch,
		files:    tracked,
		debounce: debounce,
		changes:  ch,
		done:     make(chan struct{}),
		watcher:  fw,
	}
	return w, nil
}

// Start begins watching the parent directories of the tracked files.
func (w *Watcher) Start() error {
	dirs := make(map[string]bool)
	for f := range w.files {
		dirs[filepath.Dir(f)] = true
	}
	for dir := range dirs {
		if err := w.watcher.Add(dir); err != nil {
			return err
		}
	}

	go w.loop()
	return nil
}

// Stop closes the watcher and channels.
func (w *Watcher) Stop() {
	w.watcher.Close()
	<-w.done // wait for loop to exit
	close(w.changes)
}

func (w *Watcher) loop() {
	defer close(w.done)

	// Debounce: track last event time per file.
	pending := make(map[string]time.Time)
	ticker := time.NewTicker(w.debounce)
	defer ticker.Stop()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				// Drain pending on close.
				for file := range pending {
					w.changes <- Change{File: file}
				}
				return
			}

			abs, err := filepath.Abs(event.Name)
			if err != nil || !w.files[abs] {
				continue
			}
			if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
				event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
				pending[abs] = time.Now()
			}

		case _, ok := <-ticker.C:
			if !ok {
				return
			}
			now := time.Now()
			for file, t := range pending {
				if now.Sub(t) >= w.debounce {
					w.changes <- Change{File: file}
					delete(pending, file)
				}
			}

		case _, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			// Watch errors are non-fatal.
		}
	}
}
