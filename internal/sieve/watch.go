package sieve

import (
	"fmt"
	"path/filepath"

	"github.com/fsnotify/fsnotify"

	"github.com/junyuh/titlesift/internal/logging"
)

// Watcher reloads the candidate listing whenever the backing titles file
// changes, so the displayed rows track the file the way a page's listing
// tracks its data source. Reloaded listings are delivered on Updates;
// reload failures are logged and the previous listing stays in effect.
type Watcher struct {
	path    string
	fw      *fsnotify.Watcher
	log     *logging.Logger
	updates chan []Candidate
	done    chan struct{}
}

// Watch starts watching path. The containing directory is watched rather
// than the file itself because most editors replace files on save, which
// would drop a direct watch.
func Watch(path string, log *logging.Logger) (*Watcher, error) {
	if log == nil {
		log = logging.NopLogger()
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("creating watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(path)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watching %s: %w", filepath.Dir(path), err)
	}

	w := &Watcher{
		path:    path,
		fw:      fw,
		log:     log,
		updates: make(chan []Candidate, 1),
		done:    make(chan struct{}),
	}
	go w.loop()
	return w, nil
}

// Updates delivers the reloaded listing after each change to the file.
func (w *Watcher) Updates() <-chan []Candidate {
	return w.updates
}

// Close stops the watcher and closes the Updates channel.
func (w *Watcher) Close() error {
	close(w.done)
	return w.fw.Close()
}

func (w *Watcher) loop() {
	defer close(w.updates)
	for {
		select {
		case <-w.done:
			return
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != filepath.Clean(w.path) {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			cands, err := LoadTitles(w.path)
			if err != nil {
				w.log.Warn("failed to reload titles", "path", w.path, "error", err)
				continue
			}
			w.log.Debug("titles reloaded", "path", w.path, "count", len(cands))
			// Drop a stale pending update; only the newest listing matters.
			select {
			case <-w.updates:
			default:
			}
			select {
			case w.updates <- cands:
			case <-w.done:
				return
			}
		case err, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			w.log.Warn("watcher error", "error", err)
		}
	}
}
