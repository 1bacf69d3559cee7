package agent

import (
	"fmt"
	"path/filepath"
	"sync"

	"github.com/fsnotify/fsnotify"
)

// Watcher reloads a manifest file whenever it changes on disk and
// delivers the result to a callback. It watches the parent directory
// rather than the file itself so that editors which replace the file
// (write to temp, rename over) are still observed.
type Watcher struct {
	fw        *fsnotify.Watcher
	path      string
	closeOnce sync.Once
	done      chan struct{}
}

// Watch starts watching path and invokes onReload with the re-parsed
// manifest (or a parse error) after each write. The callback runs on
// the watcher's goroutine and must not block.
func Watch(path string, onReload func(*Manifest, error)) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("failed to resolve manifest path: %w", err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("failed to create watcher: %w", err)
	}

	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("failed to watch manifest directory: %w", err)
	}

	w := &Watcher{
		fw:   fw,
		path: abs,
		done: make(chan struct{}),
	}

	go w.loop(onReload)

	return w, nil
}

// Path returns the absolute path of the watched manifest.
func (w *Watcher) Path() string {
	return w.path
}

// Close stops the watcher. It is idempotent.
func (w *Watcher) Close() error {
	var err error
	w.closeOnce.Do(func() {
		err = w.fw.Close()
		<-w.done
	})
	return err
}

func (w *Watcher) loop(onReload func(*Manifest, error)) {
	defer close(w.done)

	for {
		select {
		case ev, ok := <-w.fw.Events:
			if !ok {
				return
			}
			if ev.Name != w.path {
				continue
			}
			if ev.Op.Has(fsnotify.Write) || ev.Op.Has(fsnotify.Create) {
				onReload(Load(w.path))
			}

		case _, ok := <-w.fw.Errors:
			if !ok {
				return
			}
			// Watch errors are non-fatal; the panel keeps showing the
			// last successfully loaded manifest.
		}
	}
}
