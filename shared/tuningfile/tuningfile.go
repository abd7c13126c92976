// Package tuningfile loads controller tuning from YAML files on disk and
// hot-reloads them when they change.
package tuningfile

import (
	"bytes"
	"fmt"
	"log"
	"os"
	"path/filepath"
	"sync"

	"github.com/automoto/platformer-controller/shared/controller"
	"github.com/fsnotify/fsnotify"
)

// Load reads a tuning file. Missing keys keep their defaults.
func Load(path string) (controller.TuningData, error) {
	f, err := os.Open(path)
	if err != nil {
		return controller.TuningData{}, fmt.Errorf("open tuning %s: %w", path, err)
	}
	defer f.Close()

	t, err := controller.DecodeTuning(f)
	if err != nil {
		return controller.TuningData{}, fmt.Errorf("tuning %s: %w", path, err)
	}
	return t, nil
}

// Save writes t to path as YAML.
func Save(path string, t controller.TuningData) error {
	data, err := controller.EncodeTuning(t)
	if err != nil {
		return err
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write tuning %s: %w", path, err)
	}
	return nil
}

// Watcher reloads a tuning file whenever it is written. The reloaded value
// waits in a single slot until the game loop takes it with Pending, so the
// tuning never changes in the middle of a tick.
type Watcher struct {
	path    string
	watcher *fsnotify.Watcher

	mu      sync.Mutex
	pending *controller.TuningData
	lastErr error

	done chan struct{}
}

// Watch starts watching path. The parent directory is watched so editors
// that replace the file on save are picked up too.
func Watch(path string) (*Watcher, error) {
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("resolve %s: %w", path, err)
	}

	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if err := fw.Add(filepath.Dir(abs)); err != nil {
		fw.Close()
		return nil, fmt.Errorf("watch %s: %w", filepath.Dir(abs), err)
	}

	w := &Watcher{
		path:    abs,
		watcher: fw,
		done:    make(chan struct{}),
	}
	go w.run()
	return w, nil
}

func (w *Watcher) run() {
	defer close(w.done)
	for {
		select {
		case ev, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) {
				continue
			}
			w.reload()
		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			log.Printf("Warning: tuning watcher error: %v", err)
		}
	}
}

func (w *Watcher) reload() {
	data, err := os.ReadFile(w.path)
	if err == nil && len(bytes.TrimSpace(data)) == 0 {
		// Truncated mid-save; the write that follows triggers another reload.
		return
	}
	var t controller.TuningData
	if err == nil {
		t, err = controller.ParseTuning(data)
	}

	w.mu.Lock()
	defer w.mu.Unlock()
	if err != nil {
		w.lastErr = err
		log.Printf("Warning: could not reload tuning: %v", err)
		return
	}
	w.lastErr = nil
	w.pending = &t
	log.Printf("Reloaded tuning from %s", w.path)
}

// Pending returns the most recent reload that has not been taken yet.
func (w *Watcher) Pending() (controller.TuningData, bool) {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.pending == nil {
		return controller.TuningData{}, false
	}
	t := *w.pending
	w.pending = nil
	return t, true
}

// Err returns the error of the last failed reload, if the file has not been
// fixed since.
func (w *Watcher) Err() error {
	w.mu.Lock()
	defer w.mu.Unlock()
	return w.lastErr
}

// Path is the absolute path being watched.
func (w *Watcher) Path() string {
	return w.path
}

// Close stops the watcher and waits for its goroutine to exit.
func (w *Watcher) Close() error {
	err := w.watcher.Close()
	<-w.done
	return err
}
