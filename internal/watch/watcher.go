// Package watch reports changes to individual files on disk.
package watch

import (
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"
)

const DefaultDebounce = 200 * time.Millisecond

// Watcher calls onChange for a watched file once events for it settle.
// Editors often save by writing a temp file and renaming it over the
// original, so the file's directory is watched rather than the file.
type Watcher struct {
	watcher  *fsnotify.Watcher
	log      *log.Logger
	delay    time.Duration
	files    map[string]bool
	dirs     map[string]int
	debounce map[string]*pending
	mu       sync.Mutex
	closed   bool
	onChange func(path string)
	onError  func(error)
}

// New returns a watcher. onError is called at most once, after which the
// watcher stops delivering changes.
func New(delay time.Duration, logger *log.Logger, onChange func(path string), onError func(error)) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, fmt.Errorf("create watcher: %w", err)
	}
	if delay <= 0 {
		delay = DefaultDebounce
	}
	if logger == nil {
		logger = log.Default()
	}
	return &Watcher{
		watcher:  fw,
		log:      logger,
		delay:    delay,
		files:    make(map[string]bool),
		dirs:     make(map[string]int),
		debounce: make(map[string]*pending),
		onChange: onChange,
		onError:  onError,
	}, nil
}

// Add starts watching path.
func (w *Watcher) Add(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	dir := filepath.Dir(abs)

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.files[abs] {
		return nil
	}
	if w.dirs[dir] == 0 {
		if err := w.watcher.Add(dir); err != nil {
			return fmt.Errorf("watch %s: %w", dir, err)
		}
	}
	w.dirs[dir]++
	w.files[abs] = true
	return nil
}

// Remove stops watching path.
func (w *Watcher) Remove(path string) error {
	abs, err := filepath.Abs(path)
	if err != nil {
		return err
	}
	dir := filepath.Dir(abs)

	w.mu.Lock()
	defer w.mu.Unlock()
	if !w.files[abs] {
		return nil
	}
	delete(w.files, abs)
	if p, ok := w.debounce[abs]; ok {
		p.timer.Stop()
		delete(w.debounce, abs)
	}
	w.dirs[dir]--
	if w.dirs[dir] == 0 {
		delete(w.dirs, dir)
		return w.watcher.Remove(dir)
	}
	return nil
}

// Start begins watching for changes. Blocks until Stop is called.
func (w *Watcher) Start() {
	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			w.handleEvent(event)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.fatal(err)
			return
		}
	}
}

func (w *Watcher) handleEvent(event fsnotify.Event) {
	if event.Has(fsnotify.Chmod) && !event.Has(fsnotify.Write) {
		return
	}
	path := filepath.Clean(event.Name)

	w.mu.Lock()
	defer w.mu.Unlock()
	if w.closed || !w.files[path] {
		return
	}

	if p, ok := w.debounce[path]; ok {
		p.timer.Stop()
	}
	p := &pending{}
	p.timer = time.AfterFunc(w.delay, func() { w.settle(path, p, event.Op) })
	w.debounce[path] = p
}

// pending is one scheduled change report.
type pending struct {
	timer *time.Timer
}

// settle runs when a debounce timer fires. A report that was replaced while
// it waited for the lock is stale and leaves the newer one in place.
func (w *Watcher) settle(path string, p *pending, op fsnotify.Op) {
	w.mu.Lock()
	if w.closed || w.debounce[path] != p {
		w.mu.Unlock()
		return
	}
	delete(w.debounce, path)
	w.mu.Unlock()

	w.log.Debug("file changed", "path", path, "op", op.String())
	if w.onChange != nil {
		w.onChange(path)
	}
}

func (w *Watcher) fatal(err error) {
	w.mu.Lock()
	if w.closed {
		w.mu.Unlock()
		return
	}
	w.closed = true
	onError := w.onError
	w.mu.Unlock()

	w.log.Error("watcher stopped", "err", err)
	if onError != nil {
		onError(err)
	}
}

// Stop stops the watcher.
func (w *Watcher) Stop() error {
	w.mu.Lock()
	w.closed = true
	for path, p := range w.debounce {
		p.timer.Stop()
		delete(w.debounce, path)
	}
	w.mu.Unlock()
	return w.watcher.Close()
}
