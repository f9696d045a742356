package dictionary

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/charmbracelet/log"
	"github.com/fsnotify/fsnotify"

	"github.com/bastiangx/righte/internal/logger"
)

const defaultReloadDelay = 100 * time.Millisecond

// Watcher keeps the current word list of a file and swaps in a freshly
// loaded list whenever the file changes. Lists already handed out are
// never modified.
type Watcher struct {
	path   string
	opts   LoadOptions
	delay  time.Duration
	logger *log.Logger

	current atomic.Pointer[WordList]
	// reloading serializes Reload so the last load is the one kept
	reloading sync.Mutex

	mu       sync.Mutex
	onReload []func(*WordList)
}

// NewWatcher returns a watcher serving initial until the file changes.
func NewWatcher(path string, opts LoadOptions, initial *WordList) *Watcher {
	w := &Watcher{
		path:   path,
		opts:   opts,
		delay:  defaultReloadDelay,
		logger: logger.New("watcher"),
	}
	w.current.Store(initial)
	return w
}

// SetDelay sets how long the watcher waits for writes to settle.
func (w *Watcher) SetDelay(d time.Duration) {
	if d > 0 {
		w.delay = d
	}
}

// Current returns the most recently loaded list.
func (w *Watcher) Current() *WordList {
	return w.current.Load()
}

// OnReload registers fn to be called with every new list.
func (w *Watcher) OnReload(fn func(*WordList)) {
	w.mu.Lock()
	defer w.mu.Unlock()
	w.onReload = append(w.onReload, fn)
}

// Reload loads the file again. On failure the current list is kept.
func (w *Watcher) Reload() error {
	w.reloading.Lock()
	defer w.reloading.Unlock()

	wl, err := LoadFile(w.path, w.opts)
	if err != nil {
		return fmt.Errorf("reload word list: %w", err)
	}
	w.current.Store(wl)

	w.mu.Lock()
	callbacks := append([]func(*WordList){}, w.onReload...)
	w.mu.Unlock()
	for _, fn := range callbacks {
		fn(wl)
	}
	w.logger.Infof("Reloaded word list %s (%d words)", w.path, wl.Len())
	return nil
}

// Run watches the directory of the word list until ctx is done.
func (w *Watcher) Run(ctx context.Context) error {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("create watcher: %w", err)
	}
	defer fsw.Close()

	// editors replace files by rename, so watch the directory
	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		return fmt.Errorf("watch directory: %w", err)
	}
	w.logger.Debugf("Watching %s for changes", w.path)

	var timer *time.Timer
	defer func() {
		if timer != nil {
			timer.Stop()
		}
	}()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-fsw.Events:
			if !ok {
				return nil
			}
			if filepath.Base(event.Name) != filepath.Base(w.path) {
				continue
			}
			if event.Op&(fsnotify.Write|fsnotify.Create) == 0 {
				continue
			}
			if timer != nil {
				timer.Stop()
			}
			timer = time.AfterFunc(w.delay, func() {
				if err := w.Reload(); err != nil {
					w.logger.Warnf("Keeping previous word list: %v", err)
				}
			})

		case err, ok := <-fsw.Errors:
			if !ok {
				return nil
			}
			w.logger.Warnf("Word list watcher error: %v", err)
		}
	}
}
