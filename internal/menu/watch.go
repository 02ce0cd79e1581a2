package menu

import (
	"context"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher reloads a menu file when it changes on disk.
//
// The parent directory is watched rather than the file, since editors
// usually save by writing a temp file and renaming it over the original.
type Watcher struct {
	// Debounce collapses bursts of events from a single save.
	Debounce time.Duration

	path     string
	onChange func(Tree, error)
	log      *zap.Logger

	mu      sync.Mutex
	fsw     *fsnotify.Watcher
	cancel  context.CancelFunc
	done    chan struct{}
	running bool
}

// NewWatcher prepares a watcher for path. onChange receives the reloaded
// tree, or the load error, from the watcher goroutine.
func NewWatcher(path string, onChange func(Tree, error), log *zap.Logger) (*Watcher, error) {
	if path == "" {
		return nil, fmt.Errorf("watch menu: empty path")
	}
	abs, err := filepath.Abs(path)
	if err != nil {
		return nil, fmt.Errorf("watch menu: %w", err)
	}
	if log == nil {
		log = zap.NewNop()
	}
	return &Watcher{
		Debounce: 250 * time.Millisecond,
		path:     abs,
		onChange: onChange,
		log:      log,
	}, nil
}

// Start begins watching. It returns once the watch is registered.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return nil
	}

	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("watch menu: %w", err)
	}
	if err := fsw.Add(filepath.Dir(w.path)); err != nil {
		_ = fsw.Close()
		return fmt.Errorf("watch menu dir: %w", err)
	}

	ctx, cancel := context.WithCancel(ctx)
	w.fsw = fsw
	w.cancel = cancel
	w.done = make(chan struct{})
	w.running = true

	go w.run(ctx)
	w.log.Debug("watching menu file", zap.String("path", w.path))
	return nil
}

// Close stops the watcher and waits for its goroutine to exit.
func (w *Watcher) Close() error {
	w.mu.Lock()
	if !w.running {
		w.mu.Unlock()
		return nil
	}
	w.running = false
	cancel, done, fsw := w.cancel, w.done, w.fsw
	w.mu.Unlock()

	cancel()
	<-done
	return fsw.Close()
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.done)

	timer := time.NewTimer(time.Hour)
	timer.Stop()
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return

		case ev, ok := <-w.fsw.Events:
			if !ok {
				return
			}
			if filepath.Clean(ev.Name) != w.path {
				continue
			}
			if !ev.Has(fsnotify.Write) && !ev.Has(fsnotify.Create) && !ev.Has(fsnotify.Rename) {
				continue
			}
			w.log.Debug("menu file event", zap.String("op", ev.Op.String()))
			timer.Reset(w.Debounce)

		case err, ok := <-w.fsw.Errors:
			if !ok {
				return
			}
			w.log.Warn("menu watcher error", zap.Error(err))

		case <-timer.C:
			t, err := Load(w.path)
			if err != nil {
				w.log.Warn("menu reload failed", zap.Error(err))
			} else {
				w.log.Info("menu reloaded", zap.Int("items", len(t.Items)))
			}
			if w.onChange != nil {
				w.onChange(t, err)
			}
		}
	}
}
