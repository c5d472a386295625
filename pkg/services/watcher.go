package services

import (
	"context"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"go.uber.org/zap"
)

// Watcher invalidates store entries when the local data files change and
// schedules a background reload of the touched resource. Rapid saves are
// debounced per resource.
type Watcher struct {
	watcher  *fsnotify.Watcher
	dataDir  string
	loaders  map[string]*Loader
	store    *Store
	debounce time.Duration

	mu     sync.Mutex
	timers map[string]*time.Timer

	log  *zap.Logger
	done chan struct{}
}

func NewWatcher(dataDir string, loaders map[string]*Loader, store *Store, log *zap.Logger) (*Watcher, error) {
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	if err := fw.Add(dataDir); err != nil {
		fw.Close()
		return nil, err
	}

	return &Watcher{
		watcher:  fw,
		dataDir:  dataDir,
		loaders:  loaders,
		store:    store,
		debounce: 500 * time.Millisecond,
		timers:   make(map[string]*time.Timer),
		log:      log,
		done:     make(chan struct{}),
	}, nil
}

// Start runs the event loop until Close is called or ctx is cancelled.
func (w *Watcher) Start(ctx context.Context) {
	go func() {
		for {
			select {
			case event, ok := <-w.watcher.Events:
				if !ok {
					return
				}
				if event.Has(fsnotify.Write) || event.Has(fsnotify.Create) ||
					event.Has(fsnotify.Remove) || event.Has(fsnotify.Rename) {
					w.handle(ctx, event.Name)
				}
			case err, ok := <-w.watcher.Errors:
				if !ok {
					return
				}
				w.log.Warn("watcher error", zap.Error(err))
			case <-ctx.Done():
				return
			case <-w.done:
				return
			}
		}
	}()
}

func (w *Watcher) handle(ctx context.Context, path string) {
	name := filepath.Base(path)
	if !strings.HasSuffix(name, ".json") {
		return
	}
	resource := strings.TrimSuffix(name, ".json")
	loader, ok := w.loaders[resource]
	if !ok {
		return
	}

	w.log.Info("data file changed", zap.String("resource", resource))

	w.mu.Lock()
	defer w.mu.Unlock()
	if timer, ok := w.timers[resource]; ok {
		timer.Stop()
	}
	w.timers[resource] = time.AfterFunc(w.debounce, func() {
		w.store.Invalidate(resource)
		if err := loader.Load(ctx); err != nil {
			w.log.Warn("reload after change failed", zap.String("resource", resource), zap.Error(err))
		}
	})
}

func (w *Watcher) Close() error {
	close(w.done)
	return w.watcher.Close()
}
