// Package watch re-validates content bundles whenever they change on disk.
package watch

import (
	"context"
	"os"
	"path/filepath"
	"strings"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/jonathan/portfolio/internal/content"
	"github.com/jonathan/portfolio/internal/types"
	"go.uber.org/zap"
)

// DefaultDebounce batches the burst of events an editor produces on save.
const DefaultDebounce = 200 * time.Millisecond

// Event reports the result of re-validating one bundle.
type Event struct {
	Lang types.Lang `json:"lang"`
	Path string     `json:"path"`
	// Err is nil when the bundle parsed and validated.
	Err error     `json:"-"`
	At  time.Time `json:"at"`
}

// Valid reports whether the bundle passed validation.
func (e Event) Valid() bool {
	return e.Err == nil
}

// Watcher watches the content directory of a site.
type Watcher struct {
	dir      string
	onChange func(Event)
	logger   *zap.Logger
	debounce time.Duration

	watcher *fsnotify.Watcher
	pending map[string]time.Time

	mu      sync.Mutex
	running bool
	stopCh  chan struct{}
	doneCh  chan struct{}
}

// New creates a Watcher for <siteDir>/content. onChange runs on the
// watcher goroutine after each debounced change.
func New(siteDir string, onChange func(Event), logger *zap.Logger) (*Watcher, error) {
	if logger == nil {
		logger = zap.NewNop()
	}
	fw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, err
	}
	return &Watcher{
		dir:      filepath.Join(siteDir, content.Dir),
		onChange: onChange,
		logger:   logger,
		debounce: DefaultDebounce,
		watcher:  fw,
		pending:  make(map[string]time.Time),
		stopCh:   make(chan struct{}),
		doneCh:   make(chan struct{}),
	}, nil
}

// SetDebounce changes the debounce window. Call before Start.
func (w *Watcher) SetDebounce(d time.Duration) {
	w.debounce = d
}

// Start begins watching. It does not block.
func (w *Watcher) Start(ctx context.Context) error {
	w.mu.Lock()
	defer w.mu.Unlock()
	if w.running {
		return nil
	}
	if err := w.watcher.Add(w.dir); err != nil {
		return err
	}
	w.running = true
	w.logger.Info("Watching content", zap.String("dir", w.dir))
	go w.run(ctx)
	return nil
}

// Stop stops the watcher and waits for its goroutine.
func (w *Watcher) Stop() {
	w.mu.Lock()
	running := w.running
	w.running = false
	w.mu.Unlock()

	if running {
		close(w.stopCh)
		<-w.doneCh
	}
	if err := w.watcher.Close(); err != nil {
		w.logger.Warn("Failed to close watcher", zap.Error(err))
	}
}

func (w *Watcher) run(ctx context.Context) {
	defer close(w.doneCh)

	tick := w.debounce / 4
	if tick <= 0 {
		tick = 10 * time.Millisecond
	}
	ticker := time.NewTicker(tick)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-w.stopCh:
			return

		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if _, ok := langOf(event.Name); !ok {
				continue
			}
			w.pending[event.Name] = time.Now()

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Warn("Watcher error", zap.Error(err))

		case now := <-ticker.C:
			for path, at := range w.pending {
				if now.Sub(at) < w.debounce {
					continue
				}
				delete(w.pending, path)
				w.validate(path)
			}
		}
	}
}

func (w *Watcher) validate(path string) {
	lang, _ := langOf(path)
	ev := Event{Lang: lang, Path: path, At: time.Now()}

	data, err := os.ReadFile(path)
	if err == nil {
		_, err = content.Parse(data)
	}
	ev.Err = err

	if err != nil {
		w.logger.Warn("Content bundle is invalid", zap.String("path", path), zap.Error(err))
	} else {
		w.logger.Info("Content bundle changed", zap.String("path", path))
	}
	if w.onChange != nil {
		w.onChange(ev)
	}
}

// langOf returns the language of a bundle path such as content/en.json.
func langOf(path string) (types.Lang, bool) {
	base := filepath.Base(path)
	if filepath.Ext(base) != ".json" {
		return "", false
	}
	name := strings.TrimSuffix(base, ".json")
	if !types.IsSupported(name) {
		return "", false
	}
	return types.Lang(name), true
}
