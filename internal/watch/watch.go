package watch

import (
	"context"
	"errors"
	"fmt"
	"path/filepath"
	"sync"
	"time"

	"github.com/fsnotify/fsnotify"
	"github.com/leonardotrapani/themetokens/internal/debounce"
	"github.com/rs/zerolog"
)

// Watcher calls a function when one of a set of files is written or
// recreated. Bursts of events are coalesced with a debounce window.
type Watcher struct {
	files    map[string]*debounce.Debouncer
	logger   zerolog.Logger
	watcher  *fsnotify.Watcher
	wg       sync.WaitGroup
	stopOnce sync.Once
}

// Target pairs a file with the callback to run when it changes.
type Target struct {
	Path     string
	OnChange func()
}

func New(window time.Duration, logger zerolog.Logger, targets ...Target) (*Watcher, error) {
	if len(targets) == 0 {
		return nil, errors.New("watch: no files to watch")
	}

	w := &Watcher{
		files:  make(map[string]*debounce.Debouncer, len(targets)),
		logger: logger,
	}
	for _, t := range targets {
		abs, err := filepath.Abs(t.Path)
		if err != nil {
			return nil, fmt.Errorf("failed to resolve %s: %w", t.Path, err)
		}
		w.files[abs] = debounce.New(window, t.OnChange)
	}
	return w, nil
}

// Start begins watching. Editors often replace files instead of writing
// them in place, so the parent directories are watched rather than the
// files themselves.
func (w *Watcher) Start(ctx context.Context) error {
	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return err
	}

	dirs := make(map[string]bool)
	for path := range w.files {
		dir := filepath.Dir(path)
		if dirs[dir] {
			continue
		}
		if err := watcher.Add(dir); err != nil {
			watcher.Close()
			return fmt.Errorf("failed to watch %s: %w", dir, err)
		}
		dirs[dir] = true
		w.logger.Debug().Str("dir", dir).Msg("watching directory")
	}

	w.watcher = watcher
	w.wg.Add(1)
	go w.loop(ctx)

	return nil
}

// Stop ends the watch loop and drops pending callbacks.
func (w *Watcher) Stop() {
	w.stopOnce.Do(func() {
		if w.watcher != nil {
			w.watcher.Close()
		}
		w.wg.Wait()
		for _, d := range w.files {
			d.Stop()
		}
	})
}

func (w *Watcher) loop(ctx context.Context) {
	defer w.wg.Done()

	for {
		select {
		case event, ok := <-w.watcher.Events:
			if !ok {
				return
			}

			d, watched := w.files[filepath.Clean(event.Name)]
			if !watched {
				continue
			}

			// Only react to Write and Create events (ignore Chmod, Remove, etc.)
			if event.Op&fsnotify.Write == fsnotify.Write || event.Op&fsnotify.Create == fsnotify.Create {
				w.logger.Debug().Str("file", event.Name).Str("op", event.Op.String()).Msg("file change detected")
				d.Trigger()
			}

		case err, ok := <-w.watcher.Errors:
			if !ok {
				return
			}
			w.logger.Error().Err(err).Msg("watcher error")

		case <-ctx.Done():
			return
		}
	}
}
