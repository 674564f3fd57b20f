// Package watcher reports content changes of source files.
package watcher

import (
	"context"
	"iter"
	"os"
	"path/filepath"
	"sync"
	"sync/atomic"
	"time"

	"github.com/cespare/xxhash/v2"
	"github.com/fsnotify/fsnotify"
	"go.trai.ch/cxxcmd/internal/core/domain"
	"go.trai.ch/cxxcmd/internal/core/ports"
	"go.trai.ch/zerr"
)

var _ ports.Watcher = (*Watcher)(nil)

// DefaultWindow is how long the watcher waits for a burst of writes to settle.
const DefaultWindow = 150 * time.Millisecond

const eventChannelBuffer = 16

// Watcher watches the directories holding a set of files and emits a batch
// whenever the content of one of those files changes.
type Watcher struct {
	fsWatcher *fsnotify.Watcher
	debouncer *Debouncer
	logger    ports.Logger

	started atomic.Bool

	mu     sync.Mutex
	hashes map[string]uint64
	closed bool
	events chan []string
	done   chan struct{}
}

// NewWatcher creates a new file watcher.
func NewWatcher(logger ports.Logger, window time.Duration) (*Watcher, error) {
	fsw, err := fsnotify.NewWatcher()
	if err != nil {
		return nil, zerr.Wrap(err, domain.ErrWatchFailed.Error())
	}

	w := &Watcher{
		fsWatcher: fsw,
		logger:    logger,
		hashes:    make(map[string]uint64),
		events:    make(chan []string, eventChannelBuffer),
		done:      make(chan struct{}),
	}
	w.debouncer = NewDebouncer(window, w.emit)
	return w, nil
}

// Start watches files. Paths are made absolute against the working directory.
func (w *Watcher) Start(ctx context.Context, files []string) error {
	dirs := make(map[string]struct{})

	w.mu.Lock()
	for _, f := range files {
		abs, err := filepath.Abs(f)
		if err != nil {
			w.mu.Unlock()
			return zerr.With(zerr.Wrap(err, domain.ErrWatchFailed.Error()), "file", f)
		}
		sum, _ := hashFile(abs)
		w.hashes[abs] = sum
		dirs[filepath.Dir(abs)] = struct{}{}
	}
	w.mu.Unlock()

	for dir := range dirs {
		if err := w.fsWatcher.Add(dir); err != nil {
			return zerr.With(zerr.Wrap(err, domain.ErrWatchFailed.Error()), "dir", dir)
		}
	}

	w.started.Store(true)
	go w.processEvents(ctx)
	return nil
}

// Stop stops the watcher. Events terminates once pending batches are drained.
func (w *Watcher) Stop() error {
	err := w.fsWatcher.Close()
	if !w.started.Load() {
		w.close()
	}
	<-w.done
	return err
}

// Events yields batches of changed files until the watcher stops.
func (w *Watcher) Events() iter.Seq[[]string] {
	return func(yield func([]string) bool) {
		for batch := range w.events {
			if !yield(batch) {
				return
			}
		}
	}
}

func (w *Watcher) processEvents(ctx context.Context) {
	defer w.close()

	for {
		select {
		case <-ctx.Done():
			return
		case event, ok := <-w.fsWatcher.Events:
			if !ok {
				return
			}
			if !event.Has(fsnotify.Write) && !event.Has(fsnotify.Create) && !event.Has(fsnotify.Rename) {
				continue
			}
			if w.tracked(event.Name) {
				w.debouncer.Add(event.Name)
			}
		case err, ok := <-w.fsWatcher.Errors:
			if !ok {
				return
			}
			w.logger.Error(zerr.Wrap(err, domain.ErrWatchFailed.Error()))
		}
	}
}

func (w *Watcher) tracked(path string) bool {
	w.mu.Lock()
	defer w.mu.Unlock()
	_, ok := w.hashes[filepath.Clean(path)]
	return ok
}

// emit forwards the paths whose content hash changed.
func (w *Watcher) emit(paths []string) {
	w.mu.Lock()
	defer w.mu.Unlock()

	if w.closed {
		return
	}

	var changed []string
	for _, p := range paths {
		p = filepath.Clean(p)
		sum, err := hashFile(p)
		if err != nil {
			// Editors that save by rename briefly remove the file.
			continue
		}
		if prev, ok := w.hashes[p]; ok && prev == sum {
			continue
		}
		w.hashes[p] = sum
		changed = append(changed, p)
	}

	if len(changed) == 0 {
		return
	}

	select {
	case w.events <- changed:
	default:
		w.logger.Warn("dropping file change batch, consumer is behind", "files", len(changed))
	}
}

func (w *Watcher) close() {
	w.debouncer.Flush()

	w.mu.Lock()
	w.closed = true
	close(w.events)
	w.mu.Unlock()

	close(w.done)
}

func hashFile(path string) (uint64, error) {
	data, err := os.ReadFile(path) //nolint:gosec // watched source file
	if err != nil {
		return 0, err
	}
	return xxhash.Sum64(data), nil
}
