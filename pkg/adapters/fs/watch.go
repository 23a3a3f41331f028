package fs

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"
	"time"

	"github.com/aretw0/lifecycle/pkg/core/worker"
	"github.com/bmatcuk/doublestar/v4"
	"github.com/fsnotify/fsnotify"

	"github.com/rmarques/notekeeper/pkg/core"
)

// debounceInterval is how long the watcher waits for the filesystem to
// settle before re-reading the collection. Editors and atomic renames
// produce bursts of events for a single logical change.
const debounceInterval = 50 * time.Millisecond

// Watch observes external changes to the backing file and emits one
// Event per changed note. The pattern is a doublestar glob matched
// against note IDs; "*" (or empty) matches everything.
//
// The watcher holds no connection to the write path: it sees its own
// process's writes too. Callers that only care about foreign writes
// should correlate against their own operations.
func (s *Store) Watch(ctx context.Context, pattern string) (<-chan core.Event, error) {
	if pattern == "" {
		pattern = "*"
	}
	if !doublestar.ValidatePattern(pattern) {
		return nil, fmt.Errorf("invalid watch pattern: %s", pattern)
	}

	events := make(chan core.Event, 16)
	w := newWatchWorker(s, pattern, events)
	if err := w.Start(ctx); err != nil {
		return nil, err
	}

	s.mu.Lock()
	s.watcher = w
	s.mu.Unlock()

	return events, nil
}

// WatcherActive reports whether a watch worker is currently running.
func (s *Store) WatcherActive() bool {
	s.mu.Lock()
	w := s.watcher
	s.mu.Unlock()
	if w == nil {
		return false
	}
	return w.State().Status == worker.StatusRunning
}

// watchWorker is the supervised goroutine behind Store.Watch.
// Its lifecycle (start, stop, status) is tracked by the embedded
// BaseWorker so a supervisor can restart it like any other worker.
type watchWorker struct {
	*worker.BaseWorker
	store    *Store
	pattern  string
	events   chan<- core.Event
	watcher  *fsnotify.Watcher
	snapshot map[string]core.Note
	cancel   context.CancelFunc
}

func newWatchWorker(store *Store, pattern string, events chan<- core.Event) *watchWorker {
	return &watchWorker{
		BaseWorker: worker.NewBaseWorker("fs-watcher"),
		store:      store,
		pattern:    pattern,
		events:     events,
	}
}

func (w *watchWorker) Start(ctx context.Context) error {
	if ctx.Err() != nil {
		return ctx.Err()
	}

	status := w.State().Status
	if status != worker.StatusCreated && status != worker.StatusPending {
		return fmt.Errorf("watcher already started (status: %s)", status)
	}

	watcher, err := fsnotify.NewWatcher()
	if err != nil {
		return fmt.Errorf("failed to create watcher: %w", err)
	}

	// Watch the directory, not the file: atomic writes replace the file
	// by rename, which would silently detach a file-level watch.
	if err := watcher.Add(w.store.Path); err != nil {
		_ = watcher.Close()
		return fmt.Errorf("failed to watch %s: %w", w.store.Path, err)
	}

	baseline, err := w.store.Load(ctx)
	if err != nil {
		_ = watcher.Close()
		return err
	}

	w.watcher = watcher
	w.snapshot = indexByID(baseline)

	runCtx, cancel := context.WithCancel(ctx)
	w.cancel = cancel

	w.SetStatus(worker.StatusRunning)
	return w.StartFunc(runCtx, w.run)
}

func (w *watchWorker) Stop(ctx context.Context) error {
	if w.cancel != nil {
		w.StopRequested = true
		w.cancel()
	}

	return w.BaseWorker.Stop(ctx)
}

func (w *watchWorker) State() worker.State {
	return w.ExportState(func(s *worker.State) {
		s.Metadata = map[string]string{
			worker.MetadataType: string(worker.TypeGoroutine),
		}
	})
}

// run is the main event loop for the watcher worker.
func (w *watchWorker) run(ctx context.Context) error {
	defer close(w.events)
	defer w.watcher.Close()

	// Debounce timer: armed on the first relevant event, reset on each
	// follow-up, fired once the burst settles.
	timer := time.NewTimer(debounceInterval)
	if !timer.Stop() {
		<-timer.C
	}
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil

		case event, ok := <-w.watcher.Events:
			if !ok {
				if w.StopRequested || ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher events channel closed")
			}
			if w.shouldIgnore(event) {
				continue
			}
			timer.Reset(debounceInterval)

		case <-timer.C:
			w.reconcile(ctx)

		case err, ok := <-w.watcher.Errors:
			if !ok {
				if w.StopRequested || ctx.Err() != nil {
					return nil
				}
				return fmt.Errorf("watcher errors channel closed")
			}
			if w.store.config.Logger != nil {
				w.store.config.Logger.Error("fsnotify error", "error", err)
			}
		}
	}
}

// shouldIgnore filters out events that do not concern the backing file:
// temp files from atomic writes, corruption backups, unrelated siblings.
func (w *watchWorker) shouldIgnore(event fsnotify.Event) bool {
	name := filepath.Base(event.Name)
	if strings.HasPrefix(name, TempFilePrefix) {
		return true
	}
	return name != filepath.Base(w.store.File())
}

// reconcile reloads the collection, diffs it against the last snapshot,
// and emits per-note events for everything that changed.
func (w *watchWorker) reconcile(ctx context.Context) {
	notes, err := w.store.Load(ctx)
	if err != nil {
		if w.store.config.Logger != nil {
			w.store.config.Logger.Error("watch reload failed", "error", err)
		}
		return
	}

	next := indexByID(notes)
	now := time.Now().Unix()

	for id, note := range next {
		prev, existed := w.snapshot[id]
		switch {
		case !existed:
			w.send(ctx, core.Event{Type: core.EventCreate, ID: id, Timestamp: now})
		case !note.UpdatedAt.Equal(prev.UpdatedAt):
			w.send(ctx, core.Event{Type: core.EventModify, ID: id, Timestamp: now})
		}
	}
	for id := range w.snapshot {
		if _, still := next[id]; !still {
			w.send(ctx, core.Event{Type: core.EventDelete, ID: id, Timestamp: now})
		}
	}

	w.snapshot = next
}

func (w *watchWorker) send(ctx context.Context, e core.Event) {
	if ok, _ := doublestar.Match(w.pattern, e.ID); !ok {
		return
	}
	select {
	case w.events <- e:
	case <-ctx.Done():
	}
}

func indexByID(notes []core.Note) map[string]core.Note {
	m := make(map[string]core.Note, len(notes))
	for _, n := range notes {
		m[n.ID] = n
	}
	return m
}
