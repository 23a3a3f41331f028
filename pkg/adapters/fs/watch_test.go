package fs

import (
	"context"
	"testing"
	"time"

	"github.com/aretw0/lifecycle/pkg/core/worker"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/rmarques/notekeeper/pkg/core"
)

// setupWatchTest initializes a store with one seeded note and opens a
// watch on the given pattern.
func setupWatchTest(t *testing.T, pattern string) (*Store, <-chan core.Event, context.Context) {
	t.Helper()

	store := NewStore(Config{Path: t.TempDir()})
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	t.Cleanup(cancel)

	require.NoError(t, store.Initialize(ctx))
	seed := core.Note{ID: "seed", Title: "seed", Content: "c", UpdatedAt: time.Now().UTC()}
	require.NoError(t, store.ReplaceAll(ctx, []core.Note{seed}))

	events, err := store.Watch(ctx, pattern)
	require.NoError(t, err, "Watch should be supported")
	require.True(t, store.WatcherActive())

	// Give fsnotify a moment to arm before we mutate the file.
	time.Sleep(100 * time.Millisecond)

	return store, events, ctx
}

func waitEvent(t *testing.T, ctx context.Context, events <-chan core.Event) core.Event {
	t.Helper()
	select {
	case event := <-events:
		return event
	case <-ctx.Done():
		t.Fatal("Timed out waiting for event")
		return core.Event{}
	}
}

func TestWatch_Create(t *testing.T) {
	store, events, ctx := setupWatchTest(t, "*")

	notes, err := store.Load(ctx)
	require.NoError(t, err)
	notes = append(notes, core.Note{ID: "fresh", Title: "t", Content: "c", UpdatedAt: time.Now().UTC()})
	require.NoError(t, store.ReplaceAll(ctx, notes))

	event := waitEvent(t, ctx, events)
	assert.Equal(t, core.EventCreate, event.Type)
	assert.Equal(t, "fresh", event.ID)
}

func TestWatch_Modify(t *testing.T) {
	store, events, ctx := setupWatchTest(t, "*")

	notes, err := store.Load(ctx)
	require.NoError(t, err)
	notes[0].Title = "renamed"
	notes[0].UpdatedAt = notes[0].UpdatedAt.Add(time.Second)
	require.NoError(t, store.ReplaceAll(ctx, notes))

	event := waitEvent(t, ctx, events)
	assert.Equal(t, core.EventModify, event.Type)
	assert.Equal(t, "seed", event.ID)
}

func TestWatch_Delete(t *testing.T) {
	store, events, ctx := setupWatchTest(t, "*")

	require.NoError(t, store.ReplaceAll(ctx, []core.Note{}))

	event := waitEvent(t, ctx, events)
	assert.Equal(t, core.EventDelete, event.Type)
	assert.Equal(t, "seed", event.ID)
}

func TestWatch_PatternFiltersIDs(t *testing.T) {
	store, events, ctx := setupWatchTest(t, "task-*")

	notes, err := store.Load(ctx)
	require.NoError(t, err)
	notes = append(notes,
		core.Note{ID: "memo-1", Title: "t", Content: "c", UpdatedAt: time.Now().UTC()},
		core.Note{ID: "task-1", Title: "t", Content: "c", UpdatedAt: time.Now().UTC()},
	)
	require.NoError(t, store.ReplaceAll(ctx, notes))

	event := waitEvent(t, ctx, events)
	assert.Equal(t, core.EventCreate, event.Type)
	assert.Equal(t, "task-1", event.ID, "only IDs matching the pattern should pass")

	// No second event: memo-1 was filtered out.
	select {
	case extra := <-events:
		t.Fatalf("unexpected extra event: %+v", extra)
	case <-time.After(300 * time.Millisecond):
	}
}

func TestWatch_InvalidPattern(t *testing.T) {
	store := NewStore(Config{Path: t.TempDir()})
	require.NoError(t, store.Initialize(context.TODO()))

	_, err := store.Watch(context.TODO(), "[unclosed")
	require.Error(t, err)
}

func TestWatchWorker_Lifecycle(t *testing.T) {
	store := NewStore(Config{Path: t.TempDir()})
	ctx := context.Background()
	require.NoError(t, store.Initialize(ctx))

	events := make(chan core.Event, 1)
	w := newWatchWorker(store, "*", events)

	require.NoError(t, w.Start(ctx))
	assert.Equal(t, worker.StatusRunning, w.State().Status)
	assert.Equal(t, string(worker.TypeGoroutine), w.State().Metadata[worker.MetadataType])

	// A second Start must be rejected while the worker is running.
	require.Error(t, w.Start(ctx))

	stopCtx, cancel := context.WithTimeout(context.Background(), 2*time.Second)
	defer cancel()
	require.NoError(t, w.Stop(stopCtx))

	select {
	case _, open := <-events:
		assert.False(t, open, "events channel should be closed after Stop")
	case <-time.After(2 * time.Second):
		t.Fatal("events channel not closed after Stop")
	}
}

func TestWatch_StopsOnCancel(t *testing.T) {
	store := NewStore(Config{Path: t.TempDir()})
	ctx, cancel := context.WithCancel(context.Background())
	require.NoError(t, store.Initialize(ctx))

	events, err := store.Watch(ctx, "*")
	require.NoError(t, err)

	cancel()

	select {
	case _, open := <-events:
		assert.False(t, open, "events channel should be closed after cancel")
	case <-time.After(2 * time.Second):
		t.Fatal("events channel not closed after cancel")
	}
}
