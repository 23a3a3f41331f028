package core

import "context"

// Store defines the contract for persisting the note collection.
// Adhering to this interface keeps the core independent of the
// underlying storage mechanism (filesystem, SQL, S3, etc).
//
// The collection is read and written whole. There is no per-record
// access at this layer: the service loads a snapshot, transforms it,
// and replaces it. That discipline is what makes the merge semantics
// safe against stale in-memory copies.
type Store interface {
	// Load reads the persisted collection. A missing or damaged backing
	// resource is repaired in place (see the adapter for the recovery
	// policy); Load only fails on genuine I/O errors.
	Load(ctx context.Context) ([]Note, error)

	// ReplaceAll persists the given collection as the new durable state,
	// atomically with respect to crashes. On failure the previous durable
	// state is intact and the error is returned, never swallowed.
	ReplaceAll(ctx context.Context, notes []Note) error

	// Initialize ensures the underlying storage is ready
	// (e.g. create directories, seed an empty collection).
	Initialize(ctx context.Context) error
}

// Watchable defines an interface for stores that can report external
// changes to the collection.
type Watchable interface {
	// Watch emits an Event per changed note until ctx is cancelled.
	// The pattern is a glob matched against note IDs; "*" matches all.
	Watch(ctx context.Context, pattern string) (<-chan Event, error)
}
