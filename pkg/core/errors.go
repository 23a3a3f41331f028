package core

import "errors"

// Common errors. Callers discriminate with errors.Is; the concrete
// message carries the detail (which field failed validation, which
// operation hit the disk).
var (
	// ErrNotFound is returned when an operation references an unknown note ID.
	ErrNotFound = errors.New("note not found")

	// ErrValidation is returned when a create rejects its input
	// (missing title or content).
	ErrValidation = errors.New("validation failed")

	// ErrStorage wraps I/O or serialization failures from the store.
	// When a mutating operation returns it, the caller's in-memory view
	// must be treated as stale: reload, do not retry with the old copy.
	ErrStorage = errors.New("storage failure")
)
