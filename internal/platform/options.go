package platform

import (
	"log/slog"
	"time"

	"github.com/rmarques/notekeeper/pkg/core"
)

// options holds the internal configuration for the notekeeper service.
type options struct {
	store    core.Store
	logger   *slog.Logger
	filename string
	clock    func() time.Time
	idSource func() string
}

// Option defines a functional option for configuring notekeeper.
type Option func(*options)

// defaultOptions returns the default configuration.
func defaultOptions() *options {
	return &options{
		store:    nil,
		logger:   nil,
		filename: "",
	}
}

// WithLogger sets the logger for the service and the store.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

// WithStore allows injecting a custom storage adapter (e.g. mock, SQL).
// If provided, the default filesystem adapter will be skipped.
func WithStore(store core.Store) Option {
	return func(o *options) {
		o.store = store
	}
}

// WithFilename overrides the backing filename inside the data directory.
// Defaults to "notes.json" (handled by the adapter).
func WithFilename(name string) Option {
	return func(o *options) {
		o.filename = name
	}
}

// WithClock overrides the service's time source (useful for testing).
func WithClock(now func() time.Time) Option {
	return func(o *options) {
		o.clock = now
	}
}

// WithIDGenerator overrides the service's note ID generator.
// The only hard requirement is uniqueness within the store.
func WithIDGenerator(newID func() string) Option {
	return func(o *options) {
		o.idSource = newID
	}
}
