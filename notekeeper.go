package notekeeper

import (
	"log/slog"
	"time"

	"github.com/rmarques/notekeeper/internal/platform"
	"github.com/rmarques/notekeeper/pkg/core"
)

// --- Configuration ---

// Option defines a functional option for configuring notekeeper.
type Option = platform.Option

// WithLogger sets the logger for the service and the store.
func WithLogger(logger *slog.Logger) Option {
	return platform.WithLogger(logger)
}

// WithStore allows injecting a custom storage adapter.
func WithStore(store core.Store) Option {
	return platform.WithStore(store)
}

// WithFilename overrides the backing filename inside the data directory.
func WithFilename(name string) Option {
	return platform.WithFilename(name)
}

// WithClock overrides the time source (useful for testing).
func WithClock(now func() time.Time) Option {
	return platform.WithClock(now)
}

// WithIDGenerator overrides the note ID generator.
func WithIDGenerator(newID func() string) Option {
	return platform.WithIDGenerator(newID)
}

// --- Factory ---

// New creates a new notekeeper Service rooted at the given data directory.
func New(path string, opts ...Option) (*core.Service, error) {
	return platform.New(path, opts...)
}

// Init initializes a store explicitly, without a service.
func Init(path string, opts ...Option) (core.Store, error) {
	return platform.Init(path, opts...)
}
