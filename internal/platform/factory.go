package platform

import (
	"context"

	"github.com/rmarques/notekeeper/pkg/adapters/fs"
	"github.com/rmarques/notekeeper/pkg/core"
)

// New wires a core.Service to a ready store.
//
//	svc, err := notekeeper.New("./data", notekeeper.WithLogger(logger))
//
// The path argument is adapter-specific (a directory for the default
// filesystem adapter).
func New(path string, opts ...Option) (*core.Service, error) {
	store, err := Init(path, opts...)
	if err != nil {
		return nil, err
	}

	// Parse again here for the service-side knobs.
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	var svcOpts []core.ServiceOption
	if o.logger != nil {
		svcOpts = append(svcOpts, core.WithServiceLogger(o.logger))
	}
	if o.clock != nil {
		svcOpts = append(svcOpts, core.WithClock(o.clock))
	}
	if o.idSource != nil {
		svcOpts = append(svcOpts, core.WithIDSource(o.idSource))
	}

	return core.NewService(store, svcOpts...), nil
}

// Init builds and initializes a store explicitly, without a service.
func Init(path string, opts ...Option) (core.Store, error) {
	o := defaultOptions()
	for _, opt := range opts {
		opt(o)
	}

	store := o.store
	if store == nil {
		store = fs.NewStore(fs.Config{
			Path:     path,
			Filename: o.filename,
			Logger:   o.logger,
		})
	}

	if err := store.Initialize(context.Background()); err != nil {
		return nil, err
	}
	return store, nil
}
