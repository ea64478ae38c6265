package runtime

import (
	"context"

	cfgpkg "github.com/alutan/trade-history/internal/config"
	mongostore "github.com/alutan/trade-history/internal/storage/mongo"
	logpkg "github.com/alutan/trade-history/pkg/log"
)

// Options for building the Runtime.
type Options struct {
	Config cfgpkg.Config
	Logger logpkg.Logger
}

// Runtime wires the store, config, and logger for a single-node instance.
type Runtime struct {
	store  *mongostore.Store
	config cfgpkg.Config
	logger logpkg.Logger
}

// Open connects the persistent store and returns a Runtime. The store must
// be reachable at startup; the process does not run degraded.
func Open(ctx context.Context, opts Options) (*Runtime, error) {
	logger := opts.Logger
	if logger == nil {
		logger = logpkg.NewLogger().With(logpkg.Component("runtime"))
	}
	store, err := mongostore.Open(ctx, mongostore.Options{
		URI:            opts.Config.Mongo.URI,
		Database:       opts.Config.Mongo.Database,
		Collection:     opts.Config.Kafka.Topic,
		ConnectTimeout: opts.Config.Mongo.ConnectTimeout(),
	})
	if err != nil {
		return nil, err
	}
	return &Runtime{store: store, config: opts.Config, logger: logger}, nil
}

// Close disconnects the store.
func (r *Runtime) Close(ctx context.Context) error {
	if r.store == nil {
		return nil
	}
	return r.store.Close(ctx)
}

// CheckHealth pings the store.
func (r *Runtime) CheckHealth(ctx context.Context) error {
	return r.store.Ping(ctx)
}

// Store exposes the persistent store for services.
func (r *Runtime) Store() *mongostore.Store { return r.store }

// Config returns the runtime configuration.
func (r *Runtime) Config() cfgpkg.Config { return r.config }

// Logger returns the shared logger.
func (r *Runtime) Logger() logpkg.Logger { return r.logger }
