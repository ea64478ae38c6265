package livesvc

import (
	"context"
	"fmt"

	logpkg "github.com/alutan/trade-history/pkg/log"
)

// Service builds stream controllers over a process-scoped store handle and a
// consumer factory. One Controller is built per stream session; the store
// is shared and checked for reachability before any session goroutine runs.
type Service struct {
	store     RecordStore
	consumers ConsumerFactory
	tunables  Tunables
	logger    logpkg.Logger
}

// New returns a Service using a default logger.
func New(store RecordStore, consumers ConsumerFactory, t Tunables) *Service {
	return NewWithLogger(store, consumers, t, nil)
}

// NewWithLogger constructs the service with an injected logger.
func NewWithLogger(store RecordStore, consumers ConsumerFactory, t Tunables, logger logpkg.Logger) *Service {
	if logger == nil {
		logger = logpkg.NewLogger().With(logpkg.Component("live"))
	}
	return &Service{store: store, consumers: consumers, tunables: t.withDefaults(), logger: logger}
}

// OpenController builds a controller for one session. The store must answer
// a ping and the consumer must be buildable; on any failure no controller is
// returned and no goroutines are spawned. filter is an optional CEL
// expression evaluated per record; onError is invoked at most once when a
// loop dies (the controller is already stopping when it fires).
func (s *Service) OpenController(ctx context.Context, sink StreamSink, filter string, onError func(error)) (*Controller, error) {
	if err := s.store.Ping(ctx); err != nil {
		return nil, fmt.Errorf("store unavailable: %w", err)
	}
	f, err := newCELFilter(filter)
	if err != nil {
		return nil, fmt.Errorf("bad filter: %w", err)
	}
	consumer, err := s.consumers(ctx)
	if err != nil {
		return nil, fmt.Errorf("build consumer: %w", err)
	}
	return newController(s.store, consumer, sink, f, s.tunables, s.logger, onError), nil
}
