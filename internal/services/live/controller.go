package livesvc

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"

	"golang.org/x/time/rate"

	"github.com/alutan/trade-history/internal/metrics"
	mongostore "github.com/alutan/trade-history/internal/storage/mongo"
	logpkg "github.com/alutan/trade-history/pkg/log"
)

// ErrStopped is returned by transitions attempted after Stop.
var ErrStopped = errors.New("controller stopped")

// Controller owns one session's relay pipeline: an ingest loop, a dispatch
// loop, and the bounded queue between them. Transitions follow
// NotStarted -> Running <-> Paused -> Stopped; Stopped is terminal and
// illegal transitions are rejected.
type Controller struct {
	store    RecordStore
	consumer Consumer
	sink     StreamSink
	filter   celFilter
	queue    *Queue
	limiter  *rate.Limiter
	tunables Tunables
	logger   logpkg.Logger
	onError  func(error)

	mu      sync.Mutex
	started bool
	state   atomic.Int32

	// done closes exactly once on Stop; both loops watch it.
	done   chan struct{}
	resume chan struct{}
	ctx    context.Context
	cancel context.CancelFunc
	wg     sync.WaitGroup

	stopOnce sync.Once
	shutOnce sync.Once
	failOnce sync.Once
}

func newController(store RecordStore, consumer Consumer, sink StreamSink, filter celFilter, t Tunables, logger logpkg.Logger, onError func(error)) *Controller {
	ctx, cancel := context.WithCancel(context.Background())
	var limiter *rate.Limiter
	if t.RatePerSec > 0 {
		limiter = rate.NewLimiter(rate.Limit(t.RatePerSec), 1)
	}
	c := &Controller{
		store:    store,
		consumer: consumer,
		sink:     sink,
		filter:   filter,
		queue:    NewQueue(t.QueueCapacity),
		limiter:  limiter,
		tunables: t,
		logger:   logger,
		onError:  onError,
		done:     make(chan struct{}),
		resume:   make(chan struct{}, 1),
		ctx:      ctx,
		cancel:   cancel,
	}
	c.state.Store(int32(StateNotStarted))
	return c
}

// State returns the current lifecycle state.
func (c *Controller) State() State { return State(c.state.Load()) }

// Start launches the ingest and dispatch loops. Calling Start on a running
// controller is a no-op; on a paused one it resumes delivery. A stopped
// controller cannot be restarted.
func (c *Controller) Start() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch c.State() {
	case StateRunning:
		return nil
	case StatePaused:
		return c.resumeLocked()
	case StateStopped:
		return ErrStopped
	}
	c.state.Store(int32(StateRunning))
	c.started = true
	c.wg.Add(2)
	go c.runIngest()
	go c.runDispatch()
	c.logger.Info("controller started", logpkg.Int("queue_cap", c.queue.Cap()))
	return nil
}

// Pause halts delivery. Ingestion and persistence keep running so queued
// records are retained for the next resume. Pausing a paused controller is
// a no-op.
func (c *Controller) Pause() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch c.State() {
	case StatePaused:
		return nil
	case StateRunning:
		c.state.Store(int32(StatePaused))
		c.logger.Info("controller paused", logpkg.Int("queued", c.queue.Len()))
		return nil
	case StateStopped:
		return ErrStopped
	default:
		return errors.New("controller not started")
	}
}

// Resume restarts delivery after a Pause. Queued records drain in order.
func (c *Controller) Resume() error {
	c.mu.Lock()
	defer c.mu.Unlock()
	switch c.State() {
	case StateRunning:
		return nil
	case StatePaused:
		return c.resumeLocked()
	case StateStopped:
		return ErrStopped
	default:
		return errors.New("controller not started")
	}
}

func (c *Controller) resumeLocked() error {
	c.state.Store(int32(StateRunning))
	select {
	case c.resume <- struct{}{}:
	default:
	}
	c.logger.Info("controller resumed", logpkg.Int("queued", c.queue.Len()))
	return nil
}

// Stop terminates the pipeline. It signals both loops and returns without
// waiting for them; loop waits are bounded so exit is prompt. Safe to call
// more than once. The consumer is shut down exactly once, by the ingest
// loop on its way out, or here when the loops never ran.
func (c *Controller) Stop() {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.stopOnce.Do(func() {
		c.state.Store(int32(StateStopped))
		close(c.done)
		c.cancel()
		if !c.started {
			c.shutOnce.Do(c.consumer.Shutdown)
		}
		c.logger.Info("controller stopped")
	})
}

// Wait blocks until both loops have exited. Stop does not wait; sessions
// that need a clean handoff call Stop then Wait.
func (c *Controller) Wait() { c.wg.Wait() }

// fail stops the pipeline and reports err upward at most once.
func (c *Controller) fail(err error) {
	c.failOnce.Do(func() {
		c.logger.Error("relay pipeline failed", logpkg.Err(err))
		c.Stop()
		if c.onError != nil {
			c.onError(err)
		}
	})
}

// runIngest pulls batches from the consumer, persists every record, and
// enqueues it for delivery. Broker and store errors are fatal to the
// pipeline; unparseable payloads are logged and persisted raw.
func (c *Controller) runIngest() {
	defer c.wg.Done()
	defer c.shutOnce.Do(c.consumer.Shutdown)
	for {
		select {
		case <-c.done:
			return
		default:
		}
		recs, err := c.consumer.Consume(c.ctx)
		if err != nil {
			if c.ctx.Err() != nil {
				return
			}
			c.fail(fmt.Errorf("consume: %w", err))
			return
		}
		for _, rec := range recs {
			metrics.RecordsIngested.WithLabelValues(rec.Topic).Inc()
			p, perr := mongostore.ParsePurchase(rec.Value)
			if perr != nil {
				c.logger.Warn("unparseable trade payload",
					logpkg.Str("topic", rec.Topic), logpkg.Int64("offset", rec.Offset), logpkg.Err(perr))
			}
			// Persist regardless of parse outcome; a failed parse still
			// carries the raw payload.
			if serr := c.store.InsertPurchase(c.ctx, p, rec.Topic); serr != nil {
				if c.ctx.Err() != nil {
					return
				}
				c.fail(fmt.Errorf("persist trade: %w", serr))
				return
			}
			metrics.RecordsPersisted.WithLabelValues(rec.Topic).Inc()
			// Full queue blocks the ingester; each attempt is bounded so
			// termination is still observed promptly.
			for !c.queue.Offer(rec, c.tunables.EnqueueRetry) {
				select {
				case <-c.done:
					return
				default:
				}
			}
		}
	}
}

// runDispatch drains the queue into the sink while Running. While Paused it
// blocks on the resume signal; records already polled before a pause lands
// are still delivered.
func (c *Controller) runDispatch() {
	defer c.wg.Done()
	for {
		switch c.State() {
		case StatePaused:
			select {
			case <-c.resume:
			case <-c.done:
				return
			}
			continue
		case StateStopped:
			return
		}
		rec, ok := c.queue.Poll(c.tunables.PollInterval)
		if !ok {
			continue
		}
		if !c.filter.Eval(rec) {
			metrics.RecordsFiltered.Inc()
			continue
		}
		if c.limiter != nil {
			if err := c.limiter.Wait(c.ctx); err != nil {
				return
			}
		}
		if err := c.sink.Send(rec); err != nil {
			c.fail(fmt.Errorf("push record: %w", err))
			return
		}
		metrics.RecordsDelivered.Inc()
	}
}
