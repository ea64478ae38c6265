package livesvc

import (
	"context"
	"time"

	mongostore "github.com/alutan/trade-history/internal/storage/mongo"
)

// Record is one broker record as relayed to stream clients.
type Record struct {
	Topic     string `json:"topic"`
	Partition int32  `json:"partition"`
	Offset    int64  `json:"offset"`
	Value     string `json:"value"`
	Timestamp int64  `json:"timestamp"`
}

// Consumer pulls record batches from the broker. Shutdown must be safe to
// call at most once; the Controller guarantees it is.
type Consumer interface {
	Consume(ctx context.Context) ([]Record, error)
	Shutdown()
}

// ConsumerFactory builds one Consumer per session.
type ConsumerFactory func(ctx context.Context) (Consumer, error)

// RecordStore persists parsed purchases. Implemented by mongostore.Store.
type RecordStore interface {
	InsertPurchase(ctx context.Context, p mongostore.StockPurchase, topic string) error
	Ping(ctx context.Context) error
}

// StreamSink is implemented by transports to receive relayed records.
type StreamSink interface {
	Send(Record) error
	Context() context.Context
}

// State is the controller lifecycle state.
type State int32

const (
	StateNotStarted State = iota
	StateRunning
	StatePaused
	StateStopped
)

func (s State) String() string {
	switch s {
	case StateNotStarted:
		return "not_started"
	case StateRunning:
		return "running"
	case StatePaused:
		return "paused"
	case StateStopped:
		return "stopped"
	default:
		return "unknown"
	}
}

// Tunables control queue sizing and loop pacing. Zero values fall back to
// the defaults below.
type Tunables struct {
	// QueueCapacity bounds the FIFO between ingester and dispatcher.
	QueueCapacity int
	// PollInterval is the dispatcher wait per empty-queue poll.
	PollInterval time.Duration
	// EnqueueRetry is how long one enqueue attempt blocks before the
	// ingester re-checks for termination.
	EnqueueRetry time.Duration
	// RatePerSec caps delivery when >0.
	RatePerSec float64
}

func (t Tunables) withDefaults() Tunables {
	if t.QueueCapacity <= 0 {
		t.QueueCapacity = 1024
	}
	if t.PollInterval <= 0 {
		t.PollInterval = time.Second
	}
	if t.EnqueueRetry <= 0 {
		t.EnqueueRetry = time.Second
	}
	return t
}
