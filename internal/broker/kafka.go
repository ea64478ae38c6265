package broker

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/twmb/franz-go/pkg/kgo"

	livesvc "github.com/alutan/trade-history/internal/services/live"
	logpkg "github.com/alutan/trade-history/pkg/log"
)

// Config for one Kafka consumer.
type Config struct {
	Brokers []string
	Topic   string
	Group   string
	// PollTimeout bounds each Consume call so callers can re-check for
	// termination between polls.
	PollTimeout time.Duration
}

func (c *Config) withDefaults() {
	if c.PollTimeout <= 0 {
		c.PollTimeout = time.Second
	}
}

// Validate reports missing required fields.
func (c Config) Validate() error {
	if len(c.Brokers) == 0 {
		return errors.New("kafka.brokers is required")
	}
	if c.Topic == "" {
		return errors.New("kafka.topic is required")
	}
	if c.Group == "" {
		return errors.New("kafka.group is required")
	}
	return nil
}

// Kafka consumes one topic through a franz-go client. It implements
// livesvc.Consumer.
type Kafka struct {
	client    *kgo.Client
	cfg       Config
	closeOnce sync.Once
}

// NewKafka builds a consumer and verifies broker reachability with a ping.
// An unreachable broker fails here, before any session goroutine exists.
func NewKafka(ctx context.Context, cfg Config, logger logpkg.Logger) (*Kafka, error) {
	cfg.withDefaults()
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	if logger == nil {
		logger = logpkg.NewLogger().With(logpkg.Component("broker"))
	}
	cl, err := kgo.NewClient(
		kgo.SeedBrokers(cfg.Brokers...),
		kgo.ConsumerGroup(cfg.Group),
		kgo.ConsumeTopics(cfg.Topic),
		kgo.FetchMaxWait(cfg.PollTimeout),
		kgo.WithLogger(&kgoLogger{logger: logger}),
	)
	if err != nil {
		return nil, fmt.Errorf("new kafka client: %w", err)
	}
	if err := cl.Ping(ctx); err != nil {
		cl.Close()
		return nil, fmt.Errorf("kafka ping: %w", err)
	}
	return &Kafka{client: cl, cfg: cfg}, nil
}

// Consume polls one batch of records, waiting up to the configured poll
// timeout. An empty batch with a nil error means nothing arrived in the
// window; callers loop.
func (k *Kafka) Consume(ctx context.Context) ([]livesvc.Record, error) {
	pollCtx, cancel := context.WithTimeout(ctx, k.cfg.PollTimeout)
	defer cancel()
	fetches := k.client.PollFetches(pollCtx)
	if fetches.IsClientClosed() {
		return nil, errors.New("kafka client closed")
	}
	var out []livesvc.Record
	fetches.EachRecord(func(rec *kgo.Record) {
		out = append(out, livesvc.Record{
			Topic:     rec.Topic,
			Partition: rec.Partition,
			Offset:    rec.Offset,
			Value:     string(rec.Value),
			Timestamp: rec.Timestamp.UnixMilli(),
		})
	})
	for _, fe := range fetches.Errors() {
		// The per-poll deadline surfaces as a fetch error; it only means
		// the window elapsed.
		if errors.Is(fe.Err, context.DeadlineExceeded) && ctx.Err() == nil {
			continue
		}
		if errors.Is(fe.Err, context.Canceled) && ctx.Err() != nil {
			return out, ctx.Err()
		}
		return out, fmt.Errorf("fetch %s/%d: %w", fe.Topic, fe.Partition, fe.Err)
	}
	return out, ctx.Err()
}

// Shutdown closes the client and leaves the consumer group. Safe to call
// once; the controller guarantees it is not called twice.
func (k *Kafka) Shutdown() {
	k.closeOnce.Do(k.client.Close)
}
