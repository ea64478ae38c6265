package serverrun

import (
	"context"
	"sync"

	"github.com/alutan/trade-history/internal/broker"
	cfgpkg "github.com/alutan/trade-history/internal/config"
	"github.com/alutan/trade-history/internal/runtime"
	httpserver "github.com/alutan/trade-history/internal/server/http"
	livesvc "github.com/alutan/trade-history/internal/services/live"
	tradesvc "github.com/alutan/trade-history/internal/services/trades"
	logpkg "github.com/alutan/trade-history/pkg/log"
)

type Options struct {
	HTTPAddr string
	Config   cfgpkg.Config
}

// Run starts the HTTP server and blocks until ctx is cancelled. The caller
// owns signal handling; pass a signal-aware context to stop on interrupt.
func Run(ctx context.Context, opts Options) error {
	if opts.HTTPAddr == "" {
		opts.HTTPAddr = opts.Config.HTTPAddr
	}

	logCfg := &logpkg.Config{Level: opts.Config.Log.Level, Format: opts.Config.Log.Format}
	procLogger, err := logpkg.ApplyConfig(logCfg)
	if err != nil {
		procLogger = logpkg.NewLogger(logpkg.WithLevel(logpkg.InfoLevel), logpkg.WithFormatter(&logpkg.TextFormatter{}))
	}

	rt, err := runtime.Open(ctx, runtime.Options{Config: opts.Config, Logger: procLogger})
	if err != nil {
		return err
	}
	defer func() { _ = rt.Close(context.Background()) }()

	procLogger.Info("Starting trade-history server",
		logpkg.Str("http", opts.HTTPAddr),
		logpkg.Str("kafka_topic", opts.Config.Kafka.Topic),
		logpkg.Str("kafka_group", opts.Config.Kafka.Group),
		logpkg.Str("mongo_db", opts.Config.Mongo.Database),
		logpkg.Int("queue_cap", opts.Config.Live.QueueCapacity),
		logpkg.Str("level", logCfg.Level),
		logpkg.Str("format", logCfg.Format),
	)

	// One broker consumer per stream session; each joins the same group.
	consumers := func(cctx context.Context) (livesvc.Consumer, error) {
		return broker.NewKafka(cctx, broker.Config{
			Brokers:     opts.Config.Kafka.Brokers,
			Topic:       opts.Config.Kafka.Topic,
			Group:       opts.Config.Kafka.Group,
			PollTimeout: opts.Config.Kafka.PollTimeout(),
		}, procLogger.With(logpkg.Component("broker")))
	}

	liveSvc := livesvc.NewWithLogger(rt.Store(), consumers, livesvc.Tunables{
		QueueCapacity: opts.Config.Live.QueueCapacity,
		PollInterval:  opts.Config.Live.PollInterval(),
		EnqueueRetry:  opts.Config.Live.EnqueueRetry(),
		RatePerSec:    opts.Config.Live.RatePerSec,
	}, procLogger.With(logpkg.Component("live")))
	tradesSvc := tradesvc.NewWithLogger(rt.Store(), procLogger.With(logpkg.Component("trades")))

	hsrv := httpserver.New(rt, liveSvc, tradesSvc)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		if err := hsrv.ListenAndServe(ctx, opts.HTTPAddr); err != nil && ctx.Err() == nil {
			procLogger.Error("http server error", logpkg.Err(err))
		}
	}()

	<-ctx.Done()
	hsrv.Close()
	wg.Wait()
	return nil
}
