// Package livesvc implements the live trade relay consumed by the stream
// gateway. Each session owns a Controller, which runs two loops over a
// bounded FIFO queue: an Ingester that pulls record batches from the broker,
// persists every one (raw when the payload fails to parse), and enqueues it,
// and a Dispatcher that drains the queue into the session's sink while the
// controller is running.
//
// Example:
//
//	svc := livesvc.NewWithLogger(store, consumers, cfg.Live, logger)
//	ctrl, _ := svc.OpenController(ctx, sink, "", func(err error) { ... })
//	_ = ctrl.Start()
//	...
//	ctrl.Stop()
//
// Pause stops delivery only; ingestion and persistence keep running so no
// broker records are lost while a viewer looks away. Stop is terminal and
// shuts the consumer down exactly once.
package livesvc
