// Package runtime wires the Mongo store, config, and logger into a single
// trade-history instance. It exposes Open/Close, a health check hitting the
// store, and accessors used by the services and the HTTP server.
//
// Example:
//
//	cfg := config.Default()
//	rt, _ := runtime.Open(ctx, runtime.Options{Config: cfg})
//	defer rt.Close(context.Background())
//	_ = rt.CheckHealth(context.Background())
package runtime
