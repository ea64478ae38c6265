// Package log provides the structured logging facade used across tradehist.
//
// The package exposes a small Logger interface with leveled methods and a
// simple Field type for structured context.
//
// Quick start
//
//	l := log.NewLogger(
//	    log.WithLevel(log.InfoLevel),
//	    log.WithFormatter(&log.TextFormatter{}),
//	    log.WithOutput(log.NewConsoleOutput()),
//	)
//	l = l.With(log.Component("server"), log.Str("topic", "stocktrader"))
//	l.Info("server started", log.Int("port", 8080))
//
// Use ApplyConfig to build a logger from a declarative Config, supporting JSON
// or text formatting.
package log
