// Package serverrun boots the trade-history server: it opens the runtime,
// builds the live and trades services, and serves the HTTP API until the
// context is cancelled.
package serverrun
