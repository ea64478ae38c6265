// Package httpserver exposes the trade-history HTTP surface: the REST query
// endpoints, the health check, Prometheus metrics, and the /v1/live
// websocket stream gateway. Routes live in the controllers subpackage; this
// package owns the mux, CORS, and server lifecycle.
package httpserver
