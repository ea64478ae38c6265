// Package client provides the `tradehist` command-line client.
//
// The CLI talks to the trade-history HTTP API to query trade history and
// to tail the live relay from a terminal. It is primarily intended for
// developers and operators.
//
// # Address configuration
//
// The HTTP base URL is discovered by the application that embeds the
// commands via a BaseURLFunc. When using the standalone binary, it reads
// TRADEHIST_HTTP and defaults to http://127.0.0.1:8080.
//
// Usage
//
//	tradehist trades latest
//	tradehist trades list --owner alice
//	tradehist trades list --owner alice --symbol IBM
//	tradehist trades shares --owner alice
//	tradehist trades notional --owner alice
//	tradehist trades returns --owner alice --current-value 12000
//
//	# Tail the live relay over the websocket gateway
//	tradehist live
//	tradehist live --filter 'json.symbol == "IBM"' --limit 10
//
// Notes
//
//   - live connects to /v1/live, sends {"action":"start"}, and prints every
//     frame until the limit is reached or the process is interrupted.
//   - all other commands use the HTTP query endpoints.
package client
