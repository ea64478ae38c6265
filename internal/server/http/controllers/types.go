package controllers

import livesvc "github.com/alutan/trade-history/internal/services/live"

// Stream gateway wire frames

// commandFrame is one inbound client command on the live socket.
type commandFrame struct {
	Action string `json:"action"`
	// Filter is an optional CEL expression bound when the pipeline is
	// first started.
	Filter string `json:"filter,omitempty"`
}

// recordFrame carries one relayed broker record to the client.
type recordFrame struct {
	Type string `json:"type"`
	livesvc.Record
}

// statusFrame acknowledges an accepted command.
type statusFrame struct {
	Type  string `json:"type"`
	State string `json:"state"`
}

// errorFrame reports a rejected or failed command without closing the
// connection.
type errorFrame struct {
	Type  string `json:"type"`
	Error string `json:"error"`
}
