package controllers

import (
	"net/http"

	"github.com/alutan/trade-history/internal/runtime"
)

// GeneralController handles general HTTP endpoints like the health check.
type GeneralController struct {
	rt *runtime.Runtime
}

// NewGeneralController creates a new general controller.
func NewGeneralController(rt *runtime.Runtime) *GeneralController {
	return &GeneralController{rt: rt}
}

// RegisterRoutes registers general routes with the given mux.
func (c *GeneralController) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("/v1/healthz", c.handleHealth)
}

// handleHealth returns the health status of the service.
//
// Returns 200 OK with {"status": "ok"} when the store answers a ping,
// 503 Service Unavailable otherwise.
func (c *GeneralController) handleHealth(w http.ResponseWriter, r *http.Request) {
	if err := c.rt.CheckHealth(r.Context()); err != nil {
		writeError(w, http.StatusServiceUnavailable, "not_serving")
		return
	}
	writeJSON(w, map[string]string{"status": "ok"})
}
