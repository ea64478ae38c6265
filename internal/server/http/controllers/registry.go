package controllers

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus/promhttp"

	"github.com/alutan/trade-history/internal/runtime"
	livesvc "github.com/alutan/trade-history/internal/services/live"
	tradesvc "github.com/alutan/trade-history/internal/services/trades"
)

// ControllerRegistry manages all HTTP controllers.
//
// It provides a centralized way to register all controller routes
// and manages the lifecycle of individual controllers.
type ControllerRegistry struct {
	general *GeneralController
	trades  *TradesController
	live    *LiveController
}

// NewControllerRegistry creates a new controller registry.
func NewControllerRegistry(rt *runtime.Runtime, liveSvc *livesvc.Service, tradesSvc *tradesvc.Service) *ControllerRegistry {
	return &ControllerRegistry{
		general: NewGeneralController(rt),
		trades:  NewTradesController(rt, tradesSvc),
		live:    NewLiveController(rt, liveSvc),
	}
}

// RegisterAllRoutes registers all controller routes with the given mux.
//
// This sets up the health check, Prometheus metrics, the trade history
// query endpoints, and the websocket stream gateway.
func (r *ControllerRegistry) RegisterAllRoutes(mux *http.ServeMux) {
	r.general.RegisterRoutes(mux)
	r.trades.RegisterRoutes(mux)
	r.live.RegisterRoutes(mux)
	mux.Handle("/metrics", promhttp.Handler())
}
