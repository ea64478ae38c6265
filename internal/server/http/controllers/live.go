package controllers

import (
	"net/http"

	"github.com/gorilla/websocket"

	"github.com/alutan/trade-history/internal/metrics"
	"github.com/alutan/trade-history/internal/runtime"
	livesvc "github.com/alutan/trade-history/internal/services/live"
	"github.com/alutan/trade-history/pkg/id"
	logpkg "github.com/alutan/trade-history/pkg/log"
)

// LiveController upgrades /v1/live connections and hands each one to a
// session. One websocket client drives one relay pipeline.
type LiveController struct {
	rt       *runtime.Runtime
	svc      *livesvc.Service
	logger   logpkg.Logger
	ids      *id.Generator
	upgrader websocket.Upgrader
}

// NewLiveController creates a new live stream controller.
func NewLiveController(rt *runtime.Runtime, svc *livesvc.Service) *LiveController {
	var logger logpkg.Logger
	if rt != nil {
		logger = rt.Logger()
	} else {
		logger = logpkg.NewLogger()
	}
	return &LiveController{
		rt:     rt,
		svc:    svc,
		logger: logger.With(logpkg.Component("live-gateway")),
		ids:    id.NewGenerator(),
		upgrader: websocket.Upgrader{
			// Browser clients connect cross-origin; auth is out of band.
			CheckOrigin: func(*http.Request) bool { return true },
		},
	}
}

// RegisterRoutes registers the stream gateway route with the given mux.
func (c *LiveController) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /v1/live", c.handleLive)
}

func (c *LiveController) handleLive(w http.ResponseWriter, r *http.Request) {
	conn, err := c.upgrader.Upgrade(w, r, nil)
	if err != nil {
		// Upgrade already wrote the HTTP error.
		c.logger.Warn("websocket upgrade failed", logpkg.Err(err))
		return
	}
	sid := c.ids.Next().String()
	sess := newSession(sid, conn, c.svc, c.logger.With(logpkg.Str("session", sid)))
	metrics.SessionsActive.Inc()
	defer metrics.SessionsActive.Dec()
	sess.run(r.Context())
}
