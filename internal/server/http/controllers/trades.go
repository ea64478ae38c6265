package controllers

import (
	"net/http"

	"github.com/alutan/trade-history/internal/runtime"
	tradesvc "github.com/alutan/trade-history/internal/services/trades"
)

// TradesController handles the trade history query endpoints.
type TradesController struct {
	rt  *runtime.Runtime
	svc *tradesvc.Service
}

// NewTradesController creates a new trades controller.
func NewTradesController(rt *runtime.Runtime, svc *tradesvc.Service) *TradesController {
	return &TradesController{rt: rt, svc: svc}
}

// RegisterRoutes registers trade query routes with the given mux.
//
// This sets up HTTP endpoints for:
// - Latest recorded purchase (/v1/trades/latest)
// - Per-owner trade history (/v1/trades/{owner}, /v1/trades/{owner}/{symbol})
// - Share counts (/v1/shares/{owner}, /v1/shares/{owner}/{symbol})
// - Portfolio notional and returns (/v1/notional/{owner}, /v1/returns/{owner})
func (c *TradesController) RegisterRoutes(mux *http.ServeMux) {
	mux.HandleFunc("GET /v1/trades/latest", c.handleLatestBuy)
	mux.HandleFunc("GET /v1/trades/{owner}", c.handleTradesByOwner)
	mux.HandleFunc("GET /v1/trades/{owner}/{symbol}", c.handleTradesForSymbol)
	mux.HandleFunc("GET /v1/shares/{owner}", c.handlePortfolioShares)
	mux.HandleFunc("GET /v1/shares/{owner}/{symbol}", c.handleSymbolShares)
	mux.HandleFunc("GET /v1/notional/{owner}", c.handleNotional)
	mux.HandleFunc("GET /v1/returns/{owner}", c.handleReturns)
}

func (c *TradesController) handleLatestBuy(w http.ResponseWriter, r *http.Request) {
	p, err := c.svc.LatestBuy(r.Context())
	if err != nil {
		writeError(w, http.StatusNotFound, "No trades recorded")
		return
	}
	writeJSON(w, p)
}

func (c *TradesController) handleTradesByOwner(w http.ResponseWriter, r *http.Request) {
	owner := r.PathValue("owner")
	trades, err := c.svc.TradesByOwner(r.Context(), owner)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to query trades")
		return
	}
	writeJSON(w, map[string]any{"owner": owner, "trades": trades})
}

func (c *TradesController) handleTradesForSymbol(w http.ResponseWriter, r *http.Request) {
	owner := r.PathValue("owner")
	symbol := r.PathValue("symbol")
	trades, err := c.svc.TradesForSymbol(r.Context(), owner, symbol)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to query trades")
		return
	}
	writeJSON(w, map[string]any{"owner": owner, "symbol": symbol, "trades": trades})
}

func (c *TradesController) handlePortfolioShares(w http.ResponseWriter, r *http.Request) {
	owner := r.PathValue("owner")
	shares, err := c.svc.PortfolioShares(r.Context(), owner)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to query shares")
		return
	}
	writeJSON(w, map[string]any{"owner": owner, "shares": shares})
}

func (c *TradesController) handleSymbolShares(w http.ResponseWriter, r *http.Request) {
	owner := r.PathValue("owner")
	symbol := r.PathValue("symbol")
	shares, err := c.svc.SymbolShares(r.Context(), owner, symbol)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to query shares")
		return
	}
	writeJSON(w, map[string]any{"owner": owner, "symbol": symbol, "shares": shares})
}

func (c *TradesController) handleNotional(w http.ResponseWriter, r *http.Request) {
	owner := r.PathValue("owner")
	notional, err := c.svc.TotalNotional(r.Context(), owner)
	if err != nil {
		writeError(w, http.StatusInternalServerError, "Failed to query notional")
		return
	}
	writeJSON(w, map[string]any{"owner": owner, "notional": notional})
}

// handleReturns reports portfolio return given the current market value in
// the currentValue query parameter.
func (c *TradesController) handleReturns(w http.ResponseWriter, r *http.Request) {
	owner := r.PathValue("owner")
	current, ok := parseFloat(r.URL.Query().Get("currentValue"))
	if !ok {
		writeError(w, http.StatusBadRequest, "currentValue query parameter is required")
		return
	}
	roi, err := c.svc.ROI(r.Context(), owner, current)
	if err != nil {
		writeError(w, http.StatusNotFound, err.Error())
		return
	}
	writeJSON(w, map[string]any{"owner": owner, "currentValue": current, "roi": roi})
}
