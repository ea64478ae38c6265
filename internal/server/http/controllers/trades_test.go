package controllers

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"

	tradesvc "github.com/alutan/trade-history/internal/services/trades"
	mongostore "github.com/alutan/trade-history/internal/storage/mongo"
)

type memTradeStore struct {
	trades []mongostore.StockPurchase
}

func (m *memTradeStore) LatestBuy(context.Context) (mongostore.StockPurchase, error) {
	if len(m.trades) == 0 {
		return mongostore.StockPurchase{}, errors.New("no documents")
	}
	return m.trades[len(m.trades)-1], nil
}

func (m *memTradeStore) TradesByOwner(_ context.Context, owner string) ([]mongostore.StockPurchase, error) {
	var out []mongostore.StockPurchase
	for _, t := range m.trades {
		if t.Owner == owner {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *memTradeStore) TradesForSymbol(_ context.Context, owner, symbol string) ([]mongostore.StockPurchase, error) {
	var out []mongostore.StockPurchase
	for _, t := range m.trades {
		if t.Owner == owner && t.Symbol == symbol {
			out = append(out, t)
		}
	}
	return out, nil
}

func newTradesServer(t *testing.T) *httptest.Server {
	t.Helper()
	store := &memTradeStore{trades: []mongostore.StockPurchase{
		{ID: "t-1", Owner: "alice", Symbol: "IBM", Shares: 5, Price: 100, Notional: 500},
		{ID: "t-2", Owner: "alice", Symbol: "T", Shares: 10, Price: 20, Notional: 200},
	}}
	mux := http.NewServeMux()
	NewTradesController(nil, tradesvc.New(store)).RegisterRoutes(mux)
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return srv
}

func getJSON(t *testing.T, url string, out any) int {
	t.Helper()
	resp, err := http.Get(url)
	if err != nil {
		t.Fatalf("get %s: %v", url, err)
	}
	defer resp.Body.Close()
	if err := json.NewDecoder(resp.Body).Decode(out); err != nil {
		t.Fatalf("decode %s: %v", url, err)
	}
	return resp.StatusCode
}

func TestLatestBuyEndpoint(t *testing.T) {
	srv := newTradesServer(t)
	var p mongostore.StockPurchase
	if code := getJSON(t, srv.URL+"/v1/trades/latest", &p); code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if p.ID != "t-2" {
		t.Fatalf("latest buy = %q, want t-2", p.ID)
	}
}

func TestTradesByOwnerEndpoint(t *testing.T) {
	srv := newTradesServer(t)
	var body struct {
		Owner  string                     `json:"owner"`
		Trades []mongostore.StockPurchase `json:"trades"`
	}
	if code := getJSON(t, srv.URL+"/v1/trades/alice", &body); code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if body.Owner != "alice" || len(body.Trades) != 2 {
		t.Fatalf("unexpected body: %+v", body)
	}
}

func TestSymbolSharesEndpoint(t *testing.T) {
	srv := newTradesServer(t)
	var body struct {
		Shares int `json:"shares"`
	}
	if code := getJSON(t, srv.URL+"/v1/shares/alice/IBM", &body); code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if body.Shares != 5 {
		t.Fatalf("shares = %d, want 5", body.Shares)
	}
}

func TestPortfolioSharesEndpoint(t *testing.T) {
	srv := newTradesServer(t)
	var body struct {
		Shares map[string]int `json:"shares"`
	}
	if code := getJSON(t, srv.URL+"/v1/shares/alice", &body); code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if body.Shares["IBM"] != 5 || body.Shares["T"] != 10 {
		t.Fatalf("portfolio = %v", body.Shares)
	}
}

func TestNotionalEndpoint(t *testing.T) {
	srv := newTradesServer(t)
	var body struct {
		Notional float64 `json:"notional"`
	}
	if code := getJSON(t, srv.URL+"/v1/notional/alice", &body); code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if body.Notional != 700 {
		t.Fatalf("notional = %v, want 700", body.Notional)
	}
}

func TestReturnsEndpoint(t *testing.T) {
	srv := newTradesServer(t)
	var body struct {
		ROI float64 `json:"roi"`
	}
	if code := getJSON(t, srv.URL+"/v1/returns/alice?currentValue=1400", &body); code != http.StatusOK {
		t.Fatalf("status = %d", code)
	}
	if body.ROI != 100 {
		t.Fatalf("roi = %v, want 100", body.ROI)
	}

	var errBody map[string]string
	if code := getJSON(t, srv.URL+"/v1/returns/alice", &errBody); code != http.StatusBadRequest {
		t.Fatalf("missing currentValue status = %d, want 400", code)
	}
}
