package tradesvc

import (
	"context"
	"errors"
	"testing"

	mongostore "github.com/alutan/trade-history/internal/storage/mongo"
)

type memStore struct {
	trades []mongostore.StockPurchase
}

func (m *memStore) LatestBuy(context.Context) (mongostore.StockPurchase, error) {
	if len(m.trades) == 0 {
		return mongostore.StockPurchase{}, errors.New("no documents")
	}
	return m.trades[len(m.trades)-1], nil
}

func (m *memStore) TradesByOwner(_ context.Context, owner string) ([]mongostore.StockPurchase, error) {
	var out []mongostore.StockPurchase
	for _, t := range m.trades {
		if t.Owner == owner {
			out = append(out, t)
		}
	}
	return out, nil
}

func (m *memStore) TradesForSymbol(_ context.Context, owner, symbol string) ([]mongostore.StockPurchase, error) {
	var out []mongostore.StockPurchase
	for _, t := range m.trades {
		if t.Owner == owner && t.Symbol == symbol {
			out = append(out, t)
		}
	}
	return out, nil
}

func newServiceForTest() *Service {
	return New(&memStore{trades: []mongostore.StockPurchase{
		{ID: "t-1", Owner: "alice", Symbol: "IBM", Shares: 5, Price: 100, Notional: 500},
		{ID: "t-2", Owner: "alice", Symbol: "IBM", Shares: -2, Price: 110, Notional: -220},
		{ID: "t-3", Owner: "alice", Symbol: "T", Shares: 10, Price: 20},
		{ID: "t-4", Owner: "bob", Symbol: "IBM", Shares: 1, Price: 100, Notional: 100},
	}})
}

func TestLatestBuy(t *testing.T) {
	p, err := newServiceForTest().LatestBuy(context.Background())
	if err != nil {
		t.Fatalf("latest buy: %v", err)
	}
	if p.ID != "t-4" {
		t.Fatalf("latest buy = %q, want t-4", p.ID)
	}
}

func TestTradesByOwnerRequiresOwner(t *testing.T) {
	if _, err := newServiceForTest().TradesByOwner(context.Background(), ""); err == nil {
		t.Fatal("expected error for empty owner")
	}
}

func TestSymbolShares(t *testing.T) {
	n, err := newServiceForTest().SymbolShares(context.Background(), "alice", "IBM")
	if err != nil {
		t.Fatalf("symbol shares: %v", err)
	}
	if n != 3 {
		t.Fatalf("alice IBM shares = %d, want 3", n)
	}
}

func TestPortfolioShares(t *testing.T) {
	shares, err := newServiceForTest().PortfolioShares(context.Background(), "alice")
	if err != nil {
		t.Fatalf("portfolio shares: %v", err)
	}
	if shares["IBM"] != 3 || shares["T"] != 10 {
		t.Fatalf("portfolio = %v", shares)
	}
}

func TestTotalNotionalDerivesMissingValues(t *testing.T) {
	// t-3 carries no notional; 10 shares at 20 contributes 200.
	total, err := newServiceForTest().TotalNotional(context.Background(), "alice")
	if err != nil {
		t.Fatalf("total notional: %v", err)
	}
	if total != 480 {
		t.Fatalf("notional = %v, want 480", total)
	}
}

func TestROI(t *testing.T) {
	svc := newServiceForTest()
	roi, err := svc.ROI(context.Background(), "alice", 960)
	if err != nil {
		t.Fatalf("roi: %v", err)
	}
	if roi != 100 {
		t.Fatalf("roi = %v, want 100", roi)
	}
	if _, err := svc.ROI(context.Background(), "nobody", 100); !errors.Is(err, ErrNoTrades) {
		t.Fatalf("roi for unknown owner = %v, want ErrNoTrades", err)
	}
}
