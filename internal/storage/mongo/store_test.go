package mongostore

import (
	"context"
	"os"
	"testing"
	"time"
)

// openForTest connects to the MongoDB named by TRADEHIST_TEST_MONGO_URI and
// skips the test when the variable is unset.
func openForTest(t *testing.T) *Store {
	t.Helper()
	uri := os.Getenv("TRADEHIST_TEST_MONGO_URI")
	if uri == "" {
		t.Skip("TRADEHIST_TEST_MONGO_URI not set")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	s, err := Open(ctx, Options{
		URI:            uri,
		Database:       "trade_history_test",
		Collection:     "test_stocktrader",
		ConnectTimeout: 5 * time.Second,
	})
	if err != nil {
		t.Fatalf("open store: %v", err)
	}
	t.Cleanup(func() {
		_ = s.db.Collection(s.collection).Drop(context.Background())
		_ = s.Close(context.Background())
	})
	return s
}

func TestStoreRoundTrip(t *testing.T) {
	s := openForTest(t)
	ctx := context.Background()

	trades := []StockPurchase{
		{ID: "t-1", Owner: "alice", Symbol: "IBM", Shares: 5, Price: 100, Notional: 500},
		{ID: "t-2", Owner: "alice", Symbol: "IBM", Shares: -2, Price: 110, Notional: -220},
		{ID: "t-3", Owner: "alice", Symbol: "T", Shares: 10, Price: 20, Notional: 200},
		{ID: "t-4", Owner: "bob", Symbol: "IBM", Shares: 1, Price: 100, Notional: 100},
	}
	for _, p := range trades {
		if err := s.InsertPurchase(ctx, p, s.collection); err != nil {
			t.Fatalf("insert %s: %v", p.ID, err)
		}
	}

	latest, err := s.LatestBuy(ctx)
	if err != nil {
		t.Fatalf("latest buy: %v", err)
	}
	if latest.ID != "t-4" {
		t.Fatalf("latest buy = %q, want t-4", latest.ID)
	}

	owned, err := s.TradesByOwner(ctx, "alice")
	if err != nil {
		t.Fatalf("trades by owner: %v", err)
	}
	if len(owned) != 3 {
		t.Fatalf("alice trades = %d, want 3", len(owned))
	}

	symbolTrades, err := s.TradesForSymbol(ctx, "alice", "IBM")
	if err != nil {
		t.Fatalf("trades for symbol: %v", err)
	}
	if len(symbolTrades) != 2 {
		t.Fatalf("alice IBM trades = %d, want 2", len(symbolTrades))
	}
}

func TestOpenUnreachable(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping connect timeout in short mode")
	}
	ctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	_, err := Open(ctx, Options{
		URI:            "mongodb://127.0.0.1:1",
		Database:       "trade_history_test",
		Collection:     "test_stocktrader",
		ConnectTimeout: time.Second,
	})
	if err == nil {
		t.Fatal("expected error for unreachable server")
	}
}
