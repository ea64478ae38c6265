package serverrun

import (
	"context"
	"os"
	"testing"
	"time"

	cfgpkg "github.com/alutan/trade-history/internal/config"
)

func TestRunStartsAndStops(t *testing.T) {
	uri := os.Getenv("TRADEHIST_TEST_MONGO_URI")
	if uri == "" {
		t.Skip("TRADEHIST_TEST_MONGO_URI not set")
	}
	cfg := cfgpkg.Default()
	cfg.Mongo.URI = uri
	cfg.Mongo.Database = "trade_history_test"

	ctx, cancel := context.WithCancel(context.Background())
	done := make(chan error, 1)
	go func() { done <- Run(ctx, Options{HTTPAddr: "127.0.0.1:0", Config: cfg}) }()

	time.Sleep(200 * time.Millisecond)
	cancel()
	select {
	case err := <-done:
		if err != nil {
			t.Fatalf("run: %v", err)
		}
	case <-time.After(5 * time.Second):
		t.Fatal("server did not stop after cancel")
	}
}
