package client

import (
	"net/http"
	"net/http/httptest"
	"testing"
)

func newAPIForTest(t *testing.T, paths map[string]string) BaseURLFunc {
	t.Helper()
	mux := http.NewServeMux()
	for path, body := range paths {
		b := body
		mux.HandleFunc(path, func(w http.ResponseWriter, _ *http.Request) {
			w.Header().Set("Content-Type", "application/json")
			_, _ = w.Write([]byte(b))
		})
	}
	srv := httptest.NewServer(mux)
	t.Cleanup(srv.Close)
	return func() string { return srv.URL }
}

func TestTradesLatestCommand(t *testing.T) {
	baseURL := newAPIForTest(t, map[string]string{
		"/v1/trades/latest": `{"id":"t-1","owner":"alice"}`,
	})
	cmd := NewTradesCommand(baseURL)
	cmd.SetArgs([]string{"latest"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("latest: %v", err)
	}
}

func TestTradesListRequiresOwner(t *testing.T) {
	baseURL := newAPIForTest(t, nil)
	cmd := NewTradesCommand(baseURL)
	cmd.SetArgs([]string{"list"})
	cmd.SilenceErrors = true
	cmd.SilenceUsage = true
	if err := cmd.Execute(); err == nil {
		t.Fatal("expected error without --owner")
	}
}

func TestTradesReturnsCommand(t *testing.T) {
	baseURL := newAPIForTest(t, map[string]string{
		"/v1/returns/alice": `{"owner":"alice","roi":12.5}`,
	})
	cmd := NewTradesCommand(baseURL)
	cmd.SetArgs([]string{"returns", "--owner", "alice", "--current-value", "12000"})
	if err := cmd.Execute(); err != nil {
		t.Fatalf("returns: %v", err)
	}
}
