package httpserver

import (
	"context"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/alutan/trade-history/internal/runtime"
	"github.com/alutan/trade-history/internal/server/http/controllers"
	livesvc "github.com/alutan/trade-history/internal/services/live"
	tradesvc "github.com/alutan/trade-history/internal/services/trades"
)

type Server struct {
	rt    *runtime.Runtime
	srv   *http.Server
	lisMu sync.Mutex
	lis   net.Listener
}

func New(rt *runtime.Runtime, liveSvc *livesvc.Service, tradesSvc *tradesvc.Service) *Server {
	mux := http.NewServeMux()
	registry := controllers.NewControllerRegistry(rt, liveSvc, tradesSvc)
	registry.RegisterAllRoutes(mux)
	return &Server{rt: rt, srv: &http.Server{Handler: cors(mux)}}
}

func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	l, err := net.Listen("tcp", addr)
	if err != nil {
		return err
	}
	s.lisMu.Lock()
	s.lis = l
	s.lisMu.Unlock()
	errCh := make(chan error, 1)
	go func() { errCh <- s.srv.Serve(l) }()
	select {
	case <-ctx.Done():
		cctx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
		defer cancel()
		_ = s.srv.Shutdown(cctx)
		return nil
	case err := <-errCh:
		return err
	}
}

func (s *Server) Close() {
	s.lisMu.Lock()
	defer s.lisMu.Unlock()
	if s.lis != nil {
		_ = s.lis.Close()
	}
}

// Addr returns the bound listen address, useful when addr was ":0".
func (s *Server) Addr() string {
	s.lisMu.Lock()
	defer s.lisMu.Unlock()
	if s.lis == nil {
		return ""
	}
	return s.lis.Addr().String()
}

func cors(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Access-Control-Allow-Origin", "*")
		w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
		w.Header().Set("Access-Control-Allow-Methods", "GET, POST, OPTIONS")
		if r.Method == http.MethodOptions {
			w.WriteHeader(http.StatusNoContent)
			return
		}
		next.ServeHTTP(w, r)
	})
}
