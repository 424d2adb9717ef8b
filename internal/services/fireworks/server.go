package fireworks

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"strings"

	"github.com/daisuke8000/grass-fireworks/internal/platform/timeouts"
	"github.com/daisuke8000/grass-fireworks/internal/services/fireworks/platform/httpx"
)

// Config defines the inputs for the fireworks HTTP process.
type Config struct {
	HTTPAddr string
	Service  *Service
}

// Server hosts the fireworks HTTP endpoints.
type Server struct {
	httpAddr   string
	service    *Service
	httpServer *http.Server
}

// NewServer validates config and constructs a fireworks server.
func NewServer(cfg Config) (*Server, error) {
	httpAddr := strings.TrimSpace(cfg.HTTPAddr)
	if httpAddr == "" {
		return nil, errors.New("http address is required")
	}
	if cfg.Service == nil {
		return nil, errors.New("service is required")
	}

	s := &Server{
		httpAddr: httpAddr,
		service:  cfg.Service,
	}
	mux := http.NewServeMux()
	s.routes(mux)
	handler := httpx.Chain(mux,
		httpx.RecoverPanic(),
		httpx.RequestID(),
		httpx.RequestLog(),
	)
	s.httpServer = &http.Server{
		Addr:              httpAddr,
		Handler:           handler,
		ReadHeaderTimeout: timeouts.ReadHeader,
	}
	return s, nil
}

// Handler exposes the composed handler for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// ListenAndServe serves HTTP traffic until context cancellation or server stop.
func (s *Server) ListenAndServe(ctx context.Context) error {
	if s == nil {
		return errors.New("fireworks server is nil")
	}
	if ctx == nil {
		return errors.New("context is required")
	}

	serveErr := make(chan error, 1)
	go func() {
		serveErr <- s.httpServer.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), timeouts.Shutdown)
		err := s.httpServer.Shutdown(shutdownCtx)
		cancel()
		if err != nil {
			return fmt.Errorf("shutdown fireworks http server: %w", err)
		}
		return nil
	case err := <-serveErr:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return fmt.Errorf("serve fireworks http: %w", err)
	}
}
