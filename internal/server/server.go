// Package server exposes the Prometheus metrics endpoint over HTTP.
package server

import (
	"context"
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"
)

// shutdownGrace bounds how long Shutdown waits for in-flight scrapes.
const shutdownGrace = 3 * time.Second

// Server serves /metrics and /healthz on a dedicated listener.
type Server struct {
	httpServer *http.Server
	logger     zerolog.Logger
}

// New builds a metrics server for the given registry. addr is a standard
// listen address such as ":9090" or "127.0.0.1:9090".
func New(addr string, reg *prometheus.Registry, logger zerolog.Logger) *Server {
	mux := http.NewServeMux()
	mux.Handle("/metrics", promhttp.HandlerFor(reg, promhttp.HandlerOpts{}))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte("ok"))
	})
	return &Server{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           mux,
			ReadHeaderTimeout: 5 * time.Second,
		},
		logger: logger,
	}
}

// Start runs the listener in a background goroutine and returns
// immediately. Listen failures are logged, not fatal: metrics are an
// auxiliary facility and must never take the computation down.
func (s *Server) Start() {
	go func() {
		s.logger.Info().Str("addr", s.httpServer.Addr).Msg("metrics server listening")
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			s.logger.Error().Err(err).Msg("metrics server failed")
		}
	}()
}

// Shutdown stops the listener, waiting briefly for in-flight requests.
func (s *Server) Shutdown(ctx context.Context) {
	ctx, cancel := context.WithTimeout(ctx, shutdownGrace)
	defer cancel()
	if err := s.httpServer.Shutdown(ctx); err != nil {
		s.logger.Warn().Err(err).Msg("metrics server shutdown incomplete")
	}
}

// Handler returns the underlying handler, used by tests to exercise the
// endpoints without a listener.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}
