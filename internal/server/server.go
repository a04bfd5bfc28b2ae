// Package server provides the HTTP submission service: the sink that records
// completed onboarding forms and serves them back.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/jonathan/onboarding-wizard/internal/store"
)

// Config holds server configuration.
type Config struct {
	Port   int
	Store  store.Store
	Logger *zap.Logger
}

// Server is the HTTP submission service.
type Server struct {
	httpServer *http.Server
	store      store.Store
	logger     *zap.Logger
}

// New creates a server instance with its routes registered.
func New(cfg Config) *Server {
	s := &Server{
		store:  cfg.Store,
		logger: cfg.Logger,
	}

	mux := http.NewServeMux()
	mux.HandleFunc("POST /submissions", s.handleSubmit)
	mux.HandleFunc("GET /submissions", s.handleList)
	mux.HandleFunc("GET /health", s.handleHealth)

	s.httpServer = &http.Server{
		Addr:              fmt.Sprintf(":%d", cfg.Port),
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}
	return s
}

// Handler exposes the route mux, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Run serves HTTP until the context is canceled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	g, ctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("submission service listening", zap.String("addr", s.httpServer.Addr))
		if err := s.httpServer.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("server failed: %w", err)
		}
		return nil
	})

	g.Go(func() error {
		<-ctx.Done()
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		s.logger.Info("shutting down submission service")
		return s.httpServer.Shutdown(shutdownCtx)
	})

	return g.Wait()
}
