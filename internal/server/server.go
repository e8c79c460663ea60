// package server exposes the catalog core over HTTP: a small router with
// middleware support and a JSON API handler returning the uniform
// response envelope.
package server

import (
	"context"
	"fmt"
	"net/http"
	"time"

	"github.com/charmbracelet/log"

	"github.com/nextsound/nextsound/internal/cache"
	"github.com/nextsound/nextsound/internal/shared"
	"github.com/nextsound/nextsound/internal/source"
)

// Server wraps the HTTP listener for the JSON API facade.
type Server struct {
	httpServer *http.Server
	logger     *log.Logger
}

// New builds a Server on the configured host:port with the request
// logging and JSON middleware installed.
func New(config *shared.Config, selector *source.Selector, store *cache.Store, logger *log.Logger) *Server {
	router := NewBasicRouter()
	router.Use(RequestLogger(logger), JSONContent)
	router.Handler(NewAPIHandler(selector, store, logger))

	addr := fmt.Sprintf("%s:%d", config.Server.Host, config.Server.Port)
	return &Server{
		httpServer: &http.Server{
			Addr:              addr,
			Handler:           router,
			ReadHeaderTimeout: 10 * time.Second,
		},
		logger: shared.WithLogger(logger, "component", "server"),
	}
}

// Start serves until the context is canceled, then shuts down
// gracefully.
func (s *Server) Start(ctx context.Context) error {
	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("listening", "addr", s.httpServer.Addr)
		if err := s.httpServer.ListenAndServe(); err != nil && err != http.ErrServerClosed {
			errCh <- err
		}
	}()

	select {
	case err := <-errCh:
		return fmt.Errorf("server error: %w", err)
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()

	s.logger.Info("shutting down")
	if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("shutdown failed: %w", err)
	}
	return nil
}
