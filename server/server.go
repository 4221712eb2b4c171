// Package server exposes the chunking engine over HTTP. It is a thin
// transport layer: all algorithmic behavior lives in package chunker,
// and every engine error surfaces here as a 4xx response.
package server

import (
	"context"
	"errors"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"

	"github.com/ragstack/textchunk/chunker"
	"github.com/ragstack/textchunk/config"
	"github.com/ragstack/textchunk/documentloaders"
)

// Server wires the strategy registry and the document loader into an
// HTTP API.
type Server struct {
	cfg      config.Config
	registry *chunker.Registry
	loader   documentloaders.Loader
	logger   *slog.Logger
	engine   *gin.Engine
}

// New assembles the HTTP server. The loader may be nil, in which case
// the file-batch endpoint responds with 503.
func New(cfg config.Config, registry *chunker.Registry, loader documentloaders.Loader, logger *slog.Logger) *Server {
	if logger == nil {
		logger = slog.Default()
	}

	gin.SetMode(gin.ReleaseMode)
	engine := gin.New()
	engine.Use(gin.Recovery())

	s := &Server{
		cfg:      cfg,
		registry: registry,
		loader:   loader,
		logger:   logger,
		engine:   engine,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.engine.GET("/healthz", s.handleHealth)

	api := s.engine.Group("/api/v1")
	api.GET("/strategies", s.handleStrategies)
	api.POST("/chunk", s.handleChunk)
	api.POST("/chunk/files", s.handleChunkFiles)
}

// Handler returns the underlying HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.engine
}

// Run serves until the context is cancelled, then shuts down
// gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.cfg.Server.Addr,
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("http server listening", "addr", s.cfg.Server.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	}
}
