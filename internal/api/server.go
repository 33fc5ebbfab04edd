// Package api exposes the Ki engine over HTTP.
//
// Routes mirror the public v1 interface:
//
//	GET /v1/ligands?max-len=N&<field>=<value>...
//	GET /v1/receptors?<field>=<value>...
//	GET /v1/ki/{ligand}?deviation=F&<field>=<value>...
//
// Any query parameter named after a record field becomes a filter; repeated
// parameters are OR-combined and distinct fields AND-combined.
package api

import (
	"context"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"golang.org/x/sync/errgroup"

	"github.com/leengari/kidb/internal/engine"
	"github.com/leengari/kidb/internal/metrics"
)

// Options tunes the query layer
type Options struct {
	CORSOrigin       string  // Access-Control-Allow-Origin value, "*" when empty
	DefaultDeviation float64 // used when a ki request has no valid deviation
}

// Server is the HTTP query layer over one engine
type Server struct {
	engine  *engine.Engine
	metrics *metrics.Metrics
	logger  *slog.Logger
	opts    Options
	router  *gin.Engine
}

// NewServer builds the router. m may be nil to disable metrics.
func NewServer(eng *engine.Engine, m *metrics.Metrics, logger *slog.Logger, opts Options) *Server {
	if logger == nil {
		logger = slog.Default()
	}
	if opts.CORSOrigin == "" {
		opts.CORSOrigin = "*"
	}

	s := &Server{
		engine:  eng,
		metrics: m,
		logger:  logger,
		opts:    opts,
	}
	s.router = s.routes()
	return s
}

func (s *Server) routes() *gin.Engine {
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(s.observe())
	router.Use(corsMiddleware(s.opts.CORSOrigin))

	router.GET("/health", s.handleHealth)
	if s.metrics != nil {
		router.GET("/metrics", gin.WrapH(s.metrics.Handler()))
	}

	v1 := router.Group("/v1")
	v1.Use(criteriaMiddleware())
	v1.GET("/ligands", s.handleLigands)
	v1.GET("/receptors", s.handleReceptors)
	v1.GET("/ki/:ligand", s.handleKi)

	router.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})

	return router
}

func (s *Server) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	s.router.ServeHTTP(w, r)
}

// Run serves on addr until ctx is cancelled, then shuts down gracefully,
// giving in-flight requests up to shutdownTimeout to finish
func (s *Server) Run(ctx context.Context, addr string, shutdownTimeout time.Duration) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	g, gctx := errgroup.WithContext(ctx)

	g.Go(func() error {
		s.logger.Info("Running on address", "addr", addr)
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("failed to serve on %s: %w", addr, err)
		}
		return nil
	})

	g.Go(func() error {
		<-gctx.Done()
		s.logger.Info("Shutting down server...")

		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shutdown failed: %w", err)
		}
		return nil
	})

	return g.Wait()
}
