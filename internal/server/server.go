// Package server exposes the projection engine over HTTP for presentation layers.
package server

import (
	"context"
	"errors"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/rpgo/investment-calculator/internal/calculation"
	"github.com/rpgo/investment-calculator/internal/logging"
	"github.com/rpgo/investment-calculator/pkg/money"
)

const shutdownTimeout = 5 * time.Second

// Options configures a Server. Zero values get sensible defaults.
type Options struct {
	Addr         string
	Currency     string
	ConsoleStyle string // glamour style for the console format; notty by default
	MemoSize     int
	Logger       zerolog.Logger
}

// Server serves projections, rendered reports, health and metrics.
type Server struct {
	opts    Options
	engine  *calculation.ProjectionEngine
	metrics *Metrics
	router  *gin.Engine
	log     zerolog.Logger
}

// New builds a server and its routes.
func New(opts Options) *Server {
	if opts.Addr == "" {
		opts.Addr = ":8080"
	}
	if opts.Currency == "" {
		opts.Currency = money.DefaultCurrency
	}
	if opts.ConsoleStyle == "" {
		opts.ConsoleStyle = "notty"
	}
	if opts.MemoSize <= 0 {
		opts.MemoSize = calculation.DefaultMemoSize
	}

	engine := calculation.NewProjectionEngineWithMemo(opts.MemoSize)
	engine.SetLogger(logging.Adapter{L: opts.Logger})

	s := &Server{
		opts:    opts,
		engine:  engine,
		metrics: NewMetrics(),
		log:     opts.Logger,
	}

	r := gin.New()
	r.Use(gin.Recovery(), RequestLogger(s.log), RequestMetrics(s.metrics))
	s.router = r
	s.registerRoutes()
	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler { return s.router }

// Metrics returns the server's collectors.
func (s *Server) Metrics() *Metrics { return s.metrics }

func (s *Server) registerRoutes() {
	s.router.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "service": "invcalc"})
	})
	s.router.GET("/metrics", gin.WrapH(promhttp.HandlerFor(s.metrics.Registry, promhttp.HandlerOpts{})))

	api := s.router.Group("/api/v1")
	api.POST("/projections", s.postProjection)
	api.GET("/projections", s.getProjection)
	api.GET("/formats/:format", s.getFormatted)
}

// Run serves until ctx is cancelled, then shuts down gracefully.
func (s *Server) Run(ctx context.Context) error {
	srv := &http.Server{
		Addr:              s.opts.Addr,
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info().Str("addr", s.opts.Addr).Msg("listening")
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		return err
	case <-ctx.Done():
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()
	s.log.Info().Msg("shutting down")
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return err
	}
	return <-errCh
}
