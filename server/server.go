// SPDX-License-Identifier: MIT

package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-playground/validator/v10"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"go.uber.org/zap"

	"github.com/katalvlaran/cofactor/adjugate"
	"github.com/katalvlaran/cofactor/config"
	"github.com/katalvlaran/cofactor/input"
)

// validate is shared by Config and request bodies.
var validate = validator.New()

// Config is the server's runtime configuration.
type Config struct {
	MaxOrder       int     `validate:"gte=1,lte=12"`
	Strategy       string  `validate:"oneof=recursive iterative"`
	BlankAsZero    bool
	RateLimitRPS   float64 `validate:"gt=0"`
	RateLimitBurst int     `validate:"gte=1"`
}

// ConfigFromEnv collects Config from the config package getters.
func ConfigFromEnv() Config {
	return Config{
		MaxOrder:       config.MaxOrder(),
		Strategy:       config.Strategy(),
		BlankAsZero:    config.BlankAsZero(),
		RateLimitRPS:   config.RateLimitRPS(),
		RateLimitBurst: config.RateLimitBurst(),
	}
}

// Server holds the router and the settings every handler shares.
type Server struct {
	cfg      Config
	strategy adjugate.Strategy
	log      *zap.Logger
	router   *chi.Mux
}

// New validates cfg and builds the router.
func New(cfg Config, logger *zap.Logger) (*Server, error) {
	if err := validate.Struct(cfg); err != nil {
		return nil, fmt.Errorf("server: invalid config: %w", err)
	}
	strategy, err := adjugate.ParseStrategy(cfg.Strategy)
	if err != nil {
		return nil, fmt.Errorf("server: %w", err)
	}
	if logger == nil {
		logger = zap.NewNop()
	}

	s := &Server{cfg: cfg, strategy: strategy, log: logger}
	limiter := NewRateLimiter(cfg.RateLimitRPS, cfg.RateLimitBurst)

	r := chi.NewRouter()
	r.Use(RequestID)
	r.Use(middleware.RealIP)
	r.Use(Metrics)
	r.Use(Logging(logger))
	r.Use(middleware.Recoverer)

	r.Get("/healthz", s.health)
	r.Handle("/metrics", promhttp.Handler())

	r.Route("/v1", func(r chi.Router) {
		r.Use(limiter.Middleware)
		r.Post("/inverse", s.inverse)
		r.Post("/determinant", s.determinant)
		r.Post("/fraction", s.fraction)
	})
	s.router = r

	return s, nil
}

// Handler returns the root http.Handler.
func (s *Server) Handler() http.Handler { return s.router }

// ListenAndServe serves on addr until ctx is cancelled, then shuts down
// gracefully within 10 seconds.
func (s *Server) ListenAndServe(ctx context.Context, addr string) error {
	srv := &http.Server{
		Addr:              addr,
		Handler:           s.router,
		ReadHeaderTimeout: 5 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.log.Info("server starting", zap.String("addr", addr))
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

	s.log.Info("shutting down server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server: shutdown: %w", err)
	}
	s.log.Info("server stopped")

	return nil
}

func (s *Server) inputOptions() []input.Option {
	opts := []input.Option{input.WithMaxOrder(s.cfg.MaxOrder)}
	if s.cfg.BlankAsZero {
		opts = append(opts, input.WithBlankAsZero())
	}
	return opts
}
