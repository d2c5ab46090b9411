// Package server exposes quote extraction and resolution over HTTP against a
// cache of named documents.
package server

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
	"go.uber.org/zap"

	"github.com/jsnanigans/textquote/pkg/textquote"
)

// Config holds the listen address and cache size.
type Config struct {
	Host          string
	Port          int
	MaxDocuments  int
	ContextLength int
}

// Server is the HTTP front end for a textquote.Resolver.
type Server struct {
	echo     *echo.Echo
	resolver *textquote.Resolver
	docs     *lru.Cache[string, string]
	logger   *zap.Logger
	config   *Config
}

// New builds a server. A nil cfg uses localhost:8080 with 256 cached
// documents.
func New(resolver *textquote.Resolver, logger *zap.Logger, cfg *Config) (*Server, error) {
	if resolver == nil {
		return nil, fmt.Errorf("resolver cannot be nil")
	}
	if logger == nil {
		return nil, fmt.Errorf("logger is required for request tracking and debugging")
	}
	if cfg == nil {
		cfg = &Config{
			Host:          "localhost",
			Port:          8080,
			MaxDocuments:  256,
			ContextLength: textquote.DefaultContextLength,
		}
	}

	docs, err := lru.New[string, string](cfg.MaxDocuments)
	if err != nil {
		return nil, fmt.Errorf("failed to create document cache: %w", err)
	}

	e := echo.New()
	e.HideBanner = true
	e.HidePort = true

	e.Use(middleware.Recover())
	e.Use(middleware.RequestID())
	e.Use(func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			start := time.Now()
			err := next(c)

			logger.Info("http request",
				zap.String("method", c.Request().Method),
				zap.String("uri", c.Request().RequestURI),
				zap.Int("status", c.Response().Status),
				zap.Duration("duration", time.Since(start)),
				zap.String("request_id", c.Response().Header().Get(echo.HeaderXRequestID)),
			)
			return err
		}
	})

	s := &Server{
		echo:     e,
		resolver: resolver,
		docs:     docs,
		logger:   logger,
		config:   cfg,
	}
	s.registerRoutes()

	return s, nil
}

func (s *Server) registerRoutes() {
	s.echo.GET("/health", s.handleHealth)

	v1 := s.echo.Group("/api/v1")
	v1.PUT("/documents/:name", s.handlePutDocument)
	v1.POST("/documents/:name/extract", s.handleExtract)
	v1.POST("/documents/:name/resolve", s.handleResolve)
}

// Handler returns the HTTP handler, mainly for tests.
func (s *Server) Handler() http.Handler {
	return s.echo
}

// Start listens on the configured address until Shutdown is called.
func (s *Server) Start() error {
	addr := fmt.Sprintf("%s:%d", s.config.Host, s.config.Port)
	s.logger.Info("starting http server", zap.String("addr", addr))
	if err := s.echo.Start(addr); err != nil && !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown stops the server gracefully.
func (s *Server) Shutdown(ctx context.Context) error {
	s.logger.Info("shutting down http server")
	return s.echo.Shutdown(ctx)
}
