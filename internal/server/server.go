// SPDX-FileCopyrightText: 2026 api2spec
// SPDX-License-Identifier: FSL-1.1-MIT

// Package server exposes a documentation JSON file over HTTP for editing.
package server

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"time"

	"github.com/labstack/echo/v4"
	"github.com/labstack/echo/v4/middleware"
)

// BodyLimit is the upper limit for the request body size.
const BodyLimit = "12M"

// DefaultAddr is the listen address used when none is configured.
const DefaultAddr = "127.0.0.1:4400"

// Config contains the settings to initialize an edit server.
type Config struct {
	Addr   string
	File   string
	Logger *slog.Logger
}

// Server is the edit server.
type Server struct {
	addr   string
	store  *Store
	router *echo.Echo
	logger *slog.Logger
}

// New creates a Server for cfg.
func New(cfg Config) *Server {
	logger := cfg.Logger
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	addr := cfg.Addr
	if addr == "" {
		addr = DefaultAddr
	}

	s := &Server{
		addr:   addr,
		store:  NewStore(cfg.File),
		logger: logger,
	}
	s.router = s.newRouter()
	return s
}

// Handler returns the HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Addr returns the listen address.
func (s *Server) Addr() string {
	return s.addr
}

// Serve listens until ctx is cancelled, then shuts down gracefully.
func (s *Server) Serve(ctx context.Context) error {
	srv := &http.Server{
		Addr:         s.addr,
		Handler:      s.router,
		ReadTimeout:  30 * time.Second,
		WriteTimeout: 10 * time.Second,
		IdleTimeout:  120 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		s.logger.Info("edit server listening", "addr", s.addr, "file", s.store.Path())
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errCh <- err
		}
		close(errCh)
	}()

	select {
	case err := <-errCh:
		if err != nil {
			return fmt.Errorf("listen: %w", err)
		}
		return nil
	case <-ctx.Done():
	}

	s.logger.Info("shutting down edit server")
	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	if err := srv.Shutdown(shutdownCtx); err != nil {
		return fmt.Errorf("server shutdown: %w", err)
	}
	return nil
}

func (s *Server) newRouter() *echo.Echo {
	router := echo.New()
	router.HideBanner = true
	router.HidePort = true
	router.Use(middleware.Recover())
	router.Use(middleware.BodyLimit(BodyLimit))
	router.Use(middleware.RequestLoggerWithConfig(middleware.RequestLoggerConfig{
		LogMethod: true,
		LogURI:    true,
		LogStatus: true,
		LogError:  true,
		LogValuesFunc: func(c echo.Context, v middleware.RequestLoggerValues) error {
			s.logger.Debug("request", "method", v.Method, "uri", v.URI, "status", v.Status, "err", v.Error)
			return nil
		},
	}))

	router.GET("/healthz", s.health)

	api := router.Group("/api/docs")
	api.GET("", s.getDocs)
	api.PUT("", s.putDocs)
	api.GET("/endpoints/:index", s.getEndpoint)
	api.PATCH("/endpoints/:index", s.patchEndpoint)

	return router
}
