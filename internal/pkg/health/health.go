// Copyright 2025 Hackathon Support contributors.
// SPDX-License-Identifier: Apache-2.0

// Package health serves the HTTP endpoints that keep the bot deployable on
// Cloud Run. Cloud Run requires the container to listen on $PORT even though
// all real work happens over the Discord gateway; the root endpoint doubles
// as a liveness probe that reports the gateway connection state.
package health

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"time"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus/promhttp"
	"github.com/rs/zerolog"

	"github.com/hackathon-support/hackbot/internal/pkg/observability"
)

// shutdownGrace bounds how long in-flight probe requests may run during shutdown.
const shutdownGrace = 5 * time.Second

// ReadyChecker reports whether the Discord gateway connection is up.
type ReadyChecker interface {
	Ready() bool
}

// Server serves the liveness and metrics endpoints.
type Server struct {
	router *gin.Engine
	ready  ReadyChecker
}

// NewServer returns a Server that reports the readiness of checker.
func NewServer(checker ReadyChecker, logger zerolog.Logger) *Server {
	gin.SetMode(gin.ReleaseMode)
	router := gin.New()
	router.Use(gin.Recovery())
	router.Use(observability.RequestLogger(logger))

	s := &Server{
		router: router,
		ready:  checker,
	}
	s.registerRoutes()
	return s
}

func (s *Server) registerRoutes() {
	s.router.GET("/", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":       "alive",
			"bot_is_ready": s.ready.Ready(),
		})
	})

	s.router.GET("/metrics", gin.WrapH(promhttp.Handler()))
}

// Handler returns the underlying HTTP handler.
func (s *Server) Handler() http.Handler {
	return s.router
}

// Run serves on port until ctx is canceled, then drains in-flight requests
// before returning.
func (s *Server) Run(ctx context.Context, port int) error {
	srv := &http.Server{
		Addr:    fmt.Sprintf(":%d", port),
		Handler: s.router,
	}

	errs := make(chan error, 1)
	go func() {
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			errs <- err
		}
	}()

	select {
	case err := <-errs:
		return fmt.Errorf("serve health endpoints on port %d: %w", port, err)
	case <-ctx.Done():
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownGrace)
		defer cancel()
		if err := srv.Shutdown(shutdownCtx); err != nil {
			return fmt.Errorf("shut down health endpoints: %w", err)
		}
		return nil
	}
}
