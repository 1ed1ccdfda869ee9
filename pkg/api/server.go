// Copyright (C) 2024-2025, Doxa Labs. All rights reserved.
// See the file LICENSE for licensing terms.

// Package api serves read-only launchpad queries over HTTP.
package api

import (
	"context"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/doxa-fi/doxa-cli/pkg/cloud/storage"
	"github.com/doxa-fi/doxa-cli/pkg/evm"
	"github.com/doxa-fi/doxa-cli/pkg/launchpad"
	"github.com/doxa-fi/doxa-cli/pkg/monitoring"
	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/httprate"
	"github.com/luxfi/geth/common"
	luxlog "github.com/luxfi/log"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// TokenReader answers token queries.
type TokenReader interface {
	Network() evm.Network
	LookupToken(ctx context.Context, candidate string) (launchpad.TokenRef, error)
	ExchangeRate(ctx context.Context, token common.Address) (decimal.Decimal, error)
}

// ContentReader serves stored token content.
type ContentReader interface {
	Fetch(ctx context.Context, id string, w io.Writer) (*storage.ObjectInfo, error)
}

// ServerConfig holds configuration for the API server
type ServerConfig struct {
	Address               string
	AllowedOrigins        []string
	RatePerMinute         int
	MaxConcurrentRequests int
	RequestTimeout        time.Duration
}

// DefaultServerConfig returns a default server configuration
func DefaultServerConfig() *ServerConfig {
	return &ServerConfig{
		Address:               "localhost:8080",
		AllowedOrigins:        []string{"*"},
		RatePerMinute:         120,
		MaxConcurrentRequests: 200,
		RequestTimeout:        30 * time.Second,
	}
}

// Server wraps the HTTP server and provides lifecycle management
type Server struct {
	config     *ServerConfig
	httpServer *http.Server
	mux        *chi.Mux
	log        luxlog.Logger

	tokens  TokenReader
	content ContentReader
	metrics *monitoring.Metrics
}

// NewServer builds the router. content and metrics may be nil, which
// disables the routes that need them.
func NewServer(
	config *ServerConfig,
	tokens TokenReader,
	content ContentReader,
	metrics *monitoring.Metrics,
	log luxlog.Logger,
) *Server {
	if config == nil {
		config = DefaultServerConfig()
	}
	s := &Server{
		config:  config,
		mux:     chi.NewMux(),
		log:     log,
		tokens:  tokens,
		content: content,
		metrics: metrics,
	}

	s.mux.Use(s.requestLogger)
	s.mux.Use(s.recoverer)
	s.mux.Use(middleware.RequestID)
	s.mux.Use(middleware.RealIP)
	if config.RequestTimeout > 0 {
		s.mux.Use(middleware.Timeout(config.RequestTimeout))
	}
	if config.RatePerMinute > 0 {
		s.mux.Use(httprate.LimitByIP(config.RatePerMinute, time.Minute))
	}
	if config.MaxConcurrentRequests > 0 {
		s.mux.Use(middleware.Throttle(config.MaxConcurrentRequests))
	}

	s.mux.Get("/server/health", s.health)
	if metrics != nil {
		s.mux.Handle("/server/metrics", metrics.Handler())
	}

	s.mux.Route("/v1", func(r chi.Router) {
		r.Get("/rate", s.flagshipRate)
		r.Get("/tokens/{address}", s.token)
		r.Get("/tokens/{address}/quote", s.quote)
		r.Get("/content/{cid}", s.contentByID)
	})

	s.httpServer = &http.Server{
		Addr:              config.Address,
		Handler:           newCORSHandler(config.AllowedOrigins, s.mux),
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      60 * time.Second,
		IdleTimeout:       120 * time.Second,
	}
	return s
}

// Handler is the full handler chain, CORS included.
func (s *Server) Handler() http.Handler {
	return s.httpServer.Handler
}

// Start serves until Shutdown is called.
func (s *Server) Start() error {
	network := s.tokens.Network()
	s.log.Info("API server starting",
		zap.String("address", s.config.Address),
		zap.String("network", network.Name),
		zap.Int64("chainID", network.ChainID),
	)
	if err := s.httpServer.ListenAndServe(); !errors.Is(err, http.ErrServerClosed) {
		return err
	}
	return nil
}

// Shutdown gracefully shuts down the server
func (s *Server) Shutdown(ctx context.Context) error {
	s.log.Info("shutting down API server")
	return s.httpServer.Shutdown(ctx)
}
