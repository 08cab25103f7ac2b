// Package http exposes the websocket endpoint and the operational routes of
// the tracker: health, statistics, prometheus metrics and a few admin
// actions on the delivery engines.
package http

import (
	"context"
	"errors"
	"net"
	"net/http"
	"sync"
	"time"

	"github.com/gabapcia/txtracker/internal/eventbus"
	"github.com/gabapcia/txtracker/internal/nodepool"
	"github.com/gabapcia/txtracker/internal/pkg/logger"
	"github.com/gabapcia/txtracker/internal/scanner"
	"github.com/gabapcia/txtracker/internal/webhook"
	"github.com/gabapcia/txtracker/internal/websocket"

	"github.com/gin-gonic/gin"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

// ErrServiceAlreadyStarted is returned if Start is called more than once.
var ErrServiceAlreadyStarted = errors.New("service already started")

const shutdownTimeout = 10 * time.Second

type (
	// Scanner is the read side of the scanner used by the status routes.
	Scanner interface {
		HealthCheck() bool
		Statistics() scanner.Statistics
		NodeHealth() []nodepool.NodeHealth
	}

	// DistributorStats reports the event distributor's subscriber buffers.
	DistributorStats interface {
		Stats() []eventbus.SubscriberStats
	}
)

// Dependencies are the services behind the routes.
type Dependencies struct {
	Scanner     Scanner
	Webhooks    webhook.Service
	WebSocket   websocket.Service
	Distributor DistributorStats
}

// Service is the HTTP server lifecycle.
type Service interface {
	// Start listens on the configured address and serves in the background.
	// Bind errors are returned synchronously.
	Start(ctx context.Context) error

	// Close gracefully shuts the server down.
	Close()

	Handler() http.Handler
}

type closeFunc func()

type service struct {
	mu        sync.Mutex
	isStarted bool
	closeFunc closeFunc

	addr   string
	engine *gin.Engine
}

var _ Service = (*service)(nil)

func (s *service) Handler() http.Handler {
	return s.engine
}

func (s *service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isStarted {
		return ErrServiceAlreadyStarted
	}

	listener, err := net.Listen("tcp", s.addr)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Handler:           s.engine,
		ReadHeaderTimeout: 10 * time.Second,
		BaseContext: func(net.Listener) context.Context {
			return context.WithoutCancel(ctx)
		},
	}

	done := make(chan struct{})
	go func() {
		defer close(done)

		logger.Info(ctx, "http server listening", "http.addr", listener.Addr().String())
		if err := srv.Serve(listener); err != nil && !errors.Is(err, http.ErrServerClosed) {
			logger.Error(ctx, "http server stopped", "error", err)
		}
	}()

	s.closeFunc = func() {
		shutdownCtx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTimeout)
		defer cancel()

		if err := srv.Shutdown(shutdownCtx); err != nil {
			logger.Warn(ctx, "http server shutdown", "error", err)
		}
		<-done
	}
	s.isStarted = true
	return nil
}

func (s *service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closeFunc != nil {
		s.closeFunc()
	}

	s.closeFunc = nil
	s.isStarted = false
}

type config struct {
	registry *prometheus.Registry
}

// Option configures the server.
type Option func(*config)

// WithRegistry registers the HTTP collectors on registry and serves it on
// /metrics. Defaults to a fresh registry with the Go and process collectors.
func WithRegistry(registry *prometheus.Registry) Option {
	return func(c *config) {
		c.registry = registry
	}
}

// New builds the router for addr.
func New(addr string, deps Dependencies, opts ...Option) *service {
	var cfg config
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.registry == nil {
		cfg.registry = prometheus.NewRegistry()
		cfg.registry.MustRegister(
			collectors.NewGoCollector(),
			collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}),
		)
	}

	return &service{
		addr:   addr,
		engine: newRouter(deps, cfg.registry),
	}
}
