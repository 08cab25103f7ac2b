// Package websocket broadcasts transaction events to live websocket
// clients.
//
// Each client registers any number of subscriptions and receives one
// TransactionNotification frame per matching subscription. Events reach
// every connection through its own bounded inbox; a slow client loses its
// oldest queued frames instead of stalling the broadcast.
package websocket

import (
	"context"
	"errors"
	"maps"
	"net"
	"net/http"
	"slices"
	"strings"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gabapcia/txtracker/internal/chain"
	"github.com/gabapcia/txtracker/internal/pkg/logger"
	"github.com/gabapcia/txtracker/internal/pkg/x/chflow"

	"github.com/google/uuid"
	gws "github.com/gorilla/websocket"
)

var (
	// ErrServiceAlreadyStarted is returned if Start is called more than once.
	ErrServiceAlreadyStarted = errors.New("service already started")

	// ErrConnectionNotFound is returned by Disconnect for unknown ids.
	ErrConnectionNotFound = errors.New("connection not found")
)

const (
	defaultMaxConnections    = 10000
	defaultPingInterval      = 30 * time.Second
	defaultMessageBufferSize = 1000
)

// Stats aggregates engine counters since creation.
type Stats struct {
	TotalConnections   uint64 `json:"total_connections"`
	ActiveConnections  int    `json:"active_connections"`
	TotalSubscriptions int    `json:"total_subscriptions"`
	MessagesSent       uint64 `json:"messages_sent"`
	MessagesReceived   uint64 `json:"messages_received"`
	BytesSent          uint64 `json:"bytes_sent"`
	BytesReceived      uint64 `json:"bytes_received"`
	DroppedMessages    uint64 `json:"dropped_messages"`
	UptimeSeconds      int64  `json:"uptime_seconds"`
}

// Service is the websocket broadcast engine. It is an http.Handler that
// upgrades every request it serves.
type Service interface {
	http.Handler

	// Start broadcasts events until ctx is cancelled, the channel is closed
	// or Close is called.
	Start(ctx context.Context, events <-chan chain.TransactionEvent) error

	// Close refuses new clients and closes every open connection.
	Close()

	// Broadcast queues event for every connection.
	Broadcast(event chain.TransactionEvent)

	// SendSystemNotification queues a notice for every connection.
	SendSystemNotification(message, level string)

	Connections() []Connection

	// Disconnect closes a connection. Unknown ids return
	// ErrConnectionNotFound.
	Disconnect(id string) error

	Stats() Stats
}

type closeFunc func()

type counters struct {
	totalConnections atomic.Uint64
	messagesSent     atomic.Uint64
	messagesReceived atomic.Uint64
	bytesSent        atomic.Uint64
	bytesReceived    atomic.Uint64
	dropped          atomic.Uint64
}

type service struct {
	mu        sync.Mutex
	isStarted bool
	closeFunc closeFunc

	upgrader          gws.Upgrader
	maxConnections    int
	pingInterval      time.Duration
	messageBufferSize int
	now               func() time.Time
	startedAt         time.Time

	// connMu guards the registry and serializes inbox senders.
	connMu      sync.Mutex
	closed      bool
	connections map[string]*conn

	wg      sync.WaitGroup
	stats   counters
	metrics instruments
}

var _ Service = (*service)(nil)

func clientIP(r *http.Request) string {
	if forwarded := r.Header.Get("X-Forwarded-For"); forwarded != "" {
		ip, _, _ := strings.Cut(forwarded, ",")
		return strings.TrimSpace(ip)
	}

	host, _, err := net.SplitHostPort(r.RemoteAddr)
	if err != nil {
		return r.RemoteAddr
	}
	return host
}

// register reserves a slot for c. It fails when the engine is closed or
// full.
func (s *service) register(c *conn) bool {
	s.connMu.Lock()
	defer s.connMu.Unlock()

	if s.closed || len(s.connections) >= s.maxConnections {
		return false
	}

	s.connections[c.id] = c
	s.wg.Add(1)
	return true
}

func (s *service) cleanup(c *conn) {
	s.connMu.Lock()
	delete(s.connections, c.id)
	s.connMu.Unlock()

	c.cancel()
	_ = c.ws.Close()

	s.metrics.connectionClosed(context.Background())
	logger.Info(context.Background(), "websocket client disconnected",
		"websocket.connection_id", c.id,
		"websocket.messages_sent", c.messagesSent.Load(),
	)
}

func (s *service) ServeHTTP(w http.ResponseWriter, r *http.Request) {
	ctx, cancel := context.WithCancel(context.WithoutCancel(r.Context()))
	c := &conn{
		id:          uuid.NewString(),
		clientIP:    clientIP(r),
		userAgent:   r.UserAgent(),
		connectedAt: s.now(),
		inbox:       make(chan outbound, s.messageBufferSize),
		ctx:         ctx,
		cancel:      cancel,
	}
	c.lastPing = c.connectedAt

	if !s.register(c) {
		cancel()
		http.Error(w, "too many websocket connections", http.StatusServiceUnavailable)
		return
	}
	defer s.wg.Done()

	ws, err := s.upgrader.Upgrade(w, r, nil)
	if err != nil {
		s.connMu.Lock()
		delete(s.connections, c.id)
		s.connMu.Unlock()
		cancel()

		logger.Warn(r.Context(), "websocket upgrade failed", "error", err)
		return
	}
	ws.SetReadLimit(maxMessageSize)

	s.connMu.Lock()
	c.ws = ws
	s.connMu.Unlock()

	s.stats.totalConnections.Add(1)
	s.metrics.connectionOpened(ctx)
	logger.Info(ctx, "websocket client connected",
		"websocket.connection_id", c.id,
		"websocket.client_ip", c.clientIP,
	)

	s.serve(c)
}

func (s *service) Start(ctx context.Context, events <-chan chain.TransactionEvent) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isStarted {
		return ErrServiceAlreadyStarted
	}

	ctx, cancel := context.WithCancel(ctx)

	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer wg.Done()
		for {
			event, ok := chflow.Receive(ctx, events)
			if !ok {
				return
			}
			s.Broadcast(event)
		}
	}()

	s.closeFunc = func() {
		cancel()
		wg.Wait()
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

	s.connMu.Lock()
	s.closed = true
	for _, c := range s.connections {
		c.cancel()
	}
	s.connMu.Unlock()

	s.wg.Wait()

	s.isStarted = false
	s.closeFunc = nil
}

// fanout queues item in every inbox.
func (s *service) fanout(item outbound) {
	s.connMu.Lock()
	defer s.connMu.Unlock()

	for _, c := range s.connections {
		if c.ws == nil {
			continue
		}

		if dropped := chflow.SendDropOldest(c.inbox, item); dropped > 0 {
			c.dropped.Add(uint64(dropped))
			s.stats.dropped.Add(uint64(dropped))
		}
	}
}

func (s *service) Broadcast(event chain.TransactionEvent) {
	s.fanout(outbound{event: &event})
}

func (s *service) SendSystemNotification(message, level string) {
	s.fanout(outbound{notice: &SystemNotificationFrame{
		Type:      TypeSystemNotification,
		Message:   message,
		Level:     level,
		Timestamp: s.now().Unix(),
	}})
}

func (s *service) live() []*conn {
	s.connMu.Lock()
	defer s.connMu.Unlock()

	live := make([]*conn, 0, len(s.connections))
	for c := range maps.Values(s.connections) {
		if c.ws != nil {
			live = append(live, c)
		}
	}
	return live
}

func (s *service) Connections() []Connection {
	live := s.live()

	connections := make([]Connection, 0, len(live))
	for _, c := range live {
		connections = append(connections, c.snapshot())
	}

	slices.SortFunc(connections, func(a, b Connection) int {
		return a.ConnectedAt.Compare(b.ConnectedAt)
	})
	return connections
}

func (s *service) Disconnect(id string) error {
	s.connMu.Lock()
	c, ok := s.connections[id]
	s.connMu.Unlock()

	if !ok {
		return ErrConnectionNotFound
	}

	c.cancel()
	return nil
}

func (s *service) Stats() Stats {
	live := s.live()

	stats := Stats{
		TotalConnections:  s.stats.totalConnections.Load(),
		ActiveConnections: len(live),
		MessagesSent:      s.stats.messagesSent.Load(),
		MessagesReceived:  s.stats.messagesReceived.Load(),
		BytesSent:         s.stats.bytesSent.Load(),
		BytesReceived:     s.stats.bytesReceived.Load(),
		DroppedMessages:   s.stats.dropped.Load(),
		UptimeSeconds:     int64(s.now().Sub(s.startedAt).Seconds()),
	}
	for _, c := range live {
		stats.TotalSubscriptions += c.subscriptionCount()
	}

	return stats
}

type config struct {
	maxConnections    int
	pingInterval      time.Duration
	messageBufferSize int
	checkOrigin       func(r *http.Request) bool
}

// Option configures the engine.
type Option func(*config)

func New(opts ...Option) *service {
	cfg := config{
		maxConnections:    defaultMaxConnections,
		pingInterval:      defaultPingInterval,
		messageBufferSize: defaultMessageBufferSize,
		checkOrigin:       func(*http.Request) bool { return true },
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		upgrader: gws.Upgrader{
			ReadBufferSize:  4096,
			WriteBufferSize: 4096,
			CheckOrigin:     cfg.checkOrigin,
		},
		maxConnections:    cfg.maxConnections,
		pingInterval:      cfg.pingInterval,
		messageBufferSize: cfg.messageBufferSize,
		now:               time.Now,
		startedAt:         time.Now(),
		connections:       make(map[string]*conn),
		metrics:           newInstruments(),
	}
}

// WithMaxConnections refuses upgrades with 503 once n clients are
// connected. Default: 10000.
func WithMaxConnections(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.maxConnections = n
		}
	}
}

// WithPingInterval sets the heartbeat period. Default: 30 seconds.
func WithPingInterval(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.pingInterval = d
		}
	}
}

// WithMessageBufferSize bounds each connection's inbox. Default: 1000.
func WithMessageBufferSize(n int) Option {
	return func(c *config) {
		if n > 0 {
			c.messageBufferSize = n
		}
	}
}

// WithCheckOrigin replaces the upgrade origin check. By default every
// origin is accepted.
func WithCheckOrigin(f func(r *http.Request) bool) Option {
	return func(c *config) {
		c.checkOrigin = f
	}
}
