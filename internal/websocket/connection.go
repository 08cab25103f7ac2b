package websocket

import (
	"context"
	"encoding/json"
	"errors"
	"slices"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gabapcia/txtracker/internal/chain"
	"github.com/gabapcia/txtracker/internal/pkg/logger"
	"github.com/gabapcia/txtracker/internal/pkg/validator"

	"github.com/google/uuid"
	gws "github.com/gorilla/websocket"
)

const (
	writeWait      = 10 * time.Second
	maxMessageSize = 64 << 10
)

// Connection is a snapshot of a live client.
type Connection struct {
	ID               string    `json:"id"`
	ClientIP         string    `json:"client_ip"`
	UserAgent        string    `json:"user_agent,omitempty"`
	ConnectedAt      time.Time `json:"connected_at"`
	LastPing         time.Time `json:"last_ping"`
	Subscriptions    []string  `json:"subscriptions"`
	MessagesSent     uint64    `json:"messages_sent"`
	MessagesReceived uint64    `json:"messages_received"`
	BytesSent        uint64    `json:"bytes_sent"`
	BytesReceived    uint64    `json:"bytes_received"`
	Dropped          uint64    `json:"dropped"`
}

type subscriptionEntry struct {
	id           string
	subscription Subscription
}

// outbound is one broadcast item queued for a connection.
type outbound struct {
	event  *chain.TransactionEvent
	notice *SystemNotificationFrame
}

type conn struct {
	id          string
	clientIP    string
	userAgent   string
	connectedAt time.Time

	ws     *gws.Conn
	inbox  chan outbound
	ctx    context.Context
	cancel context.CancelFunc

	mu            sync.Mutex
	subscriptions []subscriptionEntry
	lastPing      time.Time

	messagesSent     atomic.Uint64
	messagesReceived atomic.Uint64
	bytesSent        atomic.Uint64
	bytesReceived    atomic.Uint64
	dropped          atomic.Uint64
}

func (c *conn) snapshot() Connection {
	c.mu.Lock()
	ids := make([]string, 0, len(c.subscriptions))
	for _, entry := range c.subscriptions {
		ids = append(ids, entry.id)
	}
	lastPing := c.lastPing
	c.mu.Unlock()

	return Connection{
		ID:               c.id,
		ClientIP:         c.clientIP,
		UserAgent:        c.userAgent,
		ConnectedAt:      c.connectedAt,
		LastPing:         lastPing,
		Subscriptions:    ids,
		MessagesSent:     c.messagesSent.Load(),
		MessagesReceived: c.messagesReceived.Load(),
		BytesSent:        c.bytesSent.Load(),
		BytesReceived:    c.bytesReceived.Load(),
		Dropped:          c.dropped.Load(),
	}
}

func (c *conn) subscriptionCount() int {
	c.mu.Lock()
	defer c.mu.Unlock()
	return len(c.subscriptions)
}

func (c *conn) subscribe(sub Subscription) string {
	id := uuid.NewString()

	c.mu.Lock()
	defer c.mu.Unlock()

	c.subscriptions = append(c.subscriptions, subscriptionEntry{id: id, subscription: sub})
	return id
}

func (c *conn) unsubscribe(id string) bool {
	c.mu.Lock()
	defer c.mu.Unlock()

	i := slices.IndexFunc(c.subscriptions, func(entry subscriptionEntry) bool { return entry.id == id })
	if i < 0 {
		return false
	}

	c.subscriptions = slices.Delete(c.subscriptions, i, i+1)
	return true
}

// matching returns the ids of the subscriptions that want event, in
// subscription order.
func (c *conn) matching(event chain.TransactionEvent) []string {
	c.mu.Lock()
	defer c.mu.Unlock()

	var ids []string
	for _, entry := range c.subscriptions {
		if entry.subscription.Matches(event) {
			ids = append(ids, entry.id)
		}
	}
	return ids
}

func (c *conn) touchPing(at time.Time) {
	c.mu.Lock()
	defer c.mu.Unlock()
	c.lastPing = at
}

// write sends one JSON frame. Only the connection loop writes.
func (s *service) write(c *conn, frameType string, frame any) error {
	data, err := json.Marshal(frame)
	if err != nil {
		return err
	}

	if err := c.ws.SetWriteDeadline(time.Now().Add(writeWait)); err != nil {
		return err
	}
	if err := c.ws.WriteMessage(gws.TextMessage, data); err != nil {
		return err
	}

	c.messagesSent.Add(1)
	c.bytesSent.Add(uint64(len(data)))
	s.stats.messagesSent.Add(1)
	s.stats.bytesSent.Add(uint64(len(data)))
	s.metrics.frameSent(c.ctx, frameType)

	return nil
}

// readLoop forwards client frames until the socket fails. It is the only
// reader of c.ws.
func (s *service) readLoop(c *conn, frames chan<- []byte, errCh chan<- error) {
	for {
		_, data, err := c.ws.ReadMessage()
		if err != nil {
			errCh <- err
			return
		}

		c.messagesReceived.Add(1)
		c.bytesReceived.Add(uint64(len(data)))
		s.stats.messagesReceived.Add(1)
		s.stats.bytesReceived.Add(uint64(len(data)))

		select {
		case frames <- data:
		case <-c.ctx.Done():
			return
		}
	}
}

// handleClientFrame applies one client frame to c.
func (s *service) handleClientFrame(c *conn, data []byte) error {
	frame, err := decodeClientFrame(data)
	if err != nil {
		return err
	}

	switch frame.Type {
	case TypeSubscribe:
		if err := validator.Validate(*frame.Subscription); err != nil {
			return &protocolError{code: CodeInvalidSubscription, message: err.Error(), fatal: true}
		}

		id := c.subscribe(*frame.Subscription)
		logger.Debug(c.ctx, "websocket client subscribed", "websocket.connection_id", c.id, "websocket.subscription_id", id)
		return s.write(c, TypeSubscribed, SubscribedFrame{Type: TypeSubscribed, SubscriptionID: id})

	case TypeUnsubscribe:
		if !c.unsubscribe(frame.SubscriptionID) {
			return &protocolError{code: CodeSubscriptionNotFound, message: "unknown subscription " + frame.SubscriptionID}
		}
		logger.Debug(c.ctx, "websocket client unsubscribed", "websocket.connection_id", c.id, "websocket.subscription_id", frame.SubscriptionID)

	case TypePong:
		c.touchPing(s.now())
	}

	return nil
}

// deliver writes the frames item produces for c.
func (s *service) deliver(c *conn, item outbound) error {
	if item.notice != nil {
		return s.write(c, TypeSystemNotification, *item.notice)
	}

	event := *item.event
	for _, id := range c.matching(event) {
		if err := s.write(c, TypeTransactionNotification, TransactionNotificationFrame{
			Type:           TypeTransactionNotification,
			Transaction:    event.Transaction,
			EventType:      event.Type,
			SubscriptionID: id,
		}); err != nil {
			return err
		}
	}

	return nil
}

// serve runs the connection loop until the client leaves, a write fails,
// a fatal protocol error happens or the connection is cancelled.
func (s *service) serve(c *conn) {
	defer s.cleanup(c)

	frames := make(chan []byte)
	readErr := make(chan error, 1)

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.readLoop(c, frames, readErr)
	}()

	if err := s.write(c, TypeConnected, ConnectedFrame{
		Type:         TypeConnected,
		ConnectionID: c.id,
		ServerTime:   s.now().Unix(),
	}); err != nil {
		logger.Warn(c.ctx, "failed to greet websocket client", "websocket.connection_id", c.id, "error", err)
		return
	}

	ticker := time.NewTicker(s.pingInterval)
	defer ticker.Stop()

	for {
		select {
		case <-c.ctx.Done():
			_ = c.ws.WriteControl(gws.CloseMessage,
				gws.FormatCloseMessage(gws.CloseGoingAway, "server closing connection"),
				time.Now().Add(writeWait),
			)
			return

		case err := <-readErr:
			if !gws.IsCloseError(err, gws.CloseNormalClosure, gws.CloseGoingAway, gws.CloseNoStatusReceived) {
				logger.Warn(c.ctx, "websocket read failed", "websocket.connection_id", c.id, "error", err)
			}
			return

		case data := <-frames:
			err := s.handleClientFrame(c, data)
			if err == nil {
				continue
			}

			var perr *protocolError
			if !errors.As(err, &perr) {
				logger.Warn(c.ctx, "websocket write failed", "websocket.connection_id", c.id, "error", err)
				return
			}

			logger.Warn(c.ctx, "websocket protocol error", "websocket.connection_id", c.id, "error", perr)
			if werr := s.write(c, TypeError, perr.frame()); werr != nil || perr.fatal {
				return
			}

		case item := <-c.inbox:
			if err := s.deliver(c, item); err != nil {
				logger.Warn(c.ctx, "websocket write failed", "websocket.connection_id", c.id, "error", err)
				return
			}

		case <-ticker.C:
			if err := s.write(c, TypePing, PingFrame{Type: TypePing, Timestamp: s.now().Unix()}); err != nil {
				logger.Warn(c.ctx, "websocket heartbeat failed", "websocket.connection_id", c.id, "error", err)
				return
			}
		}
	}
}
