// Package nats exports transaction events to a NATS JetStream stream so that
// consumers outside the process can follow the chain.
package nats

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/gabapcia/txtracker/internal/chain"
	"github.com/gabapcia/txtracker/internal/eventbus"
	"github.com/gabapcia/txtracker/internal/pkg/logger"

	"github.com/nats-io/nats.go"
)

const (
	defaultStream        = "TXTRACKER_EVENTS"
	defaultSubjectPrefix = "txtracker.events"
	defaultMaxAge        = 24 * time.Hour
)

type sink struct {
	conn          *nats.Conn
	js            nats.JetStreamContext
	stream        string
	subjectPrefix string
}

type config struct {
	stream        string
	subjectPrefix string
	maxAge        time.Duration
}

// Option configures the sink.
type Option func(*config)

// WithStream sets the JetStream stream name. Defaults to TXTRACKER_EVENTS.
func WithStream(name string) Option {
	return func(c *config) {
		c.stream = name
	}
}

// WithSubjectPrefix sets the subject prefix. Events are published on
// "<prefix>.<event_type>".
func WithSubjectPrefix(prefix string) Option {
	return func(c *config) {
		c.subjectPrefix = prefix
	}
}

// WithMaxAge bounds how long the stream retains events.
func WithMaxAge(d time.Duration) Option {
	return func(c *config) {
		c.maxAge = d
	}
}

// Subject returns the subject an event of type et is published on.
func (s *sink) Subject(et chain.EventType) string {
	return fmt.Sprintf("%s.%s", s.subjectPrefix, et)
}

// msgID makes JetStream drop duplicates when a block is re-scanned inside
// the stream's duplicate window.
func msgID(event chain.TransactionEvent) string {
	return fmt.Sprintf("%s:%s", event.Transaction.Hash, event.Type)
}

// Publish writes event to the stream and waits for the JetStream ack.
func (s *sink) Publish(ctx context.Context, event chain.TransactionEvent) error {
	data, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("failed to marshal event: %w", err)
	}

	msg := nats.NewMsg(s.Subject(event.Type))
	msg.Data = data

	if _, err := s.js.PublishMsg(msg, nats.Context(ctx), nats.MsgId(msgID(event))); err != nil {
		return fmt.Errorf("failed to publish to nats: %w", err)
	}

	return nil
}

// Close drains pending acks and closes the connection.
func (s *sink) Close() error {
	if err := s.conn.Drain(); err != nil && !errors.Is(err, nats.ErrConnectionClosed) {
		return err
	}
	return nil
}

// ensureStream creates the stream when it does not exist yet.
func ensureStream(ctx context.Context, js nats.JetStreamContext, cfg config) error {
	_, err := js.StreamInfo(cfg.stream, nats.Context(ctx))
	if err == nil {
		return nil
	}
	if !errors.Is(err, nats.ErrStreamNotFound) {
		return err
	}

	logger.Info(ctx, "creating nats stream", "nats.stream", cfg.stream, "nats.subjects", cfg.subjectPrefix+".>")

	_, err = js.AddStream(&nats.StreamConfig{
		Name:      cfg.stream,
		Subjects:  []string{cfg.subjectPrefix + ".>"},
		Retention: nats.LimitsPolicy,
		Storage:   nats.FileStorage,
		MaxAge:    cfg.maxAge,
		Replicas:  1,
	}, nats.Context(ctx))
	return err
}

// NewSink connects to url and makes sure the stream exists.
func NewSink(ctx context.Context, url string, opts ...Option) (*sink, error) {
	cfg := config{
		stream:        defaultStream,
		subjectPrefix: defaultSubjectPrefix,
		maxAge:        defaultMaxAge,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if url == "" {
		url = nats.DefaultURL
	}

	conn, err := nats.Connect(url,
		nats.Name("txtracker"),
		nats.RetryOnFailedConnect(true),
		nats.MaxReconnects(-1),
		nats.DisconnectErrHandler(func(_ *nats.Conn, err error) {
			if err != nil {
				logger.Warn(context.Background(), "nats disconnected", "error", err)
			}
		}),
		nats.ReconnectHandler(func(nc *nats.Conn) {
			logger.Info(context.Background(), "nats reconnected", "nats.url", nc.ConnectedUrl())
		}),
	)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to nats: %w", err)
	}

	js, err := conn.JetStream()
	if err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to create jetstream context: %w", err)
	}

	if err := ensureStream(ctx, js, cfg); err != nil {
		conn.Close()
		return nil, fmt.Errorf("failed to ensure stream %s: %w", cfg.stream, err)
	}

	return &sink{
		conn:          conn,
		js:            js,
		stream:        cfg.stream,
		subjectPrefix: cfg.subjectPrefix,
	}, nil
}

var _ eventbus.Sink = (*sink)(nil)
