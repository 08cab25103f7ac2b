// Package eventbus fans scanner events out to independent in-process
// consumers.
//
// Every subscriber owns a bounded buffer and a Policy deciding what happens
// when it is full: DropOldest subscribers lose their oldest queued event,
// Block subscribers hold the publisher back until there is room.
package eventbus

import (
	"context"
	"errors"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gabapcia/txtracker/internal/chain"
	"github.com/gabapcia/txtracker/internal/pkg/logger"
	"github.com/gabapcia/txtracker/internal/pkg/x/chflow"
)

// ErrDistributorClosed is returned by Subscribe after Close.
var ErrDistributorClosed = errors.New("distributor closed")

const (
	defaultBufferSize  = 1000
	defaultSinkTimeout = 5 * time.Second
)

// Policy decides what Publish does when a subscriber's buffer is full.
type Policy int

const (
	// DropOldest discards the oldest queued event. Publish never waits.
	DropOldest Policy = iota

	// Block waits for room in the buffer until the publish context is done.
	// Nothing is dropped while the publisher is alive.
	Block
)

func (p Policy) String() string {
	switch p {
	case DropOldest:
		return "drop_oldest"
	case Block:
		return "block"
	default:
		return "unknown"
	}
}

// Sink receives every published event synchronously, before subscribers.
// Each call is bounded by the sink timeout. Sink errors are logged and never
// stop the distribution.
type Sink interface {
	Publish(ctx context.Context, event chain.TransactionEvent) error
}

// SubscriberStats describes one subscriber's buffer.
type SubscriberStats struct {
	Name      string `json:"name"`
	Policy    string `json:"policy"`
	Buffered  int    `json:"buffered"`
	Capacity  int    `json:"capacity"`
	Delivered uint64 `json:"delivered"`
	Dropped   uint64 `json:"dropped"`
}

type subscriber struct {
	name      string
	policy    Policy
	ch        chan chain.TransactionEvent
	delivered atomic.Uint64
	dropped   atomic.Uint64
}

// Distributor is a single-producer, multi-consumer event fanout.
type Distributor struct {
	publishMu sync.Mutex

	mu          sync.RWMutex
	closed      bool
	subscribers []*subscriber

	sinks       []Sink
	sinkTimeout time.Duration
}

type config struct {
	sinks       []Sink
	sinkTimeout time.Duration
}

// Option configures a Distributor.
type Option func(*config)

// WithSink attaches a synchronous sink such as a message broker publisher.
func WithSink(s Sink) Option {
	return func(c *config) {
		c.sinks = append(c.sinks, s)
	}
}

// WithSinkTimeout bounds every sink call. Default: 5s.
func WithSinkTimeout(d time.Duration) Option {
	return func(c *config) {
		if d > 0 {
			c.sinkTimeout = d
		}
	}
}

func New(opts ...Option) *Distributor {
	cfg := config{sinkTimeout: defaultSinkTimeout}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &Distributor{sinks: cfg.sinks, sinkTimeout: cfg.sinkTimeout}
}

// Subscribe registers a named consumer with a buffer of the given size
// (1000 when size is not positive) handled according to policy. The
// returned channel is closed by Close.
func (d *Distributor) Subscribe(name string, size int, policy Policy) (<-chan chain.TransactionEvent, error) {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return nil, ErrDistributorClosed
	}

	if size <= 0 {
		size = defaultBufferSize
	}

	sub := &subscriber{name: name, policy: policy, ch: make(chan chain.TransactionEvent, size)}
	d.subscribers = append(d.subscribers, sub)
	return sub.ch, nil
}

func (d *Distributor) publishToSinks(ctx context.Context, event chain.TransactionEvent) {
	for _, sink := range d.sinks {
		sinkCtx, cancel := context.WithTimeout(ctx, d.sinkTimeout)
		err := sink.Publish(sinkCtx, event)
		cancel()

		if err != nil {
			logger.Warn(ctx, "event sink publish failed",
				"transaction.hash", event.Transaction.Hash,
				"error", err,
			)
		}
	}
}

func (d *Distributor) deliver(ctx context.Context, sub *subscriber, event chain.TransactionEvent) {
	if sub.policy == Block {
		if chflow.TrySend(sub.ch, event) || chflow.Send(ctx, sub.ch, event) {
			sub.delivered.Add(1)
			return
		}

		sub.dropped.Add(1)
		logger.Warn(ctx, "publisher stopped before a blocking subscriber accepted the event",
			"subscriber.name", sub.name,
			"transaction.hash", event.Transaction.Hash,
		)
		return
	}

	if dropped := chflow.SendDropOldest(sub.ch, event); dropped > 0 {
		sub.dropped.Add(uint64(dropped))
		logger.Warn(ctx, "subscriber lagging, dropped oldest events",
			"subscriber.name", sub.name,
			"subscriber.dropped", dropped,
		)
	}
	sub.delivered.Add(1)
}

// Publish hands event to every sink and then to every subscriber, in
// subscription order. It waits only on Block subscribers, and only until ctx
// is done. Concurrent calls are serialized.
func (d *Distributor) Publish(ctx context.Context, event chain.TransactionEvent) {
	d.publishMu.Lock()
	defer d.publishMu.Unlock()

	d.publishToSinks(ctx, event)

	d.mu.RLock()
	defer d.mu.RUnlock()

	if d.closed {
		return
	}

	for _, sub := range d.subscribers {
		d.deliver(ctx, sub, event)
	}
}

// Stats returns one entry per subscriber, in subscription order.
func (d *Distributor) Stats() []SubscriberStats {
	d.mu.RLock()
	defer d.mu.RUnlock()

	stats := make([]SubscriberStats, len(d.subscribers))
	for i, sub := range d.subscribers {
		stats[i] = SubscriberStats{
			Name:      sub.name,
			Policy:    sub.policy.String(),
			Buffered:  len(sub.ch),
			Capacity:  cap(sub.ch),
			Delivered: sub.delivered.Load(),
			Dropped:   sub.dropped.Load(),
		}
	}

	return stats
}

// Close closes every subscriber channel. Publish becomes a no-op. A Publish
// waiting on a Block subscriber holds Close back until its context is done.
func (d *Distributor) Close() {
	d.mu.Lock()
	defer d.mu.Unlock()

	if d.closed {
		return
	}

	d.closed = true
	for _, sub := range d.subscribers {
		close(sub.ch)
	}
}
