// Package webhook delivers transaction events to HTTP subscribers.
//
// Every enabled subscription whose filter matches an event receives a
// signed JSON envelope. Failed attempts are re-enqueued with exponential
// backoff through timers, so no worker sleeps while a retry is pending.
package webhook

import (
	"context"
	"errors"
	"fmt"
	"maps"
	"sync"
	"sync/atomic"
	"time"

	"github.com/gabapcia/txtracker/internal/chain"
	"github.com/gabapcia/txtracker/internal/pkg/logger"
	transporthttp "github.com/gabapcia/txtracker/internal/pkg/transport/http"
	"github.com/gabapcia/txtracker/internal/pkg/validator"
	"github.com/gabapcia/txtracker/internal/pkg/x/chflow"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"
	"golang.org/x/sync/semaphore"
)

// ErrServiceAlreadyStarted is returned if Start is called more than once.
var ErrServiceAlreadyStarted = errors.New("service already started")

const (
	defaultMaxConcurrency = 100
	defaultUserAgent      = "txtracker-webhook/1.0"
)

// Service is the webhook delivery engine.
type Service interface {
	// Start consumes events until ctx is cancelled, the channel is closed
	// or Close is called.
	Start(ctx context.Context, events <-chan chain.TransactionEvent) error

	// Close stops consuming, cancels pending retries and waits for
	// in-flight deliveries.
	Close()

	// HandleEvent enqueues one delivery per enabled subscription matching
	// event.
	HandleEvent(ctx context.Context, event chain.TransactionEvent) error

	// TriggerManually delivers event to one subscription, bypassing its
	// filter.
	TriggerManually(ctx context.Context, webhookID string, event chain.TransactionEvent) error

	// Test POSTs payload to url and waits for the result. Nothing is
	// persisted and failures are not retried. A nil payload sends the
	// default test envelope.
	Test(ctx context.Context, url, secret string, payload []byte) (DeliveryResult, error)

	// ClearQueue cancels every pending retry and returns how many were
	// dropped.
	ClearQueue() int

	QueueStatus() QueueStatus

	// Register validates w, assigns it an id and saves it.
	Register(ctx context.Context, w Webhook) (Webhook, error)
	Webhooks(ctx context.Context) ([]Webhook, error)
	Remove(ctx context.Context, id string) error
	DeliveryLogs(ctx context.Context, webhookID string, limit int) ([]DeliveryLog, error)
}

type closeFunc func()

type service struct {
	mu        sync.Mutex
	isStarted bool
	closeFunc closeFunc

	storage    Storage
	httpClient *retryablehttp.Client
	backoff    BackoffFunc
	userAgent  string
	now        func() time.Time

	defaultTimeout time.Duration
	sem            *semaphore.Weighted

	queueMu     sync.Mutex
	ctx         context.Context
	cancel      context.CancelFunc
	closed      bool
	retries     map[uint64]*time.Timer
	nextRetryID uint64

	wg       sync.WaitGroup
	inFlight atomic.Int64
	stats    stats

	metrics instruments
}

var _ Service = (*service)(nil)

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

			if err := s.HandleEvent(ctx, event); err != nil {
				logger.Error(ctx, "failed to handle webhook event",
					"transaction.hash", event.Transaction.Hash,
					"error", err,
				)
			}
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

	s.queueMu.Lock()
	s.closed = true
	s.cancel()
	s.queueMu.Unlock()

	if n := s.ClearQueue(); n > 0 {
		logger.Warn(context.Background(), "pending webhook retries dropped on close", "webhook.dropped", n)
	}

	s.wg.Wait()

	s.isStarted = false
	s.closeFunc = nil
}

func (s *service) HandleEvent(ctx context.Context, event chain.TransactionEvent) error {
	webhooks, err := s.storage.EnabledWebhooks(ctx)
	if err != nil {
		return fmt.Errorf("failed to load enabled webhooks: %w", err)
	}

	now := s.now()
	for _, w := range webhooks {
		if !w.Matches(event) {
			continue
		}

		payload, err := NewPayload(w.ID, event, now)
		if err != nil {
			return err
		}

		s.dispatch(newTask(w, payload, s.defaultTimeout))
	}

	return nil
}

func (s *service) TriggerManually(ctx context.Context, webhookID string, event chain.TransactionEvent) error {
	w, err := s.storage.Webhook(ctx, webhookID)
	if err != nil {
		return err
	}

	payload, err := NewPayload(w.ID, event, s.now())
	if err != nil {
		return err
	}

	s.dispatch(newTask(w, payload, s.defaultTimeout))
	return nil
}

func (s *service) Test(ctx context.Context, url, secret string, payload []byte) (DeliveryResult, error) {
	if err := validator.Var(url, "required,http_url"); err != nil {
		return DeliveryResult{}, err
	}

	if payload == nil {
		var err error
		if payload, err = NewTestPayload(s.now()); err != nil {
			return DeliveryResult{}, err
		}
	}

	return s.send(ctx, DeliveryTask{
		URL:     url,
		Secret:  secret,
		Payload: payload,
		Attempt: 1,
		Timeout: s.defaultTimeout,
	}), nil
}

func (s *service) ClearQueue() int {
	s.queueMu.Lock()
	pending := s.retries
	s.retries = make(map[uint64]*time.Timer)
	s.queueMu.Unlock()

	for timer := range maps.Values(pending) {
		timer.Stop()
	}

	return len(pending)
}

func (s *service) QueueStatus() QueueStatus {
	status := s.stats.snapshot()

	s.queueMu.Lock()
	status.PendingRetries = len(s.retries)
	s.queueMu.Unlock()

	status.InFlight = s.inFlight.Load()
	return status
}

func (s *service) Register(ctx context.Context, w Webhook) (Webhook, error) {
	if err := validator.Validate(w); err != nil {
		return Webhook{}, err
	}

	now := s.now()
	if w.ID == "" {
		w.ID = uuid.NewString()
	}
	if w.CreatedAt.IsZero() {
		w.CreatedAt = now
	}
	w.UpdatedAt = now
	if w.Timeout == 0 {
		w.Timeout = s.defaultTimeout
	}

	if err := s.storage.SaveWebhook(ctx, w); err != nil {
		return Webhook{}, err
	}

	return w, nil
}

func (s *service) Webhooks(ctx context.Context) ([]Webhook, error) {
	return s.storage.Webhooks(ctx)
}

func (s *service) Remove(ctx context.Context, id string) error {
	return s.storage.DeleteWebhook(ctx, id)
}

func (s *service) DeliveryLogs(ctx context.Context, webhookID string, limit int) ([]DeliveryLog, error) {
	return s.storage.DeliveryLogs(ctx, webhookID, limit)
}

type config struct {
	httpClient     *retryablehttp.Client
	backoff        BackoffFunc
	maxConcurrency int64
	userAgent      string
	defaultTimeout time.Duration
}

// Option configures the engine.
type Option func(*config)

// New creates the engine. It accepts HandleEvent calls right away; Start
// only attaches an event stream.
func New(storage Storage, opts ...Option) *service {
	cfg := config{
		backoff:        Backoff,
		maxConcurrency: defaultMaxConcurrency,
		userAgent:      defaultUserAgent,
		defaultTimeout: defaultTimeout,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	if cfg.httpClient == nil {
		cfg.httpClient = transporthttp.NewClient(
			transporthttp.WithTimeout(0),
			transporthttp.WithRetryMax(0),
			transporthttp.WithPassthroughErrors(),
		)
	}

	ctx, cancel := context.WithCancel(context.Background())

	return &service{
		storage:    storage,
		httpClient: cfg.httpClient,
		backoff:    cfg.backoff,
		userAgent:  cfg.userAgent,
		now:        time.Now,

		defaultTimeout: cfg.defaultTimeout,
		sem:            semaphore.NewWeighted(cfg.maxConcurrency),
		ctx:            ctx,
		cancel:         cancel,
		retries:        make(map[uint64]*time.Timer),
		metrics:        newInstruments(),
	}
}

// WithHTTPClient replaces the delivery client. Its transport-level retries
// should be disabled.
func WithHTTPClient(c *retryablehttp.Client) Option {
	return func(cfg *config) {
		cfg.httpClient = c
	}
}

// WithBackoff replaces the retry delay policy. Default: Backoff.
func WithBackoff(f BackoffFunc) Option {
	return func(cfg *config) {
		cfg.backoff = f
	}
}

// WithMaxConcurrency bounds simultaneous HTTP deliveries. Default: 100.
func WithMaxConcurrency(n int) Option {
	return func(cfg *config) {
		if n > 0 {
			cfg.maxConcurrency = int64(n)
		}
	}
}

func WithUserAgent(ua string) Option {
	return func(cfg *config) {
		cfg.userAgent = ua
	}
}

// WithDefaultTimeout sets the per-attempt timeout of webhooks registered
// without one and of test deliveries. Default: 30s.
func WithDefaultTimeout(d time.Duration) Option {
	return func(cfg *config) {
		if d > 0 {
			cfg.defaultTimeout = d
		}
	}
}
