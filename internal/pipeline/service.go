// Package pipeline wires the scanner to its downstream delivery engines
// through the event distributor and owns their combined lifecycle.
package pipeline

import (
	"context"
	"errors"
	"sync"

	"github.com/gabapcia/txtracker/internal/chain"
	"github.com/gabapcia/txtracker/internal/eventbus"
)

// ErrServiceAlreadyStarted is returned if Start is called more than once.
var ErrServiceAlreadyStarted = errors.New("service already started")

type (
	// Scanner is the event producer.
	Scanner interface {
		Start(ctx context.Context) error
		Close()
	}

	// Engine consumes its own subscription of the event stream.
	Engine interface {
		Start(ctx context.Context, events <-chan chain.TransactionEvent) error
		Close()
	}

	// Distributor hands every event the scanner publishes to each
	// subscription.
	Distributor interface {
		Subscribe(name string, size int, policy eventbus.Policy) (<-chan chain.TransactionEvent, error)
		Close()
	}
)

// Service is the pipeline lifecycle.
type Service interface {
	// Start subscribes every engine, starts them and then starts the scanner.
	// When any step fails, everything started so far is closed.
	Start(ctx context.Context) error

	// Close stops the scanner first, then the engines, then the distributor.
	// It is safe to call Close even if the service was never started.
	Close()
}

type closeFunc func()

type consumer struct {
	name       string
	bufferSize int
	policy     eventbus.Policy
	engine     Engine
}

type service struct {
	mu        sync.Mutex
	isStarted bool
	closeFunc closeFunc

	scanner     Scanner
	distributor Distributor
	consumers   []consumer
}

var _ Service = (*service)(nil)

func (s *service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isStarted {
		return ErrServiceAlreadyStarted
	}

	ctx, cancel := context.WithCancel(ctx)

	var started []Engine
	closeEngines := func() {
		for _, engine := range started {
			engine.Close()
		}
	}

	for _, c := range s.consumers {
		events, err := s.distributor.Subscribe(c.name, c.bufferSize, c.policy)
		if err != nil {
			cancel()
			closeEngines()
			return err
		}

		if err := c.engine.Start(ctx, events); err != nil {
			cancel()
			closeEngines()
			return err
		}
		started = append(started, c.engine)
	}

	if err := s.scanner.Start(ctx); err != nil {
		cancel()
		closeEngines()
		return err
	}

	s.closeFunc = func() {
		s.scanner.Close()
		closeEngines()
		s.distributor.Close()
		cancel()
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

// Option configures the pipeline.
type Option func(*service)

// WithEngine subscribes engine to the distributor under name with a buffer
// of bufferSize events handled according to policy.
func WithEngine(name string, bufferSize int, policy eventbus.Policy, engine Engine) Option {
	return func(s *service) {
		s.consumers = append(s.consumers, consumer{
			name:       name,
			bufferSize: bufferSize,
			policy:     policy,
			engine:     engine,
		})
	}
}

// New creates the pipeline. The scanner must publish into distributor.
func New(scanner Scanner, distributor Distributor, opts ...Option) *service {
	s := &service{
		scanner:     scanner,
		distributor: distributor,
	}
	for _, opt := range opts {
		opt(s)
	}

	return s
}
