// Package retry wraps avast/retry-go with a small interface and functional
// options. Operations are retried with exponential backoff, bounded by a
// maximum delay and honoring context cancellation.
package retry

import (
	"context"
	"time"

	retry "github.com/avast/retry-go/v4"
)

// Retry executes operations with automatic retry logic.
type Retry interface {
	// Execute runs operation until it succeeds, the attempts are exhausted or
	// ctx is done. The operation must be safe to call more than once.
	Execute(ctx context.Context, operation func() error) error
}

// OnRetryFunc is invoked after every failed attempt, with the zero-based
// attempt number and the error it returned.
type OnRetryFunc func(attempt uint, err error)

type config struct {
	attempts    uint
	delay       time.Duration
	maxDelay    time.Duration
	lastErrOnly bool
	onRetry     OnRetryFunc
	retryIf     func(error) bool
}

// Option configures the retry mechanism.
type Option func(*config)

type retrier struct {
	cfg config
}

var _ Retry = (*retrier)(nil)

// New returns a Retry configured with the given options.
//
// Defaults: 3 attempts, 1s base delay, 5s max delay, only the last error
// returned, every error retried.
func New(opts ...Option) Retry {
	cfg := config{
		attempts:    3,
		delay:       1 * time.Second,
		maxDelay:    5 * time.Second,
		lastErrOnly: true,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &retrier{
		cfg: cfg,
	}
}

// Execute implements Retry.
func (r *retrier) Execute(ctx context.Context, operation func() error) error {
	options := []retry.Option{
		retry.Attempts(r.cfg.attempts),
		retry.Delay(r.cfg.delay),
		retry.MaxDelay(r.cfg.maxDelay),
		retry.DelayType(retry.BackOffDelay),
		retry.LastErrorOnly(r.cfg.lastErrOnly),
		retry.Context(ctx),
	}

	if r.cfg.onRetry != nil {
		options = append(options, retry.OnRetry(retry.OnRetryFunc(r.cfg.onRetry)))
	}

	if r.cfg.retryIf != nil {
		options = append(options, retry.RetryIf(r.cfg.retryIf))
	}

	return retry.Do(operation, options...)
}

// WithAttempts sets the maximum number of attempts, including the first one.
func WithAttempts(n uint) Option {
	return func(c *config) {
		c.attempts = n
	}
}

// WithDelay sets the base delay used for the first retry.
func WithDelay(d time.Duration) Option {
	return func(c *config) {
		c.delay = d
	}
}

// WithMaxDelay caps the exponential growth of the delay.
func WithMaxDelay(d time.Duration) Option {
	return func(c *config) {
		c.maxDelay = d
	}
}

// WithLastErrorOnly controls whether only the final error is returned (true)
// or all attempt errors are combined (false).
func WithLastErrorOnly(b bool) Option {
	return func(c *config) {
		c.lastErrOnly = b
	}
}

// WithOnRetry registers a callback invoked after each failed attempt.
func WithOnRetry(f OnRetryFunc) Option {
	return func(c *config) {
		c.onRetry = f
	}
}

// WithRetryIf limits retries to errors accepted by f. Other errors stop the
// loop immediately.
func WithRetryIf(f func(error) bool) Option {
	return func(c *config) {
		c.retryIf = f
	}
}
