package webhook

import (
	"context"
	"errors"
	"time"

	"github.com/gabapcia/txtracker/internal/chain"
)

var (
	// ErrWebhookNotFound is returned when a subscription id is unknown.
	ErrWebhookNotFound = errors.New("webhook not found")

	// ErrInvalidSecret is returned when a signature is requested or checked
	// with an empty secret.
	ErrInvalidSecret = errors.New("invalid webhook secret")
)

const defaultTimeout = 30 * time.Second

// Filters narrows which events a subscription receives. Every set clause
// must match.
type Filters struct {
	Addresses []string `json:"addresses,omitempty"`
	Tokens    []string `json:"tokens,omitempty"`
	MinAmount *string  `json:"min_amount,omitempty" validate:"omitempty,decimal"`
	MaxAmount *string  `json:"max_amount,omitempty" validate:"omitempty,decimal"`
}

// Webhook is an outbound HTTP subscription.
type Webhook struct {
	ID            string            `json:"id"`
	Name          string            `json:"name"`
	URL           string            `json:"url" validate:"required,http_url"`
	Secret        string            `json:"secret,omitempty"`
	Enabled       bool              `json:"enabled"`
	Events        []chain.EventType `json:"events" validate:"required,min=1"`
	Filters       Filters           `json:"filters"`
	RetryCount    int               `json:"retry_count" validate:"gte=0,lte=20"`
	Timeout       time.Duration     `json:"timeout" validate:"gte=0"`
	SuccessCount  int64             `json:"success_count"`
	FailureCount  int64             `json:"failure_count"`
	LastTriggered *time.Time        `json:"last_triggered,omitempty"`
	CreatedAt     time.Time         `json:"created_at"`
	UpdatedAt     time.Time         `json:"updated_at"`
}

func (w Webhook) timeout(fallback time.Duration) time.Duration {
	if w.Timeout <= 0 {
		return fallback
	}
	return w.Timeout
}

// DeliveryTask is one delivery attempt of a signed payload.
type DeliveryTask struct {
	WebhookID  string
	URL        string
	Secret     string
	Payload    []byte
	Attempt    int
	MaxRetries int
	Timeout    time.Duration
}

func newTask(w Webhook, payload []byte, fallbackTimeout time.Duration) DeliveryTask {
	return DeliveryTask{
		WebhookID:  w.ID,
		URL:        w.URL,
		Secret:     w.Secret,
		Payload:    payload,
		Attempt:    1,
		MaxRetries: w.RetryCount,
		Timeout:    w.timeout(fallbackTimeout),
	}
}

// DeliveryResult is the outcome of one attempt.
type DeliveryResult struct {
	WebhookID    string        `json:"webhook_id"`
	Success      bool          `json:"success"`
	StatusCode   int           `json:"status_code,omitempty"`
	ResponseBody string        `json:"response_body,omitempty"`
	Error        string        `json:"error,omitempty"`
	Duration     time.Duration `json:"duration"`
	Attempt      int           `json:"attempt"`
}

// DeliveryLog is the persisted record of one attempt.
type DeliveryLog struct {
	ID         string        `json:"id"`
	WebhookID  string        `json:"webhook_id"`
	Attempt    int           `json:"attempt"`
	StatusCode int           `json:"status_code,omitempty"`
	Success    bool          `json:"success"`
	Duration   time.Duration `json:"duration"`
	Error      string        `json:"error,omitempty"`
	CreatedAt  time.Time     `json:"created_at"`
}

// QueueStatus aggregates delivery counters since the engine started.
type QueueStatus struct {
	PendingRetries        int     `json:"pending_retries"`
	InFlight              int64   `json:"in_flight"`
	TotalDeliveries       uint64  `json:"total_deliveries"`
	SuccessfulDeliveries  uint64  `json:"successful_deliveries"`
	FailedDeliveries      uint64  `json:"failed_deliveries"`
	PermanentFailures     uint64  `json:"permanent_failures"`
	SuccessRate           float64 `json:"success_rate"`
	AverageDeliveryTimeMs float64 `json:"average_delivery_time_ms"`
}

// Storage is the persistence collaborator of the engine.
type Storage interface {
	// EnabledWebhooks returns every subscription with Enabled set.
	EnabledWebhooks(ctx context.Context) ([]Webhook, error)

	// Webhooks returns every subscription.
	Webhooks(ctx context.Context) ([]Webhook, error)

	// Webhook returns ErrWebhookNotFound for unknown ids.
	Webhook(ctx context.Context, id string) (Webhook, error)

	SaveWebhook(ctx context.Context, w Webhook) error

	// DeleteWebhook returns ErrWebhookNotFound for unknown ids.
	DeleteWebhook(ctx context.Context, id string) error

	// UpdateWebhookStats increments the success or failure counter and sets
	// last_triggered.
	UpdateWebhookStats(ctx context.Context, id string, success bool, triggeredAt time.Time) error

	SaveDeliveryLog(ctx context.Context, log DeliveryLog) error

	// DeliveryLogs returns the newest logs of a subscription first.
	DeliveryLogs(ctx context.Context, webhookID string, limit int) ([]DeliveryLog, error)
}
