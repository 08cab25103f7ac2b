package webhook

import (
	"bytes"
	"context"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/gabapcia/txtracker/internal/pkg/logger"

	"github.com/google/uuid"
	"github.com/hashicorp/go-retryablehttp"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/codes"
	"go.opentelemetry.io/otel/trace"
)

const (
	maxBackoff          = 300 * time.Second
	maxResponseBodySize = 64 << 10
)

// BackoffFunc returns the delay before re-enqueuing a task whose attempt
// just failed.
type BackoffFunc func(attempt int) time.Duration

// Backoff is min(2^attempt, 300) seconds.
func Backoff(attempt int) time.Duration {
	if attempt < 1 {
		attempt = 1
	}
	if attempt >= 9 {
		return maxBackoff
	}
	return min(time.Duration(1<<attempt)*time.Second, maxBackoff)
}

// send performs one HTTP attempt of task. It never returns an error: every
// failure is described by the result.
func (s *service) send(ctx context.Context, task DeliveryTask) DeliveryResult {
	ctx, span := s.metrics.tracer.Start(ctx, "webhook.deliver", trace.WithAttributes(
		attribute.String("webhook.id", task.WebhookID),
		attribute.Int("webhook.attempt", task.Attempt),
	))
	defer span.End()

	ctx, cancel := context.WithTimeout(ctx, task.Timeout)
	defer cancel()

	startedAt := time.Now()
	result := s.post(ctx, task)
	result.WebhookID = task.WebhookID
	result.Attempt = task.Attempt
	result.Duration = time.Since(startedAt)

	span.SetAttributes(attribute.Int("http.response.status_code", result.StatusCode))
	if result.Success {
		span.SetStatus(codes.Ok, "")
	} else {
		span.SetStatus(codes.Error, result.Error)
	}

	return result
}

func (s *service) post(ctx context.Context, task DeliveryTask) DeliveryResult {
	req, err := retryablehttp.NewRequestWithContext(ctx, http.MethodPost, task.URL, bytes.NewReader(task.Payload))
	if err != nil {
		return DeliveryResult{Error: err.Error()}
	}

	req.Header.Set("Content-Type", "application/json")
	req.Header.Set("User-Agent", s.userAgent)
	req.Header.Set("X-Webhook-Timestamp", strconv.FormatInt(s.now().Unix(), 10))
	req.Header.Set("X-Webhook-Attempt", strconv.Itoa(task.Attempt))

	if task.Secret != "" {
		signature, err := SignatureHeader(task.Payload, task.Secret)
		if err != nil {
			return DeliveryResult{Error: err.Error()}
		}
		req.Header.Set("X-Webhook-Signature", signature)
	}

	res, err := s.httpClient.Do(req)
	if err != nil {
		return DeliveryResult{Error: err.Error()}
	}
	defer res.Body.Close()

	result := DeliveryResult{StatusCode: res.StatusCode}

	body, err := io.ReadAll(io.LimitReader(res.Body, maxResponseBodySize))
	if err != nil {
		result.Error = err.Error()
		return result
	}

	result.ResponseBody = string(body)
	result.Success = res.StatusCode >= http.StatusOK && res.StatusCode < http.StatusMultipleChoices
	if !result.Success {
		result.Error = "unexpected status " + strconv.Itoa(res.StatusCode)
	}

	return result
}

// record persists the outcome of an attempt and updates the counters.
func (s *service) record(ctx context.Context, task DeliveryTask, result DeliveryResult) {
	now := s.now()

	s.stats.record(result.Success, result.Duration)
	s.metrics.recordDuration(ctx, result.Duration)
	if result.Success {
		s.metrics.recordOutcome(ctx, outcomeSuccess)
	} else {
		s.metrics.recordOutcome(ctx, outcomeFailure)
	}

	if err := s.storage.UpdateWebhookStats(ctx, task.WebhookID, result.Success, now); err != nil {
		logger.Warn(ctx, "failed to update webhook stats", "webhook.id", task.WebhookID, "error", err)
	}

	if err := s.storage.SaveDeliveryLog(ctx, DeliveryLog{
		ID:         uuid.NewString(),
		WebhookID:  task.WebhookID,
		Attempt:    task.Attempt,
		StatusCode: result.StatusCode,
		Success:    result.Success,
		Duration:   result.Duration,
		Error:      result.Error,
		CreatedAt:  now,
	}); err != nil {
		logger.Warn(ctx, "failed to save webhook delivery log", "webhook.id", task.WebhookID, "error", err)
	}
}

// attempt delivers task once and schedules the next attempt on failure
// while retries remain.
func (s *service) attempt(ctx context.Context, task DeliveryTask) {
	result := s.send(ctx, task)
	s.record(ctx, task, result)

	if result.Success {
		logger.Debug(ctx, "webhook delivered",
			"webhook.id", task.WebhookID,
			"webhook.attempt", task.Attempt,
			"http.status_code", result.StatusCode,
		)
		return
	}

	if task.Attempt <= task.MaxRetries {
		if delay, ok := s.scheduleRetry(task); ok {
			logger.Warn(ctx, "webhook delivery failed, retry scheduled",
				"webhook.id", task.WebhookID,
				"webhook.attempt", task.Attempt,
				"webhook.retry_in", delay.String(),
				"error", result.Error,
			)
			return
		}
	}

	s.stats.recordPermanentFailure()
	s.metrics.recordOutcome(ctx, outcomePermanentFailure)
	logger.Error(ctx, "webhook delivery failed permanently",
		"webhook.id", task.WebhookID,
		"webhook.attempts", task.Attempt,
		"error", result.Error,
	)
}

// dispatch runs an attempt of task on its own goroutine, bounded by the
// concurrency limit. Tasks dispatched after Close are dropped.
func (s *service) dispatch(task DeliveryTask) {
	s.queueMu.Lock()
	if s.closed {
		s.queueMu.Unlock()
		return
	}
	ctx := s.ctx
	s.inFlight.Add(1)
	s.wg.Add(1)
	s.queueMu.Unlock()

	go func() {
		defer s.wg.Done()
		defer s.inFlight.Add(-1)

		if err := s.sem.Acquire(ctx, 1); err != nil {
			logger.Warn(ctx, "webhook delivery dropped", "webhook.id", task.WebhookID, "error", err)
			return
		}
		defer s.sem.Release(1)

		s.attempt(context.WithoutCancel(ctx), task)
	}()
}

// scheduleRetry re-enqueues the next attempt of task after its backoff. It
// reports false once the engine is closed.
func (s *service) scheduleRetry(task DeliveryTask) (time.Duration, bool) {
	delay := s.backoff(task.Attempt)

	next := task
	next.Attempt++

	s.queueMu.Lock()
	defer s.queueMu.Unlock()

	if s.closed {
		return 0, false
	}

	id := s.nextRetryID
	s.nextRetryID++

	s.retries[id] = time.AfterFunc(delay, func() {
		s.queueMu.Lock()
		_, pending := s.retries[id]
		delete(s.retries, id)
		s.queueMu.Unlock()

		if pending {
			s.dispatch(next)
		}
	})

	return delay, true
}
