package webhook

import (
	"context"
	"time"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
	"go.opentelemetry.io/otel/trace"
)

const instrumentationName = "github.com/gabapcia/txtracker/internal/webhook"

const (
	outcomeSuccess          = "success"
	outcomeFailure          = "failure"
	outcomePermanentFailure = "permanent_failure"
)

type instruments struct {
	tracer     trace.Tracer
	deliveries metric.Int64Counter
	duration   metric.Float64Histogram
}

func newInstruments() instruments {
	meter := otel.Meter(instrumentationName)

	deliveries, _ := meter.Int64Counter("webhook.deliveries",
		metric.WithDescription("Webhook delivery attempts by outcome"),
	)
	duration, _ := meter.Float64Histogram("webhook.delivery.duration",
		metric.WithDescription("Duration of webhook delivery attempts"),
		metric.WithUnit("ms"),
	)

	return instruments{
		tracer:     otel.Tracer(instrumentationName),
		deliveries: deliveries,
		duration:   duration,
	}
}

func (i instruments) recordOutcome(ctx context.Context, outcome string) {
	if i.deliveries != nil {
		i.deliveries.Add(ctx, 1, metric.WithAttributes(attribute.String("outcome", outcome)))
	}
}

func (i instruments) recordDuration(ctx context.Context, d time.Duration) {
	if i.duration != nil {
		i.duration.Record(ctx, float64(d.Microseconds())/1000)
	}
}
