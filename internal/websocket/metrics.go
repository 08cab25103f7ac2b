package websocket

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/attribute"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/gabapcia/txtracker/internal/websocket"

type instruments struct {
	connections  metric.Int64UpDownCounter
	messagesSent metric.Int64Counter
}

func newInstruments() instruments {
	meter := otel.Meter(instrumentationName)

	connections, _ := meter.Int64UpDownCounter("websocket.connections",
		metric.WithDescription("Open websocket connections"),
	)
	messagesSent, _ := meter.Int64Counter("websocket.messages.sent",
		metric.WithDescription("Frames written to websocket clients by type"),
	)

	return instruments{connections: connections, messagesSent: messagesSent}
}

func (i instruments) connectionOpened(ctx context.Context) {
	if i.connections != nil {
		i.connections.Add(ctx, 1)
	}
}

func (i instruments) connectionClosed(ctx context.Context) {
	if i.connections != nil {
		i.connections.Add(ctx, -1)
	}
}

func (i instruments) frameSent(ctx context.Context, frameType string) {
	if i.messagesSent != nil {
		i.messagesSent.Add(ctx, 1, metric.WithAttributes(attribute.String("type", frameType)))
	}
}
