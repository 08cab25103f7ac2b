package scanner

import (
	"context"

	"go.opentelemetry.io/otel"
	"go.opentelemetry.io/otel/metric"
)

const instrumentationName = "github.com/gabapcia/txtracker/internal/scanner"

type instruments struct {
	blocksProcessed       metric.Int64Counter
	transactionsProcessed metric.Int64Counter
	errors                metric.Int64Counter
}

// newInstruments registers the scanner counters on the global meter
// provider. Registration failures fall back to no-op instruments.
func newInstruments() instruments {
	meter := otel.Meter(instrumentationName)

	blocks, _ := meter.Int64Counter("scanner.blocks.processed",
		metric.WithDescription("Blocks fully processed by the scan loop"),
	)
	transactions, _ := meter.Int64Counter("scanner.transactions.processed",
		metric.WithDescription("Transactions persisted and published by the scan loop"),
	)
	errs, _ := meter.Int64Counter("scanner.errors",
		metric.WithDescription("Failed scan ticks"),
	)

	return instruments{
		blocksProcessed:       blocks,
		transactionsProcessed: transactions,
		errors:                errs,
	}
}

func (i instruments) recordBlock(ctx context.Context, transactions int) {
	if i.blocksProcessed != nil {
		i.blocksProcessed.Add(ctx, 1)
	}
	if i.transactionsProcessed != nil {
		i.transactionsProcessed.Add(ctx, int64(transactions))
	}
}

func (i instruments) recordError(ctx context.Context) {
	if i.errors != nil {
		i.errors.Add(ctx, 1)
	}
}
