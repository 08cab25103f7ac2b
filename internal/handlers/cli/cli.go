package cli

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"os"
	"time"

	"github.com/gabapcia/txtracker/internal/chain"
	"github.com/gabapcia/txtracker/internal/infra/blockchain/tron"
	"github.com/gabapcia/txtracker/internal/pipeline"
	"github.com/gabapcia/txtracker/internal/scanner"
	"github.com/gabapcia/txtracker/internal/webhook"

	"github.com/urfave/cli/v3"
)

// ErrUnavailable is returned by commands whose backing service was not
// configured.
var ErrUnavailable = errors.New("command unavailable: required service is not configured")

type (
	// Server is the HTTP surface started alongside the pipeline.
	Server interface {
		Start(ctx context.Context) error
		Close()
	}

	// StatisticsLoader reads the last scanner statistics snapshot published
	// by a running process.
	StatisticsLoader interface {
		LoadStatistics(ctx context.Context) (scanner.Statistics, error)
	}

	// Scanner runs one-off scanner operations outside the scan loop.
	Scanner interface {
		ScanBlock(ctx context.Context, number uint64) (chain.Block, error)
		Reset(ctx context.Context, startBlock uint64) error
	}

	// Transactions reads and prunes the stored transaction history.
	Transactions interface {
		Transaction(ctx context.Context, hash string) (chain.Transaction, error)
		TransactionsByAddress(ctx context.Context, address string, limit int) ([]chain.Transaction, error)
		DeleteTransactionsBefore(ctx context.Context, cutoff time.Time) (int64, error)
	}

	// Chain answers direct chain queries.
	Chain interface {
		BlockByNumber(ctx context.Context, number uint64) (chain.Block, error)
		BlockByHash(ctx context.Context, hash string) (chain.Block, error)
		TransactionReceipt(ctx context.Context, hash string) (tron.Receipt, error)
		Balance(ctx context.Context, address string) (string, error)
		TokenBalance(ctx context.Context, contract, address string) (string, error)
	}
)

// Dependencies are the services the commands act on. Statistics and
// Transactions may be nil.
type Dependencies struct {
	Pipeline     pipeline.Service
	Server       Server
	Scanner      Scanner
	Webhooks     webhook.Service
	Statistics   StatisticsLoader
	Transactions Transactions
	Chain        Chain

	// DefaultRetryCount seeds the --retry-count flag of "webhook add".
	DefaultRetryCount int
}

func newApp(deps Dependencies) *cli.Command {
	return &cli.Command{
		EnableShellCompletion: true,
		Name:                  "txtracker",
		Description:           "Scans the TRON chain and notifies webhook and websocket subscribers about transactions.",
		Usage:                 "txtracker [command] [flags]",
		Commands: []*cli.Command{
			startCommand(deps.Pipeline, deps.Server),
			scanBlockCommand(deps.Scanner),
			resetCommand(deps.Scanner),
			statsCommand(deps.Statistics),
			webhookCommand(deps.Webhooks, deps.DefaultRetryCount),
			txCommand(deps.Transactions, time.Now),
			chainCommand(deps.Chain),
		},
	}
}

// Run parses os.Args and executes the matching command.
func Run(ctx context.Context, deps Dependencies) error {
	return newApp(deps).Run(ctx, os.Args)
}

func writeJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}
