package cli

import (
	"context"
	"errors"

	"github.com/gabapcia/txtracker/internal/chain"

	"github.com/urfave/cli/v3"
)

type scannedBlock struct {
	Number           uint64              `json:"number"`
	Hash             string              `json:"hash"`
	TransactionCount int                 `json:"transaction_count"`
	Transactions     []chain.Transaction `json:"transactions"`
}

// scanBlockCommand scans one block without moving the saved progress.
//
//	txtracker scan-block --number 62800000
func scanBlockCommand(s Scanner) *cli.Command {
	return &cli.Command{
		Name:        "scan-block",
		Description: "Fetches, stores and publishes a single block without moving the scan progress.",
		Usage:       "Scans one block by number.",
		Flags: []cli.Flag{
			&cli.Uint64Flag{
				Name:     "number",
				Usage:    "Block number to scan",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			block, err := s.ScanBlock(ctx, c.Uint64("number"))
			if err != nil {
				return err
			}

			return writeJSON(c.Root().Writer, scannedBlock{
				Number:           block.Number,
				Hash:             block.Hash,
				TransactionCount: block.TransactionCount(),
				Transactions:     block.Transactions,
			})
		},
	}
}

// resetCommand moves the scan progress so the next start begins at
// start-block.
//
//	txtracker reset --start-block 62800000
func resetCommand(s Scanner) *cli.Command {
	return &cli.Command{
		Name:        "reset",
		Description: "Overwrites the saved scan progress so the next start resumes at the given block.",
		Usage:       "Resets the scanner to a start block.",
		Flags: []cli.Flag{
			&cli.Uint64Flag{
				Name:     "start-block",
				Usage:    "First block to scan on the next start",
				Required: true,
			},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return s.Reset(ctx, c.Uint64("start-block"))
		},
	}
}

// statsCommand prints the statistics snapshot of a running tracker.
//
//	txtracker stats
func statsCommand(loader StatisticsLoader) *cli.Command {
	return &cli.Command{
		Name:        "stats",
		Description: "Prints the last statistics snapshot published by a running scanner. Requires redis.",
		Usage:       "Shows scanner statistics.",
		Action: func(ctx context.Context, c *cli.Command) error {
			if loader == nil {
				return errors.Join(ErrUnavailable, errors.New("statistics snapshots are kept in redis"))
			}

			stats, err := loader.LoadStatistics(ctx)
			if err != nil {
				return err
			}

			return writeJSON(c.Root().Writer, stats)
		},
	}
}
