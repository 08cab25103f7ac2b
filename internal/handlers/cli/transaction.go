package cli

import (
	"context"
	"errors"
	"time"

	"github.com/urfave/cli/v3"
)

type pruned struct {
	Cutoff  time.Time `json:"cutoff"`
	Deleted int64     `json:"deleted"`
}

// txCommand reads and prunes the stored transaction history.
//
//	txtracker tx show --hash 0xabc
//	txtracker tx list --address TXyz --limit 20
//	txtracker tx prune --older-than 720h
func txCommand(store Transactions, now func() time.Time) *cli.Command {
	unavailable := func() error {
		return errors.Join(ErrUnavailable, errors.New("transaction history is kept in postgres"))
	}

	return &cli.Command{
		Name:        "tx",
		Description: "Queries and prunes the transactions stored by the scanner.",
		Usage:       "Stored transaction commands.",
		Commands: []*cli.Command{
			{
				Name:  "show",
				Usage: "Prints a stored transaction.",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "hash", Usage: "Transaction hash", Required: true},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					if store == nil {
						return unavailable()
					}

					tx, err := store.Transaction(ctx, c.String("hash"))
					if err != nil {
						return err
					}

					return writeJSON(c.Root().Writer, tx)
				},
			},
			{
				Name:  "list",
				Usage: "Prints the newest stored transactions of an address.",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "address", Usage: "Sender or receiver address", Required: true},
					&cli.IntFlag{Name: "limit", Usage: "Maximum number of transactions", Value: 50},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					if store == nil {
						return unavailable()
					}

					txs, err := store.TransactionsByAddress(ctx, c.String("address"), c.Int("limit"))
					if err != nil {
						return err
					}

					return writeJSON(c.Root().Writer, txs)
				},
			},
			{
				Name:  "prune",
				Usage: "Deletes stored transactions older than a duration.",
				Flags: []cli.Flag{
					&cli.DurationFlag{Name: "older-than", Usage: "Minimum age of the deleted transactions, e.g. 720h", Required: true},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					if store == nil {
						return unavailable()
					}

					age := c.Duration("older-than")
					if age <= 0 {
						return errors.New("--older-than must be positive")
					}

					cutoff := now().Add(-age).UTC()
					deleted, err := store.DeleteTransactionsBefore(ctx, cutoff)
					if err != nil {
						return err
					}

					return writeJSON(c.Root().Writer, pruned{Cutoff: cutoff, Deleted: deleted})
				},
			},
		},
	}
}
