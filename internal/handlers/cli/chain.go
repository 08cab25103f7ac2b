package cli

import (
	"context"
	"errors"

	"github.com/gabapcia/txtracker/internal/chain"

	"github.com/urfave/cli/v3"
)

type balance struct {
	Address  string `json:"address"`
	Contract string `json:"contract,omitempty"`
	Balance  string `json:"balance"`
}

// chainCommand queries the nodes without touching storage.
//
//	txtracker chain block --number 62800000
//	txtracker chain block --hash 0000000003be...
//	txtracker chain balance --address TXyz [--contract TR7N...]
//	txtracker chain receipt --hash 0xabc
func chainCommand(ch Chain) *cli.Command {
	return &cli.Command{
		Name:        "chain",
		Description: "Queries the configured nodes directly.",
		Usage:       "Chain query commands.",
		Commands: []*cli.Command{
			{
				Name:  "block",
				Usage: "Prints a block by number or hash.",
				Flags: []cli.Flag{
					&cli.Uint64Flag{Name: "number", Usage: "Block number"},
					&cli.StringFlag{Name: "hash", Usage: "Block hash"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					var (
						block chain.Block
						err   error
					)

					switch {
					case c.IsSet("number") == c.IsSet("hash"):
						return errors.New("exactly one of --number or --hash is required")
					case c.IsSet("hash"):
						block, err = ch.BlockByHash(ctx, c.String("hash"))
					default:
						block, err = ch.BlockByNumber(ctx, c.Uint64("number"))
					}
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
			},
			{
				Name:  "balance",
				Usage: "Prints the native balance of an address, or its token balance when --contract is set.",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "address", Usage: "Account address", Required: true},
					&cli.StringFlag{Name: "contract", Usage: "Token contract address"},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					var (
						address  = c.String("address")
						contract = c.String("contract")
						amount   string
						err      error
					)

					if contract == "" {
						amount, err = ch.Balance(ctx, address)
					} else {
						amount, err = ch.TokenBalance(ctx, contract, address)
					}
					if err != nil {
						return err
					}

					return writeJSON(c.Root().Writer, balance{Address: address, Contract: contract, Balance: amount})
				},
			},
			{
				Name:  "receipt",
				Usage: "Prints the receipt of a transaction.",
				Flags: []cli.Flag{
					&cli.StringFlag{Name: "hash", Usage: "Transaction hash", Required: true},
				},
				Action: func(ctx context.Context, c *cli.Command) error {
					receipt, err := ch.TransactionReceipt(ctx, c.String("hash"))
					if err != nil {
						return err
					}

					return writeJSON(c.Root().Writer, receipt)
				},
			},
		},
	}
}
