package cli

import (
	"context"
	"errors"
	"fmt"
	"os"

	"github.com/gabapcia/txtracker/internal/chain"
	"github.com/gabapcia/txtracker/internal/webhook"

	"github.com/urfave/cli/v3"
)

// ErrInvalidSignature is returned by "webhook verify" when the signature
// does not match.
var ErrInvalidSignature = errors.New("signature does not match")

func webhookCommand(w webhook.Service, defaultRetryCount int) *cli.Command {
	return &cli.Command{
		Name:        "webhook",
		Description: "Manages webhook subscriptions and inspects their deliveries.",
		Usage:       "Webhook subscription commands.",
		Commands: []*cli.Command{
			webhookAddCommand(w, defaultRetryCount),
			webhookListCommand(w),
			webhookRemoveCommand(w),
			webhookTestCommand(w),
			webhookVerifyCommand(),
			webhookLogsCommand(w),
		},
	}
}

// webhookAddCommand registers a subscription.
//
//	txtracker webhook add --url https://example.com/hook --event transaction --token USDT --min-amount 100
func webhookAddCommand(w webhook.Service, defaultRetryCount int) *cli.Command {
	return &cli.Command{
		Name:  "add",
		Usage: "Registers a webhook subscription.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "url", Usage: "Endpoint receiving the POST requests", Required: true},
			&cli.StringFlag{Name: "name", Usage: "Display name"},
			&cli.StringFlag{Name: "secret", Usage: "HMAC-SHA256 signing secret"},
			&cli.StringSliceFlag{Name: "event", Usage: "Event type to deliver, repeatable", Required: true},
			&cli.StringSliceFlag{Name: "address", Usage: "Only deliver transactions touching this address, repeatable"},
			&cli.StringSliceFlag{Name: "token", Usage: "Only deliver transactions of this token symbol, repeatable"},
			&cli.StringFlag{Name: "min-amount", Usage: "Minimum transaction value"},
			&cli.StringFlag{Name: "max-amount", Usage: "Maximum transaction value"},
			&cli.IntFlag{Name: "retry-count", Usage: "Retries after the first failed attempt", Value: defaultRetryCount},
			&cli.DurationFlag{Name: "timeout", Usage: "Per-attempt timeout"},
			&cli.BoolFlag{Name: "disabled", Usage: "Register without enabling deliveries"},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			events := make([]chain.EventType, 0, len(c.StringSlice("event")))
			for _, name := range c.StringSlice("event") {
				et, err := chain.ParseEventType(name)
				if err != nil {
					return err
				}
				events = append(events, et)
			}

			filters := webhook.Filters{
				Addresses: c.StringSlice("address"),
				Tokens:    c.StringSlice("token"),
			}
			if v := c.String("min-amount"); v != "" {
				filters.MinAmount = &v
			}
			if v := c.String("max-amount"); v != "" {
				filters.MaxAmount = &v
			}

			registered, err := w.Register(ctx, webhook.Webhook{
				Name:       c.String("name"),
				URL:        c.String("url"),
				Secret:     c.String("secret"),
				Enabled:    !c.Bool("disabled"),
				Events:     events,
				Filters:    filters,
				RetryCount: c.Int("retry-count"),
				Timeout:    c.Duration("timeout"),
			})
			if err != nil {
				return err
			}

			return writeJSON(c.Root().Writer, registered)
		},
	}
}

func webhookListCommand(w webhook.Service) *cli.Command {
	return &cli.Command{
		Name:  "list",
		Usage: "Lists every webhook subscription.",
		Action: func(ctx context.Context, c *cli.Command) error {
			webhooks, err := w.Webhooks(ctx)
			if err != nil {
				return err
			}

			return writeJSON(c.Root().Writer, webhooks)
		},
	}
}

func webhookRemoveCommand(w webhook.Service) *cli.Command {
	return &cli.Command{
		Name:  "remove",
		Usage: "Removes a webhook subscription and its delivery logs.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "id", Usage: "Subscription id", Required: true},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			return w.Remove(ctx, c.String("id"))
		},
	}
}

// webhookTestCommand sends the test payload once and prints the outcome.
//
//	txtracker webhook test --url https://example.com/hook --secret s3cr3t
func webhookTestCommand(w webhook.Service) *cli.Command {
	return &cli.Command{
		Name:  "test",
		Usage: "Sends a signed test payload to an endpoint.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "url", Usage: "Endpoint to call", Required: true},
			&cli.StringFlag{Name: "secret", Usage: "HMAC-SHA256 signing secret"},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			result, err := w.Test(ctx, c.String("url"), c.String("secret"), nil)
			if err != nil {
				return err
			}

			return writeJSON(c.Root().Writer, result)
		},
	}
}

// webhookVerifyCommand checks a received signature against a body.
//
//	txtracker webhook verify --secret s3cr3t --signature sha256=ab12... --file body.json
func webhookVerifyCommand() *cli.Command {
	return &cli.Command{
		Name:  "verify",
		Usage: "Verifies the X-Webhook-Signature of a received body.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "secret", Usage: "HMAC-SHA256 signing secret", Required: true},
			&cli.StringFlag{Name: "signature", Usage: "Signature header value, with or without the sha256= prefix", Required: true},
			&cli.StringFlag{Name: "body", Usage: "Raw request body"},
			&cli.StringFlag{Name: "file", Usage: "File holding the raw request body"},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			body := []byte(c.String("body"))
			if path := c.String("file"); path != "" {
				var err error
				if body, err = os.ReadFile(path); err != nil {
					return err
				}
			}

			valid, err := webhook.VerifySignature(body, c.String("signature"), c.String("secret"))
			if err != nil {
				return err
			}
			if !valid {
				return ErrInvalidSignature
			}

			_, err = fmt.Fprintln(c.Root().Writer, "signature is valid")
			return err
		},
	}
}

func webhookLogsCommand(w webhook.Service) *cli.Command {
	return &cli.Command{
		Name:  "logs",
		Usage: "Shows the newest delivery attempts of a subscription.",
		Flags: []cli.Flag{
			&cli.StringFlag{Name: "id", Usage: "Subscription id", Required: true},
			&cli.IntFlag{Name: "limit", Usage: "Maximum number of entries", Value: 50},
		},
		Action: func(ctx context.Context, c *cli.Command) error {
			logs, err := w.DeliveryLogs(ctx, c.String("id"), c.Int("limit"))
			if err != nil {
				return err
			}

			return writeJSON(c.Root().Writer, logs)
		},
	}
}
