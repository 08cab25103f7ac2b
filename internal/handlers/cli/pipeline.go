package cli

import (
	"context"
	"os/signal"
	"syscall"

	"github.com/gabapcia/txtracker/internal/pipeline"
	"github.com/gabapcia/txtracker/internal/pkg/logger"

	"github.com/urfave/cli/v3"
)

// startCommand runs the pipeline and the HTTP server until SIGINT, SIGTERM
// or ctx cancellation.
//
//	txtracker start
func startCommand(p pipeline.Service, server Server) *cli.Command {
	return &cli.Command{
		Name:        "start",
		Description: "Starts the scanner, the delivery engines and the HTTP server.",
		Usage:       "Runs the tracker. Terminates gracefully on Ctrl+C or termination signals.",
		Action: func(ctx context.Context, c *cli.Command) error {
			ctx, stop := signal.NotifyContext(ctx, syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			if err := p.Start(ctx); err != nil {
				return err
			}
			defer p.Close()

			if err := server.Start(ctx); err != nil {
				return err
			}
			defer server.Close()

			logger.Info(ctx, "txtracker started")
			<-ctx.Done()
			logger.Info(context.WithoutCancel(ctx), "txtracker shutting down")

			return nil
		},
	}
}
