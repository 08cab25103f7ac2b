package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"time"

	"github.com/gabapcia/txtracker/internal/config"
	"github.com/gabapcia/txtracker/internal/eventbus"
	"github.com/gabapcia/txtracker/internal/handlers/cli"
	httphandler "github.com/gabapcia/txtracker/internal/handlers/http"
	"github.com/gabapcia/txtracker/internal/infra/blockchain/tron"
	"github.com/gabapcia/txtracker/internal/infra/messaging/nats"
	"github.com/gabapcia/txtracker/internal/infra/storage/postgres"
	"github.com/gabapcia/txtracker/internal/infra/storage/redis"
	"github.com/gabapcia/txtracker/internal/nodepool"
	"github.com/gabapcia/txtracker/internal/pipeline"
	"github.com/gabapcia/txtracker/internal/pkg/logger"
	"github.com/gabapcia/txtracker/internal/pkg/resilience/retry"
	"github.com/gabapcia/txtracker/internal/pkg/telemetry"
	"github.com/gabapcia/txtracker/internal/scanner"
	"github.com/gabapcia/txtracker/internal/webhook"
	"github.com/gabapcia/txtracker/internal/websocket"
)

const (
	nativeDecimals    = 6
	connectAttempts   = 5
	shutdownTelemetry = 5 * time.Second
)

func main() {
	if err := run(context.Background()); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run(ctx context.Context) (err error) {
	cfg, err := config.Load()
	if err != nil {
		return err
	}

	if cfg.Telemetry.Enabled {
		var shutdown telemetry.ShutdownFunc
		if shutdown, err = telemetry.Init(ctx, cfg.Telemetry.ServiceName); err != nil {
			return fmt.Errorf("failed to init telemetry: %w", err)
		}
		defer func() {
			ctx, cancel := context.WithTimeout(context.WithoutCancel(ctx), shutdownTelemetry)
			defer cancel()
			err = errors.Join(err, shutdown(ctx))
		}()
	}

	if err := logger.Init(cfg.LogLevel); err != nil {
		return err
	}
	defer logger.Sync() //nolint:errcheck

	pool, err := nodepool.New(cfg.Nodes)
	if err != nil {
		return err
	}

	chainClient := tron.NewClient(pool,
		tron.WithTransferToken(cfg.Scanner.TokenSymbol, cfg.Scanner.TokenDecimals),
		tron.WithNativeToken(cfg.Scanner.NativeSymbol, nativeDecimals),
	)

	connectRetry := retry.New(
		retry.WithAttempts(connectAttempts),
		retry.WithDelay(2*time.Second),
		retry.WithMaxDelay(30*time.Second),
		retry.WithOnRetry(func(attempt uint, err error) {
			logger.Warn(ctx, "dependency not reachable yet", "retry.attempt", attempt+1, "error", err)
		}),
	)

	db, err := connectPostgres(ctx, connectRetry, cfg.Postgres)
	if err != nil {
		return err
	}
	defer db.Close() //nolint:errcheck

	var (
		checkpoints scanner.CheckpointStorage = db
		statistics  cli.StatisticsLoader
		scannerOpts []scanner.Option
	)

	if cfg.Redis.Addr != "" {
		var cache interface {
			scanner.CheckpointStorage
			scanner.StatisticsSink
			cli.StatisticsLoader
			Close() error
		}
		err := connectRetry.Execute(ctx, func() (err error) {
			cache, err = redis.NewClient(ctx, cfg.Redis.Addr, cfg.Redis.Username, cfg.Redis.Password, cfg.Redis.DB)
			return err
		})
		if err != nil {
			return fmt.Errorf("failed to connect to redis: %w", err)
		}
		defer cache.Close() //nolint:errcheck

		checkpoints = cache
		statistics = cache
		scannerOpts = append(scannerOpts, scanner.WithStatisticsSink(cache))
	}

	distributorOpts := []eventbus.Option{eventbus.WithSinkTimeout(cfg.NATS.PublishTimeout)}
	if cfg.NATS.URL != "" {
		sink, err := nats.NewSink(ctx, cfg.NATS.URL,
			nats.WithStream(cfg.NATS.Stream),
			nats.WithSubjectPrefix(cfg.NATS.SubjectPrefix),
			nats.WithMaxAge(cfg.NATS.MaxAge),
		)
		if err != nil {
			return fmt.Errorf("failed to connect to nats: %w", err)
		}
		defer sink.Close() //nolint:errcheck

		distributorOpts = append(distributorOpts, eventbus.WithSink(sink))
	}
	distributor := eventbus.New(distributorOpts...)

	scannerOpts = append(scannerOpts,
		scanner.WithCheckpointStorage(checkpoints),
		scanner.WithNodeMonitor(pool),
		scanner.WithStartBlock(cfg.Scanner.StartBlock),
		scanner.WithBatchSize(cfg.Scanner.BatchSize),
		scanner.WithScanInterval(cfg.Scanner.ScanInterval),
		scanner.WithSpeedInterval(cfg.Scanner.SpeedInterval),
		scanner.WithErrorBackoff(cfg.Scanner.ErrorBackoff),
	)
	if threshold := cfg.Scanner.Threshold(); threshold != nil {
		scannerOpts = append(scannerOpts, scanner.WithLargeTransferThreshold(*threshold))
	}
	scannerService := scanner.New(chainClient, db, distributor, scannerOpts...)

	webhooks := webhook.New(db,
		webhook.WithMaxConcurrency(cfg.Webhook.MaxConcurrency),
		webhook.WithDefaultTimeout(cfg.Webhook.Timeout),
	)
	defer webhooks.Close()

	broadcaster := websocket.New(
		websocket.WithMaxConnections(cfg.WebSocket.MaxConnections),
		websocket.WithPingInterval(cfg.WebSocket.PingInterval),
		websocket.WithMessageBufferSize(cfg.WebSocket.MessageBufferSize),
	)

	p := pipeline.New(scannerService, distributor,
		pipeline.WithEngine("webhook", cfg.Webhook.BufferSize, eventbus.Block, webhooks),
		pipeline.WithEngine("websocket", cfg.WebSocket.BufferSize, eventbus.DropOldest, broadcaster),
	)

	server := httphandler.New(cfg.HTTP.Addr, httphandler.Dependencies{
		Scanner:     scannerService,
		Webhooks:    webhooks,
		WebSocket:   broadcaster,
		Distributor: distributor,
	})

	return cli.Run(ctx, cli.Dependencies{
		Pipeline:          p,
		Server:            server,
		Scanner:           scannerService,
		Webhooks:          webhooks,
		Statistics:        statistics,
		Transactions:      db,
		Chain:             chainClient,
		DefaultRetryCount: cfg.Webhook.RetryAttempts,
	})
}

type database interface {
	scanner.TransactionStorage
	scanner.CheckpointStorage
	webhook.Storage
	cli.Transactions
	Close() error
}

// connectPostgres opens the database, retrying while it is unreachable, and
// applies the schema.
func connectPostgres(ctx context.Context, r retry.Retry, cfg config.Postgres) (database, error) {
	var s database
	var migrate func(context.Context) error

	err := r.Execute(ctx, func() error {
		c, err := postgres.NewClient(ctx, cfg.DSN,
			postgres.WithMaxOpenConns(cfg.MaxOpenConns),
			postgres.WithMaxIdleConns(cfg.MaxIdleConns),
			postgres.WithConnMaxLifetime(cfg.ConnMaxLifetime),
		)
		if err != nil {
			return err
		}

		s, migrate = c, c.Migrate
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to connect to postgres: %w", err)
	}

	if err := migrate(ctx); err != nil {
		_ = s.Close()
		return nil, fmt.Errorf("failed to migrate postgres schema: %w", err)
	}

	return s, nil
}
