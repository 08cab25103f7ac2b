// Package postgres is the relational store behind the scanner and the
// webhook engine. Every write is an idempotent upsert keyed by the natural
// id of the record.
package postgres

import (
	"context"
	"fmt"
	"time"

	"gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type client struct {
	db *gorm.DB
}

// Migrate creates or updates every table the store uses.
func (c *client) Migrate(ctx context.Context) error {
	return c.db.WithContext(ctx).AutoMigrate(
		&transactionModel{},
		&blockModel{},
		&scanProgressModel{},
		&webhookModel{},
		&deliveryLogModel{},
	)
}

func (c *client) Ping(ctx context.Context) error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.PingContext(ctx)
}

func (c *client) Close() error {
	sqlDB, err := c.db.DB()
	if err != nil {
		return err
	}
	return sqlDB.Close()
}

type config struct {
	maxOpenConns    int
	maxIdleConns    int
	connMaxLifetime time.Duration
}

// Option tunes the connection pool.
type Option func(*config)

func WithMaxOpenConns(n int) Option {
	return func(c *config) {
		c.maxOpenConns = n
	}
}

func WithMaxIdleConns(n int) Option {
	return func(c *config) {
		c.maxIdleConns = n
	}
}

func WithConnMaxLifetime(d time.Duration) Option {
	return func(c *config) {
		c.connMaxLifetime = d
	}
}

// NewClient opens a pooled connection to dsn and checks it is reachable.
//
//	dsn: "host=localhost user=txtracker password=secret dbname=txtracker port=5432 sslmode=disable"
func NewClient(ctx context.Context, dsn string, opts ...Option) (*client, error) {
	cfg := config{
		maxOpenConns:    20,
		maxIdleConns:    10,
		connMaxLifetime: time.Hour,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	db, err := gorm.Open(postgres.Open(dsn), &gorm.Config{
		Logger: newGormLogger(200 * time.Millisecond),
	})
	if err != nil {
		return nil, fmt.Errorf("failed to open postgres connection: %w", err)
	}

	sqlDB, err := db.DB()
	if err != nil {
		return nil, err
	}

	sqlDB.SetMaxOpenConns(cfg.maxOpenConns)
	sqlDB.SetMaxIdleConns(cfg.maxIdleConns)
	sqlDB.SetConnMaxLifetime(cfg.connMaxLifetime)

	c := &client{db: db}
	if err := c.Ping(ctx); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("failed to reach postgres: %w", err)
	}

	return c, nil
}
