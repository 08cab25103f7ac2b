package redis

import (
	"context"

	redis "github.com/redis/go-redis/v9"
)

// defaultNetwork namespaces every key written by this client.
const defaultNetwork = "tron"

type client struct {
	conn    redis.Cmdable
	closer  func() error
	network string
}

func (c *client) Close() error {
	return c.closer()
}

func (c *client) Ping(ctx context.Context) error {
	return c.conn.Ping(ctx).Err()
}

// Option configures the client.
type Option func(*client)

// WithNetwork sets the network name used in every key. Defaults to "tron".
func WithNetwork(network string) Option {
	return func(c *client) {
		c.network = network
	}
}

func newClient(conn redis.Cmdable, closer func() error, opts ...Option) *client {
	c := &client{
		conn:    conn,
		closer:  closer,
		network: defaultNetwork,
	}
	for _, opt := range opts {
		opt(c)
	}
	return c
}

func NewClient(ctx context.Context, addr, username, password string, db int, opts ...Option) (*client, error) {
	conn := redis.NewClient(&redis.Options{
		Addr:     addr,
		Username: username,
		Password: password,
		DB:       db,
	})

	if err := conn.Ping(ctx).Err(); err != nil {
		_ = conn.Close()
		return nil, err
	}

	return newClient(conn, conn.Close, opts...), nil
}
