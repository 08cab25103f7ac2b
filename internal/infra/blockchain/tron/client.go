// Package tron implements the scanner's chain client for TRON nodes exposing
// the Ethereum-compatible JSON-RPC API.
package tron

import (
	"github.com/gabapcia/txtracker/internal/pkg/transport/jsonrpc"
	"github.com/gabapcia/txtracker/internal/scanner"
)

const (
	defaultNativeSymbol   = "TRX"
	defaultNativeDecimals = 6
	defaultTokenSymbol    = "USDT"
	defaultTokenDecimals  = 6
)

// client talks to a TRON node (or a nodepool.Pool) through a JSON-RPC
// client.
type client struct {
	conn jsonrpc.Client

	nativeSymbol   string
	nativeDecimals int
	tokenSymbol    string
	tokenDecimals  int
}

var _ scanner.Blockchain = (*client)(nil)

type config struct {
	nativeSymbol   string
	nativeDecimals int
	tokenSymbol    string
	tokenDecimals  int
}

// Option configures the client.
type Option func(*config)

// WithNativeToken sets the symbol and decimals recorded on native coin
// transfers. An empty symbol leaves native transfers without a token symbol.
func WithNativeToken(symbol string, decimals int) Option {
	return func(c *config) {
		c.nativeSymbol = symbol
		c.nativeDecimals = decimals
	}
}

// WithTransferToken sets the symbol and decimals recorded on token transfer
// calls.
func WithTransferToken(symbol string, decimals int) Option {
	return func(c *config) {
		c.tokenSymbol = symbol
		c.tokenDecimals = decimals
	}
}

// NewClient creates a TRON chain client on top of conn.
func NewClient(conn jsonrpc.Client, opts ...Option) *client {
	cfg := config{
		nativeSymbol:   defaultNativeSymbol,
		nativeDecimals: defaultNativeDecimals,
		tokenSymbol:    defaultTokenSymbol,
		tokenDecimals:  defaultTokenDecimals,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &client{
		conn:           conn,
		nativeSymbol:   cfg.nativeSymbol,
		nativeDecimals: cfg.nativeDecimals,
		tokenSymbol:    cfg.tokenSymbol,
		tokenDecimals:  cfg.tokenDecimals,
	}
}
