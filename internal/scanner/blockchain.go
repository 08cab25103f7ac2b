package scanner

import (
	"context"

	"github.com/gabapcia/txtracker/internal/chain"
	"github.com/gabapcia/txtracker/internal/nodepool"
)

// Blockchain is the chain client the scanner polls. Implementations are
// expected to handle node failover themselves; every error they return is
// treated as a failed tick.
type Blockchain interface {
	// LatestBlockNumber returns the current chain head.
	LatestBlockNumber(ctx context.Context) (uint64, error)

	// BlockByNumber fetches and parses a full block. Transactions that cannot
	// be parsed are left out of the returned block.
	BlockByNumber(ctx context.Context, number uint64) (chain.Block, error)
}

// NodeMonitor reports the health of the nodes behind the Blockchain.
type NodeMonitor interface {
	Health() []nodepool.NodeHealth
}

// Publisher receives one event per scanned transaction. Publish must not
// block on slow consumers.
type Publisher interface {
	Publish(ctx context.Context, event chain.TransactionEvent)
}
