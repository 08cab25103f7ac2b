package scanner

import (
	"context"
	"errors"

	"github.com/gabapcia/txtracker/internal/chain"
)

// ErrNoCheckpointFound is returned by LoadLastProcessedBlock when no scan
// progress has been saved yet.
var ErrNoCheckpointFound = errors.New("no scan progress found")

// TransactionStorage persists scanned data. Both writes must be idempotent
// upserts: re-scanning a block stores the same rows, and only a
// transaction's status may change on a later write.
type TransactionStorage interface {
	SaveTransaction(ctx context.Context, tx chain.Transaction) error
	SaveBlock(ctx context.Context, block chain.Block) error
}

// CheckpointStorage persists the last fully processed block number.
type CheckpointStorage interface {
	// LoadLastProcessedBlock returns ErrNoCheckpointFound when nothing was
	// saved yet.
	LoadLastProcessedBlock(ctx context.Context) (uint64, error)

	// SaveScanProgress overwrites the stored checkpoint.
	SaveScanProgress(ctx context.Context, blockNumber uint64) error
}

// StatisticsSink receives a statistics snapshot on every speed sample.
type StatisticsSink interface {
	SaveStatistics(ctx context.Context, stats Statistics) error
}

type nopCheckpoint struct{}

func (nopCheckpoint) LoadLastProcessedBlock(context.Context) (uint64, error) {
	return 0, ErrNoCheckpointFound
}

func (nopCheckpoint) SaveScanProgress(context.Context, uint64) error {
	return nil
}
