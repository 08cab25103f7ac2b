package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/gabapcia/txtracker/internal/scanner"

	"github.com/redis/go-redis/v9"
)

// scannerKeyPrefix is the namespace of every key written for the scanner.
const scannerKeyPrefix = "scanner"

// scannerCheckpointKey is where the last processed block is kept:
//
//	"scanner:checkpoint:<network>"
func scannerCheckpointKey(network string) string {
	return fmt.Sprintf("%s:checkpoint:%s", scannerKeyPrefix, network)
}

// SaveScanProgress overwrites the checkpoint. The key never expires.
func (c *client) SaveScanProgress(ctx context.Context, blockNumber uint64) error {
	key := scannerCheckpointKey(c.network)
	return c.conn.Set(ctx, key, strconv.FormatUint(blockNumber, 10), 0).Err()
}

// LoadLastProcessedBlock returns scanner.ErrNoCheckpointFound when the key
// does not exist.
func (c *client) LoadLastProcessedBlock(ctx context.Context) (uint64, error) {
	key := scannerCheckpointKey(c.network)

	val, err := c.conn.Get(ctx, key).Result()
	if err != nil {
		if errors.Is(err, redis.Nil) {
			err = scanner.ErrNoCheckpointFound
		}

		return 0, err
	}

	number, err := strconv.ParseUint(val, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("invalid checkpoint %q: %w", val, err)
	}

	return number, nil
}

// ResetScanProgress deletes the checkpoint.
func (c *client) ResetScanProgress(ctx context.Context) error {
	return c.conn.Del(ctx, scannerCheckpointKey(c.network)).Err()
}

var _ scanner.CheckpointStorage = new(client)
