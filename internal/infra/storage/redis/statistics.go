package redis

import (
	"context"
	"errors"
	"fmt"
	"strconv"

	"github.com/gabapcia/txtracker/internal/scanner"
)

// scannerStatsKey holds the latest statistics snapshot as a hash:
//
//	"scanner:stats:<network>"
func scannerStatsKey(network string) string {
	return fmt.Sprintf("%s:stats:%s", scannerKeyPrefix, network)
}

// SaveStatistics replaces the snapshot fields in a single round trip.
func (c *client) SaveStatistics(ctx context.Context, stats scanner.Statistics) error {
	key := scannerStatsKey(c.network)
	return c.conn.HSet(ctx, key,
		"current_block", strconv.FormatUint(stats.CurrentBlock, 10),
		"latest_block", strconv.FormatUint(stats.LatestBlock, 10),
		"blocks_behind", strconv.FormatUint(stats.BlocksBehind, 10),
		"scan_speed", strconv.FormatFloat(stats.ScanSpeed, 'f', -1, 64),
		"total_transactions", strconv.FormatUint(stats.TotalTransactions, 10),
		"error_count", strconv.FormatUint(stats.ErrorCount, 10),
		"last_error", stats.LastError,
		"is_running", strconv.FormatBool(stats.IsRunning),
		"node_count", strconv.Itoa(stats.NodeCount),
		"current_node", stats.CurrentNode,
	).Err()
}

// ErrNoStatisticsFound is returned when no snapshot was saved yet.
var ErrNoStatisticsFound = errors.New("no scanner statistics found")

// LoadStatistics reads back the last snapshot written by SaveStatistics.
// Other processes, such as the stats command, use it to observe a running
// scanner.
func (c *client) LoadStatistics(ctx context.Context) (scanner.Statistics, error) {
	fields, err := c.conn.HGetAll(ctx, scannerStatsKey(c.network)).Result()
	if err != nil {
		return scanner.Statistics{}, err
	}
	if len(fields) == 0 {
		return scanner.Statistics{}, ErrNoStatisticsFound
	}

	var (
		stats scanner.Statistics
		errs  []error
	)
	parseUint := func(name string, dst *uint64) {
		if v, ok := fields[name]; ok {
			n, err := strconv.ParseUint(v, 10, 64)
			if err != nil {
				errs = append(errs, fmt.Errorf("%s: %w", name, err))
				return
			}
			*dst = n
		}
	}

	parseUint("current_block", &stats.CurrentBlock)
	parseUint("latest_block", &stats.LatestBlock)
	parseUint("blocks_behind", &stats.BlocksBehind)
	parseUint("total_transactions", &stats.TotalTransactions)
	parseUint("error_count", &stats.ErrorCount)

	if v, ok := fields["scan_speed"]; ok {
		if stats.ScanSpeed, err = strconv.ParseFloat(v, 64); err != nil {
			errs = append(errs, fmt.Errorf("scan_speed: %w", err))
		}
	}
	if v, ok := fields["is_running"]; ok {
		if stats.IsRunning, err = strconv.ParseBool(v); err != nil {
			errs = append(errs, fmt.Errorf("is_running: %w", err))
		}
	}
	if v, ok := fields["node_count"]; ok {
		if stats.NodeCount, err = strconv.Atoi(v); err != nil {
			errs = append(errs, fmt.Errorf("node_count: %w", err))
		}
	}
	stats.LastError = fields["last_error"]
	stats.CurrentNode = fields["current_node"]

	if err := errors.Join(errs...); err != nil {
		return scanner.Statistics{}, fmt.Errorf("invalid scanner statistics: %w", err)
	}
	return stats, nil
}

var _ scanner.StatisticsSink = new(client)
