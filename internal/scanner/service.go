// Package scanner polls a chain for new blocks, persists their transactions
// and publishes one TransactionEvent per transaction.
//
// The scanner keeps a cursor (the next block to process) that only moves
// forward one block at a time, after the block and all its transactions were
// stored and published. Progress is checkpointed after every block so a
// restart resumes right after the last processed block.
package scanner

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/gabapcia/txtracker/internal/chain"
	"github.com/gabapcia/txtracker/internal/nodepool"
	"github.com/gabapcia/txtracker/internal/pkg/resilience/retry"

	"github.com/shopspring/decimal"
)

var (
	// ErrServiceAlreadyStarted is returned if Start is called while the
	// scanner is running.
	ErrServiceAlreadyStarted = errors.New("service already started")

	// ErrServiceRunning is returned by operations that require a stopped
	// scanner.
	ErrServiceRunning = errors.New("scanner is running")

	// ErrInvalidStartBlock is returned by Reset for block zero.
	ErrInvalidStartBlock = errors.New("start block must be greater than zero")
)

const (
	defaultStartBlock    = 62800000
	defaultBatchSize     = 100
	defaultScanInterval  = 3 * time.Second
	defaultSpeedInterval = time.Minute
	defaultErrorBackoff  = 10 * time.Second
)

// Statistics is a read-only view of the scanner for status endpoints.
type Statistics struct {
	CurrentBlock      uint64  `json:"current_block"`
	LatestBlock       uint64  `json:"latest_block"`
	BlocksBehind      uint64  `json:"blocks_behind"`
	ScanSpeed         float64 `json:"scan_speed"`
	TotalTransactions uint64  `json:"total_transactions"`
	ErrorCount        uint64  `json:"error_count"`
	LastError         string  `json:"last_error,omitempty"`
	IsRunning         bool    `json:"is_running"`
	NodeCount         int     `json:"node_count"`
	CurrentNode       string  `json:"current_node,omitempty"`
}

// Service is the scanner lifecycle and query surface.
type Service interface {
	// Start resumes from the saved checkpoint (or the configured start
	// block) and launches the scan loop. It returns ErrServiceAlreadyStarted
	// when the loop is already running.
	Start(ctx context.Context) error

	// Stop asks the loop to exit at the next block boundary and waits for it.
	// In-flight requests are allowed to finish.
	Stop()

	// Restart is Stop followed by Start.
	Restart(ctx context.Context) error

	// Close stops the loop and cancels any in-flight request.
	Close()

	// ScanBlock processes a single block outside the loop: it stores the
	// block and publishes its events without moving the cursor.
	ScanBlock(ctx context.Context, number uint64) (chain.Block, error)

	// Reset moves the cursor to startBlock, saves startBlock-1 as progress
	// and clears the error state. The scanner must be stopped.
	Reset(ctx context.Context, startBlock uint64) error

	State() State
	Statistics() Statistics

	// HealthCheck reports whether the last tick succeeded.
	HealthCheck() bool

	NodeHealth() []nodepool.NodeHealth
}

type closeFunc func()

type service struct {
	mu        sync.Mutex
	isStarted bool
	closeFunc closeFunc
	stopFunc  closeFunc

	state *state

	blockchain         Blockchain
	transactionStorage TransactionStorage
	checkpointStorage  CheckpointStorage
	publisher          Publisher
	nodeMonitor        NodeMonitor
	statisticsSink     StatisticsSink
	retry              retry.Retry

	startBlock             uint64
	batchSize              uint64
	scanInterval           time.Duration
	speedInterval          time.Duration
	errorBackoff           time.Duration
	largeTransferThreshold *decimal.Decimal

	metrics instruments
}

var _ Service = (*service)(nil)

func (s *service) Start(ctx context.Context) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isStarted {
		return ErrServiceAlreadyStarted
	}

	from, err := s.resumePoint(ctx)
	if err != nil {
		return err
	}

	if !s.state.start(from) {
		return ErrServiceAlreadyStarted
	}

	ctx, cancel := context.WithCancel(ctx)
	stopCh := make(chan struct{})

	var wg sync.WaitGroup
	s.startScanLoop(ctx, &wg, stopCh)
	s.startSpeedSampler(ctx, &wg, stopCh)

	var stopOnce sync.Once
	s.stopFunc = func() {
		stopOnce.Do(func() {
			s.state.setRunning(false)
			close(stopCh)
			wg.Wait()
		})
	}
	s.closeFunc = func() {
		cancel()
		s.stopFunc()
	}

	s.isStarted = true
	return nil
}

func (s *service) Stop() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.stopFunc != nil {
		s.stopFunc()
	}

	s.isStarted = false
	s.stopFunc = nil
	s.closeFunc = nil
}

func (s *service) Restart(ctx context.Context) error {
	s.Stop()
	return s.Start(ctx)
}

func (s *service) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.closeFunc != nil {
		s.closeFunc()
	}

	s.isStarted = false
	s.stopFunc = nil
	s.closeFunc = nil
}

func (s *service) Reset(ctx context.Context, startBlock uint64) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.isStarted {
		return ErrServiceRunning
	}

	if startBlock == 0 {
		return ErrInvalidStartBlock
	}

	if err := s.persist(ctx, func() error {
		return s.checkpointStorage.SaveScanProgress(ctx, startBlock-1)
	}); err != nil {
		return err
	}

	s.state.reset(startBlock)
	return nil
}

func (s *service) State() State {
	return s.state.snapshot()
}

func (s *service) Statistics() Statistics {
	st := s.state.snapshot()

	stats := Statistics{
		CurrentBlock:      st.CurrentBlock,
		LatestBlock:       st.LatestKnownBlock,
		ScanSpeed:         st.ScanSpeed,
		TotalTransactions: st.TotalTransactions,
		ErrorCount:        st.ErrorCount,
		LastError:         st.LastError,
		IsRunning:         st.Running,
	}
	if st.LatestKnownBlock > st.CurrentBlock {
		stats.BlocksBehind = st.LatestKnownBlock - st.CurrentBlock
	}

	for _, node := range s.NodeHealth() {
		stats.NodeCount++
		if node.Current {
			stats.CurrentNode = node.Name
		}
	}

	return stats
}

func (s *service) HealthCheck() bool {
	return s.state.snapshot().LastError == ""
}

func (s *service) NodeHealth() []nodepool.NodeHealth {
	if s.nodeMonitor == nil {
		return nil
	}
	return s.nodeMonitor.Health()
}

type config struct {
	checkpointStorage      CheckpointStorage
	nodeMonitor            NodeMonitor
	statisticsSink         StatisticsSink
	retry                  retry.Retry
	startBlock             uint64
	batchSize              uint64
	scanInterval           time.Duration
	speedInterval          time.Duration
	errorBackoff           time.Duration
	largeTransferThreshold *decimal.Decimal
}

// Option configures the scanner.
type Option func(*config)

// New creates a stopped scanner.
func New(blockchain Blockchain, transactionStorage TransactionStorage, publisher Publisher, opts ...Option) *service {
	cfg := config{
		checkpointStorage: nopCheckpoint{},
		startBlock:        defaultStartBlock,
		batchSize:         defaultBatchSize,
		scanInterval:      defaultScanInterval,
		speedInterval:     defaultSpeedInterval,
		errorBackoff:      defaultErrorBackoff,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return &service{
		state:                  &state{},
		blockchain:             blockchain,
		transactionStorage:     transactionStorage,
		checkpointStorage:      cfg.checkpointStorage,
		publisher:              publisher,
		nodeMonitor:            cfg.nodeMonitor,
		statisticsSink:         cfg.statisticsSink,
		retry:                  cfg.retry,
		startBlock:             cfg.startBlock,
		batchSize:              cfg.batchSize,
		scanInterval:           cfg.scanInterval,
		speedInterval:          cfg.speedInterval,
		errorBackoff:           cfg.errorBackoff,
		largeTransferThreshold: cfg.largeTransferThreshold,
		metrics:                newInstruments(),
	}
}

func WithCheckpointStorage(cs CheckpointStorage) Option {
	return func(c *config) {
		c.checkpointStorage = cs
	}
}

func WithNodeMonitor(m NodeMonitor) Option {
	return func(c *config) {
		c.nodeMonitor = m
	}
}

func WithStatisticsSink(sink StatisticsSink) Option {
	return func(c *config) {
		c.statisticsSink = sink
	}
}

// WithRetry retries storage writes with r before counting them as failed.
func WithRetry(r retry.Retry) Option {
	return func(c *config) {
		c.retry = r
	}
}

// WithStartBlock sets the block scanned first when no checkpoint exists.
func WithStartBlock(n uint64) Option {
	return func(c *config) {
		c.startBlock = n
	}
}

// WithBatchSize bounds how many blocks a single tick processes.
func WithBatchSize(n uint64) Option {
	return func(c *config) {
		if n > 0 {
			c.batchSize = n
		}
	}
}

func WithScanInterval(d time.Duration) Option {
	return func(c *config) {
		c.scanInterval = d
	}
}

func WithSpeedInterval(d time.Duration) Option {
	return func(c *config) {
		c.speedInterval = d
	}
}

// WithErrorBackoff sets the wait after a failed tick.
func WithErrorBackoff(d time.Duration) Option {
	return func(c *config) {
		c.errorBackoff = d
	}
}

// WithLargeTransferThreshold publishes transactions whose value is at least
// threshold as EventLargeTransfer instead of EventTransaction.
func WithLargeTransferThreshold(threshold decimal.Decimal) Option {
	return func(c *config) {
		c.largeTransferThreshold = &threshold
	}
}
