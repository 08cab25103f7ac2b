package scanner

import (
	"context"
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/gabapcia/txtracker/internal/chain"
	"github.com/gabapcia/txtracker/internal/pkg/logger"
)

// resumePoint returns the block right after the saved checkpoint, or the
// configured start block when there is none.
func (s *service) resumePoint(ctx context.Context) (uint64, error) {
	last, err := s.checkpointStorage.LoadLastProcessedBlock(ctx)
	if err != nil {
		if errors.Is(err, ErrNoCheckpointFound) {
			return s.startBlock, nil
		}
		return 0, fmt.Errorf("load scan progress: %w", err)
	}

	return last + 1, nil
}

// persist runs a storage write through the configured retry, if any.
func (s *service) persist(ctx context.Context, op func() error) error {
	if s.retry == nil {
		return op()
	}
	return s.retry.Execute(ctx, op)
}

// eventFor builds the single event emitted for tx.
func (s *service) eventFor(tx chain.Transaction) chain.TransactionEvent {
	eventType := chain.EventTransaction
	if s.largeTransferThreshold != nil {
		if amount, ok := tx.Amount(); ok && amount.GreaterThanOrEqual(*s.largeTransferThreshold) {
			eventType = chain.EventLargeTransfer
		}
	}

	return chain.TransactionEvent{Transaction: tx, Type: eventType}
}

// storeBlock persists every transaction of block, publishing one event right
// after each one is saved, and then the block itself. A publish cut short by
// ctx fails the block so its progress is never saved.
func (s *service) storeBlock(ctx context.Context, block chain.Block) error {
	for _, tx := range block.Transactions {
		if err := s.persist(ctx, func() error {
			return s.transactionStorage.SaveTransaction(ctx, tx)
		}); err != nil {
			return fmt.Errorf("save transaction %s: %w", tx.Hash, err)
		}

		s.publisher.Publish(ctx, s.eventFor(tx))
		if err := ctx.Err(); err != nil {
			return fmt.Errorf("publish transaction %s: %w", tx.Hash, err)
		}
	}

	if err := s.persist(ctx, func() error {
		return s.transactionStorage.SaveBlock(ctx, block)
	}); err != nil {
		return fmt.Errorf("save block %d: %w", block.Number, err)
	}

	return nil
}

// processBlock fetches, stores and publishes one block, then advances the
// cursor and saves progress.
func (s *service) processBlock(ctx context.Context, number uint64) error {
	block, err := s.blockchain.BlockByNumber(ctx, number)
	if err != nil {
		return fmt.Errorf("fetch block %d: %w", number, err)
	}

	if err := s.storeBlock(ctx, block); err != nil {
		return err
	}

	s.state.advance(number, block.TransactionCount())
	s.metrics.recordBlock(ctx, block.TransactionCount())

	if err := s.persist(ctx, func() error {
		return s.checkpointStorage.SaveScanProgress(ctx, number)
	}); err != nil {
		return fmt.Errorf("save scan progress %d: %w", number, err)
	}

	logger.Debug(ctx, "block processed",
		"block.number", number,
		"block.transactions", block.TransactionCount(),
	)
	return nil
}

// tick processes the window [current, min(current+batch-1, latest)] in
// order. It stops early, without error, when the scanner is stopped.
func (s *service) tick(ctx context.Context) error {
	latest, err := s.blockchain.LatestBlockNumber(ctx)
	if err != nil {
		return fmt.Errorf("fetch latest block: %w", err)
	}
	s.state.setLatest(latest)

	current := s.state.current()
	if current > latest {
		return nil
	}

	end := min(current+s.batchSize-1, latest)
	for number := current; number <= end; number++ {
		if !s.state.isRunning() || ctx.Err() != nil {
			return nil
		}

		if err := s.processBlock(ctx, number); err != nil {
			return err
		}
	}

	return nil
}

func (s *service) scanLoop(ctx context.Context, stopCh <-chan struct{}) {
	defer s.state.setRunning(false)

	for {
		if !s.state.isRunning() {
			return
		}

		wait := s.scanInterval
		if err := s.tick(ctx); err != nil {
			if ctx.Err() != nil {
				return
			}

			s.state.recordError(err)
			s.metrics.recordError(ctx)
			logger.Error(ctx, "scan tick failed",
				"scanner.current_block", s.state.current(),
				"error", err,
			)
			wait = s.errorBackoff
		} else {
			s.state.clearLastError()
		}

		select {
		case <-ctx.Done():
			return
		case <-stopCh:
			return
		case <-time.After(wait):
		}
	}
}

func (s *service) startScanLoop(ctx context.Context, wg *sync.WaitGroup, stopCh <-chan struct{}) {
	wg.Add(1)
	go func() {
		defer wg.Done()
		s.scanLoop(ctx, stopCh)
	}()
}

func (s *service) speedSampler(ctx context.Context, stopCh <-chan struct{}) {
	if s.speedInterval <= 0 {
		return
	}

	ticker := time.NewTicker(s.speedInterval)
	defer ticker.Stop()

	for {
		select {
		case <-ctx.Done():
			return
		case <-stopCh:
			return
		case <-ticker.C:
			s.state.sampleSpeed(s.speedInterval)

			if s.statisticsSink == nil {
				continue
			}

			if err := s.statisticsSink.SaveStatistics(ctx, s.Statistics()); err != nil {
				logger.Warn(ctx, "failed to save scanner statistics", "error", err)
			}
		}
	}
}

func (s *service) startSpeedSampler(ctx context.Context, wg *sync.WaitGroup, stopCh <-chan struct{}) {
	wg.Add(1)
	go func() {
		defer wg.Done()
		s.speedSampler(ctx, stopCh)
	}()
}

func (s *service) ScanBlock(ctx context.Context, number uint64) (chain.Block, error) {
	block, err := s.blockchain.BlockByNumber(ctx, number)
	if err != nil {
		return chain.Block{}, fmt.Errorf("fetch block %d: %w", number, err)
	}

	if err := s.storeBlock(ctx, block); err != nil {
		return chain.Block{}, err
	}

	logger.Info(ctx, "block scanned manually",
		"block.number", number,
		"block.transactions", block.TransactionCount(),
	)
	return block, nil
}
