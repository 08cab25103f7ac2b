package scanner

import (
	"sync"
	"time"
)

// State is the scanner's mutable progress. Only the scan loop writes to it
// while running; readers take snapshots.
type State struct {
	CurrentBlock      uint64
	LatestKnownBlock  uint64
	Running           bool
	ScanSpeed         float64
	TotalTransactions uint64
	ErrorCount        uint64
	LastError         string
}

type state struct {
	mu sync.RWMutex
	State

	lastSampleBlock uint64
}

func (s *state) snapshot() State {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.State
}

func (s *state) current() uint64 {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.CurrentBlock
}

func (s *state) isRunning() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()

	return s.Running
}

func (s *state) setRunning(running bool) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.Running = running
}

// start marks the scanner as running from block. It fails when the scanner
// already runs.
func (s *state) start(block uint64) bool {
	s.mu.Lock()
	defer s.mu.Unlock()

	if s.Running {
		return false
	}

	s.Running = true
	s.CurrentBlock = block
	s.lastSampleBlock = block
	return true
}

func (s *state) setLatest(latest uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.LatestKnownBlock = latest
}

// advance records a processed block.
func (s *state) advance(processed uint64, transactions int) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.CurrentBlock = processed + 1
	s.TotalTransactions += uint64(transactions)
}

func (s *state) recordError(err error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.ErrorCount++
	s.LastError = err.Error()
}

func (s *state) clearLastError() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.LastError = ""
}

// reset moves the cursor and clears error state.
func (s *state) reset(block uint64) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.CurrentBlock = block
	s.lastSampleBlock = block
	s.ErrorCount = 0
	s.LastError = ""
}

// sampleSpeed sets ScanSpeed to the blocks per minute processed since the
// previous sample.
func (s *state) sampleSpeed(interval time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if interval <= 0 {
		return
	}

	var processed uint64
	if s.CurrentBlock > s.lastSampleBlock {
		processed = s.CurrentBlock - s.lastSampleBlock
	}

	s.ScanSpeed = float64(processed) / interval.Minutes()
	s.lastSampleBlock = s.CurrentBlock
}
