package webhook

import (
	"sync"
	"time"
)

type stats struct {
	mu                sync.Mutex
	total             uint64
	successful        uint64
	failed            uint64
	permanentFailures uint64
	averageMs         float64
}

func (s *stats) record(success bool, d time.Duration) {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.total++
	if success {
		s.successful++
	} else {
		s.failed++
	}

	ms := float64(d.Microseconds()) / 1000
	s.averageMs += (ms - s.averageMs) / float64(s.total)
}

func (s *stats) recordPermanentFailure() {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.permanentFailures++
}

func (s *stats) snapshot() QueueStatus {
	s.mu.Lock()
	defer s.mu.Unlock()

	status := QueueStatus{
		TotalDeliveries:       s.total,
		SuccessfulDeliveries:  s.successful,
		FailedDeliveries:      s.failed,
		PermanentFailures:     s.permanentFailures,
		AverageDeliveryTimeMs: s.averageMs,
	}
	if s.total > 0 {
		status.SuccessRate = float64(s.successful) / float64(s.total) * 100
	}

	return status
}
