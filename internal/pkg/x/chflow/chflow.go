// Package chflow provides context-aware and non-blocking helpers for
// receiving from and sending to Go channels.
package chflow

import "context"

// Receive waits to receive a value from the provided channel or for the context to be canceled.
// It returns the value (zero value if canceled) and a boolean indicating if the receive was successful.
func Receive[T any](ctx context.Context, ch <-chan T) (T, bool) {
	var data T
	select {
	case <-ctx.Done():
		return data, false
	case data, ok := <-ch:
		return data, ok
	}
}

// Send attempts to send a value to the provided channel unless the context is canceled first.
// It returns true if the send was successful, false if the context was done before sent.
func Send[T any](ctx context.Context, ch chan<- T, data T) bool {
	select {
	case <-ctx.Done():
		return false
	case ch <- data:
		return true
	}
}

// TrySend sends data only if ch can accept it without blocking.
func TrySend[T any](ch chan<- T, data T) bool {
	select {
	case ch <- data:
		return true
	default:
		return false
	}
}

// SendDropOldest delivers data to a buffered channel without blocking. When
// the buffer is full the oldest queued value is discarded to make room.
// It reports how many values were discarded.
//
// The caller must be the only sender on ch.
func SendDropOldest[T any](ch chan T, data T) (dropped int) {
	for {
		if TrySend(ch, data) {
			return dropped
		}

		select {
		case <-ch:
			dropped++
		default:
		}
	}
}
