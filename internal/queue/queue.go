// Package queue provides a growable ring-buffer FIFO queue.
//
// The package offers two implementations of the FIFO interface:
//   - CircularQueue: unbounded queue over a circular slice that doubles when full
//   - ChannelQueue: bounded buffered-channel baseline used for comparison
//
// # CircularQueue Safety
//
// CircularQueue is NOT safe for concurrent use. Callers that share a queue
// between goroutines must serialize every call with their own mutex.
package queue

import "errors"

var (
	// ErrEmpty is returned by Remove and Element on an empty queue.
	ErrEmpty = errors.New("queue: empty")

	// ErrInvalidCapacity is returned when a queue is constructed with a
	// capacity that is not positive.
	ErrInvalidCapacity = errors.New("queue: capacity must be positive")
)

// FIFO is a non-blocking first-in-first-out queue.
//
// Enqueue reports whether the item was accepted and Dequeue returns false
// if the queue is empty.
type FIFO[T any] interface {
	// Enqueue adds an item at the tail.
	// Returns false if the item was not accepted.
	Enqueue(T) bool

	// Dequeue removes and returns the item at the head.
	// Returns false if the queue is empty.
	Dequeue() (T, bool)

	// Len returns the number of items in the queue.
	Len() int

	// IsEmpty reports whether Len is zero.
	IsEmpty() bool
}
