package queue

// ChannelQueue wraps a buffered channel as a bounded FIFO.
//
// It is the standard library baseline CircularQueue is measured against.
// Unlike CircularQueue it never grows: Enqueue fails once the buffer is full.
type ChannelQueue[T any] struct {
	ch chan T
}

// NewChannel creates a ChannelQueue with the specified buffer size.
func NewChannel[T any](size int) *ChannelQueue[T] {
	return &ChannelQueue[T]{
		ch: make(chan T, size),
	}
}

// Enqueue adds an item to the queue.
// Returns false if the buffer is full (non-blocking).
func (q *ChannelQueue[T]) Enqueue(v T) bool {
	select {
	case q.ch <- v:
		return true
	default:
		return false
	}
}

// Dequeue removes and returns an item from the queue.
// Returns false if the queue is empty (non-blocking).
func (q *ChannelQueue[T]) Dequeue() (T, bool) {
	select {
	case v := <-q.ch:
		return v, true
	default:
		var zero T
		return zero, false
	}
}

// Len returns the current number of items in the queue.
func (q *ChannelQueue[T]) Len() int {
	return len(q.ch)
}

// IsEmpty reports whether the buffer holds no items.
func (q *ChannelQueue[T]) IsEmpty() bool {
	return len(q.ch) == 0
}

// Cap returns the capacity of the queue.
func (q *ChannelQueue[T]) Cap() int {
	return cap(q.ch)
}
