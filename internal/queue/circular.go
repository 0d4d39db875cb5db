package queue

import (
	"fmt"
	"iter"
	"strings"
)

// DefaultCapacity is the initial capacity used by NewCircular.
const DefaultCapacity = 10

// CircularQueue is an unbounded FIFO queue stored in a circular slice.
//
// Elements live at buf[front], buf[(front+1)%cap], ..., buf[rear]. When an
// Enqueue arrives with the queue full, the slice is doubled and the
// elements are copied to the start of the new slice in queue order.
// Capacity never shrinks.
//
// The zero value is an empty queue that allocates DefaultCapacity slots on
// its first Enqueue.
type CircularQueue[T any] struct {
	buf   []T
	front int
	rear  int
	size  int
}

// NewCircular creates a CircularQueue with DefaultCapacity slots.
func NewCircular[T any]() *CircularQueue[T] {
	return newCircular[T](DefaultCapacity)
}

// NewCircularSize creates a CircularQueue with the specified initial capacity.
// Returns ErrInvalidCapacity if capacity is not positive.
func NewCircularSize[T any](capacity int) (*CircularQueue[T], error) {
	if capacity <= 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidCapacity, capacity)
	}
	return newCircular[T](capacity), nil
}

func newCircular[T any](capacity int) *CircularQueue[T] {
	// rear sits one slot behind front so the first Enqueue lands on index 0.
	return &CircularQueue[T]{
		buf:  make([]T, capacity),
		rear: capacity - 1,
	}
}

// Enqueue adds an item at the tail of the queue, growing it if full.
// Always returns true.
func (q *CircularQueue[T]) Enqueue(v T) bool {
	if q.size == len(q.buf) {
		q.grow()
	}
	q.rear = (q.rear + 1) % len(q.buf)
	q.buf[q.rear] = v
	q.size++
	return true
}

// Peek returns the item at the head without removing it.
// Returns false if the queue is empty.
func (q *CircularQueue[T]) Peek() (T, bool) {
	if q.size == 0 {
		var zero T
		return zero, false
	}
	return q.buf[q.front], true
}

// Element returns the item at the head without removing it.
// Returns ErrEmpty if the queue is empty.
func (q *CircularQueue[T]) Element() (T, error) {
	v, ok := q.Peek()
	if !ok {
		return v, ErrEmpty
	}
	return v, nil
}

// Dequeue removes and returns the item at the head.
// Returns false if the queue is empty.
func (q *CircularQueue[T]) Dequeue() (T, bool) {
	if q.size == 0 {
		var zero T
		return zero, false
	}
	return q.pop(), true
}

// Remove removes and returns the item at the head.
// Returns ErrEmpty if the queue is empty; use it where an empty queue
// means the caller forgot to check Len.
func (q *CircularQueue[T]) Remove() (T, error) {
	if q.size == 0 {
		var zero T
		return zero, ErrEmpty
	}
	return q.pop(), nil
}

// pop takes the head element, clearing its slot. The queue must be non-empty.
func (q *CircularQueue[T]) pop() T {
	var zero T
	v := q.buf[q.front]
	q.buf[q.front] = zero
	q.front = (q.front + 1) % len(q.buf)
	q.size--
	return v
}

// grow doubles the storage and moves the elements to indices 0..size-1.
// Only called from Enqueue when size == len(buf).
func (q *CircularQueue[T]) grow() {
	size := 2 * len(q.buf)
	if size == 0 {
		size = DefaultCapacity
	}
	buf := make([]T, size)
	n := copy(buf, q.buf[q.front:])
	if n < q.size {
		copy(buf[n:], q.buf[:q.size-n])
	}
	q.buf = buf
	q.front = 0
	q.rear = q.size - 1
}

// Len returns the number of items in the queue.
func (q *CircularQueue[T]) Len() int {
	return q.size
}

// Cap returns the number of slots in the backing storage.
func (q *CircularQueue[T]) Cap() int {
	return len(q.buf)
}

// IsEmpty reports whether the queue holds no items.
func (q *CircularQueue[T]) IsEmpty() bool {
	return q.size == 0
}

// Clear removes all items. Capacity is retained.
func (q *CircularQueue[T]) Clear() {
	clear(q.buf)
	q.front = 0
	q.rear = len(q.buf) - 1
	q.size = 0
}

// All returns an iterator over the items from head to tail.
//
// Each range over the result starts at the current head. The queue must not
// be modified while the iteration is in progress.
func (q *CircularQueue[T]) All() iter.Seq[T] {
	return func(yield func(T) bool) {
		buf, i := q.buf, q.front
		for n := q.size; n > 0; n-- {
			if !yield(buf[i]) {
				return
			}
			i = (i + 1) % len(buf)
		}
	}
}

// Contains reports whether v is in q.
func Contains[T comparable](q *CircularQueue[T], v T) bool {
	for x := range q.All() {
		if x == v {
			return true
		}
	}
	return false
}

// Values returns a copy of the items from head to tail.
func (q *CircularQueue[T]) Values() []T {
	out := make([]T, 0, q.size)
	for v := range q.All() {
		out = append(out, v)
	}
	return out
}

// String renders the items from head to tail as "[a b c]".
func (q *CircularQueue[T]) String() string {
	var sb strings.Builder
	sb.WriteByte('[')
	sep := ""
	for v := range q.All() {
		sb.WriteString(sep)
		fmt.Fprint(&sb, v)
		sep = " "
	}
	sb.WriteByte(']')
	return sb.String()
}
