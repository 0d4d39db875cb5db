package queue_test

import (
	"testing"

	"github.com/randomizedcoder/ringqueue/internal/queue"
)

// Sink variables to prevent compiler from eliminating benchmark loops
var sinkInt int
var sinkBool bool

// Direct type benchmarks (true performance floor)

func BenchmarkQueue_Channel_EnqueueDequeue_Direct(b *testing.B) {
	q := queue.NewChannel[int](1024)
	b.ReportAllocs()
	b.ResetTimer()

	var val int
	var ok bool
	for i := 0; i < b.N; i++ {
		q.Enqueue(i)
		val, ok = q.Dequeue()
	}
	sinkInt = val
	sinkBool = ok
}

func BenchmarkQueue_Circular_EnqueueDequeue_Direct(b *testing.B) {
	q := queue.NewCircular[int]()
	b.ReportAllocs()
	b.ResetTimer()

	var val int
	var ok bool
	for i := 0; i < b.N; i++ {
		q.Enqueue(i)
		val, ok = q.Dequeue()
	}
	sinkInt = val
	sinkBool = ok
}

// Interface benchmarks (with dynamic dispatch overhead)

func BenchmarkQueue_Channel_EnqueueDequeue_Interface(b *testing.B) {
	var q queue.FIFO[int] = queue.NewChannel[int](1024)
	b.ReportAllocs()
	b.ResetTimer()

	var val int
	var ok bool
	for i := 0; i < b.N; i++ {
		q.Enqueue(i)
		val, ok = q.Dequeue()
	}
	sinkInt = val
	sinkBool = ok
}

func BenchmarkQueue_Circular_EnqueueDequeue_Interface(b *testing.B) {
	var q queue.FIFO[int] = queue.NewCircular[int]()
	b.ReportAllocs()
	b.ResetTimer()

	var val int
	var ok bool
	for i := 0; i < b.N; i++ {
		q.Enqueue(i)
		val, ok = q.Dequeue()
	}
	sinkInt = val
	sinkBool = ok
}

// Enqueue-only benchmarks

func BenchmarkQueue_Channel_Enqueue(b *testing.B) {
	q := queue.NewChannel[int](b.N + 1)
	b.ReportAllocs()
	b.ResetTimer()

	var ok bool
	for i := 0; i < b.N; i++ {
		ok = q.Enqueue(i)
	}
	sinkBool = ok
}

// BenchmarkQueue_Circular_Enqueue_Grow starts from the default capacity so
// the amortized cost of doubling is included.
func BenchmarkQueue_Circular_Enqueue_Grow(b *testing.B) {
	q := queue.NewCircular[int]()
	b.ReportAllocs()
	b.ResetTimer()

	var ok bool
	for i := 0; i < b.N; i++ {
		ok = q.Enqueue(i)
	}
	sinkBool = ok
}

func BenchmarkQueue_Circular_Enqueue_Presized(b *testing.B) {
	q, err := queue.NewCircularSize[int](b.N + 1)
	if err != nil {
		b.Fatal(err)
	}
	b.ReportAllocs()
	b.ResetTimer()

	var ok bool
	for i := 0; i < b.N; i++ {
		ok = q.Enqueue(i)
	}
	sinkBool = ok
}

// Iteration

func BenchmarkQueue_Circular_All_1024(b *testing.B) {
	q := queue.NewCircular[int]()
	for i := 0; i < 1024; i++ {
		q.Enqueue(i)
	}
	b.ReportAllocs()
	b.ResetTimer()

	var sum int
	for i := 0; i < b.N; i++ {
		for v := range q.All() {
			sum += v
		}
	}
	sinkInt = sum
}
