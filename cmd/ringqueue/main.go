// Command ringqueue compares the growable CircularQueue with a buffered
// channel under bursty load.
//
// Each round enqueues -burst items and then drains the queue. When -burst is
// larger than -size the channel rejects the overflow while CircularQueue grows.
//
// Usage:
//
//	go run ./cmd/ringqueue -n 100000 -size 64 -burst 256
package main

import (
	"flag"
	"fmt"
	"os"
	"time"

	"github.com/randomizedcoder/ringqueue/internal/queue"
)

type result struct {
	dur      time.Duration
	accepted int
	rejected int
}

func run(q queue.FIFO[int], rounds, burst int) result {
	var r result
	start := time.Now()
	for i := 0; i < rounds; i++ {
		for j := 0; j < burst; j++ {
			if q.Enqueue(j) {
				r.accepted++
			} else {
				r.rejected++
			}
		}
		for !q.IsEmpty() {
			q.Dequeue()
		}
	}
	r.dur = time.Since(start)
	return r
}

func main() {
	rounds := flag.Int("n", 100_000, "number of rounds")
	size := flag.Int("size", queue.DefaultCapacity, "initial queue capacity")
	burst := flag.Int("burst", 256, "items enqueued per round")
	flag.Parse()

	circ, err := queue.NewCircularSize[int](*size)
	if err != nil {
		fmt.Fprintf(os.Stderr, "ringqueue: %v\n", err)
		os.Exit(2)
	}

	fmt.Printf("Benchmarking FIFO queues (%d rounds, size=%d, burst=%d)\n", *rounds, *size, *burst)
	fmt.Println("─────────────────────────────────────────────────")

	ch := run(queue.NewChannel[int](*size), *rounds, *burst)
	cq := run(circ, *rounds, *burst)

	ops := float64(*rounds) * float64(*burst)
	chPerOp := float64(ch.dur.Nanoseconds()) / ops
	cqPerOp := float64(cq.dur.Nanoseconds()) / ops

	fmt.Printf("\nResults (enqueue attempt + dequeue per item):\n")
	fmt.Printf("  Channel:        %v (%.2f ns/op, %d accepted, %d rejected)\n", ch.dur, chPerOp, ch.accepted, ch.rejected)
	fmt.Printf("  CircularQueue:  %v (%.2f ns/op, %d accepted, %d rejected)\n", cq.dur, cqPerOp, cq.accepted, cq.rejected)
	fmt.Printf("\n  CircularQueue capacity: %d -> %d\n", *size, circ.Cap())

	if cqPerOp < chPerOp {
		fmt.Printf("\n  Speedup:  %.2fx (CircularQueue faster)\n", chPerOp/cqPerOp)
	} else {
		fmt.Printf("\n  Speedup:  %.2fx (Channel faster)\n", cqPerOp/chPerOp)
	}
}
