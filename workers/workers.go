// Package workers provides the fork-join execution context that power-table
// construction runs on. A Worker partitions an index range into contiguous
// chunks, runs one goroutine per chunk and blocks until every chunk is done.
// The degree of parallelism is fixed when the Worker is created, so callers
// (and tests) fully control it; a single-CPU Worker yields a sequential,
// deterministic execution.
package workers

import (
	"runtime"
	"sync"
)

// Worker executes fork-join scopes over a fixed number of CPUs.
type Worker struct {
	cpus int
}

// New returns a Worker sized to the machine's CPU count.
func New() *Worker {
	return &Worker{cpus: runtime.NumCPU()}
}

// NewWithCPUs returns a Worker that targets the given number of CPUs.
// Values below one are clamped to one.
func NewWithCPUs(cpus int) *Worker {
	if cpus < 1 {
		cpus = 1
	}
	return &Worker{cpus: cpus}
}

// CPUs returns the number of CPUs the Worker targets.
func (w *Worker) CPUs() int {
	return w.cpus
}

// ChunkSize returns the size of the contiguous chunks Scope partitions n
// units of work into. Small workloads get chunks of one unit so every CPU
// still receives work.
func (w *Worker) ChunkSize(n int) int {
	if n < w.cpus {
		return 1
	}
	return n / w.cpus
}

// Scope partitions [0, n) into contiguous chunks and runs fn once per chunk
// concurrently, blocking until all chunks have finished. Chunk ranges are
// disjoint and cover [0, n) exactly, so closures that write only inside
// their own range need no locking. n == 0 returns immediately.
func (w *Worker) Scope(n int, fn func(start, end int)) {
	if n <= 0 {
		return
	}
	chunk := w.ChunkSize(n)
	var wg sync.WaitGroup
	for start := 0; start < n; start += chunk {
		end := min(start+chunk, n)
		wg.Add(1)
		go func() {
			defer wg.Done()
			fn(start, end)
		}()
	}
	wg.Wait()
}
