package workers

import (
	"sync"
	"testing"

	qt "github.com/frankban/quicktest"
)

func TestScopeCoversRangeExactlyOnce(t *testing.T) {
	c := qt.New(t)

	for _, cpus := range []int{1, 2, 3, 4, 16} {
		for _, n := range []int{0, 1, 2, 7, 64, 1000} {
			w := NewWithCPUs(cpus)
			visits := make([]int, n)
			w.Scope(n, func(start, end int) {
				// Chunks are disjoint, so writing into the owned
				// sub-range needs no synchronization.
				for i := start; i < end; i++ {
					visits[i]++
				}
			})
			for i, v := range visits {
				c.Assert(v, qt.Equals, 1, qt.Commentf("cpus=%d n=%d index=%d", cpus, n, i))
			}
		}
	}
}

func TestScopeChunksAreContiguous(t *testing.T) {
	c := qt.New(t)

	w := NewWithCPUs(4)
	n := 103
	chunk := w.ChunkSize(n)

	var mu sync.Mutex
	type span struct{ start, end int }
	var spans []span
	w.Scope(n, func(start, end int) {
		mu.Lock()
		spans = append(spans, span{start, end})
		mu.Unlock()
	})

	c.Assert(spans, qt.HasLen, (n+chunk-1)/chunk)
	for _, s := range spans {
		c.Assert(s.start%chunk, qt.Equals, 0)
		c.Assert(s.start < s.end, qt.IsTrue)
		c.Assert(s.end <= n, qt.IsTrue)
	}
}

func TestScopeEmpty(t *testing.T) {
	c := qt.New(t)

	called := false
	New().Scope(0, func(start, end int) { called = true })
	c.Assert(called, qt.IsFalse)
}

func TestChunkSize(t *testing.T) {
	c := qt.New(t)

	w := NewWithCPUs(4)
	c.Assert(w.ChunkSize(3), qt.Equals, 1)
	c.Assert(w.ChunkSize(4), qt.Equals, 1)
	c.Assert(w.ChunkSize(100), qt.Equals, 25)
	c.Assert(w.ChunkSize(103), qt.Equals, 25)
}

func TestNewWithCPUsClampsToOne(t *testing.T) {
	c := qt.New(t)

	c.Assert(NewWithCPUs(0).CPUs(), qt.Equals, 1)
	c.Assert(NewWithCPUs(-5).CPUs(), qt.Equals, 1)
	c.Assert(NewWithCPUs(8).CPUs(), qt.Equals, 8)
	c.Assert(New().CPUs() >= 1, qt.IsTrue)
}
