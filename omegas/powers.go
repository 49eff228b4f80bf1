package omegas

import (
	"github.com/vocdoni/zkfri/field"
	"github.com/vocdoni/zkfri/workers"
)

// Powers fills a table with consecutive powers of base: result[i] = base^i
// for i in [0, length). Each chunk of the fork-join scope computes its
// starting power base^start with one fast exponentiation and then advances
// by a single multiplication per slot, cutting the critical path from
// O(length) sequential multiplications to O(length/chunks + log length).
// The result is identical for any worker count. length 0 yields an empty
// table and length 1 yields [1]; a zero base is well defined (0^0 = 1) and
// not rejected here.
func Powers[E field.Element[E]](base E, length int, w *workers.Worker) []E {
	return powersShifted(base, nil, length, w)
}

// powersShifted is Powers with an optional shift multiplied once into each
// chunk's starting power before the sequential advance, producing
// result[i] = shift * base^i. The shift is applied before the advance, not
// after the fill, so the per-chunk evaluation order is fixed.
func powersShifted[E field.Element[E]](base E, shift *E, length int, w *workers.Worker) []E {
	table := make([]E, length)
	w.Scope(length, func(start, end int) {
		u := base.Exp(uint64(start))
		if shift != nil {
			u = u.Mul(*shift)
		}
		for i := start; i < end; i++ {
			table[i] = u
			u = u.Mul(base)
		}
	})
	return table
}

// scale multiplies every element of table by c in parallel.
func scale[E field.Element[E]](table []E, c E, w *workers.Worker) {
	w.Scope(len(table), func(start, end int) {
		for i := start; i < end; i++ {
			table[i] = table[i].Mul(c)
		}
	})
}
