// Package omegas precomputes power tables of roots of unity for NTT-based
// polynomial evaluation and interpolation inside FRI provers and verifiers.
// Repeated transforms over the same domain would recompute the same modular
// exponentiations; building the table once amortizes that cost, and the
// built tables are immutable so any number of concurrent transforms can
// share them without locking.
package omegas

import (
	"github.com/vocdoni/zkfri/field"
)

// Layout tags the storage order of a power table.
type Layout uint8

const (
	// Natural order: slot i holds base^i.
	Natural Layout = iota
	// BitReversed order: slot k holds the value natural order places at
	// index ReverseBits(k, log2(len)), matching the in-place access
	// pattern of decimation-in-time butterfly networks.
	BitReversed
)

func (l Layout) String() string {
	switch l {
	case Natural:
		return "natural"
	case BitReversed:
		return "bit-reversed"
	default:
		return "unknown"
	}
}

// View is the read-only contract transform implementations consume. Every
// table satisfies it; callers pick the table whose Layout matches the access
// pattern of the transform they run.
type View[E any] interface {
	// At returns the power stored at slot i.
	At(i int) E
	// Powers returns the whole table. Callers must not modify it.
	Powers() []E
	// Layout reports the storage order of the table.
	Layout() Layout
	// DomainSize returns the size of the domain the table was built for,
	// which exceeds the table length for half-length tables.
	DomainSize() uint64
}

// Table is an immutable sequence of powers of a fixed base element.
type Table[E field.Element[E]] struct {
	powers     []E
	layout     Layout
	domainSize uint64
}

// At returns the power stored at slot i.
func (t *Table[E]) At(i int) E {
	return t.powers[i]
}

// Powers returns the backing slice. Callers must not modify it.
func (t *Table[E]) Powers() []E {
	return t.powers
}

// Len returns the number of powers in the table.
func (t *Table[E]) Len() int {
	return len(t.powers)
}

// Layout reports the storage order of the table.
func (t *Table[E]) Layout() Layout {
	return t.layout
}

// DomainSize returns the size of the domain the table was built for.
func (t *Table[E]) DomainSize() uint64 {
	return t.domainSize
}
