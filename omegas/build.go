package omegas

import (
	"fmt"
	"time"

	"github.com/vocdoni/zkfri/domain"
	"github.com/vocdoni/zkfri/field"
	"github.com/vocdoni/zkfri/log"
	"github.com/vocdoni/zkfri/workers"
)

// Length selects how many powers a table holds relative to the domain size.
type Length uint8

const (
	// Full length: one power per domain element.
	Full Length = iota
	// Half length: N/2 powers, the radix-2 butterfly symmetry needs no
	// more.
	Half
)

// Options parameterizes Build. The zero value builds the half-length
// natural-order table of inverse generator powers.
type Options[E any] struct {
	// Forward selects the domain generator as the base; otherwise the
	// generator's inverse is used.
	Forward bool
	// BitReversed permutes the finished table into bit-reversed order.
	BitReversed bool
	// CosetShift, when set, is multiplied once into each chunk's starting
	// power before the sequential advance, so slot i holds
	// CosetShift * base^i in natural order.
	CosetShift *E
	// Length selects Full (N) or Half (N/2) powers.
	Length Length
}

// Build constructs one power table for the domain according to opts. The
// table is immutable once returned and safe to share across concurrent
// transforms.
func Build[E field.Element[E]](d *domain.Domain[E], opts Options[E], w *workers.Worker) *Table[E] {
	base := d.GeneratorInv
	if opts.Forward {
		base = d.Generator
	}
	length := d.Size
	if opts.Length == Half {
		length = d.Size / 2
	}
	start := time.Now()
	powers := powersShifted(base, opts.CosetShift, int(length), w)
	layout := Natural
	if opts.BitReversed {
		BitReversePermute(powers)
		layout = BitReversed
	}
	log.Debugw("power table built",
		"domainSize", d.Size,
		"length", length,
		"layout", layout.String(),
		"took", time.Since(start).String())
	return &Table[E]{powers: powers, layout: layout, domainSize: d.Size}
}

// Precomputation carries the forward, coset-scaled and inverse power tables
// for one evaluation domain. It serves transforms that need the natural
// order on both directions plus the coset-shifted copy FRI queries against.
type Precomputation[E field.Element[E]] struct {
	// Forward holds g^i for i in [0, N) in natural order.
	Forward *Table[E]
	// Coset holds the forward powers scaled elementwise by the field's
	// multiplicative generator.
	Coset *Table[E]
	// Inverse holds g^-i for i in [0, N/2) in natural order.
	Inverse *Table[E]
}

// NewPrecomputation builds the forward, coset and inverse tables for the
// domain. The coset copy is produced by scaling the finished forward table,
// not by shifting the chunk starting powers, preserving the evaluation order
// consumers index against.
func NewPrecomputation[E field.Element[E]](f field.Field[E], d *domain.Domain[E], w *workers.Worker) *Precomputation[E] {
	forward := Build(d, Options[E]{Forward: true}, w)
	inverse := Build(d, Options[E]{Length: Half}, w)

	coset := make([]E, forward.Len())
	copy(coset, forward.powers)
	scale(coset, f.MultiplicativeGenerator(), w)

	return &Precomputation[E]{
		Forward: forward,
		Coset:   &Table[E]{powers: coset, layout: Natural, domainSize: d.Size},
		Inverse: inverse,
	}
}

// InversePowers returns the natural-order inverse powers. Callers must not
// modify the slice.
func (p *Precomputation[E]) InversePowers() []E {
	return p.Inverse.Powers()
}

// ElementAt returns the inverse power at index i.
func (p *Precomputation[E]) ElementAt(i int) E {
	return p.Inverse.At(i)
}

// DomainSize returns the size of the domain the tables were built for.
func (p *Precomputation[E]) DomainSize() uint64 {
	return p.Forward.DomainSize()
}

// NewInverse builds the half-length table of inverse generator powers in
// natural order.
func NewInverse[E field.Element[E]](d *domain.Domain[E], w *workers.Worker) *Table[E] {
	return Build(d, Options[E]{Length: Half}, w)
}

// NewInverseBitReversed builds the half-length table of inverse generator
// powers in bit-reversed order, for decimation-in-time butterfly networks.
func NewInverseBitReversed[E field.Element[E]](d *domain.Domain[E], w *workers.Worker) *Table[E] {
	return Build(d, Options[E]{Length: Half, BitReversed: true}, w)
}

// NewCosetInverseBitReversed builds the half-length bit-reversed table of
// inverse generator powers shifted by the inverse of the field's
// multiplicative generator, for transforms evaluated over the shifted coset
// rather than the domain itself. It fails only if the multiplicative
// generator has no inverse, and never returns a partial table.
func NewCosetInverseBitReversed[E field.Element[E]](f field.Field[E], d *domain.Domain[E], w *workers.Worker) (*Table[E], error) {
	shift, err := f.MultiplicativeGenerator().Inverse()
	if err != nil {
		return nil, fmt.Errorf("coset shift: %w", err)
	}
	return Build(d, Options[E]{Length: Half, BitReversed: true, CosetShift: &shift}, w), nil
}
