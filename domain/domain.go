// Package domain constructs power-of-two evaluation domains: multiplicative
// subgroups of a prime field used as the evaluation grid for NTT-based
// polynomial transforms.
package domain

import (
	"fmt"
	"math/bits"

	"github.com/vocdoni/zkfri/field"
)

var (
	// ErrZeroSize is returned when a domain of size zero is requested.
	ErrZeroSize = fmt.Errorf("domain size must be positive")
	// ErrSizeNotPowerOfTwo is returned when the requested size is not an
	// exact power of two. Sizes are never rounded up.
	ErrSizeNotPowerOfTwo = fmt.Errorf("domain size is not a power of two")
)

// Domain is a multiplicative subgroup of power-of-two order. Generator is a
// primitive Size-th root of unity, so Generator^Size = 1 and no smaller
// positive power is.
type Domain[E field.Element[E]] struct {
	Size         uint64
	LogSize      uint64
	Generator    E
	GeneratorInv E
	// SizeInv is 1/Size, the scaling constant of the inverse transform.
	SizeInv E
}

// New builds the evaluation domain of exactly the requested size. It fails
// for size zero, for sizes that are not a power of two, and for sizes larger
// than the field's two-adic subgroup. Failure never yields a partial domain.
func New[E field.Element[E]](f field.Field[E], size uint64) (*Domain[E], error) {
	if size == 0 {
		return nil, ErrZeroSize
	}
	if size&(size-1) != 0 {
		return nil, fmt.Errorf("%w: %d", ErrSizeNotPowerOfTwo, size)
	}
	logSize := uint64(bits.TrailingZeros64(size))
	gen, err := f.RootOfUnity(logSize)
	if err != nil {
		return nil, fmt.Errorf("domain of size %d: %w", size, err)
	}
	genInv, err := gen.Inverse()
	if err != nil {
		return nil, fmt.Errorf("domain of size %d: generator: %w", size, err)
	}
	// size mod p is never zero: 2^logSize divides p-1, so size < p.
	sizeInv, err := f.FromUint64(size).Inverse()
	if err != nil {
		return nil, fmt.Errorf("domain of size %d: cardinality: %w", size, err)
	}
	return &Domain[E]{
		Size:         size,
		LogSize:      logSize,
		Generator:    gen,
		GeneratorInv: genInv,
		SizeInv:      sizeInv,
	}, nil
}
