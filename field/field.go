// Package field defines the prime-field contracts consumed by the domain and
// omegas packages. Concrete fields live in subpackages: adapters over
// gnark-crypto scalar fields (bls12381, bn254, goldilocks) and a
// runtime-configurable small prime field (modp) for deterministic tests.
package field

import "fmt"

// ErrInverseZero is returned when inverting the additive identity.
var ErrInverseZero = fmt.Errorf("inverse of the additive identity does not exist")

// Element is a prime-field scalar with value semantics: operations return a
// new element and never mutate the receiver.
type Element[E any] interface {
	// Add returns x+y.
	Add(y E) E
	// Mul returns x*y.
	Mul(y E) E
	// Exp returns x^k using fast exponentiation. x^0 = 1 for any x,
	// including the additive identity.
	Exp(k uint64) E
	// Inverse returns x⁻¹, or ErrInverseZero when x is the additive
	// identity.
	Inverse() (E, error)
	// IsZero reports whether x is the additive identity.
	IsZero() bool
	// Equal reports whether x == y.
	Equal(y E) bool
	fmt.Stringer
}

// Field describes a prime field with a two-adic multiplicative subgroup. It
// provides the constants and the root-of-unity lookup that domain
// construction needs.
type Field[E Element[E]] interface {
	// Zero returns the additive identity.
	Zero() E
	// One returns the multiplicative identity.
	One() E
	// FromUint64 returns the element v mod p.
	FromUint64(v uint64) E
	// MultiplicativeGenerator returns the field-fixed generator of the
	// full multiplicative group, used as the coset shift.
	MultiplicativeGenerator() E
	// TwoAdicity returns s where 2^s is the order of the largest two-adic
	// subgroup of the multiplicative group.
	TwoAdicity() uint64
	// RootOfUnity returns a primitive 2^logSize-th root of unity, or an
	// error when logSize exceeds TwoAdicity.
	RootOfUnity(logSize uint64) (E, error)
}
