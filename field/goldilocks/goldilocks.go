// Package goldilocks adapts the 64-bit Goldilocks field (p = 2^64 - 2^32 + 1)
// from gnark-crypto to the field contracts of this module. Its high
// two-adicity and machine-word size make it the usual choice for FRI-based
// provers.
package goldilocks

import (
	"fmt"
	"math/big"

	gl "github.com/consensys/gnark-crypto/field/goldilocks"

	"github.com/vocdoni/zkfri/field"
)

// twoAdicity is the largest s such that 2^s divides p-1; for Goldilocks
// p-1 = 2^32 * (2^32 - 1).
const twoAdicity = 32

// rootOfUnity generates the two-adic subgroup of order 2^32. It equals
// 7^((p-1)/2^32) mod p.
var rootOfUnity gl.Element

func init() {
	rootOfUnity.SetUint64(1753635133440165772)
}

// Element is a Goldilocks field element with value semantics.
type Element struct {
	inner gl.Element
}

var _ field.Element[Element] = Element{}

// Add returns x+y.
func (x Element) Add(y Element) Element {
	var z gl.Element
	z.Add(&x.inner, &y.inner)
	return Element{z}
}

// Mul returns x*y.
func (x Element) Mul(y Element) Element {
	var z gl.Element
	z.Mul(&x.inner, &y.inner)
	return Element{z}
}

// Exp returns x^k.
func (x Element) Exp(k uint64) Element {
	var z gl.Element
	z.Exp(x.inner, new(big.Int).SetUint64(k))
	return Element{z}
}

// Inverse returns x⁻¹, or field.ErrInverseZero for the additive identity.
func (x Element) Inverse() (Element, error) {
	if x.inner.IsZero() {
		return Element{}, fmt.Errorf("goldilocks: %w", field.ErrInverseZero)
	}
	var z gl.Element
	z.Inverse(&x.inner)
	return Element{z}, nil
}

// IsZero reports whether x is the additive identity.
func (x Element) IsZero() bool {
	return x.inner.IsZero()
}

// Equal reports whether x == y.
func (x Element) Equal(y Element) bool {
	return x.inner.Equal(&y.inner)
}

func (x Element) String() string {
	return x.inner.String()
}

// Field is the Goldilocks field descriptor.
type Field struct{}

var _ field.Field[Element] = Field{}

// Zero returns the additive identity.
func (Field) Zero() Element {
	return Element{}
}

// One returns the multiplicative identity.
func (Field) One() Element {
	var z gl.Element
	z.SetOne()
	return Element{z}
}

// FromUint64 returns the element v mod p.
func (Field) FromUint64(v uint64) Element {
	var z gl.Element
	z.SetUint64(v)
	return Element{z}
}

// MultiplicativeGenerator returns 7, a generator of the full multiplicative
// group.
func (Field) MultiplicativeGenerator() Element {
	var z gl.Element
	z.SetUint64(7)
	return Element{z}
}

// TwoAdicity returns 32.
func (Field) TwoAdicity() uint64 {
	return twoAdicity
}

// RootOfUnity returns a primitive 2^logSize-th root of unity.
func (Field) RootOfUnity(logSize uint64) (Element, error) {
	if logSize > twoAdicity {
		return Element{}, fmt.Errorf("goldilocks: no subgroup of order 2^%d (two-adicity is %d)", logSize, twoAdicity)
	}
	expo := new(big.Int).Lsh(big.NewInt(1), uint(twoAdicity-logSize))
	var z gl.Element
	z.Exp(rootOfUnity, expo)
	return Element{z}, nil
}
