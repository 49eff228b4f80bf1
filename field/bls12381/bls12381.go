// Package bls12381 adapts the BLS12-381 scalar field from gnark-crypto to
// the field contracts of this module.
package bls12381

import (
	"fmt"
	"math/big"

	fr "github.com/consensys/gnark-crypto/ecc/bls12-381/fr"

	"github.com/vocdoni/zkfri/field"
)

// twoAdicity is the largest s such that 2^s divides r-1 for the BLS12-381
// scalar field order r.
const twoAdicity = 32

// rootOfUnity generates the two-adic subgroup of order 2^32.
var rootOfUnity fr.Element

func init() {
	if _, err := rootOfUnity.SetString("10238227357739495823651030575849232062558860180284477541189508159991286009131"); err != nil {
		panic(fmt.Sprintf("bls12-381: invalid root of unity constant: %v", err))
	}
}

// Element is a BLS12-381 scalar with value semantics.
type Element struct {
	inner fr.Element
}

var _ field.Element[Element] = Element{}

// Add returns x+y.
func (x Element) Add(y Element) Element {
	var z fr.Element
	z.Add(&x.inner, &y.inner)
	return Element{z}
}

// Mul returns x*y.
func (x Element) Mul(y Element) Element {
	var z fr.Element
	z.Mul(&x.inner, &y.inner)
	return Element{z}
}

// Exp returns x^k.
func (x Element) Exp(k uint64) Element {
	var z fr.Element
	z.Exp(x.inner, new(big.Int).SetUint64(k))
	return Element{z}
}

// Inverse returns x⁻¹, or field.ErrInverseZero for the additive identity.
func (x Element) Inverse() (Element, error) {
	if x.inner.IsZero() {
		return Element{}, fmt.Errorf("bls12-381: %w", field.ErrInverseZero)
	}
	var z fr.Element
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

// Field is the BLS12-381 scalar field descriptor.
type Field struct{}

var _ field.Field[Element] = Field{}

// Zero returns the additive identity.
func (Field) Zero() Element {
	return Element{}
}

// One returns the multiplicative identity.
func (Field) One() Element {
	return Element{fr.One()}
}

// FromUint64 returns the element v mod r.
func (Field) FromUint64(v uint64) Element {
	var z fr.Element
	z.SetUint64(v)
	return Element{z}
}

// MultiplicativeGenerator returns 7, the smallest generator of the full
// multiplicative group of the scalar field.
func (Field) MultiplicativeGenerator() Element {
	var z fr.Element
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
		return Element{}, fmt.Errorf("bls12-381: no subgroup of order 2^%d (two-adicity is %d)", logSize, twoAdicity)
	}
	expo := new(big.Int).Lsh(big.NewInt(1), uint(twoAdicity-logSize))
	var z fr.Element
	z.Exp(rootOfUnity, expo)
	return Element{z}, nil
}
