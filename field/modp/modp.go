// Package modp implements a prime field with a runtime-chosen modulus. The
// gnark-crypto adapters fix their modulus at compile time, so scenarios that
// need a tiny explicit field (integers mod 17 and friends) use this package
// instead. It is meant for tests and tooling, not for proving workloads.
package modp

import (
	"fmt"
	"math/bits"
	"strconv"

	"github.com/vocdoni/zkfri/field"
)

// Element is a residue mod p. Elements carry their modulus so that the
// value-semantics field contracts hold without a shared context.
type Element struct {
	v uint64
	p uint64
}

var _ field.Element[Element] = Element{}

// Value returns the canonical residue in [0, p).
func (x Element) Value() uint64 {
	return x.v
}

// Add returns x+y.
func (x Element) Add(y Element) Element {
	s := x.v + y.v // no overflow: p < 2^63
	if s >= x.p {
		s -= x.p
	}
	return Element{v: s, p: x.p}
}

// Mul returns x*y.
func (x Element) Mul(y Element) Element {
	hi, lo := bits.Mul64(x.v, y.v)
	_, rem := bits.Div64(hi, lo, x.p)
	return Element{v: rem, p: x.p}
}

// Exp returns x^k by square and multiply. x^0 = 1 for any x.
func (x Element) Exp(k uint64) Element {
	r := Element{v: 1 % x.p, p: x.p}
	b := x
	for ; k > 0; k >>= 1 {
		if k&1 == 1 {
			r = r.Mul(b)
		}
		b = b.Mul(b)
	}
	return r
}

// Inverse returns x⁻¹ via Fermat's little theorem, or field.ErrInverseZero
// for the additive identity.
func (x Element) Inverse() (Element, error) {
	if x.v == 0 {
		return Element{}, fmt.Errorf("mod %d: %w", x.p, field.ErrInverseZero)
	}
	return x.Exp(x.p - 2), nil
}

// IsZero reports whether x is the additive identity.
func (x Element) IsZero() bool {
	return x.v == 0
}

// Equal reports whether x == y.
func (x Element) Equal(y Element) bool {
	return x.v == y.v
}

func (x Element) String() string {
	return strconv.FormatUint(x.v, 10)
}

// Field describes the integers mod p together with the two-adic structure
// the domain package needs.
type Field struct {
	p          uint64
	generator  uint64
	twoAdicity uint64
	root       uint64
}

var _ field.Field[Element] = &Field{}

// New builds the field of integers mod p. generator must generate the full
// multiplicative group and root must have exact order 2^twoAdicity; both
// properties of root are verified, primality of p is the caller's
// responsibility.
func New(p, generator, twoAdicity, root uint64) (*Field, error) {
	if p < 3 || p >= 1<<63 {
		return nil, fmt.Errorf("modulus %d out of range", p)
	}
	if generator%p == 0 || root%p == 0 {
		return nil, fmt.Errorf("generator and root must be nonzero mod %d", p)
	}
	if twoAdicity == 0 || twoAdicity > 62 || (p-1)%(1<<twoAdicity) != 0 {
		return nil, fmt.Errorf("2^%d does not divide %d-1", twoAdicity, p)
	}
	f := &Field{p: p, generator: generator % p, twoAdicity: twoAdicity, root: root % p}
	r := f.FromUint64(root)
	if !r.Exp(1 << twoAdicity).Equal(f.One()) {
		return nil, fmt.Errorf("root %d has order not dividing 2^%d", root, twoAdicity)
	}
	if r.Exp(1 << (twoAdicity - 1)).Equal(f.One()) {
		return nil, fmt.Errorf("root %d has order smaller than 2^%d", root, twoAdicity)
	}
	return f, nil
}

// Zero returns the additive identity.
func (f *Field) Zero() Element {
	return Element{v: 0, p: f.p}
}

// One returns the multiplicative identity.
func (f *Field) One() Element {
	return Element{v: 1, p: f.p}
}

// FromUint64 returns the element v mod p.
func (f *Field) FromUint64(v uint64) Element {
	return Element{v: v % f.p, p: f.p}
}

// MultiplicativeGenerator returns the configured generator of the full
// multiplicative group.
func (f *Field) MultiplicativeGenerator() Element {
	return Element{v: f.generator, p: f.p}
}

// TwoAdicity returns the configured two-adicity.
func (f *Field) TwoAdicity() uint64 {
	return f.twoAdicity
}

// RootOfUnity returns a primitive 2^logSize-th root of unity.
func (f *Field) RootOfUnity(logSize uint64) (Element, error) {
	if logSize > f.twoAdicity {
		return Element{}, fmt.Errorf("mod %d: no subgroup of order 2^%d (two-adicity is %d)", f.p, logSize, f.twoAdicity)
	}
	r := Element{v: f.root, p: f.p}
	return r.Exp(1 << (f.twoAdicity - logSize)), nil
}
