package domain

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/vocdoni/zkfri/field/bls12381"
	"github.com/vocdoni/zkfri/field/modp"
)

// mod17 is the integers mod 17 with generator 3 and 2-adicity 4 (16 = 2^4);
// 3 is a primitive root mod 17, so it also generates the order-16 subgroup.
func mod17(t *testing.T) *modp.Field {
	f, err := modp.New(17, 3, 4, 3)
	qt.Assert(t, err, qt.IsNil)
	return f
}

func TestNonPowerOfTwoSizeFails(t *testing.T) {
	c := qt.New(t)
	f := mod17(t)

	for _, size := range []uint64{3, 5, 6, 12, 100} {
		d, err := New[modp.Element](f, size)
		c.Assert(err, qt.ErrorIs, ErrSizeNotPowerOfTwo, qt.Commentf("size=%d", size))
		c.Assert(d, qt.IsNil)
	}

	d, err := New[modp.Element](f, 0)
	c.Assert(err, qt.ErrorIs, ErrZeroSize)
	c.Assert(d, qt.IsNil)
}

func TestSizeBeyondTwoAdicityFails(t *testing.T) {
	c := qt.New(t)
	f := mod17(t)

	// 2-adicity of mod 17 is 4, so 32 has no subgroup.
	d, err := New[modp.Element](f, 32)
	c.Assert(err, qt.IsNotNil)
	c.Assert(d, qt.IsNil)
}

func TestGeneratorOrder(t *testing.T) {
	c := qt.New(t)
	f := mod17(t)

	d, err := New[modp.Element](f, 8)
	c.Assert(err, qt.IsNil)
	c.Assert(d.Size, qt.Equals, uint64(8))
	c.Assert(d.LogSize, qt.Equals, uint64(3))

	// The generator has exact order 8.
	c.Assert(d.Generator.Exp(8).Equal(f.One()), qt.IsTrue)
	c.Assert(d.Generator.Exp(4).Equal(f.One()), qt.IsFalse)

	c.Assert(d.Generator.Mul(d.GeneratorInv).Equal(f.One()), qt.IsTrue)
	c.Assert(d.SizeInv.Mul(f.FromUint64(8)).Equal(f.One()), qt.IsTrue)
}

func TestTrivialDomain(t *testing.T) {
	c := qt.New(t)
	f := mod17(t)

	d, err := New[modp.Element](f, 1)
	c.Assert(err, qt.IsNil)
	c.Assert(d.Generator.Equal(f.One()), qt.IsTrue)
	c.Assert(d.GeneratorInv.Equal(f.One()), qt.IsTrue)
	c.Assert(d.SizeInv.Equal(f.One()), qt.IsTrue)
}

func TestBLS12381Domain(t *testing.T) {
	c := qt.New(t)
	f := bls12381.Field{}

	d, err := New[bls12381.Element](f, 4096)
	c.Assert(err, qt.IsNil)
	c.Assert(d.Generator.Exp(4096).Equal(f.One()), qt.IsTrue)
	c.Assert(d.Generator.Exp(2048).Equal(f.One()), qt.IsFalse)
	c.Assert(d.Generator.Mul(d.GeneratorInv).Equal(f.One()), qt.IsTrue)
}
