package bls12381

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/vocdoni/zkfri/field"
)

func TestRootOfUnityOrders(t *testing.T) {
	c := qt.New(t)
	f := Field{}

	for _, logSize := range []uint64{0, 1, 3, 12, 32} {
		g, err := f.RootOfUnity(logSize)
		c.Assert(err, qt.IsNil)
		// g has exact order 2^logSize: check by squaring up to the order.
		acc := g
		for range logSize {
			c.Assert(acc.Equal(f.One()), qt.IsFalse)
			acc = acc.Mul(acc)
		}
		c.Assert(acc.Equal(f.One()), qt.IsTrue, qt.Commentf("logSize=%d", logSize))
	}

	_, err := f.RootOfUnity(33)
	c.Assert(err, qt.IsNotNil)
}

func TestExpMatchesRepeatedMul(t *testing.T) {
	c := qt.New(t)
	f := Field{}

	x := f.FromUint64(123456789)
	acc := f.One()
	for k := uint64(0); k < 32; k++ {
		c.Assert(x.Exp(k).Equal(acc), qt.IsTrue, qt.Commentf("k=%d", k))
		acc = acc.Mul(x)
	}
}

func TestInverse(t *testing.T) {
	c := qt.New(t)
	f := Field{}

	g := f.MultiplicativeGenerator()
	inv, err := g.Inverse()
	c.Assert(err, qt.IsNil)
	c.Assert(g.Mul(inv).Equal(f.One()), qt.IsTrue)

	_, err = f.Zero().Inverse()
	c.Assert(err, qt.ErrorIs, field.ErrInverseZero)
}

func TestAdd(t *testing.T) {
	c := qt.New(t)
	f := Field{}

	c.Assert(f.FromUint64(40).Add(f.FromUint64(2)).Equal(f.FromUint64(42)), qt.IsTrue)
	c.Assert(f.Zero().Add(f.One()).Equal(f.One()), qt.IsTrue)
}
