package bn254

import (
	"testing"

	qt "github.com/frankban/quicktest"

	"github.com/vocdoni/zkfri/field"
)

func TestRootOfUnityOrders(t *testing.T) {
	c := qt.New(t)
	f := Field{}

	for _, logSize := range []uint64{0, 1, 4, 10, 28} {
		g, err := f.RootOfUnity(logSize)
		c.Assert(err, qt.IsNil)
		acc := g
		for range logSize {
			c.Assert(acc.Equal(f.One()), qt.IsFalse)
			acc = acc.Mul(acc)
		}
		c.Assert(acc.Equal(f.One()), qt.IsTrue, qt.Commentf("logSize=%d", logSize))
	}

	_, err := f.RootOfUnity(29)
	c.Assert(err, qt.IsNotNil)
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

func TestExpMatchesRepeatedMul(t *testing.T) {
	c := qt.New(t)
	f := Field{}

	x := f.FromUint64(987654321)
	acc := f.One()
	for k := uint64(0); k < 20; k++ {
		c.Assert(x.Exp(k).Equal(acc), qt.IsTrue, qt.Commentf("k=%d", k))
		acc = acc.Mul(x)
	}
}
