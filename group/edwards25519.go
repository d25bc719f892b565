package group

import (
	"encoding/hex"
	"math/big"

	"filippo.io/edwards25519"
	"github.com/pkg/errors"

	"github.com/takakv/algebra/algebra"
)

const KindEdwards25519 algebra.Kind = "edwards25519"

type edPoint struct {
	val *edwards25519.Point
}

func (edPoint) Kind() algebra.Kind {
	return KindEdwards25519
}

// edCurve is the full group of edwards25519 points, of order 8L. The base
// point generates the subgroup of prime order L.
type edCurve struct {
	l         *big.Int
	fullOrder *big.Int
}

func (c *edCurve) elem(a algebra.Value) *edwards25519.Point {
	return a.(edPoint).val
}

func (c *edCurve) identity() algebra.Value {
	return edPoint{edwards25519.NewIdentityPoint()}
}

func (c *edCurve) generator() algebra.Value {
	return edPoint{edwards25519.NewGeneratorPoint()}
}

func (c *edCurve) add(a, b algebra.Value) algebra.Value {
	return edPoint{new(edwards25519.Point).Add(c.elem(a), c.elem(b))}
}

func (c *edCurve) neg(a algebra.Value) algebra.Value {
	return edPoint{new(edwards25519.Point).Negate(c.elem(a))}
}

// scale uses double-and-add on s mod 8L, since a decoded point may have a
// torsion component that scalars mod L do not preserve.
func (c *edCurve) scale(a algebra.Value, s *big.Int) algebra.Value {
	k := reduce(s, c.fullOrder)
	x := c.elem(a)
	z := edwards25519.NewIdentityPoint()
	for i := k.BitLen() - 1; i >= 0; i-- {
		z.Add(z, z)
		if k.Bit(i) == 1 {
			z.Add(z, x)
		}
	}
	return edPoint{z}
}

func (c *edCurve) baseScale(s *big.Int) algebra.Value {
	k := reduce(s, c.l)
	// Scalars are 32 little-endian bytes.
	b := make([]byte, 32)
	k.FillBytes(b)
	for i, j := 0, len(b)-1; i < j; i, j = i+1, j-1 {
		b[i], b[j] = b[j], b[i]
	}
	sc, err := edwards25519.NewScalar().SetCanonicalBytes(b)
	if err != nil {
		return c.identity()
	}
	return edPoint{new(edwards25519.Point).ScalarBaseMult(sc)}
}

func (c *edCurve) equal(a, b algebra.Value) bool {
	return c.elem(a).Equal(c.elem(b)) == 1
}

// encode writes the 32-byte compressed encoding in hex.
func (c *edCurve) encode(a algebra.Value) string {
	return hex.EncodeToString(c.elem(a).Bytes())
}

func (c *edCurve) decode(s string) (algebra.Value, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrap(err, "point encoding")
	}
	p, err := new(edwards25519.Point).SetBytes(b)
	if err != nil {
		return nil, errors.Wrap(err, "point encoding")
	}
	return edPoint{p}, nil
}

// Ed25519 returns the group of edwards25519 points. N is the order L of
// the base point; the full group has order 8L.
func Ed25519() Group {
	p, _ := new(big.Int).SetString("7fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffed", 16)
	l, _ := new(big.Int).SetString("1000000000000000000000000000000014def9dea2f79cd65812631a5cf5d3ed", 16)

	c := &edCurve{l: l, fullOrder: new(big.Int).Lsh(l, 3)}
	return newCyclic(c, KindEdwards25519, "edwards25519", p, l)
}
