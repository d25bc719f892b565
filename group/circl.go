package group

import (
	"encoding/hex"
	"math/big"

	"github.com/cloudflare/circl/group"
	"github.com/pkg/errors"

	"github.com/takakv/algebra/algebra"
)

const (
	KindP256         algebra.Kind = "p256"
	KindP384         algebra.Kind = "p384"
	KindRistretto255 algebra.Kind = "ristretto255"
)

type circlPoint struct {
	kind algebra.Kind
	val  group.Element
}

func (p circlPoint) Kind() algebra.Kind {
	return p.kind
}

// circlCurve runs the group arithmetic of a circl group.
type circlCurve struct {
	g    group.Group
	kind algebra.Kind
	n    *big.Int
}

func (c *circlCurve) point(v group.Element) algebra.Value {
	return circlPoint{kind: c.kind, val: v}
}

func (c *circlCurve) elem(a algebra.Value) group.Element {
	return a.(circlPoint).val
}

func (c *circlCurve) scalar(s *big.Int) group.Scalar {
	return c.g.NewScalar().SetBigInt(reduce(s, c.n))
}

func (c *circlCurve) identity() algebra.Value {
	return c.point(c.g.Identity())
}

func (c *circlCurve) generator() algebra.Value {
	return c.point(c.g.Generator())
}

func (c *circlCurve) add(a, b algebra.Value) algebra.Value {
	return c.point(c.g.NewElement().Add(c.elem(a), c.elem(b)))
}

func (c *circlCurve) neg(a algebra.Value) algebra.Value {
	return c.point(c.g.NewElement().Neg(c.elem(a)))
}

func (c *circlCurve) scale(a algebra.Value, s *big.Int) algebra.Value {
	return c.point(c.g.NewElement().Mul(c.elem(a), c.scalar(s)))
}

func (c *circlCurve) baseScale(s *big.Int) algebra.Value {
	return c.point(c.g.NewElement().MulGen(c.scalar(s)))
}

func (c *circlCurve) equal(a, b algebra.Value) bool {
	return c.elem(a).IsEqual(c.elem(b))
}

// encode writes the uncompressed binary encoding in hex.
func (c *circlCurve) encode(a algebra.Value) string {
	b, err := c.elem(a).MarshalBinary()
	if err != nil {
		return ""
	}
	return hex.EncodeToString(b)
}

func (c *circlCurve) decode(s string) (algebra.Value, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrap(err, "point encoding")
	}
	e := c.g.NewElement()
	if err = e.UnmarshalBinary(b); err != nil {
		return nil, errors.Wrap(err, "point encoding")
	}
	return c.point(e), nil
}

func newCirclGroup(g group.Group, kind algebra.Kind, name, p, n string) Group {
	fieldOrder, _ := new(big.Int).SetString(p, 16)
	curveOrder, _ := new(big.Int).SetString(n, 16)
	return newCyclic(&circlCurve{g: g, kind: kind, n: curveOrder}, kind, name, fieldOrder, curveOrder)
}

// P256 returns the NIST P-256 curve group.
func P256() Group {
	return newCirclGroup(group.P256, KindP256, "P-256",
		"ffffffff00000001000000000000000000000000ffffffffffffffffffffffff",
		"ffffffff00000000ffffffffffffffffbce6faada7179e84f3b9cac2fc632551")
}

// P384 returns the NIST P-384 curve group.
func P384() Group {
	return newCirclGroup(group.P384, KindP384, "P-384",
		"fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffeffffffff0000000000000000ffffffff",
		"ffffffffffffffffffffffffffffffffffffffffffffffffc7634d81f4372ddf581a0db248b0a77aecec196accc52973")
}

// Ristretto255 returns the prime-order group ristretto255.
func Ristretto255() Group {
	return newCirclGroup(group.Ristretto255, KindRistretto255, "ristretto255",
		"7fffffffffffffffffffffffffffffffffffffffffffffffffffffffffffffed",
		"1000000000000000000000000000000014def9dea2f79cd65812631a5cf5d3ed")
}
