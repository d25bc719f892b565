package group

import (
	"encoding/hex"
	"math/big"

	"github.com/ing-bank/zkrp/crypto/p256"
	"github.com/ing-bank/zkrp/util/bn"
	"github.com/pkg/errors"

	"github.com/takakv/algebra/algebra"
)

const KindSecP256k1 algebra.Kind = "secp256k1"

const p256k1ByteLen = 32

// p256k1Point is an affine point. The point at infinity has nil or zero
// coordinates.
type p256k1Point struct {
	val *p256.P256
}

func (p256k1Point) Kind() algebra.Kind {
	return KindSecP256k1
}

type p256k1Curve struct {
	fieldOrder *big.Int
	curveOrder *big.Int
}

func (c *p256k1Curve) elem(a algebra.Value) *p256.P256 {
	return a.(p256k1Point).val
}

func isInfinity(p *p256.P256) bool {
	if p.X == nil && p.Y == nil {
		return true
	}
	return p.X.Sign() == 0 && p.Y.Sign() == 0
}

func (c *p256k1Curve) identity() algebra.Value {
	return p256k1Point{new(p256.P256).SetInfinity()}
}

func (c *p256k1Curve) generator() algebra.Value {
	return p256k1Point{new(p256.P256).ScalarBaseMult(big.NewInt(1))}
}

func (c *p256k1Curve) add(a, b algebra.Value) algebra.Value {
	ca, cb := c.elem(a), c.elem(b)
	switch {
	case isInfinity(ca):
		return b
	case isInfinity(cb):
		return a
	case ca.X.Cmp(cb.X) == 0 && ca.Y.Cmp(cb.Y) != 0:
		return c.identity()
	}
	return p256k1Point{new(p256.P256).Multiply(ca, cb)}
}

// neg maps (x, y) to (x, p - y).
func (c *p256k1Curve) neg(a algebra.Value) algebra.Value {
	ca := c.elem(a)
	if isInfinity(ca) {
		return a
	}
	z := new(p256.P256).SetInfinity()
	z.X = new(big.Int).Set(ca.X)
	z.Y = bn.Mod(new(big.Int).Neg(ca.Y), c.fieldOrder)
	return p256k1Point{z}
}

func (c *p256k1Curve) scale(a algebra.Value, s *big.Int) algebra.Value {
	k := reduce(s, c.curveOrder)
	if k.Sign() == 0 || isInfinity(c.elem(a)) {
		return c.identity()
	}
	return p256k1Point{new(p256.P256).ScalarMult(c.elem(a), k)}
}

func (c *p256k1Curve) baseScale(s *big.Int) algebra.Value {
	k := reduce(s, c.curveOrder)
	if k.Sign() == 0 {
		return c.identity()
	}
	return p256k1Point{new(p256.P256).ScalarBaseMult(k)}
}

func (c *p256k1Curve) equal(a, b algebra.Value) bool {
	ca, cb := c.elem(a), c.elem(b)
	if isInfinity(ca) || isInfinity(cb) {
		return isInfinity(ca) && isInfinity(cb)
	}
	return ca.X.Cmp(cb.X) == 0 && ca.Y.Cmp(cb.Y) == 0
}

// encode writes x || y as 64 bytes in hex, all zero for the point at
// infinity.
func (c *p256k1Curve) encode(a algebra.Value) string {
	b := make([]byte, 2*p256k1ByteLen)
	if ca := c.elem(a); !isInfinity(ca) {
		ca.X.FillBytes(b[:p256k1ByteLen])
		ca.Y.FillBytes(b[p256k1ByteLen:])
	}
	return hex.EncodeToString(b)
}

func (c *p256k1Curve) decode(s string) (algebra.Value, error) {
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, errors.Wrap(err, "point encoding")
	}
	if len(b) != 2*p256k1ByteLen {
		return nil, errors.Errorf("point encoding has %d bytes, want %d", len(b), 2*p256k1ByteLen)
	}
	z := new(p256.P256).SetInfinity()
	z.X = new(big.Int).SetBytes(b[:p256k1ByteLen])
	z.Y = new(big.Int).SetBytes(b[p256k1ByteLen:])
	if isInfinity(z) {
		return c.identity(), nil
	}
	if !c.onCurve(z.X, z.Y) {
		return nil, errors.New("point is not on the curve")
	}
	return p256k1Point{z}, nil
}

// onCurve checks y² = x³ + 7 over the base field.
func (c *p256k1Curve) onCurve(x, y *big.Int) bool {
	p := c.fieldOrder
	if x.Cmp(p) >= 0 || y.Cmp(p) >= 0 {
		return false
	}
	lhs := bn.Mod(bn.Multiply(y, y), p)
	rhs := bn.Multiply(bn.Multiply(x, x), x)
	rhs = bn.Mod(rhs.Add(rhs, big.NewInt(7)), p)
	return lhs.Cmp(rhs) == 0
}

// SecP256k1 returns the secp256k1 curve group.
func SecP256k1() Group {
	p, _ := new(big.Int).SetString("fffffffffffffffffffffffffffffffffffffffffffffffffffffffefffffc2f", 16)
	n, _ := new(big.Int).SetString("fffffffffffffffffffffffffffffffebaaedce6af48a03bbfd25e8cd0364141", 16)

	c := &p256k1Curve{fieldOrder: p, curveOrder: n}
	return newCyclic(c, KindSecP256k1, "secp256k1", p, n)
}
