package group

import (
	"math/big"
	"strings"

	"github.com/ing-bank/zkrp/util/bn"
	"github.com/pkg/errors"

	"github.com/takakv/algebra/algebra"
)

const KindModP algebra.Kind = "modp"

type modPElement struct {
	val *big.Int
}

func (modPElement) Kind() algebra.Kind {
	return KindModP
}

// modPCurve is the subgroup of quadratic residues modulo a safe prime
// p = 2q + 1, of prime order q.
type modPCurve struct {
	gen        *big.Int
	fieldOrder *big.Int
	groupOrder *big.Int
}

func (c *modPCurve) elem(a algebra.Value) *big.Int {
	return a.(modPElement).val
}

func (c *modPCurve) identity() algebra.Value {
	return modPElement{big.NewInt(1)}
}

func (c *modPCurve) generator() algebra.Value {
	return modPElement{new(big.Int).Set(c.gen)}
}

func (c *modPCurve) add(a, b algebra.Value) algebra.Value {
	return modPElement{bn.Mod(bn.Multiply(c.elem(a), c.elem(b)), c.fieldOrder)}
}

func (c *modPCurve) neg(a algebra.Value) algebra.Value {
	return modPElement{bn.ModInverse(c.elem(a), c.fieldOrder)}
}

func (c *modPCurve) scale(a algebra.Value, s *big.Int) algebra.Value {
	return modPElement{new(big.Int).Exp(c.elem(a), reduce(s, c.groupOrder), c.fieldOrder)}
}

func (c *modPCurve) baseScale(s *big.Int) algebra.Value {
	return c.scale(modPElement{c.gen}, s)
}

func (c *modPCurve) equal(a, b algebra.Value) bool {
	return c.elem(a).Cmp(c.elem(b)) == 0
}

func (c *modPCurve) encode(a algebra.Value) string {
	return c.elem(a).String()
}

// decode accepts a decimal residue in [1, p) whose order divides q.
func (c *modPCurve) decode(s string) (algebra.Value, error) {
	v, ok := new(big.Int).SetString(s, 10)
	if !ok {
		return nil, errors.Errorf("malformed residue %q", s)
	}
	if v.Sign() <= 0 || v.Cmp(c.fieldOrder) >= 0 {
		return nil, errors.New("residue out of range")
	}
	if new(big.Int).Exp(v, c.groupOrder, c.fieldOrder).Cmp(big.NewInt(1)) != 0 {
		return nil, errors.New("residue is not in the subgroup")
	}
	return modPElement{v}, nil
}

// NewModPGroup returns the quadratic residues modulo the safe prime with
// hex digits fieldOrder, generated by the hex residue generator. Whitespace
// in fieldOrder is ignored.
func NewModPGroup(name string, fieldOrder, generator string) (Group, error) {
	repr := strings.Join(strings.Fields(fieldOrder), "")

	ffOrder, ok := new(big.Int).SetString(repr, 16)
	if !ok {
		return nil, algebra.ErrInvalidArgument.New("invalid group definition")
	}

	gen, ok := new(big.Int).SetString(generator, 16)
	if !ok || gen.Cmp(big.NewInt(1)) <= 0 || gen.Cmp(ffOrder) >= 0 {
		return nil, algebra.ErrInvalidArgument.New("invalid generator")
	}

	genOrder := new(big.Int).Set(ffOrder)
	genOrder.Sub(genOrder, big.NewInt(1))
	genOrder.Div(genOrder, big.NewInt(2))
	if new(big.Int).Exp(gen, genOrder, ffOrder).Cmp(big.NewInt(1)) != 0 {
		return nil, algebra.ErrInvalidArgument.New("generator is not a quadratic residue")
	}

	c := &modPCurve{gen: gen, fieldOrder: ffOrder, groupOrder: genOrder}
	return newCyclic(c, KindModP, name, ffOrder, genOrder), nil
}

const rfc3526Prime3072 = `FFFFFFFF FFFFFFFF C90FDAA2 2168C234 C4C6628B 80DC1CD1
	29024E08 8A67CC74 020BBEA6 3B139B22 514A0879 8E3404DD
	EF9519B3 CD3A431B 302B0A6D F25F1437 4FE1356D 6D51C245
	E485B576 625E7EC6 F44C42E9 A637ED6B 0BFF5CB6 F406B7ED
	EE386BFB 5A899FA5 AE9F2411 7C4B1FE6 49286651 ECE45B3D
	C2007CB8 A163BF05 98DA4836 1C55D39A 69163FA8 FD24CF5F
	83655D23 DCA3AD96 1C62F356 208552BB 9ED52907 7096966D
	670C354E 4ABC9804 F1746C08 CA18217C 32905E46 2E36CE3B
	E39E772C 180E8603 9B2783A2 EC07A28F B5C55DF0 6F4C52C9
	DE2BCBF6 95581718 3995497C EA956AE5 15D22618 98FA0510
	15728E5A 8AAAC42D AD33170D 04507A33 A85521AB DF1CBA64
	ECFB8504 58DBEF0A 8AEA7157 5D060C7D B3970F85 A6E1E4C7
	ABF5AE8C DB0933D7 1E8C94E0 4A25619D CEE3D226 1AD2EE6B
	F12FFA06 D98A0864 D8760273 3EC86A64 521F2B18 177B200C
	BBE11757 7A615D6C 770988C0 BAD946E2 08E24FA0 74E5AB31
	43DB5BFC E0FD108E 4B82D120 A93AD2CA FFFFFFFF FFFFFFFF`

// RFC3526ModPGroup3072 returns the quadratic residues modulo the 3072-bit
// MODP prime of RFC 3526, generated by 2.
func RFC3526ModPGroup3072() Group {
	G, err := NewModPGroup("RFC3526ModPGroup3072", rfc3526Prime3072, "2")
	if err != nil {
		panic(err)
	}
	return G
}
