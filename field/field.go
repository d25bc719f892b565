// Package field provides the scalar fields of pairing-friendly curves as
// algebra fields.
package field

import (
	"io"
	"math/big"
	"strconv"

	blsfr "github.com/consensys/gnark-crypto/ecc/bls12-377/fr"
	bnfr "github.com/consensys/gnark-crypto/ecc/bn254/fr"
	log "github.com/sirupsen/logrus"

	"github.com/takakv/algebra/algebra"
)

const (
	KindBLS12377 algebra.Kind = "bls12-377/fr"
	KindBN254    algebra.Kind = "bn254/fr"
)

// frElement is the method set shared by the gnark-crypto fr elements.
type frElement[E any] interface {
	*E
	Add(x, y *E) *E
	Sub(x, y *E) *E
	Mul(x, y *E) *E
	Neg(x *E) *E
	Inverse(x *E) *E
	SetOne() *E
	SetBigInt(v *big.Int) *E
	BigInt(res *big.Int) *big.Int
	Equal(x *E) bool
	IsZero() bool
	IsOne() bool
}

type scalar[E any] struct {
	kind algebra.Kind
	v    E
}

func (s scalar[E]) Kind() algebra.Kind {
	return s.kind
}

// Prime is the prime field of an fr element type, in Montgomery form.
type Prime[E any, P frElement[E]] struct {
	algebra.FieldBase
	name    string
	kind    algebra.Kind
	modulus *big.Int
}

func newPrime[E any, P frElement[E]](name string, kind algebra.Kind, modulus *big.Int) *Prime[E, P] {
	f := &Prime[E, P]{name: name, kind: kind, modulus: modulus}
	f.FieldBase = algebra.FieldBase{Self: f}
	log.Debugf("prime field %s of %d bits", name, modulus.BitLen())
	return f
}

// BLS12377 returns the scalar field of BLS12-377.
func BLS12377() *Prime[blsfr.Element, *blsfr.Element] {
	return newPrime[blsfr.Element, *blsfr.Element]("bls12-377", KindBLS12377, blsfr.Modulus())
}

// BN254 returns the scalar field of BN254.
func BN254() *Prime[bnfr.Element, *bnfr.Element] {
	return newPrime[bnfr.Element, *bnfr.Element]("bn254", KindBN254, bnfr.Modulus())
}

// Name returns the name of the curve the field belongs to.
func (f *Prime[E, P]) Name() string {
	return f.name
}

// Modulus returns the characteristic.
func (f *Prime[E, P]) Modulus() *big.Int {
	return new(big.Int).Set(f.modulus)
}

func (f *Prime[E, P]) wrap(v E) algebra.Element {
	x, err := algebra.NewElement(f, scalar[E]{f.kind, v})
	if err != nil {
		log.Errorf("%s: %v", f.name, err)
	}
	return x
}

func (f *Prime[E, P]) get(x algebra.Element) E {
	return x.Value().(scalar[E]).v
}

// Element returns v, 0 <= v < modulus.
func (f *Prime[E, P]) Element(v *big.Int) (algebra.Element, error) {
	if v == nil || v.Sign() < 0 || v.Cmp(f.modulus) >= 0 {
		return algebra.Element{}, algebra.ErrInvalidArgument.New("not a residue modulo the " + f.name + " scalar field")
	}
	var z E
	P(&z).SetBigInt(v)
	return f.wrap(z), nil
}

// Value returns the canonical integer held by x.
func (f *Prime[E, P]) Value(x algebra.Element) *big.Int {
	v := f.get(x)
	return P(&v).BigInt(new(big.Int))
}

func (f *Prime[E, P]) Add(x, y algebra.Element) algebra.Element {
	a, b := f.get(x), f.get(y)
	var z E
	P(&z).Add(&a, &b)
	return f.wrap(z)
}

func (f *Prime[E, P]) Zero() algebra.Element {
	var z E
	return f.wrap(z)
}

func (f *Prime[E, P]) Neg(x algebra.Element) (algebra.Element, error) {
	a := f.get(x)
	var z E
	P(&z).Neg(&a)
	return f.wrap(z), nil
}

func (f *Prime[E, P]) Mul(x, y algebra.Element) algebra.Element {
	a, b := f.get(x), f.get(y)
	var z E
	P(&z).Mul(&a, &b)
	return f.wrap(z)
}

func (f *Prime[E, P]) One() algebra.Element {
	var z E
	P(&z).SetOne()
	return f.wrap(z)
}

// Inv fails with ErrInvalidArgument for zero.
func (f *Prime[E, P]) Inv(x algebra.Element) (algebra.Element, error) {
	a := f.get(x)
	if P(&a).IsZero() {
		return algebra.Element{}, algebra.ErrInvalidArgument.New("zero has no inverse in the " + f.name + " scalar field")
	}
	var z E
	P(&z).Inverse(&a)
	return f.wrap(z), nil
}

func (f *Prime[E, P]) IsZero(x algebra.Element) bool {
	a := f.get(x)
	return P(&a).IsZero()
}

func (f *Prime[E, P]) IsOne(x algebra.Element) bool {
	a := f.get(x)
	return P(&a).IsOne()
}

func (f *Prime[E, P]) Equal(x, y algebra.Element) bool {
	a, b := f.get(x), f.get(y)
	return P(&a).Equal(&b)
}

// Output writes the canonical value in decimal.
func (f *Prime[E, P]) Output(w io.Writer, x algebra.Element) error {
	_, err := io.WriteString(w, f.Value(x).String())
	return err
}

func (f *Prime[E, P]) Input(s *algebra.Scanner, x *algebra.Element) {
	tok := s.Token()
	if s.Failed() {
		return
	}
	v, ok := new(big.Int).SetString(tok, 10)
	if !ok {
		s.Fail(algebra.ErrInvalidArgument.New("malformed integer " + strconv.Quote(tok)))
		return
	}
	z, err := f.Element(v)
	if err != nil {
		s.Fail(err)
		return
	}
	*x = z
}

func (f *Prime[E, P]) IsAbelian() bool {
	return true
}

func (f *Prime[E, P]) ElementType() algebra.Kind {
	return f.kind
}
