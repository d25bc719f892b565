package algebra

import (
	"io"
	"strconv"

	log "github.com/sirupsen/logrus"

	"github.com/takakv/algebra/util"
)

// PrimeField is the field F_p of residues modulo a prime p.
type PrimeField struct {
	FieldBase
	p int
}

// NewPrimeField returns F_p. It fails unless p is prime.
func NewPrimeField(p int) (*PrimeField, error) {
	if !util.IsPrime(p) {
		return nil, ErrInvalidArgument.New(strconv.Itoa(p) + " is not prime")
	}
	f := &PrimeField{p: p}
	f.FieldBase = FieldBase{f}
	log.Debugf("prime field F_%d", p)
	return f, nil
}

// P returns the characteristic.
func (f *PrimeField) P() int {
	return f.p
}

// Element returns the residue x, 0 <= x < p.
func (f *PrimeField) Element(x int) (Element, error) {
	if x < 0 || x >= f.p {
		return Element{}, ErrInvalidArgument.New(strconv.Itoa(x) + " is not a residue modulo " + strconv.Itoa(f.p))
	}
	return bind(f, Int(x)), nil
}

// Value returns the residue held by x.
func (f *PrimeField) Value(x Element) int {
	return int(x.v.(Int))
}

func (f *PrimeField) Add(x, y Element) Element {
	return bind(f, addMod(x.v.(Int), y.v.(Int), f.p))
}

func (f *PrimeField) Zero() Element {
	return bind(f, Int(0))
}

func (f *PrimeField) Neg(x Element) (Element, error) {
	return bind(f, negMod(x.v.(Int), f.p)), nil
}

func (f *PrimeField) Mul(x, y Element) Element {
	return bind(f, mulMod(x.v.(Int), y.v.(Int), f.p))
}

func (f *PrimeField) One() Element {
	return bind(f, Int(1))
}

// Inv fails with ErrInvalidArgument for zero.
func (f *PrimeField) Inv(x Element) (Element, error) {
	z, ok := invMod(x.v.(Int), f.p)
	if !ok {
		return Element{}, ErrInvalidArgument.New("zero has no inverse in F_" + strconv.Itoa(f.p))
	}
	return bind(f, z), nil
}

func (f *PrimeField) IsZero(x Element) bool {
	return x.v.(Int) == 0
}

func (f *PrimeField) IsOne(x Element) bool {
	return x.v.(Int) == 1
}

func (f *PrimeField) Equal(x, y Element) bool {
	return x.v.(Int) == y.v.(Int)
}

func (f *PrimeField) Output(w io.Writer, x Element) error {
	_, err := io.WriteString(w, strconv.Itoa(int(x.v.(Int))))
	return err
}

func (f *PrimeField) Input(s *Scanner, x *Element) {
	if v, ok := scanResidue(s, f.p); ok {
		*x = bind(f, v)
	}
}

func (f *PrimeField) IsAbelian() bool {
	return true
}

func (f *PrimeField) ElementType() Kind {
	return KindInt
}
