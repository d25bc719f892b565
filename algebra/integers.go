package algebra

import (
	"io"
	"math/big"
	"strconv"

	"github.com/ing-bank/zkrp/util/bn"
)

// Integers is the ring Z of arbitrary-precision integers.
type Integers struct {
	RingBase
}

// NewIntegers returns a ring of integers.
func NewIntegers() *Integers {
	return new(Integers)
}

// Element returns the integer x.
func (r *Integers) Element(x int64) Element {
	return bind(r, Integer{big.NewInt(x)})
}

// ElementBig returns the integer x. The value is copied.
func (r *Integers) ElementBig(x *big.Int) (Element, error) {
	if x == nil {
		return Element{}, ErrInvalidArgument.New("nil integer")
	}
	return bind(r, NewInteger(x)), nil
}

// Value returns a copy of the integer held by x.
func (r *Integers) Value(x Element) *big.Int {
	return x.v.(Integer).Big()
}

func intOf(x Element) *big.Int {
	return x.v.(Integer).v
}

func (r *Integers) Add(x, y Element) Element {
	return bind(r, Integer{new(big.Int).Add(intOf(x), intOf(y))})
}

func (r *Integers) Zero() Element {
	return bind(r, Integer{new(big.Int)})
}

func (r *Integers) Neg(x Element) (Element, error) {
	return bind(r, Integer{new(big.Int).Neg(intOf(x))}), nil
}

func (r *Integers) Mul(x, y Element) Element {
	return bind(r, Integer{bn.Multiply(intOf(x), intOf(y))})
}

func (r *Integers) One() Element {
	return bind(r, Integer{big.NewInt(1)})
}

// Inv inverts the units 1 and -1.
func (r *Integers) Inv(x Element) (Element, error) {
	if !r.IsUnit(x) {
		return Element{}, ErrInvalidOperation.New(intOf(x).String() + " is not a unit in Z")
	}
	return x, nil
}

func (r *Integers) IsZero(x Element) bool {
	return intOf(x).Sign() == 0
}

func (r *Integers) IsOne(x Element) bool {
	return intOf(x).IsInt64() && intOf(x).Int64() == 1
}

func (r *Integers) Equal(x, y Element) bool {
	return intOf(x).Cmp(intOf(y)) == 0
}

func (r *Integers) Output(w io.Writer, x Element) error {
	_, err := io.WriteString(w, intOf(x).String())
	return err
}

// Input reads an optionally signed decimal integer of any length.
func (r *Integers) Input(s *Scanner, x *Element) {
	tok := s.Token()
	if s.Failed() {
		return
	}
	z, ok := new(big.Int).SetString(tok, 10)
	if !ok {
		s.Fail(ErrInvalidArgument.New("malformed integer " + strconv.Quote(tok)))
		return
	}
	*x = bind(r, Integer{z})
}

func (r *Integers) IsAbelian() bool {
	return true
}

func (r *Integers) ElementType() Kind {
	return KindInteger
}

func (r *Integers) IsUnit(x Element) bool {
	return intOf(x).IsInt64() && (intOf(x).Int64() == 1 || intOf(x).Int64() == -1)
}

func (r *Integers) IsZeroDivisor(x Element) bool {
	return r.IsZero(x)
}

func (r *Integers) IsNilpotent(x Element) bool {
	return r.IsZero(x)
}

func (r *Integers) IsField() bool {
	return false
}
