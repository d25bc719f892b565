package algebra

import (
	"io"
	"math/big"
	"strconv"
	"strings"
)

// Rationals is the field Q of fractions. Values are kept reduced with a
// positive denominator.
type Rationals struct {
	FieldBase
}

// NewRationals returns a field of rationals.
func NewRationals() *Rationals {
	f := new(Rationals)
	f.FieldBase = FieldBase{f}
	return f
}

// Element returns num/den in lowest terms. It fails if den is 0.
func (f *Rationals) Element(num, den int64) (Element, error) {
	if den == 0 {
		return Element{}, ErrInvalidArgument.New("zero denominator")
	}
	return bind(f, Rational{big.NewRat(num, den)}), nil
}

// ElementRat returns the fraction x. The value is copied.
func (f *Rationals) ElementRat(x *big.Rat) (Element, error) {
	if x == nil {
		return Element{}, ErrInvalidArgument.New("nil rational")
	}
	return bind(f, NewRational(x)), nil
}

// Value returns a copy of the fraction held by x.
func (f *Rationals) Value(x Element) *big.Rat {
	return x.v.(Rational).Rat()
}

func ratOf(x Element) *big.Rat {
	return x.v.(Rational).v
}

func (f *Rationals) Add(x, y Element) Element {
	return bind(f, Rational{new(big.Rat).Add(ratOf(x), ratOf(y))})
}

func (f *Rationals) Zero() Element {
	return bind(f, Rational{new(big.Rat)})
}

func (f *Rationals) Neg(x Element) (Element, error) {
	return bind(f, Rational{new(big.Rat).Neg(ratOf(x))}), nil
}

func (f *Rationals) Mul(x, y Element) Element {
	return bind(f, Rational{new(big.Rat).Mul(ratOf(x), ratOf(y))})
}

func (f *Rationals) One() Element {
	return bind(f, Rational{big.NewRat(1, 1)})
}

// Inv fails with ErrInvalidArgument for zero.
func (f *Rationals) Inv(x Element) (Element, error) {
	if f.IsZero(x) {
		return Element{}, ErrInvalidArgument.New("zero has no inverse in Q")
	}
	return bind(f, Rational{new(big.Rat).Inv(ratOf(x))}), nil
}

func (f *Rationals) IsZero(x Element) bool {
	return ratOf(x).Sign() == 0
}

func (f *Rationals) IsOne(x Element) bool {
	return ratOf(x).IsInt() && ratOf(x).Num().IsInt64() && ratOf(x).Num().Int64() == 1
}

func (f *Rationals) Equal(x, y Element) bool {
	return ratOf(x).Cmp(ratOf(y)) == 0
}

// Output writes "num" for integers and "num/den" otherwise.
func (f *Rationals) Output(w io.Writer, x Element) error {
	_, err := io.WriteString(w, ratOf(x).RatString())
	return err
}

// Input reads "num" or "num/den" with a positive decimal denominator.
func (f *Rationals) Input(s *Scanner, x *Element) {
	tok := s.Token()
	if s.Failed() {
		return
	}
	z, ok := parseRat(tok)
	if !ok {
		s.Fail(ErrInvalidArgument.New("malformed rational " + strconv.Quote(tok)))
		return
	}
	*x = bind(f, Rational{z})
}

func parseRat(tok string) (*big.Rat, bool) {
	ns, ds, frac := strings.Cut(tok, "/")
	num, ok := new(big.Int).SetString(ns, 10)
	if !ok {
		return nil, false
	}
	if !frac {
		return new(big.Rat).SetInt(num), true
	}
	if ds == "" || strings.Trim(ds, "0123456789") != "" {
		return nil, false
	}
	den, ok := new(big.Int).SetString(ds, 10)
	if !ok || den.Sign() == 0 {
		return nil, false
	}
	return new(big.Rat).SetFrac(num, den), true
}

func (f *Rationals) IsAbelian() bool {
	return true
}

func (f *Rationals) ElementType() Kind {
	return KindRational
}
