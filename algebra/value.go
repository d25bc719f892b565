package algebra

import (
	"math/big"
	"slices"
)

// Kind names the representation of an element's value. A structure
// declares the kind of the values it interprets, and every value reports
// its own kind.
type Kind string

const (
	KindInt         Kind = "int"
	KindInteger     Kind = "integer"
	KindRational    Kind = "rational"
	KindPermutation Kind = "permutation"
	KindWord        Kind = "word"
	KindTuple       Kind = "tuple"
)

// Value is the payload of an element. Values are immutable once they have
// been wrapped in an element.
type Value interface {
	Kind() Kind
}

// Int is a small non-negative integer value, used by the residue rings,
// prime fields and Cayley-table groups.
type Int int

func (Int) Kind() Kind { return KindInt }

// Integer is an arbitrary-precision integer value.
type Integer struct {
	v *big.Int
}

// NewInteger returns an Integer holding a copy of v.
func NewInteger(v *big.Int) Integer {
	return Integer{new(big.Int).Set(v)}
}

func (Integer) Kind() Kind { return KindInteger }

// Big returns a copy of the integer.
func (i Integer) Big() *big.Int {
	return new(big.Int).Set(i.v)
}

// Rational is a reduced fraction with a positive denominator.
type Rational struct {
	v *big.Rat
}

// NewRational returns a Rational holding a copy of v.
func NewRational(v *big.Rat) Rational {
	return Rational{new(big.Rat).Set(v)}
}

func (Rational) Kind() Kind { return KindRational }

// Rat returns a copy of the fraction.
func (r Rational) Rat() *big.Rat {
	return new(big.Rat).Set(r.v)
}

// Permutation is a permutation of 0, ..., n-1 stored as the sequence of
// images.
type Permutation []int

func (Permutation) Kind() Kind { return KindPermutation }

// Word is a string over a finite alphabet.
type Word string

func (Word) Kind() Kind { return KindWord }

// Tuple holds one element per component of a direct product.
type Tuple []Element

func (Tuple) Kind() Kind { return KindTuple }

func (t Tuple) clone() Tuple {
	return slices.Clone(t)
}
