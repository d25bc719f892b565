package algebra

import (
	"io"
	"math/bits"
	"strconv"

	log "github.com/sirupsen/logrus"

	"github.com/takakv/algebra/util"
)

// IntegersMod is the ring Z/nZ of residues 0, 1, ..., n-1. For n = 1 the
// single element 0 is both zero and one.
type IntegersMod struct {
	RingBase
	n       int
	prime   bool
	radical int
}

// NewIntegersMod returns Z/nZ for n >= 1.
func NewIntegersMod(n int) (*IntegersMod, error) {
	r := new(IntegersMod)
	if err := r.Reset(n); err != nil {
		return nil, err
	}
	return r, nil
}

// Reset changes the modulus to n. Elements produced before the reset keep
// their old residues and are not revalidated.
func (r *IntegersMod) Reset(n int) error {
	if n < 1 {
		return ErrInvalidArgument.New("modulus must be positive, got " + strconv.Itoa(n))
	}
	r.n = n
	r.prime = util.IsPrime(n)
	r.radical = n
	if !r.prime {
		r.radical = util.Radical(n)
	}
	log.Debugf("residue ring Z/%dZ, field %t; earlier elements are not revalidated", n, r.prime)
	return nil
}

// N returns the modulus.
func (r *IntegersMod) N() int {
	return r.n
}

// Element returns the residue x, 0 <= x < n.
func (r *IntegersMod) Element(x int) (Element, error) {
	if x < 0 || x >= r.n {
		return Element{}, ErrInvalidArgument.New(strconv.Itoa(x) + " is not a residue modulo " + strconv.Itoa(r.n))
	}
	return bind(r, Int(x)), nil
}

// Value returns the residue held by x.
func (r *IntegersMod) Value(x Element) int {
	return int(x.v.(Int))
}

func (r *IntegersMod) Add(x, y Element) Element {
	return bind(r, addMod(x.v.(Int), y.v.(Int), r.n))
}

func (r *IntegersMod) Zero() Element {
	return bind(r, Int(0))
}

func (r *IntegersMod) Neg(x Element) (Element, error) {
	return bind(r, negMod(x.v.(Int), r.n)), nil
}

func (r *IntegersMod) Mul(x, y Element) Element {
	return bind(r, mulMod(x.v.(Int), y.v.(Int), r.n))
}

func (r *IntegersMod) One() Element {
	if r.n == 1 {
		return bind(r, Int(0))
	}
	return bind(r, Int(1))
}

// Inv returns the inverse of a unit. It fails with ErrInvalidOperation
// when gcd(x, n) != 1.
func (r *IntegersMod) Inv(x Element) (Element, error) {
	z, ok := invMod(x.v.(Int), r.n)
	if !ok {
		return Element{}, ErrInvalidOperation.New(strconv.Itoa(int(x.v.(Int))) + " is not a unit modulo " + strconv.Itoa(r.n))
	}
	return bind(r, z), nil
}

func (r *IntegersMod) IsZero(x Element) bool {
	return x.v.(Int) == 0
}

func (r *IntegersMod) IsOne(x Element) bool {
	return r.Equal(x, r.One())
}

func (r *IntegersMod) Equal(x, y Element) bool {
	return x.v.(Int) == y.v.(Int)
}

func (r *IntegersMod) Output(w io.Writer, x Element) error {
	_, err := io.WriteString(w, strconv.Itoa(int(x.v.(Int))))
	return err
}

func (r *IntegersMod) Input(s *Scanner, x *Element) {
	if v, ok := scanResidue(s, r.n); ok {
		*x = bind(r, v)
	}
}

func (r *IntegersMod) IsAbelian() bool {
	return true
}

func (r *IntegersMod) ElementType() Kind {
	return KindInt
}

// IsUnit reports whether gcd(x, n) = 1. Every element of Z/1Z is a unit.
func (r *IntegersMod) IsUnit(x Element) bool {
	return r.n == 1 || util.GCD(int(x.v.(Int)), r.n) == 1
}

func (r *IntegersMod) IsZeroDivisor(x Element) bool {
	return util.GCD(int(x.v.(Int)), r.n) > 1
}

// IsNilpotent reports whether x is a multiple of the product of the primes
// dividing n.
func (r *IntegersMod) IsNilpotent(x Element) bool {
	return int(x.v.(Int))%r.radical == 0
}

// IsField reports whether n is prime.
func (r *IntegersMod) IsField() bool {
	return r.prime
}

func addMod(x, y Int, n int) Int {
	z := uint(x) + uint(y)
	if z >= uint(n) {
		z -= uint(n)
	}
	return Int(z)
}

func negMod(x Int, n int) Int {
	if x == 0 {
		return 0
	}
	return Int(n) - x
}

func mulMod(x, y Int, n int) Int {
	hi, lo := bits.Mul64(uint64(x), uint64(y))
	return Int(bits.Rem64(hi, lo, uint64(n)))
}

// invMod inverts x modulo n with the extended Euclidean algorithm.
func invMod(x Int, n int) (Int, bool) {
	g, u, _ := util.ExtendedGCD(int(x), n)
	if g != 1 {
		return 0, false
	}
	for u < 0 {
		u += n
	}
	return Int(u % n), true
}

func scanResidue(s *Scanner, n int) (Int, bool) {
	v, ok := s.Int()
	if !ok {
		return 0, false
	}
	if v < 0 || v >= n {
		s.Fail(ErrInvalidArgument.New(strconv.Itoa(v) + " is not a residue modulo " + strconv.Itoa(n)))
		return 0, false
	}
	return Int(v), true
}
