package algebra

import "io"

// Structure is an algebraic structure: a set of values together with the
// operations interpreting them. Elements passed to these methods must be
// valid elements of the receiver; the checked entry points are the
// functions and Element methods of this package.
type Structure interface {
	// Add returns x + y.
	Add(x, y Element) Element
	// Zero returns the additive identity.
	Zero() Element
	// Neg returns -x, or an error if x has no additive inverse.
	Neg(x Element) (Element, error)
	// Mul returns xy.
	Mul(x, y Element) Element
	// One returns the multiplicative identity.
	One() Element
	// Inv returns the multiplicative inverse of x, or an error if it does
	// not exist.
	Inv(x Element) (Element, error)
	// IsZero reports whether x is the additive identity.
	IsZero(x Element) bool
	// IsOne reports whether x is the multiplicative identity.
	IsOne(x Element) bool
	// Equal reports whether x and y hold equal values.
	Equal(x, y Element) bool
	// Output writes the text form of x to w.
	Output(w io.Writer, x Element) error
	// Input reads the text form of an element from s and stores it in x.
	// On failure s is left in the failed state and x is not modified.
	Input(s *Scanner, x *Element)
	// IsAbelian reports whether the multiplication is commutative.
	IsAbelian() bool
	// ElementType returns the kind of values the structure interprets.
	ElementType() Kind
}

// Semigroup is a set with an associative multiplication and an identity.
type Semigroup interface {
	Structure
	semigroup()
}

// Group is a semigroup in which every element is invertible.
type Group interface {
	Semigroup
	group()
}

// Ring is a commutative ring with identity.
type Ring interface {
	Structure
	// IsUnit reports whether x is invertible.
	IsUnit(x Element) bool
	// IsZeroDivisor reports whether xy = 0 for some non-zero y.
	IsZeroDivisor(x Element) bool
	// IsNilpotent reports whether some power of x is zero.
	IsNilpotent(x Element) bool
	// IsField reports whether every non-zero element is a unit.
	IsField() bool
	ring()
}

// Field is a ring in which every non-zero element is invertible.
type Field interface {
	Ring
	field()
}

// IsGroup reports whether s is a group.
func IsGroup(s Structure) bool {
	_, ok := s.(Group)
	return ok
}

// IsRing reports whether s is a ring.
func IsRing(s Structure) bool {
	_, ok := s.(Ring)
	return ok
}

// IsField reports whether s is a field.
func IsField(s Structure) bool {
	_, ok := s.(Field)
	return ok
}

// SemigroupOps are the primitives a concrete semigroup implements.
type SemigroupOps interface {
	Mul(x, y Element) Element
	One() Element
	IsOne(x Element) bool
	Equal(x, y Element) bool
	Output(w io.Writer, x Element) error
	Input(s *Scanner, x *Element)
	IsAbelian() bool
	ElementType() Kind
}

// SemigroupBase supplies the operations a semigroup derives from its
// multiplication. A concrete semigroup embeds it and sets Self to itself.
type SemigroupBase struct {
	Self SemigroupOps
}

func (b SemigroupBase) Add(x, y Element) Element {
	return b.Self.Mul(x, y)
}

func (b SemigroupBase) Zero() Element {
	return b.Self.One()
}

func (b SemigroupBase) IsZero(x Element) bool {
	return b.Self.IsOne(x)
}

func (SemigroupBase) Neg(Element) (Element, error) {
	return Element{}, errNoSemigroupInverse
}

func (SemigroupBase) Inv(Element) (Element, error) {
	return Element{}, errNoSemigroupInverse
}

func (SemigroupBase) semigroup() {}

// GroupOps are the primitives a concrete group implements.
type GroupOps interface {
	SemigroupOps
	Inv(x Element) (Element, error)
}

// GroupBase supplies the additive notation of a group in terms of its
// multiplication. A concrete group embeds it and sets Self to itself.
type GroupBase struct {
	Self GroupOps
}

func (b GroupBase) Add(x, y Element) Element {
	return b.Self.Mul(x, y)
}

func (b GroupBase) Zero() Element {
	return b.Self.One()
}

func (b GroupBase) Neg(x Element) (Element, error) {
	return b.Self.Inv(x)
}

func (b GroupBase) IsZero(x Element) bool {
	return b.Self.IsOne(x)
}

func (GroupBase) semigroup() {}
func (GroupBase) group()     {}

// RingBase marks a ring. Ring elements need not be invertible, so Inv
// fails unless the embedding ring overrides it.
type RingBase struct{}

func (RingBase) Inv(Element) (Element, error) {
	return Element{}, errNoRingInverse
}

func (RingBase) ring() {}

// FieldBase supplies the ring queries that hold in every field. A concrete
// field embeds it, sets Self to itself, and implements Inv.
type FieldBase struct {
	Self Structure
}

func (b FieldBase) IsUnit(x Element) bool {
	return !b.Self.IsZero(x)
}

func (b FieldBase) IsZeroDivisor(x Element) bool {
	return b.Self.IsZero(x)
}

func (b FieldBase) IsNilpotent(x Element) bool {
	return b.Self.IsZero(x)
}

func (FieldBase) IsField() bool { return true }

func (FieldBase) ring()  {}
func (FieldBase) field() {}
