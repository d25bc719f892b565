package group

import (
	"crypto/rand"
	"io"
	"math/big"
	"strings"

	"github.com/ing-bank/zkrp/util/bn"
	log "github.com/sirupsen/logrus"

	"github.com/takakv/algebra/algebra"
)

// Group is a cyclic group of large order written multiplicatively: Mul is
// the group operation (point addition on curves) and One the identity.
type Group interface {
	algebra.Group

	// Name returns the name of the group.
	Name() string

	// Generator returns the group's generator.
	Generator() algebra.Element
	// Random returns a uniformly sampled element rG of the subgroup
	// generated by G. If the random source fails the error is logged and
	// the identity is returned.
	Random() algebra.Element

	// Scale returns x^s, that is the group operation applied s times with x.
	Scale(x algebra.Element, s *big.Int) (algebra.Element, error)
	// BaseScale returns G^s.
	BaseScale(s *big.Int) algebra.Element
	// Parse decodes the text form written by Output.
	Parse(s string) (algebra.Element, error)

	// P returns the order of the field over which the group is defined.
	P() *big.Int
	// N returns the order of the generator.
	N() *big.Int
}

// curve is the arithmetic of one group implementation. Values passed in
// were produced by the same curve.
type curve interface {
	identity() algebra.Value
	generator() algebra.Value
	add(a, b algebra.Value) algebra.Value
	neg(a algebra.Value) algebra.Value
	scale(a algebra.Value, s *big.Int) algebra.Value
	baseScale(s *big.Int) algebra.Value
	equal(a, b algebra.Value) bool
	encode(a algebra.Value) string
	decode(s string) (algebra.Value, error)
}

// cyclic adapts a curve to the algebra engine.
type cyclic struct {
	algebra.GroupBase
	c          curve
	kind       algebra.Kind
	name       string
	fieldOrder *big.Int
	groupOrder *big.Int
}

// randReader is the source of Random.
var randReader io.Reader = rand.Reader

func newCyclic(c curve, kind algebra.Kind, name string, p, n *big.Int) *cyclic {
	G := &cyclic{c: c, kind: kind, name: name, fieldOrder: p, groupOrder: n}
	G.GroupBase = algebra.GroupBase{Self: G}
	log.Debugf("group %s of order %d bits", name, n.BitLen())
	return G
}

func (g *cyclic) wrap(v algebra.Value) algebra.Element {
	x, err := algebra.NewElement(g, v)
	if err != nil {
		log.Errorf("%s: %v", g.name, err)
	}
	return x
}

func (g *cyclic) Name() string {
	return g.name
}

func (g *cyclic) P() *big.Int {
	return g.fieldOrder
}

func (g *cyclic) N() *big.Int {
	return g.groupOrder
}

func (g *cyclic) Generator() algebra.Element {
	return g.wrap(g.c.generator())
}

// Random falls back to the identity when the random source fails.
func (g *cyclic) Random() algebra.Element {
	r, err := rand.Int(randReader, g.groupOrder)
	if err != nil {
		log.Errorf("%s: sampling a scalar: %v", g.name, err)
		return g.One()
	}
	return g.BaseScale(r)
}

func (g *cyclic) Scale(x algebra.Element, s *big.Int) (algebra.Element, error) {
	if !x.IsValid() || x.Structure() != algebra.Structure(g) {
		return algebra.Element{}, algebra.ErrIncompatibleOperand.New("Scale on an element of another structure")
	}
	return g.wrap(g.c.scale(x.Value(), s)), nil
}

func (g *cyclic) BaseScale(s *big.Int) algebra.Element {
	return g.wrap(g.c.baseScale(s))
}

func (g *cyclic) Parse(s string) (algebra.Element, error) {
	v, err := g.c.decode(strings.TrimSpace(s))
	if err != nil {
		return algebra.Element{}, algebra.ErrInvalidArgument.New(g.name + ": " + err.Error())
	}
	return g.wrap(v), nil
}

func (g *cyclic) Mul(x, y algebra.Element) algebra.Element {
	return g.wrap(g.c.add(x.Value(), y.Value()))
}

func (g *cyclic) One() algebra.Element {
	return g.wrap(g.c.identity())
}

func (g *cyclic) Inv(x algebra.Element) (algebra.Element, error) {
	return g.wrap(g.c.neg(x.Value())), nil
}

func (g *cyclic) IsOne(x algebra.Element) bool {
	return g.c.equal(x.Value(), g.c.identity())
}

func (g *cyclic) Equal(x, y algebra.Element) bool {
	return g.c.equal(x.Value(), y.Value())
}

func (g *cyclic) Output(w io.Writer, x algebra.Element) error {
	_, err := io.WriteString(w, g.c.encode(x.Value()))
	return err
}

func (g *cyclic) Input(s *algebra.Scanner, x *algebra.Element) {
	tok := s.Token()
	if s.Failed() {
		return
	}
	v, err := g.c.decode(tok)
	if err != nil {
		s.Fail(algebra.ErrInvalidArgument.New(g.name + ": " + err.Error()))
		return
	}
	*x = g.wrap(v)
}

func (g *cyclic) IsAbelian() bool {
	return true
}

func (g *cyclic) ElementType() algebra.Kind {
	return g.kind
}

// reduce returns s mod n in [0, n).
func reduce(s, n *big.Int) *big.Int {
	return bn.Mod(s, n)
}
