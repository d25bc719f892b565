package algebra

import (
	"io"
	"strconv"

	log "github.com/sirupsen/logrus"
)

// Product is the direct product of a sequence of structures. Elements are
// tuples with one element per component and every operation acts
// componentwise. The product does not own its components.
type Product struct {
	self Structure
	cs   []Structure
	sep  string
}

// NewProduct returns the direct product of components.
func NewProduct(components ...Structure) (*Product, error) {
	p := &Product{sep: " "}
	p.self = p
	if err := p.Reset(components...); err != nil {
		return nil, err
	}
	return p, nil
}

// Reset replaces the components. Elements produced before the reset are
// invalid unless their entries belong to the new components.
func (p *Product) Reset(components ...Structure) error {
	if len(components) == 0 {
		return ErrInvalidArgument.New("direct product of no components")
	}
	for i, c := range components {
		if c == nil {
			return ErrInvalidArgument.New("component " + strconv.Itoa(i) + " is nil")
		}
	}
	p.cs = append([]Structure(nil), components...)
	log.Debugf("direct product of %d components; earlier elements are not revalidated", len(p.cs))
	return nil
}

// Len returns the number of components.
func (p *Product) Len() int {
	return len(p.cs)
}

// Component returns the i-th component.
func (p *Product) Component(i int) Structure {
	return p.cs[i]
}

// Separator returns the text written between components.
func (p *Product) Separator() string {
	return p.sep
}

// SetSeparator sets the text written between components. Input skips the
// separator, so its non-space runes must not occur in component text.
func (p *Product) SetSeparator(sep string) {
	p.sep = sep
}

// Element returns the tuple v. Each v[i] must be a valid element of the
// i-th component.
func (p *Product) Element(v []Element) (Element, error) {
	if len(v) != len(p.cs) {
		return Element{}, ErrInvalidArgument.New("tuple of " + strconv.Itoa(len(v)) +
			" elements in a product of " + strconv.Itoa(len(p.cs)))
	}
	for i, x := range v {
		if !x.IsValid() || x.as != p.cs[i] {
			return Element{}, ErrInvalidArgument.New("element " + strconv.Itoa(i) + " does not belong to its component")
		}
	}
	return bind(p.self, Tuple(v).clone()), nil
}

// Value returns a copy of the tuple held by x.
func (p *Product) Value(x Element) []Element {
	return x.v.(Tuple).clone()
}

func (p *Product) each(f func(c Structure, i int) Element) Element {
	z := make(Tuple, len(p.cs))
	for i, c := range p.cs {
		z[i] = f(c, i)
	}
	return bind(p.self, z)
}

func (p *Product) eachErr(f func(c Structure, i int) (Element, error)) (Element, error) {
	z := make(Tuple, len(p.cs))
	for i, c := range p.cs {
		var err error
		if z[i], err = f(c, i); err != nil {
			return Element{}, err
		}
	}
	return bind(p.self, z), nil
}

func (p *Product) all(f func(c Structure, i int) bool) bool {
	for i, c := range p.cs {
		if !f(c, i) {
			return false
		}
	}
	return true
}

func (p *Product) Add(x, y Element) Element {
	xs, ys := x.v.(Tuple), y.v.(Tuple)
	return p.each(func(c Structure, i int) Element { return c.Add(xs[i], ys[i]) })
}

func (p *Product) Zero() Element {
	return p.each(func(c Structure, _ int) Element { return c.Zero() })
}

func (p *Product) Neg(x Element) (Element, error) {
	xs := x.v.(Tuple)
	return p.eachErr(func(c Structure, i int) (Element, error) { return c.Neg(xs[i]) })
}

func (p *Product) Mul(x, y Element) Element {
	xs, ys := x.v.(Tuple), y.v.(Tuple)
	return p.each(func(c Structure, i int) Element { return c.Mul(xs[i], ys[i]) })
}

func (p *Product) One() Element {
	return p.each(func(c Structure, _ int) Element { return c.One() })
}

func (p *Product) Inv(x Element) (Element, error) {
	xs := x.v.(Tuple)
	return p.eachErr(func(c Structure, i int) (Element, error) { return c.Inv(xs[i]) })
}

func (p *Product) IsZero(x Element) bool {
	xs := x.v.(Tuple)
	return p.all(func(c Structure, i int) bool { return c.IsZero(xs[i]) })
}

func (p *Product) IsOne(x Element) bool {
	xs := x.v.(Tuple)
	return p.all(func(c Structure, i int) bool { return c.IsOne(xs[i]) })
}

func (p *Product) Equal(x, y Element) bool {
	xs, ys := x.v.(Tuple), y.v.(Tuple)
	return p.all(func(c Structure, i int) bool { return c.Equal(xs[i], ys[i]) })
}

// Output writes the components joined by the separator. Each component is
// written by the structure it belongs to.
func (p *Product) Output(w io.Writer, x Element) error {
	for i, xi := range x.v.(Tuple) {
		if i > 0 {
			if _, err := io.WriteString(w, p.sep); err != nil {
				return err
			}
		}
		if err := xi.as.Output(w, xi); err != nil {
			return err
		}
	}
	return nil
}

// Input reads the components in order. If any component fails x is left
// unchanged.
func (p *Product) Input(s *Scanner, x *Element) {
	restore := s.Delimit(p.sep)
	defer restore()
	z := make(Tuple, len(p.cs))
	for i, c := range p.cs {
		if i > 0 && !s.Literal(p.sep) {
			return
		}
		z[i] = Element{as: c}
		c.Input(s, &z[i])
		if s.Failed() {
			return
		}
	}
	*x = bind(p.self, z)
}

// holds reports whether v has one valid element per current component.
func (p *Product) holds(v Value) bool {
	t := v.(Tuple)
	if len(t) != len(p.cs) {
		return false
	}
	for i, x := range t {
		if x.as != p.cs[i] || !x.IsValid() {
			return false
		}
	}
	return true
}

// IsAbelian reports whether every component is abelian.
func (p *Product) IsAbelian() bool {
	return p.all(func(c Structure, _ int) bool { return c.IsAbelian() })
}

func (p *Product) ElementType() Kind {
	return KindTuple
}

// GroupProduct is the direct product of groups. It is itself a group.
type GroupProduct struct {
	Product
}

// NewGroupProduct returns the direct product of components.
func NewGroupProduct(components ...Group) (*GroupProduct, error) {
	g := &GroupProduct{Product{sep: " "}}
	g.self = g
	if err := g.Reset(components...); err != nil {
		return nil, err
	}
	return g, nil
}

// Reset replaces the components. Elements produced before the reset are
// invalid unless their entries belong to the new components.
func (g *GroupProduct) Reset(components ...Group) error {
	cs := make([]Structure, len(components))
	for i, c := range components {
		if c == nil {
			return ErrInvalidArgument.New("component " + strconv.Itoa(i) + " is nil")
		}
		cs[i] = c
	}
	return g.Product.Reset(cs...)
}

// Components returns the component groups.
func (g *GroupProduct) Components() []Group {
	gs := make([]Group, len(g.cs))
	for i, c := range g.cs {
		gs[i] = c.(Group)
	}
	return gs
}

func (*GroupProduct) semigroup() {}
func (*GroupProduct) group()     {}
