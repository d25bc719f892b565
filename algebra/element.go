package algebra

import "strings"

// Element is a value together with the structure that interprets it. The
// zero Element is empty: it is bound to no structure and carries no value.
//
// An element never owns its structure. The structure must stay usable for
// as long as elements referring to it are in use.
type Element struct {
	as Structure
	v  Value
}

// NewElement binds v to as. It fails if as or v is nil, or if the kind of v
// differs from the element type declared by as. NewElement does not apply
// the structure's own legality rules; use the structure's factory methods
// for that.
func NewElement(as Structure, v Value) (Element, error) {
	if as == nil {
		return Element{}, ErrInvalidArgument.New("nil structure")
	}
	if v == nil {
		return Element{}, ErrInvalidArgument.New("nil value")
	}
	if v.Kind() != as.ElementType() {
		return Element{}, ErrInvalidArgument.New("value of kind " + string(v.Kind()) +
			" in a structure of " + string(as.ElementType()) + " elements")
	}
	return Element{as, v}, nil
}

// New returns the zero of as.
func New(as Structure) (Element, error) {
	if as == nil {
		return Element{}, ErrInvalidArgument.New("nil structure")
	}
	return as.Zero(), nil
}

// bind is NewElement for values the structure has already checked.
func bind(as Structure, v Value) Element {
	return Element{as, v}
}

// holder is implemented by structures whose Reset can change the shape of
// their values. holds reports whether v still fits the configuration.
type holder interface {
	holds(v Value) bool
}

// IsValid reports whether e is bound to a structure and holds a value of
// the kind that structure declares. An element whose value no longer fits
// its structure after a Reset, such as a permutation of the wrong length,
// is not valid.
func (e Element) IsValid() bool {
	if e.as == nil || e.v == nil || e.v.Kind() != e.as.ElementType() {
		return false
	}
	if h, ok := e.as.(holder); ok {
		return h.holds(e.v)
	}
	return true
}

// Structure returns the structure e belongs to, or nil for an empty element.
func (e Element) Structure() Structure {
	return e.as
}

// Value returns the payload of e, or nil for an empty element.
func (e Element) Value() Value {
	return e.v
}

// Compatible reports whether x and y are valid elements of the same
// structure instance.
func Compatible(x, y Element) bool {
	return x.IsValid() && y.IsValid() && x.as == y.as
}

// SetZero sets e to the zero of its structure.
func (e *Element) SetZero() error {
	if e.as == nil {
		return ErrIncompatibleOperand.New("SetZero on an unbound element")
	}
	*e = e.as.Zero()
	return nil
}

// SetOne sets e to the one of its structure.
func (e *Element) SetOne() error {
	if e.as == nil {
		return ErrIncompatibleOperand.New("SetOne on an unbound element")
	}
	*e = e.as.One()
	return nil
}

// Add sets e to e + x.
func (e *Element) Add(x Element) error {
	if !Compatible(*e, x) {
		return incompatible("Add")
	}
	*e = e.as.Add(*e, x)
	return nil
}

// Sub sets e to e + (-x).
func (e *Element) Sub(x Element) error {
	if !Compatible(*e, x) {
		return incompatible("Sub")
	}
	n, err := e.as.Neg(x)
	if err != nil {
		return err
	}
	*e = e.as.Add(*e, n)
	return nil
}

// Mul sets e to ex.
func (e *Element) Mul(x Element) error {
	if !Compatible(*e, x) {
		return incompatible("Mul")
	}
	*e = e.as.Mul(*e, x)
	return nil
}

// Div sets e to ex⁻¹.
func (e *Element) Div(x Element) error {
	if !Compatible(*e, x) {
		return incompatible("Div")
	}
	i, err := e.as.Inv(x)
	if err != nil {
		return err
	}
	*e = e.as.Mul(*e, i)
	return nil
}

// String returns the text form of e as written by its structure.
func (e Element) String() string {
	if !e.IsValid() {
		return "<invalid>"
	}
	var sb strings.Builder
	if err := e.as.Output(&sb, e); err != nil {
		return "<invalid>"
	}
	return sb.String()
}

func incompatible(op string) error {
	return ErrIncompatibleOperand.New(op + " on elements of different structures")
}

func invalid(op string) error {
	return ErrIncompatibleOperand.New(op + " on an invalid element")
}
