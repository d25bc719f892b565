package algebra

import "io"

// Equal reports whether x and y are equal elements of one structure.
func Equal(x, y Element) (bool, error) {
	if !Compatible(x, y) {
		return false, incompatible("Equal")
	}
	return x.as.Equal(x, y), nil
}

// NotEqual is the negation of Equal.
func NotEqual(x, y Element) (bool, error) {
	eq, err := Equal(x, y)
	return !eq, err
}

// IsZero reports whether x is the zero of its structure.
func IsZero(x Element) (bool, error) {
	if !x.IsValid() {
		return false, invalid("IsZero")
	}
	return x.as.IsZero(x), nil
}

// IsOne reports whether x is the one of its structure.
func IsOne(x Element) (bool, error) {
	if !x.IsValid() {
		return false, invalid("IsOne")
	}
	return x.as.IsOne(x), nil
}

// Plus returns x after checking that it is valid.
func Plus(x Element) (Element, error) {
	if !x.IsValid() {
		return Element{}, invalid("Plus")
	}
	return x, nil
}

// Neg returns -x.
func Neg(x Element) (Element, error) {
	if !x.IsValid() {
		return Element{}, invalid("Neg")
	}
	return x.as.Neg(x)
}

// Inv returns x⁻¹.
func Inv(x Element) (Element, error) {
	if !x.IsValid() {
		return Element{}, invalid("Inv")
	}
	return x.as.Inv(x)
}

// Add returns x + y.
func Add(x, y Element) (Element, error) {
	z := x
	if err := z.Add(y); err != nil {
		return Element{}, err
	}
	return z, nil
}

// Sub returns x + (-y).
func Sub(x, y Element) (Element, error) {
	z := x
	if err := z.Sub(y); err != nil {
		return Element{}, err
	}
	return z, nil
}

// Mul returns xy.
func Mul(x, y Element) (Element, error) {
	z := x
	if err := z.Mul(y); err != nil {
		return Element{}, err
	}
	return z, nil
}

// Div returns xy⁻¹.
func Div(x, y Element) (Element, error) {
	z := x
	if err := z.Div(y); err != nil {
		return Element{}, err
	}
	return z, nil
}

// Times returns x + x + ... + x (n terms) using the right-to-left binary
// method. The structure must supply Zero and Add, and Neg when n < 0.
func Times(x Element, n int) (Element, error) {
	if !x.IsValid() {
		return Element{}, invalid("Times")
	}
	as := x.as
	return binary(x, n, as.Zero(), as.Add, as.Neg)
}

// Pow returns x^n using the right-to-left binary method. The structure
// must supply One and Mul, and Inv when n < 0.
func Pow(x Element, n int) (Element, error) {
	if !x.IsValid() {
		return Element{}, invalid("Pow")
	}
	as := x.as
	return binary(x, n, as.One(), as.Mul, as.Inv)
}

// binary accumulates op over the set bits of n, doubling z at each step.
func binary(z Element, n int, y Element, op func(a, b Element) Element,
	inverse func(Element) (Element, error)) (Element, error) {
	// Work on the magnitude as uint so that the most negative int is
	// handled.
	m := uint(n)
	if n < 0 {
		var err error
		if z, err = inverse(z); err != nil {
			return Element{}, err
		}
		m = -m
	}
	for {
		if m&1 != 0 {
			y = op(y, z)
		}
		m >>= 1
		if m == 0 {
			return y, nil
		}
		z = op(z, z)
	}
}

// Fprint writes the text form of x to w.
func Fprint(w io.Writer, x Element) error {
	if !x.IsValid() {
		return invalid("Fprint")
	}
	return x.as.Output(w, x)
}

// Scan reads an element of x's structure from s into x and reports whether
// it succeeded. On failure s is left in the failed state and x is unchanged.
func Scan(s *Scanner, x *Element) bool {
	if x.as == nil {
		s.Fail(invalid("Scan"))
		return false
	}
	if s.Failed() {
		return false
	}
	x.as.Input(s, x)
	return !s.Failed()
}
