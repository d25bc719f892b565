package algebra

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func snElement(t *testing.T, G *SymmetricGroup, v ...int) Element {
	x, err := G.Element(v)
	require.NoError(t, err)
	return x
}

func TestGroupProductInvalid(t *testing.T) {
	_, err := NewGroupProduct()
	assert.True(t, ErrInvalidArgument.Is(err))
	_, err = NewGroupProduct(nil, nil)
	assert.True(t, ErrInvalidArgument.Is(err))

	S2, err := NewSymmetricGroup(2)
	require.NoError(t, err)
	G, err := NewGroupProduct(S2)
	require.NoError(t, err)
	assert.True(t, ErrInvalidArgument.Is(G.Reset()))
	assert.True(t, ErrInvalidArgument.Is(G.Reset(S2, nil)))

	_, err = NewProduct()
	assert.True(t, ErrInvalidArgument.Is(err))
}

func TestGroupProduct(t *testing.T) {
	Sn, err := NewSymmetricGroup(2)
	require.NoError(t, err)
	G, err := NewGroupProduct(Sn, Sn)
	require.NoError(t, err)
	assert.True(t, IsGroup(G))
	assert.True(t, G.IsAbelian())
	assert.Equal(t, []Group{Sn, Sn}, G.Components())

	e0 := snElement(t, Sn, 0, 1)
	e1 := snElement(t, Sn, 1, 0)

	tuple := func(x, y Element) Element {
		z, err := G.Element([]Element{x, y})
		require.NoError(t, err)
		return z
	}
	e := tuple(e0, e0)
	a := tuple(e0, e1)
	b := tuple(e1, e0)
	c := tuple(e1, e1)

	assert.True(t, G.Equal(G.One(), e))
	assert.True(t, G.IsOne(e))
	assert.True(t, G.IsZero(e))
	assert.Equal(t, []Element{e0, e1}, G.Value(a))

	elems := []Element{e, a, b, c}
	for i, x := range elems {
		for j, y := range elems {
			ok, err := Equal(x, y)
			require.NoError(t, err)
			assert.Equal(t, i == j, ok)
		}
	}

	// Klein four-group: every element is its own inverse and the product
	// of two distinct non-identity elements is the third.
	mul := []struct{ x, y, z Element }{
		{e, e, e}, {e, a, a}, {e, b, b}, {e, c, c},
		{a, e, a}, {a, a, e}, {a, b, c}, {a, c, b},
		{b, e, b}, {b, a, c}, {b, b, e}, {b, c, a},
		{c, e, c}, {c, a, b}, {c, b, a}, {c, c, e},
	}
	for _, m := range mul {
		for name, op := range map[string]func(x, y Element) (Element, error){
			"Mul": Mul, "Add": Add, "Div": Div, "Sub": Sub,
		} {
			z, err := op(m.x, m.y)
			require.NoError(t, err)
			assert.True(t, G.Equal(z, m.z), "%s(%v, %v)", name, m.x, m.y)
		}
	}
	for _, x := range elems {
		y, err := Inv(x)
		require.NoError(t, err)
		assert.True(t, G.Equal(x, y))
		y, err = Neg(x)
		require.NoError(t, err)
		assert.True(t, G.Equal(x, y))
	}

	x := a
	require.NoError(t, x.SetZero())
	assert.True(t, G.IsZero(x))
	require.NoError(t, x.SetOne())
	assert.True(t, G.IsOne(x))
}

func TestGroupProductElement(t *testing.T) {
	S2, err := NewSymmetricGroup(2)
	require.NoError(t, err)
	S3, err := NewSymmetricGroup(3)
	require.NoError(t, err)
	G, err := NewGroupProduct(S2, S3)
	require.NoError(t, err)
	assert.False(t, G.IsAbelian())

	x2 := S2.One()
	x3 := S3.One()
	_, err = G.Element([]Element{x2})
	assert.True(t, ErrInvalidArgument.Is(err))
	_, err = G.Element([]Element{x3, x2})
	assert.True(t, ErrInvalidArgument.Is(err))
	_, err = G.Element([]Element{x2, {}})
	assert.True(t, ErrInvalidArgument.Is(err))

	other, err := NewSymmetricGroup(3)
	require.NoError(t, err)
	_, err = G.Element([]Element{x2, other.One()})
	assert.True(t, ErrInvalidArgument.Is(err))
}

func TestGroupProductInputOutput(t *testing.T) {
	S2, err := NewSymmetricGroup(2)
	require.NoError(t, err)
	S3, err := NewSymmetricGroup(3)
	require.NoError(t, err)
	G, err := NewGroupProduct(S2, S3)
	require.NoError(t, err)

	roundTrip := func(t *testing.T) {
		for _, v2 := range permutations(2) {
			for _, v3 := range permutations(3) {
				x, err := G.Element([]Element{snElement(t, S2, v2...), snElement(t, S3, v3...)})
				require.NoError(t, err)
				var sb strings.Builder
				require.NoError(t, Fprint(&sb, x))
				y := G.One()
				s := NewScanner(strings.NewReader(sb.String()))
				require.True(t, Scan(s, &y), sb.String())
				assert.True(t, G.Equal(x, y))
			}
		}
	}

	t.Run("DefaultSeparator", roundTrip)
	t.Run("Separator", func(t *testing.T) {
		G.SetSeparator(" ; ")
		defer G.SetSeparator(" ")
		assert.Equal(t, " ; ", G.Separator())
		x, err := G.Element([]Element{snElement(t, S2, 1, 0), S3.One()})
		require.NoError(t, err)
		assert.Equal(t, "2 1 0 ; 3 0 1 2", x.String())
		roundTrip(t)

		y := G.One()
		s := NewScanner(strings.NewReader("2 1 0;3 2 1 0"))
		require.True(t, Scan(s, &y))
		assert.Equal(t, []int{2, 1, 0}, S3.Value(G.Value(y)[1]))
	})

	for _, in := range []string{"", "2 0 1 3 0 1 3", "2 0 1", "2 0 1 2 0 1"} {
		y := G.One()
		s := NewScanner(strings.NewReader(in))
		assert.False(t, Scan(s, &y), in)
		assert.True(t, G.IsOne(y), "failed input modified its target")
	}
}

func TestProduct(t *testing.T) {
	Z2, err := NewIntegersMod(2)
	require.NoError(t, err)
	Z3, err := NewIntegersMod(3)
	require.NoError(t, err)
	P, err := NewProduct(Z2, Z3)
	require.NoError(t, err)
	assert.False(t, IsGroup(P))
	assert.True(t, P.IsAbelian())
	assert.Equal(t, 2, P.Len())
	assert.Equal(t, Structure(Z3), P.Component(1))

	zn := func(A *IntegersMod, v int) Element {
		x, err := A.Element(v)
		require.NoError(t, err)
		return x
	}
	e1, err := P.Element([]Element{zn(Z2, 0), zn(Z3, 0)})
	require.NoError(t, err)
	e2, err := P.Element([]Element{zn(Z2, 1), zn(Z3, 2)})
	require.NoError(t, err)
	assert.Equal(t, "0 0", e1.String())
	assert.Equal(t, "1 2", e2.String())
	s, err := Add(e1, e2)
	require.NoError(t, err)
	assert.Equal(t, "1 2", s.String())

	// Z/2 x Z/3 is cyclic of order 6, generated by (1, 1).
	g, err := P.Element([]Element{zn(Z2, 1), zn(Z3, 1)})
	require.NoError(t, err)
	for k := 1; k <= 6; k++ {
		m, err := Times(g, k)
		require.NoError(t, err)
		assert.Equal(t, k == 6, P.IsZero(m), "k=%d", k)
	}

	n, err := Neg(e2)
	require.NoError(t, err)
	assert.Equal(t, "1 1", n.String())

	_, err = Inv(e2)
	require.NoError(t, err)
	_, err = Inv(e1)
	assert.True(t, ErrInvalidOperation.Is(err))

	p, err := Mul(e2, e2)
	require.NoError(t, err)
	assert.Equal(t, "1 1", p.String())
	assert.True(t, P.IsOne(p))
}

func TestProductReset(t *testing.T) {
	Z2, err := NewIntegersMod(2)
	require.NoError(t, err)
	Z3, err := NewIntegersMod(3)
	require.NoError(t, err)
	S2, err := NewSymmetricGroup(2)
	require.NoError(t, err)
	S3, err := NewSymmetricGroup(3)
	require.NoError(t, err)

	P, err := NewProduct(Z2, Z3)
	require.NoError(t, err)
	a, err := Z2.Element(1)
	require.NoError(t, err)
	b, err := Z3.Element(2)
	require.NoError(t, err)
	e, err := P.Element([]Element{a, b})
	require.NoError(t, err)

	require.NoError(t, P.Reset(S2, S3))
	assert.Equal(t, "2 0 1 3 0 1 2", P.One().String())

	t.Run("StaleElements", func(t *testing.T) {
		assert.False(t, e.IsValid())
		assert.Equal(t, "<invalid>", e.String())

		_, err := Mul(e, P.One())
		assert.True(t, ErrIncompatibleOperand.Is(err))
		_, err = Add(P.One(), e)
		assert.True(t, ErrIncompatibleOperand.Is(err))
		_, err = Equal(e, P.One())
		assert.True(t, ErrIncompatibleOperand.Is(err))
		_, err = IsOne(e)
		assert.True(t, ErrIncompatibleOperand.Is(err))
		_, err = Inv(e)
		assert.True(t, ErrIncompatibleOperand.Is(err))
		_, err = Times(e, 3)
		assert.True(t, ErrIncompatibleOperand.Is(err))
	})

	t.Run("BackToOldComponents", func(t *testing.T) {
		require.NoError(t, P.Reset(Z2, Z3))
		require.True(t, e.IsValid())
		assert.Equal(t, "1 2", e.String())
		z, err := Add(e, e)
		require.NoError(t, err)
		assert.Equal(t, "0 1", z.String())
	})

	t.Run("ComponentReset", func(t *testing.T) {
		G, err := NewGroupProduct(S3, S2)
		require.NoError(t, err)
		x := G.One()
		require.NoError(t, S3.Reset(4))
		assert.False(t, x.IsValid())
		_, err = Mul(x, G.One())
		assert.True(t, ErrIncompatibleOperand.Is(err))
		assert.Equal(t, "4 0 1 2 3 2 0 1", G.One().String())
	})
}
