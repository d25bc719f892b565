package algebra

import (
	"slices"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// permutations returns every permutation of 0, ..., n-1.
func permutations(n int) [][]int {
	if n == 0 {
		return [][]int{{}}
	}
	var ps [][]int
	for _, p := range permutations(n - 1) {
		for i := 0; i <= len(p); i++ {
			q := slices.Insert(slices.Clone(p), i, n-1)
			ps = append(ps, q)
		}
	}
	return ps
}

// naivePow multiplies x into the identity |n| times.
func naivePow(t *testing.T, x Element, n int) Element {
	y := x.Structure().One()
	z := x
	if n < 0 {
		var err error
		z, err = Inv(z)
		require.NoError(t, err)
		n = -n
	}
	for i := 0; i < n; i++ {
		require.NoError(t, y.Mul(z))
	}
	return y
}

func TestSymmetricGroup(t *testing.T) {
	for n := 1; n <= 5; n++ {
		G, err := NewSymmetricGroup(n)
		require.NoError(t, err)
		assert.True(t, IsGroup(G))
		assert.Equal(t, n < 3, G.IsAbelian())
		one := G.One()

		id, err := G.Element(G.Value(one))
		require.NoError(t, err)
		assert.True(t, G.Equal(id, one))

		for _, v := range permutations(n) {
			x, err := G.Element(v)
			require.NoError(t, err)
			assert.Equal(t, v, G.Value(x))

			z, err := Mul(one, x)
			require.NoError(t, err)
			assert.True(t, G.Equal(z, x))
			z, err = Mul(x, one)
			require.NoError(t, err)
			assert.True(t, G.Equal(z, x))

			y, err := Inv(x)
			require.NoError(t, err)
			z, err = Mul(x, y)
			require.NoError(t, err)
			assert.True(t, G.IsOne(z))
			z, err = Mul(y, x)
			require.NoError(t, err)
			assert.True(t, G.IsOne(z))

			u, err := Div(one, x)
			require.NoError(t, err)
			z, err = Mul(u, x)
			require.NoError(t, err)
			assert.True(t, G.IsOne(z))

			xx, err := Add(x, x)
			require.NoError(t, err)
			u, err = Sub(one, xx)
			require.NoError(t, err)
			z, err = Add(u, xx)
			require.NoError(t, err)
			assert.True(t, G.IsZero(z))

			for i := -2 * n; i <= 2*n; i++ {
				p, err := Pow(x, i)
				require.NoError(t, err)
				assert.True(t, G.Equal(p, naivePow(t, x, i)), "x=%v i=%d", v, i)
			}
		}

		v := G.Value(one)
		v[0]++
		_, err = G.Element(v)
		assert.True(t, ErrInvalidArgument.Is(err))
	}

	_, err := NewSymmetricGroup(0)
	assert.True(t, ErrInvalidArgument.Is(err))
}

func TestSymmetricGroupComposition(t *testing.T) {
	G, err := NewSymmetricGroup(3)
	require.NoError(t, err)
	x, err := G.Element([]int{1, 0, 2})
	require.NoError(t, err)
	y, err := G.Element([]int{2, 1, 0})
	require.NoError(t, err)

	z, err := Mul(x, y)
	require.NoError(t, err)
	assert.Equal(t, []int{2, 0, 1}, G.Value(z))
	z, err = Mul(y, x)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 0}, G.Value(z))
}

func TestSymmetricGroupInputOutput(t *testing.T) {
	for n := 1; n <= 5; n++ {
		G, err := NewSymmetricGroup(n)
		require.NoError(t, err)
		for _, v := range permutations(n) {
			x, err := G.Element(v)
			require.NoError(t, err)
			var sb strings.Builder
			require.NoError(t, Fprint(&sb, x))

			y := G.One()
			s := NewScanner(strings.NewReader(sb.String()))
			require.True(t, Scan(s, &y), sb.String())
			assert.True(t, G.Equal(x, y))
		}
	}

	G, err := NewSymmetricGroup(3)
	require.NoError(t, err)
	x, err := G.Element([]int{1, 2, 0})
	require.NoError(t, err)
	assert.Equal(t, "3 1 2 0", x.String())

	for _, in := range []string{"", "3 0 1 3", "301 2", "2 0 1", "3 0 1", "3 0 0 1"} {
		y := G.One()
		s := NewScanner(strings.NewReader(in))
		assert.False(t, Scan(s, &y), in)
		assert.True(t, G.IsOne(y), "failed input modified its target")
	}
}

func TestSymmetricGroupReset(t *testing.T) {
	G, err := NewSymmetricGroup(3)
	require.NoError(t, err)
	assert.Equal(t, 3, G.N())
	x, err := G.Element([]int{1, 0, 2})
	require.NoError(t, err)

	require.NoError(t, G.Reset(4))
	assert.Equal(t, 4, G.N())
	assert.Len(t, G.Value(G.One()), 4)
	// Old elements keep their old values.
	assert.Equal(t, []int{1, 0, 2}, G.Value(x))

	t.Run("StaleElements", func(t *testing.T) {
		assert.False(t, x.IsValid())
		assert.False(t, Compatible(G.One(), x))
		assert.Equal(t, "<invalid>", x.String())

		_, err := Mul(G.One(), x)
		assert.True(t, ErrIncompatibleOperand.Is(err))
		_, err = Mul(x, G.One())
		assert.True(t, ErrIncompatibleOperand.Is(err))
		_, err = Inv(x)
		assert.True(t, ErrIncompatibleOperand.Is(err))
		_, err = Pow(x, 2)
		assert.True(t, ErrIncompatibleOperand.Is(err))
		_, err = Equal(x, G.One())
		assert.True(t, ErrIncompatibleOperand.Is(err))
		_, err = IsOne(x)
		assert.True(t, ErrIncompatibleOperand.Is(err))
		y := G.One()
		assert.True(t, ErrIncompatibleOperand.Is(y.Mul(x)))

		// Elements on the current number of letters keep working.
		z, err := G.Element([]int{1, 2, 3, 0})
		require.NoError(t, err)
		w, err := Mul(G.One(), z)
		require.NoError(t, err)
		assert.True(t, G.Equal(w, z))
	})

	t.Run("SameLength", func(t *testing.T) {
		require.NoError(t, G.Reset(3))
		assert.True(t, x.IsValid())
		y, err := Mul(x, x)
		require.NoError(t, err)
		assert.True(t, G.IsOne(y))
		require.NoError(t, G.Reset(4))
	})

	assert.True(t, ErrInvalidArgument.Is(G.Reset(0)))
	assert.Equal(t, 4, G.N())
}
