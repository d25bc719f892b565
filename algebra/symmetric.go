package algebra

import (
	"io"
	"slices"
	"strconv"

	log "github.com/sirupsen/logrus"

	"github.com/takakv/algebra/util"
)

// SymmetricGroup is the group S_n of permutations of {0, 1, ..., n-1}. The
// product of two permutations is composition with the right factor applied
// first, (xy)[i] = x[y[i]], and the inverse z of x satisfies z[x[i]] = i.
type SymmetricGroup struct {
	GroupBase
	n   int
	one Permutation
}

// NewSymmetricGroup returns S_n for n >= 1.
func NewSymmetricGroup(n int) (*SymmetricGroup, error) {
	g := &SymmetricGroup{}
	g.GroupBase = GroupBase{g}
	if err := g.Reset(n); err != nil {
		return nil, err
	}
	return g, nil
}

// Reset reconfigures g as S_n. Earlier elements on a different number of
// letters become invalid; those on n letters are not revalidated.
func (g *SymmetricGroup) Reset(n int) error {
	if n < 1 {
		return ErrInvalidArgument.New("S_n needs n >= 1, got " + strconv.Itoa(n))
	}
	g.n = n
	g.one = util.Identity(n)
	log.Debugf("symmetric group S_%d; earlier elements are not revalidated", n)
	return nil
}

// N returns the number of letters permuted.
func (g *SymmetricGroup) N() int {
	return g.n
}

// Element returns the permutation v. It fails unless v is a permutation of
// 0, 1, ..., n-1.
func (g *SymmetricGroup) Element(v []int) (Element, error) {
	if len(v) != g.n || !util.IsPermutation(v) {
		return Element{}, ErrInvalidArgument.New("not a permutation of " + strconv.Itoa(g.n) + " letters")
	}
	return bind(g, Permutation(slices.Clone(v))), nil
}

// Value returns a copy of the permutation held by x.
func (g *SymmetricGroup) Value(x Element) []int {
	return slices.Clone(x.v.(Permutation))
}

func (g *SymmetricGroup) Mul(x, y Element) Element {
	xp := x.v.(Permutation)
	yp := y.v.(Permutation)
	z := make(Permutation, g.n)
	for i := range z {
		z[i] = xp[yp[i]]
	}
	return bind(g, z)
}

func (g *SymmetricGroup) One() Element {
	return bind(g, g.one)
}

func (g *SymmetricGroup) Inv(x Element) (Element, error) {
	xp := x.v.(Permutation)
	z := make(Permutation, g.n)
	for i, xi := range xp {
		z[xi] = i
	}
	return bind(g, z), nil
}

func (g *SymmetricGroup) IsOne(x Element) bool {
	return slices.Equal(x.v.(Permutation), g.one)
}

func (g *SymmetricGroup) Equal(x, y Element) bool {
	return slices.Equal(x.v.(Permutation), y.v.(Permutation))
}

// Output writes n followed by the images of 0, ..., n-1.
func (g *SymmetricGroup) Output(w io.Writer, x Element) error {
	buf := strconv.AppendInt(nil, int64(g.n), 10)
	for _, v := range x.v.(Permutation) {
		buf = append(buf, ' ')
		buf = strconv.AppendInt(buf, int64(v), 10)
	}
	_, err := w.Write(buf)
	return err
}

// Input reads the form written by Output. It fails if the leading count is
// not n or the images do not form a permutation.
func (g *SymmetricGroup) Input(s *Scanner, x *Element) {
	n, ok := s.Int()
	if !ok {
		return
	}
	if n != g.n {
		s.Fail(ErrInvalidArgument.New("permutation of " + strconv.Itoa(n) + " letters in S_" + strconv.Itoa(g.n)))
		return
	}
	z := make(Permutation, n)
	for i := range z {
		if z[i], ok = s.Int(); !ok {
			return
		}
	}
	if !util.IsPermutation(z) {
		s.Fail(ErrInvalidArgument.New("not a permutation"))
		return
	}
	*x = bind(g, z)
}

func (g *SymmetricGroup) holds(v Value) bool {
	return len(v.(Permutation)) == g.n
}

// IsAbelian reports whether n < 3.
func (g *SymmetricGroup) IsAbelian() bool {
	return g.n < 3
}

func (g *SymmetricGroup) ElementType() Kind {
	return KindPermutation
}
