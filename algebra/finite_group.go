package algebra

import (
	"io"
	"strconv"

	log "github.com/sirupsen/logrus"

	"github.com/takakv/algebra/util"
)

// FiniteGroup is a group {0, 1, ..., n-1} given by its Cayley table, with
// xy = table[x][y] and 0 the identity.
type FiniteGroup struct {
	GroupBase
	n       int
	table   [][]int
	abelian bool
}

// NewFiniteGroup validates table and returns the group it defines. The
// table must be square and non-empty, its first row and column must both
// be 0, 1, ..., n-1, every row and column must be a permutation of
// 0, 1, ..., n-1, and the operation must be associative.
func NewFiniteGroup(table [][]int) (*FiniteGroup, error) {
	n := len(table)
	if n < 1 {
		return nil, ErrInvalidArgument.New("empty Cayley table")
	}
	t := make([][]int, n)
	for i, row := range table {
		if len(row) != n {
			return nil, ErrInvalidArgument.New("Cayley table is not square")
		}
		t[i] = append([]int(nil), row...)
	}
	if err := checkTable(t); err != nil {
		return nil, err
	}

	g := &FiniteGroup{n: n, table: t, abelian: true}
	g.GroupBase = GroupBase{g}
	for i := 0; g.abelian && i < n; i++ {
		for j := i + 1; j < n; j++ {
			if t[i][j] != t[j][i] {
				g.abelian = false
				break
			}
		}
	}
	log.Debugf("finite group of order %d, abelian %t", n, g.abelian)
	return g, nil
}

func checkTable(t [][]int) error {
	n := len(t)
	for i := 0; i < n; i++ {
		if t[0][i] != i || t[i][0] != i {
			return ErrInvalidArgument.New("0 is not the identity of the Cayley table")
		}
	}
	col := make([]int, n)
	for i := 1; i < n; i++ {
		if !util.IsPermutation(t[i]) {
			return ErrInvalidArgument.New("row " + strconv.Itoa(i) + " is not a permutation")
		}
		for j := range col {
			col[j] = t[j][i]
		}
		if !util.IsPermutation(col) {
			return ErrInvalidArgument.New("column " + strconv.Itoa(i) + " is not a permutation")
		}
	}
	for i := 0; i < n; i++ {
		for j := 0; j < n; j++ {
			for k := 0; k < n; k++ {
				if t[t[i][j]][k] != t[i][t[j][k]] {
					return ErrInvalidArgument.New("operation is not associative")
				}
			}
		}
	}
	return nil
}

// Order returns the number of elements.
func (g *FiniteGroup) Order() int {
	return g.n
}

// Table returns a copy of the Cayley table.
func (g *FiniteGroup) Table() [][]int {
	t := make([][]int, g.n)
	for i, row := range g.table {
		t[i] = append([]int(nil), row...)
	}
	return t
}

// Element returns the element x, 0 <= x < n.
func (g *FiniteGroup) Element(x int) (Element, error) {
	if x < 0 || x >= g.n {
		return Element{}, ErrInvalidArgument.New(strconv.Itoa(x) + " is not in a group of order " + strconv.Itoa(g.n))
	}
	return bind(g, Int(x)), nil
}

// Value returns the integer held by x.
func (g *FiniteGroup) Value(x Element) int {
	return int(x.v.(Int))
}

func (g *FiniteGroup) Mul(x, y Element) Element {
	return bind(g, Int(g.table[x.v.(Int)][y.v.(Int)]))
}

func (g *FiniteGroup) One() Element {
	return bind(g, Int(0))
}

// Inv looks up the column holding the identity in x's row.
func (g *FiniteGroup) Inv(x Element) (Element, error) {
	row := g.table[x.v.(Int)]
	for i, v := range row {
		if v == 0 {
			return bind(g, Int(i)), nil
		}
	}
	return Element{}, ErrRuntime.New("no inverse in Cayley table row " + strconv.Itoa(int(x.v.(Int))))
}

func (g *FiniteGroup) IsOne(x Element) bool {
	return x.v.(Int) == 0
}

func (g *FiniteGroup) Equal(x, y Element) bool {
	return x.v.(Int) == y.v.(Int)
}

func (g *FiniteGroup) Output(w io.Writer, x Element) error {
	_, err := io.WriteString(w, strconv.Itoa(int(x.v.(Int))))
	return err
}

func (g *FiniteGroup) Input(s *Scanner, x *Element) {
	v, ok := s.Int()
	if !ok {
		return
	}
	if v < 0 || v >= g.n {
		s.Fail(ErrInvalidArgument.New(strconv.Itoa(v) + " is not in a group of order " + strconv.Itoa(g.n)))
		return
	}
	*x = bind(g, Int(v))
}

func (g *FiniteGroup) IsAbelian() bool {
	return g.abelian
}

func (g *FiniteGroup) ElementType() Kind {
	return KindInt
}
