package algebra

import (
	"io"
	"slices"
	"strconv"
	"strings"

	log "github.com/sirupsen/logrus"
)

// Strings is the free semigroup of strings over a finite alphabet of
// lowercase letters. Multiplication is concatenation and the empty string
// is the identity. Strings have no inverses.
type Strings struct {
	SemigroupBase
	alphabet string
}

// NewStrings returns the free semigroup over the letters of alphabet.
// Repeated letters are ignored.
func NewStrings(alphabet string) (*Strings, error) {
	letters := []rune(alphabet)
	for _, c := range letters {
		if c < 'a' || c > 'z' {
			return nil, ErrInvalidArgument.New("alphabet letter " + strconv.QuoteRune(c) + " is not lowercase")
		}
	}
	slices.Sort(letters)
	letters = slices.Compact(letters)

	m := &Strings{alphabet: string(letters)}
	m.SemigroupBase = SemigroupBase{m}
	log.Debugf("free semigroup over %q", m.alphabet)
	return m, nil
}

// Alphabet returns the sorted alphabet.
func (m *Strings) Alphabet() string {
	return m.alphabet
}

// Element returns the element s. It fails if s has a letter outside the
// alphabet.
func (m *Strings) Element(s string) (Element, error) {
	if !m.isWord(s) {
		return Element{}, ErrInvalidArgument.New(strconv.Quote(s) + " is not a word over " + strconv.Quote(m.alphabet))
	}
	return bind(m, Word(s)), nil
}

// Value returns the string held by x.
func (m *Strings) Value(x Element) string {
	return string(x.v.(Word))
}

func (m *Strings) isWord(s string) bool {
	for _, c := range s {
		if !strings.ContainsRune(m.alphabet, c) {
			return false
		}
	}
	return true
}

func (m *Strings) Mul(x, y Element) Element {
	return bind(m, x.v.(Word)+y.v.(Word))
}

func (m *Strings) One() Element {
	return bind(m, Word(""))
}

func (m *Strings) IsOne(x Element) bool {
	return x.v.(Word) == ""
}

func (m *Strings) Equal(x, y Element) bool {
	return x.v.(Word) == y.v.(Word)
}

func (m *Strings) Output(w io.Writer, x Element) error {
	_, err := io.WriteString(w, string(x.v.(Word)))
	return err
}

// Input reads a token of alphabet letters. An empty field ended by a
// delimiter reads as the identity; running out of input does not.
func (m *Strings) Input(s *Scanner, x *Element) {
	tok := s.Token()
	if s.Failed() {
		return
	}
	if tok == "" && s.AtEnd() {
		s.Fail(ErrInvalidArgument.New("unexpected end of input"))
		return
	}
	if !m.isWord(tok) {
		s.Fail(ErrInvalidArgument.New(strconv.Quote(tok) + " is not a word over " + strconv.Quote(m.alphabet)))
		return
	}
	*x = bind(m, Word(tok))
}

// IsAbelian reports whether the alphabet has at most one letter.
func (m *Strings) IsAbelian() bool {
	return len(m.alphabet) <= 1
}

func (m *Strings) ElementType() Kind {
	return KindWord
}
