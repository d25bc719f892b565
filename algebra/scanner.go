package algebra

import (
	"bufio"
	"io"
	"strconv"
	"strings"
	"unicode"
)

// Scanner reads whitespace separated element text. Like an input stream it
// has a sticky failure state: once a read fails every later read fails
// until Clear is called.
type Scanner struct {
	r      *bufio.Reader
	err    error
	delims string
}

// NewScanner returns a Scanner reading from r.
func NewScanner(r io.Reader) *Scanner {
	return &Scanner{r: bufio.NewReader(r)}
}

// Failed reports whether a read has failed.
func (s *Scanner) Failed() bool {
	return s.err != nil
}

// Err returns the cause of the failure, or nil.
func (s *Scanner) Err() error {
	return s.err
}

// Clear resets the failure state.
func (s *Scanner) Clear() {
	s.err = nil
}

// Fail puts s in the failed state. The first cause is kept.
func (s *Scanner) Fail(err error) {
	if s.err == nil {
		if err == nil {
			err = ErrInvalidArgument.New("malformed input")
		}
		s.err = err
	}
}

// Delimit makes the runes of sep end tokens, in addition to whitespace,
// and returns a function restoring the previous delimiters.
func (s *Scanner) Delimit(sep string) func() {
	prev := s.delims
	s.delims += strings.TrimSpace(sep)
	return func() { s.delims = prev }
}

func (s *Scanner) isDelim(r rune) bool {
	return unicode.IsSpace(r) || strings.ContainsRune(s.delims, r)
}

func (s *Scanner) skipSpace() {
	for {
		r, _, err := s.r.ReadRune()
		if err != nil {
			if err != io.EOF {
				s.Fail(err)
			}
			return
		}
		if !unicode.IsSpace(r) {
			_ = s.r.UnreadRune()
			return
		}
	}
}

// Token skips leading whitespace and returns the following run of
// non-delimiter runes. At end of input the token is empty and s does not
// fail; callers that need a token check for the empty string.
func (s *Scanner) Token() string {
	if s.Failed() {
		return ""
	}
	s.skipSpace()
	var sb strings.Builder
	for !s.Failed() {
		r, _, err := s.r.ReadRune()
		if err != nil {
			if err != io.EOF {
				s.Fail(err)
			}
			break
		}
		if s.isDelim(r) {
			_ = s.r.UnreadRune()
			break
		}
		sb.WriteRune(r)
	}
	return sb.String()
}

// AtEnd reports whether no input remains after the next whitespace.
func (s *Scanner) AtEnd() bool {
	if s.Failed() {
		return false
	}
	s.skipSpace()
	if _, _, err := s.r.ReadRune(); err != nil {
		return true
	}
	_ = s.r.UnreadRune()
	return false
}

// Int reads a decimal integer token.
func (s *Scanner) Int() (int, bool) {
	tok := s.Token()
	if s.Failed() {
		return 0, false
	}
	if tok == "" {
		s.Fail(ErrInvalidArgument.New("unexpected end of input"))
		return 0, false
	}
	v, err := strconv.Atoi(tok)
	if err != nil {
		s.Fail(ErrInvalidArgument.New("malformed integer " + strconv.Quote(tok)))
		return 0, false
	}
	return v, true
}

// Literal consumes lit after optional whitespace. A lit made only of
// whitespace always matches.
func (s *Scanner) Literal(lit string) bool {
	lit = strings.TrimSpace(lit)
	if s.Failed() {
		return false
	}
	if lit == "" {
		return true
	}
	s.skipSpace()
	for _, want := range lit {
		r, _, err := s.r.ReadRune()
		if err != nil || r != want {
			s.Fail(ErrInvalidArgument.New("expected " + strconv.Quote(lit)))
			return false
		}
	}
	return true
}
