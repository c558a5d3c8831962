package query

import (
	"strings"

	"github.com/midbel/twig/tree"
)

const (
	slash    = '/'
	lsquare  = '['
	rsquare  = ']'
	lparen   = '('
	rparen   = ')'
	quote    = '"'
	apos     = '\''
	equal    = '='
	bang     = '!'
	plus     = '+'
	dash     = '-'
	star     = '*'
	dot      = '.'
	comma    = ','
	backstep = '\\'
)

// state is shared by the parser and the evaluator: the sticky error
// code, the cursor over the expression text, the evaluation context
// and the three growable structures (value pool, value stack,
// expression stack).
type state struct {
	err error
	txt string
	pos int

	ctx    *tree.Node
	ctxPos int
	ctxLen int

	pool   []value
	values []uint32
	exprs  []expr

	Tracer
}

func newState(txt string) *state {
	return &state{
		txt:    txt,
		pool:   makePool(),
		Tracer: discardTracer{},
	}
}

// fail records the first error only; later failures keep the original
// code and offset.
func (s *state) fail(code ErrCode) {
	if s.err != nil {
		return
	}
	s.err = &ParseError{
		Code:   code,
		Text:   s.txt,
		Offset: s.pos,
	}
}

func (s *state) bad() bool {
	return s.err != nil
}

func (s *state) done() bool {
	return s.pos >= len(s.txt)
}

func (s *state) char() byte {
	if s.done() {
		return 0
	}
	return s.txt[s.pos]
}

func (s *state) charAt(off int) byte {
	if s.pos+off >= len(s.txt) {
		return 0
	}
	return s.txt[s.pos+off]
}

func (s *state) skipBlank() {
	for !s.done() && isBlank(s.char()) {
		s.pos++
	}
}

// match skips blanks and consumes c when it is the next character.
func (s *state) match(c byte) bool {
	s.skipBlank()
	if s.done() {
		return false
	}
	if s.char() == c {
		s.pos++
		return true
	}
	return false
}

func (s *state) peek(chars string) bool {
	if s.done() {
		return false
	}
	return strings.IndexByte(chars, s.char()) >= 0
}

// lookingAt reports whether the cursor sits on token, followed by
// optional blanks, followed by follow. On a match the cursor is moved
// past follow; otherwise it is left untouched.
func (s *state) lookingAt(token, follow string) bool {
	rest := s.txt[s.pos:]
	if !strings.HasPrefix(rest, token) {
		return false
	}
	p := s.pos + len(token)
	for p < len(s.txt) && isBlank(s.txt[p]) {
		p++
	}
	if !strings.HasPrefix(s.txt[p:], follow) {
		return false
	}
	s.pos = p + len(follow)
	return true
}

func isBlank(c byte) bool {
	switch c {
	case ' ', '\t', '\n', '\v', '\f', '\r':
		return true
	default:
		return false
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

func isAlpha(c byte) bool {
	return (c >= 'a' && c <= 'z') || (c >= 'A' && c <= 'Z')
}
