package query

import (
	"github.com/midbel/twig/tree"
)

// value is one slot of the pool. Only the field selected by tag is
// meaningful.
type value struct {
	tag     Type
	nodes   []*tree.Node
	num     int
	str     string
	boolean bool
}

// The two canonical boolean slots: pushing a boolean is just pushing
// one of these handles.
const (
	falseValue uint32 = iota
	trueValue
)

func makePool() []value {
	pool := make([]value, 2, 8)
	pool[falseValue] = value{tag: TypeBoolean, boolean: false}
	pool[trueValue] = value{tag: TypeBoolean, boolean: true}
	return pool
}

// makeValue interns a fresh slot of the given type and returns its
// handle. Handles stay valid while the pool grows.
func (s *state) makeValue(tag Type) uint32 {
	s.pool = append(s.pool, value{tag: tag})
	return uint32(len(s.pool) - 1)
}

func (s *state) pushValue(vind uint32) {
	s.values = append(s.values, vind)
}

func (s *state) pushBool(b bool) {
	if b {
		s.pushValue(trueValue)
	} else {
		s.pushValue(falseValue)
	}
}

// popValue returns a copy of the slot so that callers never hold a
// reference across a pool growth.
func (s *state) popValue() value {
	if len(s.values) == 0 {
		s.fail(CodeInternal)
		return value{}
	}
	vind := s.values[len(s.values)-1]
	s.values = s.values[:len(s.values)-1]
	return s.pool[vind]
}

func (s *state) pushExpr(e expr) {
	s.exprs = append(s.exprs, e)
}

func (s *state) popExpr() expr {
	if len(s.exprs) == 0 {
		s.fail(CodeInternal)
		return nil
	}
	e := s.exprs[len(s.exprs)-1]
	s.exprs = s.exprs[:len(s.exprs)-1]
	return e
}
