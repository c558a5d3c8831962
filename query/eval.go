package query

import (
	"github.com/midbel/twig/tree"
)

type builtin struct {
	name  string
	arity int
	ret   Type
	args  []Type
	impl  func(*state)
}

var builtins = []builtin{
	{name: "last", ret: TypeNumber, impl: funcLast},
	{name: "position", ret: TypeNumber, impl: funcPosition},
}

func funcLast(s *state) {
	vind := s.makeValue(TypeNumber)
	s.pool[vind].num = s.ctxLen
	s.pushValue(vind)
}

func funcPosition(s *state) {
	vind := s.makeValue(TypeNumber)
	s.pool[vind].num = s.ctxPos
	s.pushValue(vind)
}

// Evaluation is a post-order walk pushing results on the value stack.
func (s *state) evalExpr(e expr) {
	if s.bad() {
		return
	}
	switch e := e.(type) {
	case *locpath:
		s.evalLocpath(e)
	case *binary:
		s.evalBinary(e)
	case *valueref:
		s.pushValue(e.index)
	case *call:
		s.evalCall(e)
	default:
		s.fail(CodeInternal)
	}
}

func (s *state) evalBinary(e *binary) {
	s.evalExpr(e.left)
	s.evalExpr(e.right)
	if s.bad() {
		return
	}
	switch e.op {
	case opEq:
		s.evalEq(false)
	case opNe:
		s.evalEq(true)
	case opAdd, opSub, opMul:
		s.evalArith(e.op)
	default:
		s.fail(CodeInternal)
	}
}

func (s *state) evalEq(neq bool) {
	var (
		r   = s.popValue()
		l   = s.popValue()
		res bool
	)
	if s.bad() {
		return
	}
	switch {
	case l.tag == TypeNodeset && r.tag == TypeNodeset:
		res = eqNodesetNodeset(l.nodes, r.nodes, neq)
	case l.tag == TypeNodeset:
		res = eqNodesetString(l.nodes, r.str, neq)
	case r.tag == TypeNodeset:
		res = eqNodesetString(r.nodes, l.str, neq)
	case l.tag == TypeNumber && r.tag == TypeNumber:
		res = (l.num == r.num) != neq
	default:
		res = streq(l.str, r.str) != neq
	}
	s.pushBool(res)
}

// Node-set comparisons have exists-a-match semantics: an empty operand
// yields false for both operators.
func eqNodesetNodeset(left, right []*tree.Node, neq bool) bool {
	for _, l := range left {
		for _, r := range right {
			if streq(l.Value(), r.Value()) != neq {
				return true
			}
		}
	}
	return false
}

func eqNodesetString(nodes []*tree.Node, str string, neq bool) bool {
	for _, n := range nodes {
		if streq(n.Value(), str) != neq {
			return true
		}
	}
	return false
}

// streq with absent strings represented as "" is plain equality.
func streq(s1, s2 string) bool {
	return s1 == s2
}

func (s *state) evalArith(op binaryOp) {
	var (
		r = s.popValue()
		l = s.popValue()
	)
	if s.bad() {
		return
	}
	vind := s.makeValue(TypeNumber)
	var res int
	switch op {
	case opAdd:
		res = l.num + r.num
	case opSub:
		res = l.num - r.num
	case opMul:
		res = l.num * r.num
	}
	s.pool[vind].num = res
	s.pushValue(vind)
}

func (s *state) evalCall(e *call) {
	for _, a := range e.args {
		s.evalExpr(a)
		if s.bad() {
			return
		}
	}
	e.fn.impl(s)
}

func (s *state) evalPred(e expr) bool {
	s.evalExpr(e)
	v := s.popValue()
	if s.bad() {
		return false
	}
	switch v.tag {
	case TypeBoolean:
		return v.boolean
	case TypeNumber:
		return s.ctxPos == v.num
	case TypeNodeset:
		return len(v.nodes) > 0
	default:
		s.fail(CodeInternal)
		return false
	}
}

// nsFromLocpath returns one working node-set per step plus the seed
// set: index 0 holds the context node, the last index the nodes that
// matched the whole path.
func (s *state) nsFromLocpath(lp *locpath) [][]*tree.Node {
	var (
		oldCtx = s.ctx
		oldPos = s.ctxPos
		oldLen = s.ctxLen
	)
	ns := make([][]*tree.Node, len(lp.steps)+1)
	ns[0] = []*tree.Node{s.ctx}
	for i, st := range lp.steps {
		var next []*tree.Node
		for _, w := range ns[i] {
			for n := stepFirst(st, w); n != nil; n = stepNext(st, w, n) {
				next = append(next, n)
			}
		}
		s.Expand(st.axis.String(), st.name, len(next))
		// working sets are not deduplicated: overlapping subtrees can
		// yield the same node more than once
		for _, p := range st.preds {
			s.ctxLen = len(next)
			s.ctxPos = 1
			for j := 0; j < len(next); s.ctxPos++ {
				s.ctx = next[j]
				if s.evalPred(p) {
					j++
				} else {
					next = append(next[:j], next[j+1:]...)
				}
			}
			if s.bad() {
				return nil
			}
			s.Filter(s.ctxLen, len(next))
		}
		ns[i+1] = next
	}
	s.ctx = oldCtx
	s.ctxPos = oldPos
	s.ctxLen = oldLen
	return ns
}

func (s *state) evalLocpath(lp *locpath) {
	ns := s.nsFromLocpath(lp)
	if s.bad() {
		return
	}
	vind := s.makeValue(TypeNodeset)
	s.pool[vind].nodes = ns[len(ns)-1]
	s.pushValue(vind)
}
