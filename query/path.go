// Package query compiles path expressions, loosely modelled on XPath,
// and runs them against labelled trees. A compiled Path owns its
// parsed form and the values produced while running it; the tree is
// only borrowed and must outlive the Path.
package query

import (
	"github.com/midbel/twig/tree"
)

type Path struct {
	state  *state
	loc    *locpath
	origin *tree.Node

	nodes []*tree.Node
	node  int
	ready bool
}

// Parse compiles text into a Path bound to the given origin node. A
// rejected expression yields a *ParseError carrying the failure code
// and the byte offset reached by the cursor. A nil origin is allowed
// for compile-only use; such a path never matches anything.
func Parse(origin *tree.Node, text string) (*Path, error) {
	return ParseWith(origin, text, nil)
}

func ParseWith(origin *tree.Node, text string, tracer Tracer) (*Path, error) {
	s := newState(text)
	if tracer != nil {
		s.Tracer = tracer
	}
	s.parseExpr()
	if s.bad() {
		return nil, s.err
	}
	s.skipBlank()
	if !s.done() {
		s.fail(CodeSlash)
		return nil, s.err
	}
	if len(s.exprs) != 1 {
		s.fail(CodeInternal)
		return nil, s.err
	}
	root := s.exprs[0]
	s.checkExpr(root)
	if s.bad() {
		return nil, s.err
	}
	lp, ok := root.(*locpath)
	if !ok || root.resultType() != TypeNodeset {
		s.fail(CodeType)
		return nil, s.err
	}
	p := &Path{
		state:  s,
		loc:    lp,
		origin: origin,
	}
	return p, nil
}

// First evaluates the path against its origin on first use and
// positions the cursor on the first result. The result set keeps the
// expansion order of evaluation and is not deduplicated.
func (p *Path) First() *tree.Node {
	if !p.ready {
		if p.origin == nil {
			return nil
		}
		s := p.state
		s.ctx = p.origin
		s.ctxPos = 1
		s.ctxLen = 1
		s.evalExpr(p.loc)
		if s.bad() {
			return nil
		}
		if len(s.values) != 1 {
			s.fail(CodeInternal)
			return nil
		}
		v := s.popValue()
		p.nodes = v.nodes
		p.ready = true
	}
	p.node = 0
	if len(p.nodes) == 0 {
		return nil
	}
	return p.nodes[0]
}

// Next advances the cursor. It returns nil once the results are
// exhausted, and before First has been called.
func (p *Path) Next() *tree.Node {
	if !p.ready {
		return nil
	}
	if p.node+1 < len(p.nodes) {
		p.node++
		return p.nodes[p.node]
	}
	return nil
}

// Err reports an invariant violation hit while evaluating. Syntax and
// type errors are already reported by Parse.
func (p *Path) Err() error {
	return p.state.err
}

// ErrorContext returns the reporting triple of the sticky error: a
// message, the expression text and the byte offset.
func (p *Path) ErrorContext() (string, string, int) {
	if e, ok := p.state.err.(*ParseError); ok {
		return e.ErrorContext()
	}
	if p.state.err != nil {
		return p.state.err.Error(), p.state.txt, p.state.pos
	}
	return CodeNone.String(), p.state.txt, p.state.pos
}

// FindOne returns the single matching node. It fails with ErrNoMatch
// when nothing matches and ErrMultiple when more than one node does.
func (p *Path) FindOne() (*tree.Node, error) {
	node := p.First()
	if node == nil {
		if err := p.Err(); err != nil {
			return nil, err
		}
		return nil, ErrNoMatch
	}
	if p.Next() != nil {
		return nil, ErrMultiple
	}
	return node, nil
}

// Expand materialises the branches implied by the path that are
// missing from the tree. The deepest non-empty working set anchors the
// expansion; every remaining step must be a named child step. It
// returns the deepest node, newly created or already present. A
// partially created subtree is detached again on failure.
func (p *Path) Expand() (*tree.Node, error) {
	anchor, rest, err := p.search()
	if err != nil {
		return nil, err
	}
	if len(rest) == 0 {
		return anchor, nil
	}
	var (
		first  *tree.Node
		parent = anchor
	)
	for _, st := range rest {
		if st.axis != axisChild || st.name == "" {
			if first != nil {
				first.Detach()
			}
			return nil, ErrBadPath
		}
		parent = parent.AppendChild(st.name)
		if first == nil {
			first = parent
		}
	}
	return parent, nil
}

// search runs the step expansion and returns the deepest non-empty
// working set together with the steps left over from that depth.
func (p *Path) search() (*tree.Node, []*step, error) {
	if p.origin == nil {
		return nil, nil, ErrNoMatch
	}
	s := p.state
	s.ctx = p.origin
	ns := s.nsFromLocpath(p.loc)
	if s.bad() {
		return nil, nil, s.err
	}
	last := len(ns) - 1
	for last >= 0 && len(ns[last]) == 0 {
		last--
	}
	if last < 0 {
		return p.origin, p.loc.steps, nil
	}
	if len(ns[last]) > 1 {
		return nil, nil, ErrMultiple
	}
	return ns[last][0], p.loc.steps[last:], nil
}
