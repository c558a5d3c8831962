package query

// The checker walks the tree bottom-up and assigns a type to every
// expression. There are no implicit coercions: any mismatch is a type
// error and stops the walk.

func (s *state) checkExpr(e expr) {
	if s.bad() {
		return
	}
	switch e := e.(type) {
	case *locpath:
		s.checkLocpath(e)
	case *binary:
		s.checkBinary(e)
	case *valueref:
		e.kind = s.pool[e.index].tag
	case *call:
		s.checkCall(e)
	default:
		s.fail(CodeInternal)
	}
}

// A predicate is a function of one of the following types:
//
//	nodeset -> boolean
//	number  -> boolean (position test)
//	boolean -> boolean
func (s *state) checkLocpath(e *locpath) {
	for _, st := range e.steps {
		for _, p := range st.preds {
			s.checkExpr(p)
			if s.bad() {
				return
			}
			switch p.resultType() {
			case TypeNodeset, TypeNumber, TypeBoolean:
			default:
				s.fail(CodeType)
				return
			}
		}
	}
	e.kind = TypeNodeset
}

// Type rules for the binary operators:
//
//	'=', '!='     : both sides nodeset or string, or both number -> boolean
//	'+', '-', '*' : number -> number -> number
func (s *state) checkBinary(e *binary) {
	s.checkExpr(e.left)
	s.checkExpr(e.right)
	if s.bad() {
		return
	}
	var (
		l  = e.left.resultType()
		r  = e.right.resultType()
		ok bool
	)
	switch e.op {
	case opEq, opNe:
		ok = ((l == TypeNodeset || l == TypeString) && (r == TypeNodeset || r == TypeString)) ||
			(l == TypeNumber && r == TypeNumber)
		e.kind = TypeBoolean
	case opAdd, opSub, opMul:
		ok = l == TypeNumber && r == TypeNumber
		e.kind = TypeNumber
	default:
		s.fail(CodeInternal)
		return
	}
	if !ok {
		s.fail(CodeType)
	}
}

func (s *state) checkCall(e *call) {
	for i, a := range e.args {
		s.checkExpr(a)
		if s.bad() {
			return
		}
		if a.resultType() != e.fn.args[i] {
			s.fail(CodeType)
			return
		}
	}
	e.kind = e.fn.ret
}
