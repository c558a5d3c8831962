package query

import (
	"math"
	"strconv"
	"strings"
)

// The parser keeps two explicit stacks on the state: every production
// pushes exactly one expression, binary operators pop two and push
// one, calls pop their arity. Literals and numbers intern their value
// in the pool and push a reference.

func (s *state) parseExpr() {
	s.skipBlank()
	s.parseEquality()
}

func (s *state) parseEquality() {
	s.Enter("equality", s.pos)
	defer func() { s.Leave("equality", s.pos) }()

	s.parseAdditive()
	if s.bad() {
		return
	}
	s.skipBlank()
	var op binaryOp
	if s.char() == equal {
		s.pos++
		op = opEq
	} else if s.char() == bang && s.charAt(1) == equal {
		s.pos += 2
		op = opNe
	} else {
		return
	}
	s.skipBlank()
	s.parseAdditive()
	if s.bad() {
		return
	}
	s.pushBinary(op)
}

func (s *state) parseAdditive() {
	s.Enter("additive", s.pos)
	defer func() { s.Leave("additive", s.pos) }()

	s.parseMultiplicative()
	if s.bad() {
		return
	}
	s.skipBlank()
	for s.char() == plus || s.char() == dash {
		op := opAdd
		if s.char() == dash {
			op = opSub
		}
		s.pos++
		s.skipBlank()
		s.parseMultiplicative()
		if s.bad() {
			return
		}
		s.pushBinary(op)
		s.skipBlank()
	}
}

func (s *state) parseMultiplicative() {
	s.Enter("multiplicative", s.pos)
	defer func() { s.Leave("multiplicative", s.pos) }()

	s.parsePath()
	if s.bad() {
		return
	}
	for s.match(star) {
		s.skipBlank()
		s.parsePath()
		if s.bad() {
			return
		}
		s.pushBinary(opMul)
	}
}

// A path expression is a primary expression only when it starts with a
// quote, a digit, or a run of letters followed by an opening paren.
// Anything else is a location path.
func (s *state) lookingAtPrimary() bool {
	if s.peek("'\"0123456789") {
		return true
	}
	p := s.pos
	for p < len(s.txt) && isAlpha(s.txt[p]) {
		p++
	}
	for p < len(s.txt) && isBlank(s.txt[p]) {
		p++
	}
	return p < len(s.txt) && s.txt[p] == lparen
}

func (s *state) parsePath() {
	if s.lookingAtPrimary() {
		s.parsePrimary()
	} else {
		s.parseLocationPath()
	}
}

func (s *state) parsePrimary() {
	s.Enter("primary", s.pos)
	defer func() { s.Leave("primary", s.pos) }()

	if s.peek("'\"") {
		s.parseLiteral()
	} else if s.peek("0123456789") {
		s.parseNumber()
	} else {
		s.parseCall()
	}
}

func (s *state) parseLiteral() {
	var delim byte
	switch s.char() {
	case quote:
		delim = quote
	case apos:
		delim = apos
	default:
		s.fail(CodeString)
		return
	}
	s.pos++
	beg := s.pos
	for !s.done() && s.char() != delim {
		s.pos++
	}
	if s.done() {
		s.fail(CodeDelim)
		return
	}
	str := s.txt[beg:s.pos]
	s.pos++

	vind := s.makeValue(TypeString)
	s.pool[vind].str = str
	s.pushExpr(&valueref{index: vind})
}

// Bare digit runs are always numbers, never steps named with digits;
// a numeric name has to be written as ./42 or child::42.
func (s *state) parseNumber() {
	beg := s.pos
	for !s.done() && isDigit(s.char()) {
		s.pos++
	}
	if beg == s.pos {
		s.fail(CodeNumber)
		return
	}
	val, err := strconv.ParseUint(s.txt[beg:s.pos], 10, 64)
	if err != nil || val > math.MaxInt32 {
		s.fail(CodeNumber)
		return
	}
	vind := s.makeValue(TypeNumber)
	s.pool[vind].num = int(val)
	s.pushExpr(&valueref{index: vind})
}

func (s *state) parseCall() {
	s.Enter("call", s.pos)
	defer func() { s.Leave("call", s.pos) }()

	var fn *builtin
	for i := range builtins {
		if s.lookingAt(builtins[i].name, "(") {
			fn = &builtins[i]
			break
		}
	}
	if fn == nil {
		s.fail(CodeName)
		return
	}
	var nargs int
	if !s.match(rparen) {
		for {
			nargs++
			s.parseExpr()
			if s.bad() {
				return
			}
			if !s.match(comma) {
				break
			}
		}
		if !s.match(rparen) {
			s.fail(CodeDelim)
			return
		}
	}
	if nargs != fn.arity {
		s.fail(CodeDelim)
		return
	}
	e := &call{
		fn:   fn,
		args: make([]expr, nargs),
	}
	for i := nargs - 1; i >= 0; i-- {
		e.args[i] = s.popExpr()
	}
	if s.bad() {
		return
	}
	s.pushExpr(e)
}

func (s *state) parseLocationPath() {
	s.Enter("locpath", s.pos)
	defer func() { s.Leave("locpath", s.pos) }()

	lp := &locpath{}
	if s.match(slash) {
		if s.char() == slash {
			s.pos++
			s.parseRelLocPath(lp)
			if s.bad() {
				return
			}
			head := []*step{
				{axis: axisRoot},
				{axis: axisDescendantSelf},
			}
			lp.steps = append(head, lp.steps...)
		} else {
			if !s.done() {
				s.parseRelLocPath(lp)
				if s.bad() {
					return
				}
			}
			lp.steps = append([]*step{{axis: axisRoot}}, lp.steps...)
		}
	} else {
		s.parseRelLocPath(lp)
		if s.bad() {
			return
		}
	}
	s.pushExpr(lp)
}

func (s *state) parseRelLocPath(lp *locpath) {
	st := s.parseStep()
	if s.bad() {
		return
	}
	lp.steps = append(lp.steps, st)
	for s.match(slash) {
		if s.char() == slash {
			s.pos++
			lp.steps = append(lp.steps, &step{axis: axisDescendantSelf})
		}
		st = s.parseStep()
		if s.bad() {
			return
		}
		lp.steps = append(lp.steps, st)
	}
}

func (s *state) parseStep() *step {
	s.Enter("step", s.pos)
	defer func() { s.Leave("step", s.pos) }()

	s.skipBlank()
	st := &step{}
	if s.char() == dot && s.charAt(1) == dot {
		s.pos += 2
		st.axis = axisParent
		return st
	}
	if s.match(dot) {
		st.axis = axisSelf
		return st
	}
	st.axis = axisChild
	for i := range axisNames {
		if s.lookingAt(axisNames[i], "::") {
			st.axis = axis(i)
			break
		}
	}
	if !s.match(star) {
		st.name = s.parseName()
		if s.bad() {
			return nil
		}
	}
	st.preds = s.parsePredicates()
	if s.bad() {
		return nil
	}
	return st
}

// parseName consumes a name, unescaping backslash sequences. Names end
// at a slash, bracket, equal sign or blank; any other byte, escaped or
// not, belongs to the name.
func (s *state) parseName() string {
	beg := s.pos
	var str strings.Builder
	for !s.done() {
		c := s.char()
		if c == slash || c == lsquare || c == rsquare || c == equal || isBlank(c) {
			break
		}
		if c == backstep {
			s.pos++
			if s.done() {
				s.fail(CodeName)
				return ""
			}
			c = s.char()
		}
		str.WriteByte(c)
		s.pos++
	}
	if s.pos == beg {
		s.fail(CodeName)
		return ""
	}
	return str.String()
}

func (s *state) parsePredicates() []expr {
	var nexpr int
	for s.match(lsquare) {
		s.Enter("predicate", s.pos)
		s.parseExpr()
		nexpr++
		if s.bad() {
			s.Leave("predicate", s.pos)
			return nil
		}
		if !s.match(rsquare) {
			s.fail(CodePred)
			s.Leave("predicate", s.pos)
			return nil
		}
		s.Leave("predicate", s.pos)
		s.skipBlank()
	}
	if nexpr == 0 {
		return nil
	}
	preds := make([]expr, nexpr)
	for i := nexpr - 1; i >= 0; i-- {
		preds[i] = s.popExpr()
	}
	if s.bad() {
		return nil
	}
	return preds
}

func (s *state) pushBinary(op binaryOp) {
	e := &binary{
		op: op,
	}
	e.right = s.popExpr()
	e.left = s.popExpr()
	if s.bad() {
		return
	}
	s.pushExpr(e)
}
