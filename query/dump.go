package query

import (
	"io"
	"strconv"
	"strings"
)

// Debug renders the compiled form of a path, mostly useful to inspect
// what the parser made of an expression.
func Debug(p *Path) string {
	var str strings.Builder
	debugExpr(&str, p.state, p.loc)
	return str.String()
}

func Dump(w io.Writer, p *Path) {
	debugExpr(w, p.state, p.loc)
}

// String returns the same rendering as Debug.
func (p *Path) String() string {
	return Debug(p)
}

func debugExpr(w io.Writer, s *state, e expr) {
	switch v := e.(type) {
	case *locpath:
		io.WriteString(w, "path(")
		for i, st := range v.steps {
			if i > 0 {
				io.WriteString(w, "/")
			}
			debugStep(w, s, st)
		}
		io.WriteString(w, ")")
	case *binary:
		io.WriteString(w, v.op.String())
		io.WriteString(w, "(")
		debugExpr(w, s, v.left)
		io.WriteString(w, ", ")
		debugExpr(w, s, v.right)
		io.WriteString(w, ")")
	case *valueref:
		debugValue(w, s.pool[v.index])
	case *call:
		io.WriteString(w, v.fn.name)
		io.WriteString(w, "(")
		for i, a := range v.args {
			if i > 0 {
				io.WriteString(w, ", ")
			}
			debugExpr(w, s, a)
		}
		io.WriteString(w, ")")
	default:
		io.WriteString(w, "<unknown>")
	}
}

func debugStep(w io.Writer, s *state, st *step) {
	io.WriteString(w, st.axis.String())
	io.WriteString(w, "::")
	if st.name == "" {
		io.WriteString(w, "*")
	} else {
		io.WriteString(w, st.name)
	}
	for _, p := range st.preds {
		io.WriteString(w, "[")
		debugExpr(w, s, p)
		io.WriteString(w, "]")
	}
}

func debugValue(w io.Writer, v value) {
	switch v.tag {
	case TypeNumber:
		io.WriteString(w, strconv.Itoa(v.num))
	case TypeString:
		io.WriteString(w, strconv.Quote(v.str))
	case TypeBoolean:
		io.WriteString(w, strconv.FormatBool(v.boolean))
	case TypeNodeset:
		io.WriteString(w, "nodeset(")
		io.WriteString(w, strconv.Itoa(len(v.nodes)))
		io.WriteString(w, ")")
	default:
		io.WriteString(w, "<none>")
	}
}
