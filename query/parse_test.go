package query

import (
	"errors"
	"testing"
)

func TestParse(t *testing.T) {
	tests := []struct {
		Expr string
		Want string
	}{
		{
			Expr: "/",
			Want: "path(root::*)",
		},
		{
			Expr: "/a",
			Want: "path(root::*/child::a)",
		},
		{
			Expr: "a/b",
			Want: "path(child::a/child::b)",
		},
		{
			Expr: "//c",
			Want: "path(root::*/descendant-or-self::*/child::c)",
		},
		{
			Expr: "a//b",
			Want: "path(child::a/descendant-or-self::*/child::b)",
		},
		{
			Expr: ".",
			Want: "path(self::*)",
		},
		{
			Expr: "..",
			Want: "path(parent::*)",
		},
		{
			Expr: "ancestor::x",
			Want: "path(ancestor::x)",
		},
		{
			Expr: "descendant-or-self::x",
			Want: "path(descendant-or-self::x)",
		},
		{
			Expr: "./42",
			Want: "path(self::*/child::42)",
		},
		{
			Expr: "/a[2]",
			Want: "path(root::*/child::a[2])",
		},
		{
			Expr: "/a[b][2]",
			Want: "path(root::*/child::a[path(child::b)][2])",
		},
		{
			Expr: `/a[. = "1"]`,
			Want: `path(root::*/child::a[eq(path(self::*), "1")])`,
		},
		{
			Expr: "/a[position() = last()]",
			Want: "path(root::*/child::a[eq(position(), last())])",
		},
		{
			Expr: "/a[position() != last()]",
			Want: "path(root::*/child::a[ne(position(), last())])",
		},
		{
			Expr: "a[1 + 2 - 3]",
			Want: "path(child::a[sub(add(1, 2), 3)])",
		},
		{
			Expr: "a[2 * 3 + 4]",
			Want: "path(child::a[add(mul(2, 3), 4)])",
		},
		{
			Expr: "a[1 + 2 * 3]",
			Want: "path(child::a[add(1, mul(2, 3))])",
		},
		{
			Expr: `a\[b`,
			Want: "path(child::a[b)",
		},
		{
			Expr: "child :: a",
			Want: "path(child::a)",
		},
		{
			Expr: `a[. = 'x']`,
			Want: `path(child::a[eq(path(self::*), "x")])`,
		},
	}
	for _, c := range tests {
		p, err := Parse(nil, c.Expr)
		if err != nil {
			t.Errorf("%s: unexpected error: %s", c.Expr, err)
			continue
		}
		if got := Debug(p); got != c.Want {
			t.Errorf("%s: compiled form mismatched! want %s, got %s", c.Expr, c.Want, got)
		}
	}
}

func TestParseErrors(t *testing.T) {
	tests := []struct {
		Expr   string
		Code   ErrCode
		Offset int
	}{
		{
			Expr:   "",
			Code:   CodeName,
			Offset: 0,
		},
		{
			Expr:   "/a[",
			Code:   CodeName,
			Offset: 3,
		},
		{
			Expr:   "/a[1",
			Code:   CodePred,
			Offset: 4,
		},
		{
			Expr:   `"abc`,
			Code:   CodeDelim,
			Offset: 4,
		},
		{
			Expr: "123456789012",
			Code: CodeNumber,
		},
		{
			Expr: "last(2)",
			Code: CodeDelim,
		},
		{
			Expr: "count()",
			Code: CodeName,
		},
		{
			Expr: `a\`,
			Code: CodeName,
		},
		{
			Expr: "//",
			Code: CodeName,
		},
		{
			Expr:   "a )",
			Code:   CodeSlash,
			Offset: 2,
		},
		{
			Expr: "42",
			Code: CodeType,
		},
		{
			Expr: `"a"`,
			Code: CodeType,
		},
		{
			Expr: "last()",
			Code: CodeType,
		},
		{
			Expr: `a["x"]`,
			Code: CodeType,
		},
		{
			Expr: `a[b = 1]`,
			Code: CodeType,
		},
		{
			Expr: `a[1 + "x"]`,
			Code: CodeType,
		},
	}
	for _, c := range tests {
		_, err := Parse(nil, c.Expr)
		if err == nil {
			t.Errorf("%s: expression accepted", c.Expr)
			continue
		}
		var perr *ParseError
		if !errors.As(err, &perr) {
			t.Errorf("%s: unexpected error type: %T", c.Expr, err)
			continue
		}
		if perr.Code != c.Code {
			t.Errorf("%s: code mismatched! want %s, got %s", c.Expr, c.Code, perr.Code)
			continue
		}
		if c.Offset > 0 && perr.Offset != c.Offset {
			t.Errorf("%s: offset mismatched! want %d, got %d", c.Expr, c.Offset, perr.Offset)
		}
		if perr.Text != c.Expr {
			t.Errorf("%s: error should carry the original text, got %q", c.Expr, perr.Text)
		}
	}
}

func TestParseStable(t *testing.T) {
	exprs := []string{
		"/a[position() = last()]",
		"//c[. != \"2\"]",
		"a[1 + 2 * 3]",
	}
	for _, e := range exprs {
		p1, err := Parse(nil, e)
		if err != nil {
			t.Errorf("%s: unexpected error: %s", e, err)
			continue
		}
		p2, err := Parse(nil, e)
		if err != nil {
			t.Errorf("%s: unexpected error: %s", e, err)
			continue
		}
		if Debug(p1) != Debug(p2) {
			t.Errorf("%s: compiling twice gave different shapes", e)
		}
	}
}
