package query

import (
	"errors"
	"testing"

	"github.com/midbel/twig/tree"
)

func TestExpand(t *testing.T) {
	t.Run("missing branches", func(t *testing.T) {
		r := tree.New("r")
		p, err := Parse(r, "/x/y/z")
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		leaf, err := p.Expand()
		if err != nil {
			t.Fatalf("expand failed: %s", err)
		}
		if leaf == nil || leaf.Label() != "z" {
			t.Fatalf("leaf mismatched: %v", leaf)
		}
		if got := leaf.Path(); got != "/r/x/y/z" {
			t.Errorf("leaf path mismatched! want /r/x/y/z, got %s", got)
		}
	})
	t.Run("existing prefix", func(t *testing.T) {
		r := tree.New("r")
		x := r.AppendChild("x")
		p, err := Parse(r, "/x/y")
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		leaf, err := p.Expand()
		if err != nil {
			t.Fatalf("expand failed: %s", err)
		}
		if leaf.Parent() != x {
			t.Errorf("new node should hang below the existing prefix")
		}
		if leaf.Label() != "y" {
			t.Errorf("leaf label mismatched! want y, got %s", leaf.Label())
		}
	})
	t.Run("exact match", func(t *testing.T) {
		r := tree.New("r")
		x := r.AppendChild("x")
		p, err := Parse(r, "/x")
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		leaf, err := p.Expand()
		if err != nil {
			t.Fatalf("expand failed: %s", err)
		}
		if leaf != x {
			t.Errorf("expand should return the already present node")
		}
		if x.FirstChild() != nil {
			t.Errorf("nothing should have been created")
		}
	})
	t.Run("ambiguous anchor", func(t *testing.T) {
		r := tree.New("r")
		r.AppendChild("a")
		r.AppendChild("a")
		p, err := Parse(r, "/a/q")
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if _, err := p.Expand(); !errors.Is(err, ErrMultiple) {
			t.Errorf("error mismatched! want %s, got %v", ErrMultiple, err)
		}
	})
	t.Run("tail not creatable", func(t *testing.T) {
		r := tree.New("r")
		p, err := Parse(r, "q/*")
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		if _, err := p.Expand(); !errors.Is(err, ErrBadPath) {
			t.Errorf("error mismatched! want %s, got %v", ErrBadPath, err)
		}
		if r.FirstChild() != nil {
			t.Errorf("partially created nodes should have been detached")
		}
	})
	t.Run("relative origin", func(t *testing.T) {
		r := tree.New("r")
		x := r.AppendChild("x")
		p, err := Parse(x, "y/z")
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		leaf, err := p.Expand()
		if err != nil {
			t.Fatalf("expand failed: %s", err)
		}
		if got := leaf.Path(); got != "/r/x/y/z" {
			t.Errorf("leaf path mismatched! want /r/x/y/z, got %s", got)
		}
	})
	t.Run("predicate anchor", func(t *testing.T) {
		r := tree.New("r")
		a1 := r.AppendChild("a")
		a1.SetValue("1")
		a2 := r.AppendChild("a")
		a2.SetValue("2")
		p, err := Parse(r, `/a[. = "2"]/q`)
		if err != nil {
			t.Fatalf("unexpected error: %s", err)
		}
		leaf, err := p.Expand()
		if err != nil {
			t.Fatalf("expand failed: %s", err)
		}
		if leaf.Parent() != a2 {
			t.Errorf("expansion should anchor on the predicate match")
		}
	})
}
