package tree

import (
	"slices"
	"strings"
	"testing"
)

func TestStructure(t *testing.T) {
	r := New("r")
	a := r.AppendChild("a")
	b := r.AppendChild("b")
	c := b.AppendChild("c")

	if a.Parent() != r || b.Parent() != r || c.Parent() != b {
		t.Errorf("parent links mismatched")
	}
	if r.FirstChild() != a || a.NextSibling() != b || b.NextSibling() != nil {
		t.Errorf("sibling links mismatched")
	}
	if r.Parent() != nil {
		t.Errorf("root should have no parent")
	}
	if c.Root() != r {
		t.Errorf("root lookup mismatched")
	}
	if r.Size() != 4 {
		t.Errorf("size mismatched! want 4, got %d", r.Size())
	}
	if got := c.Path(); got != "/r/b/c" {
		t.Errorf("path mismatched! want /r/b/c, got %s", got)
	}

	var labels []string
	for n := range r.Descendants() {
		labels = append(labels, n.Label())
	}
	if want := []string{"a", "b", "c"}; !slices.Equal(labels, want) {
		t.Errorf("walk order mismatched! want %v, got %v", want, labels)
	}
}

func TestDetach(t *testing.T) {
	r := New("r")
	a := r.AppendChild("a")
	b := r.AppendChild("b")
	c := r.AppendChild("c")

	b.Detach()
	if r.FirstChild() != a || a.NextSibling() != c {
		t.Errorf("sibling links mismatched after detach")
	}
	if b.Parent() != nil {
		t.Errorf("detached node should have no parent")
	}
	a.Detach()
	if r.FirstChild() != c {
		t.Errorf("first child mismatched after detaching the head")
	}
	c.Detach()
	if r.FirstChild() != nil || !r.Leaf() {
		t.Errorf("root should be a leaf again")
	}
}

const sampleYAML = `
label: r
nodes:
  - label: a
    value: "1"
  - label: b
    value: "2"
  - label: a
    value: "3"
    nodes:
      - label: c
`

func TestYAML(t *testing.T) {
	r, err := DecodeYAML(strings.NewReader(sampleYAML))
	if err != nil {
		t.Fatalf("fail to decode document: %s", err)
	}
	if r.Label() != "r" {
		t.Errorf("root label mismatched! want r, got %s", r.Label())
	}
	var labels, values []string
	for n := range r.Children() {
		labels = append(labels, n.Label())
		values = append(values, n.Value())
	}
	if want := []string{"a", "b", "a"}; !slices.Equal(labels, want) {
		t.Errorf("labels mismatched! want %v, got %v", want, labels)
	}
	if want := []string{"1", "2", "3"}; !slices.Equal(values, want) {
		t.Errorf("values mismatched! want %v, got %v", want, values)
	}

	var str strings.Builder
	if err := EncodeYAML(&str, r); err != nil {
		t.Fatalf("fail to encode document: %s", err)
	}
	other, err := DecodeYAML(strings.NewReader(str.String()))
	if err != nil {
		t.Fatalf("fail to decode document again: %s", err)
	}
	if other.Size() != r.Size() {
		t.Errorf("size mismatched after round trip! want %d, got %d", r.Size(), other.Size())
	}
}

const sampleXML = `<?xml version="1.0" encoding="UTF-8"?>
<root>
	<item id="first">element-1</item>
	<item>element-2</item>
	<group>
		<item>sub-element-1</item>
	</group>
</root>
`

func TestXML(t *testing.T) {
	r, err := DecodeXML(strings.NewReader(sampleXML))
	if err != nil {
		t.Fatalf("fail to decode document: %s", err)
	}
	if r.Label() != "root" {
		t.Errorf("root label mismatched! want root, got %s", r.Label())
	}
	var labels []string
	for n := range r.Children() {
		labels = append(labels, n.Label())
	}
	if want := []string{"item", "item", "group"}; !slices.Equal(labels, want) {
		t.Errorf("labels mismatched! want %v, got %v", want, labels)
	}
	first := r.FirstChild()
	if first.Value() != "element-1" {
		t.Errorf("value mismatched! want element-1, got %s", first.Value())
	}
	attr := first.FirstChild()
	if attr == nil || attr.Label() != "id" || attr.Value() != "first" {
		t.Errorf("attribute child mismatched: %v", attr)
	}
}
