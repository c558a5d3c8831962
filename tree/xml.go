package tree

import (
	"fmt"
	"io"
	"strings"

	"github.com/beevik/etree"
)

// DecodeXML imports an XML document as a labelled tree: element tags
// become labels, trimmed character data becomes the value, and
// attributes become children holding the attribute value.
func DecodeXML(r io.Reader) (*Node, error) {
	doc := etree.NewDocument()
	if _, err := doc.ReadFrom(r); err != nil {
		return nil, fmt.Errorf("fail to parse xml document: %w", err)
	}
	root := doc.Root()
	if root == nil {
		return nil, fmt.Errorf("xml document has no root element")
	}
	return fromElement(root), nil
}

func fromElement(el *etree.Element) *Node {
	n := New(el.Tag)
	n.SetValue(strings.TrimSpace(el.Text()))
	for _, a := range el.Attr {
		c := n.AppendChild(a.Key)
		c.SetValue(a.Value)
	}
	for _, sub := range el.ChildElements() {
		n.Append(fromElement(sub))
	}
	return n
}
