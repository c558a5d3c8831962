package tree

import (
	"fmt"
	"io"

	"github.com/goccy/go-yaml"
)

// document is the YAML form of a node. Children live in an explicit
// list so that repeated labels survive a round trip.
type document struct {
	Label string     `yaml:"label"`
	Value string     `yaml:"value,omitempty"`
	Nodes []document `yaml:"nodes,omitempty"`
}

func DecodeYAML(r io.Reader) (*Node, error) {
	all, err := io.ReadAll(r)
	if err != nil {
		return nil, err
	}
	var doc document
	if err := yaml.Unmarshal(all, &doc); err != nil {
		return nil, fmt.Errorf("fail to parse yaml document: %w", err)
	}
	return fromDocument(doc), nil
}

func EncodeYAML(w io.Writer, n *Node) error {
	if n == nil {
		return fmt.Errorf("no tree to be written")
	}
	e := yaml.NewEncoder(w)
	defer e.Close()
	return e.Encode(toDocument(n))
}

func fromDocument(doc document) *Node {
	n := New(doc.Label)
	n.SetValue(doc.Value)
	for i := range doc.Nodes {
		n.Append(fromDocument(doc.Nodes[i]))
	}
	return n
}

func toDocument(n *Node) document {
	doc := document{
		Label: n.Label(),
		Value: n.Value(),
	}
	for c := range n.Children() {
		doc.Nodes = append(doc.Nodes, toDocument(c))
	}
	return doc
}
