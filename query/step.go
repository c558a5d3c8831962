package query

import (
	"github.com/midbel/twig/tree"
)

// stepFirst and stepNext enumerate the candidates of a step from a
// context node. The traversal is axis-native; the name test is applied
// as a post-filter on every candidate.

func stepMatches(st *step, n *tree.Node) bool {
	return st.name == "" || streq(st.name, n.Label())
}

func stepFirst(st *step, ctx *tree.Node) *tree.Node {
	var node *tree.Node
	switch st.axis {
	case axisSelf, axisDescendantSelf:
		node = ctx
	case axisChild, axisDescendant:
		node = ctx.FirstChild()
	case axisParent, axisAncestor:
		node = ctx.Parent()
	case axisRoot:
		node = ctx.Root()
	}
	if node == nil {
		return nil
	}
	if stepMatches(st, node) {
		return node
	}
	return stepNext(st, ctx, node)
}

func stepNext(st *step, ctx, node *tree.Node) *tree.Node {
	for node != nil {
		switch st.axis {
		case axisSelf, axisParent, axisRoot:
			node = nil
		case axisChild:
			node = node.NextSibling()
		case axisDescendant, axisDescendantSelf:
			// pre-order within the subtree rooted at ctx
			if c := node.FirstChild(); c != nil {
				node = c
			} else {
				for node.NextSibling() == nil && node != ctx {
					node = node.Parent()
				}
				if node == ctx {
					node = nil
				} else {
					node = node.NextSibling()
				}
			}
		case axisAncestor:
			node = node.Parent()
		}
		if node != nil && stepMatches(st, node) {
			break
		}
	}
	return node
}
