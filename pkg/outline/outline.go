// Package outline parses loosely structured outline text (Markdown headings
// and nested lists) into an ordered n-ary tree of labeled nodes.
//
// The parser is deliberately line-based rather than a full Markdown parser:
// nesting levels are derived from heading depth and indentation buckets, a
// mapping that a normalizing Markdown AST would erase. Parsing is total -
// any input, including the empty string, yields a single-rooted tree.
package outline

// DefaultRootLabel is the label used for synthesized root nodes when the
// input has no usable content or more than one top-level candidate.
const DefaultRootLabel = "Mind Map"

// Node is a single labeled node in the outline tree. Children preserve
// source order, which is significant and carried through layout.
type Node struct {
	Label    string
	Children []*Node
}

// IsLeaf returns true if the node has no children.
func (n *Node) IsLeaf() bool { return len(n.Children) == 0 }

// Count returns the number of nodes in the subtree rooted at n, including n.
func (n *Node) Count() int {
	total := 1
	for _, c := range n.Children {
		total += c.Count()
	}
	return total
}

// MaxDepth returns the depth of the deepest node in the subtree, counting n
// itself as depth 1.
func (n *Node) MaxDepth() int {
	deepest := 0
	for _, c := range n.Children {
		if d := c.MaxDepth(); d > deepest {
			deepest = d
		}
	}
	return 1 + deepest
}

// Walk visits every node in the subtree in depth-first source order.
func (n *Node) Walk(fn func(*Node)) {
	fn(n)
	for _, c := range n.Children {
		c.Walk(fn)
	}
}
