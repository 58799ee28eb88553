package layout

import "github.com/mindweave/mindweave/pkg/outline"

// horizontalColumnGap is the horizontal clearance between a parent's right
// edge and its children's column, in layout units.
const horizontalColumnGap = 2.0

// horizontalBoxHeight is the fixed node box height in layout units; the
// horizontal engine sizes boxes by estimated width only.
const horizontalBoxHeight = 1.0

// Horizontal computes a left-to-right tidy-tree layout. The root sits at
// the origin; every child generation occupies a shared x column to the
// right of its parent, and siblings stack vertically centered on the
// parent, packed by subtree height.
//
// Width comes from the character-class estimator, so horizontal layouts
// are fully deterministic and never consult a font.
func Horizontal(root *outline.Node) *Result {
	widths := make(map[*outline.Node]float64)
	heights := make(map[*outline.Node]float64)
	computeSubtreeLayout(root, 1, widths, heights)

	s := &horizontalSession{widths: widths, heights: heights}
	s.place(root, -1, 1, 0, 0, RootColor)

	maxDepth := 0
	for i := range s.nodes {
		if s.nodes[i].Depth > maxDepth {
			maxDepth = s.nodes[i].Depth
		}
	}

	return &Result{
		Kind:       KindHorizontal,
		Nodes:      s.nodes,
		Connectors: horizontalConnectors(s.nodes),
		Canvas:     horizontalCanvas(s.nodes),
		MaxDepth:   maxDepth,
	}
}

type horizontalSession struct {
	widths  map[*outline.Node]float64
	heights map[*outline.Node]float64
	nodes   []Placed
}

func (s *horizontalSession) place(n *outline.Node, parent, depth int, x, y float64, color string) {
	idx := len(s.nodes)
	s.nodes = append(s.nodes, Placed{
		Label:         n.Label,
		Depth:         depth,
		Parent:        parent,
		X:             x,
		Y:             y,
		W:             s.widths[n],
		H:             horizontalBoxHeight,
		Color:         color,
		SubtreeHeight: s.heights[n],
		Clean:         true,
	})

	if len(n.Children) == 0 {
		return
	}

	// All children share one column, offset by the widest child so the
	// column's box centers align vertically.
	maxChildW := 0.0
	for _, c := range n.Children {
		if w := s.widths[c]; w > maxChildW {
			maxChildW = w
		}
	}
	childX := x + s.widths[n]/2 + horizontalColumnGap + maxChildW/2

	total := 0.0
	for _, c := range n.Children {
		total += s.heights[c]
	}
	if len(n.Children) > 1 {
		total += float64(len(n.Children)-1) * verticalGap
	}

	// Stack top-down: first child highest, block centered on the parent.
	curY := y + total/2
	for i, c := range n.Children {
		childColor := color
		if depth == 1 {
			childColor = BranchColor(i)
		}
		ch := s.heights[c]
		s.place(c, idx, depth+1, childX, curY-ch/2, childColor)
		curY -= ch + verticalGap
	}
}
