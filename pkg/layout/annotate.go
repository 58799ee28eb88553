package layout

import (
	"math"

	"github.com/mindweave/mindweave/pkg/outline"
)

// verticalGap is the spacing between stacked sibling subtrees, in layout
// units (horizontal engine).
const verticalGap = 0.6

// computeWeights runs the radial bottom-up pass: a leaf weighs 1 and an
// internal node weighs the sum of its children. Weights proportion angular
// space, so complex branches receive wider arcs.
func computeWeights(n *outline.Node, out map[*outline.Node]int) int {
	if n.IsLeaf() {
		out[n] = 1
		return 1
	}
	total := 0
	for _, c := range n.Children {
		total += computeWeights(c, out)
	}
	out[n] = total
	return total
}

// estimateWidth converts a label into layout units for the horizontal
// engine. Wide (non-ASCII) runes score 1.0 and narrow runes 0.6; the score
// shrinks with depth the same way the rendered font does, is scaled by an
// empirical 0.4 factor, and gains 0.8 units of box padding.
func estimateWidth(label string, depth int) float64 {
	score := 0.0
	for _, r := range label {
		if r > 127 {
			score += 1.0
		} else {
			score += 0.6
		}
	}
	scale := math.Max(1.0-0.1*float64(depth-1), 0.6)
	return score*scale*0.4 + 0.8
}

// computeSubtreeLayout runs the horizontal bottom-up pass: it records each
// node's estimated width and packed subtree height. A node is never shorter
// than one unit; children stack with verticalGap between them.
func computeSubtreeLayout(n *outline.Node, depth int, widths, heights map[*outline.Node]float64) float64 {
	widths[n] = estimateWidth(n.Label, depth)

	if n.IsLeaf() {
		heights[n] = 1.0
		return 1.0
	}

	total := 0.0
	for _, c := range n.Children {
		total += computeSubtreeLayout(c, depth+1, widths, heights)
	}
	if len(n.Children) > 1 {
		total += float64(len(n.Children)-1) * verticalGap
	}

	h := math.Max(1.0, total)
	heights[n] = h
	return h
}
