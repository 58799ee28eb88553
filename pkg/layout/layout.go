// Package layout computes collision-free coordinates for outline trees.
//
// Two engines are provided: a radial engine that partitions angular space
// around a central root in proportion to subtree leaf counts, and a
// horizontal engine that packs subtrees into left-to-right columns. Both
// walk the tree top-down exactly once, assign each node a position exactly
// once, and preserve strict parent/child ordering: children are never
// placed closer to the root than their parent, and siblings never overlap
// (outside the documented best-effort collision fallback).
//
// All coordinates are in an abstract unit system. Mapping units to pixels
// is the rendering sink's concern.
//
// Layout is pure, synchronous computation. All mutable state (the placed
// box set, the per-depth ring table) lives in a session value created per
// call, so concurrent invocations are isolated by construction.
package layout

import "math"

// Kind selects a layout engine.
type Kind string

// Supported layout kinds.
const (
	KindRadial     Kind = "radial"
	KindHorizontal Kind = "horizontal"
)

// Valid returns true for a recognized layout kind.
func (k Kind) Valid() bool { return k == KindRadial || k == KindHorizontal }

// RootColor is the fixed neutral color of the root node.
const RootColor = "#333333"

// BranchPalette holds the depth-1 branch colors, keyed by sibling index
// modulo the palette size. Every descendant inherits its branch color
// unchanged; color is never re-derived per node.
var BranchPalette = []string{
	"#FF6B6B", "#4ECDC4", "#45B7D1", "#96CEB4", "#FECA57", "#FF9FF3",
	"#54A0FF", "#5F27CD", "#00D2D3", "#FF9F43", "#EE5A24", "#0984E3",
}

// BranchColor returns the palette color for the depth-1 child at the given
// sibling index.
func BranchColor(siblingIndex int) string {
	return BranchPalette[siblingIndex%len(BranchPalette)]
}

// Box is an axis-aligned rectangle centered at (X, Y), used both for the
// final node geometry and for collision bookkeeping during placement.
type Box struct {
	X, Y float64
	W, H float64
}

// HalfDiagonal returns half the diagonal length of the box.
func (b Box) HalfDiagonal() float64 {
	return math.Sqrt(b.W*b.W+b.H*b.H) / 2
}

// Intersects reports whether b, grown by margin on every side, overlaps o.
func (b Box) Intersects(o Box, margin float64) bool {
	l1, r1 := b.X-b.W/2-margin, b.X+b.W/2+margin
	t1, b1 := b.Y-b.H/2-margin, b.Y+b.H/2+margin
	l2, r2 := o.X-o.W/2, o.X+o.W/2
	t2, b2 := o.Y-o.H/2, o.Y+o.H/2
	return !(l1 > r2 || r1 < l2 || t1 > b2 || b1 < t2)
}

// Placed is the flat, position-annotated record for one tree node. Parent
// relationships are carried as slice indices rather than pointers; -1 marks
// the root.
type Placed struct {
	Label  string
	Depth  int
	Parent int

	// Geometry, in layout units. W/H come from the metrics provider for
	// radial layouts and from the width estimator for horizontal ones.
	X, Y float64
	W, H float64

	Color string

	// Weight is the subtree leaf count (radial only).
	Weight int

	// SubtreeHeight is the packed vertical extent (horizontal only).
	SubtreeHeight float64

	// Clean is false when the collision search exhausted its attempt budget
	// and the node was placed at the last probed radius despite overlap.
	// This is a quality note, not an error.
	Clean bool
}

// Result is the complete output of one layout invocation: positioned nodes
// in depth-first source order (root first), connector curves, and the
// canvas extent for the rendering backend.
type Result struct {
	Kind       Kind
	Nodes      []Placed
	Connectors []Connector
	Canvas     Canvas
	MaxDepth   int
}

// NodeCount returns the number of placed nodes.
func (r *Result) NodeCount() int { return len(r.Nodes) }
