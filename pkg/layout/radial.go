package layout

import (
	"math"

	"github.com/mindweave/mindweave/pkg/outline"
)

// Radial placement tuning. These are empirically tuned visual constants
// carried over from the reference layouts; they are not derived values.
const (
	// radialBaseRadius and radialRingStep define the default ring radius
	// per depth: base + step*(depth-1).
	radialBaseRadius = 100.0
	radialRingStep   = 120.0

	// radialSafeGap pads the parent/child half-diagonal distance;
	// radialSafeFallback replaces it when box sizes are unavailable.
	radialSafeGap      = 30.0
	radialSafeFallback = 60.0

	// radialCollisionMargin grows the candidate box during overlap tests.
	radialCollisionMargin = 20.0

	// radialMaxAttempts bounds the outward collision search per node.
	radialMaxAttempts = 150

	// radialRingRaise is the factor an accepted radius must exceed the
	// current ring radius by before the ring is pushed outward. Updating
	// on every placement would let one wide label cascade the whole ring
	// out.
	radialRingRaise = 1.2
)

// radialSession holds the mutable state of one radial layout invocation:
// the placed-box collision set and the per-depth ring radius table. A fresh
// session is created per call and discarded afterward, so concurrent
// invocations never share state.
type radialSession struct {
	metrics Metrics
	boxes   []Box
	rings   map[int]float64
	nodes   []Placed
}

// Radial computes a center-out layout for the tree. The root sits at the
// origin with the full [0, 2π) range; each child receives an angular
// sub-range proportional to its subtree weight and is pushed outward along
// its bisector until it clears every previously placed box.
//
// If metrics is nil, the character-count estimator is used.
func Radial(root *outline.Node, metrics Metrics) *Result {
	if metrics == nil {
		metrics = CharEstimator{}
	}

	weights := make(map[*outline.Node]int)
	computeWeights(root, weights)

	s := &radialSession{
		metrics: metrics,
		rings:   make(map[int]float64),
	}
	s.place(root, weights, radialFrame{
		parent: -1,
		depth:  1,
		start:  0,
		end:    2 * math.Pi,
		color:  RootColor,
	})

	maxDepth := 0
	for i := range s.nodes {
		if s.nodes[i].Depth > maxDepth {
			maxDepth = s.nodes[i].Depth
		}
	}

	return &Result{
		Kind:       KindRadial,
		Nodes:      s.nodes,
		Connectors: radialConnectors(s.nodes),
		Canvas:     radialCanvas(s.nodes, maxDepth),
		MaxDepth:   maxDepth,
	}
}

// radialFrame carries the per-node placement inputs down the recursion:
// the parent's slice index, accepted radius and box, the angular sub-range,
// and the inherited branch color. Passing these as arguments keeps the tree
// free of parent back-pointers.
type radialFrame struct {
	parent       int
	depth        int
	start, end   float64
	color        string
	parentRadius float64
	parentBox    *Box
}

func (s *radialSession) place(n *outline.Node, weights map[*outline.Node]int, f radialFrame) {
	w, h := s.metrics.Measure(n.Label, f.depth)
	cur := Box{W: w, H: h}

	var x, y, radius float64
	clean := true

	if f.depth > 1 {
		minRadius := s.minRadiusFor(f.depth, f.parentRadius, f.parentBox, cur)
		bisector := (f.start + f.end) / 2
		baseStep := 20.0 + 5.0*float64(f.depth-1)

		found := false
		testR := minRadius
		for attempt := 0; attempt < radialMaxAttempts; attempt++ {
			step := baseStep * (1 + 0.05*float64(attempt))
			testR = minRadius + float64(attempt)*step
			tx := testR * math.Cos(bisector)
			ty := testR * math.Sin(bisector)
			if !s.collides(Box{X: tx, Y: ty, W: w, H: h}) {
				x, y = tx, ty
				radius = testR
				found = true
				break
			}
		}
		if !found {
			// Attempt budget exhausted: accept the last probed radius even
			// if it overlaps, and flag the placement.
			x = testR * math.Cos(bisector)
			y = testR * math.Sin(bisector)
			radius = testR
			clean = false
		}

		if radius > s.rings[f.depth]*radialRingRaise {
			s.rings[f.depth] = radius
		}
	}

	cur.X, cur.Y = x, y
	s.boxes = append(s.boxes, cur)
	idx := len(s.nodes)
	s.nodes = append(s.nodes, Placed{
		Label:  n.Label,
		Depth:  f.depth,
		Parent: f.parent,
		X:      x,
		Y:      y,
		W:      w,
		H:      h,
		Color:  f.color,
		Weight: weights[n],
		Clean:  clean,
	})

	if len(n.Children) == 0 {
		return
	}

	total := 0
	for _, c := range n.Children {
		total += weights[c]
	}
	angle := f.start
	span := f.end - f.start

	for i, c := range n.Children {
		share := float64(weights[c]) / float64(total) * span

		color := f.color
		if f.depth == 1 {
			color = BranchColor(i)
		}

		s.place(c, weights, radialFrame{
			parent:       idx,
			depth:        f.depth + 1,
			start:        angle,
			end:          angle + share,
			color:        color,
			parentRadius: radius,
			parentBox:    &cur,
		})
		angle += share
	}
}

// minRadiusFor computes the minimum radius for a node at the given depth
// and folds it into the per-depth ring table. The table only grows, which
// is what keeps every node at depth d outside every ring accepted so far
// at that depth.
func (s *radialSession) minRadiusFor(depth int, parentRadius float64, parentBox *Box, cur Box) float64 {
	base := radialBaseRadius + radialRingStep*float64(depth-1)

	if parentRadius > 0 {
		safe := radialSafeFallback
		if parentBox != nil && parentBox.W > 0 && cur.W > 0 {
			safe = parentBox.HalfDiagonal() + cur.HalfDiagonal() + radialSafeGap
		}
		if required := parentRadius + safe; required > base {
			base = required
		}
	}

	if base > s.rings[depth] {
		s.rings[depth] = base
	}
	return s.rings[depth]
}

func (s *radialSession) collides(candidate Box) bool {
	for _, b := range s.boxes {
		if candidate.Intersects(b, radialCollisionMargin) {
			return true
		}
	}
	return false
}
