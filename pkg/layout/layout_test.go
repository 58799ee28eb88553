package layout

import (
	"math"
	"testing"

	"github.com/mindweave/mindweave/pkg/outline"
)

// scenarioTree builds Root -> {A(leaf), B -> {C(leaf), D(leaf)}}.
func scenarioTree() *outline.Node {
	return &outline.Node{
		Label: "Root",
		Children: []*outline.Node{
			{Label: "A"},
			{Label: "B", Children: []*outline.Node{
				{Label: "C"},
				{Label: "D"},
			}},
		},
	}
}

func TestComputeWeights(t *testing.T) {
	tree := scenarioTree()
	weights := make(map[*outline.Node]int)
	computeWeights(tree, weights)

	a, b := tree.Children[0], tree.Children[1]
	c, d := b.Children[0], b.Children[1]

	if weights[a] != 1 || weights[c] != 1 || weights[d] != 1 {
		t.Errorf("leaf weights = %d, %d, %d, want 1 each", weights[a], weights[c], weights[d])
	}
	if weights[b] != 2 {
		t.Errorf("weight(B) = %d, want 2", weights[b])
	}
	if weights[tree] != 3 {
		t.Errorf("weight(Root) = %d, want 3", weights[tree])
	}
}

func TestSubtreeHeights(t *testing.T) {
	tree := scenarioTree()
	widths := make(map[*outline.Node]float64)
	heights := make(map[*outline.Node]float64)
	computeSubtreeLayout(tree, 1, widths, heights)

	a, b := tree.Children[0], tree.Children[1]
	c, d := b.Children[0], b.Children[1]

	if heights[a] != 1.0 || heights[c] != 1.0 || heights[d] != 1.0 {
		t.Error("leaf subtree heights should be exactly 1.0")
	}
	if got := heights[b]; math.Abs(got-2.6) > 1e-9 {
		t.Errorf("subtreeHeight(B) = %g, want 2.6", got)
	}
	if got := heights[tree]; math.Abs(got-4.2) > 1e-9 {
		t.Errorf("subtreeHeight(Root) = %g, want 4.2", got)
	}
}

func TestHeightInvariant(t *testing.T) {
	tree := outline.Parse("# R\n## A\n- a1\n- a2\n- a3\n## B\n### C\n- c1")
	widths := make(map[*outline.Node]float64)
	heights := make(map[*outline.Node]float64)
	computeSubtreeLayout(tree, 1, widths, heights)

	tree.Walk(func(n *outline.Node) {
		h := heights[n]
		if h < 1.0 {
			t.Errorf("subtreeHeight(%s) = %g, violates >= 1.0", n.Label, h)
		}
		if n.IsLeaf() && h != 1.0 {
			t.Errorf("leaf %s has subtree height %g, want exactly 1.0", n.Label, h)
		}
		if !n.IsLeaf() && len(n.Children) > 1 && h == 1.0 {
			t.Errorf("internal node %s with %d children should exceed height 1.0", n.Label, len(n.Children))
		}
	})
}

func TestRadialDepthInvariant(t *testing.T) {
	tree := outline.Parse("# R\n## A\n- a1\n- a2\n## B\n### C")
	r := Radial(tree, CharEstimator{})

	if r.Nodes[0].Depth != 1 || r.Nodes[0].Parent != -1 {
		t.Fatal("first node should be the root at depth 1")
	}
	for i, n := range r.Nodes {
		if n.Parent < 0 {
			continue
		}
		parent := r.Nodes[n.Parent]
		if n.Depth != parent.Depth+1 {
			t.Errorf("node %d: depth %d, parent depth %d", i, n.Depth, parent.Depth)
		}
	}
}

func TestRadialRootAtOrigin(t *testing.T) {
	r := Radial(scenarioTree(), CharEstimator{})
	root := r.Nodes[0]
	if root.X != 0 || root.Y != 0 {
		t.Errorf("root at (%g, %g), want origin", root.X, root.Y)
	}
}

func TestRadialOutwardInvariant(t *testing.T) {
	tree := outline.Parse("# R\n## A\n- a1\n- a2\n## B\n- b1\n### C\n- c1")
	r := Radial(tree, CharEstimator{})

	for i, n := range r.Nodes {
		if n.Parent < 0 || !n.Clean {
			continue
		}
		parent := r.Nodes[n.Parent]
		dChild := math.Hypot(n.X, n.Y)
		dParent := math.Hypot(parent.X, parent.Y)
		if dChild <= dParent {
			t.Errorf("node %d (%s): distance %g not beyond parent's %g", i, n.Label, dChild, dParent)
		}
	}
}

func TestRadialAngularPartition(t *testing.T) {
	tree := outline.Parse("# R\n## A\n- a1\n## B\n- b1\n- b2\n## C\n- c1")
	r := Radial(tree, CharEstimator{})

	byLabel := make(map[string]Placed)
	for _, n := range r.Nodes {
		byLabel[n.Label] = n
	}

	// Every node sits on the bisector of its angular sub-range, so its
	// angle is directly observable from its position.
	angle := func(n Placed) float64 {
		a := math.Atan2(n.Y, n.X)
		if a < 0 {
			a += 2 * math.Pi
		}
		return a
	}

	// Weights A=1, B=2, C=1 partition the full circle into a quarter for A,
	// a half for B, and a quarter for C, in source order from angle 0.
	want := map[string]float64{
		"A": math.Pi / 4,
		"B": math.Pi,
		"C": 7 * math.Pi / 4,
		// B's half splits evenly between its two leaves
		"b1": 3 * math.Pi / 4,
		"b2": 5 * math.Pi / 4,
	}
	for label, w := range want {
		if got := angle(byLabel[label]); math.Abs(got-w) > 1e-9 {
			t.Errorf("%s at angle %g, want %g", label, got, w)
		}
	}

	if !(angle(byLabel["A"]) < angle(byLabel["B"]) && angle(byLabel["B"]) < angle(byLabel["C"])) {
		t.Error("sibling angles should increase in source order")
	}
}

func TestRadialWeightsRecorded(t *testing.T) {
	r := Radial(scenarioTree(), CharEstimator{})
	if r.Nodes[0].Weight != 3 {
		t.Errorf("root weight = %d, want 3", r.Nodes[0].Weight)
	}
	for _, n := range r.Nodes {
		if n.Label == "B" && n.Weight != 2 {
			t.Errorf("weight(B) = %d, want 2", n.Weight)
		}
	}
}

func TestRadialNoCleanOverlaps(t *testing.T) {
	tree := outline.Parse("# R\n## A\n- a1\n- a2\n- a3\n## B\n- b1\n- b2\n## C\n- c1")
	r := Radial(tree, CharEstimator{})

	boxes := make([]Box, 0, len(r.Nodes))
	clean := make([]bool, 0, len(r.Nodes))
	for _, n := range r.Nodes {
		boxes = append(boxes, Box{X: n.X, Y: n.Y, W: n.W, H: n.H})
		clean = append(clean, n.Clean)
	}

	for i := range boxes {
		for j := i + 1; j < len(boxes); j++ {
			if !clean[i] || !clean[j] {
				continue
			}
			if boxes[i].Intersects(boxes[j], 0) {
				t.Errorf("clean nodes %d (%s) and %d (%s) overlap",
					i, r.Nodes[i].Label, j, r.Nodes[j].Label)
			}
		}
	}
}

func TestRadialDeterminism(t *testing.T) {
	input := "# R\n## A\n- a1\n- a2\n## B\n### C\n- c1"
	r1 := Radial(outline.Parse(input), CharEstimator{})
	r2 := Radial(outline.Parse(input), CharEstimator{})

	if len(r1.Nodes) != len(r2.Nodes) {
		t.Fatal("node counts differ between runs")
	}
	for i := range r1.Nodes {
		a, b := r1.Nodes[i], r2.Nodes[i]
		if a != b {
			t.Errorf("node %d differs between runs: %+v vs %+v", i, a, b)
		}
	}
}

func TestRadialSingleNode(t *testing.T) {
	r := Radial(&outline.Node{Label: outline.DefaultRootLabel}, CharEstimator{})
	if len(r.Nodes) != 1 {
		t.Fatalf("nodes = %d, want 1", len(r.Nodes))
	}
	if len(r.Connectors) != 0 {
		t.Errorf("connectors = %d, want 0", len(r.Connectors))
	}
	n := r.Nodes[0]
	if n.X != 0 || n.Y != 0 || n.Depth != 1 {
		t.Errorf("single node placement wrong: %+v", n)
	}
	if r.Canvas.Width < radialMinWidth || r.Canvas.Height < radialMinHeight {
		t.Errorf("canvas %gx%g below minimum", r.Canvas.Width, r.Canvas.Height)
	}
}

func TestColors(t *testing.T) {
	tree := outline.Parse("# R\n## A\n- a1\n## B\n- b1")

	for _, r := range []*Result{Radial(tree, CharEstimator{}), Horizontal(tree)} {
		if r.Nodes[0].Color != RootColor {
			t.Errorf("%s: root color = %s, want %s", r.Kind, r.Nodes[0].Color, RootColor)
		}

		byLabel := make(map[string]Placed)
		for _, n := range r.Nodes {
			byLabel[n.Label] = n
		}

		if byLabel["A"].Color != BranchPalette[0] {
			t.Errorf("%s: A color = %s, want %s", r.Kind, byLabel["A"].Color, BranchPalette[0])
		}
		if byLabel["B"].Color != BranchPalette[1] {
			t.Errorf("%s: B color = %s, want %s", r.Kind, byLabel["B"].Color, BranchPalette[1])
		}
		// Descendants inherit their branch color unchanged
		if byLabel["a1"].Color != byLabel["A"].Color {
			t.Errorf("%s: a1 should inherit A's color", r.Kind)
		}
		if byLabel["b1"].Color != byLabel["B"].Color {
			t.Errorf("%s: b1 should inherit B's color", r.Kind)
		}
	}
}

func TestBranchColorWraps(t *testing.T) {
	if BranchColor(0) != BranchPalette[0] {
		t.Error("BranchColor(0) should be the first palette entry")
	}
	if BranchColor(len(BranchPalette)) != BranchPalette[0] {
		t.Error("BranchColor should wrap modulo palette size")
	}
}

func TestHorizontalOutwardInvariant(t *testing.T) {
	tree := outline.Parse("# R\n## A\n- a1\n- a2\n## B\n### C\n- c1")
	r := Horizontal(tree)

	for i, n := range r.Nodes {
		if n.Parent < 0 {
			continue
		}
		parent := r.Nodes[n.Parent]
		if n.X <= parent.X {
			t.Errorf("node %d (%s): x=%g not strictly right of parent x=%g", i, n.Label, n.X, parent.X)
		}
	}
}

func TestHorizontalSharedColumn(t *testing.T) {
	tree := outline.Parse("# R\n## Short\n## A much longer sibling label")
	r := Horizontal(tree)

	var xs []float64
	for _, n := range r.Nodes {
		if n.Depth == 2 {
			xs = append(xs, n.X)
		}
	}
	if len(xs) != 2 {
		t.Fatalf("expected 2 depth-2 nodes, got %d", len(xs))
	}
	if math.Abs(xs[0]-xs[1]) > 1e-9 {
		t.Errorf("siblings should share one x column: %g vs %g", xs[0], xs[1])
	}
}

func TestHorizontalStackingOrder(t *testing.T) {
	tree := outline.Parse("# R\n## First\n## Second\n## Third")
	r := Horizontal(tree)

	byLabel := make(map[string]Placed)
	for _, n := range r.Nodes {
		byLabel[n.Label] = n
	}

	// Earlier children sit above later ones, centered on the parent.
	if !(byLabel["First"].Y > byLabel["Second"].Y && byLabel["Second"].Y > byLabel["Third"].Y) {
		t.Errorf("stacking order wrong: First=%g Second=%g Third=%g",
			byLabel["First"].Y, byLabel["Second"].Y, byLabel["Third"].Y)
	}

	mid := (byLabel["First"].Y + byLabel["Third"].Y) / 2
	if math.Abs(mid-byLabel["R"].Y) > 1e-9 {
		t.Errorf("children block should center on parent: mid=%g parent=%g", mid, byLabel["R"].Y)
	}
}

func TestHorizontalColumnOffset(t *testing.T) {
	tree := scenarioTree()
	r := Horizontal(tree)

	root := r.Nodes[0]
	var a, b Placed
	for _, n := range r.Nodes {
		switch n.Label {
		case "A":
			a = n
		case "B":
			b = n
		}
	}

	maxChildW := math.Max(a.W, b.W)
	wantX := root.X + root.W/2 + horizontalColumnGap + maxChildW/2
	if math.Abs(a.X-wantX) > 1e-9 {
		t.Errorf("child column x = %g, want %g", a.X, wantX)
	}
}

func TestHorizontalDeterminism(t *testing.T) {
	input := "# R\n## A\n- a1\n## B\n- b1\n- b2"
	r1 := Horizontal(outline.Parse(input))
	r2 := Horizontal(outline.Parse(input))

	for i := range r1.Nodes {
		if r1.Nodes[i] != r2.Nodes[i] {
			t.Errorf("node %d differs between runs", i)
		}
	}
}

func TestFontAndPaddingScales(t *testing.T) {
	if got := FontSizeFor(1); got != 36 {
		t.Errorf("FontSizeFor(1) = %g, want 36", got)
	}
	if got := FontSizeFor(10); got != 24 {
		t.Errorf("FontSizeFor(10) = %g, want floor 24", got)
	}
	if got := PaddingFor(1); got != 16 {
		t.Errorf("PaddingFor(1) = %g, want 16", got)
	}
	if got := PaddingFor(10); got != 10 {
		t.Errorf("PaddingFor(10) = %g, want floor 10", got)
	}
}

func TestEstimateWidth(t *testing.T) {
	// Narrow runes weigh 0.6, wide runes 1.0, scaled by 0.4 plus 0.8 pad.
	if got := estimateWidth("ab", 1); math.Abs(got-(1.2*0.4+0.8)) > 1e-9 {
		t.Errorf("estimateWidth(ab, 1) = %g", got)
	}
	wide := estimateWidth("日本", 1)
	narrow := estimateWidth("ab", 1)
	if wide <= narrow {
		t.Error("wide runes should measure wider than narrow runes")
	}
	// Depth shrinks the estimate down to a floor factor
	if estimateWidth("abcdef", 5) >= estimateWidth("abcdef", 1) {
		t.Error("width should shrink with depth")
	}
}

func TestBoxGeometry(t *testing.T) {
	b := Box{W: 6, H: 8}
	if got := b.HalfDiagonal(); math.Abs(got-5) > 1e-9 {
		t.Errorf("HalfDiagonal = %g, want 5", got)
	}

	a := Box{X: 0, Y: 0, W: 10, H: 10}
	c := Box{X: 20, Y: 0, W: 10, H: 10}
	if a.Intersects(c, 0) {
		t.Error("separated boxes should not intersect")
	}
	// The margin grows only the receiver, so it must span the whole gap.
	if a.Intersects(c, 6) {
		t.Error("margin smaller than the gap should not intersect")
	}
	if !a.Intersects(c, 10) {
		t.Error("margin spanning the gap should intersect")
	}
	if !a.Intersects(Box{X: 5, Y: 5, W: 10, H: 10}, 0) {
		t.Error("overlapping boxes should intersect")
	}
}

func TestKindValid(t *testing.T) {
	if !KindRadial.Valid() || !KindHorizontal.Valid() {
		t.Error("builtin kinds should be valid")
	}
	if Kind("diagonal").Valid() {
		t.Error("unknown kind should be invalid")
	}
}
