package layout

import "math"

// Canvas is the drawing extent a rendering sink needs: the tight bounds of
// the placed boxes, the margins the layout requests around them, and the
// final width/height including margins, floored and clamped per engine.
//
// PxPerUnit is the suggested unit-to-pixel factor. Radial layouts already
// work in pixel-equivalent units (factor 1); horizontal layouts work in
// abstract units sized for an 80 px/unit raster.
type Canvas struct {
	MinX, MinY float64
	MaxX, MaxY float64

	MarginX, MarginY float64

	Width, Height float64

	PxPerUnit float64
}

// CenterX returns the horizontal midpoint of the content bounds.
func (c Canvas) CenterX() float64 { return (c.MinX + c.MaxX) / 2 }

// CenterY returns the vertical midpoint of the content bounds.
func (c Canvas) CenterY() float64 { return (c.MinY + c.MaxY) / 2 }

// Radial canvas sizing.
const (
	radialMarginBase     = 150.0
	radialMarginPerDepth = 30.0
	radialMinWidth       = 1000.0
	radialMinHeight      = 800.0
)

// radialCanvas computes the square-ish extent around a radial layout. The
// margin grows with tree depth, and the canvas is floored both by fixed
// minimums and by the outermost node's center distance, so the layout can
// always be centered without clipping.
func radialCanvas(nodes []Placed, maxDepth int) Canvas {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)
	maxRadius := 0.0

	for i := range nodes {
		n := &nodes[i]
		minX = math.Min(minX, n.X-n.W/2)
		maxX = math.Max(maxX, n.X+n.W/2)
		minY = math.Min(minY, n.Y-n.H/2)
		maxY = math.Max(maxY, n.Y+n.H/2)

		half := Box{W: n.W, H: n.H}.HalfDiagonal()
		if r := math.Hypot(n.X, n.Y) + half; r > maxRadius {
			maxRadius = r
		}
	}
	if len(nodes) == 0 {
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}

	margin := radialMarginBase + radialMarginPerDepth*float64(maxDepth)
	radiusFloor := (maxRadius + margin) * 2

	width := math.Max(maxX-minX+2*margin, radiusFloor)
	width = math.Max(width, radialMinWidth)
	height := math.Max(maxY-minY+2*margin, radiusFloor)
	height = math.Max(height, radialMinHeight)

	return Canvas{
		MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY,
		MarginX: margin, MarginY: margin,
		Width: width, Height: height,
		PxPerUnit: 1,
	}
}

// Horizontal canvas sizing, in layout units.
const (
	horizontalMarginX   = 2.0
	horizontalMarginY   = 1.5
	horizontalMinWidth  = 12.0
	horizontalMinHeight = 8.0
	horizontalMaxExtent = 200.0
	horizontalPxPerUnit = 80.0
)

// horizontalCanvas computes the extent around a horizontal layout: fixed
// margins, minimum content floors, and a hard clamp that keeps degenerate
// deep-and-wide trees from producing unboundedly large rasters.
func horizontalCanvas(nodes []Placed) Canvas {
	minX, minY := math.Inf(1), math.Inf(1)
	maxX, maxY := math.Inf(-1), math.Inf(-1)

	for i := range nodes {
		n := &nodes[i]
		minX = math.Min(minX, n.X-n.W/2)
		maxX = math.Max(maxX, n.X+n.W/2)
		minY = math.Min(minY, n.Y-n.H/2)
		maxY = math.Max(maxY, n.Y+n.H/2)
	}
	if len(nodes) == 0 {
		minX, minY, maxX, maxY = 0, 0, 0, 0
	}

	width := maxX - minX + 2*horizontalMarginX
	width = math.Min(math.Max(width, horizontalMinWidth), horizontalMaxExtent)
	height := maxY - minY + 2*horizontalMarginY
	height = math.Min(math.Max(height, horizontalMinHeight), horizontalMaxExtent)

	return Canvas{
		MinX: minX, MinY: minY, MaxX: maxX, MaxY: maxY,
		MarginX: horizontalMarginX, MarginY: horizontalMarginY,
		Width: width, Height: height,
		PxPerUnit: horizontalPxPerUnit,
	}
}
