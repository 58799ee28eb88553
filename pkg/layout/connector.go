package layout

import "math"

// Connector is one parent-to-child cubic Bézier curve. Coordinates are in
// the same unit system as the node positions of the Result that carries it.
type Connector struct {
	// Curve endpoints. For horizontal layouts the endpoints are retracted
	// inside the node boxes so the stroke visually emerges from the box
	// instead of touching its border.
	X1, Y1 float64
	X2, Y2 float64

	// Control points.
	CX1, CY1 float64
	CX2, CY2 float64

	Color string
	Width float64
}

// radialConnectorEpsilon is the center distance below which a curve
// degenerates to a straight segment.
const radialConnectorEpsilon = 1e-9

// radialConnectors builds one center-to-center curve per parent/child pair.
// Control points sit at 40% and 60% of the way along the parent-to-child
// direction, giving a gentle bow that follows the outward ray.
func radialConnectors(nodes []Placed) []Connector {
	conns := make([]Connector, 0, len(nodes))
	for i := range nodes {
		c := &nodes[i]
		if c.Parent < 0 {
			continue
		}
		p := &nodes[c.Parent]

		conn := Connector{
			X1:    p.X,
			Y1:    p.Y,
			X2:    c.X,
			Y2:    c.Y,
			Color: c.Color,
			Width: math.Max(3-0.5*float64(c.Depth), 1),
		}

		dx, dy := c.X-p.X, c.Y-p.Y
		dist := math.Hypot(dx, dy)
		if dist < radialConnectorEpsilon {
			// Degenerate geometry: straight segment.
			conn.CX1, conn.CY1 = p.X, p.Y
			conn.CX2, conn.CY2 = c.X, c.Y
		} else {
			ux, uy := dx/dist, dy/dist
			cpDist := 0.4 * dist
			conn.CX1 = p.X + ux*cpDist
			conn.CY1 = p.Y + uy*cpDist
			conn.CX2 = c.X - 0.4*dx
			conn.CY2 = c.Y - 0.4*dy
		}

		conns = append(conns, conn)
	}
	return conns
}

// horizontalConnectorMaxBend caps the control point offset so short gaps
// stay gently curved and long gaps do not balloon.
const horizontalConnectorMaxBend = 4.0

// horizontalConnectors builds one left-to-right S-curve per parent/child
// pair. Endpoints retract to 60% of the half-width inside each box; control
// points extend horizontally from the visual box edges by 60% of the
// horizontal gap, clamped.
func horizontalConnectors(nodes []Placed) []Connector {
	conns := make([]Connector, 0, len(nodes))
	for i := range nodes {
		c := &nodes[i]
		if c.Parent < 0 {
			continue
		}
		p := &nodes[c.Parent]

		parentRight := p.X + p.W/2
		childLeft := c.X - c.W/2
		bend := math.Min(0.6*math.Abs(childLeft-parentRight), horizontalConnectorMaxBend)

		conns = append(conns, Connector{
			X1:    p.X + p.W/2*0.6,
			Y1:    p.Y,
			X2:    c.X - c.W/2*0.6,
			Y2:    c.Y,
			CX1:   parentRight + bend,
			CY1:   p.Y,
			CX2:   childLeft - bend,
			CY2:   c.Y,
			Color: c.Color,
			Width: math.Max(3-0.3*float64(c.Depth), 1),
		})
	}
	return conns
}
