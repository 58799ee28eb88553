package render

import (
	"bytes"
	"fmt"
	"math"

	"github.com/fogleman/gg"

	"github.com/mindweave/mindweave/pkg/fonts"
	"github.com/mindweave/mindweave/pkg/layout"
	"github.com/mindweave/mindweave/pkg/mindmap"
)

// RenderPNG rasterizes a layout with the embedded typeface. Draw order
// matches the SVG sink: background, connectors, then node boxes and labels.
func RenderPNG(l mindmap.Layout, opts ...SVGOption) ([]byte, error) {
	r := svgRenderer{background: DefaultBackground}
	for _, opt := range opts {
		opt(&r)
	}

	f := newFrame(l.Canvas)
	dc := gg.NewContext(int(math.Ceil(f.w)), int(math.Ceil(f.h)))

	dc.SetHexColor(r.background)
	dc.Clear()

	for _, c := range l.Connectors {
		dc.MoveTo(f.x(c.X1), f.y(c.Y1))
		dc.CubicTo(
			f.x(c.CX1), f.y(c.CY1),
			f.x(c.CX2), f.y(c.CY2),
			f.x(c.X2), f.y(c.Y2))
		dc.SetHexColor(c.Color)
		dc.SetLineWidth(c.Width)
		dc.Stroke()
	}

	radial := l.Kind() == layout.KindRadial
	for i := range l.Nodes {
		if err := drawPNGNode(dc, f, &l.Nodes[i], radial); err != nil {
			return nil, err
		}
	}

	var buf bytes.Buffer
	if err := dc.EncodePNG(&buf); err != nil {
		return nil, fmt.Errorf("encode png: %w", err)
	}
	return buf.Bytes(), nil
}

func drawPNGNode(dc *gg.Context, f frame, n *mindmap.Node, radial bool) error {
	cx, cy := f.x(n.X), f.y(n.Y)
	w, h := n.W*f.scale, n.H*f.scale

	fill, stroke, text := n.Color, "", "#FFFFFF"
	if !radial {
		fill, stroke, text = "#FFFFFF", n.Color, n.Color
		if n.IsRoot() {
			fill, text = n.Color, "#FFFFFF"
		}
	}

	dc.DrawRoundedRectangle(cx-w/2, cy-h/2, w, h, svgCornerRadius(f, radial))
	dc.SetHexColor(fill)
	dc.FillPreserve()
	if stroke != "" {
		dc.SetHexColor(stroke)
		dc.SetLineWidth(2)
		dc.Stroke()
	} else {
		dc.ClearPath()
	}

	size := svgFontSize(f, n.Depth, radial)
	face, err := fonts.Face(size)
	if err != nil {
		return fmt.Errorf("load face for label %q: %w", n.Label, err)
	}
	dc.SetFontFace(face)
	dc.SetHexColor(text)
	dc.DrawStringAnchored(n.Label, cx, cy, 0.5, 0.5)
	return nil
}
