package render

import (
	"bytes"
	"fmt"
	"math"
	"strings"

	"github.com/mindweave/mindweave/pkg/fonts"
	"github.com/mindweave/mindweave/pkg/layout"
	"github.com/mindweave/mindweave/pkg/mindmap"
)

// DefaultBackground is the page fill behind the map.
const DefaultBackground = "#FAFAFA"

type SVGOption func(*svgRenderer)

type svgRenderer struct {
	background string
	fontFamily string
}

func WithBackground(color string) SVGOption {
	return func(r *svgRenderer) { r.background = color }
}

func WithFontFamily(family string) SVGOption {
	return func(r *svgRenderer) { r.fontFamily = family }
}

// RenderSVG renders a layout to a standalone SVG document. Connectors are
// drawn first so node boxes sit on top of their strokes.
func RenderSVG(l mindmap.Layout, opts ...SVGOption) []byte {
	r := svgRenderer{
		background: DefaultBackground,
		fontFamily: fonts.FallbackFontFamily,
	}
	for _, opt := range opts {
		opt(&r)
	}

	f := newFrame(l.Canvas)

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		f.w, f.h, f.w, f.h)
	fmt.Fprintf(&buf, `  <rect x="0" y="0" width="%.1f" height="%.1f" fill="%s"/>`+"\n",
		f.w, f.h, r.background)

	for _, c := range l.Connectors {
		fmt.Fprintf(&buf,
			`  <path d="M %.1f %.1f C %.1f %.1f, %.1f %.1f, %.1f %.1f" fill="none" stroke="%s" stroke-width="%.1f" stroke-linecap="round" opacity="0.75"/>`+"\n",
			f.x(c.X1), f.y(c.Y1),
			f.x(c.CX1), f.y(c.CY1),
			f.x(c.CX2), f.y(c.CY2),
			f.x(c.X2), f.y(c.Y2),
			c.Color, c.Width)
	}

	radial := l.Kind() == layout.KindRadial
	for i := range l.Nodes {
		renderSVGNode(&buf, &r, f, &l.Nodes[i], radial)
	}

	buf.WriteString("</svg>\n")
	return buf.Bytes()
}

func renderSVGNode(buf *bytes.Buffer, r *svgRenderer, f frame, n *mindmap.Node, radial bool) {
	cx, cy := f.x(n.X), f.y(n.Y)
	w, h := n.W*f.scale, n.H*f.scale

	// Radial boxes are filled with the branch color and carry white text;
	// horizontal boxes are white with a colored border and colored text.
	fill, stroke, text := n.Color, "none", "#FFFFFF"
	if !radial {
		fill, stroke, text = "#FFFFFF", n.Color, n.Color
		if n.IsRoot() {
			fill, text = n.Color, "#FFFFFF"
		}
	}

	radius := svgCornerRadius(f, radial)
	fmt.Fprintf(buf,
		`  <rect x="%.1f" y="%.1f" width="%.1f" height="%.1f" rx="%.1f" fill="%s" stroke="%s" stroke-width="2"/>`+"\n",
		cx-w/2, cy-h/2, w, h, radius, fill, stroke)

	fmt.Fprintf(buf,
		`  <text x="%.1f" y="%.1f" text-anchor="middle" dominant-baseline="central" font-family=%q font-size="%.1f" fill="%s">%s</text>`+"\n",
		cx, cy, r.fontFamily, svgFontSize(f, n.Depth, radial), text, escapeXML(n.Label))
}

func svgCornerRadius(f frame, radial bool) float64 {
	if radial {
		return 12
	}
	return 0.18 * f.scale
}

// svgFontSize picks the label size per depth. Radial layouts already work
// in pixel units; horizontal layouts derive sizes from the unit scale so
// labels fill their one-unit-tall boxes.
func svgFontSize(f frame, depth int, radial bool) float64 {
	if radial {
		return layout.FontSizeFor(depth)
	}
	return math.Max(0.34-0.04*float64(depth-1), 0.18) * f.scale
}

var xmlEscaper = strings.NewReplacer(
	"&", "&amp;",
	"<", "&lt;",
	">", "&gt;",
	`"`, "&quot;",
)

func escapeXML(s string) string { return xmlEscaper.Replace(s) }
