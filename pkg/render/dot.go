package render

import (
	"bytes"
	"context"
	"fmt"

	"github.com/goccy/go-graphviz"

	"github.com/mindweave/mindweave/pkg/mindmap"
)

// ToDOT converts a layout to Graphviz DOT with pinned node positions, so
// neato reproduces the computed geometry instead of re-laying-out the tree.
// Positions are emitted in points; the pin suffix ("!") keeps them fixed.
func ToDOT(l mindmap.Layout) string {
	var buf bytes.Buffer
	buf.WriteString("graph mindmap {\n")
	buf.WriteString("  layout=neato;\n")
	buf.WriteString("  bgcolor=\"transparent\";\n")
	buf.WriteString("  node [shape=box, style=\"rounded,filled\", fontname=\"Helvetica\", fontcolor=white];\n")
	buf.WriteString("  edge [penwidth=1.5];\n")
	buf.WriteString("\n")

	scale := l.Canvas.PxPerUnit
	if scale <= 0 {
		scale = 1
	}

	for i := range l.Nodes {
		n := &l.Nodes[i]
		fmt.Fprintf(&buf, "  n%d [label=%q, fillcolor=%q, pos=\"%.1f,%.1f!\", width=%.2f, height=%.2f, fixedsize=true];\n",
			i, n.Label, n.Color,
			n.X*scale, n.Y*scale,
			n.W*scale/72, n.H*scale/72)
	}

	buf.WriteString("\n")
	for i := range l.Nodes {
		n := &l.Nodes[i]
		if n.Parent < 0 {
			continue
		}
		fmt.Fprintf(&buf, "  n%d -- n%d [color=%q];\n", n.Parent, i, n.Color)
	}

	buf.WriteString("}\n")
	return buf.String()
}

// RenderDOTSVG renders DOT text to SVG through the Graphviz bindings. It
// backs the dot-svg output format; the pinned positions keep the result
// geometrically faithful to the computed layout.
func RenderDOTSVG(ctx context.Context, dot string) ([]byte, error) {
	gv, err := graphviz.New(ctx)
	if err != nil {
		return nil, fmt.Errorf("init graphviz: %w", err)
	}
	defer gv.Close()

	g, err := graphviz.ParseBytes([]byte(dot))
	if err != nil {
		return nil, fmt.Errorf("parse DOT: %w", err)
	}
	defer g.Close()

	var buf bytes.Buffer
	if err := gv.Render(ctx, g, graphviz.SVG, &buf); err != nil {
		return nil, fmt.Errorf("render: %w", err)
	}
	return buf.Bytes(), nil
}
