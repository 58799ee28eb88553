package render

import (
	"context"
	"fmt"
	"strings"

	"github.com/mindweave/mindweave/pkg/mindmap"
)

// Format identifies an output document format.
type Format string

// Supported output formats. FormatDOTSVG runs the DOT export through the
// Graphviz engine and returns its SVG rendering, as an alternative to the
// native FormatSVG sink.
const (
	FormatSVG    Format = "svg"
	FormatPNG    Format = "png"
	FormatDOT    Format = "dot"
	FormatDOTSVG Format = "dot-svg"
	FormatJSON   Format = "json"
)

// AllFormats lists the supported formats in presentation order.
var AllFormats = []Format{FormatSVG, FormatPNG, FormatDOT, FormatDOTSVG, FormatJSON}

// ParseFormat normalizes a user-supplied format string.
func ParseFormat(s string) (Format, error) {
	f := Format(strings.ToLower(strings.TrimSpace(s)))
	for _, known := range AllFormats {
		if f == known {
			return f, nil
		}
	}
	return "", fmt.Errorf("unknown output format %q (supported: svg, png, dot, dot-svg, json)", s)
}

// Ext returns the file extension for the format, without the dot. The
// Graphviz SVG format uses a compound extension so it never collides with
// the native SVG sink's output file.
func (f Format) Ext() string {
	if f == FormatDOTSVG {
		return "dot.svg"
	}
	return string(f)
}

// Render produces the document bytes for a layout in the given format.
// The context is honored by the Graphviz-backed dot-svg path; the other
// sinks are synchronous in-memory computations.
func Render(ctx context.Context, l mindmap.Layout, format Format) ([]byte, error) {
	switch format {
	case FormatSVG:
		return RenderSVG(l), nil
	case FormatPNG:
		return RenderPNG(l)
	case FormatDOT:
		return []byte(ToDOT(l)), nil
	case FormatDOTSVG:
		return RenderDOTSVG(ctx, ToDOT(l))
	case FormatJSON:
		return mindmap.Marshal(l)
	default:
		return nil, fmt.Errorf("unknown output format %q", format)
	}
}

// frame maps layout units to output pixels. Layout space is y-up with the
// structure centered near the origin; document space is y-down with the
// origin at the top left. The canvas width/height already include margins
// and minimum-size floors, so content is centered inside the final frame.
type frame struct {
	scale   float64
	w, h    float64
	centerX float64
	centerY float64
}

func newFrame(c mindmap.Canvas) frame {
	scale := c.PxPerUnit
	if scale <= 0 {
		scale = 1
	}
	return frame{
		scale:   scale,
		w:       c.Width * scale,
		h:       c.Height * scale,
		centerX: (c.MinX + c.MaxX) / 2,
		centerY: (c.MinY + c.MaxY) / 2,
	}
}

func (f frame) x(v float64) float64 { return (v-f.centerX)*f.scale + f.w/2 }
func (f frame) y(v float64) float64 { return f.h/2 - (v-f.centerY)*f.scale }
