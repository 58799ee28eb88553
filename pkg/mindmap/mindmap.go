// Package mindmap defines the canonical serialization format for computed
// mind map layouts: flat node records with resolved geometry and colors,
// connector curves, and the canvas extent. The format is shared by API
// responses, cache entries, and rendering sinks.
package mindmap

import (
	"encoding/json"
	"fmt"
	"os"

	"github.com/mindweave/mindweave/pkg/layout"
)

// =============================================================================
// Layout - Computed Mind Map Serialization
// =============================================================================

// Layout is the serialized result of one layout computation. It is
// self-contained: a rendering sink needs nothing but a Layout to draw the
// map. The format is designed for round-trip fidelity through JSON and
// document stores.
type Layout struct {
	LayoutKind string      `json:"layout_kind" bson:"layout_kind"`
	Nodes      []Node      `json:"nodes" bson:"nodes"`
	Connectors []Connector `json:"connectors" bson:"connectors"`
	Canvas     Canvas      `json:"canvas" bson:"canvas"`
	NodeCount  int         `json:"node_count" bson:"node_count"`
	MaxDepth   int         `json:"max_depth" bson:"max_depth"`
}

// Node is one positioned label box. Parent is the slice index of the parent
// node, -1 for the root, so the tree can be reconstructed from the flat list.
type Node struct {
	Label  string `json:"label" bson:"label"`
	Depth  int    `json:"depth" bson:"depth"`
	Parent int    `json:"parent" bson:"parent"`

	X float64 `json:"x" bson:"x"`
	Y float64 `json:"y" bson:"y"`
	W float64 `json:"w" bson:"w"`
	H float64 `json:"h" bson:"h"`

	Color string `json:"color" bson:"color"`

	Weight        int     `json:"weight,omitempty" bson:"weight,omitempty"`
	SubtreeHeight float64 `json:"subtree_height,omitempty" bson:"subtree_height,omitempty"`

	// Clean is false when the node was placed despite residual overlap.
	Clean bool `json:"clean" bson:"clean"`
}

// IsRoot returns true for the tree root.
func (n *Node) IsRoot() bool { return n.Parent < 0 }

// Connector is one parent-to-child cubic Bézier stroke.
type Connector struct {
	X1  float64 `json:"x1" bson:"x1"`
	Y1  float64 `json:"y1" bson:"y1"`
	CX1 float64 `json:"cx1" bson:"cx1"`
	CY1 float64 `json:"cy1" bson:"cy1"`
	CX2 float64 `json:"cx2" bson:"cx2"`
	CY2 float64 `json:"cy2" bson:"cy2"`
	X2  float64 `json:"x2" bson:"x2"`
	Y2  float64 `json:"y2" bson:"y2"`

	Color string  `json:"color" bson:"color"`
	Width float64 `json:"width" bson:"width"`
}

// Canvas is the drawing extent, mirroring layout.Canvas.
type Canvas struct {
	MinX float64 `json:"min_x" bson:"min_x"`
	MinY float64 `json:"min_y" bson:"min_y"`
	MaxX float64 `json:"max_x" bson:"max_x"`
	MaxY float64 `json:"max_y" bson:"max_y"`

	MarginX float64 `json:"margin_x" bson:"margin_x"`
	MarginY float64 `json:"margin_y" bson:"margin_y"`

	Width  float64 `json:"width" bson:"width"`
	Height float64 `json:"height" bson:"height"`

	PxPerUnit float64 `json:"px_per_unit" bson:"px_per_unit"`
}

// =============================================================================
// layout.Result ↔ Layout Conversion
// =============================================================================

// FromResult converts an engine result to its serialization format.
func FromResult(r *layout.Result) Layout {
	out := Layout{
		LayoutKind: string(r.Kind),
		Nodes:      make([]Node, len(r.Nodes)),
		Connectors: make([]Connector, len(r.Connectors)),
		Canvas:     canvasFrom(r.Canvas),
		NodeCount:  r.NodeCount(),
		MaxDepth:   r.MaxDepth,
	}
	for i, n := range r.Nodes {
		out.Nodes[i] = Node{
			Label:         n.Label,
			Depth:         n.Depth,
			Parent:        n.Parent,
			X:             n.X,
			Y:             n.Y,
			W:             n.W,
			H:             n.H,
			Color:         n.Color,
			Weight:        n.Weight,
			SubtreeHeight: n.SubtreeHeight,
			Clean:         n.Clean,
		}
	}
	for i, c := range r.Connectors {
		out.Connectors[i] = Connector{
			X1: c.X1, Y1: c.Y1,
			CX1: c.CX1, CY1: c.CY1,
			CX2: c.CX2, CY2: c.CY2,
			X2: c.X2, Y2: c.Y2,
			Color: c.Color,
			Width: c.Width,
		}
	}
	return out
}

func canvasFrom(c layout.Canvas) Canvas {
	return Canvas{
		MinX: c.MinX, MinY: c.MinY, MaxX: c.MaxX, MaxY: c.MaxY,
		MarginX: c.MarginX, MarginY: c.MarginY,
		Width: c.Width, Height: c.Height,
		PxPerUnit: c.PxPerUnit,
	}
}

// Kind returns the parsed layout kind.
func (l *Layout) Kind() layout.Kind { return layout.Kind(l.LayoutKind) }

// =============================================================================
// Marshaling
// =============================================================================

// Marshal serializes a Layout to indented JSON.
func Marshal(l Layout) ([]byte, error) {
	return json.MarshalIndent(l, "", "  ")
}

// Unmarshal deserializes JSON bytes to a Layout.
func Unmarshal(data []byte) (Layout, error) {
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return Layout{}, err
	}
	return l, nil
}

// WriteLayoutFile serializes a layout and writes it to disk.
func WriteLayoutFile(l Layout, path string) error {
	data, err := Marshal(l)
	if err != nil {
		return fmt.Errorf("serialize layout: %w", err)
	}
	if err := os.WriteFile(path, data, 0o644); err != nil {
		return fmt.Errorf("write layout file: %w", err)
	}
	return nil
}

// ReadLayoutFile loads and validates a serialized layout from disk.
func ReadLayoutFile(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("read layout file: %w", err)
	}
	l, err := Unmarshal(data)
	if err != nil {
		return Layout{}, fmt.Errorf("parse layout file %s: %w", path, err)
	}
	if len(l.Nodes) == 0 {
		return Layout{}, fmt.Errorf("layout file %s contains no nodes", path)
	}
	return l, nil
}
