// Package render turns serialized mind map layouts into output documents.
//
// # Overview
//
// Three sinks are provided, all consuming the same [mindmap.Layout]:
//
//   - SVG: hand-built vector output, the primary format
//   - PNG: rasterized with fogleman/gg and the embedded typeface
//   - DOT: a Graphviz view of the tree with pinned node positions,
//     renderable to SVG through the goccy/go-graphviz bindings
//
// All sinks are pure functions of the layout; pixel mapping follows the
// canvas's PxPerUnit hint.
//
// [mindmap.Layout]: github.com/mindweave/mindweave/pkg/mindmap
package render
