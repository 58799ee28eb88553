// Package pkg provides the core libraries for Mindweave mind map generation.
//
// # Overview
//
// Mindweave transforms text outlines (markdown-style headings and nested
// lists) into mind map images. The pkg directory is organized into five
// main areas:
//
//  1. [outline] - Outline parsing into a single-rooted tree
//  2. [layout] - Radial and horizontal layout engines
//  3. [render] - Output sinks (SVG, PNG, DOT, JSON)
//  4. [pipeline] - Orchestration (parse → layout → render) with caching
//  5. [mindmap] - Serialization types for computed layouts
//
// # Architecture
//
// The typical data flow through Mindweave:
//
//	Outline text (headings + lists)
//	         ↓
//	    [outline] package (parse into tree)
//	         ↓
//	    [layout] package (radial or horizontal placement)
//	         ↓
//	    [render] package (SVG/PNG/DOT/JSON sinks)
//	         ↓
//	    image/document output
//
// # Quick Start
//
// Run the complete pipeline with caching:
//
//	import "github.com/mindweave/mindweave/pkg/pipeline"
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	result, err := runner.Execute(ctx, pipeline.Options{
//	    OutlineText: "# Topic\n## Branch\n- Leaf",
//	    LayoutKind:  "auto",
//	    Formats:     []string{"svg"},
//	})
//	svg := result.Artifacts["svg"]
//
// Or drive the stages directly:
//
//	tree := outline.Parse(text)
//	r := layout.Radial(tree, fonts.NewMeasurer())
//	l := mindmap.FromResult(r)
//	svg := render.RenderSVG(l)
//
// # Main Packages
//
// [outline] - Parses heading and list lines into a tree. Never fails:
// unusable input degrades to a default single-node tree.
//
// [layout] - Two engines. The radial engine partitions angular space
// around a central root proportionally to subtree weight and pushes nodes
// outward past collisions. The horizontal engine packs subtrees into
// left-to-right columns by estimated height.
//
// [fonts] - Real text measurement via an embedded Go font face, with a
// character-count fallback estimator.
//
// [render] - Rendering sinks over serialized layouts: native SVG, raster
// PNG, and Graphviz DOT with pinned positions.
//
// [mindmap] - The canonical serialization format shared by API responses,
// cache entries, and rendering sinks.
//
// [pipeline] - Complete pipeline used by CLI and API. Layouts are cached
// by outline content hash, artifacts by layout content hash.
//
// [cache] - Cache backends: file (CLI), Redis and MongoDB (server), and a
// null cache for tests, behind one interface.
//
// [errors] - Structured error codes shared by CLI and API.
//
// [observability] - Optional hooks for metrics and tracing without hard
// backend dependencies.
//
// [outline]: https://pkg.go.dev/github.com/mindweave/mindweave/pkg/outline
// [layout]: https://pkg.go.dev/github.com/mindweave/mindweave/pkg/layout
// [fonts]: https://pkg.go.dev/github.com/mindweave/mindweave/pkg/fonts
// [render]: https://pkg.go.dev/github.com/mindweave/mindweave/pkg/render
// [mindmap]: https://pkg.go.dev/github.com/mindweave/mindweave/pkg/mindmap
// [pipeline]: https://pkg.go.dev/github.com/mindweave/mindweave/pkg/pipeline
// [cache]: https://pkg.go.dev/github.com/mindweave/mindweave/pkg/cache
// [errors]: https://pkg.go.dev/github.com/mindweave/mindweave/pkg/errors
// [observability]: https://pkg.go.dev/github.com/mindweave/mindweave/pkg/observability
package pkg
