// Package pipeline provides the core mind map pipeline for Mindweave.
//
// This package implements the complete parse → layout → render pipeline that
// can be used by CLI, API, and worker components. By centralizing this logic,
// we ensure consistent behavior across all entry points and avoid code duplication.
//
// # Architecture
//
// The pipeline consists of three stages:
//
//  1. Parse: Convert outline text (headings and nested lists) into a tree
//  2. Layout: Compute collision-free positions for every node
//  3. Render: Generate output in various formats (SVG, PNG, DOT, JSON)
//
// Each stage can be run independently or as part of the complete pipeline.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.Options{
//	    OutlineText: text,
//	    LayoutKind:  "radial",
//	    Formats:     []string{"svg"},
//	}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	svg := result.Artifacts["svg"]
//
// Run individual stages:
//
//	// Parse only
//	tree, err := runner.Parse(ctx, opts)
//
//	// Layout with existing tree
//	layout, err := runner.ComputeLayout(ctx, tree, pipeline.OutlineHash(text), opts)
//
//	// Render with existing layout
//	artifacts, err := runner.Render(ctx, layout, opts)
package pipeline

import (
	"io"
	"time"

	"github.com/charmbracelet/log"

	"github.com/mindweave/mindweave/pkg/cache"
	"github.com/mindweave/mindweave/pkg/errors"
	"github.com/mindweave/mindweave/pkg/layout"
	"github.com/mindweave/mindweave/pkg/mindmap"
	"github.com/mindweave/mindweave/pkg/outline"
	"github.com/mindweave/mindweave/pkg/render"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI, API, and Worker
// =============================================================================

// KindAuto selects the layout engine from the tree's shape: compact trees
// get the radial engine, deep or very large ones the horizontal engine.
const KindAuto = "auto"

// DefaultLayoutKind is the default layout selection.
const DefaultLayoutKind = KindAuto

// DefaultFormat is the default output format.
const DefaultFormat = string(render.FormatSVG)

// Auto-selection thresholds. Radial maps get crowded once trees grow deep
// or node-heavy; past either threshold the horizontal engine reads better.
const (
	autoMaxRadialDepth = 3
	autoMaxRadialNodes = 40
)

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the mind map pipeline.
// This struct supports JSON serialization for API requests.
type Options struct {
	// Parse options
	OutlineText string `json:"outline_text"`

	// Layout options
	LayoutKind string `json:"layout_kind,omitempty"` // radial, horizontal, or auto

	// Render options
	Formats []string `json:"formats,omitempty"`

	// Refresh bypasses cached layouts and artifacts.
	Refresh bool `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger  *log.Logger    `json:"-"`
	Metrics layout.Metrics `json:"-"` // label measurement override, mainly for tests

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool `json:"-"`
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Tree is the parsed outline.
	Tree *outline.Node

	// OutlineHash is the content hash of the source text.
	OutlineHash string

	// Layout contains the computed positions, connectors, and canvas.
	Layout mindmap.Layout

	// LayoutHash is the content hash of the serialized layout.
	LayoutHash string

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and size information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	NodeCount  int
	MaxDepth   int
	ParseTime  time.Duration
	LayoutTime time.Duration
	RenderTime time.Duration
}

// CacheInfo tracks cache hits for each cached pipeline stage. Parsing is a
// pure in-memory transformation and is never cached.
type CacheInfo struct {
	LayoutHit bool // Whether the layout came from cache
	RenderHit bool // Whether all artifacts came from cache
}

// OutlineHash returns the content hash of raw outline text, used as the
// layout cache key prefix.
func OutlineHash(text string) string {
	return cache.Hash([]byte(text))
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if _, err := render.ParseFormat(f); err != nil {
			return errors.New(errors.ErrCodeInvalidFormat, "%s", err.Error())
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks required fields and applies defaults for the full pipeline.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForParse(); err != nil {
		return err
	}
	if err := o.ValidateForLayout(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForParse checks required fields for parsing.
func (o *Options) ValidateForParse() error {
	if err := errors.ValidateOutlineText(o.OutlineText); err != nil {
		return err
	}
	o.setRuntimeDefaults()
	return nil
}

// ValidateForLayout validates and sets defaults for layout computation.
func (o *Options) ValidateForLayout() error {
	if o.LayoutKind == "" {
		o.LayoutKind = DefaultLayoutKind
	}
	o.setRuntimeDefaults()
	return errors.ValidateLayoutKind(o.LayoutKind)
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	if len(o.Formats) == 0 {
		o.Formats = []string{DefaultFormat}
	}
	o.setRuntimeDefaults()
	return ValidateFormats(o.Formats)
}

func (o *Options) setRuntimeDefaults() {
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ResolveKind maps the configured layout kind to a concrete engine for the
// given tree, applying the auto-selection heuristic when needed.
func (o *Options) ResolveKind(tree *outline.Node) layout.Kind {
	switch o.LayoutKind {
	case string(layout.KindRadial):
		return layout.KindRadial
	case string(layout.KindHorizontal):
		return layout.KindHorizontal
	}

	// Auto: depth beyond the root counts against the radial threshold.
	if tree.MaxDepth()-1 > autoMaxRadialDepth || tree.Count() > autoMaxRadialNodes {
		return layout.KindHorizontal
	}
	return layout.KindRadial
}

// LayoutKeyOpts returns cache key options for layout computation.
func (o *Options) LayoutKeyOpts(kind layout.Kind) cache.LayoutKeyOpts {
	return cache.LayoutKeyOpts{
		Kind: string(kind),
	}
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	return cache.ArtifactKeyOpts{
		Format: format,
	}
}
