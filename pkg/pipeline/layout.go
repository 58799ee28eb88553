package pipeline

import (
	"context"
	"time"

	"github.com/mindweave/mindweave/pkg/fonts"
	"github.com/mindweave/mindweave/pkg/layout"
	"github.com/mindweave/mindweave/pkg/mindmap"
	"github.com/mindweave/mindweave/pkg/observability"
	"github.com/mindweave/mindweave/pkg/outline"
)

// =============================================================================
// Layout Generation
// =============================================================================

// GenerateLayout computes a complete, serializable layout for the tree.
// This is the unified entry point for both engines; the auto kind is
// resolved here against the tree's shape.
func GenerateLayout(ctx context.Context, tree *outline.Node, opts Options) (mindmap.Layout, error) {
	if err := opts.ValidateForLayout(); err != nil {
		return mindmap.Layout{}, err
	}

	kind := opts.ResolveKind(tree)

	observability.Pipeline().OnLayoutStart(ctx, string(kind), tree.Count())
	start := time.Now()

	var result *layout.Result
	switch kind {
	case layout.KindHorizontal:
		result = layout.Horizontal(tree)
	default:
		result = layout.Radial(tree, opts.metrics())
	}

	observability.Pipeline().OnLayoutComplete(ctx, string(kind), time.Since(start), nil)
	opts.Logger.Debug("computed layout",
		"kind", kind,
		"nodes", result.NodeCount(),
		"canvas_w", result.Canvas.Width,
		"canvas_h", result.Canvas.Height)

	return mindmap.FromResult(result), nil
}

// metrics returns the configured label measurer, defaulting to the shared
// embedded-font measurer.
func (o *Options) metrics() layout.Metrics {
	if o.Metrics != nil {
		return o.Metrics
	}
	return defaultMetrics()
}

var sharedMeasurer = fonts.NewMeasurer()

func defaultMetrics() layout.Metrics {
	return sharedMeasurer
}
