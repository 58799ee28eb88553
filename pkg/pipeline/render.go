package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/mindweave/mindweave/pkg/errors"
	"github.com/mindweave/mindweave/pkg/mindmap"
	"github.com/mindweave/mindweave/pkg/observability"
	"github.com/mindweave/mindweave/pkg/render"
)

// RenderFromLayout generates output artifacts in the requested formats from
// a computed layout. The layout already carries its kind, geometry, and
// canvas, so no tree or options from the layout stage are needed here.
func RenderFromLayout(ctx context.Context, l mindmap.Layout, opts Options) (map[string][]byte, error) {
	if err := opts.ValidateForRender(); err != nil {
		return nil, err
	}
	if len(l.Nodes) == 0 {
		return nil, errors.New(errors.ErrCodeInvalidLayout, "layout contains no nodes")
	}

	observability.Pipeline().OnRenderStart(ctx, opts.Formats)
	start := time.Now()

	artifacts := make(map[string][]byte)
	for _, f := range opts.Formats {
		format, err := render.ParseFormat(f)
		if err != nil {
			return nil, errors.New(errors.ErrCodeInvalidFormat, "%s", err.Error())
		}

		data, err := render.Render(ctx, l, format)
		if err != nil {
			observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), err)
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		artifacts[string(format)] = data
	}

	observability.Pipeline().OnRenderComplete(ctx, opts.Formats, time.Since(start), nil)
	opts.Logger.Debug("rendered outputs",
		"formats", opts.Formats,
		"duration", time.Since(start))

	return artifacts, nil
}

// RenderFromLayoutData renders output from serialized layout data.
// This is useful when the layout was computed elsewhere (e.g., cached).
func RenderFromLayoutData(ctx context.Context, layoutData []byte, opts Options) (map[string][]byte, error) {
	parsed, err := mindmap.Unmarshal(layoutData)
	if err != nil {
		return nil, fmt.Errorf("parse layout: %w", err)
	}
	return RenderFromLayout(ctx, parsed, opts)
}
