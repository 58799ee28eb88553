package pipeline

import (
	"context"
	"time"

	"github.com/mindweave/mindweave/pkg/observability"
	"github.com/mindweave/mindweave/pkg/outline"
)

// Parse converts outline text into a tree. Parsing is total: once the text
// passes validation, any content yields a single-rooted tree.
func Parse(ctx context.Context, opts Options) (*outline.Node, error) {
	if err := opts.ValidateForParse(); err != nil {
		return nil, err
	}

	observability.Pipeline().OnParseStart(ctx, len(opts.OutlineText))
	start := time.Now()

	tree := outline.Parse(opts.OutlineText)

	observability.Pipeline().OnParseComplete(ctx, tree.Count(), time.Since(start))
	opts.Logger.Debug("parsed outline",
		"bytes", len(opts.OutlineText),
		"nodes", tree.Count(),
		"depth", tree.MaxDepth())

	return tree, nil
}
