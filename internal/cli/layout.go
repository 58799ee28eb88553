package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mindweave/mindweave/pkg/mindmap"
	"github.com/mindweave/mindweave/pkg/pipeline"
)

// layoutCommand creates the layout command for computing map geometry
// without rendering.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output     string
		layoutKind string
		noCache    bool
		refresh    bool
	)

	cmd := &cobra.Command{
		Use:   "layout [outline.md]",
		Short: "Compute mind map geometry from an outline",
		Long: `Compute mind map geometry from an outline.

The layout command parses the outline and computes node positions,
connector curves, and the canvas extent, writing the result as a
layout.json file. The file can be rendered to SVG/PNG/DOT later with
'mindweave render', or consumed directly by other tools.

Results are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd.Context(), args[0], output, layoutKind, noCache, refresh)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json)")
	cmd.Flags().StringVarP(&layoutKind, "layout", "l", pipeline.DefaultLayoutKind, "layout kind: auto, radial, horizontal")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "recompute even if cached")

	return cmd
}

// runLayout parses the outline, computes the layout, and writes output.
func (c *CLI) runLayout(ctx context.Context, input, output, layoutKind string, noCache, refresh bool) error {
	text, err := readOutline(input)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	opts := pipeline.Options{
		OutlineText: text,
		LayoutKind:  layoutKind,
		Refresh:     refresh,
		Logger:      c.Logger,
	}

	tree, err := runner.Parse(ctx, opts)
	if err != nil {
		return fmt.Errorf("parse outline: %w", err)
	}

	spinner := newSpinner(ctx, "Computing layout...")
	spinner.Start()

	l, cacheHit, err := runner.ComputeLayoutWithCacheInfo(ctx, tree, pipeline.OutlineHash(text), opts)
	if err != nil {
		spinner.StopWithError("Layout failed")
		return fmt.Errorf("compute layout: %w", err)
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	outputPath := output
	if outputPath == "" {
		base := strings.TrimSuffix(input, filepath.Ext(input))
		outputPath = base + ".layout.json"
	}

	if err := mindmap.WriteLayoutFile(l, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Layout complete")
	printFile(outputPath)
	printStats(l.NodeCount, l.MaxDepth, l.LayoutKind, cacheHit)
	printNewline()
	printNextStep("Render", "mindweave render "+outputPath)

	return nil
}
