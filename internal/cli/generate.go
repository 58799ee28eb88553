package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/mindweave/mindweave/pkg/pipeline"
	"github.com/mindweave/mindweave/pkg/render"
)

// generateCommand creates the generate command, the full outline-to-image
// pipeline.
func (c *CLI) generateCommand() *cobra.Command {
	var (
		output     string
		layoutKind string
		formatsStr string
		noCache    bool
		refresh    bool
	)

	cmd := &cobra.Command{
		Use:   "generate [outline.md]",
		Short: "Generate a mind map from an outline file",
		Long: `Generate a mind map from a text outline.

The outline uses markdown-style headings and nested lists:

  # Central Topic
  ## Branch
  - Leaf
    - Nested leaf

Pass "-" to read the outline from stdin. With no argument, an interactive
picker lists the markdown files in the current directory.

Layout kinds:
  auto        pick radial or horizontal from the tree shape (default)
  radial      branches fan out around the central topic
  horizontal  left-to-right tree, better for deep or large outlines

Results are cached locally for faster subsequent runs.`,
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			input := ""
			if len(args) == 1 {
				input = args[0]
			}
			return c.runGenerate(cmd.Context(), input, generateOpts{
				output:     output,
				layoutKind: layoutKind,
				formats:    parseFormats(formatsStr),
				noCache:    noCache,
				refresh:    refresh,
			})
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&layoutKind, "layout", "l", pipeline.DefaultLayoutKind, "layout kind: auto, radial, horizontal")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, dot, dot-svg, json (comma-separated)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&refresh, "refresh", false, "recompute even if cached")

	return cmd
}

// generateOpts holds the resolved generate command flags.
type generateOpts struct {
	output     string
	layoutKind string
	formats    []string
	noCache    bool
	refresh    bool
}

// runGenerate resolves the input, executes the pipeline, and writes all
// requested artifacts.
func (c *CLI) runGenerate(ctx context.Context, input string, opts generateOpts) error {
	if input == "" {
		picked, err := pickOutlineFile(".")
		if err != nil {
			return err
		}
		if picked == "" {
			printInfo("No outline selected")
			return nil
		}
		input = picked
	}

	text, err := readOutline(input)
	if err != nil {
		return err
	}

	runner, err := c.newRunner(opts.noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	spinner := newSpinner(ctx, "Generating mind map...")
	spinner.Start()

	result, err := runner.Execute(ctx, pipeline.Options{
		OutlineText: text,
		LayoutKind:  opts.layoutKind,
		Formats:     opts.formats,
		Refresh:     opts.refresh,
		Logger:      c.Logger,
	})
	if err != nil {
		spinner.StopWithError("Generation failed")
		return err
	}
	spinner.Stop()

	if ctx.Err() != nil {
		return ctx.Err()
	}

	written, err := writeArtifacts(result.Artifacts, opts.formats, opts.output, input)
	if err != nil {
		return err
	}

	printSuccess("Mind map generated")
	for _, path := range written {
		printFile(path)
	}
	printStats(result.Stats.NodeCount, result.Stats.MaxDepth, result.Layout.LayoutKind,
		result.CacheInfo.LayoutHit && result.CacheInfo.RenderHit)

	return nil
}

// writeArtifacts writes each rendered format to its own file and returns the
// written paths in format order.
func writeArtifacts(artifacts map[string][]byte, formats []string, output, input string) ([]string, error) {
	base := artifactBase(output, input)

	var written []string
	for _, f := range formats {
		data, ok := artifacts[f]
		if !ok {
			continue
		}

		path := output
		if output == "" || len(formats) > 1 {
			format, err := render.ParseFormat(f)
			if err != nil {
				return nil, err
			}
			path = base + "." + format.Ext()
		}

		if err := writeOutput(path, data); err != nil {
			return nil, fmt.Errorf("write %s: %w", path, err)
		}
		written = append(written, path)
	}
	return written, nil
}

// artifactBase derives the extension-free output base path.
func artifactBase(output, input string) string {
	if output != "" {
		return strings.TrimSuffix(output, filepath.Ext(output))
	}
	if input == "" || input == "-" {
		return "mindmap"
	}
	return strings.TrimSuffix(input, filepath.Ext(input))
}
