// Package cli implements the mindweave command-line interface.
package cli

import (
	"io"
	"strings"

	"github.com/charmbracelet/log"
	"github.com/spf13/cobra"

	"github.com/mindweave/mindweave/internal/config"
	"github.com/mindweave/mindweave/pkg/buildinfo"
	"github.com/mindweave/mindweave/pkg/cache"
	"github.com/mindweave/mindweave/pkg/pipeline"
)

// appName is used for the root command and user-facing paths.
const appName = "mindweave"

// Log levels re-exported so main.go does not import charmbracelet/log.
const (
	LogDebug = log.DebugLevel
	LogInfo  = log.InfoLevel
)

// CLI carries the state shared by every command: today just the logger,
// which all commands and the serve path reuse.
type CLI struct {
	Logger *log.Logger
}

// New creates a CLI writing logs to w at the given level.
func New(w io.Writer, level log.Level) *CLI {
	return &CLI{
		Logger: log.NewWithOptions(w, log.Options{
			ReportTimestamp: true,
			TimeFormat:      "15:04:05.00",
			Level:           level,
		}),
	}
}

// SetLogLevel updates the logger's level, typically from the --verbose flag.
func (c *CLI) SetLogLevel(level log.Level) {
	c.Logger.SetLevel(level)
}

// RootCommand builds the root cobra command with all subcommands attached.
func (c *CLI) RootCommand() *cobra.Command {
	root := &cobra.Command{
		Use:          appName,
		Short:        "Mindweave turns text outlines into mind map images",
		Long:         `Mindweave is a CLI tool that parses heading-and-list outlines into trees and renders them as radial or horizontal mind maps in SVG, PNG, and DOT formats.`,
		Version:      buildinfo.Version,
		SilenceUsage: true,
	}

	root.SetVersionTemplate(buildinfo.Template())

	for _, sub := range []*cobra.Command{
		c.generateCommand(),
		c.layoutCommand(),
		c.renderCommand(),
		c.serveCommand(),
		c.cacheCommand(),
		c.completionCommand(),
	} {
		root.AddCommand(sub)
	}

	return root
}

// newRunner builds a pipeline runner backed by the local file cache, or by
// no cache at all when --no-cache is set.
func (c *CLI) newRunner(noCache bool) (*pipeline.Runner, error) {
	cch, err := newCache(noCache)
	if err != nil {
		return nil, err
	}
	return pipeline.NewRunner(cch, nil, c.Logger), nil
}

func newCache(noCache bool) (cache.Cache, error) {
	if noCache {
		return cache.NewNullCache(), nil
	}
	dir, err := config.DefaultCacheDir()
	if err != nil {
		// No resolvable cache dir just means no caching.
		return cache.NewNullCache(), nil
	}
	return cache.NewFileCache(dir)
}

// parseFormats splits a comma-separated --format value, defaulting to the
// pipeline's default format.
func parseFormats(s string) []string {
	if s == "" {
		return []string{pipeline.DefaultFormat}
	}
	return strings.Split(s, ",")
}
