package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/mindweave/mindweave/internal/config"
	"github.com/mindweave/mindweave/internal/server"
	"github.com/mindweave/mindweave/pkg/pipeline"
)

// serveCommand creates the serve command that runs the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		configPath string
		addr       string
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the mind map HTTP API server",
		Long: `Run the mindweave HTTP API.

Configuration is read from an optional TOML file and MINDWEAVE_*
environment variables. The --addr flag overrides both.

Endpoints:
  POST /api/v1/generate   outline text in, rendered artifacts out
  POST /api/v1/layout     outline text in, layout JSON out
  GET  /healthz           liveness probe`,
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runServe(cmd.Context(), configPath, addr)
		},
	}

	cmd.Flags().StringVar(&configPath, "config", "", "path to TOML config file")
	cmd.Flags().StringVar(&addr, "addr", "", "listen address (overrides config)")

	return cmd
}

// runServe loads config, builds the cache backend, and serves until the
// context is cancelled.
func (c *CLI) runServe(ctx context.Context, configPath, addr string) error {
	cfg, err := config.Load(configPath)
	if err != nil {
		return fmt.Errorf("load config: %w", err)
	}
	if addr != "" {
		cfg.Server.Addr = addr
	}

	cch, err := cfg.BuildCache(ctx)
	if err != nil {
		return fmt.Errorf("initialize cache (%s): %w", cfg.Cache.Backend, err)
	}

	runner := pipeline.NewRunner(cch, cfg.BuildKeyer(), c.Logger)
	defer runner.Close()

	c.Logger.Info("starting server",
		"addr", cfg.Server.Addr,
		"cache", cfg.Cache.Backend)

	return server.New(cfg.Server, runner, c.Logger).ListenAndServe(ctx)
}
