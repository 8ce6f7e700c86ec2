package cli

import (
	"context"
	"fmt"

	"github.com/spf13/cobra"

	"github.com/matzehuels/coursegraph/internal/server"
	"github.com/matzehuels/coursegraph/pkg/cache"
	"github.com/matzehuels/coursegraph/pkg/pipeline"
)

// serveCommand creates the serve command that runs the HTTP API.
func (c *CLI) serveCommand() *cobra.Command {
	var (
		addr     string
		redisURL string
		noCache  bool
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Run the HTTP API",
		Long: `Run the HTTP API.

Endpoints accept a catalog in the request body (JSON, TOML or YAML):

  POST /v1/layout                       layout JSON
  POST /v1/render?format=svg            rendered diagram
  POST /v1/courses/{id}/prerequisites   direct prerequisites
  POST /v1/courses/{id}/dependents      direct dependents
  GET  /healthz                         liveness probe
  GET  /metrics                         Prometheus metrics

With --redis-url, rendered artifacts are shared through Redis; otherwise the
cache backend from the config file is used.`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			if addr == "" {
				addr = c.Config.Server.Addr
			}
			return c.runServe(cmd.Context(), addr, redisURL, noCache)
		},
	}

	cmd.Flags().StringVar(&addr, "addr", "", "listen address (default "+DefaultServerAddr+")")
	cmd.Flags().StringVar(&redisURL, "redis-url", "", "redis URL for the shared artifact cache (redis://host:6379/0)")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")

	return cmd
}

func (c *CLI) runServe(ctx context.Context, addr, redisURL string, noCache bool) error {
	var (
		cc  cache.Cache
		err error
	)
	if redisURL != "" && !noCache {
		cc, err = cache.NewRedisCache(ctx, redisURL)
	} else {
		cc, err = c.newCache(ctx, noCache)
	}
	if err != nil {
		return fmt.Errorf("open cache: %w", err)
	}

	runner := pipeline.NewRunner(cc, nil, c.Logger)
	defer runner.Close()

	metrics := server.NewMetrics(appName)
	metrics.Install()

	srv := server.New(runner, metrics, c.Logger)
	srv.Defaults = c.layoutOptions("")

	printInfo("Serving on %s", addr)
	return srv.ListenAndServe(ctx, addr)
}
