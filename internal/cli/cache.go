package cli

import (
	"fmt"

	"github.com/spf13/cobra"
)

// cacheCommand groups the artifact cache subcommands.
func (c *CLI) cacheCommand() *cobra.Command {
	cmd := &cobra.Command{
		Use:   "cache",
		Short: "Manage the rendered artifact cache",
		Long: `Manage the cache of rendered artifacts.

The backend is chosen by [cache] backend in the config file: "file" (default,
under $XDG_CACHE_HOME/coursegraph), "redis" or "none".`,
	}
	cmd.AddCommand(
		&cobra.Command{
			Use:   "clear",
			Short: "Remove all cached artifacts",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				cc, err := c.newCache(cmd.Context(), false)
				if err != nil {
					return fmt.Errorf("open cache: %w", err)
				}
				defer cc.Close()

				if err := cc.Clear(cmd.Context()); err != nil {
					return fmt.Errorf("clear cache: %w", err)
				}
				printSuccess("Cleared %s cache", c.Config.Cache.Backend)
				return nil
			},
		},
		&cobra.Command{
			Use:   "path",
			Short: "Print where the configured cache keeps its entries",
			Args:  cobra.NoArgs,
			RunE: func(cmd *cobra.Command, args []string) error {
				loc, err := c.cacheLocation()
				if err != nil {
					return err
				}
				fmt.Fprintln(cmd.OutOrStdout(), loc)
				return nil
			},
		},
	)
	return cmd
}

// cacheLocation describes the configured backend: a directory, a Redis URL,
// or "disabled".
func (c *CLI) cacheLocation() (string, error) {
	switch c.Config.Cache.Backend {
	case CacheBackendNone:
		return "disabled", nil
	case CacheBackendRedis:
		return c.Config.Cache.RedisURL, nil
	}
	dir, err := cacheDir()
	if err != nil {
		return "", fmt.Errorf("locate cache dir: %w", err)
	}
	return dir, nil
}
