// Command coursegraph lays out course catalogs as prerequisite graphs.
package main

import (
	"context"
	stderrors "errors"
	"fmt"
	"os"
	"os/signal"
	"syscall"

	"github.com/spf13/cobra"

	"github.com/matzehuels/coursegraph/internal/cli"
	"github.com/matzehuels/coursegraph/pkg/errors"
)

// Exit codes. Scripts can tell bad input from an unorderable catalog.
const (
	exitOK          = 0
	exitFailure     = 1
	exitInvalid     = 2
	exitCycle       = 3
	exitInterrupted = 130
)

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	err := run(ctx)
	stop()

	if code := exitCode(err); code != exitOK {
		if code != exitInterrupted {
			fmt.Fprintln(os.Stderr, err)
		}
		os.Exit(code)
	}
}

func run(ctx context.Context) error {
	c := cli.New(os.Stderr, cli.LogInfo)
	root := c.RootCommand()

	var verbose bool
	root.PersistentFlags().BoolVarP(&verbose, "verbose", "v", false, "enable debug logging")

	// Raise the level before the config file is loaded so its loading is logged too.
	loadConfig := root.PersistentPreRunE
	root.PersistentPreRunE = func(cmd *cobra.Command, args []string) error {
		if verbose {
			c.SetLogLevel(cli.LogDebug)
		}
		return loadConfig(cmd, args)
	}

	return root.ExecuteContext(ctx)
}

func exitCode(err error) int {
	switch {
	case err == nil:
		return exitOK
	case stderrors.Is(err, context.Canceled):
		return exitInterrupted
	case errors.GetCode(err) == errors.ErrCodeCycleDetected:
		return exitCycle
	case errors.GetCode(err).Kind() == errors.KindInvalid:
		return exitInvalid
	}
	return exitFailure
}
