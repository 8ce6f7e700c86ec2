package cli

import (
	"context"
	"fmt"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/coursegraph/pkg/graph"
	"github.com/matzehuels/coursegraph/pkg/pipeline"
)

// layoutFlags are the layout flags shared by layout, render and explore.
type layoutFlags struct {
	direction string
	detailed  bool
	collapsed bool
	expand    []string
}

func (f *layoutFlags) register(cmd *cobra.Command) {
	cmd.Flags().StringVarP(&f.direction, "direction", "d", "", "layout direction: TB (top to bottom) or LR (left to right)")
	cmd.Flags().BoolVar(&f.detailed, "detailed", false, "include credits, semester and year")
	cmd.Flags().BoolVar(&f.collapsed, "collapsed", false, "show only courses without prerequisites")
	cmd.Flags().StringSliceVar(&f.expand, "expand", nil, "course IDs whose prerequisites and dependents are shown (implies --collapsed)")
}

// options merges the flags with the config-file defaults.
func (f *layoutFlags) options(c *CLI) pipeline.Options {
	opts := c.layoutOptions(f.direction)
	opts.Detailed = f.detailed
	opts.Collapsed = f.collapsed
	opts.Expand = f.expand
	return opts
}

// layoutCommand creates the layout command for computing catalog layouts.
func (c *CLI) layoutCommand() *cobra.Command {
	var (
		output string
		flags  layoutFlags
	)

	cmd := &cobra.Command{
		Use:   "layout [catalog]",
		Short: "Compute the prerequisite layout of a course catalog",
		Long: `Compute the prerequisite layout of a course catalog.

Every course is placed on a level strictly after all of its prerequisites;
courses on the same level keep their catalog order. The output is a
layout.json file (same format as 'render -f json') with positions, connector
sides and the edge list.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runLayout(cmd.Context(), args[0], flags.options(c), output)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (default: <input>.layout.json)")
	flags.register(cmd)

	return cmd
}

// runLayout loads the catalog, computes the layout, and writes output.
func (c *CLI) runLayout(ctx context.Context, input string, opts pipeline.Options, output string) error {
	logger := loggerFromContext(ctx)
	runner := pipeline.NewRunner(nil, nil, logger)
	prog := newProgress(logger)

	cat, err := runner.Load(ctx, input)
	if err != nil {
		return err
	}

	l, err := runner.Layout(ctx, cat, opts)
	if err != nil {
		return err
	}
	prog.done("Computed layout", "courses", len(l.Nodes), "edges", len(l.Edges))

	if ctx.Err() != nil {
		return ctx.Err()
	}

	outputPath := output
	if outputPath == "" {
		outputPath = strings.TrimSuffix(input, filepath.Ext(input)) + ".layout.json"
	}

	if err := graph.WriteLayoutFile(l, outputPath); err != nil {
		return fmt.Errorf("write output %s: %w", outputPath, err)
	}

	printSuccess("Layout complete")
	printFile(outputPath)
	printStats(len(l.Nodes), len(l.Edges), pipeline.LevelCount(l), false)
	printNewline()
	printNextStep("Render", appName+" render "+input)

	return nil
}
