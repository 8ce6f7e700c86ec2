package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/coursegraph/pkg/pipeline"
)

// stdoutPath selects standard output for single-format renders.
const stdoutPath = "-"

// renderCommand creates the render command for generating visualizations.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		output     string
		formatsStr string
		noCache    bool
		flags      layoutFlags
	)
	opts := pipeline.Options{}

	cmd := &cobra.Command{
		Use:   "render [catalog]",
		Short: "Render a course catalog as a prerequisite diagram",
		Long: `Render a course catalog as a prerequisite diagram.

Output formats:
  svg   Graphviz node-link diagram (default)
  png   raster diagram (requires rsvg-convert)
  pdf   vector document (requires rsvg-convert)
  dot   Graphviz source with pinned positions
  html  interactive chart with pan and zoom
  json  layout JSON, same as the layout command

Rendered artifacts are cached locally for faster subsequent runs.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			layoutOpts := flags.options(c)
			opts.Direction = layoutOpts.Direction
			opts.Config = layoutOpts.Config
			opts.Detailed = layoutOpts.Detailed
			opts.Collapsed = layoutOpts.Collapsed
			opts.Expand = layoutOpts.Expand
			opts.Formats = pipeline.ParseFormats(formatsStr)
			opts.Path = args[0]
			if err := opts.Validate(); err != nil {
				return err
			}
			if output == stdoutPath && len(opts.Formats) > 1 {
				return fmt.Errorf("-o - needs exactly one format, got %d", len(opts.Formats))
			}
			return c.runRender(cmd.Context(), opts, output, noCache)
		},
	}

	cmd.Flags().StringVarP(&output, "output", "o", "", "output file (single format), base path (multiple), or - for stdout")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): svg (default), png, pdf, dot, html, json (comma-separated)")
	cmd.Flags().StringVar(&opts.Title, "title", "", "chart title (default: catalog department)")
	cmd.Flags().Float64Var(&opts.Scale, "scale", pipeline.DefaultScale, "PNG resolution multiplier")
	cmd.Flags().BoolVar(&noCache, "no-cache", false, "disable caching")
	cmd.Flags().BoolVar(&opts.Refresh, "refresh", false, "re-render even if cached")
	flags.register(cmd)

	return cmd
}

// runRender executes the pipeline and writes one file per format.
func (c *CLI) runRender(ctx context.Context, opts pipeline.Options, output string, noCache bool) error {
	runner, err := c.newRunner(ctx, noCache)
	if err != nil {
		return fmt.Errorf("initialize runner: %w", err)
	}
	defer runner.Close()

	sp := startSpinner(ctx, os.Stderr, fmt.Sprintf("Rendering %s...", strings.Join(opts.Formats, ", ")))

	result, err := runner.Execute(ctx, opts)
	if err != nil {
		sp.fail("Render failed")
		return err
	}
	interrupted := sp.interrupted()
	sp.stop()
	if interrupted {
		return ctx.Err()
	}

	if output == stdoutPath {
		_, err := os.Stdout.Write(result.Artifacts[opts.Formats[0]])
		return err
	}

	paths := outputPaths(opts.Path, output, opts.Formats)
	for _, format := range opts.Formats {
		if err := os.WriteFile(paths[format], result.Artifacts[format], 0o644); err != nil {
			return fmt.Errorf("write %s: %w", paths[format], err)
		}
	}

	printSuccess("Rendered %s", opts.Path)
	for _, format := range opts.Formats {
		printFile(paths[format])
	}
	printStats(result.Stats.CourseCount, result.Stats.EdgeCount, result.Stats.LevelCount, result.CacheInfo.RenderHit)
	for _, ref := range result.Dangling {
		printWarning("%s requires unknown course %s", ref.Course, ref.Missing)
	}

	return nil
}

// outputPaths maps every format to its output file.
//
// A single format is written to output as given. With several formats, output
// is a base path: a known format extension is stripped and ".<format>" is
// appended. An empty output derives the base from the input file name.
func outputPaths(input, output string, formats []string) map[string]string {
	paths := make(map[string]string, len(formats))
	if len(formats) == 1 && output != "" {
		paths[formats[0]] = output
		return paths
	}

	base := basePath(output, input)
	for _, f := range formats {
		paths[f] = base + "." + f
	}
	return paths
}

// basePath derives the base output path from the output and input file paths.
// If output is empty, it strips the extension from input. If output has a
// format extension (.svg, .pdf, etc.), it strips that extension.
func basePath(output, input string) string {
	if output == "" {
		return strings.TrimSuffix(input, filepath.Ext(input))
	}
	ext := filepath.Ext(output)
	if slices.Contains(supportedFormats(), strings.TrimPrefix(ext, ".")) {
		return strings.TrimSuffix(output, ext)
	}
	return output
}

// supportedFormats lists the render formats in help-text order.
func supportedFormats() []string {
	return []string{
		pipeline.FormatSVG,
		pipeline.FormatPNG,
		pipeline.FormatPDF,
		pipeline.FormatDOT,
		pipeline.FormatHTML,
		pipeline.FormatJSON,
	}
}
