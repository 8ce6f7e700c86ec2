package cli

import (
	"context"
	stderrors "errors"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/coursegraph/pkg/catalog"
	"github.com/matzehuels/coursegraph/pkg/core/dag"
	"github.com/matzehuels/coursegraph/pkg/core/dag/transform"
	"github.com/matzehuels/coursegraph/pkg/errors"
	"github.com/matzehuels/coursegraph/pkg/pipeline"
)

// checkReport is the outcome of checking one catalog.
type checkReport struct {
	Courses  int
	Edges    int
	Problems []string
	Dangling []catalog.Reference
	Cycle    []string
}

// ok reports whether the catalog can be laid out. Dangling references alone
// do not fail the check unless strict is set.
func (r checkReport) ok(strict bool) bool {
	if len(r.Problems) > 0 || len(r.Cycle) > 0 {
		return false
	}
	return !strict || len(r.Dangling) == 0
}

// checkCommand creates the check command for validating catalogs.
func (c *CLI) checkCommand() *cobra.Command {
	var strict bool

	cmd := &cobra.Command{
		Use:   "check [catalog]",
		Short: "Validate a course catalog",
		Long: `Validate a course catalog without rendering it.

The check reports schema problems (missing fields, duplicate IDs, unknown
requirement types), prerequisites that name courses missing from the catalog,
and the courses caught in a prerequisite cycle.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runCheck(cmd.Context(), args[0], strict)
		},
	}

	cmd.Flags().BoolVar(&strict, "strict", false, "treat unknown prerequisites as errors")

	return cmd
}

// runCheck loads path, prints the report and fails if the catalog is unusable.
func (c *CLI) runCheck(ctx context.Context, path string, strict bool) error {
	runner := pipeline.NewRunner(nil, nil, c.Logger)
	cat, err := runner.Load(ctx, path)
	if err != nil {
		return err
	}

	report := checkCatalog(cat)

	for _, p := range report.Problems {
		printError("%s", p)
	}
	for _, ref := range report.Dangling {
		printWarning("%s requires unknown course %s", ref.Course, ref.Missing)
	}
	if len(report.Cycle) > 0 {
		printError("Prerequisite cycle involving %s", strings.Join(report.Cycle, ", "))
	}

	if !report.ok(strict) {
		return errors.New(errors.ErrCodeInvalidCatalog, "%s failed the check", path)
	}

	printSuccess("Catalog is valid")
	printStats(report.Courses, report.Edges, 0, false)
	printNewline()
	printNextStep("Render", appName+" render "+path)
	return nil
}

// checkCatalog collects every problem in cat.
func checkCatalog(cat *catalog.Catalog) checkReport {
	g := dag.Build(cat)
	report := checkReport{
		Courses:  g.NodeCount(),
		Edges:    g.EdgeCount(),
		Dangling: catalog.DanglingReferences(cat),
		Cycle:    transform.CycleMembers(g.Edges),
	}

	if err := catalog.Validate(cat); err != nil {
		var verr *catalog.ValidationError
		if stderrors.As(err, &verr) {
			report.Problems = verr.Problems
		} else {
			report.Problems = []string{errors.UserMessage(err)}
		}
	}
	return report
}
