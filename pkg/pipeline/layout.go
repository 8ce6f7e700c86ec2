package pipeline

import (
	stderrors "errors"
	"strings"

	"github.com/matzehuels/coursegraph/pkg/catalog"
	"github.com/matzehuels/coursegraph/pkg/core/dag"
	"github.com/matzehuels/coursegraph/pkg/core/dag/transform"
	"github.com/matzehuels/coursegraph/pkg/core/layout"
	"github.com/matzehuels/coursegraph/pkg/errors"
	"github.com/matzehuels/coursegraph/pkg/graph"
)

// =============================================================================
// Layout Generation
// =============================================================================

// ComputeLayout builds the prerequisite graph of c and lays it out.
// Options must have passed ValidateForLayout.
//
// Structural failures carry a pkg/errors code and still match
// dag.ErrGraphHasCycle:
//   - CYCLE_DETECTED when the prerequisites form a cycle
//   - INVALID_CATALOG when a prerequisite names an unknown course, which
//     leaves its dependent unreachable
func ComputeLayout(c *catalog.Catalog, opts Options) (graph.Layout, *dag.Graph, error) {
	g := dag.Build(c)
	dir := opts.LayoutDirection()

	nodes, err := layout.Compute(g.Nodes, g.Edges, dir, opts.Config)
	if err != nil {
		return graph.Layout{}, g, structuralError(c, g, err)
	}

	l := graph.FromLayout(nodes, g.Edges, dir, opts.Config, opts.Detailed)
	if c != nil && c.Metadata != nil {
		l.Title = c.Metadata.Department
	}
	if opts.Focused() {
		l = l.Subset(g.Visible(opts.Expand))
	}
	return l, g, nil
}

func structuralError(c *catalog.Catalog, g *dag.Graph, err error) error {
	var ce *transform.CycleError
	if !stderrors.As(err, &ce) {
		return errors.Wrap(errors.ErrCodeInternal, err, "compute layout")
	}

	if members := transform.CycleMembers(g.Edges); len(members) > 0 {
		return errors.Wrap(errors.ErrCodeCycleDetected, err,
			"prerequisite cycle involving %s", strings.Join(members, ", "))
	}

	var missing []string
	for _, ref := range catalog.DanglingReferences(c) {
		missing = append(missing, ref.Course+" → "+ref.Missing)
	}
	if len(missing) == 0 {
		missing = ce.Unknown
	}
	return errors.Wrap(errors.ErrCodeInvalidCatalog, err,
		"prerequisites reference unknown courses: %s", strings.Join(missing, ", "))
}

// LevelCount returns the number of distinct levels in l.
func LevelCount(l graph.Layout) int { return len(l.Levels) }
