package cli

import (
	"context"
	"fmt"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/spf13/cobra"

	"github.com/matzehuels/coursegraph/pkg/core/dag"
	"github.com/matzehuels/coursegraph/pkg/core/dag/transform"
	"github.com/matzehuels/coursegraph/pkg/pipeline"
)

// exploreCommand creates the explore command for browsing a catalog.
func (c *CLI) exploreCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "explore [catalog]",
		Short: "Browse a course catalog interactively",
		Long: `Browse a course catalog interactively.

The list shows every course with its layout level. Press / to search by ID,
name or description and enter to see credits, prerequisites, dependents and
notes of the selected course.`,
		Args: cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runExplore(cmd.Context(), args[0])
		},
	}
}

func (c *CLI) runExplore(ctx context.Context, path string) error {
	runner := pipeline.NewRunner(nil, nil, c.Logger)
	cat, err := runner.Load(ctx, path)
	if err != nil {
		return err
	}

	g := dag.Build(cat)
	levels, err := transform.AssignLevels(g.Nodes, g.Edges)
	if err != nil {
		// Browsing still works without levels.
		c.Logger.Warn("cannot compute levels", "err", err)
		levels = nil
	}

	p := tea.NewProgram(NewCourseListModel(cat, levels), tea.WithContext(ctx), tea.WithAltScreen())
	if _, err := p.Run(); err != nil {
		return fmt.Errorf("explore: %w", err)
	}
	return nil
}
