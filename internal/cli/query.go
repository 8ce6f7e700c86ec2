package cli

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/coursegraph/pkg/catalog"
	"github.com/matzehuels/coursegraph/pkg/core/dag"
	"github.com/matzehuels/coursegraph/pkg/errors"
	"github.com/matzehuels/coursegraph/pkg/pipeline"
)

// relations is a course with its direct neighbours in the prerequisite graph.
type relations struct {
	Course        catalog.Course `json:"course"`
	Prerequisites []string       `json:"prerequisites"`
	Dependents    []string       `json:"dependents"`
}

// lookupRelations returns the relations of id, or COURSE_NOT_FOUND when id
// appears nowhere in g. A prerequisite missing from the catalog gets a
// course carrying only its ID.
func lookupRelations(g *dag.Graph, id string) (relations, error) {
	if err := errors.ValidateCourseID(id); err != nil {
		return relations{}, err
	}
	if !g.Mentions(id) {
		return relations{}, errors.New(errors.ErrCodeCourseNotFound, "course %q not found", id)
	}
	co := catalog.Course{ID: id}
	if n, ok := g.Node(id); ok {
		co = n.Course
	}
	return relations{
		Course:        co,
		Prerequisites: g.Prerequisites(id),
		Dependents:    g.Dependents(id),
	}, nil
}

// queryCommand creates the query command for relationship lookups.
func (c *CLI) queryCommand() *cobra.Command {
	var asJSON bool

	cmd := &cobra.Command{
		Use:   "query [catalog] [course-id]",
		Short: "Show the prerequisites and dependents of a course",
		Long: `Show one course with its direct prerequisites ("prerequisite of") and the
courses that list it as a prerequisite ("required for").

Prerequisites that name courses missing from the catalog are still listed.`,
		Args: cobra.ExactArgs(2),
		RunE: func(cmd *cobra.Command, args []string) error {
			return c.runQuery(cmd.Context(), cmd.OutOrStdout(), args[0], args[1], asJSON)
		},
	}

	cmd.Flags().BoolVar(&asJSON, "json", false, "print the result as JSON")

	return cmd
}

func (c *CLI) runQuery(ctx context.Context, w io.Writer, path, id string, asJSON bool) error {
	runner := pipeline.NewRunner(nil, nil, c.Logger)
	cat, err := runner.Load(ctx, path)
	if err != nil {
		return err
	}

	rel, err := lookupRelations(dag.Build(cat), id)
	if err != nil {
		return err
	}

	if asJSON {
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(rel)
	}

	_, err = fmt.Fprint(w, formatCourse(rel))
	return err
}

// formatCourse renders the details of a course and its relations.
func formatCourse(rel relations) string {
	co := rel.Course
	var b strings.Builder

	b.WriteString(StyleTitle.Render(co.ID) + " " + StyleValue.Render(co.Name) + "\n\n")
	b.WriteString(formatKeyValue("Semester", co.Semester))
	b.WriteString(formatKeyValue("Year", co.Year))
	if co.Credits != nil {
		b.WriteString(formatKeyValue("Credits", strconv.FormatFloat(*co.Credits, 'f', -1, 64)))
	}
	b.WriteString(formatKeyValue("Mandatory", yesNo(co.Mandatory)))
	b.WriteString(formatIDList("Prerequisites", rel.Prerequisites))
	b.WriteString(formatIDList("Required for", rel.Dependents))
	if len(co.Corequisites) > 0 {
		b.WriteString(formatIDList("Corequisites", co.Corequisites))
	}
	if len(co.RequiredKnowledge) > 0 {
		b.WriteString(formatKeyValue("Background", strings.Join(co.RequiredKnowledge, "; ")))
	}
	if co.AlternativePrerequisites != "" {
		b.WriteString(formatKeyValue("Alternatives", co.AlternativePrerequisites))
	}
	if co.Description != "" {
		b.WriteString("\n" + co.Description + "\n")
	}
	if co.Notes != "" {
		b.WriteString(StyleDim.Render(co.Notes) + "\n")
	}
	return b.String()
}

func yesNo(b bool) string {
	if b {
		return "yes"
	}
	return "no"
}
