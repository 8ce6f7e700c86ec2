package dag

import (
	"errors"

	"github.com/matzehuels/coursegraph/pkg/catalog"
)

// ErrGraphHasCycle is the sentinel matched by every structural layout
// failure: a prerequisite cycle, or edges whose endpoints disagree with the
// node list so that topological processing cannot reach every node.
var ErrGraphHasCycle = errors.New("graph contains a cycle")

// Node is a vertex of the prerequisite graph. It carries the full course so
// renderers and detail views need no second lookup.
type Node struct {
	ID     string         // Course ID
	Course catalog.Course // Full course payload
}

// Edge is a directed prerequisite relation: Source must be taken before
// Target. ID is "<source>-<target>".
type Edge struct {
	ID     string
	Source string
	Target string
}

// EdgeID returns the identifier used for the edge source → target.
func EdgeID(source, target string) string { return source + "-" + target }

// Graph is the node and edge set derived from one catalog snapshot.
// Nodes keep catalog order; edges keep the order in which prerequisites were
// listed, course by course.
type Graph struct {
	Nodes []Node
	Edges []Edge
}

// Build converts a catalog into a graph.
//
// Each course yields exactly one node. For every prerequisite ID listed by a
// course, Build emits one edge from the prerequisite to the course, in list
// order. Referential integrity is not checked and duplicate prerequisite IDs
// yield duplicate edges. A nil or empty catalog yields an empty graph.
func Build(c *catalog.Catalog) *Graph {
	g := &Graph{}
	if c == nil {
		return g
	}

	g.Nodes = make([]Node, 0, len(c.Courses))
	for _, co := range c.Courses {
		g.Nodes = append(g.Nodes, Node{ID: co.ID, Course: co})
	}

	for _, co := range c.Courses {
		for _, p := range co.Prerequisites {
			g.Edges = append(g.Edges, Edge{ID: EdgeID(p, co.ID), Source: p, Target: co.ID})
		}
	}
	return g
}

// NodeCount returns the number of nodes in the graph.
func (g *Graph) NodeCount() int { return len(g.Nodes) }

// EdgeCount returns the number of edges in the graph.
func (g *Graph) EdgeCount() int { return len(g.Edges) }

// Node returns the node with the given ID and true, or a zero Node and false.
func (g *Graph) Node(id string) (Node, bool) {
	for _, n := range g.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}

// Mentions reports whether id is a node or an endpoint of some edge. A
// prerequisite missing from the catalog is mentioned but is not a node.
func (g *Graph) Mentions(id string) bool {
	if _, ok := g.Node(id); ok {
		return true
	}
	for _, e := range g.Edges {
		if e.Source == id || e.Target == id {
			return true
		}
	}
	return false
}

// IDs returns node IDs in graph order.
func (g *Graph) IDs() []string {
	ids := make([]string, len(g.Nodes))
	for i, n := range g.Nodes {
		ids[i] = n.ID
	}
	return ids
}

// Dependents returns the courses that list id as a prerequisite.
func (g *Graph) Dependents(id string) []string { return Dependents(g.Edges, id) }

// Prerequisites returns the courses id lists as prerequisites.
func (g *Graph) Prerequisites(id string) []string { return Prerequisites(g.Edges, id) }

// Visible returns the IDs shown when only the given courses are expanded:
// every course with no prerequisites, every expanded course, and the direct
// prerequisites and dependents of each expanded course. Expanded IDs that
// are not in the graph are still included together with their neighbors.
func (g *Graph) Visible(expanded []string) map[string]bool {
	visible := make(map[string]bool)
	for _, n := range g.Nodes {
		if !n.Course.HasPrerequisites() {
			visible[n.ID] = true
		}
	}
	for _, id := range expanded {
		visible[id] = true
		for _, p := range g.Prerequisites(id) {
			visible[p] = true
		}
		for _, d := range g.Dependents(id) {
			visible[d] = true
		}
	}
	return visible
}
