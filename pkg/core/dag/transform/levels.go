package transform

import (
	"fmt"
	"slices"
	"strings"

	"github.com/matzehuels/coursegraph/pkg/core/dag"
)

// CycleError reports that level assignment could not reach every node.
//
// Visited is the number of nodes that were released; Total is the node
// count, with duplicate IDs counted once. Members lists, sorted, the node IDs that were never released.
// Unknown lists, sorted, edge targets that were released but are not nodes.
type CycleError struct {
	Visited int
	Total   int
	Members []string
	Unknown []string
}

func (e *CycleError) Error() string {
	if len(e.Members) == 0 && len(e.Unknown) > 0 {
		return fmt.Sprintf("graph edges reach %d unknown course(s): %s",
			len(e.Unknown), strings.Join(e.Unknown, ", "))
	}
	return fmt.Sprintf("graph contains a cycle: %d of %d courses reachable in prerequisite order", e.Visited, e.Total)
}

// Unwrap makes errors.Is(err, dag.ErrGraphHasCycle) succeed.
func (e *CycleError) Unwrap() error { return dag.ErrGraphHasCycle }

// AssignLevels computes a level for every node.
//
// Levels start at 0. The worklist is seeded with the nodes of in-degree 0 in
// input order. Each outer pass first increments a shared counter and then
// drains the nodes queued so far; every edge leaving a drained node raises
// its target's level to at least the counter. Targets whose in-degree drops
// to zero are queued for the next pass.
//
// For the chain A → B → C → D plus the shortcut A → D this yields
// A=0, B=1, C=2, D=3.
//
// # Inconsistent Edges
//
// Every edge feeds the in-degree and adjacency bookkeeping, even when an
// endpoint is not a node. An edge whose source is not a node is never
// drained, so its target is never released. An edge whose target is not a
// node releases that target as an extra vertex. Either way the released set
// no longer matches the node list and a [*CycleError] is returned.
//
// # Nil Handling
//
// An empty node slice yields an empty map and no error.
func AssignLevels(nodes []dag.Node, edges []dag.Edge) (map[string]int, error) {
	levels := make(map[string]int, len(nodes))
	inDegree := make(map[string]int, len(nodes))
	isNode := make(map[string]bool, len(nodes))
	for _, n := range nodes {
		levels[n.ID] = 0
		inDegree[n.ID] = 0
		isNode[n.ID] = true
	}

	total := len(levels)
	adj := make(map[string][]string)
	for _, e := range edges {
		adj[e.Source] = append(adj[e.Source], e.Target)
		inDegree[e.Target]++
	}

	var queue []string
	for _, n := range nodes {
		if inDegree[n.ID] == 0 {
			queue = append(queue, n.ID)
		}
	}

	visited := make(map[string]bool, len(nodes))
	current := 0
	for len(queue) > 0 {
		current++
		batch := queue
		queue = nil
		for _, id := range batch {
			if visited[id] {
				continue
			}
			visited[id] = true
			for _, next := range adj[id] {
				levels[next] = max(levels[next], current)
				inDegree[next]--
				if inDegree[next] == 0 {
					queue = append(queue, next)
				}
			}
		}
	}

	if len(visited) != total {
		return nil, newCycleError(nodes, visited, total)
	}
	for id := range visited {
		if !isNode[id] {
			return nil, newCycleError(nodes, visited, total)
		}
	}
	return levels, nil
}

func newCycleError(nodes []dag.Node, visited map[string]bool, total int) *CycleError {
	var members []string
	known := make(map[string]bool, len(nodes))
	for _, n := range nodes {
		if !visited[n.ID] && !known[n.ID] {
			members = append(members, n.ID)
		}
		known[n.ID] = true
	}
	var unknown []string
	released := 0
	for id := range visited {
		if known[id] {
			released++
		} else {
			unknown = append(unknown, id)
		}
	}
	slices.Sort(members)
	slices.Sort(unknown)
	return &CycleError{Visited: released, Total: total, Members: members, Unknown: unknown}
}
