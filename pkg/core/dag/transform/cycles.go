package transform

import (
	"slices"

	"github.com/matzehuels/coursegraph/pkg/core/dag"
)

// HasCycle reports whether the directed graph described by edges contains a
// cycle.
//
// Only identifiers that appear as the source or target of at least one edge
// are considered, so isolated courses never affect the result.
//
// # Algorithm
//
// HasCycle counts in-degrees, seeds a queue with every identifier of
// in-degree 0 and repeatedly removes queue heads, decrementing the in-degree
// of their targets. The graph is cyclic exactly when fewer identifiers are
// removed than exist in the edge set. A self-loop is a cycle.
//
// # Nil Handling
//
// A nil or empty edge slice has no cycle.
//
// # Performance
//
// Time and space are O(V + E) where V is the number of distinct identifiers.
func HasCycle(edges []dag.Edge) bool {
	if len(edges) == 0 {
		return false
	}
	k := kahn(edges)
	return k.visited < len(k.ids)
}

// CycleMembers returns the identifiers that Kahn's algorithm could not
// release: every node on a cycle plus every node downstream of one. The
// result is sorted and empty when the graph is acyclic.
func CycleMembers(edges []dag.Edge) []string {
	k := kahn(edges)
	var out []string
	for _, id := range k.ids {
		if k.inDegree[id] > 0 {
			out = append(out, id)
		}
	}
	slices.Sort(out)
	return out
}

type kahnState struct {
	ids      []string // distinct identifiers in first-seen order
	inDegree map[string]int
	visited  int
}

func kahn(edges []dag.Edge) kahnState {
	st := kahnState{inDegree: make(map[string]int)}
	adj := make(map[string][]string)

	seen := make(map[string]bool)
	note := func(id string) {
		if !seen[id] {
			seen[id] = true
			st.ids = append(st.ids, id)
		}
	}
	for _, e := range edges {
		note(e.Source)
		note(e.Target)
		adj[e.Source] = append(adj[e.Source], e.Target)
		st.inDegree[e.Target]++
	}

	var queue []string
	for _, id := range st.ids {
		if st.inDegree[id] == 0 {
			queue = append(queue, id)
		}
	}

	for len(queue) > 0 {
		id := queue[0]
		queue = queue[1:]
		st.visited++
		for _, next := range adj[id] {
			st.inDegree[next]--
			if st.inDegree[next] == 0 {
				queue = append(queue, next)
			}
		}
	}
	return st
}
