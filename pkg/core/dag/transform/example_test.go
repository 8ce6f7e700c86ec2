package transform_test

import (
	"errors"
	"fmt"

	"github.com/matzehuels/coursegraph/pkg/core/dag"
	"github.com/matzehuels/coursegraph/pkg/core/dag/transform"
)

func ExampleAssignLevels() {
	nodes := []dag.Node{{ID: "A"}, {ID: "B"}, {ID: "C"}, {ID: "D"}}
	edges := []dag.Edge{
		{ID: "A-B", Source: "A", Target: "B"},
		{ID: "B-C", Source: "B", Target: "C"},
		{ID: "C-D", Source: "C", Target: "D"},
		{ID: "A-D", Source: "A", Target: "D"},
	}

	levels, err := transform.AssignLevels(nodes, edges)
	if err != nil {
		fmt.Println(err)
		return
	}
	for _, n := range nodes {
		fmt.Println(n.ID, levels[n.ID])
	}
	// Output:
	// A 0
	// B 1
	// C 2
	// D 3
}

func ExampleHasCycle() {
	edges := []dag.Edge{
		{ID: "A-B", Source: "A", Target: "B"},
		{ID: "B-A", Source: "B", Target: "A"},
	}
	fmt.Println(transform.HasCycle(edges))
	fmt.Println(transform.CycleMembers(edges))

	_, err := transform.AssignLevels([]dag.Node{{ID: "A"}, {ID: "B"}}, edges)
	fmt.Println(errors.Is(err, dag.ErrGraphHasCycle))
	// Output:
	// true
	// [A B]
	// true
}
