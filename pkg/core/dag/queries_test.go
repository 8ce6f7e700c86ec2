package dag

import (
	"slices"
	"testing"
)

func TestRelationshipQueries(t *testing.T) {
	// A -> B -> C
	edges := Build(cat(course("A"), course("B", "A"), course("C", "B"))).Edges

	tests := []struct {
		name string
		got  []string
		want []string
	}{
		{"PrerequisitesOfC", Prerequisites(edges, "C"), []string{"B"}},
		{"DependentsOfA", Dependents(edges, "A"), []string{"B"}},
		{"PrerequisitesOfA", Prerequisites(edges, "A"), []string{}},
		{"DependentsOfC", Dependents(edges, "C"), []string{}},
		{"Unknown", Dependents(edges, "nope"), []string{}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if tt.got == nil {
				t.Fatal("result should be empty, not nil")
			}
			if !slices.Equal(tt.got, tt.want) {
				t.Errorf("got %v, want %v", tt.got, tt.want)
			}
		})
	}
}

func TestRelationshipQueries_EdgeOrderNoDedup(t *testing.T) {
	edges := []Edge{
		{ID: "A-C", Source: "A", Target: "C"},
		{ID: "A-B", Source: "A", Target: "B"},
		{ID: "A-C", Source: "A", Target: "C"},
	}

	if got := Dependents(edges, "A"); !slices.Equal(got, []string{"C", "B", "C"}) {
		t.Errorf("Dependents(A) = %v, want [C B C]", got)
	}
	if got := Prerequisites(edges, "C"); !slices.Equal(got, []string{"A", "A"}) {
		t.Errorf("Prerequisites(C) = %v, want [A A]", got)
	}
}

func TestRelationshipQueries_NilEdges(t *testing.T) {
	if got := Dependents(nil, "A"); got == nil || len(got) != 0 {
		t.Errorf("Dependents(nil) = %#v, want empty slice", got)
	}
	if got := Prerequisites(nil, "A"); got == nil || len(got) != 0 {
		t.Errorf("Prerequisites(nil) = %#v, want empty slice", got)
	}
}
