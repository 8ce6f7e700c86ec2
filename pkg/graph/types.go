package graph

import (
	"github.com/matzehuels/coursegraph/pkg/catalog"
	"github.com/matzehuels/coursegraph/pkg/core/dag"
	"github.com/matzehuels/coursegraph/pkg/core/layout"
)

// =============================================================================
// Node - Positioned Course
// =============================================================================

// Node is a positioned course in a serialized layout.
//
// X and Y are the top-left corner of the course box. Course is only set for
// detailed layouts.
type Node struct {
	ID        string          `json:"id" bson:"id"`
	Label     string          `json:"label,omitempty" bson:"label,omitempty"` // Display label (defaults to ID)
	Level     int             `json:"level" bson:"level"`
	Slot      int             `json:"slot" bson:"slot"`
	X         float64         `json:"x" bson:"x"`
	Y         float64         `json:"y" bson:"y"`
	Handles   []string        `json:"handles" bson:"handles"`
	Mandatory bool            `json:"mandatory,omitempty" bson:"mandatory,omitempty"`
	Course    *catalog.Course `json:"course,omitempty" bson:"course,omitempty"`
}

// DisplayLabel returns the label if set, otherwise the ID.
func (n *Node) DisplayLabel() string {
	if n.Label != "" {
		return n.Label
	}
	return n.ID
}

// =============================================================================
// Edge - Prerequisite Relation
// =============================================================================

// Edge is a prerequisite relation: From must be taken before To.
type Edge struct {
	ID   string `json:"id" bson:"id"`
	From string `json:"from" bson:"from"`
	To   string `json:"to" bson:"to"`
}

// =============================================================================
// Internal Helpers
// =============================================================================

func nodeFromLayout(n layout.Node, detailed bool) Node {
	out := Node{
		ID:        n.ID,
		Label:     n.Course.Name,
		Level:     n.Level,
		Slot:      n.Slot,
		X:         n.Position.X,
		Y:         n.Position.Y,
		Handles:   n.Handles.Names(),
		Mandatory: n.Course.Mandatory,
	}
	if detailed {
		c := n.Course
		out.Course = &c
	}
	return out
}

func edgeFromDAG(e dag.Edge) Edge {
	return Edge{ID: e.ID, From: e.Source, To: e.Target}
}
