package graph

import (
	"encoding/json"
	"fmt"
	"io"
	"os"

	"github.com/matzehuels/coursegraph/pkg/core/dag"
	"github.com/matzehuels/coursegraph/pkg/core/layout"
)

// =============================================================================
// Layout - Serialized Course Layout
// =============================================================================

// Layout is the serialization format for computed course layouts. It is used
// for JSON files, API responses and as renderer input.
//
// Width and Height span every node box. Levels maps each level to its node
// IDs in slot order.
type Layout struct {
	Title     string           `json:"title,omitempty" bson:"title,omitempty"`
	Direction string           `json:"direction" bson:"direction"`
	Width     float64          `json:"width" bson:"width"`
	Height    float64          `json:"height" bson:"height"`
	Config    layout.Config    `json:"config" bson:"config"`
	Nodes     []Node           `json:"nodes" bson:"nodes"`
	Edges     []Edge           `json:"edges" bson:"edges"`
	Levels    map[int][]string `json:"levels" bson:"levels"`
}

// FromLayout converts computed layout nodes and the graph edges into a
// Layout. Edges whose endpoints are not both among nodes are dropped since
// they cannot be drawn. With detailed set, every node carries its course.
func FromLayout(nodes []layout.Node, edges []dag.Edge, dir layout.Direction, cfg layout.Config, detailed bool) Layout {
	cfg = cfg.WithDefaults()
	width, height := layout.Bounds(nodes, cfg)

	out := Layout{
		Direction: dir.String(),
		Width:     width,
		Height:    height,
		Config:    cfg,
		Nodes:     make([]Node, len(nodes)),
		Edges:     []Edge{},
		Levels:    layout.Levels(nodes),
	}

	known := make(map[string]bool, len(nodes))
	for i, n := range nodes {
		out.Nodes[i] = nodeFromLayout(n, detailed)
		known[n.ID] = true
	}
	for _, e := range edges {
		if known[e.Source] && known[e.Target] {
			out.Edges = append(out.Edges, edgeFromDAG(e))
		}
	}
	return out
}

// Node returns the node with the given ID.
func (l *Layout) Node(id string) (Node, bool) {
	for _, n := range l.Nodes {
		if n.ID == id {
			return n, true
		}
	}
	return Node{}, false
}

// IsLeftToRight reports whether levels run along the x axis.
func (l *Layout) IsLeftToRight() bool { return l.Direction == string(layout.LeftToRight) }

// Subset returns a copy holding only the nodes in visible and the edges
// between them. Positions are kept as computed for the full layout; Width,
// Height and Levels are recomputed from the remaining nodes.
func (l Layout) Subset(visible map[string]bool) Layout {
	out := l
	out.Nodes = []Node{}
	out.Edges = []Edge{}
	out.Levels = make(map[int][]string)
	out.Width, out.Height = 0, 0

	cfg := l.Config.WithDefaults()
	for _, n := range l.Nodes {
		if !visible[n.ID] {
			continue
		}
		out.Nodes = append(out.Nodes, n)
		out.Levels[n.Level] = append(out.Levels[n.Level], n.ID)
		out.Width = max(out.Width, n.X+cfg.NodeWidth)
		out.Height = max(out.Height, n.Y+cfg.NodeHeight)
	}
	for _, e := range l.Edges {
		if visible[e.From] && visible[e.To] {
			out.Edges = append(out.Edges, e)
		}
	}
	return out
}

// =============================================================================
// Layout Serialization API
// =============================================================================

// MarshalLayout serializes a Layout to pretty-printed JSON bytes.
func MarshalLayout(l Layout) ([]byte, error) {
	return json.MarshalIndent(l, "", "  ")
}

// WriteLayout writes a Layout as indented JSON to w.
func WriteLayout(l Layout, w io.Writer) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	if err := enc.Encode(l); err != nil {
		return fmt.Errorf("encode: %w", err)
	}
	return nil
}

// UnmarshalLayout deserializes JSON bytes into a Layout.
// The direction must be TB or LR and every edge must join two listed nodes.
func UnmarshalLayout(data []byte) (Layout, error) {
	var l Layout
	if err := json.Unmarshal(data, &l); err != nil {
		return Layout{}, fmt.Errorf("unmarshal layout: %w", err)
	}
	if !layout.Direction(l.Direction).Valid() {
		return Layout{}, fmt.Errorf("layout has unknown direction %q", l.Direction)
	}

	known := make(map[string]bool, len(l.Nodes))
	for _, n := range l.Nodes {
		known[n.ID] = true
	}
	for _, e := range l.Edges {
		if !known[e.From] || !known[e.To] {
			return Layout{}, fmt.Errorf("layout edge %s references unknown node", e.ID)
		}
	}
	return l, nil
}

// WriteLayoutFile writes a Layout to a JSON file.
func WriteLayoutFile(l Layout, path string) error {
	data, err := MarshalLayout(l)
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}

// ReadLayoutFile reads a Layout from a JSON file.
func ReadLayoutFile(path string) (Layout, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Layout{}, fmt.Errorf("read %s: %w", path, err)
	}
	return UnmarshalLayout(data)
}
