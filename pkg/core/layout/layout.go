package layout

import (
	"fmt"

	"github.com/matzehuels/coursegraph/pkg/core/dag"
	"github.com/matzehuels/coursegraph/pkg/core/dag/transform"
)

// Position is the top-left corner of a node box.
type Position struct {
	X float64
	Y float64
}

// Node is a graph node with its computed placement.
type Node struct {
	dag.Node
	Level    int
	Slot     int // index within the level, in input order
	Position Position
	Handles  Handles
}

// Compute assigns levels to nodes and places them on the grid described by
// cfg. Unset fields in cfg fall back to the defaults; see [Config.WithDefaults].
//
// The returned slice is freshly allocated and follows the input node order.
// Neither nodes nor edges are modified. Identical inputs produce identical
// outputs.
func Compute(nodes []dag.Node, edges []dag.Edge, dir Direction, cfg Config) ([]Node, error) {
	if !dir.Valid() {
		return nil, fmt.Errorf("compute layout: unknown direction %q", dir)
	}
	levels, err := transform.AssignLevels(nodes, edges)
	if err != nil {
		return nil, err
	}

	cfg = cfg.WithDefaults()
	handles := HandlesFor(dir)
	slots := make(map[int]int)

	out := make([]Node, len(nodes))
	for i, n := range nodes {
		level := levels[n.ID]
		slot := slots[level]
		slots[level]++

		out[i] = Node{
			Node:     n,
			Level:    level,
			Slot:     slot,
			Position: place(dir, cfg, level, slot),
			Handles:  handles,
		}
	}
	return out, nil
}

func place(dir Direction, cfg Config, level, slot int) Position {
	if dir == LeftToRight {
		return Position{X: float64(level) * cfg.stepX(), Y: float64(slot) * cfg.stepY()}
	}
	return Position{X: float64(slot) * cfg.stepX(), Y: float64(level) * cfg.stepY()}
}

// Bounds returns the width and height of the smallest box that contains
// every node of a layout computed with cfg.
func Bounds(nodes []Node, cfg Config) (width, height float64) {
	cfg = cfg.WithDefaults()
	for _, n := range nodes {
		width = max(width, n.Position.X+cfg.NodeWidth)
		height = max(height, n.Position.Y+cfg.NodeHeight)
	}
	return width, height
}

// Levels groups node IDs by level, each group in slot order.
func Levels(nodes []Node) map[int][]string {
	out := make(map[int][]string)
	for _, n := range nodes {
		out[n.Level] = append(out[n.Level], n.ID)
	}
	return out
}
