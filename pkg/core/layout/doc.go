// Package layout places prerequisite graphs on a layered grid.
//
// # Overview
//
// [Compute] runs level assignment from the transform package and converts
// every level into a row (top-to-bottom) or column (left-to-right) of
// equally sized course boxes. Within a level, courses keep the order in
// which they appear in the input node slice.
//
//	nodes, err := layout.Compute(g.Nodes, g.Edges, layout.TopToBottom, layout.DefaultConfig())
//
// # Geometry
//
// With w, h the node size, gx, gy the gaps, level L and slot S:
//
//	TB: x = S·(w+gx)  y = L·(h+gy)
//	LR: x = L·(w+gx)  y = S·(h+gy)
//
// Coordinates are the top-left corner of each box. [DefaultConfig] returns
// 240×84 boxes with 40 horizontal and 80 vertical gap.
//
// # Connectors
//
// Every positioned node carries a [Handles] set telling renderers where
// edges attach: top and bottom for TB, left and right for LR.
//
// # Errors
//
// Cyclic input fails with the transform package's CycleError, which matches
// dag.ErrGraphHasCycle. No partial layout is returned.
package layout
