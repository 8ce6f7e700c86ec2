// Package graph provides the serialization format for course layouts.
//
// A [Layout] is what leaves the layout engine: positioned [Node] values,
// drawable [Edge] values, the level grouping and the geometry it was
// computed with. It is the wire format of the CLI's JSON output and the
// HTTP API, and the input of every renderer.
//
// # Architecture
//
// The package sits between the computation packages and the outside world:
//
//   - pkg/core/dag: prerequisite graph (no positions)
//   - pkg/core/layout: positioned nodes for one direction and geometry
//   - [Layout]: serialized result (this package)
//
// Use [FromLayout] to convert the output of layout.Compute.
//
// # JSON Shape
//
//	{
//	  "direction": "TB",
//	  "width": 520, "height": 248,
//	  "config": {"node_width": 240, "node_height": 84, ...},
//	  "nodes": [{"id": "CS101", "label": "Intro", "level": 0, "slot": 0,
//	             "x": 0, "y": 0, "handles": ["top", "bottom"], "mandatory": true}],
//	  "edges": [{"id": "CS101-CS201", "from": "CS101", "to": "CS201"}],
//	  "levels": {"0": ["CS101"], "1": ["CS201"]}
//	}
//
// # Partial Views
//
// [Layout.Subset] narrows a layout to a set of visible courses without
// moving anything, so expanding or collapsing a course never shifts the
// others.
//
// # Concurrency
//
// All functions are safe for concurrent use; Layout values are not
// synchronized.
package graph
