// Package dag provides the prerequisite graph built from a course catalog.
//
// # Overview
//
// A [Graph] holds one [Node] per course and one [Edge] per prerequisite
// reference. Edges point from the prerequisite to the course that requires
// it, so following edges forward answers "what does this unlock" and
// following them backward answers "what must come first".
//
// # Basic Usage
//
// Build a graph from a catalog with [Build]:
//
//	g := dag.Build(cat)
//	g.Prerequisites("CS201") // ["CS101"]
//	g.Dependents("CS101")    // ["CS201"]
//
// The free functions [Prerequisites] and [Dependents] answer the same
// questions over a bare edge slice, for callers that only kept the edges.
//
// # Referential Integrity
//
// [Build] never rejects a catalog. A prerequisite naming an unknown course
// still yields an edge; one of its endpoints is then absent from the node
// set. Layout treats such graphs as structurally broken (see the transform
// subpackage); catalog validation reports them as warnings.
//
// # Concurrency
//
// A Graph is read-only after Build returns. Concurrent reads are safe.
//
// # Related Packages
//
// The [transform] subpackage provides cycle detection and level assignment.
//
// [transform]: github.com/matzehuels/coursegraph/pkg/core/dag/transform
package dag
