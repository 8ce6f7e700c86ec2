// Package transform analyses prerequisite graphs before they are laid out.
//
// # Cycle Detection
//
// [HasCycle] runs Kahn's algorithm over the identifiers that appear in an
// edge list and reports whether some of them could never be released.
// [CycleMembers] returns those identifiers for error messages.
//
// # Level Assignment
//
// [AssignLevels] gives every node an integer level such that each
// prerequisite sits on a strictly lower level than the courses it unlocks.
// It processes the topological order in batches: every node released during
// one pass of the worklist shares the pass counter, and a node's level is the
// highest counter among the passes that released one of its prerequisites.
// Courses without prerequisites stay on level 0.
//
// When the released vertices differ from the node list, AssignLevels returns
// a [*CycleError]. That covers nodes stuck behind a cycle as well as edges
// that name a vertex outside the node list.
// It matches [dag.ErrGraphHasCycle] with errors.Is.
//
// All functions are pure: they allocate their own bookkeeping per call and
// never modify the slices they are given.
//
// [dag.ErrGraphHasCycle]: github.com/matzehuels/coursegraph/pkg/core/dag.ErrGraphHasCycle
package transform
