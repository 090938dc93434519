// Package sched answers the two questions a task scheduler asks of a
// dependency graph: "what may run alongside this task?" (Siblings) and
// "what may run right now?" (Ready).
//
// What
//
//   - Siblings(g, id): every node incomparable to id under the dependency
//     order — neither ancestor, nor descendant, nor id itself. These are
//     the concurrency candidates for id.
//   - Ready(g, done): every node not yet done whose direct prerequisites
//     are all done — the next wave of runnable tasks.
//
// Why
//
//   - A scheduler advances by repeatedly completing tasks, adding them to
//     its done set, and asking Ready for the next wave; Siblings bounds
//     how wide each wave may safely be.
//
// Semantics
//
//   - Results are freshly allocated, sorted ascending and deduplicated.
//   - Siblings requires id to exist in the graph (ErrNodeNotFound);
//     Ready has no such requirement.
//   - done passed to Ready MUST already be sorted ascending with unique
//     elements. That precondition is a documented contract, not a checked
//     error: violating it yields unspecified results. The caller owns
//     done and advances it between calls as tasks complete.
//   - A non-nil error means "no answer", never "empty answer".
//
// Complexity (V = |nodes|, E = |edges|)
//
//   - Siblings: O((V+E) log V)
//   - Ready:    O((V+E) log V)
//
// Usage
//
//	//	    0──▶1──▶2──▶4
//	//	    └──▶3──────┘
//	g := dag.New(builder.Diamond())
//	next, _ := sched.Ready(g, []int{0})    // [1 3]
//	conc, _ := sched.Siblings(g, 3)        // [1 2]
//
// Errors
//
//   - dag.ErrNilGraph     if g is nil.
//   - dag.ErrCyclicGraph  if the graph failed validation.
//   - ErrNodeNotFound     (Siblings only) if id is not in the graph.
package sched
