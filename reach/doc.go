// Package reach answers "what comes before / after this task?" over an
// immutable dag.Graph, one hop or transitively.
//
// What
//
//   - Before(g, id) / After(g, id): direct predecessors / successors,
//     found by a binary-search range scan over the matching sorted edge
//     index, then sorted and deduplicated.
//   - AllBefore(g, id) / AllAfter(g, id): the full ancestor / descendant
//     closure, computed by a depth-first worklist whose output array is
//     kept sorted at all times and doubles as the visited set. The
//     starting id is never part of its own closure.
//
// Why
//
//   - A scheduler needs both views: direct neighbors to wire up
//     completion notifications, closures to answer "what does cancelling
//     this task invalidate?" and to compute sibling sets.
//
// Semantics
//
//   - Results are always freshly allocated, sorted ascending and
//     deduplicated; callers may mutate them freely.
//   - Querying an id that is not a node of the graph is not an error —
//     the result is simply empty.
//   - A non-nil error means "no answer", never "empty answer": the graph
//     was nil (dag.ErrNilGraph) or cyclic (dag.ErrCyclicGraph), and the
//     accompanying slice is nil.
//
// Complexity (V = |nodes|, E = |edges|, k = degree of id)
//
//   - Before/After:       O(log E + k log k)
//   - AllBefore/AllAfter: O((V+E) log V) worst case
//
// Usage
//
//	//	    0──▶1──▶2──▶4
//	//	    └──▶3──────┘
//	g := dag.New(builder.Diamond())
//	anc, err := reach.AllBefore(g, 2) // [0 1]
//	if err != nil {
//	    // dag.ErrNilGraph or dag.ErrCyclicGraph
//	}
//
// Errors
//
//   - dag.ErrNilGraph     if g is nil.
//   - dag.ErrCyclicGraph  if the graph failed validation.
package reach
