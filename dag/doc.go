// Package dag provides an immutable, generic directed-acyclic-graph core
// for backing a task/dependency scheduler.
//
// What
//
//   - Edge[T]: a directed dependency (Src must complete before Dst) over
//     any ordered node-id type T.
//   - Graph[T]: built once by New from an edge collection (plus optional
//     isolated nodes via WithNodes), immutable thereafter.
//   - A Kahn topological sort runs at construction time, settling Valid
//     and TopologicalOrder in one pass.
//   - Accessors expose the sorted node set, the topological order and the
//     two sorted edge views; all returned slices are fresh copies.
//
// Why
//
//   - A scheduler asks the same questions over and over against a graph
//     that changes rarely. Paying the sort cost once up front makes every
//     later lookup a binary search over a contiguous array.
//   - Immutability makes concurrent reads from any number of goroutines
//     safe with no synchronization at all.
//
// Sorted-array-as-set
//
//	Every set in this package is a sorted, deduplicated slice searched by
//	binary search — never a map — because sorted iteration order is part
//	of the observable contract (Nodes, query outputs) and contiguous
//	storage keeps traversals cache-friendly.
//
// Validity
//
//	Construction never fails. A cyclic edge set still produces a Graph;
//	Valid reports false, TopologicalOrder is empty, and every query in
//	the reach and sched packages reports ErrCyclicGraph. Structural
//	change means building a new Graph from a new edge collection — there
//	is no update-in-place API.
//
// Complexity (V = |nodes|, E = |edges|)
//
//   - Construction: O(E log E + (V+E) log V)
//   - Accessors:    O(1) flags, O(log E + k) range scans, O(V) / O(E) copies
//
// Usage
//
//	g := dag.New([]dag.Edge[int]{
//	    {Src: 0, Dst: 1},
//	    {Src: 1, Dst: 2},
//	}, dag.WithNodes(7)) // 7 participates even with no edges
//	if !g.Valid() {
//	    // edge set is cyclic; queries will fail
//	}
//	order := g.TopologicalOrder() // [0 1 2 7]
//
// Errors
//
//   - ErrNilGraph     if a nil *Graph reaches a query.
//   - ErrCyclicGraph  reported by queries when Valid is false.
//
// See the reach and sched packages for the traversal and scheduling
// queries that operate on a constructed Graph.
package dag
