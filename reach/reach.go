// Package reach provides predecessor and successor queries over a
// constructed dag.Graph: direct neighbors (Before, After) and full
// transitive closures (AllBefore, AllAfter).
package reach

import (
	"cmp"
	"slices"

	"github.com/katalvlaran/taskdag/dag"
)

// Before returns the sorted, deduplicated set of nodes with an edge
// directly into id — the immediate prerequisites of a task.
//
// An id absent from the graph is not an error; it simply has no
// predecessors. Returns dag.ErrNilGraph or dag.ErrCyclicGraph with a nil
// slice on an unusable graph.
//
// Complexity: O(log E + k log k) where k is the in-degree of id.
func Before[T cmp.Ordered](g *dag.Graph[T], id T) ([]T, error) {
	if err := usable(g); err != nil {
		return nil, err
	}

	out := make([]T, 0)
	for _, e := range g.InEdges(id) {
		out = append(out, e.Src)
	}
	slices.Sort(out)

	return slices.Compact(out), nil
}

// After returns the sorted, deduplicated set of nodes id has an edge
// directly into — the immediate dependents of a task.
//
// Preconditions and failure modes match Before.
//
// Complexity: O(log E + k log k) where k is the out-degree of id.
func After[T cmp.Ordered](g *dag.Graph[T], id T) ([]T, error) {
	if err := usable(g); err != nil {
		return nil, err
	}

	out := make([]T, 0)
	for _, e := range g.OutEdges(id) {
		out = append(out, e.Dst)
	}
	slices.Sort(out)

	return slices.Compact(out), nil
}

// AllBefore returns every ancestor of id: the transitive closure of
// Before, computed by a depth-first worklist over the edgesByDst index.
// The node id itself is never included, and an id absent from the graph
// yields an empty result.
//
// Returns dag.ErrNilGraph or dag.ErrCyclicGraph with a nil slice on an
// unusable graph.
//
// Complexity: O((V+E) log V) in the worst case (sorted insertion into the
// visited output per discovered ancestor).
func AllBefore[T cmp.Ordered](g *dag.Graph[T], id T) ([]T, error) {
	if err := usable(g); err != nil {
		return nil, err
	}

	return expand(id, func(cur T, visit func(T)) {
		for _, e := range g.InEdges(cur) {
			visit(e.Src)
		}
	}), nil
}

// AllAfter returns every descendant of id: the transitive closure of
// After, computed by a depth-first worklist over the edgesBySrc index.
//
// Preconditions and failure modes match AllBefore.
//
// Complexity: O((V+E) log V) in the worst case.
func AllAfter[T cmp.Ordered](g *dag.Graph[T], id T) ([]T, error) {
	if err := usable(g); err != nil {
		return nil, err
	}

	return expand(id, func(cur T, visit func(T)) {
		for _, e := range g.OutEdges(cur) {
			visit(e.Dst)
		}
	}), nil
}

// usable rejects nil and cyclic graphs, the two failure conditions shared
// by every query in this package.
func usable[T cmp.Ordered](g *dag.Graph[T]) error {
	if g == nil {
		return dag.ErrNilGraph
	}
	if !g.Valid() {
		return dag.ErrCyclicGraph
	}

	return nil
}

// expand runs the worklist traversal shared by AllBefore and AllAfter.
// neighbors enumerates the nodes one hop from cur in the chosen
// direction; each node not yet present in the output is inserted at its
// sorted position and pushed for further expansion. The output therefore
// stays sorted and deduplicated at all times and doubles as the visited
// set.
func expand[T cmp.Ordered](seed T, neighbors func(cur T, visit func(T))) []T {
	out := make([]T, 0)
	stack := []T{seed}

	var cur T
	for len(stack) > 0 {
		cur, stack = stack[len(stack)-1], stack[:len(stack)-1]
		neighbors(cur, func(n T) {
			if i, found := slices.BinarySearch(out, n); !found {
				out = slices.Insert(out, i, n)
				stack = append(stack, n)
			}
		})
	}

	return out
}
