// Read-only accessors. Every slice-returning accessor hands out a fresh
// copy so the Graph's internal arrays stay immutable no matter what the
// caller does with the result.

package dag

import "slices"

// Valid reports whether the edge set is acyclic. Every query in the reach
// and sched packages fails with ErrCyclicGraph when Valid is false.
//
// Complexity: O(1).
func (g *Graph[T]) Valid() bool { return g.valid }

// Len returns the number of distinct nodes.
//
// Complexity: O(1).
func (g *Graph[T]) Len() int { return len(g.nodes) }

// EdgeCount returns the number of edges, counting duplicates.
//
// Complexity: O(1).
func (g *Graph[T]) EdgeCount() int { return len(g.edgesBySrc) }

// Contains reports whether id is a node of the graph, via binary search
// over the sorted node array.
//
// Complexity: O(log V).
func (g *Graph[T]) Contains(id T) bool {
	_, found := slices.BinarySearch(g.nodes, id)

	return found
}

// Nodes returns all node ids, sorted ascending and deduplicated.
//
// Complexity: O(V) for the defensive copy.
func (g *Graph[T]) Nodes() []T { return slices.Clone(g.nodes) }

// TopologicalOrder returns the nodes in a dependency-respecting order:
// for every edge (u, v), u appears strictly before v. The slice is empty
// when Valid is false.
//
// Tie-break among simultaneously ready nodes: ascending id for the
// initial zero-in-degree scan, FIFO discovery order thereafter. Callers
// that require a reproducible order may rely on this.
//
// Complexity: O(V) for the defensive copy.
func (g *Graph[T]) TopologicalOrder() []T { return slices.Clone(g.sorted) }

// EdgesBySrc returns the edge multiset sorted ascending by Src.
//
// Complexity: O(E) for the defensive copy.
func (g *Graph[T]) EdgesBySrc() []Edge[T] { return slices.Clone(g.edgesBySrc) }

// EdgesByDst returns the edge multiset sorted ascending by Dst.
//
// Complexity: O(E) for the defensive copy.
func (g *Graph[T]) EdgesByDst() []Edge[T] { return slices.Clone(g.edgesByDst) }

// OutEdges returns the edges whose Src equals id, found by a
// binary-search range scan over EdgesBySrc. A node with no outgoing
// edges, or an id absent from the graph, yields an empty result.
//
// Complexity: O(log E + k) where k is the number of matching edges.
func (g *Graph[T]) OutEdges(id T) []Edge[T] { return slices.Clone(g.outRange(id)) }

// InEdges returns the edges whose Dst equals id, found by a binary-search
// range scan over EdgesByDst. A node with no incoming edges, or an id
// absent from the graph, yields an empty result.
//
// Complexity: O(log E + k) where k is the number of matching edges.
func (g *Graph[T]) InEdges(id T) []Edge[T] { return slices.Clone(g.inRange(id)) }
