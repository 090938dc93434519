// Kahn's algorithm over the sorted edge arrays.
//
// The sort runs once, at construction time, and settles both the valid
// flag and the topological order. Among nodes that become ready
// simultaneously the order is deterministic: the initial zero-in-degree
// scan walks nodes in ascending id order, and discovery is FIFO
// thereafter.
//
// Complexity:
//
//   - Time:   O(V log V + E log V) (binary-search range lookups per node)
//   - Memory: O(V)                 (in-degree counts, queue, output order)

package dag

import (
	"cmp"
	"slices"
)

// kahnSorter encapsulates the state of one topological-sort run.
type kahnSorter[T cmp.Ordered] struct {
	graph *Graph[T] // the graph under construction
	inDeg []int     // in-degree per node, indexed by position in graph.nodes
	queue []T       // FIFO worklist of zero-in-degree nodes
	order []T       // output order under construction
}

// topologicalSort runs Kahn's algorithm and sets g.valid and g.sorted.
// A cycle leaves some node with a positive in-degree forever, so the
// output order comes up short; in that case the partial order is
// discarded and g.sorted stays nil.
func (g *Graph[T]) topologicalSort() {
	n := len(g.nodes)
	s := &kahnSorter[T]{
		graph: g,
		inDeg: make([]int, n),
		queue: make([]T, 0, n),
		order: make([]T, 0, n),
	}

	s.seed()
	s.drain()

	g.valid = len(s.order) == n
	if g.valid {
		g.sorted = s.order
	}
}

// seed counts in-degrees from edgesByDst and enqueues every node with
// none, scanning nodes in ascending id order.
func (s *kahnSorter[T]) seed() {
	for _, e := range s.graph.edgesByDst {
		s.inDeg[s.index(e.Dst)]++
	}
	for i, id := range s.graph.nodes {
		if s.inDeg[i] == 0 {
			s.queue = append(s.queue, id)
		}
	}
}

// drain processes the worklist: pop a node, append it to the order, and
// relax every outgoing edge, enqueueing destinations whose in-degree
// drops to zero.
func (s *kahnSorter[T]) drain() {
	var id T
	for len(s.queue) > 0 {
		id, s.queue = s.queue[0], s.queue[1:]
		s.order = append(s.order, id)

		for _, e := range s.graph.outRange(id) {
			i := s.index(e.Dst)
			s.inDeg[i]--
			if s.inDeg[i] == 0 {
				s.queue = append(s.queue, e.Dst)
			}
		}
	}
}

// index locates id in the sorted node array. Every edge endpoint is a
// member of graph.nodes by construction, so the lookup always succeeds.
func (s *kahnSorter[T]) index(id T) int {
	i, _ := slices.BinarySearch(s.graph.nodes, id)

	return i
}
