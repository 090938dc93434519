package dag

import (
	"cmp"
	"slices"
)

// New builds a Graph from edges, applying any number of functional
// Options. Construction never fails: a cyclic input still yields a usable
// Graph, just one whose Valid reports false and whose TopologicalOrder is
// empty.
//
// The input slices are copied; New retains no reference to caller memory.
// For a given edge multiset the resulting arrays are deterministic up to
// the order of equal-key edges, which the stable sort takes from input
// order.
//
// Complexity: O(E log E) for the two edge sorts plus O((V+E) log V) for
// node dedup and the topological sort, V = |nodes|, E = |edges|.
func New[T cmp.Ordered](edges []Edge[T], opts ...Option[T]) *Graph[T] {
	var cfg buildConfig[T]
	for _, opt := range opts {
		opt(&cfg)
	}

	g := &Graph[T]{
		edgesBySrc: slices.Clone(edges),
		edgesByDst: slices.Clone(edges),
	}
	slices.SortStableFunc(g.edgesBySrc, func(a, b Edge[T]) int { return cmp.Compare(a.Src, b.Src) })
	slices.SortStableFunc(g.edgesByDst, func(a, b Edge[T]) int { return cmp.Compare(a.Dst, b.Dst) })

	// Gather the node set: explicit extras plus every edge endpoint,
	// then sort and apply the uniqueness criterion.
	all := make([]T, 0, len(cfg.extraNodes)+2*len(edges))
	all = append(all, cfg.extraNodes...)
	for _, e := range edges {
		all = append(all, e.Src, e.Dst)
	}
	slices.Sort(all)
	g.nodes = slices.Compact(all)

	g.topologicalSort()

	return g
}

// outRange returns the subslice of edgesBySrc whose Src equals id.
// The result aliases graph memory and must not escape the package.
func (g *Graph[T]) outRange(id T) []Edge[T] {
	lo, _ := slices.BinarySearchFunc(g.edgesBySrc, id, func(e Edge[T], id T) int { return cmp.Compare(e.Src, id) })
	hi := lo
	for hi < len(g.edgesBySrc) && g.edgesBySrc[hi].Src == id {
		hi++
	}

	return g.edgesBySrc[lo:hi]
}

// inRange returns the subslice of edgesByDst whose Dst equals id.
// The result aliases graph memory and must not escape the package.
func (g *Graph[T]) inRange(id T) []Edge[T] {
	lo, _ := slices.BinarySearchFunc(g.edgesByDst, id, func(e Edge[T], id T) int { return cmp.Compare(e.Dst, id) })
	hi := lo
	for hi < len(g.edgesByDst) && g.edgesByDst[hi].Dst == id {
		hi++
	}

	return g.edgesByDst[lo:hi]
}
