// Package dag defines the Edge and Graph types and the construction
// pipeline that turns a caller-supplied edge collection into an immutable,
// query-ready dependency graph.
//
// This file declares Edge, Graph, Option, the sentinel errors, and the
// construction configuration; the build itself lives in dag.go and the
// topological sort in topological.go.
package dag

import (
	"cmp"
	"errors"
)

// Sentinel errors shared by the dag, reach and sched packages.
var (
	// ErrNilGraph is returned when a nil *Graph is passed to a query.
	ErrNilGraph = errors.New("dag: graph is nil")

	// ErrCyclicGraph is returned by every query against a graph whose edge
	// set contains a cycle. Construction itself never fails; cyclicity is
	// reported through Valid and through this error on first use.
	ErrCyclicGraph = errors.New("dag: graph contains a cycle")
)

// Edge is a directed dependency between two tasks: Src must complete
// before Dst may start. Edges are plain values; duplicates are tolerated
// and treated as redundant, never as an error.
type Edge[T cmp.Ordered] struct {
	// Src is the prerequisite task.
	Src T

	// Dst is the dependent task.
	Dst T
}

// Graph is an immutable directed graph over node ids of type T, built
// exactly once by New. After construction no method mutates it, so a
// single Graph may be shared freely across goroutines without locking.
//
// Internally every set is a sorted slice searched by binary search: the
// edge multiset is kept twice (sorted by Src and by Dst) for efficient
// lookups in either direction, and nodes holds the sorted, deduplicated
// union of every endpoint plus any extra ids supplied via WithNodes.
type Graph[T cmp.Ordered] struct {
	// edgesBySrc and edgesByDst are permutations of the same edge
	// multiset, each stably sorted by the respective key.
	edgesBySrc []Edge[T]
	edgesByDst []Edge[T]

	// nodes is sorted ascending with no duplicates.
	nodes []T

	// sorted is a topological permutation of nodes when valid is true,
	// nil otherwise.
	sorted []T

	// valid reports that the edge set is acyclic.
	valid bool
}

// Option configures Graph construction.
type Option[T cmp.Ordered] func(*buildConfig[T])

// buildConfig aggregates construction knobs; it is resolved once inside
// New and never retained by the Graph.
type buildConfig[T cmp.Ordered] struct {
	extraNodes []T
}

// WithNodes includes ids in the node set even when no edge references
// them, so isolated tasks still appear in Nodes, in the topological order
// and in query results. Ids already covered by an edge are deduplicated
// away; the option may be repeated.
func WithNodes[T cmp.Ordered](ids ...T) Option[T] {
	return func(c *buildConfig[T]) {
		c.extraNodes = append(c.extraNodes, ids...)
	}
}
