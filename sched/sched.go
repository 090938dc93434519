// Package sched provides the scheduler-facing queries over a constructed
// dag.Graph: sibling computation and the ready set.
package sched

import (
	"cmp"
	"errors"
	"slices"

	"github.com/katalvlaran/taskdag/dag"
	"github.com/katalvlaran/taskdag/reach"
)

// ErrNodeNotFound is returned by Siblings when id is not a node of the
// graph.
var ErrNodeNotFound = errors.New("sched: node not found in graph")

// Siblings returns every node that is neither an ancestor nor a
// descendant of id, nor id itself — the tasks incomparable to id under
// the dependency order, hence candidates to run concurrently with it.
//
// Computed as Nodes minus (AllBefore ∪ AllAfter ∪ {id}), with membership
// tests by binary search into the two closure sets.
//
// Unlike the reach queries, Siblings requires id to be a node of the
// graph and reports ErrNodeNotFound otherwise. A nil or cyclic graph
// yields dag.ErrNilGraph or dag.ErrCyclicGraph.
//
// Complexity: O((V+E) log V) dominated by the two closures.
func Siblings[T cmp.Ordered](g *dag.Graph[T], id T) ([]T, error) {
	if g == nil {
		return nil, dag.ErrNilGraph
	}
	if !g.Valid() {
		return nil, dag.ErrCyclicGraph
	}
	if !g.Contains(id) {
		return nil, ErrNodeNotFound
	}

	// The graph passed validation above, so the closures cannot fail.
	before, err := reach.AllBefore(g, id)
	if err != nil {
		return nil, err
	}
	after, err := reach.AllAfter(g, id)
	if err != nil {
		return nil, err
	}

	out := make([]T, 0, g.Len()-len(before)-len(after)-1)
	for _, n := range g.Nodes() {
		if n == id || contains(before, n) || contains(after, n) {
			continue
		}
		out = append(out, n)
	}

	return out, nil
}

// Ready returns the tasks eligible to run now: every node not in done
// whose direct predecessors are all in done. Nodes with no predecessors
// at all are ready as soon as they are not done.
//
// done MUST be sorted ascending with unique elements — it is used as a
// set via binary search. This is a documented contract, not a checked
// error: an unsorted or duplicated done yields unspecified results.
//
// Algorithm: start from Nodes minus done; drop every node that is still
// the destination of an edge whose source is not in done (at least one
// unmet prerequisite).
//
// Returns dag.ErrNilGraph or dag.ErrCyclicGraph with a nil slice on an
// unusable graph.
//
// Complexity: O((V+E) log V).
func Ready[T cmp.Ordered](g *dag.Graph[T], done []T) ([]T, error) {
	if g == nil {
		return nil, dag.ErrNilGraph
	}
	if !g.Valid() {
		return nil, dag.ErrCyclicGraph
	}

	// Edges whose source is not yet complete still block their
	// destination. blocked inherits edgesByDst order, so it stays sorted
	// (duplicates are harmless to the binary search below).
	blocked := make([]T, 0)
	for _, e := range g.EdgesByDst() {
		if !contains(done, e.Src) {
			blocked = append(blocked, e.Dst)
		}
	}

	out := make([]T, 0, g.Len())
	for _, n := range g.Nodes() {
		if contains(done, n) || contains(blocked, n) {
			continue
		}
		out = append(out, n)
	}

	return out, nil
}

// contains reports set membership in a sorted slice.
func contains[T cmp.Ordered](set []T, id T) bool {
	_, found := slices.BinarySearch(set, id)

	return found
}
