package sched_test

import (
	"slices"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/taskdag/builder"
	"github.com/katalvlaran/taskdag/dag"
	"github.com/katalvlaran/taskdag/reach"
	"github.com/katalvlaran/taskdag/sched"
)

// diamond builds the five-node fork/join reference graph:
//
//	0──▶1──▶2──▶4
//	└──▶3──────┘
func diamond(t *testing.T) *dag.Graph[int] {
	t.Helper()
	g := dag.New(builder.Diamond())
	require.True(t, g.Valid())

	return g
}

// TestSiblings_Diamond pins the reference sibling sets: 2 and 3 sit on
// opposite branches, so each is the other's concurrency candidate.
func TestSiblings_Diamond(t *testing.T) {
	g := diamond(t)

	got, err := sched.Siblings(g, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{3}, got)

	got, err = sched.Siblings(g, 3)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2}, got)
}

// TestSiblings_Endpoints checks the fork and join nodes, which dominate
// every other node and therefore have no siblings.
func TestSiblings_Endpoints(t *testing.T) {
	g := diamond(t)

	got, err := sched.Siblings(g, 0)
	require.NoError(t, err)
	assert.Empty(t, got)

	got, err = sched.Siblings(g, 4)
	require.NoError(t, err)
	assert.Empty(t, got)
}

// TestSiblings_Partition verifies the partition property on a random DAG:
// for every node, Siblings ∪ AllBefore ∪ AllAfter ∪ {id} equals the node
// set and the four parts are pairwise disjoint.
func TestSiblings_Partition(t *testing.T) {
	edges, err := builder.Random(50, 0.08, 11)
	require.NoError(t, err)
	g := dag.New(edges)
	require.True(t, g.Valid())

	for _, id := range g.Nodes() {
		sib, serr := sched.Siblings(g, id)
		require.NoError(t, serr)
		before, berr := reach.AllBefore(g, id)
		require.NoError(t, berr)
		after, aerr := reach.AllAfter(g, id)
		require.NoError(t, aerr)

		union := make([]int, 0, g.Len())
		union = append(union, sib...)
		union = append(union, before...)
		union = append(union, after...)
		union = append(union, id)
		slices.Sort(union)

		// disjoint union covering all nodes: sorted concatenation equals
		// the node set exactly (duplicates would make it longer)
		assert.Equal(t, g.Nodes(), union, "partition broken at node %d", id)
	}
}

// TestSiblings_UnknownID verifies that unlike the reach queries, Siblings
// requires the node to exist.
func TestSiblings_UnknownID(t *testing.T) {
	g := diamond(t)
	got, err := sched.Siblings(g, 42)
	assert.ErrorIs(t, err, sched.ErrNodeNotFound)
	assert.Nil(t, got)
}

// TestSiblings_Isolated checks that an isolated node is a sibling of
// everything and vice versa.
func TestSiblings_Isolated(t *testing.T) {
	g := dag.New(builder.Diamond(), dag.WithNodes(9))

	got, err := sched.Siblings(g, 9)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 2, 3, 4}, got)

	got, err = sched.Siblings(g, 2)
	require.NoError(t, err)
	assert.Equal(t, []int{3, 9}, got)
}

// TestReady_Diamond walks the reference schedule: completing 0 unlocks
// 1 and 3; completing 1 as well unlocks 2 while 3 stays ready.
func TestReady_Diamond(t *testing.T) {
	g := diamond(t)

	got, err := sched.Ready(g, []int{0})
	require.NoError(t, err)
	assert.Equal(t, []int{1, 3}, got)

	got, err = sched.Ready(g, []int{0, 1})
	require.NoError(t, err)
	assert.Equal(t, []int{2, 3}, got)
}

// TestReady_NothingDone checks that with an empty done set only the
// roots are ready.
func TestReady_NothingDone(t *testing.T) {
	g := diamond(t)
	got, err := sched.Ready(g, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{0}, got)
}

// TestReady_AllDone checks that a fully completed graph has nothing left
// to run.
func TestReady_AllDone(t *testing.T) {
	g := diamond(t)
	got, err := sched.Ready(g, []int{0, 1, 2, 3, 4})
	require.NoError(t, err)
	assert.Empty(t, got)
}

// TestReady_IsolatedNode checks that an isolated node is ready from the
// start and disappears once done.
func TestReady_IsolatedNode(t *testing.T) {
	g := dag.New(builder.Diamond(), dag.WithNodes(9))

	got, err := sched.Ready(g, nil)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 9}, got)

	got, err = sched.Ready(g, []int{9})
	require.NoError(t, err)
	assert.Equal(t, []int{0}, got)
}

// TestReady_Definition cross-checks Ready against its definition on a
// random DAG: a node is ready iff it is not done and every direct
// predecessor is done.
func TestReady_Definition(t *testing.T) {
	edges, err := builder.Random(40, 0.1, 3)
	require.NoError(t, err)
	g := dag.New(edges)
	require.True(t, g.Valid())

	done := []int{0, 1, 2, 5, 8, 13}
	got, rerr := sched.Ready(g, done)
	require.NoError(t, rerr)

	for _, n := range g.Nodes() {
		if slices.Contains(done, n) {
			assert.NotContains(t, got, n)
			continue
		}
		preds, perr := reach.Before(g, n)
		require.NoError(t, perr)
		eligible := true
		for _, p := range preds {
			if !slices.Contains(done, p) {
				eligible = false
				break
			}
		}
		if eligible {
			assert.Contains(t, got, n, "node %d should be ready", n)
		} else {
			assert.NotContains(t, got, n, "node %d has unmet predecessors", n)
		}
	}
}

// TestReady_Drain drives a full schedule to completion: repeatedly run
// the ready set, mark it done, and verify every task runs exactly once
// in dependency order.
func TestReady_Drain(t *testing.T) {
	edges, err := builder.Layered(4, 3)
	require.NoError(t, err)
	g := dag.New(edges)
	require.True(t, g.Valid())

	done := make([]int, 0, g.Len())
	ran := make([]int, 0, g.Len())
	for len(done) < g.Len() {
		wave, werr := sched.Ready(g, done)
		require.NoError(t, werr)
		require.NotEmpty(t, wave, "schedule stalled with %d tasks left", g.Len()-len(done))

		ran = append(ran, wave...)
		done = append(done, wave...)
		slices.Sort(done)
	}

	slices.Sort(ran)
	assert.Equal(t, g.Nodes(), ran)
}

// TestQueries_CyclicGraph verifies both queries fail with
// dag.ErrCyclicGraph on an invalid graph.
func TestQueries_CyclicGraph(t *testing.T) {
	edges, err := builder.Cycle(2)
	require.NoError(t, err)
	g := dag.New(edges)
	require.False(t, g.Valid())

	got, serr := sched.Siblings(g, 0)
	assert.ErrorIs(t, serr, dag.ErrCyclicGraph)
	assert.Nil(t, got)

	got, rerr := sched.Ready(g, nil)
	assert.ErrorIs(t, rerr, dag.ErrCyclicGraph)
	assert.Nil(t, got)
}

// TestQueries_NilGraph verifies the nil-graph guard.
func TestQueries_NilGraph(t *testing.T) {
	var g *dag.Graph[int]

	got, err := sched.Siblings(g, 0)
	assert.ErrorIs(t, err, dag.ErrNilGraph)
	assert.Nil(t, got)

	got, err = sched.Ready(g, nil)
	assert.ErrorIs(t, err, dag.ErrNilGraph)
	assert.Nil(t, got)
}
