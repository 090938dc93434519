// SPDX-License-Identifier: MIT
// Package: taskdag/builder
//
// builder.go - deterministic edge-list factories for tests, benchmarks
// and examples.
//
// Design contract (strict):
//   - Factories return edge LISTS, not graphs, so callers exercise
//     dag.New directly and keep full control over construction options.
//   - Determinism: same parameters (and seed, where applicable) produce
//     the identical edge list in the identical order.
//   - Safety: never panic; invalid parameters return sentinel errors.
//   - Node ids are consecutive ints starting at 0.

package builder

import (
	"errors"
	"fmt"
	"math/rand"

	"github.com/katalvlaran/taskdag/dag"
)

// Sentinel errors for parameter validation.
var (
	// ErrTooFewNodes indicates a size parameter below the shape's minimum.
	ErrTooFewNodes = errors.New("builder: too few nodes")

	// ErrBadProbability indicates an edge probability outside [0, 1].
	ErrBadProbability = errors.New("builder: probability out of range")
)

// Parameter minima per shape.
const (
	minChainNodes   = 2
	minFanNodes     = 2
	minCycleNodes   = 1
	minLayerCount   = 2
	minLayerWidth   = 1
	minRandomNodes  = 1
	diamondEdgeHint = 5
)

// Chain returns the edges of a linear pipeline 0→1→…→n-1 (n ≥ 2).
// Complexity: O(n).
func Chain(n int) ([]dag.Edge[int], error) {
	if n < minChainNodes {
		return nil, fmt.Errorf("Chain: n=%d < min=%d: %w", n, minChainNodes, ErrTooFewNodes)
	}

	edges := make([]dag.Edge[int], 0, n-1)
	for i := 1; i < n; i++ {
		edges = append(edges, dag.Edge[int]{Src: i - 1, Dst: i})
	}

	return edges, nil
}

// Diamond returns the five-node reference graph
//
//	0──▶1──▶2──▶4
//	└──▶3──────┘
//
// used throughout the test suites: two branches that fork at 0 and join
// at 4.
// Complexity: O(1).
func Diamond() []dag.Edge[int] {
	edges := make([]dag.Edge[int], 0, diamondEdgeHint)
	edges = append(edges,
		dag.Edge[int]{Src: 0, Dst: 1},
		dag.Edge[int]{Src: 1, Dst: 2},
		dag.Edge[int]{Src: 0, Dst: 3},
		dag.Edge[int]{Src: 3, Dst: 4},
		dag.Edge[int]{Src: 2, Dst: 4},
	)

	return edges
}

// Fan returns a single root 0 with edges 0→i for i = 1..n-1 (n ≥ 2):
// one prerequisite unlocking n-1 independent tasks.
// Complexity: O(n).
func Fan(n int) ([]dag.Edge[int], error) {
	if n < minFanNodes {
		return nil, fmt.Errorf("Fan: n=%d < min=%d: %w", n, minFanNodes, ErrTooFewNodes)
	}

	edges := make([]dag.Edge[int], 0, n-1)
	for i := 1; i < n; i++ {
		edges = append(edges, dag.Edge[int]{Src: 0, Dst: i})
	}

	return edges, nil
}

// Layered returns a dense scheduling DAG of `layers` layers of `width`
// nodes each, with an edge from every node of layer k to every node of
// layer k+1 (layers ≥ 2, width ≥ 1). Node id = layer*width + position.
// Complexity: O(layers · width²).
func Layered(layers, width int) ([]dag.Edge[int], error) {
	if layers < minLayerCount {
		return nil, fmt.Errorf("Layered: layers=%d < min=%d: %w", layers, minLayerCount, ErrTooFewNodes)
	}
	if width < minLayerWidth {
		return nil, fmt.Errorf("Layered: width=%d < min=%d: %w", width, minLayerWidth, ErrTooFewNodes)
	}

	edges := make([]dag.Edge[int], 0, (layers-1)*width*width)
	for l := 0; l < layers-1; l++ {
		for u := 0; u < width; u++ {
			for v := 0; v < width; v++ {
				edges = append(edges, dag.Edge[int]{Src: l*width + u, Dst: (l+1)*width + v})
			}
		}
	}

	return edges, nil
}

// Cycle returns the edges of the directed cycle 0→1→…→n-1→0 (n ≥ 1;
// n == 1 yields the self-loop 0→0). Always cyclic, so dag.New over the
// result produces an invalid graph — intended for failure-path tests.
// Complexity: O(n).
func Cycle(n int) ([]dag.Edge[int], error) {
	if n < minCycleNodes {
		return nil, fmt.Errorf("Cycle: n=%d < min=%d: %w", n, minCycleNodes, ErrTooFewNodes)
	}

	edges := make([]dag.Edge[int], 0, n)
	for i := 0; i < n; i++ {
		edges = append(edges, dag.Edge[int]{Src: i, Dst: (i + 1) % n})
	}

	return edges, nil
}

// Random returns a seeded random DAG over n nodes: each forward pair
// (i, j) with i < j carries an edge with probability p. Orienting every
// edge from the lower id to the higher keeps the result acyclic by
// construction, so dag.New over it is always valid.
// Same (n, p, seed) ⇒ identical edge list.
// Complexity: O(n²).
func Random(n int, p float64, seed int64) ([]dag.Edge[int], error) {
	if n < minRandomNodes {
		return nil, fmt.Errorf("Random: n=%d < min=%d: %w", n, minRandomNodes, ErrTooFewNodes)
	}
	if p < 0 || p > 1 {
		return nil, fmt.Errorf("Random: p=%g: %w", p, ErrBadProbability)
	}

	rng := rand.New(rand.NewSource(seed))
	edges := make([]dag.Edge[int], 0)
	for i := 0; i < n; i++ {
		for j := i + 1; j < n; j++ {
			if rng.Float64() < p {
				edges = append(edges, dag.Edge[int]{Src: i, Dst: j})
			}
		}
	}

	return edges, nil
}
