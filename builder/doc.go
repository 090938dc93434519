// Package builder provides deterministic edge-list fixtures for the dag,
// reach and sched packages: canonical DAG shapes (chain, diamond, fan,
// layered), one deliberately cyclic shape for failure-path tests, and a
// seeded random DAG.
//
// Factories return []dag.Edge[int] rather than constructed graphs so
// that tests and benchmarks exercise dag.New themselves. All factories
// are deterministic: the same parameters (and seed, where applicable)
// yield the identical edge list in the identical order.
//
// Shapes
//
//   - Chain(n):            0→1→…→n-1
//   - Diamond():           the five-node fork/join reference graph
//   - Fan(n):              0→i for i = 1..n-1
//   - Layered(layers, w):  complete bipartite edges between consecutive layers
//   - Cycle(n):            0→1→…→n-1→0 (cyclic on purpose)
//   - Random(n, p, seed):  forward edges i→j (i<j) with probability p
//
// Errors
//
//   - ErrTooFewNodes     size parameter below the shape's minimum.
//   - ErrBadProbability  probability outside [0, 1].
package builder
