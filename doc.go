// Package taskdag is an in-memory dependency graph for task scheduling —
// build a DAG once, then ask it what can run, what must wait, and why.
//
// 🚀 What is taskdag?
//
//	A small, read-mostly library for backing a task/dependency scheduler:
//		• Core: an immutable, generic DAG built once from an edge list
//		• Validation: Kahn topological sort with cycle detection
//		• Reachability: direct and transitive predecessor/successor queries
//		• Scheduling: sibling (concurrency-candidate) and ready-set queries
//		• Fixtures: deterministic DAG generators for tests & benchmarks
//
// ✨ Why choose taskdag?
//
//   - Immutable by construction – concurrent reads need no locks
//   - Deterministic – every output is a sorted, deduplicated id slice
//   - Generic – node ids are any ordered type (ints, strings, ...)
//   - Pure Go – no cgo, one test-only dependency
//
// Everything is organized under four subpackages:
//
//	dag/     — Edge, Graph, construction & topological order
//	reach/   — Before/After and AllBefore/AllAfter closure queries
//	sched/   — Siblings and Ready (current-tasks) queries
//	builder/ — deterministic edge-list fixtures (chain, diamond, random, ...)
//
// Quick ASCII example:
//
//	    0──▶1──▶2──▶4
//	    └──▶3──────┘
//
//	a diamond of five tasks; after task 0 completes, 1 and 3 are ready.
//
// Dive into each package's doc.go for contracts, complexity notes and
// worked examples.
//
//	go get github.com/katalvlaran/taskdag
package taskdag
