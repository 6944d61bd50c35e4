// Package netopt keeps network-design metrics current while you edit a
// geometric graph one edge at a time, and lets you take the last edit back.
//
// 🚀 What is netopt?
//
//	A small, dependency-light toolkit for local search over undirected,
//	squared-distance weighted graphs:
//		• Core primitives: nodes with (x, y) positions, simple weighted edges,
//		  thread-safe mutation and a revision counter
//		• Builders: random or lattice placement, explicit and YAML specs,
//		  path / cycle / star / complete topologies
//		• Matrix views: {0,1} adjacency, row-stochastic transition matrix,
//		  eigenvalues (gonum)
//		• Spectral analytics: convergence rate, second-largest eigenvalue,
//		  total and hypothetical-max edge cost, eccentricity, connectivity
//		• Incremental state: cached metrics with dirty flags and a single
//		  revertible mutation
//
// ✨ Why netopt?
//
//   - Try-and-undo loops: mutate, look at the metrics, Revert if worse
//   - Lazy spectra: eigenvalues are only recomputed when read after a change
//   - Plain errors: invalid edits return false, unknown nodes return errors
//
// Under the hood:
//
//	analytics/  — State: incremental metrics, dirty flags, one-slot undo
//	bfs/        — breadth-first traversal with hooks, depth limit, context
//	builder/    — placements, specs, topology generators, weighting rule
//	converters/ — core.Graph ⇄ gonum graph
//	core/       — Graph, Node, Edge and thread-safe primitives
//	matrix/     — dense matrices, adjacency, stochastic, eigenvalues
//	spectral/   — stateless analytics over a core.Graph
//
// Quick ASCII example:
//
//	0───1───2───3      path: cost 1+1+1 = 3
//	└───────────┘      + closing edge 0–3 (3² = 9): cycle cost 12
//
// See examples/topology_search for a complete local-search loop.
//
//	go get github.com/katalvlaran/netopt
package netopt
