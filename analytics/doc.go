// SPDX-License-Identifier: MIT

// Package analytics maintains derived metrics over a mutable geometric graph
// and lets callers try an edge mutation and take it back.
//
// A State wraps one *core.Graph together with
//
//   - a self-avoiding {0,1} adjacency matrix (zero diagonal) patched in
//     place on every mutation,
//   - the total edge cost, always current,
//   - the spectral convergence rate and the connectivity flag, each cached
//     with a dirty flag and recomputed lazily on read,
//   - one undo record describing the most recent successful mutation.
//
// Mutations
//
//	AddEdge, RemoveEdge and MoveEdge return (false, nil) and change nothing
//	when the mutation is not applicable (edge exists, edge missing, self
//	pair, same destination). Errors are reserved for node IDs the graph does
//	not know. A successful mutation overwrites the undo record; Revert
//	replays it backwards and restores every cached value and dirty flag as
//	they were before the mutation. Only one level of undo exists.
//
// Staleness
//
//	The matrix and cost are tagged with core.Graph.Revision. If the graph is
//	changed behind the State's back, the next call rebuilds them, marks the
//	lazy metrics dirty and drops the undo record.
//
// Concurrency
//
//	A State is not safe for concurrent use. Hold a lock across a
//	mutate-then-maybe-revert transaction if several goroutines share one.
package analytics
