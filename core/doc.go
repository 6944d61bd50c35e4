// Package core provides the in-memory geometric Graph used throughout netopt.
//
// A Graph G = (V,E) here is deliberately narrow:
//
//   - Nodes are identified by int IDs and carry planar (X, Y) coordinates.
//   - Edges are undirected, simple (no parallel edges, no self-loops) and
//     carry a non-negative float64 weight.
//   - Every structural mutation bumps a monotonic Revision, so derived caches
//     (adjacency matrices, cost totals, ...) can detect that they are stale.
//
// Storage is a nested map adjacency[u][v] = weight, mirrored for both
// endpoints, giving O(1) insertion, deletion and existence checks.
//
// Concurrency:
//
//	Separate sync.RWMutex locks guard nodes (muNode) and edges (muEdge).
//	Lock order is always muNode -> muEdge. Individual calls are safe from
//	multiple goroutines; sequences of calls that must be atomic (for example
//	mutate-then-revert in package analytics) need external serialisation.
//
// Determinism:
//
//	Nodes(), Edges() and NeighborIDs() return sorted results so callers can
//	build matrices and golden outputs without relying on map order.
//
// Core methods:
//
//	AddNode(id, x, y) error             // O(1)
//	HasNode(id) bool                    // O(1)
//	Node(id) (Node, error)              // O(1)
//	Nodes() []int                       // O(V log V)
//	AddEdge(from, to, weight) error     // O(1)
//	RemoveEdge(from, to) error          // O(1)
//	HasEdge(from, to) bool              // O(1)
//	Weight(from, to) (float64, bool)    // O(1)
//	Edges() []Edge                      // O(E log E)
//	NeighborIDs(id) ([]int, error)      // O(d log d)
//	Clone() *Graph                      // O(V + E)
//	Revision() uint64                   // O(1)
//
// Errors:
//
//	ErrNodeNotFound        - missing node
//	ErrNodeExists          - node re-added at a different position
//	ErrEdgeNotFound        - missing edge
//	ErrBadWeight           - negative, NaN or Inf weight
//	ErrBadCoordinate       - NaN or Inf coordinate
//	ErrLoopNotAllowed      - from == to
//	ErrMultiEdgeNotAllowed - the pair is already connected
package core
