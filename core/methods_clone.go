// SPDX-License-Identifier: MIT
//
// File: methods_clone.go
// Role: Cloning graph instances.
// Determinism:
//   - CloneEmpty/Clone carry over the revision so version tags stay monotonic.
// Concurrency:
//   - Read locks (muNode -> muEdge) for snapshotting; the source is never mutated.

package core

import "sync/atomic"

// CloneEmpty returns a new Graph with the same nodes and no edges.
// Complexity: O(V).
func (g *Graph) CloneEmpty() *Graph {
	return g.clone(false)
}

// Clone returns a deep copy of the Graph. Mutating the clone never affects
// the original and vice versa.
// Complexity: O(V + E).
func (g *Graph) Clone() *Graph {
	return g.clone(true)
}

func (g *Graph) clone(withEdges bool) *Graph {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	out := NewGraph()
	for id, n := range g.nodes {
		cp := *n
		out.nodes[id] = &cp
		out.adjacency[id] = make(map[int]float64, len(g.adjacency[id]))
	}
	if withEdges {
		for u, nbrs := range g.adjacency {
			for v, w := range nbrs {
				out.adjacency[u][v] = w
			}
		}
		out.edgeCount = g.edgeCount
	}
	atomic.StoreUint64(&out.revision, atomic.LoadUint64(&g.revision))

	return out
}
