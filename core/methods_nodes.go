// SPDX-License-Identifier: MIT
//
// File: methods_nodes.go
// Role: Node lifecycle & queries.
// Determinism:
//   - Nodes() returns IDs sorted ascending.
// Concurrency:
//   - Node catalog protected by muNode; adjacency bootstrap under muEdge.

package core

import (
	"math"
	"sort"
	"sync/atomic"
)

// AddNode inserts a node at (x, y).
//
// Re-adding an existing ID at the same position is a no-op; re-adding it at a
// different position returns ErrNodeExists. Non-finite coordinates return
// ErrBadCoordinate.
//
// Complexity: O(1) amortized.
func (g *Graph) AddNode(id int, x, y float64) error {
	if !finite(x) || !finite(y) {
		return ErrBadCoordinate
	}

	g.muNode.Lock()
	defer g.muNode.Unlock()

	if n, ok := g.nodes[id]; ok {
		if n.X == x && n.Y == y {
			return nil
		}
		return ErrNodeExists
	}
	g.nodes[id] = &Node{ID: id, Point: Point{X: x, Y: y}}

	// Bootstrap the adjacency bucket so edge methods can rely on it.
	g.muEdge.Lock()
	g.adjacency[id] = make(map[int]float64)
	g.muEdge.Unlock()

	atomic.AddUint64(&g.revision, 1)

	return nil
}

// HasNode reports whether a node with the given ID exists.
// Complexity: O(1).
func (g *Graph) HasNode(id int) bool {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	_, ok := g.nodes[id]

	return ok
}

// Node returns a copy of the node with the given ID.
// Complexity: O(1).
func (g *Graph) Node(id int) (Node, error) {
	g.muNode.RLock()
	defer g.muNode.RUnlock()
	n, ok := g.nodes[id]
	if !ok {
		return Node{}, ErrNodeNotFound
	}

	return *n, nil
}

// Nodes returns all node IDs in ascending order.
// Complexity: O(V log V).
func (g *Graph) Nodes() []int {
	g.muNode.RLock()
	ids := make([]int, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	g.muNode.RUnlock()
	sort.Ints(ids)

	return ids
}

// NodeCount returns the number of nodes.
// Complexity: O(1).
func (g *Graph) NodeCount() int {
	g.muNode.RLock()
	defer g.muNode.RUnlock()

	return len(g.nodes)
}

// NeighborIDs returns the sorted IDs of nodes adjacent to id.
// Complexity: O(d log d).
func (g *Graph) NeighborIDs(id int) ([]int, error) {
	if !g.HasNode(id) {
		return nil, ErrNodeNotFound
	}

	g.muEdge.RLock()
	out := make([]int, 0, len(g.adjacency[id]))
	for v := range g.adjacency[id] {
		out = append(out, v)
	}
	g.muEdge.RUnlock()
	sort.Ints(out)

	return out, nil
}

// Degree returns the number of edges incident to id.
// Complexity: O(1).
func (g *Graph) Degree(id int) (int, error) {
	if !g.HasNode(id) {
		return 0, ErrNodeNotFound
	}
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	return len(g.adjacency[id]), nil
}

// Revision returns the structural version of the graph. It grows by at least
// one on every successful AddNode, AddEdge and RemoveEdge.
func (g *Graph) Revision() uint64 {
	return atomic.LoadUint64(&g.revision)
}

func finite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
