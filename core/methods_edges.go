// SPDX-License-Identifier: MIT
//
// File: methods_edges.go
// Role: Edge lifecycle & queries: AddEdge/RemoveEdge/HasEdge/Weight/Edges/EdgeCount.
// Determinism:
//   - Edges() returns edges sorted by (From, To) with From < To.
// Concurrency:
//   - Mutations under muEdge write lock, queries under muEdge read lock.

package core

import (
	"sort"
	"sync/atomic"
)

// AddEdge connects from and to with the given weight.
//
// Steps:
//  1. Reject loops (ErrLoopNotAllowed) and bad weights (ErrBadWeight).
//  2. Both endpoints must exist (ErrNodeNotFound).
//  3. Reject an already-connected pair (ErrMultiEdgeNotAllowed).
//  4. Store the weight in both adjacency buckets and bump the revision.
//
// Complexity: O(1).
func (g *Graph) AddEdge(from, to int, weight float64) error {
	if from == to {
		return ErrLoopNotAllowed
	}
	if !finite(weight) || weight < 0 {
		return ErrBadWeight
	}
	if !g.HasNode(from) || !g.HasNode(to) {
		return ErrNodeNotFound
	}

	g.muEdge.Lock()
	defer g.muEdge.Unlock()

	if _, ok := g.adjacency[from][to]; ok {
		return ErrMultiEdgeNotAllowed
	}
	g.adjacency[from][to] = weight
	g.adjacency[to][from] = weight
	g.edgeCount++
	atomic.AddUint64(&g.revision, 1)

	return nil
}

// RemoveEdge deletes the edge between from and to.
// Returns ErrEdgeNotFound if the pair is not connected.
// Complexity: O(1).
func (g *Graph) RemoveEdge(from, to int) error {
	g.muEdge.Lock()
	defer g.muEdge.Unlock()

	if _, ok := g.adjacency[from][to]; !ok {
		return ErrEdgeNotFound
	}
	delete(g.adjacency[from], to)
	delete(g.adjacency[to], from)
	g.edgeCount--
	atomic.AddUint64(&g.revision, 1)

	return nil
}

// HasEdge reports whether from and to are connected.
// Complexity: O(1).
func (g *Graph) HasEdge(from, to int) bool {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	_, ok := g.adjacency[from][to]

	return ok
}

// Weight returns the weight of the edge between from and to.
// Complexity: O(1).
func (g *Graph) Weight(from, to int) (float64, bool) {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()
	w, ok := g.adjacency[from][to]

	return w, ok
}

// Edges returns every edge once, normalised to From < To and sorted.
// Complexity: O(E log E).
func (g *Graph) Edges() []Edge {
	g.muEdge.RLock()
	out := make([]Edge, 0, g.edgeCount)
	for u, nbrs := range g.adjacency {
		for v, w := range nbrs {
			if u < v {
				out = append(out, Edge{From: u, To: v, Weight: w})
			}
		}
	}
	g.muEdge.RUnlock()

	sort.Slice(out, func(i, j int) bool {
		if out[i].From != out[j].From {
			return out[i].From < out[j].From
		}
		return out[i].To < out[j].To
	})

	return out
}

// EdgeCount returns the number of undirected edges.
// Complexity: O(1).
func (g *Graph) EdgeCount() int {
	g.muEdge.RLock()
	defer g.muEdge.RUnlock()

	return g.edgeCount
}
