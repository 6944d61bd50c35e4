// SPDX-License-Identifier: MIT
//
// File: types.go
// Role: Node, Edge and Graph declarations, sentinel errors, NewGraph.

package core

import (
	"errors"
	"sync"
)

// Sentinel errors for core graph operations.
var (
	// ErrNodeNotFound indicates an operation referenced a non-existent node.
	ErrNodeNotFound = errors.New("core: node not found")

	// ErrNodeExists indicates a node ID was re-used with different coordinates.
	ErrNodeExists = errors.New("core: node already exists at another position")

	// ErrEdgeNotFound indicates an operation referenced a non-existent edge.
	ErrEdgeNotFound = errors.New("core: edge not found")

	// ErrBadWeight indicates a negative, NaN or infinite edge weight.
	ErrBadWeight = errors.New("core: weight must be finite and non-negative")

	// ErrBadCoordinate indicates a NaN or infinite node coordinate.
	ErrBadCoordinate = errors.New("core: coordinate must be finite")

	// ErrLoopNotAllowed indicates a self-loop was attempted.
	ErrLoopNotAllowed = errors.New("core: self-loop not allowed")

	// ErrMultiEdgeNotAllowed indicates a parallel edge was attempted.
	ErrMultiEdgeNotAllowed = errors.New("core: multi-edges not allowed")
)

// Point is a planar position.
type Point struct {
	X float64
	Y float64
}

// Node is a graph vertex with a fixed position.
type Node struct {
	// ID uniquely identifies this Node within its Graph.
	ID int

	// Point is the node position; it never changes after AddNode.
	Point
}

// Edge is an undirected weighted connection. Edges returned by the Graph are
// normalised so that From < To.
type Edge struct {
	From   int
	To     int
	Weight float64
}

// Graph is an undirected, weighted, simple graph over positioned nodes.
//
// muNode protects nodes; muEdge protects adjacency and edgeCount.
// revision is bumped atomically on every successful structural mutation.
type Graph struct {
	muNode sync.RWMutex // guards nodes
	muEdge sync.RWMutex // guards adjacency and edgeCount

	nodes     map[int]*Node           // node ID → Node
	adjacency map[int]map[int]float64 // adjacency[u][v] = weight, mirrored
	edgeCount int                     // number of undirected edges

	revision uint64 // atomic structural version
}

// NewGraph creates an empty Graph.
// Complexity: O(1).
func NewGraph() *Graph {
	return &Graph{
		nodes:     make(map[int]*Node),
		adjacency: make(map[int]map[int]float64),
	}
}
