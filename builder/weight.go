// SPDX-License-Identifier: MIT
// Package: netopt/builder
//
// weight.go — the single edge weighting rule of the module.
//
// Every edge created by this package (and by analytics.State) carries the
// squared Euclidean distance between its endpoints, never the distance itself.

package builder

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/netopt/core"
)

// SquaredDistance returns Δx² + Δy² between a and b.
func SquaredDistance(a, b core.Point) float64 {
	dx := a.X - b.X
	dy := a.Y - b.Y

	return dx*dx + dy*dy
}

// AddWeightedEdge connects origin and destination with weight
// SquaredDistance(origin, destination). It returns false, nil without
// modifying g when the edge already exists, and true, nil on insertion.
//
// Errors: ErrGraphNil, core.ErrNodeNotFound for an unknown endpoint and
// core.ErrLoopNotAllowed when origin == destination (all wrapped).
func AddWeightedEdge(g *core.Graph, origin, destination int) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	if g.HasEdge(origin, destination) {
		return false, nil
	}
	a, err := g.Node(origin)
	if err != nil {
		return false, fmt.Errorf("%s: node %d: %w", MethodAddWeightedEdge, origin, err)
	}
	b, err := g.Node(destination)
	if err != nil {
		return false, fmt.Errorf("%s: node %d: %w", MethodAddWeightedEdge, destination, err)
	}

	w := SquaredDistance(a.Point, b.Point)
	if err = g.AddEdge(origin, destination, w); err != nil {
		// lost a race against another writer; the edge is there either way
		if errors.Is(err, core.ErrMultiEdgeNotAllowed) {
			return false, nil
		}
		return false, fmt.Errorf("%s: %d-%d: %w", MethodAddWeightedEdge, origin, destination, err)
	}

	return true, nil
}
