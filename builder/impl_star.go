// SPDX-License-Identifier: MIT
// Package: netopt/builder
//
// impl_star.go - Star generator.
//
// Contract:
//   - The hub is the smallest node ID; every other node gets a spoke to it.
//   - Spokes go through AddWeightedEdge: existing edges are kept and a
//     second Star is a no-op.
//   - Fewer than two nodes: nothing to do.
//   - Mutates and returns the same graph instance.
//
// Complexity: O(n log n) for the sorted IDs plus O(n) spokes.

package builder

import (
	"fmt"

	"github.com/katalvlaran/netopt/core"
)

// Star connects the smallest-ID node to every other node and returns g.
func Star(g *core.Graph) (*core.Graph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	ids := g.Nodes()
	if len(ids) < 2 {
		return g, nil
	}
	hub := ids[0]
	for _, leaf := range ids[1:] {
		if _, err := AddWeightedEdge(g, hub, leaf); err != nil {
			return g, fmt.Errorf("%s: %w", MethodStar, err)
		}
	}

	return g, nil
}

// StarEdges wraps Star as a Constructor.
func StarEdges() Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		_, err := Star(g)
		return err
	}
}
