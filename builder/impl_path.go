// SPDX-License-Identifier: MIT
// Package: netopt/builder
//
// impl_path.go — Path generator.
//
// Contract:
//   • Connects nodes consecutively in ascending ID order:
//     id₀–id₁, id₁–id₂, …, idₙ₋₂–idₙ₋₁.
//   • Edges go through AddWeightedEdge, so existing edges are skipped and
//     re-applying Path is a no-op.
//   • Mutates and returns the same graph instance.
//
// Complexity: O(n log n) for the sorted ID list plus O(n) edges.

package builder

import (
	"fmt"

	"github.com/katalvlaran/netopt/core"
)

// Path adds the ascending-ID path to g and returns g.
func Path(g *core.Graph) (*core.Graph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	ids := g.Nodes()
	for i := 1; i < len(ids); i++ {
		if _, err := AddWeightedEdge(g, ids[i-1], ids[i]); err != nil {
			return g, fmt.Errorf("%s: %w", MethodPath, err)
		}
	}

	return g, nil
}
