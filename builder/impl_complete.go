// SPDX-License-Identifier: MIT
// Package: netopt/builder
//
// impl_complete.go — Complete generator.
//
// Contract:
//   • Adds an edge between every unordered pair of nodes, skipping pairs
//     already connected. Existing weights are left as they are.
//   • Emission order: (i, j) for i < j over ascending IDs.
//   • Idempotent; mutates and returns the same graph instance.
//
// Complexity: O(n²) pairs.

package builder

import (
	"fmt"

	"github.com/katalvlaran/netopt/core"
)

// Complete connects every pair of nodes in g and returns g.
func Complete(g *core.Graph) (*core.Graph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	ids := g.Nodes()
	for i := 0; i < len(ids); i++ {
		for j := i + 1; j < len(ids); j++ {
			if _, err := AddWeightedEdge(g, ids[i], ids[j]); err != nil {
				return g, fmt.Errorf("%s: %w", MethodComplete, err)
			}
		}
	}

	return g, nil
}
