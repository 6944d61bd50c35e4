// SPDX-License-Identifier: MIT
// Package: netopt/builder
//
// impl_cycle.go — Cycle generator.
//
// Contract:
//   • Applies Path, then one closing edge between the minimum and maximum
//     node IDs.
//   • With fewer than two nodes there is nothing to close. With exactly two
//     the closing edge is the path edge, so the result has one edge.
//   • Idempotent; mutates and returns the same graph instance.

package builder

import (
	"fmt"

	"github.com/katalvlaran/netopt/core"
)

// Cycle adds the ascending-ID path plus the min↔max closing edge to g and
// returns g.
func Cycle(g *core.Graph) (*core.Graph, error) {
	if _, err := Path(g); err != nil {
		return g, fmt.Errorf("%s: %w", MethodCycle, err)
	}
	ids := g.Nodes()
	if len(ids) < 2 {
		return g, nil
	}
	if _, err := AddWeightedEdge(g, ids[0], ids[len(ids)-1]); err != nil {
		return g, fmt.Errorf("%s: %w", MethodCycle, err)
	}

	return g, nil
}
