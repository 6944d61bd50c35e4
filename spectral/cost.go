// SPDX-License-Identifier: MIT

package spectral

import (
	"fmt"

	"github.com/katalvlaran/netopt/builder"
	"github.com/katalvlaran/netopt/core"
)

// TotalEdgeCost sums every edge weight of g. A nil graph costs 0.
func TotalEdgeCost(g *core.Graph) float64 {
	if g == nil {
		return 0
	}
	var total float64
	for _, e := range g.Edges() {
		total += e.Weight
	}

	return total
}

// HypotheticalMaxEdgeCost returns the total edge cost g would have if every
// pair of nodes were connected. Existing edges keep their weights. g itself
// is not modified.
func HypotheticalMaxEdgeCost(g *core.Graph) (float64, error) {
	if g == nil {
		return 0, ErrGraphNil
	}
	complete, err := builder.Complete(g.Clone())
	if err != nil {
		return 0, fmt.Errorf("HypotheticalMaxEdgeCost: %w", err)
	}

	return TotalEdgeCost(complete), nil
}
