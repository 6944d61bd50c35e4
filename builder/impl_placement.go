// SPDX-License-Identifier: MIT
// Package: netopt/builder
//
// impl_placement.go — RandomPlacement(n) constructor.
//
// Contract:
//   • n ≥ 0 (else ErrTooFewVertices).
//   • Nodes 0..n-1 get integer coordinates drawn uniformly from [0, area]
//     per axis; area defaults to n (WithArea overrides it).
//   • A position already used is redrawn, so all positions are distinct.
//   • (area+1)² < n is rejected up front with ErrAreaTooSmall.
//   • No edges are added.
//
// Complexity:
//   • Expected O(n) draws while n is well below (area+1)²; the default
//     area keeps the rejection rate under 1/n per draw.

package builder

import (
	"fmt"

	"github.com/katalvlaran/netopt/core"
)

// RandomPlacement returns a Constructor that places n nodes at distinct
// random integer positions.
func RandomPlacement(n int) Constructor {
	return func(g *core.Graph, cfg builderConfig) error {
		if n < 0 {
			return fmt.Errorf("%s: n=%d: %w", MethodRandomPlacement, n, ErrTooFewVertices)
		}
		area := cfg.placementArea(n)
		side := area + 1
		if side*side < n {
			return fmt.Errorf("%s: %d nodes in [0,%d]²: %w", MethodRandomPlacement, n, area, ErrAreaTooSmall)
		}

		rng := cfg.randSource()
		used := make(map[core.Point]struct{}, n)
		for id := 0; id < n; id++ {
			var p core.Point
			for {
				p = core.Point{X: float64(rng.Intn(side)), Y: float64(rng.Intn(side))}
				if _, taken := used[p]; !taken {
					break
				}
			}
			used[p] = struct{}{}
			if err := g.AddNode(id, p.X, p.Y); err != nil {
				return fmt.Errorf("%s: AddNode(%d): %w", MethodRandomPlacement, id, err)
			}
		}

		return nil
	}
}
