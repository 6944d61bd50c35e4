// SPDX-License-Identifier: MIT
// Package: netopt/builder
//
// impl_grid.go — GridPlacement(rows, cols) constructor.
//
// Contract:
//   • rows ≥ 1 and cols ≥ 1 (else ErrTooFewVertices).
//   • Node r*cols+c sits at (c, r): unit spacing, row-major IDs starting at
//     0, so IDs match those of RandomPlacement(rows*cols).
//   • No edges are added; combine with PathEdges, CycleEdges or
//     CompleteEdges. Lattice neighbours are 1 apart, diagonals 2 (squared).
//
// Complexity: O(rows*cols).
//
// Determinism: positions depend only on (rows, cols); the RNG is unused.

package builder

import (
	"fmt"

	"github.com/katalvlaran/netopt/core"
)

const minGridDim = 1

// GridPlacement returns a Constructor that places rows×cols nodes on the
// integer lattice.
func GridPlacement(rows, cols int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		if rows < minGridDim || cols < minGridDim {
			return fmt.Errorf("%s: rows=%d, cols=%d (each must be ≥ %d): %w",
				MethodGridPlacement, rows, cols, minGridDim, ErrTooFewVertices)
		}
		for r := 0; r < rows; r++ {
			for c := 0; c < cols; c++ {
				id := r*cols + c
				if err := g.AddNode(id, float64(c), float64(r)); err != nil {
					return fmt.Errorf("%s: AddNode(%d): %w", MethodGridPlacement, id, err)
				}
			}
		}

		return nil
	}
}
