// SPDX-License-Identifier: MIT
// Package: netopt/builder
//
// impl_spec.go — Spec(vertices, edges) constructor.
//
// Contract:
//   • Vertices are added in ascending ID order.
//   • Edge lists are walked in ascending origin order, destinations in the
//     listed order, each pair through AddWeightedEdge.
//   • Pairs already connected (including the reverse of an earlier pair)
//     are skipped silently.
//   • Unknown endpoints and self-pairs are errors.

package builder

import (
	"fmt"
	"sort"

	"github.com/katalvlaran/netopt/core"
)

// Spec returns a Constructor that materializes an explicit vertex and
// edge-list specification.
func Spec(vertices map[int]core.Point, edges map[int][]int) Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		for _, id := range sortedKeys(vertices) {
			p := vertices[id]
			if err := g.AddNode(id, p.X, p.Y); err != nil {
				return fmt.Errorf("%s: AddNode(%d): %w", MethodSpec, id, err)
			}
		}
		for _, origin := range sortedKeys(edges) {
			for _, dest := range edges[origin] {
				if _, err := AddWeightedEdge(g, origin, dest); err != nil {
					return fmt.Errorf("%s: %w", MethodSpec, err)
				}
			}
		}

		return nil
	}
}

// sortedKeys returns the keys of m in ascending order.
func sortedKeys[V any](m map[int]V) []int {
	keys := make([]int, 0, len(m))
	for k := range m {
		keys = append(keys, k)
	}
	sort.Ints(keys)

	return keys
}
