// SPDX-License-Identifier: MIT
// Package: netopt/builder
//
// api.go - thin public entry-points for the builder package.
//
// Design contract:
//   - One orchestrator: BuildGraph(bopts, cons...). Creates g, resolves cfg, runs cons in order.
//   - Functional options (BuilderOption) resolve into an immutable builderConfig (no global state).
//   - Determinism: same inputs/options/seed and constructor order ⇒ identical graphs.
//   - Safety: never panic; return sentinel errors from constructors.

package builder

import (
	"fmt"

	"github.com/katalvlaran/netopt/core"
)

// Constructor applies a graph mutation using the resolved builderConfig.
// Constructors validate parameters early, return sentinel errors, and
// preserve determinism for the same config and call order.
type Constructor func(g *core.Graph, cfg builderConfig) error

// BuildGraph creates a new core.Graph, resolves the builder configuration
// from bopts, and applies all constructors in order. Any constructor error
// is wrapped with the context "BuildGraph: %w" and returned immediately.
//
// Complexity: O(len(bopts)) plus the cost of each constructor.
func BuildGraph(bopts []BuilderOption, cons ...Constructor) (*core.Graph, error) {
	g := core.NewGraph()
	if err := Apply(g, bopts, cons...); err != nil {
		return nil, fmt.Errorf("BuildGraph: %w", err)
	}

	return g, nil
}

// Apply runs constructors against an existing graph. It is the in-place
// counterpart of BuildGraph; on error the graph keeps whatever the failed
// constructor managed to add.
func Apply(g *core.Graph, bopts []BuilderOption, cons ...Constructor) error {
	if g == nil {
		return ErrGraphNil
	}
	cfg := newBuilderConfig(bopts...)
	for i, fn := range cons {
		if fn == nil {
			return fmt.Errorf("nil constructor at index %d: %w", i, ErrConstructFailed)
		}
		if err := fn(g, cfg); err != nil {
			return err
		}
	}

	return nil
}

// FromRandomPlacement returns a graph of nodeCount nodes (IDs 0..nodeCount-1)
// at distinct random integer positions and no edges. See RandomPlacement.
func FromRandomPlacement(nodeCount int, opts ...BuilderOption) (*core.Graph, error) {
	return BuildGraph(opts, RandomPlacement(nodeCount))
}

// FromSpec returns a graph holding exactly the given vertices and the
// squared-distance weighted edges listed in edges. See Spec.
func FromSpec(vertices map[int]core.Point, edges map[int][]int) (*core.Graph, error) {
	return BuildGraph(nil, Spec(vertices, edges))
}

// PathEdges wraps Path as a Constructor.
func PathEdges() Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		_, err := Path(g)
		return err
	}
}

// CycleEdges wraps Cycle as a Constructor.
func CycleEdges() Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		_, err := Cycle(g)
		return err
	}
}

// CompleteEdges wraps Complete as a Constructor.
func CompleteEdges() Constructor {
	return func(g *core.Graph, _ builderConfig) error {
		_, err := Complete(g)
		return err
	}
}
