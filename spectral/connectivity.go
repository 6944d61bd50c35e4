// SPDX-License-Identifier: MIT

package spectral

import (
	"context"
	"fmt"

	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/netopt/bfs"
	"github.com/katalvlaran/netopt/converters"
	"github.com/katalvlaran/netopt/core"
)

// IsNodesConnected reports whether a path joins origin and destination.
// The check is a breadth-first walk with a visited set that stops at
// destination, so it is symmetric and terminates on cyclic graphs.
// origin == destination is trivially connected.
func IsNodesConnected(g *core.Graph, origin, destination int) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	ok, err := bfs.Reachable(g, origin, destination)
	if err != nil {
		return false, fmt.Errorf("IsNodesConnected(%d,%d): %w", origin, destination, err)
	}

	return ok, nil
}

// IsConnected reports whether g forms a single connected component.
// A graph with no nodes is not connected; a single node is.
func IsConnected(g *core.Graph) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	if g.NodeCount() == 0 {
		return false, nil
	}
	wg, err := converters.ToGonum(g)
	if err != nil {
		return false, fmt.Errorf("IsConnected: %w", err)
	}

	return len(topo.ConnectedComponents(wg)) == 1, nil
}

// EccentricityDistribution maps each eccentricity value (the largest hop
// count from a node to any other) to the number of nodes having it. Edge
// weights are ignored. Every walk is a full, unfiltered BFS; ctx only
// bounds how long the V walks may take.
//
// Errors: ErrEmptyGraph for zero nodes, ErrDisconnected if some node cannot
// reach all others, ctx.Err() when cancelled.
//
// Complexity: O(V·(V+E)).
func EccentricityDistribution(ctx context.Context, g *core.Graph) (map[int]int, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	ids := g.Nodes()
	if len(ids) == 0 {
		return nil, ErrEmptyGraph
	}

	dist := make(map[int]int)
	for _, id := range ids {
		res, err := bfs.BFS(g, id, bfs.WithContext(ctx))
		if err != nil {
			return nil, fmt.Errorf("EccentricityDistribution: node %d: %w", id, err)
		}
		if len(res.Order) != len(ids) {
			return nil, fmt.Errorf("EccentricityDistribution: node %d reaches %d of %d nodes: %w",
				id, len(res.Order), len(ids), ErrDisconnected)
		}
		dist[res.Eccentricity()]++
	}

	return dist, nil
}
