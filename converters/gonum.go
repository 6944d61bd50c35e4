// SPDX-License-Identifier: MIT

package converters

import (
	"errors"
	"fmt"
	"math"

	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"

	"github.com/katalvlaran/netopt/core"
)

var (
	// ErrGraphNil is returned when a nil source graph is passed.
	ErrGraphNil = errors.New("converters: graph is nil")

	// ErrMissingPosition is returned by FromGonum when a gonum node has no
	// entry in the position map.
	ErrMissingPosition = errors.New("converters: node position missing")
)

// selfWeight is the weight the exported graph reports for a node paired
// with itself; absent pairs report +Inf.
const selfWeight = 0

// ToGonum copies g into a gonum weighted undirected graph. Node IDs are
// preserved; edge weights are carried verbatim. The result shares nothing
// with g.
func ToGonum(g *core.Graph) (*simple.WeightedUndirectedGraph, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	out := simple.NewWeightedUndirectedGraph(selfWeight, math.Inf(1))
	for _, id := range g.Nodes() {
		out.AddNode(simple.Node(int64(id)))
	}
	for _, e := range g.Edges() {
		from, to := out.Node(int64(e.From)), out.Node(int64(e.To))
		if from == nil || to == nil {
			// node added concurrently after Nodes() was read
			return nil, fmt.Errorf("ToGonum: edge %d-%d: %w", e.From, e.To, core.ErrNodeNotFound)
		}
		out.SetWeightedEdge(out.NewWeightedEdge(from, to, e.Weight))
	}

	return out, nil
}

// FromGonum builds a core.Graph from any gonum weighted graph, taking node
// coordinates from positions. Directed sources are folded into undirected
// edges; when both directions exist the first one seen wins.
func FromGonum(src graph.Weighted, positions map[int]core.Point) (*core.Graph, error) {
	if src == nil {
		return nil, ErrGraphNil
	}
	out := core.NewGraph()
	nodes := graph.NodesOf(src.Nodes())
	for _, n := range nodes {
		id := int(n.ID())
		p, ok := positions[id]
		if !ok {
			return nil, fmt.Errorf("FromGonum: node %d: %w", id, ErrMissingPosition)
		}
		if err := out.AddNode(id, p.X, p.Y); err != nil {
			return nil, fmt.Errorf("FromGonum: node %d: %w", id, err)
		}
	}
	for _, u := range nodes {
		for _, v := range graph.NodesOf(src.From(u.ID())) {
			from, to := int(u.ID()), int(v.ID())
			if from == to || out.HasEdge(from, to) {
				continue
			}
			w, _ := src.Weight(u.ID(), v.ID())
			if err := out.AddEdge(from, to, w); err != nil {
				return nil, fmt.Errorf("FromGonum: edge %d-%d: %w", from, to, err)
			}
		}
	}

	return out, nil
}
