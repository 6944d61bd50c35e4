// SPDX-License-Identifier: MIT

package bfs

import (
	"errors"
	"fmt"

	"github.com/katalvlaran/netopt/core"
)

// BFS walks g breadth-first from start and records every reachable node
// with its hop distance. Edge weights are ignored.
//
// Errors: ErrGraphNil, ErrStartVertexNotFound, ErrNeighbors, the context
// error when cancelled, or a wrapped OnVisit error.
func BFS(g *core.Graph, start int, opts ...Option) (*BFSResult, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	if !g.HasNode(start) {
		return nil, ErrStartVertexNotFound
	}

	o := gatherOptions(opts...)
	n := g.NodeCount()
	res := &BFSResult{
		Order: make([]int, 0, n),
		Depth: make(map[int]int, n),
	}
	res.Depth[start] = 0
	queue := make([]int, 0, n)
	queue = append(queue, start)

	for len(queue) > 0 {
		if err := o.ctx.Err(); err != nil {
			return res, err
		}
		id := queue[0]
		queue = queue[1:]
		depth := res.Depth[id]

		res.Order = append(res.Order, id)
		for _, fn := range o.onVisit {
			if err := fn(id, depth); err != nil {
				return res, fmt.Errorf("bfs: visit %d: %w", id, err)
			}
		}

		neighbors, err := g.NeighborIDs(id)
		if err != nil {
			return res, fmt.Errorf("%w: node %d: %v", ErrNeighbors, id, err)
		}
		for _, nbr := range neighbors {
			if _, seen := res.Depth[nbr]; seen {
				continue
			}
			res.Depth[nbr] = depth + 1
			queue = append(queue, nbr)
		}
	}

	return res, nil
}

// Reachable reports whether target can be reached from start. The walk
// stops as soon as target is visited; start == target is trivially
// reachable. Caller hooks run before the stop check.
func Reachable(g *core.Graph, start, target int, opts ...Option) (bool, error) {
	if g == nil {
		return false, ErrGraphNil
	}
	if !g.HasNode(target) {
		return false, ErrTargetVertexNotFound
	}

	found := false
	stop := WithOnVisit(func(id, _ int) error {
		if id == target {
			found = true
			return errStop
		}
		return nil
	})
	_, err := BFS(g, start, append(opts, stop)...)
	if err != nil && !errors.Is(err, errStop) {
		return false, fmt.Errorf("Reachable: %w", err)
	}

	return found, nil
}
