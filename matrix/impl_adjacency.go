// SPDX-License-Identifier: MIT

// Package matrix - graph → {0,1} adjacency adapter.
//
// Contract:
//   - Row/column i corresponds to IDs[i]; IDs is the ascending node-ID order
//     of the graph at build time and never changes afterwards.
//   - Off-diagonal cells are 1 where an edge exists and 0 elsewhere; weights
//     are ignored. The matrix is symmetric.
//   - Diagonal: 1 by default, 0 with WithSelfAvoiding().
//
// Complexity:
//   - NewAdjacency: O(V² + E); SetEdge/Has: O(1).

package matrix

import (
	"fmt"

	"github.com/katalvlaran/netopt/core"
)

// Adjacency couples a dense adjacency matrix with its node index.
type Adjacency struct {
	Mat   *Dense      // V×V {0,1} matrix
	Index map[int]int // node ID → row/column
	IDs   []int       // row/column → node ID, ascending
}

// NewAdjacency builds the adjacency matrix of g. An empty graph yields a
// 0×0 matrix.
func NewAdjacency(g *core.Graph, opts ...Option) (*Adjacency, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	o := gatherOptions(opts...)

	ids := g.Nodes()
	n := len(ids)
	m, err := newDenseZeroOK(n, n)
	if err != nil {
		return nil, fmt.Errorf("NewAdjacency: %w", err)
	}
	index := make(map[int]int, n)
	for i, id := range ids {
		index[id] = i
		if !o.selfAvoiding {
			if err = m.Set(i, i, 1); err != nil {
				return nil, fmt.Errorf("NewAdjacency: %w", err)
			}
		}
	}
	for _, e := range g.Edges() {
		i, okFrom := index[e.From]
		j, okTo := index[e.To]
		if !okFrom || !okTo {
			// an edge raced in with a node added after Nodes() was read
			return nil, fmt.Errorf("NewAdjacency: edge %d-%d: %w", e.From, e.To, ErrUnknownVertex)
		}
		if err = m.Set(i, j, 1); err != nil {
			return nil, fmt.Errorf("NewAdjacency: %w", err)
		}
		if err = m.Set(j, i, 1); err != nil {
			return nil, fmt.Errorf("NewAdjacency: %w", err)
		}
	}

	return &Adjacency{Mat: m, Index: index, IDs: ids}, nil
}

// Dimension returns the number of rows (and columns).
func (a *Adjacency) Dimension() int {
	return len(a.IDs)
}

// Has reports whether the cell (from, to) is set.
func (a *Adjacency) Has(from, to int) (bool, error) {
	i, j, err := a.cells(from, to)
	if err != nil {
		return false, err
	}

	v, err := a.Mat.At(i, j)
	if err != nil {
		return false, err
	}

	return v != 0, nil
}

// SetEdge writes present (1) or absent (0) into both mirrored cells of
// (from, to) and returns the previous value of the (from, to) cell.
func (a *Adjacency) SetEdge(from, to int, present bool) (float64, error) {
	i, j, err := a.cells(from, to)
	if err != nil {
		return 0, err
	}
	var v float64
	if present {
		v = 1
	}
	prev, err := a.Mat.At(i, j)
	if err != nil {
		return 0, err
	}
	if err = a.Mat.Set(i, j, v); err != nil {
		return 0, err
	}
	if err = a.Mat.Set(j, i, v); err != nil {
		return 0, err
	}

	return prev, nil
}

// Clone returns a deep copy; the index map and ID slice are copied too.
func (a *Adjacency) Clone() *Adjacency {
	index := make(map[int]int, len(a.Index))
	for k, v := range a.Index {
		index[k] = v
	}
	ids := make([]int, len(a.IDs))
	copy(ids, a.IDs)

	return &Adjacency{Mat: a.Mat.Clone(), Index: index, IDs: ids}
}

func (a *Adjacency) cells(from, to int) (int, int, error) {
	i, ok := a.Index[from]
	if !ok {
		return 0, 0, fmt.Errorf("Adjacency: node %d: %w", from, ErrUnknownVertex)
	}
	j, ok := a.Index[to]
	if !ok {
		return 0, 0, fmt.Errorf("Adjacency: node %d: %w", to, ErrUnknownVertex)
	}

	return i, j, nil
}
