// SPDX-License-Identifier: MIT

package bfs

import (
	"context"
	"errors"
)

var (
	// ErrGraphNil is returned for a nil graph.
	ErrGraphNil = errors.New("bfs: graph is nil")

	// ErrStartVertexNotFound is returned when the start node is absent.
	ErrStartVertexNotFound = errors.New("bfs: start vertex not found")

	// ErrTargetVertexNotFound is returned by Reachable for an absent target.
	ErrTargetVertexNotFound = errors.New("bfs: target vertex not found")

	// ErrNeighbors is returned when the graph cannot list a node's neighbors.
	ErrNeighbors = errors.New("bfs: neighbor iteration error")

	// errStop ends a walk early without being reported to the caller.
	errStop = errors.New("bfs: stop")
)

// Option configures a walk.
type Option func(*options)

type options struct {
	ctx     context.Context
	onVisit []func(id, depth int) error
}

func gatherOptions(opts ...Option) options {
	o := options{ctx: context.Background()}
	for _, opt := range opts {
		opt(&o)
	}

	return o
}

// WithContext makes the walk stop with ctx.Err() once ctx is done.
// A nil ctx is ignored.
func WithContext(ctx context.Context) Option {
	return func(o *options) {
		if ctx != nil {
			o.ctx = ctx
		}
	}
}

// WithOnVisit calls fn for every node in visit order. Several hooks run in
// the order they were given; the first error aborts the walk and is
// returned wrapped.
func WithOnVisit(fn func(id, depth int) error) Option {
	return func(o *options) {
		if fn != nil {
			o.onVisit = append(o.onVisit, fn)
		}
	}
}

// BFSResult is the outcome of a full walk: the visit order and the hop
// distance of every reached node from the start.
type BFSResult struct {
	Order []int
	Depth map[int]int
}

// Eccentricity returns the largest hop distance reached, i.e. the
// eccentricity of the start node within its component.
func (r *BFSResult) Eccentricity() int {
	ecc := 0
	for _, d := range r.Depth {
		ecc = max(ecc, d)
	}

	return ecc
}
