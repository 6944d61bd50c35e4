// SPDX-License-Identifier: MIT

package analytics

import "slices"

// edgePair is an undirected edge as named by the caller.
type edgePair struct {
	from, to int
}

// edgeDelta is one applied edge change. weight is the weight the edge had
// (removed) or received (added).
type edgeDelta struct {
	edgePair
	added  bool
	weight float64
}

// cellDelta is the previous value of a mirrored adjacency cell pair.
type cellDelta struct {
	edgePair
	prev float64
}

// cached is a lazily computed value with its dirty flag. defined is false
// when the metric has no value for the current graph.
type cached[T any] struct {
	value   T
	defined bool
	dirty   bool
}

// metricSnapshot is every cached value of a State at one instant.
type metricSnapshot struct {
	edgeCost  float64
	rate      cached[float64]
	connected cached[bool]
	recheck   []edgePair
	recheckOK bool
}

// undoRecord reverses exactly one successful mutation. It is immutable once
// built; the State holds at most one.
type undoRecord struct {
	op      string
	edges   []edgeDelta
	cells   []cellDelta
	metrics metricSnapshot
}

// snapshot copies the cached metrics, including the pending recheck list.
func (s *State) snapshot() metricSnapshot {
	return metricSnapshot{
		edgeCost:  s.edgeCost,
		rate:      s.rate,
		connected: s.connected,
		recheck:   slices.Clone(s.recheck),
		recheckOK: s.recheckOK,
	}
}

// restore puts a snapshot back verbatim, dirty flags included.
func (s *State) restore(m metricSnapshot) {
	s.edgeCost = m.edgeCost
	s.rate = m.rate
	s.connected = m.connected
	s.recheck = slices.Clone(m.recheck)
	s.recheckOK = m.recheckOK
}
