// SPDX-License-Identifier: MIT

package analytics

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/netopt/builder"
)

// AddEdge connects origin and destination with the squared-distance weight.
// It returns false, nil when the pair is a self pair or already adjacent.
// The edge cost is updated now; the convergence rate becomes dirty.
// Connectivity stays clean only if it was known to be true.
func (s *State) AddEdge(origin, destination int) (bool, error) {
	if err := s.sync(); err != nil {
		return false, err
	}
	if err := s.known(MethodAddEdge, origin, destination); err != nil {
		return false, err
	}
	if origin == destination || s.g.HasEdge(origin, destination) {
		return false, nil
	}

	rec := &undoRecord{op: MethodAddEdge, metrics: s.snapshot()}
	if err := s.applyAdd(rec, origin, destination); err != nil {
		return false, s.abort(rec, MethodAddEdge, err)
	}
	s.markAdded()
	s.commit(rec)

	return true, nil
}

// RemoveEdge disconnects origin and destination. It returns false, nil when
// they are not adjacent. The edge cost is updated now; the convergence rate
// and connectivity become dirty (a graph known to be disconnected stays so).
func (s *State) RemoveEdge(origin, destination int) (bool, error) {
	if err := s.sync(); err != nil {
		return false, err
	}
	if err := s.known(MethodRemoveEdge, origin, destination); err != nil {
		return false, err
	}
	if origin == destination || !s.g.HasEdge(origin, destination) {
		return false, nil
	}

	rec := &undoRecord{op: MethodRemoveEdge, metrics: s.snapshot()}
	if err := s.applyRemove(rec, origin, destination); err != nil {
		return false, s.abort(rec, MethodRemoveEdge, err)
	}
	s.markRemoved(edgePair{origin, destination})
	s.commit(rec)

	return true, nil
}

// MoveEdge replaces the edge origin–oldDestination with
// origin–newDestination as one undoable step. It returns false, nil when
// the old edge is missing, the new one already exists, the destinations are
// equal, or newDestination == origin.
func (s *State) MoveEdge(origin, oldDestination, newDestination int) (bool, error) {
	if err := s.sync(); err != nil {
		return false, err
	}
	if err := s.known(MethodMoveEdge, origin, oldDestination, newDestination); err != nil {
		return false, err
	}
	switch {
	case oldDestination == newDestination,
		origin == newDestination,
		origin == oldDestination,
		!s.g.HasEdge(origin, oldDestination),
		s.g.HasEdge(origin, newDestination):
		return false, nil
	}

	rec := &undoRecord{op: MethodMoveEdge, metrics: s.snapshot()}
	if err := s.applyRemove(rec, origin, oldDestination); err != nil {
		return false, s.abort(rec, MethodMoveEdge, err)
	}
	if err := s.applyAdd(rec, origin, newDestination); err != nil {
		return false, s.abort(rec, MethodMoveEdge, err)
	}
	s.markRemoved(edgePair{origin, oldDestination})
	s.markAdded()
	s.commit(rec)

	return true, nil
}

// Revert undoes the most recent successful mutation: graph edges, matrix
// cells, every cached value and every dirty flag return to what they were
// before it. The undo record is then cleared. Without a record Revert does
// nothing.
func (s *State) Revert() error {
	if err := s.sync(); err != nil {
		return err
	}
	rec := s.undo
	if rec == nil {
		return nil
	}
	if err := s.replay(rec); err != nil {
		// the graph no longer matches the record; start over from it
		s.log.Warn("revert failed, rebuilding", slog.String("op", rec.op), slog.Any("err", err))
		if rerr := s.rebuild(); rerr != nil {
			return fmt.Errorf("%s: %w", MethodRevert, rerr)
		}
		return fmt.Errorf("%s: %w", MethodRevert, err)
	}
	s.restore(rec.metrics)
	s.rev = s.g.Revision()
	s.undo = nil
	s.log.Debug("mutation reverted",
		slog.String("op", rec.op),
		slog.Float64("edge_cost", s.edgeCost))

	return nil
}

// applyAdd inserts the edge into g and the matrix and books the deltas.
func (s *State) applyAdd(rec *undoRecord, origin, destination int) error {
	added, err := builder.AddWeightedEdge(s.g, origin, destination)
	if err != nil {
		return err
	}
	if !added {
		return fmt.Errorf("edge %d-%d appeared concurrently", origin, destination)
	}
	w, _ := s.g.Weight(origin, destination)
	rec.edges = append(rec.edges, edgeDelta{edgePair{origin, destination}, true, w})

	prev, err := s.adj.SetEdge(origin, destination, true)
	if err != nil {
		return err
	}
	rec.cells = append(rec.cells, cellDelta{edgePair{origin, destination}, prev})
	s.edgeCost += w

	return nil
}

// applyRemove deletes the edge from g and the matrix and books the deltas.
func (s *State) applyRemove(rec *undoRecord, origin, destination int) error {
	w, ok := s.g.Weight(origin, destination)
	if !ok {
		return fmt.Errorf("edge %d-%d vanished concurrently", origin, destination)
	}
	if err := s.g.RemoveEdge(origin, destination); err != nil {
		return err
	}
	rec.edges = append(rec.edges, edgeDelta{edgePair{origin, destination}, false, w})

	prev, err := s.adj.SetEdge(origin, destination, false)
	if err != nil {
		return err
	}
	rec.cells = append(rec.cells, cellDelta{edgePair{origin, destination}, prev})
	s.edgeCost -= w

	return nil
}

// replay applies rec backwards.
func (s *State) replay(rec *undoRecord) error {
	for i := len(rec.cells) - 1; i >= 0; i-- {
		c := rec.cells[i]
		if _, err := s.adj.SetEdge(c.from, c.to, c.prev != 0); err != nil {
			return err
		}
	}
	for i := len(rec.edges) - 1; i >= 0; i-- {
		e := rec.edges[i]
		var err error
		if e.added {
			err = s.g.RemoveEdge(e.from, e.to)
		} else {
			err = s.g.AddEdge(e.from, e.to, e.weight)
		}
		if err != nil {
			return fmt.Errorf("edge %d-%d: %w", e.from, e.to, err)
		}
	}

	return nil
}

// abort rolls back a partially applied record and wraps cause.
func (s *State) abort(rec *undoRecord, method string, cause error) error {
	if err := s.replay(rec); err != nil {
		s.log.Warn("rollback failed, rebuilding", slog.String("op", method), slog.Any("err", err))
		_ = s.rebuild()
	} else {
		s.restore(rec.metrics)
		s.rev = s.g.Revision()
	}

	return fmt.Errorf("%s: %w", method, cause)
}

// commit stores rec as the only undo record.
func (s *State) commit(rec *undoRecord) {
	s.rev = s.g.Revision()
	s.undo = rec
	s.log.Debug("edge mutation applied",
		slog.String("op", rec.op),
		slog.Int("edge_deltas", len(rec.edges)),
		slog.Float64("edge_cost", s.edgeCost),
		slog.Bool("rate_dirty", s.rate.dirty),
		slog.Bool("connected_dirty", s.connected.dirty))
}

// markAdded updates dirty flags after an insertion. A connected graph stays
// connected; anything else needs a new look.
func (s *State) markAdded() {
	s.rate.dirty = true
	if !s.connected.dirty && s.connected.value {
		return
	}
	if !s.connected.dirty {
		// known disconnected; the pending list would say nothing useful
		s.recheckOK = false
		s.recheck = nil
	}
	s.connected.dirty = true
}

// markRemoved updates dirty flags after a deletion of p.
func (s *State) markRemoved(p edgePair) {
	s.rate.dirty = true
	switch {
	case !s.connected.dirty && !s.connected.value:
		// removing edges cannot reconnect a graph
	case !s.connected.dirty:
		s.connected.dirty = true
		s.recheck = []edgePair{p}
		s.recheckOK = s.shortcut
	case s.recheckOK:
		s.recheck = append(s.recheck, p)
	}
}
