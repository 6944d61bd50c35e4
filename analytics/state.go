// SPDX-License-Identifier: MIT

package analytics

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/netopt/core"
	"github.com/katalvlaran/netopt/matrix"
	"github.com/katalvlaran/netopt/spectral"
)

// Method names used in error wrapping and log records.
const (
	MethodNew         = "New"
	MethodAddEdge     = "AddEdge"
	MethodRemoveEdge  = "RemoveEdge"
	MethodMoveEdge    = "MoveEdge"
	MethodRevert      = "Revert"
	MethodHasEdge     = "HasEdge"
	MethodConvergence = "ConvergenceRate"
	MethodConnected   = "IsConnected"
)

// State keeps derived metrics of one graph current across edge mutations.
// See the package documentation for the full contract.
type State struct {
	g   *core.Graph
	adj *matrix.Adjacency // self-avoiding; diagonal 0
	rev uint64            // g.Revision() that adj and edgeCost describe

	log      *slog.Logger
	shortcut bool

	edgeCost  float64
	rate      cached[float64]
	connected cached[bool]

	// recheck lists the pairs removed since connectivity was last known to
	// be true. recheckOK is false when that list cannot decide the answer.
	recheck   []edgePair
	recheckOK bool

	undo *undoRecord

	stats recomputeStats
}

// recomputeStats counts expensive recomputations.
type recomputeStats struct {
	rate      int
	fullScans int
	shortcuts int
	resyncs   int
}

// New wraps g. The adjacency matrix and edge cost are built immediately;
// the convergence rate and connectivity are computed on first read.
//
// The State assumes exclusive ownership of g's edge set. Changes made to g
// directly are detected on the next call and force a rebuild.
func New(g *core.Graph, opts ...Option) (*State, error) {
	if g == nil {
		return nil, ErrGraphNil
	}
	cfg := defaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}
	if cfg.trackLaplacian {
		return nil, fmt.Errorf("%s: laplacian tracking: %w", MethodNew, ErrNotImplemented)
	}

	s := &State{g: g, log: cfg.logger, shortcut: cfg.shortcut}
	if err := s.rebuild(); err != nil {
		return nil, fmt.Errorf("%s: %w", MethodNew, err)
	}
	s.log.Debug("analytics state built",
		slog.Int("nodes", s.adj.Dimension()),
		slog.Float64("edge_cost", s.edgeCost))

	return s, nil
}

// rebuild derives the matrix and cost from g from scratch and invalidates
// everything else.
func (s *State) rebuild() error {
	adj, err := matrix.NewAdjacency(s.g, matrix.WithSelfAvoiding())
	if err != nil {
		return err
	}
	s.adj = adj
	s.rev = s.g.Revision()
	s.edgeCost = spectral.TotalEdgeCost(s.g)
	s.rate = cached[float64]{dirty: true}
	s.connected = cached[bool]{dirty: true}
	s.recheck = nil
	s.recheckOK = false
	s.undo = nil

	return nil
}

// sync rebuilds when g was mutated outside this State.
func (s *State) sync() error {
	rev := s.g.Revision()
	if rev == s.rev {
		return nil
	}
	s.log.Debug("graph changed outside analytics state, rebuilding",
		slog.Uint64("cached_revision", s.rev),
		slog.Uint64("graph_revision", rev),
		slog.Bool("undo_dropped", s.undo != nil))
	s.stats.resyncs++

	return s.rebuild()
}

// known fails with ErrUnknownNode unless every id is a matrix index.
func (s *State) known(method string, ids ...int) error {
	for _, id := range ids {
		if _, ok := s.adj.Index[id]; !ok {
			return fmt.Errorf("%s: node %d: %w", method, id, ErrUnknownNode)
		}
	}

	return nil
}

// Graph returns the wrapped graph. Mutating it directly is allowed but
// costs a full rebuild on the next State call.
func (s *State) Graph() *core.Graph {
	return s.g
}

// Adjacency returns a copy of the maintained self-avoiding adjacency matrix.
func (s *State) Adjacency() (*matrix.Adjacency, error) {
	if err := s.sync(); err != nil {
		return nil, err
	}

	return s.adj.Clone(), nil
}

// Dimension returns the number of rows of the adjacency matrix, i.e. the
// node count at the time the matrix was built.
func (s *State) Dimension() int {
	return s.adj.Dimension()
}

// HasEdge reports whether origin and destination are adjacent, reading the
// maintained matrix. origin == destination is always false.
func (s *State) HasEdge(origin, destination int) (bool, error) {
	if err := s.sync(); err != nil {
		return false, err
	}
	if err := s.known(MethodHasEdge, origin, destination); err != nil {
		return false, err
	}

	return s.adj.Has(origin, destination)
}

// HasUndo reports whether Revert would change anything.
func (s *State) HasUndo() bool {
	return s.undo != nil && s.g.Revision() == s.rev
}

// Laplacian is declared for API completeness and is not supported.
func (s *State) Laplacian() (*matrix.Dense, error) {
	return nil, fmt.Errorf("Laplacian: %w", ErrNotImplemented)
}
