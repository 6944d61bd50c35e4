// SPDX-License-Identifier: MIT

package analytics

import (
	"fmt"
	"log/slog"

	"github.com/katalvlaran/netopt/bfs"
	"github.com/katalvlaran/netopt/matrix"
	"github.com/katalvlaran/netopt/spectral"
)

// EdgeCost returns the sum of all edge weights. It is maintained on every
// mutation and never recomputed.
func (s *State) EdgeCost() float64 {
	if err := s.sync(); err != nil {
		// rebuild only fails on a graph whose edges reference unknown nodes
		s.log.Warn("edge cost resync failed", slog.Any("err", err))
	}

	return s.edgeCost
}

// ConvergenceRate returns the cached spectral convergence rate, computing it
// first if a mutation made it dirty. ok is false when the metric is
// undefined (fewer than two nodes). See spectral.ConvergenceRate.
func (s *State) ConvergenceRate() (rate float64, ok bool, err error) {
	if err = s.sync(); err != nil {
		return 0, false, err
	}
	if !s.rate.dirty {
		return s.rate.value, s.rate.defined, nil
	}

	inclusive, err := matrix.SelfInclusive(s.adj.Mat)
	if err != nil {
		return 0, false, fmt.Errorf("%s: %w", MethodConvergence, err)
	}
	rate, ok, err = spectral.RateFromAdjacency(inclusive)
	if err != nil {
		return 0, false, fmt.Errorf("%s: %w", MethodConvergence, err)
	}
	s.rate = cached[float64]{value: rate, defined: ok}
	s.stats.rate++
	s.log.Debug("convergence rate recomputed", slog.Float64("rate", rate), slog.Bool("defined", ok))

	return rate, ok, nil
}

// IsConnected returns the cached connectivity flag, recomputing it when
// dirty. An empty graph is not connected.
//
// With WithConnectivityShortcut and a graph last known to be connected,
// only the endpoints of the edges removed since then are checked for
// mutual reachability; the result is exact in both directions. Otherwise
// the whole graph is scanned.
func (s *State) IsConnected() (bool, error) {
	if err := s.sync(); err != nil {
		return false, err
	}
	if !s.connected.dirty {
		return s.connected.value, nil
	}

	var (
		connected bool
		err       error
	)
	if s.recheckOK {
		connected, err = s.recheckRemoved()
		s.stats.shortcuts++
	} else {
		connected, err = spectral.IsConnected(s.g)
		s.stats.fullScans++
	}
	if err != nil {
		return false, fmt.Errorf("%s: %w", MethodConnected, err)
	}

	s.connected = cached[bool]{value: connected, defined: true}
	s.recheck = nil
	s.recheckOK = false
	s.log.Debug("connectivity recomputed", slog.Bool("connected", connected))

	return connected, nil
}

// recheckRemoved reports whether every removed pair is still joined by
// some path.
func (s *State) recheckRemoved() (bool, error) {
	for _, p := range s.recheck {
		ok, err := bfs.Reachable(s.g, p.from, p.to)
		if err != nil {
			return false, err
		}
		if !ok {
			return false, nil
		}
	}

	return true, nil
}
