// SPDX-License-Identifier: MIT

package spectral

import (
	"fmt"
	"math"
	"math/cmplx"

	"github.com/katalvlaran/netopt/core"
	"github.com/katalvlaran/netopt/matrix"
)

// AdjacencyMatrix builds the adjacency matrix of g over ascending node IDs.
// The diagonal is 1 unless matrix.WithSelfAvoiding() is given.
func AdjacencyMatrix(g *core.Graph, opts ...matrix.Option) (*matrix.Adjacency, error) {
	if g == nil {
		return nil, ErrGraphNil
	}

	return matrix.NewAdjacency(g, opts...)
}

// StochasticMatrix returns the row-normalized adjacency matrix of g. With
// matrix.WithSelfAvoiding() an isolated node makes this fail with
// matrix.ErrSingularStochastic; the default self-inclusive diagonal keeps
// every row sum ≥ 1.
func StochasticMatrix(g *core.Graph, opts ...matrix.Option) (*matrix.Dense, error) {
	adj, err := AdjacencyMatrix(g, opts...)
	if err != nil {
		return nil, fmt.Errorf("StochasticMatrix: %w", err)
	}
	s, err := matrix.Stochastic(adj.Mat)
	if err != nil {
		return nil, fmt.Errorf("StochasticMatrix: %w", err)
	}

	return s, nil
}

// ConvergenceRate returns the real part of the second-largest eigenvalue of
// g's self-inclusive transition matrix. ok is false for graphs with fewer
// than two nodes, where the metric is undefined.
func ConvergenceRate(g *core.Graph) (rate float64, ok bool, err error) {
	adj, err := AdjacencyMatrix(g)
	if err != nil {
		return 0, false, fmt.Errorf("ConvergenceRate: %w", err)
	}

	return RateFromAdjacency(adj.Mat)
}

// RateFromAdjacency computes the convergence rate from an adjacency matrix
// whose diagonal is already 1. It lets callers holding a maintained matrix
// skip the graph walk.
func RateFromAdjacency(adj *matrix.Dense) (rate float64, ok bool, err error) {
	ev, err := transitionSpectrum(adj)
	if err != nil || len(ev) < 2 {
		return 0, false, err
	}
	second, _ := SecondLargestEigenvalue(ev)

	return real(second), true, nil
}

// ConvergenceRateAlternate returns
// max(λ₁ − |λ₂|, λ₁ − |λₘᵢₙ|) over the transition spectrum of g, where λ₁,
// λ₂ and λₘᵢₙ are the largest, second-largest and smallest eigenvalues under
// CompareEigenvalues and |·| is the complex magnitude.
func ConvergenceRateAlternate(g *core.Graph) (rate float64, ok bool, err error) {
	adj, err := AdjacencyMatrix(g)
	if err != nil {
		return 0, false, fmt.Errorf("ConvergenceRateAlternate: %w", err)
	}
	ev, err := transitionSpectrum(adj.Mat)
	if err != nil || len(ev) < 2 {
		return 0, false, err
	}
	largest, smallest := extremes(ev)
	second, _ := SecondLargestEigenvalue(ev)
	lead := real(largest)

	return math.Max(lead-cmplx.Abs(second), lead-cmplx.Abs(smallest)), true, nil
}

// transitionSpectrum row-normalizes adj and returns its eigenvalues.
func transitionSpectrum(adj *matrix.Dense) ([]complex128, error) {
	if adj.Rows() == 0 {
		return nil, nil
	}
	s, err := matrix.Stochastic(adj)
	if err != nil {
		return nil, fmt.Errorf("transition matrix: %w", err)
	}
	ev, err := matrix.Eigenvalues(s)
	if err != nil {
		return nil, fmt.Errorf("transition spectrum: %w", err)
	}

	return ev, nil
}
