// SPDX-License-Identifier: MIT

// Package spectral holds pure analytics over a core.Graph: spectral
// convergence rates, second-largest selection, edge costs, hop-count
// eccentricity and connectivity.
//
// Nothing in this package mutates its input graph. Functions that need a
// modified copy (HypotheticalMaxEdgeCost) work on a deep clone.
//
// Convergence rate
//
//	The transition matrix is the self-inclusive adjacency matrix (each node
//	is its own neighbor) divided row-wise by degree+1. Its leading eigenvalue
//	is 1; the second-largest eigenvalue measures how fast repeated averaging
//	converges: near 0 is fast, near 1 is slow, and a second eigenvalue of 1
//	means the graph is disconnected.
//
// Eigenvalue order
//
//	Eigenvalues of a non-symmetric matrix may be complex. CompareEigenvalues
//	orders them by real part and breaks ties (within EigenTieTolerance) by
//	magnitude, then by imaginary part. For undirected graphs the transition
//	matrix is similar to a symmetric one, so the spectrum is real and the
//	order reduces to the usual one.
//
// Errors
//
//   - ErrGraphNil     nil graph.
//   - ErrEmptyGraph   metric needs at least one node.
//   - ErrDisconnected eccentricity requested on a disconnected graph.
//   - matrix.ErrSingularStochastic and friends are wrapped through.
package spectral
