// SPDX-License-Identifier: MIT
// Package matrix: sentinel error set.
// This file defines ONLY package-level sentinel errors used across the matrix
// package. All algorithms MUST return these sentinels and tests MUST check them
// via errors.Is. No algorithm should panic on user-triggered error conditions.

package matrix

import "errors"

// Every message is prefixed with "matrix: ...". If context is essential,
// wrap with fmt.Errorf("ctx: %w", ErrX) at the outer boundary.
var (
	// ErrInvalidDimensions indicates that requested matrix dimensions are non-positive.
	ErrInvalidDimensions = errors.New("matrix: dimensions must be > 0")

	// ErrOutOfRange indicates that an index (row or column) is outside valid bounds.
	// Public indexers (At/Set) MUST return this, not panic.
	ErrOutOfRange = errors.New("matrix: index out of range")

	// ErrNaNInf signals a NaN or ±Inf value was encountered where finite values
	// are required.
	ErrNaNInf = errors.New("matrix: NaN or Inf encountered")

	// ErrNonSquare signals that a square matrix was required but the input wasn't.
	ErrNonSquare = errors.New("matrix: matrix is not square")

	// ErrGraphNil indicates that a nil *core.Graph was passed into an adapter.
	ErrGraphNil = errors.New("matrix: graph is nil")

	// ErrUnknownVertex indicates that a referenced node ID is not present
	// in the adjacency index.
	ErrUnknownVertex = errors.New("matrix: unknown vertex id")

	// ErrSingularStochastic indicates a zero row sum during row normalization
	// (an isolated node without a self entry, or an empty matrix).
	ErrSingularStochastic = errors.New("matrix: zero row sum in stochastic normalization")

	// ErrEigenFailed indicates that the eigen decomposition did not converge.
	ErrEigenFailed = errors.New("matrix: eigen decomposition failed")
)
