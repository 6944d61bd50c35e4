// SPDX-License-Identifier: MIT

// Package matrix - general eigenvalues.
//
// Transition matrices are not symmetric, so their spectrum may be complex.
// Eigenvalues delegates to gonum's LAPACK-backed mat.Eigen and returns the
// eigenvalues only, in no particular order.

package matrix

import (
	"fmt"

	"gonum.org/v1/gonum/mat"
)

// Eigenvalues returns the (possibly complex) eigenvalues of the square
// matrix m. A 0×0 matrix has no eigenvalues and yields an empty slice.
//
// Errors:
//   - ErrNonSquare if m is not square.
//   - ErrEigenFailed if the factorization does not converge.
//
// Complexity: O(n³).
func Eigenvalues(m *Dense) ([]complex128, error) {
	if m.r != m.c {
		return nil, fmt.Errorf("Eigenvalues: %dx%d: %w", m.r, m.c, ErrNonSquare)
	}
	if m.r == 0 {
		return []complex128{}, nil
	}

	var eig mat.Eigen
	if ok := eig.Factorize(m.toGonum(), mat.EigenNone); !ok {
		return nil, fmt.Errorf("Eigenvalues: %dx%d: %w", m.r, m.c, ErrEigenFailed)
	}

	return eig.Values(nil), nil
}
