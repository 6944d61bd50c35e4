// SPDX-License-Identifier: MIT

// Package matrix - row-stochastic normalization.

package matrix

import "fmt"

// Stochastic returns a new matrix whose rows are the rows of m divided by
// their sums, so every row sums to 1. m is left untouched.
//
// Errors:
//   - ErrNonSquare if m is not square.
//   - ErrSingularStochastic if m is empty or any row sums to 0.
//
// Complexity: O(n²).
func Stochastic(m *Dense) (*Dense, error) {
	if m.r != m.c {
		return nil, fmt.Errorf("Stochastic: %dx%d: %w", m.r, m.c, ErrNonSquare)
	}
	if m.r == 0 {
		return nil, fmt.Errorf("Stochastic: empty matrix: %w", ErrSingularStochastic)
	}

	out := m.Clone()
	for i := 0; i < out.r; i++ {
		sum, err := out.RowSum(i)
		if err != nil {
			return nil, fmt.Errorf("Stochastic: %w", err)
		}
		if sum == 0 {
			return nil, fmt.Errorf("Stochastic: row %d: %w", i, ErrSingularStochastic)
		}
		for j := 0; j < out.c; j++ {
			v, _ := out.At(i, j)
			if err = out.Set(i, j, v/sum); err != nil {
				return nil, fmt.Errorf("Stochastic: %w", err)
			}
		}
	}

	return out, nil
}

// SelfInclusive returns a copy of m with every diagonal cell set to 1.
// Applied to a self-avoiding adjacency matrix it yields the default one.
func SelfInclusive(m *Dense) (*Dense, error) {
	if m.r != m.c {
		return nil, fmt.Errorf("SelfInclusive: %dx%d: %w", m.r, m.c, ErrNonSquare)
	}
	out := m.Clone()
	for i := 0; i < out.r; i++ {
		if err := out.Set(i, i, 1); err != nil {
			return nil, fmt.Errorf("SelfInclusive: %w", err)
		}
	}

	return out, nil
}
