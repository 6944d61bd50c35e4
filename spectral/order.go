// SPDX-License-Identifier: MIT

package spectral

import (
	"cmp"
	"math"
	"math/cmplx"
)

// EigenTieTolerance is the real-part distance under which two eigenvalues
// are considered tied and compared by magnitude instead.
const EigenTieTolerance = 1e-12

// SecondLargest returns the second-largest element of values under the
// natural order. Duplicates count separately: [1, x, x] yields x and
// [1, 1, x] yields 1. Fewer than two values yield ok == false.
func SecondLargest[T cmp.Ordered](values []T) (T, bool) {
	return SecondLargestFunc(values, cmp.Compare[T])
}

// SecondLargestFunc is SecondLargest under a caller-supplied three-way
// comparison. Complexity: O(n), single pass.
func SecondLargestFunc[T any](values []T, compare func(a, b T) int) (T, bool) {
	var zero T
	if len(values) < 2 {
		return zero, false
	}

	m1, m2 := values[0], values[1]
	if compare(m2, m1) > 0 {
		m1, m2 = m2, m1
	}
	for _, x := range values[2:] {
		if compare(x, m2) <= 0 {
			continue
		}
		if compare(x, m1) >= 0 {
			m1, m2 = x, m1
		} else {
			m2 = x
		}
	}

	return m2, true
}

// CompareEigenvalues is the order used for complex eigenvalues: real part
// first, then magnitude, then imaginary part. Each key treats differences
// within EigenTieTolerance as equal, so numerically identical eigenvalues
// compare as 0.
func CompareEigenvalues(a, b complex128) int {
	if c := compareTol(real(a), real(b)); c != 0 {
		return c
	}
	if c := compareTol(cmplx.Abs(a), cmplx.Abs(b)); c != 0 {
		return c
	}

	return compareTol(imag(a), imag(b))
}

func compareTol(x, y float64) int {
	if math.Abs(x-y) <= EigenTieTolerance {
		return 0
	}

	return cmp.Compare(x, y)
}

// SecondLargestEigenvalue returns the second-largest eigenvalue under
// CompareEigenvalues.
func SecondLargestEigenvalue(values []complex128) (complex128, bool) {
	return SecondLargestFunc(values, CompareEigenvalues)
}

// extremes returns the largest and smallest eigenvalue under
// CompareEigenvalues. values must be non-empty.
func extremes(values []complex128) (largest, smallest complex128) {
	largest, smallest = values[0], values[0]
	for _, v := range values[1:] {
		if CompareEigenvalues(v, largest) > 0 {
			largest = v
		}
		if CompareEigenvalues(v, smallest) < 0 {
			smallest = v
		}
	}

	return largest, smallest
}
