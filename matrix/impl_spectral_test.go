package matrix_test

import (
	"math"
	"math/cmplx"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netopt/core"
	"github.com/katalvlaran/netopt/matrix"
)

const eps = 1e-9

func dense(t *testing.T, vals [][]float64) *matrix.Dense {
	t.Helper()
	m, err := matrix.NewDense(len(vals), len(vals[0]))
	require.NoError(t, err)
	for i, row := range vals {
		for j, v := range row {
			require.NoError(t, m.Set(i, j, v))
		}
	}
	return m
}

func TestStochastic(t *testing.T) {
	m := dense(t, [][]float64{
		{1, 1, 0},
		{1, 1, 1},
		{0, 2, 2},
	})
	s, err := matrix.Stochastic(m)
	require.NoError(t, err)

	assert.Equal(t, [][]float64{
		{0.5, 0.5, 0},
		{1.0 / 3, 1.0 / 3, 1.0 / 3},
		{0, 0.5, 0.5},
	}, rows(t, s))
	for i := 0; i < 3; i++ {
		sum, _ := s.RowSum(i)
		assert.InDelta(t, 1.0, sum, eps)
	}
	v, _ := m.At(2, 2)
	assert.Equal(t, 2.0, v, "input untouched")
}

func TestStochasticErrors(t *testing.T) {
	_, err := matrix.Stochastic(dense(t, [][]float64{{1, 0}, {0, 0}}))
	require.ErrorIs(t, err, matrix.ErrSingularStochastic)

	_, err = matrix.Stochastic(dense(t, [][]float64{{1, 1}}))
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	// a row whose cells cancel out is as singular as an all-zero one
	_, err = matrix.Stochastic(dense(t, [][]float64{{1, 0}, {2, -2}}))
	require.ErrorIs(t, err, matrix.ErrSingularStochastic)

	empty, err := matrix.NewAdjacency(core.NewGraph())
	require.NoError(t, err)
	_, err = matrix.Stochastic(empty.Mat)
	require.ErrorIs(t, err, matrix.ErrSingularStochastic)
}

func TestSelfInclusive(t *testing.T) {
	m := dense(t, [][]float64{{0, 1}, {1, 0}})
	out, err := matrix.SelfInclusive(m)
	require.NoError(t, err)
	assert.Equal(t, [][]float64{{1, 1}, {1, 1}}, rows(t, out))
	assert.Equal(t, [][]float64{{0, 1}, {1, 0}}, rows(t, m))

	_, err = matrix.SelfInclusive(dense(t, [][]float64{{1, 2, 3}}))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}

func TestEigenvaluesReal(t *testing.T) {
	vals, err := matrix.Eigenvalues(dense(t, [][]float64{
		{2, 1},
		{1, 2},
	}))
	require.NoError(t, err)
	require.Len(t, vals, 2)

	re := []float64{real(vals[0]), real(vals[1])}
	sort.Float64s(re)
	assert.InDelta(t, 1.0, re[0], eps)
	assert.InDelta(t, 3.0, re[1], eps)
	for _, v := range vals {
		assert.InDelta(t, 0, imag(v), eps)
	}
}

func TestEigenvaluesComplex(t *testing.T) {
	// rotation by 90°: eigenvalues ±i
	vals, err := matrix.Eigenvalues(dense(t, [][]float64{
		{0, -1},
		{1, 0},
	}))
	require.NoError(t, err)
	require.Len(t, vals, 2)
	for _, v := range vals {
		assert.InDelta(t, 0, real(v), eps)
		assert.InDelta(t, 1, math.Abs(imag(v)), eps)
	}
	assert.InDelta(t, 0, cmplx.Abs(vals[0]+vals[1]), eps, "conjugate pair")
}

// TestEigenvaluesStochasticLeading checks the Perron root of a
// row-stochastic matrix is 1.
func TestEigenvaluesStochasticLeading(t *testing.T) {
	s, err := matrix.Stochastic(dense(t, [][]float64{
		{1, 1, 0, 1},
		{1, 1, 1, 0},
		{0, 1, 1, 1},
		{1, 0, 1, 1},
	}))
	require.NoError(t, err)
	vals, err := matrix.Eigenvalues(s)
	require.NoError(t, err)

	best := math.Inf(-1)
	for _, v := range vals {
		best = math.Max(best, real(v))
	}
	assert.InDelta(t, 1.0, best, eps)
}

func TestEigenvaluesShape(t *testing.T) {
	_, err := matrix.Eigenvalues(dense(t, [][]float64{{1, 2}}))
	require.ErrorIs(t, err, matrix.ErrNonSquare)
}
