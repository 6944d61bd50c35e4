package matrix_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netopt/matrix"
)

func TestNewDense(t *testing.T) {
	m, err := matrix.NewDense(2, 3)
	require.NoError(t, err)
	assert.Equal(t, 2, m.Rows())
	assert.Equal(t, 3, m.Cols())

	for _, dims := range [][2]int{{0, 1}, {1, 0}, {-1, 2}} {
		_, err = matrix.NewDense(dims[0], dims[1])
		require.ErrorIs(t, err, matrix.ErrInvalidDimensions, "dims %v", dims)
	}
}

func TestDenseAtSet(t *testing.T) {
	m, err := matrix.NewDense(2, 2)
	require.NoError(t, err)

	require.NoError(t, m.Set(1, 0, 4.5))
	v, err := m.At(1, 0)
	require.NoError(t, err)
	assert.Equal(t, 4.5, v)

	_, err = m.At(2, 0)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, -1, 1), matrix.ErrOutOfRange)
	require.ErrorIs(t, m.Set(0, 0, math.NaN()), matrix.ErrNaNInf)
	require.ErrorIs(t, m.Set(0, 0, math.Inf(-1)), matrix.ErrNaNInf)
}

func TestDenseRowSumCloneEqual(t *testing.T) {
	m, _ := matrix.NewDense(2, 3)
	_ = m.Set(0, 0, 1)
	_ = m.Set(0, 2, 2)

	s, err := m.RowSum(0)
	require.NoError(t, err)
	assert.Equal(t, 3.0, s)
	_, err = m.RowSum(5)
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	cp := m.Clone()
	assert.True(t, m.Equal(cp))
	_ = cp.Set(1, 1, 7)
	assert.False(t, m.Equal(cp))
	v, _ := m.At(1, 1)
	assert.Zero(t, v, "clone is independent")

	other, _ := matrix.NewDense(3, 2)
	assert.False(t, m.Equal(other))
}
