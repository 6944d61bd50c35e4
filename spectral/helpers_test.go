package spectral_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netopt/builder"
	"github.com/katalvlaran/netopt/core"
)

const eps = 1e-9

// ring places n nodes on the unit circle.
func ring(t *testing.T, n int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		require.NoError(t, g.AddNode(i, math.Cos(a), math.Sin(a)))
	}
	return g
}

func cycleGraph(t *testing.T, n int) *core.Graph {
	t.Helper()
	g, err := builder.Cycle(ring(t, n))
	require.NoError(t, err)
	return g
}

func pathGraph(t *testing.T, n int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddNode(i, float64(i), 0))
	}
	_, err := builder.Path(g)
	require.NoError(t, err)
	return g
}
