package spectral_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netopt/builder"
	"github.com/katalvlaran/netopt/core"
	"github.com/katalvlaran/netopt/spectral"
)

func TestTotalEdgeCost(t *testing.T) {
	g := pathGraph(t, 4)
	assert.Equal(t, 3.0, spectral.TotalEdgeCost(g))

	_, err := builder.Cycle(g)
	require.NoError(t, err)
	assert.Equal(t, 12.0, spectral.TotalEdgeCost(g))

	assert.Zero(t, spectral.TotalEdgeCost(core.NewGraph()))
	assert.Zero(t, spectral.TotalEdgeCost(nil))
}

func TestHypotheticalMaxEdgeCost(t *testing.T) {
	g := pathGraph(t, 4)
	before := g.Edges()
	rev := g.Revision()

	got, err := spectral.HypotheticalMaxEdgeCost(g)
	require.NoError(t, err)
	// pairs at distance 1,1,1,2,2,3 → 1+1+1+4+4+9
	assert.Equal(t, 20.0, got)

	assert.Equal(t, before, g.Edges(), "original untouched")
	assert.Equal(t, rev, g.Revision())

	_, err = spectral.HypotheticalMaxEdgeCost(nil)
	require.ErrorIs(t, err, spectral.ErrGraphNil)
}

// TestCompleteNeverCheaper checks TotalEdgeCost(Complete(G)) ≥ TotalEdgeCost(G)
// over a batch of random layouts and topologies.
func TestCompleteNeverCheaper(t *testing.T) {
	for seed := int64(0); seed < 20; seed++ {
		g, err := builder.FromRandomPlacement(int(seed%9)+1, builder.WithSeed(seed))
		require.NoError(t, err)
		if seed%2 == 0 {
			_, err = builder.Cycle(g)
		} else {
			_, err = builder.Path(g)
		}
		require.NoError(t, err)

		maxCost, err := spectral.HypotheticalMaxEdgeCost(g)
		require.NoError(t, err)
		assert.GreaterOrEqual(t, maxCost, spectral.TotalEdgeCost(g), "seed=%d", seed)
	}
}
