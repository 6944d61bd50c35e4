package converters_test

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gonum.org/v1/gonum/graph"
	"gonum.org/v1/gonum/graph/simple"
	"gonum.org/v1/gonum/graph/topo"

	"github.com/katalvlaran/netopt/converters"
	"github.com/katalvlaran/netopt/core"
)

func sample(t *testing.T) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	require.NoError(t, g.AddNode(1, 0, 0))
	require.NoError(t, g.AddNode(4, 3, 4))
	require.NoError(t, g.AddNode(7, 3, 0))
	require.NoError(t, g.AddNode(9, 9, 9))
	require.NoError(t, g.AddEdge(1, 4, 25))
	require.NoError(t, g.AddEdge(4, 7, 16))
	return g
}

func TestToGonum(t *testing.T) {
	wg, err := converters.ToGonum(sample(t))
	require.NoError(t, err)

	assert.Equal(t, 4, wg.Nodes().Len())
	assert.Equal(t, 2, wg.Edges().Len())

	w, ok := wg.Weight(4, 1)
	require.True(t, ok)
	assert.Equal(t, 25.0, w)
	w, ok = wg.Weight(7, 7)
	require.True(t, ok)
	assert.Equal(t, 0.0, w)
	_, ok = wg.Weight(1, 9)
	assert.False(t, ok)

	comps := topo.ConnectedComponents(wg)
	assert.Len(t, comps, 2)

	_, err = converters.ToGonum(nil)
	require.ErrorIs(t, err, converters.ErrGraphNil)
}

func TestRoundTrip(t *testing.T) {
	g := sample(t)
	wg, err := converters.ToGonum(g)
	require.NoError(t, err)

	positions := map[int]core.Point{}
	for _, id := range g.Nodes() {
		n, _ := g.Node(id)
		positions[id] = n.Point
	}
	back, err := converters.FromGonum(wg, positions)
	require.NoError(t, err)

	if diff := cmp.Diff(g.Edges(), back.Edges()); diff != "" {
		t.Errorf("edges mismatch (-want +got):\n%s", diff)
	}
	assert.Equal(t, g.Nodes(), back.Nodes())
}

func TestFromGonumDirected(t *testing.T) {
	dg := simple.NewWeightedDirectedGraph(0, 0)
	a, b := simple.Node(0), simple.Node(1)
	dg.SetWeightedEdge(dg.NewWeightedEdge(a, b, 2))
	dg.SetWeightedEdge(dg.NewWeightedEdge(b, a, 2))

	var src graph.Weighted = dg
	g, err := converters.FromGonum(src, map[int]core.Point{0: {}, 1: {X: 1}})
	require.NoError(t, err)
	assert.Equal(t, []core.Edge{{From: 0, To: 1, Weight: 2}}, g.Edges())

	_, err = converters.FromGonum(src, map[int]core.Point{0: {}})
	require.ErrorIs(t, err, converters.ErrMissingPosition)

	_, err = converters.FromGonum(nil, nil)
	require.ErrorIs(t, err, converters.ErrGraphNil)
}
