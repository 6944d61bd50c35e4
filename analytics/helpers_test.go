package analytics_test

import (
	"math"
	"math/rand"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netopt/analytics"
	"github.com/katalvlaran/netopt/builder"
	"github.com/katalvlaran/netopt/core"
	"github.com/katalvlaran/netopt/matrix"
	"github.com/katalvlaran/netopt/spectral"
)

const eps = 1e-9

// line places n nodes at (i, 0) and joins them as a path.
func line(t *testing.T, n int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddNode(i, float64(i), 0))
	}
	_, err := builder.Path(g)
	require.NoError(t, err)
	return g
}

func randomPath(t *testing.T, n int, seed int64) *core.Graph {
	t.Helper()
	g, err := builder.BuildGraph(
		[]builder.BuilderOption{builder.WithSeed(seed)},
		builder.RandomPlacement(n), builder.PathEdges(),
	)
	require.NoError(t, err)
	return g
}

func newState(t *testing.T, g *core.Graph, opts ...analytics.Option) *analytics.State {
	t.Helper()
	s, err := analytics.New(g, opts...)
	require.NoError(t, err)
	return s
}

// view is everything Revert promises to put back.
type view struct {
	edges          []core.Edge
	adj            *matrix.Dense
	cost           float64
	rateDirty      bool
	connectedDirty bool
}

func capture(t *testing.T, s *analytics.State) view {
	t.Helper()
	adj, err := s.Adjacency()
	require.NoError(t, err)
	return view{
		edges:          s.Graph().Edges(),
		adj:            adj.Mat,
		cost:           s.EdgeCost(),
		rateDirty:      s.RateDirty(),
		connectedDirty: s.ConnectedDirty(),
	}
}

func requireSameView(t *testing.T, want, got view) {
	t.Helper()
	require.Equal(t, want.edges, got.edges)
	require.True(t, want.adj.Equal(got.adj), "adjacency matrix differs")
	require.Equal(t, want.cost, got.cost)
	require.Equal(t, want.rateDirty, got.rateDirty)
	require.Equal(t, want.connectedDirty, got.connectedDirty)
}

// mutate applies one random edge mutation and reports whether it took.
func mutate(t *testing.T, s *analytics.State, r *rand.Rand, n int) bool {
	t.Helper()
	a, b, c := r.Intn(n), r.Intn(n), r.Intn(n)
	var (
		ok  bool
		err error
	)
	switch r.Intn(3) {
	case 0:
		ok, err = s.AddEdge(a, b)
	case 1:
		ok, err = s.RemoveEdge(a, b)
	default:
		ok, err = s.MoveEdge(a, b, c)
	}
	require.NoError(t, err)
	return ok
}

// requireMatchesFresh compares the incremental state against values
// derived from scratch on the same graph.
func requireMatchesFresh(t *testing.T, s *analytics.State) {
	t.Helper()
	g := s.Graph()

	fresh, err := matrix.NewAdjacency(g, matrix.WithSelfAvoiding())
	require.NoError(t, err)
	adj, err := s.Adjacency()
	require.NoError(t, err)
	require.True(t, fresh.Mat.Equal(adj.Mat))

	require.InDelta(t, spectral.TotalEdgeCost(g), s.EdgeCost(), eps)

	wantRate, wantOK, err := spectral.ConvergenceRate(g)
	require.NoError(t, err)
	rate, ok, err := s.ConvergenceRate()
	require.NoError(t, err)
	require.Equal(t, wantOK, ok)
	require.InDelta(t, wantRate, rate, eps)

	wantConn, err := spectral.IsConnected(g)
	require.NoError(t, err)
	conn, err := s.IsConnected()
	require.NoError(t, err)
	require.Equal(t, wantConn, conn)
}

// cycleOf places n nodes on a circle of radius 10 and closes them into a
// cycle.
func cycleOf(t *testing.T, n int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		a := 2 * math.Pi * float64(i) / float64(n)
		require.NoError(t, g.AddNode(i, 10*math.Cos(a), 10*math.Sin(a)))
	}
	_, err := builder.Cycle(g)
	require.NoError(t, err)
	return g
}

func cosTurn(n int) float64 {
	return math.Cos(2 * math.Pi / float64(n))
}
