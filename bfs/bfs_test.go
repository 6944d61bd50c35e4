package bfs_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/netopt/bfs"
	"github.com/katalvlaran/netopt/core"
)

// chain builds nodes 0..n-1 on the x axis and links consecutive ones.
func chain(t testing.TB, n int) *core.Graph {
	t.Helper()
	g := core.NewGraph()
	for i := 0; i < n; i++ {
		require.NoError(t, g.AddNode(i, float64(i), 0))
	}
	for i := 1; i < n; i++ {
		require.NoError(t, g.AddEdge(i-1, i, 1))
	}
	return g
}

// TestBFS_Errors verifies that invalid inputs are rejected.
func TestBFS_Errors(t *testing.T) {
	_, err := bfs.BFS(nil, 0)
	require.ErrorIs(t, err, bfs.ErrGraphNil)

	g := core.NewGraph()
	_, err = bfs.BFS(g, 3)
	require.ErrorIs(t, err, bfs.ErrStartVertexNotFound)

	_, err = bfs.Reachable(nil, 0, 1)
	require.ErrorIs(t, err, bfs.ErrGraphNil)
}

// TestBFS_CycleDepths covers a square cycle 0-1-2-3-0.
func TestBFS_CycleDepths(t *testing.T) {
	g := chain(t, 4)
	require.NoError(t, g.AddEdge(3, 0, 9))

	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1, 3, 2}, res.Order)
	assert.Equal(t, map[int]int{0: 0, 1: 1, 3: 1, 2: 2}, res.Depth)
	assert.Equal(t, 2, res.Eccentricity())
}

// TestBFS_Disconnected ensures BFS only explores the start's component.
func TestBFS_Disconnected(t *testing.T) {
	g := chain(t, 2)
	require.NoError(t, g.AddNode(5, 5, 5))
	require.NoError(t, g.AddNode(6, 6, 6))
	require.NoError(t, g.AddEdge(5, 6, 2))

	res, err := bfs.BFS(g, 0)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 1}, res.Order)

	res, err = bfs.BFS(g, 6)
	require.NoError(t, err)
	assert.Equal(t, []int{6, 5}, res.Order)
}

// TestBFS_OnVisitOrder checks that hooks see every node with its depth and
// run in the order they were given.
func TestBFS_OnVisitOrder(t *testing.T) {
	g := chain(t, 3)

	var calls []string
	depths := map[int]int{}
	res, err := bfs.BFS(g, 1,
		bfs.WithOnVisit(func(id, depth int) error {
			depths[id] = depth
			calls = append(calls, "first")
			return nil
		}),
		bfs.WithOnVisit(func(int, int) error { calls = append(calls, "second"); return nil }),
		bfs.WithOnVisit(nil),
	)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 0, 2}, res.Order)
	assert.Equal(t, res.Depth, depths)
	assert.Equal(t, []string{"first", "second", "first", "second", "first", "second"}, calls)
}

// TestBFS_OnVisitError ensures hook errors abort and are wrapped.
func TestBFS_OnVisitError(t *testing.T) {
	g := chain(t, 3)
	boom := errors.New("boom")
	_, err := bfs.BFS(g, 0, bfs.WithOnVisit(func(id, _ int) error {
		if id == 1 {
			return boom
		}
		return nil
	}))
	require.ErrorIs(t, err, boom)
}

// TestBFS_Cancellation verifies that a cancelled context halts BFS promptly.
func TestBFS_Cancellation(t *testing.T) {
	g := chain(t, 100)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	_, err := bfs.BFS(g, 0, bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)

	_, err = bfs.Reachable(g, 0, 99, bfs.WithContext(ctx))
	require.ErrorIs(t, err, context.Canceled)
}

func TestReachable(t *testing.T) {
	g := chain(t, 3)
	require.NoError(t, g.AddNode(7, 7, 0))

	tests := []struct {
		name      string
		from, to  int
		want      bool
		wantErrIs error
	}{
		{"neighbor", 0, 1, true, nil},
		{"far end", 0, 2, true, nil},
		{"reversed", 2, 0, true, nil},
		{"self", 7, 7, true, nil},
		{"isolated", 0, 7, false, nil},
		{"isolated reversed", 7, 0, false, nil},
		{"unknown start", 42, 0, false, bfs.ErrStartVertexNotFound},
		{"unknown target", 0, 42, false, bfs.ErrTargetVertexNotFound},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got, err := bfs.Reachable(g, tc.from, tc.to)
			if tc.wantErrIs != nil {
				require.ErrorIs(t, err, tc.wantErrIs)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tc.want, got)
		})
	}
}

// TestReachable_StopsEarly counts visits to confirm the walk ends at the target.
func TestReachable_StopsEarly(t *testing.T) {
	g := chain(t, 50)
	visits := 0
	ok, err := bfs.Reachable(g, 0, 2, bfs.WithOnVisit(func(int, int) error { visits++; return nil }))
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 3, visits)
}

// TestBFS_ConcurrentSafety ensures concurrent BFS runs on the same graph do not interfere.
func TestBFS_ConcurrentSafety(t *testing.T) {
	g := chain(t, 20)
	errs := make(chan error, 4)
	for i := 0; i < 4; i++ {
		go func() { _, err := bfs.BFS(g, 0); errs <- err }()
	}
	for i := 0; i < 4; i++ {
		require.NoError(t, <-errs)
	}
}
