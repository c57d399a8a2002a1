// SPDX-License-Identifier: MIT
package core_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spanforest/core"
)

// buildWeighted connects every (u, v, w) triple into a fresh graph over n vertices.
func buildWeighted(t *testing.T, n int, edges ...core.WeightedEdge) *core.WeightedGraph {
	t.Helper()
	g, err := core.NewWeightedGraph(n, len(edges))
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, g.Connect(e.U, e.V, e.Weight))
	}

	return g
}

func TestWeightedGraph_ConnectAndWeight(t *testing.T) {
	g := buildWeighted(t, 4, core.WeightedEdge{U: 0, V: 1, Weight: 7}, core.WeightedEdge{U: 3, V: 2, Weight: -2})

	w, err := g.Weight(1, 0)
	require.NoError(t, err)
	assert.EqualValues(t, 7, w)
	w, err = g.Weight(2, 3)
	require.NoError(t, err)
	assert.EqualValues(t, -2, w)

	_, err = g.Weight(0, 2)
	assert.ErrorIs(t, err, core.ErrEdgeNotFound)
	assert.Equal(t, 2, g.EdgeCount())
	assert.EqualValues(t, 5, g.TotalWeight())
}

// TestWeightedGraph_ReconnectIsNoop pins the documented hazard: reconnecting
// an existing edge with a different weight keeps the original weight,
// from either endpoint.
func TestWeightedGraph_ReconnectIsNoop(t *testing.T) {
	g := buildWeighted(t, 2, core.WeightedEdge{U: 0, V: 1, Weight: 3})

	require.NoError(t, g.Connect(0, 1, 100))
	require.NoError(t, g.Connect(1, 0, 200))

	w, err := g.Weight(0, 1)
	require.NoError(t, err)
	assert.EqualValues(t, 3, w)
	assert.Equal(t, 1, g.EdgeCount())
	nbrs, _ := g.Neighbors(1)
	assert.Equal(t, []int{0}, nbrs, "no duplicate entry on either side")
}

func TestWeightedGraph_SetWeight(t *testing.T) {
	g := buildWeighted(t, 3, core.WeightedEdge{U: 0, V: 1, Weight: 3})

	require.NoError(t, g.SetWeight(1, 0, 9))
	w, _ := g.Weight(0, 1)
	assert.EqualValues(t, 9, w)
	w, _ = g.Weight(1, 0)
	assert.EqualValues(t, 9, w)

	assert.ErrorIs(t, g.SetWeight(0, 2, 1), core.ErrEdgeNotFound)
	assert.ErrorIs(t, g.SetWeight(0, 3, 1), core.ErrInvalidVertex)
}

func TestWeightedGraph_Disconnect(t *testing.T) {
	g := buildWeighted(t, 3,
		core.WeightedEdge{U: 0, V: 1, Weight: 1},
		core.WeightedEdge{U: 1, V: 2, Weight: 2},
	)

	require.NoError(t, g.Disconnect(1, 0))
	ok, err := g.HasEdge(0, 1)
	require.NoError(t, err)
	assert.False(t, ok)
	ok, _ = g.HasEdge(1, 0)
	assert.False(t, ok)
	assert.Equal(t, 1, g.EdgeCount())

	require.NoError(t, g.Disconnect(0, 1))
	assert.Equal(t, 1, g.EdgeCount(), "second disconnect is a no-op")
	assert.ErrorIs(t, g.Disconnect(0, 9), core.ErrInvalidVertex)
}

func TestWeightedGraph_EdgeOrder(t *testing.T) {
	g := buildWeighted(t, 4,
		core.WeightedEdge{U: 2, V: 3, Weight: 1},
		core.WeightedEdge{U: 0, V: 3, Weight: 2},
		core.WeightedEdge{U: 0, V: 1, Weight: 3},
		core.WeightedEdge{U: 2, V: 1, Weight: 4},
	)

	// u ascending, then adjacency insertion order within u.
	want := []core.WeightedEdge{
		{U: 0, V: 3, Weight: 2},
		{U: 0, V: 1, Weight: 3},
		{U: 1, V: 2, Weight: 4},
		{U: 2, V: 3, Weight: 1},
	}
	assert.Equal(t, want, g.WeightedEdges())
	assert.Equal(t, []core.Edge{{U: 0, V: 3}, {U: 0, V: 1}, {U: 1, V: 2}, {U: 2, V: 3}}, g.Edges())
}

func TestWeightedGraph_CloneIsIndependent(t *testing.T) {
	g := buildWeighted(t, 3,
		core.WeightedEdge{U: 0, V: 1, Weight: 1},
		core.WeightedEdge{U: 1, V: 2, Weight: 2},
	)
	c := g.Clone()

	require.NoError(t, c.Disconnect(0, 1))
	require.NoError(t, c.Connect(0, 2, 5))
	require.NoError(t, c.SetWeight(1, 2, 8))

	assert.Equal(t, []core.WeightedEdge{{U: 0, V: 1, Weight: 1}, {U: 1, V: 2, Weight: 2}}, g.WeightedEdges())
	assert.Equal(t, 2, g.EdgeCount())
	assert.Equal(t, []core.WeightedEdge{{U: 0, V: 2, Weight: 5}, {U: 1, V: 2, Weight: 8}}, c.WeightedEdges())
}

func TestWeightedGraph_ImplementsGraph(t *testing.T) {
	var g core.Graph = buildWeighted(t, 2, core.WeightedEdge{U: 0, V: 1, Weight: 4})
	assert.Equal(t, 2, g.VertexCount())
	assert.Equal(t, 2*3*8+2*2*8, g.MemoryUsage())
}

func TestWeightedGraph_TotalWeightSaturates(t *testing.T) {
	g := buildWeighted(t, 3,
		core.WeightedEdge{U: 0, V: 1, Weight: math.MaxInt64},
		core.WeightedEdge{U: 1, V: 2, Weight: 10},
	)
	assert.EqualValues(t, int64(math.MaxInt64), g.TotalWeight())
}

func TestSaturatingArithmetic(t *testing.T) {
	assert.EqualValues(t, 5, core.SaturatingAdd(2, 3))
	assert.EqualValues(t, int64(math.MaxInt64), core.SaturatingAdd(math.MaxInt64, 1))
	assert.EqualValues(t, int64(math.MinInt64), core.SaturatingAdd(math.MinInt64, -1))
	assert.EqualValues(t, -1, core.SaturatingSub(2, 3))
	assert.EqualValues(t, int64(math.MaxInt64), core.SaturatingSub(math.MaxInt64, -1))
	assert.EqualValues(t, int64(math.MinInt64), core.SaturatingSub(math.MinInt64, 1))
	assert.EqualValues(t, int64(math.MaxInt64), core.SaturatingSub(1, math.MinInt64))
}
