// SPDX-License-Identifier: MIT
package mst_test

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spanforest/builder"
	"github.com/katalvlaran/spanforest/core"
	"github.com/katalvlaran/spanforest/dfs"
	"github.com/katalvlaran/spanforest/mst"
)

// weighted builds a WeightedGraph over n vertices from (u,v,w) triples.
func weighted(t testing.TB, n int, edges ...core.WeightedEdge) *core.WeightedGraph {
	t.Helper()
	g, err := core.NewWeightedGraph(n, len(edges))
	require.NoError(t, err)
	for _, e := range edges {
		require.NoError(t, g.Connect(e.U, e.V, e.Weight))
	}

	return g
}

func we(u, v int, w int64) core.WeightedEdge { return core.WeightedEdge{U: u, V: v, Weight: w} }

// fiveVertex is the reference network used across the package tests.
func fiveVertex(t testing.TB) *core.WeightedGraph {
	return weighted(t, 5,
		we(0, 1, 8), we(0, 2, 2), we(0, 3, 12), we(1, 3, 9),
		we(1, 4, 24), we(2, 3, 4), we(3, 4, 18),
	)
}

// randomConnected returns a seeded connected graph with weights in [lo, hi].
func randomConnected(t testing.TB, n, m int, seed, lo, hi int64) *core.WeightedGraph {
	t.Helper()
	g, err := core.NewWeightedGraph(n, m)
	require.NoError(t, err)
	require.NoError(t, builder.PopulateWeighted(g, m,
		builder.WithSeed(seed),
		builder.WithConnected(),
		builder.WithWeightFn(builder.UniformWeightFn(lo, hi)),
	))

	return g
}

func TestBoruvka_FiveVertex(t *testing.T) {
	f, err := mst.Boruvka(fiveVertex(t))
	require.NoError(t, err)

	assert.True(t, f.Spanning())
	assert.Equal(t, 1, f.Components)
	assert.Equal(t, 1, f.Rounds)
	assert.EqualValues(t, 32, f.Weight)
	assert.Equal(t, []core.WeightedEdge{
		we(0, 2, 2), we(0, 1, 8), we(2, 3, 4), we(3, 4, 18),
	}, f.Graph.WeightedEdges())
}

func TestBoruvka_NoEdges(t *testing.T) {
	g := weighted(t, 4)
	f, err := mst.Boruvka(g)
	require.NoError(t, err)

	assert.Equal(t, 4, f.Components)
	assert.Equal(t, 0, f.Rounds)
	assert.Equal(t, 0, f.Graph.EdgeCount())
	assert.False(t, f.Spanning())
}

func TestBoruvka_ForestSize(t *testing.T) {
	// Two triangles and an isolated vertex.
	g := weighted(t, 7,
		we(0, 1, 3), we(1, 2, 1), we(0, 2, 2),
		we(3, 4, 5), we(4, 5, 5), we(3, 5, 4),
	)
	f, err := mst.Boruvka(g)
	require.NoError(t, err)

	assert.Equal(t, 3, f.Components)
	assert.Equal(t, g.VertexCount()-f.Components, f.Graph.EdgeCount())
	assert.EqualValues(t, 1+2+4+5, f.Weight)

	// Forest components coincide with the input's.
	in, err := dfs.Components(g)
	require.NoError(t, err)
	out, err := dfs.Components(f.Graph)
	require.NoError(t, err)
	assert.Equal(t, in.Labels, out.Labels)
}

func TestBoruvka_Trivial(t *testing.T) {
	for _, n := range []int{0, 1} {
		f, err := mst.Boruvka(weighted(t, n))
		require.NoError(t, err)
		assert.Equal(t, n, f.Components)
		assert.Equal(t, 0, f.Graph.EdgeCount())
	}
}

func TestBoruvka_TieBreakByEnumerationOrder(t *testing.T) {
	square := weighted(t, 4, we(0, 1, 1), we(1, 2, 1), we(2, 3, 1), we(3, 0, 1))
	f, err := mst.Boruvka(square)
	require.NoError(t, err)

	assert.ElementsMatch(t, []core.WeightedEdge{we(0, 1, 1), we(1, 2, 1), we(0, 3, 1)}, f.Graph.WeightedEdges())

	again, err := mst.Boruvka(square)
	require.NoError(t, err)
	assert.Equal(t, f.Graph.WeightedEdges(), again.Graph.WeightedEdges())
}

func TestBoruvka_DoesNotMutateInput(t *testing.T) {
	g := fiveVertex(t)
	before := g.WeightedEdges()
	_, err := mst.Boruvka(g)
	require.NoError(t, err)
	assert.Equal(t, before, g.WeightedEdges())
}

func TestBoruvka_MatchesReferenceAlgorithms(t *testing.T) {
	cases := []struct {
		n, m   int
		lo, hi int64
	}{
		{n: 2, m: 1, lo: -3, hi: 3},
		{n: 10, m: 20, lo: 1, hi: 5},
		{n: 50, m: 200, lo: -100, hi: 100},
		{n: 120, m: 119, lo: 0, hi: 1000},
		{n: 40, m: 780, lo: 1, hi: 3},
	}
	for seed := int64(1); seed <= 5; seed++ {
		for _, tc := range cases {
			g := randomConnected(t, tc.n, tc.m, seed, tc.lo, tc.hi)

			f, err := mst.Boruvka(g)
			require.NoError(t, err)
			require.True(t, f.Spanning())
			assert.Equal(t, tc.n-1, f.Graph.EdgeCount())

			_, kw, err := mst.Kruskal(g)
			require.NoError(t, err)
			_, pw, err := mst.Prim(g, tc.n-1)
			require.NoError(t, err)

			assert.Equal(t, kw, f.Weight, "kruskal n=%d seed=%d", tc.n, seed)
			assert.Equal(t, pw, f.Weight, "prim n=%d seed=%d", tc.n, seed)
		}
	}
}

func TestBoruvka_Saturates(t *testing.T) {
	g := weighted(t, 3, we(0, 1, math.MaxInt64), we(1, 2, math.MaxInt64))
	f, err := mst.Boruvka(g)
	require.NoError(t, err)
	assert.EqualValues(t, int64(math.MaxInt64), f.Weight)
}

func TestBoruvka_Nil(t *testing.T) {
	_, err := mst.Boruvka(nil)
	assert.ErrorIs(t, err, mst.ErrGraphNil)
}
