// SPDX-License-Identifier: MIT
package core_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/spanforest/core"
)

// newStores builds one empty store of every kind over n vertices.
func newStores(t *testing.T, n int) map[core.Kind]core.Store {
	t.Helper()
	out := make(map[core.Kind]core.Store, len(core.Kinds()))
	for _, k := range core.Kinds() {
		s, err := core.NewStore(k, n, 0)
		require.NoError(t, err)
		out[k] = s
	}

	return out
}

func TestNewStore_Errors(t *testing.T) {
	for _, k := range core.Kinds() {
		_, err := core.NewStore(k, -1, 0)
		assert.ErrorIs(t, err, core.ErrNegativeVertexCount, k.String())
	}
	_, err := core.NewStore(core.Kind(42), 3, 0)
	assert.ErrorIs(t, err, core.ErrUnknownKind)
}

func TestParseKind(t *testing.T) {
	for _, k := range core.Kinds() {
		got, err := core.ParseKind(k.String())
		require.NoError(t, err)
		assert.Equal(t, k, got)
	}
	_, err := core.ParseKind("tree")
	assert.ErrorIs(t, err, core.ErrUnknownKind)
	assert.Equal(t, "kind(9)", core.Kind(9).String())
}

func TestStore_ConnectIsSymmetric(t *testing.T) {
	for k, s := range newStores(t, 4) {
		require.NoError(t, s.Connect(0, 3))
		require.NoError(t, s.Connect(2, 1))

		for _, p := range [][2]int{{0, 3}, {3, 0}, {1, 2}, {2, 1}} {
			ok, err := s.HasEdge(p[0], p[1])
			require.NoError(t, err)
			assert.True(t, ok, "%s: %v", k, p)
		}
		ok, err := s.HasEdge(0, 1)
		require.NoError(t, err)
		assert.False(t, ok, k.String())
	}
}

func TestStore_DisconnectIsIdempotent(t *testing.T) {
	for k, s := range newStores(t, 3) {
		require.NoError(t, s.Connect(0, 1))
		require.NoError(t, s.Disconnect(1, 0))

		ok, _ := s.HasEdge(0, 1)
		assert.False(t, ok, k.String())
		ok, _ = s.HasEdge(1, 0)
		assert.False(t, ok, k.String())

		require.NoError(t, s.Disconnect(0, 1), k.String())
		assert.Empty(t, s.Edges(), k.String())
	}
}

func TestStore_InvalidVertex(t *testing.T) {
	for k, s := range newStores(t, 2) {
		assert.ErrorIs(t, s.Connect(0, 2), core.ErrInvalidVertex, k.String())
		assert.ErrorIs(t, s.Connect(-1, 0), core.ErrInvalidVertex, k.String())
		assert.ErrorIs(t, s.Disconnect(5, 0), core.ErrInvalidVertex, k.String())
		_, err := s.HasEdge(0, 7)
		assert.ErrorIs(t, err, core.ErrInvalidVertex, k.String())
		_, err = s.Neighbors(2)
		assert.ErrorIs(t, err, core.ErrInvalidVertex, k.String())
		assert.Empty(t, s.Edges(), "failed calls must not mutate %s", k)
	}
}

func TestStore_SelfLoopRejected(t *testing.T) {
	for k, s := range newStores(t, 2) {
		assert.ErrorIs(t, s.Connect(1, 1), core.ErrLoopNotAllowed, k.String())
	}
}

func TestAdjacencyList_DuplicatesKeptAndRemoved(t *testing.T) {
	g, err := core.NewAdjacencyList(3, 4)
	require.NoError(t, err)
	require.NoError(t, g.Connect(0, 1))
	require.NoError(t, g.Connect(0, 2))
	require.NoError(t, g.Connect(0, 1))

	nbrs, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.Equal(t, []int{1, 2, 1}, nbrs, "insertion order with duplicates")
	assert.Equal(t, []core.Edge{{U: 0, V: 1}, {U: 0, V: 2}}, g.Edges(), "each edge once")

	require.NoError(t, g.Disconnect(1, 0))
	nbrs, _ = g.Neighbors(0)
	assert.Equal(t, []int{2}, nbrs, "every occurrence removed")
	nbrs, _ = g.Neighbors(1)
	assert.Empty(t, nbrs)
}

func TestAdjacencySet_Dedupes(t *testing.T) {
	g, err := core.NewAdjacencySet(3, 0)
	require.NoError(t, err)
	require.NoError(t, g.Connect(0, 1))
	require.NoError(t, g.Connect(1, 0))
	require.NoError(t, g.Connect(0, 2))

	nbrs, err := g.Neighbors(0)
	require.NoError(t, err)
	assert.ElementsMatch(t, []int{1, 2}, nbrs)
	assert.ElementsMatch(t, []core.Edge{{U: 0, V: 1}, {U: 0, V: 2}}, g.Edges())
}

func TestAdjacencyMatrix_AscendingNeighbors(t *testing.T) {
	g, err := core.NewAdjacencyMatrix(5, 0)
	require.NoError(t, err)
	require.NoError(t, g.Connect(2, 4))
	require.NoError(t, g.Connect(2, 0))
	require.NoError(t, g.Connect(2, 3))
	require.NoError(t, g.Connect(3, 2))

	nbrs, err := g.Neighbors(2)
	require.NoError(t, err)
	assert.Equal(t, []int{0, 3, 4}, nbrs)
	assert.Equal(t, []core.Edge{{U: 0, V: 2}, {U: 2, V: 3}, {U: 2, V: 4}}, g.Edges())
}

// TestStores_EquivalentEdges applies one mutation script to every kind and
// compares the resulting edge sets.
func TestStores_EquivalentEdges(t *testing.T) {
	type op struct {
		connect bool
		u, v    int
	}
	script := []op{
		{true, 0, 1}, {true, 1, 2}, {true, 2, 3}, {true, 3, 0},
		{true, 1, 0}, {true, 4, 5}, {false, 2, 1}, {true, 5, 0},
		{false, 3, 4}, {true, 2, 5}, {false, 4, 5}, {true, 1, 3},
	}

	stores := newStores(t, 6)
	for _, s := range stores {
		for _, o := range script {
			if o.connect {
				require.NoError(t, s.Connect(o.u, o.v))
			} else {
				require.NoError(t, s.Disconnect(o.u, o.v))
			}
		}
	}

	want := []core.Edge{{U: 0, V: 1}, {U: 0, V: 3}, {U: 0, V: 5}, {U: 1, V: 3}, {U: 2, V: 3}, {U: 2, V: 5}}
	for k, s := range stores {
		assert.ElementsMatch(t, want, s.Edges(), k.String())
	}
}

func TestStore_MemoryUsage(t *testing.T) {
	const n = 16
	empty := newStores(t, n)
	full := newStores(t, n)
	for _, s := range full {
		for u := 0; u < n; u++ {
			for v := u + 1; v < n; v++ {
				require.NoError(t, s.Connect(u, v))
			}
		}
	}

	assert.Equal(t, n*n, empty[core.KindMatrix].MemoryUsage())
	assert.Equal(t, empty[core.KindMatrix].MemoryUsage(), full[core.KindMatrix].MemoryUsage(),
		"matrix footprint is independent of edge count")
	assert.Greater(t, full[core.KindList].MemoryUsage(), empty[core.KindList].MemoryUsage())
	assert.Greater(t, full[core.KindSet].MemoryUsage(), empty[core.KindSet].MemoryUsage())
	assert.Equal(t, full[core.KindList].MemoryUsage(), full[core.KindSet].MemoryUsage())
}

func TestStore_ZeroVertices(t *testing.T) {
	for k, s := range newStores(t, 0) {
		assert.Zero(t, s.VertexCount(), k.String())
		assert.Empty(t, s.Edges(), k.String())
		assert.Zero(t, s.MemoryUsage(), k.String())
		assert.ErrorIs(t, s.Connect(0, 0), core.ErrInvalidVertex, k.String())
	}
}
