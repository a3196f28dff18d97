// SPDX-License-Identifier: MIT

package partition_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/katalvlaran/hamtour/builder"
	"github.com/katalvlaran/hamtour/core"
	"github.com/katalvlaran/hamtour/partition"
)

func TestHalves(t *testing.T) {
	cases := []struct {
		in          []string
		first, rest []string
	}{
		{nil, []string{}, []string{}},
		{[]string{"a"}, []string{"a"}, []string{}},
		{[]string{"a", "b"}, []string{"a"}, []string{"b"}},
		{[]string{"a", "b", "c"}, []string{"a", "b"}, []string{"c"}},
		{[]string{"a", "b", "c", "d", "e"}, []string{"a", "b", "c"}, []string{"d", "e"}},
	}
	for _, tc := range cases {
		first, rest := partition.Halves(tc.in)
		assert.Equal(t, len(tc.first), len(first), "input %v", tc.in)
		for i := range tc.first {
			assert.Equal(t, tc.first[i], first[i])
		}
		assert.Equal(t, len(tc.rest), len(rest))
		for i := range tc.rest {
			assert.Equal(t, tc.rest[i], rest[i])
		}
	}
}

func TestSplit_Reference(t *testing.T) {
	g, err := builder.BuildGraph(nil, nil, builder.Reference())
	require.NoError(t, err)

	a, b, err := partition.Split(g)
	require.NoError(t, err)

	assert.Equal(t, []string{"0", "1", "2", "3"}, a.Vertices())
	assert.Equal(t, []string{"4", "5", "6", "7"}, b.Vertices())
	assert.Equal(t, 6, a.EdgeCount())
	assert.Equal(t, 6, b.EdgeCount())
	assert.False(t, a.HasEdge("3", "4"))
}

// TestSplit_Invariants checks disjointness, coverage and edge fidelity on a
// batch of random graphs of odd and even order.
func TestSplit_Invariants(t *testing.T) {
	for n := 1; n <= 9; n++ {
		bopts := []builder.BuilderOption{builder.WithSeed(int64(n)), builder.WithUniformWeights(1, 30)}
		g, err := builder.BuildGraph(nil, bopts, builder.RandomSparse(n, 0.5))
		require.NoError(t, err)

		a, b, err := partition.Split(g)
		require.NoError(t, err)

		assert.Equal(t, (n+1)/2, a.VertexCount(), "n=%d", n)
		assert.Equal(t, n/2, b.VertexCount(), "n=%d", n)
		assert.Equal(t, g.Vertices(), append(a.Vertices(), b.Vertices()...))

		for _, v := range a.Vertices() {
			assert.False(t, b.HasVertex(v), "vertex %s on both sides", v)
		}
		for _, half := range []*core.Graph{a, b} {
			for _, e := range half.Edges() {
				orig, ok := g.EdgeBetween(e.From, e.To)
				require.True(t, ok)
				assert.Equal(t, orig.Weight, e.Weight)
				assert.Equal(t, orig.ID, e.ID)
			}
		}

		// every source edge is either inside a half or crosses the cut
		crossing := 0
		for _, e := range g.Edges() {
			if a.HasVertex(e.From) != a.HasVertex(e.To) {
				crossing++
			}
		}
		assert.Equal(t, g.EdgeCount(), a.EdgeCount()+b.EdgeCount()+crossing)
	}
}

func TestSplit_KeepsIsolatedVertices(t *testing.T) {
	g := core.NewGraph()
	for _, id := range []string{"p", "q", "r", "s"} {
		require.NoError(t, g.AddVertex(id))
	}
	_, err := g.AddEdge("p", "s", 1)
	require.NoError(t, err)

	a, b, err := partition.Split(g)
	require.NoError(t, err)
	assert.Equal(t, []string{"p", "q"}, a.Vertices())
	assert.Equal(t, []string{"r", "s"}, b.Vertices())
	assert.Zero(t, a.EdgeCount())
	assert.Zero(t, b.EdgeCount())
}

func TestSplit_Nil(t *testing.T) {
	_, _, err := partition.Split(nil)
	require.ErrorIs(t, err, partition.ErrGraphNil)
}
