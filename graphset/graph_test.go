package graphset_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/embedlib/minorembed/graphset"
)

func TestAddEdge_AddsBothEndpoints(t *testing.T) {
	g := graphset.New()

	require.NoError(t, g.AddEdge(1, 2))

	require.True(t, g.HasVertex(1))
	require.True(t, g.HasVertex(2))
	require.True(t, g.HasEdge(1, 2))
	require.True(t, g.HasEdge(2, 1), "edges must be undirected")
}

func TestAddEdge_RejectsSelfLoop(t *testing.T) {
	g := graphset.New()

	err := g.AddEdge(1, 1)

	require.ErrorIs(t, err, graphset.ErrSelfLoop)
	require.Equal(t, 0, g.VertexCount())
}

func TestNeighbors_SortedAndMissingVertex(t *testing.T) {
	g := graphset.New()
	require.NoError(t, g.AddEdge(1, 3))
	require.NoError(t, g.AddEdge(1, 2))

	nbrs, err := g.Neighbors(1)
	require.NoError(t, err)
	require.Equal(t, []graphset.VId{2, 3}, nbrs)

	_, err = g.Neighbors(99)
	require.ErrorIs(t, err, graphset.ErrVertexNotFound)
}

func TestIterateNeighbors_StopsEarly(t *testing.T) {
	g := graphset.New()
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(1, 3))
	require.NoError(t, g.AddEdge(1, 4))

	var seen []graphset.VId
	g.IterateNeighbors(1, func(v graphset.VId) bool {
		seen = append(seen, v)
		return len(seen) < 2
	})

	require.Len(t, seen, 2)
}

func TestVertices_Sorted(t *testing.T) {
	g := graphset.New()
	g.AddVertex(5)
	g.AddVertex(1)
	g.AddVertex(3)

	require.Equal(t, []graphset.VId{1, 3, 5}, g.Vertices())
}
