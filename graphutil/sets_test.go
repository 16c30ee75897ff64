package graphutil_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/embedlib/minorembed/graphset"
	"github.com/embedlib/minorembed/graphutil"
)

func TestOverlappingSets(t *testing.T) {
	require.True(t, graphutil.OverlappingSets(graphset.VSetOf(1, 2), graphset.VSetOf(2, 3)))
	require.False(t, graphutil.OverlappingSets(graphset.VSetOf(1, 2), graphset.VSetOf(3, 4)))
	require.False(t, graphutil.OverlappingSets(graphset.VSetOf(), graphset.VSetOf(1)))
}

func TestAreSetsConnected(t *testing.T) {
	g := graphset.New()
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(3, 4))

	require.True(t, graphutil.AreSetsConnected(g, graphset.VSetOf(1), graphset.VSetOf(2)))
	require.False(t, graphutil.AreSetsConnected(g, graphset.VSetOf(1), graphset.VSetOf(4)))
	require.True(t, graphutil.AreSetsConnected(g, graphset.VSetOf(2, 3), graphset.VSetOf(3, 4)), "edge 3-4 connects the two sets")
}
