package graphutil_test

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/embedlib/minorembed/graphset"
	"github.com/embedlib/minorembed/graphutil"
)

func pathGraph(n int) *graphset.Graph {
	g := graphset.New()
	for i := 0; i < n-1; i++ {
		_ = g.AddEdge(graphset.VId(i), graphset.VId(i+1))
	}

	return g
}

func TestIsCutVertex_SmallSetsNeverCut(t *testing.T) {
	g := pathGraph(3)

	require.False(t, graphutil.IsCutVertex(g, graphset.VSetOf(), 0))
	require.False(t, graphutil.IsCutVertex(g, graphset.VSetOf(0), 0))
}

func TestIsCutVertex_MiddleOfPathIsCut(t *testing.T) {
	// 0-1-2: removing 1 disconnects {0} from {2}.
	g := pathGraph(3)
	s := graphset.VSetOf(0, 1, 2)

	require.True(t, graphutil.IsCutVertex(g, s, 1))
	require.False(t, graphutil.IsCutVertex(g, s, 0))
	require.False(t, graphutil.IsCutVertex(g, s, 2))
}

func TestIsCutVertex_CycleHasNoCutVertex(t *testing.T) {
	g := graphset.New()
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(1, 2))
	require.NoError(t, g.AddEdge(2, 0))
	s := graphset.VSetOf(0, 1, 2)

	require.False(t, graphutil.IsCutVertex(g, s, 0))
	require.False(t, graphutil.IsCutVertex(g, s, 1))
	require.False(t, graphutil.IsCutVertex(g, s, 2))
}

func TestIsCutVertex_CorrectnessLaw(t *testing.T) {
	// Law: IsCutVertex(g,S,v) is false iff g[S\{v}] is connected, for |S| >= 2.
	// Star graph: center 0 joined to leaves 1,2,3.
	g := graphset.New()
	require.NoError(t, g.AddEdge(0, 1))
	require.NoError(t, g.AddEdge(0, 2))
	require.NoError(t, g.AddEdge(0, 3))
	s := graphset.VSetOf(0, 1, 2, 3)

	// Removing the center disconnects the three leaves from each other.
	require.True(t, graphutil.IsCutVertex(g, s, 0))
	// Removing any single leaf keeps the rest connected through the center.
	require.False(t, graphutil.IsCutVertex(g, s, 1))
	require.False(t, graphutil.IsCutVertex(g, s, 2))
	require.False(t, graphutil.IsCutVertex(g, s, 3))
}
