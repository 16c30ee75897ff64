package csc

import (
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/embedlib/minorembed/embedding"
	"github.com/embedlib/minorembed/graphset"
)

// newStarReducer builds a reducer whose target graph is a 4-vertex star
// (center 0, leaves 1,2,3) and whose seed chain is the whole star, with
// no adjacent source requiring any particular leaf. Internal test: lives
// in package csc to exercise unexported Reducer/CSCIndividual fields
// directly, the way the teacher's own *_test.go files in non-_test
// packages do for internals.
func newStarReducer(t *testing.T) *Reducer {
	t.Helper()

	source := graphset.New()
	source.AddVertex(10)

	target := graphset.New()
	require.NoError(t, target.AddEdge(0, 1))
	require.NoError(t, target.AddEdge(0, 2))
	require.NoError(t, target.AddEdge(0, 3))

	view := embedding.New(source, target)
	view.Assign(10, 0)
	view.Assign(10, 1)
	view.Assign(10, 2)
	view.Assign(10, 3)

	r, err := New(view, 10, WithSeed(11))
	require.NoError(t, err)

	return r
}

func TestCSCIndividual_TryRemoveSoundness(t *testing.T) {
	r := newStarReducer(t)

	ind := &CSCIndividual{}
	ind.initialize(r, 10, deriveRNG(1, 0))
	ind.fromInitial(r.bestChain)

	require.True(t, ind.tryRemove(1))
	require.False(t, ind.chain.Contains(1))
	require.True(t, graphutilConnected(r, ind.chain))
}

func TestCSCIndividual_CutVertexBlocksRemoval(t *testing.T) {
	r := newStarReducer(t)

	ind := &CSCIndividual{}
	ind.initialize(r, 10, deriveRNG(1, 0))
	ind.fromInitial(r.bestChain)

	require.False(t, ind.tryRemove(0), "center of the star is a cut vertex and must not be removed")
}

func TestCSCIndividual_Idempotence(t *testing.T) {
	r := newStarReducer(t)

	ind := &CSCIndividual{}
	ind.initialize(r, 10, deriveRNG(1, 0))
	ind.fromInitial(r.bestChain)

	ind.optimize()
	firstChain := ind.chain.Clone()
	firstFitness := ind.fitness

	ind.optimize() // done is already true; must be a no-op

	require.Equal(t, firstChain, ind.chain)
	require.Equal(t, firstFitness, ind.fitness)
}

func TestCSCIndividual_FromCrossover_RequiresOverlapOrAdjacency(t *testing.T) {
	r := newStarReducer(t)

	a := &CSCIndividual{}
	a.initialize(r, 10, deriveRNG(1, 0))
	a.chain = graphset.VSetOf(1)
	a.setupConnectivity()

	b := &CSCIndividual{}
	b.initialize(r, 10, deriveRNG(1, 1))
	b.chain = graphset.VSetOf(2)
	b.setupConnectivity()

	child := &CSCIndividual{}
	child.initialize(r, 10, deriveRNG(1, 2))

	// {1} and {2} share no vertex and are not connected by a target edge
	// (both only touch 0, which neither chain contains).
	require.False(t, child.fromCrossover(a, b))

	c := &CSCIndividual{}
	c.initialize(r, 10, deriveRNG(1, 3))
	c.chain = graphset.VSetOf(0)
	c.setupConnectivity()

	// {1} and {0} are connected by the star's 0-1 edge.
	require.True(t, child.fromCrossover(a, c))
	require.Equal(t, graphset.VSetOf(0, 1), child.chain)
}

func TestCSCIndividual_LessOrdersByFitnessThenSize(t *testing.T) {
	a := &CSCIndividual{fitness: 1, chain: graphset.VSetOf(0, 1)}
	b := &CSCIndividual{fitness: 0, chain: graphset.VSetOf(0, 1, 2)}
	c := &CSCIndividual{fitness: 0, chain: graphset.VSetOf(0)}

	require.True(t, b.less(a), "lower fitness wins regardless of size")
	require.True(t, c.less(b), "equal fitness falls back to smaller size")
}

// graphutilConnected reports whether every member of chain has a
// neighbor inside chain in r's target graph. On the star used by these
// tests that is enough for chain to induce a connected subgraph: any
// chain of two or more vertices that passes the check holds the center.
func graphutilConnected(r *Reducer, chain graphset.VSet) bool {
	if len(chain) <= 1 {
		return true
	}
	for v := range chain {
		reached := false
		r.view.TargetAdjGraph().IterateNeighbors(v, func(adj graphset.VId) bool {
			if chain.Contains(adj) {
				reached = true

				return false
			}

			return true
		})
		if !reached {
			return false
		}
	}

	return true
}
