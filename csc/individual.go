package csc

import (
	"math/rand"

	"github.com/embedlib/minorembed/graphset"
	"github.com/embedlib/minorembed/graphutil"
)

// CSCIndividual is one candidate chain in a Reducer's population. It
// holds a non-owning pointer back to its Reducer (for connectivity and
// fitness services) and a private PRNG; it is re-seeded in place every
// generation via fromInitial or fromCrossover rather than reallocated.
type CSCIndividual struct {
	reducer      *Reducer
	sourceVertex graphset.VId

	chain        graphset.VSet
	connectivity map[graphset.VId]int
	fitness      int
	done         bool

	rng *rand.Rand

	// scratch buffers reused across mutate calls to avoid reallocating
	// on every generation.
	frontier graphset.VSet
	stack    []adjFrame
}

// adjFrame is one frame of mutate's explicit DFS work-stack: the sorted
// neighbor list of a vertex, plus a cursor into it.
type adjFrame struct {
	neighbors []graphset.VId
	idx       int
}

// initialize wires the individual to its owning reducer and gives it a
// private RNG stream. Called once per population slot.
func (ind *CSCIndividual) initialize(reducer *Reducer, sourceVertex graphset.VId, rng *rand.Rand) {
	ind.reducer = reducer
	ind.sourceVertex = sourceVertex
	ind.rng = rng
}

// fromInitial seeds the chain from a copy of seed and rebuilds
// connectivity from scratch.
func (ind *CSCIndividual) fromInitial(seed graphset.VSet) {
	ind.chain = seed.Clone()
	ind.setupConnectivity()
	ind.done = false
}

// fromCrossover attempts to seed the chain from the union of two
// parents' chains. It succeeds iff the parents' chains overlap or are
// connected by a target-graph edge; on failure it leaves the receiver
// untouched beyond the attempt itself.
func (ind *CSCIndividual) fromCrossover(a, b *CSCIndividual) bool {
	if !graphutil.OverlappingSets(a.chain, b.chain) &&
		!graphutil.AreSetsConnected(ind.reducer.view.TargetAdjGraph(), a.chain, b.chain) {
		return false
	}

	ind.chain = a.chain.Union(b.chain)
	ind.setupConnectivity()
	ind.done = false

	return true
}

// setupConnectivity rebuilds the connectivity counter for every
// adjacent source vertex from the current chain.
func (ind *CSCIndividual) setupConnectivity() {
	ind.connectivity = make(map[graphset.VId]int, len(ind.reducer.adjacentSourceVertices))
	for s := range ind.reducer.adjacentSourceVertices {
		ind.connectivity[s] = 0
	}
	for t := range ind.chain {
		ind.reducer.addConnectivity(ind.connectivity, t)
	}
}

// optimize runs mutate then reduce exactly once; subsequent calls are a
// no-op until the individual is re-seeded.
func (ind *CSCIndividual) optimize() {
	if ind.done {
		return
	}
	ind.mutate()
	ind.reduce()
	ind.fitness = ind.reducer.fitnessOf(ind.chain)
	ind.done = true
}

// less orders individuals by (fitness, size), both ascending.
func (ind *CSCIndividual) less(other *CSCIndividual) bool {
	if ind.fitness != other.fitness {
		return ind.fitness < other.fitness
	}

	return len(ind.chain) < len(other.chain)
}

// addVertex inserts target into the chain and updates connectivity.
func (ind *CSCIndividual) addVertex(target graphset.VId) {
	ind.chain.Add(target)
	ind.reducer.addConnectivity(ind.connectivity, target)
}

// mutate grows the chain by DFS-expanding from a random frontier vertex,
// adding at most Config.MaxNewVertices free target vertices. The work
// stack's cursor is advanced before the child frame is pushed, so a
// newly added vertex's own neighbors are explored before the remaining
// siblings of whichever vertex discovered it — this ordering is load
// bearing for reproducibility and must not be "cleaned up".
func (ind *CSCIndividual) mutate() {
	if ind.frontier == nil {
		ind.frontier = graphset.NewVSet(8)
	} else {
		for k := range ind.frontier {
			delete(ind.frontier, k)
		}
	}

	for t := range ind.chain {
		ind.reducer.view.IterateFreeTargetAdjacent(t, func(adj graphset.VId) bool {
			ind.frontier.Add(adj)

			return true
		})
	}
	if len(ind.frontier) == 0 {
		return
	}

	start := randomMember(ind.rng, ind.frontier)

	ind.stack = ind.stack[:0]
	ind.stack = append(ind.stack, ind.neighborsFrame(start))

	added := 0
	remaining := ind.reducer.remaining
	maxNew := ind.reducer.cfg.MaxNewVertices
	for len(ind.stack) > 0 && added < maxNew {
		top := &ind.stack[len(ind.stack)-1]
		if top.idx >= len(top.neighbors) {
			ind.stack = ind.stack[:len(ind.stack)-1]
			continue
		}

		adj := top.neighbors[top.idx]
		top.idx++

		if remaining.Contains(adj) && !ind.chain.Contains(adj) {
			ind.addVertex(adj)
			ind.stack = append(ind.stack, ind.neighborsFrame(adj))
			added++
		}
	}
}

// neighborsFrame builds a work-stack frame from v's sorted neighbors in
// the target graph.
func (ind *CSCIndividual) neighborsFrame(v graphset.VId) adjFrame {
	nbrs, _ := ind.reducer.view.TargetAdjGraph().Neighbors(v)

	return adjFrame{neighbors: nbrs}
}

// reduce drops chain vertices whose removal keeps the chain connected
// and preserves coverage of every adjacent source, in three phases:
// greedy overlap pruning, randomized pruning, and a final linear sweep.
func (ind *CSCIndividual) reduce() {
	if len(ind.chain) <= 1 {
		return
	}

	verts := ind.chain.Sorted()
	size := len(verts)

	// Phase 1: greedily drop vertices that currently cost overlap fitness.
	for i := 0; i < size; {
		v := verts[i]
		if ind.reducer.fitnessOfVertex(v) != 0 && ind.tryRemove(v) {
			size--
			verts[i] = verts[size]
		} else {
			i++
		}
	}

	// Phase 2: randomized pruning over the survivors of phase 1.
	maxIter := ind.reducer.cfg.ReduceIterationCoefficient * size
	for i := 0; i < maxIter && size > 0; i++ {
		idx := ind.rng.Intn(size)
		v := verts[idx]
		if ind.tryRemove(v) {
			size--
			verts[idx] = verts[size]
		}
	}

	// Phase 3: final sweep, guaranteeing no trivially removable vertex survives.
	for i := 0; i < size; i++ {
		ind.tryRemove(verts[i])
	}
}

// tryRemove removes target from the chain iff it is safe to do so:
// every adjacent source retains connectivity after removal, and target
// is not a cut vertex of the chain. Returns whether it removed target.
func (ind *CSCIndividual) tryRemove(target graphset.VId) bool {
	if !ind.reducer.isRemoveable(ind.connectivity, target) {
		return false
	}
	if graphutil.IsCutVertex(ind.reducer.view.TargetAdjGraph(), ind.chain, target) {
		return false
	}

	ind.reducer.removeVertex(ind.connectivity, target)
	ind.chain.Remove(target)

	return true
}

// randomMember returns a uniformly random member of s. s must be
// non-empty. Members are drawn from sorted order, so the choice depends
// only on rng and not on map iteration order.
func randomMember(rng *rand.Rand, s graphset.VSet) graphset.VId {
	members := s.Sorted()

	return members[rng.Intn(len(members))]
}
