package csc

import (
	"fmt"
	"math/rand"
	"sort"

	"github.com/embedlib/minorembed/embedding"
	"github.com/embedlib/minorembed/graphset"
)

// Reducer is the Evolutionary CSC Reducer: given a View and a source
// vertex that already owns a valid chain, Optimize searches for a
// smaller-or-equal-cost replacement chain without ever breaking
// connectivity or coverage of the source's embedded neighbors.
//
// A Reducer is built once per source vertex and discarded after one
// call to Optimize; nothing it owns is shared with any other Reducer.
type Reducer struct {
	view         embedding.View
	sourceVertex graphset.VId
	cfg          Config

	// adjacentSourceVertices is A_s: source-graph neighbors of
	// sourceVertex that currently own a chain. Fixed for the
	// reducer's lifetime.
	adjacentSourceVertices graphset.VSet

	// adjacentSources is the lazily populated adjacency cache: target
	// vertex -> set of adjacent sources (members of A_s) whose chain
	// touches a G_t-neighbor of that target. Monotonically grows.
	adjacentSources  map[graphset.VId]graphset.VSet
	preparedVertices graphset.VSet

	// vertexFitness is the overlap-cost model, fixed at construction:
	// vertexFitness[t] = max(0, reverseMapping.count(t)-1).
	vertexFitness map[graphset.VId]int

	// remaining is a one-time snapshot of the view's remaining target
	// vertices; the view is immutable for the reducer's lifetime, so
	// this does not need to be recomputed per generation.
	remaining graphset.VSet

	bestChain   graphset.VSet
	bestFitness int

	seedChain   graphset.VSet
	seedFitness int

	expansionPossible bool

	popA, popB []*CSCIndividual
	rng        *rand.Rand
}

// New constructs a Reducer for sourceVertex against view. sourceVertex
// must already own at least one target vertex in view's mapping; an
// unmapped source vertex returns a wrapped embedding.ErrSourceNotMapped
// rather than panicking.
//
// If no expansion is currently possible (every target of sourceVertex's
// chain is fully surrounded by occupied targets), Optimize becomes a
// documented no-op and Improved() will report false; this is not an
// error.
func New(view embedding.View, sourceVertex graphset.VId, opts ...Option) (*Reducer, error) {
	cfg := DefaultConfig()
	for _, opt := range opts {
		opt(&cfg)
	}

	seed := view.Mapping(sourceVertex)
	if len(seed) == 0 {
		return nil, fmt.Errorf("csc: New(%v): %w", sourceVertex, embedding.ErrSourceNotMapped)
	}

	r := &Reducer{
		view:             view,
		sourceVertex:     sourceVertex,
		cfg:              cfg,
		adjacentSources:  make(map[graphset.VId]graphset.VSet),
		preparedVertices: graphset.NewVSet(len(seed)),
		vertexFitness:    make(map[graphset.VId]int, len(seed)),
		bestChain:        seed.Clone(),
		seedChain:        seed.Clone(),
	}

	for t := range r.bestChain {
		count := len(view.ReverseMapping(t))
		fitness := count - 1
		if fitness < 0 {
			fitness = 0 // guards the "t currently unmapped" underflow case
		}
		r.vertexFitness[t] = fitness
	}

	r.adjacentSourceVertices = graphset.NewVSet(8)
	view.IterateSourceAdjacent(sourceVertex, func(adjSource graphset.VId) bool {
		if len(view.Mapping(adjSource)) > 0 {
			r.adjacentSourceVertices.Add(adjSource)
		}

		return true
	})

	for t := range r.bestChain {
		r.prepareVertex(t)
	}

	r.bestFitness = r.fitnessOf(r.bestChain)
	r.seedFitness = r.bestFitness

	r.remaining = view.RemainingTargets()
	r.expansionPossible = r.canExpand()
	if !r.expansionPossible {
		return r, nil
	}

	baseSeed := normalizeSeed(cfg.Seed)
	r.rng = deriveRNG(baseSeed, uint64(cfg.PopulationSize))

	r.popA = make([]*CSCIndividual, cfg.PopulationSize)
	r.popB = make([]*CSCIndividual, cfg.PopulationSize)
	for i := 0; i < cfg.PopulationSize; i++ {
		r.popA[i] = &CSCIndividual{}
		r.popA[i].initialize(r, sourceVertex, deriveRNG(baseSeed, uint64(i)))
		r.popB[i] = &CSCIndividual{}
		r.popB[i].initialize(r, sourceVertex, deriveRNG(baseSeed, uint64(cfg.PopulationSize)+uint64(i)+1))
	}
	for _, ind := range r.popA {
		ind.fromInitial(r.bestChain)
	}

	return r, nil
}

// canExpand reports whether some target vertex of sourceVertex's
// current chain has a G_t-neighbor among the remaining (unmapped)
// target vertices.
func (r *Reducer) canExpand() bool {
	found := false
	for t := range r.bestChain {
		r.view.IterateTargetAdjacent(t, func(adj graphset.VId) bool {
			if r.remaining.Contains(adj) {
				found = true
			}

			return !found
		})
		if found {
			return true
		}
	}

	return false
}

// Optimize runs the full evolutionary search: ITERATION_LIMIT
// generations of evaluate-sort-adopt-reproduce. It is a no-op if
// construction found no possible expansion.
func (r *Reducer) Optimize() {
	if !r.expansionPossible {
		return
	}

	current, next := r.popA, r.popB
	for i := 0; i < r.cfg.IterationLimit; i++ {
		if r.cfg.Ctx != nil && r.cfg.Ctx.Err() != nil {
			return
		}

		r.optimizeIteration(current)

		if i+1 == r.cfg.IterationLimit {
			break
		}
		if !r.createNextGeneration(current, next) {
			break
		}
		current, next = next, current
	}
}

// optimizeIteration evaluates every individual in pop, sorts it by
// (fitness, size), and adopts the winner as the new bestChain only if it
// is strictly better under the (fitness, size) lexicographic order.
func (r *Reducer) optimizeIteration(pop []*CSCIndividual) {
	for _, ind := range pop {
		ind.optimize()
	}

	sort.Slice(pop, func(i, j int) bool { return pop[i].less(pop[j]) })

	winner := pop[0]
	if winner.fitness < r.bestFitness ||
		(winner.fitness == r.bestFitness && len(winner.chain) < len(r.bestChain)) {
		r.bestFitness = winner.fitness
		r.bestChain = winner.chain.Clone()
	}
}

// createNextGeneration fills children from parents: the top EliteCount
// parents are re-seeded into the first EliteCount slots, and the rest
// are filled by tournament-selected crossover, within a fixed attempt
// budget. It returns whether every slot was filled.
func (r *Reducer) createNextGeneration(parents, children []*CSCIndividual) bool {
	elite := r.cfg.EliteCount
	if elite > len(parents) {
		elite = len(parents)
	}
	for i := 0; i < elite; i++ {
		children[i].fromInitial(parents[i].chain)
	}

	idx := elite
	attempts := r.cfg.TournamentAttemptMultiplier * r.cfg.PopulationSize
	for idx < r.cfg.PopulationSize && attempts > 0 {
		a := r.tournamentSelection(parents)
		b := r.tournamentSelection(parents)
		if children[idx].fromCrossover(a, b) {
			idx++
		}
		attempts--
	}

	return idx == r.cfg.PopulationSize
}

// tournamentSelection returns the better (lower (fitness, size)) of two
// uniformly random parents.
func (r *Reducer) tournamentSelection(parents []*CSCIndividual) *CSCIndividual {
	a := parents[r.rng.Intn(len(parents))]
	b := parents[r.rng.Intn(len(parents))]
	if a.less(b) {
		return a
	}

	return b
}

// prepareVertex populates the adjacency cache for t: every member of
// A_s whose chain touches a G_t-neighbor of t. Idempotent.
func (r *Reducer) prepareVertex(t graphset.VId) {
	if r.preparedVertices.Contains(t) {
		return
	}
	r.preparedVertices.Add(t)

	r.view.IterateTargetAdjacentReverseMapping(t, func(adjSource graphset.VId) bool {
		if r.adjacentSourceVertices.Contains(adjSource) {
			if r.adjacentSources[t] == nil {
				r.adjacentSources[t] = graphset.NewVSet(1)
			}
			r.adjacentSources[t].Add(adjSource)
		}

		return true
	})
}

// addConnectivity increments connectivity[s] for every adjacent source
// s cached against t, preparing t first if necessary.
func (r *Reducer) addConnectivity(connectivity map[graphset.VId]int, t graphset.VId) {
	r.prepareVertex(t)
	for s := range r.adjacentSources[t] {
		connectivity[s]++
	}
}

// removeVertex decrements connectivity[s] for every adjacent source
// cached against t.
func (r *Reducer) removeVertex(connectivity map[graphset.VId]int, t graphset.VId) {
	for s := range r.adjacentSources[t] {
		connectivity[s]--
	}
}

// isRemoveable reports whether every adjacent source cached against t
// would retain connectivity >= 2 if t were removed (i.e. >= 1 after
// removal).
func (r *Reducer) isRemoveable(connectivity map[graphset.VId]int, t graphset.VId) bool {
	for s := range r.adjacentSources[t] {
		if connectivity[s] < 2 {
			return false
		}
	}

	return true
}

// fitnessOf sums vertexFitness over every member of chain.
func (r *Reducer) fitnessOf(chain graphset.VSet) int {
	total := 0
	for t := range chain {
		total += r.vertexFitness[t]
	}

	return total
}

// fitnessOfVertex returns the overlap cost of a single target vertex,
// or 0 if it was never part of the seed chain (never assigned a
// fitness value).
func (r *Reducer) fitnessOfVertex(t graphset.VId) int {
	return r.vertexFitness[t]
}

// BestChain returns a copy of the best chain found so far. Equals the
// seed chain if Optimize never improved on it.
func (r *Reducer) BestChain() graphset.VSet {
	return r.bestChain.Clone()
}

// BestFitness returns the fitness of BestChain.
func (r *Reducer) BestFitness() int {
	return r.bestFitness
}

// Improved reports whether BestChain differs from the seed chain
// supplied at construction.
func (r *Reducer) Improved() bool {
	return !graphset.Equal(r.bestChain, r.seedChain)
}
