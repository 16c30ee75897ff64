package embedding

import (
	"errors"

	"github.com/embedlib/minorembed/graphset"
)

// Sentinel errors for Embedding construction and lookups.
var (
	// ErrSourceNotMapped indicates a query or a csc.Reducer precondition
	// was violated: the requested source vertex owns no target vertex.
	ErrSourceNotMapped = errors.New("embedding: source vertex has no mapping")
)

// Embedding is the concrete View implementation: a mapping/reverse-mapping
// multimap pair layered over a source graph G_s and a target graph G_t.
// Both multimaps use sets (not multisets) of target/source vertices per
// key, since a chain is an unordered set and overlap is modeled by a
// target appearing in more than one source's set, not by repeated
// membership within one set.
type Embedding struct {
	source *graphset.Graph
	target *graphset.Graph

	mapping        map[graphset.VId]graphset.VSet // source -> targets
	reverseMapping map[graphset.VId]graphset.VSet // target -> sources
}

// New returns an Embedding with no vertices mapped, backed by the given
// source and target graphs. Neither graph is copied; callers must not
// mutate them for the lifetime of any View consumer built on top.
func New(source, target *graphset.Graph) *Embedding {
	return &Embedding{
		source:         source,
		target:         target,
		mapping:        make(map[graphset.VId]graphset.VSet),
		reverseMapping: make(map[graphset.VId]graphset.VSet),
	}
}

// Assign places target vertex t into source vertex s's chain, updating
// both the forward and reverse multimaps. Assigning the same pair twice
// is a no-op.
func (e *Embedding) Assign(s, t graphset.VId) {
	if e.mapping[s] == nil {
		e.mapping[s] = graphset.NewVSet(1)
	}
	e.mapping[s].Add(t)

	if e.reverseMapping[t] == nil {
		e.reverseMapping[t] = graphset.NewVSet(1)
	}
	e.reverseMapping[t].Add(s)
}

// Unassign removes target vertex t from source vertex s's chain.
func (e *Embedding) Unassign(s, t graphset.VId) {
	if set, ok := e.mapping[s]; ok {
		set.Remove(t)
	}
	if set, ok := e.reverseMapping[t]; ok {
		set.Remove(s)
	}
}

// SetChain replaces source vertex s's chain wholesale, updating the
// reverse mapping for every target that leaves or joins the chain.
func (e *Embedding) SetChain(s graphset.VId, chain graphset.VSet) {
	for t := range e.mapping[s] {
		if !chain.Contains(t) {
			if set, ok := e.reverseMapping[t]; ok {
				set.Remove(s)
			}
		}
	}
	for t := range chain {
		if e.reverseMapping[t] == nil {
			e.reverseMapping[t] = graphset.NewVSet(1)
		}
		e.reverseMapping[t].Add(s)
	}
	e.mapping[s] = chain.Clone()
}

// Mapping implements View.
func (e *Embedding) Mapping(s graphset.VId) graphset.VSet {
	return e.mapping[s].Clone()
}

// ReverseMapping implements View.
func (e *Embedding) ReverseMapping(t graphset.VId) graphset.VSet {
	return e.reverseMapping[t].Clone()
}

// RemainingTargets implements View: every target vertex with an empty
// (or absent) reverse mapping.
func (e *Embedding) RemainingTargets() graphset.VSet {
	out := graphset.NewVSet(e.target.VertexCount())
	for _, v := range e.target.Vertices() {
		if len(e.reverseMapping[v]) == 0 {
			out.Add(v)
		}
	}

	return out
}

// IterateSourceAdjacent implements View.
func (e *Embedding) IterateSourceAdjacent(s graphset.VId, f func(graphset.VId) bool) {
	e.source.IterateNeighbors(s, f)
}

// IterateTargetAdjacent implements View.
func (e *Embedding) IterateTargetAdjacent(t graphset.VId, f func(graphset.VId) bool) {
	e.target.IterateNeighbors(t, f)
}

// IterateTargetAdjacentReverseMapping implements View.
func (e *Embedding) IterateTargetAdjacentReverseMapping(t graphset.VId, f func(graphset.VId) bool) {
	stop := false
	e.target.IterateNeighbors(t, func(tp graphset.VId) bool {
		for s := range e.reverseMapping[tp] {
			if !f(s) {
				stop = true

				return false
			}
		}

		return !stop
	})
}

// IterateFreeTargetAdjacent implements View.
func (e *Embedding) IterateFreeTargetAdjacent(t graphset.VId, f func(graphset.VId) bool) {
	e.target.IterateNeighbors(t, func(adj graphset.VId) bool {
		if len(e.reverseMapping[adj]) == 0 {
			return f(adj)
		}

		return true
	})
}

// TargetAdjGraph implements View.
func (e *Embedding) TargetAdjGraph() *graphset.Graph {
	return e.target
}
