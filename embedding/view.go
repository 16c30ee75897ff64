package embedding

import "github.com/embedlib/minorembed/graphset"

// View is the read-only capability set consumed by the csc package. All
// iteration is synchronous and the view must not change for the
// lifetime of a single reducer — any outer scheduler that mutates the
// underlying Embedding must quiesce all reducers first.
type View interface {
	// Mapping returns the (possibly empty) set of target vertices
	// currently assigned to source vertex s. The returned set is a
	// fresh copy; callers may mutate it freely.
	Mapping(s graphset.VId) graphset.VSet

	// ReverseMapping returns the set of source vertices whose chain
	// currently includes target vertex t. The returned set is a fresh
	// copy.
	ReverseMapping(t graphset.VId) graphset.VSet

	// RemainingTargets returns the set of target vertices with no
	// source mapped to them. The returned set is a fresh copy.
	RemainingTargets() graphset.VSet

	// IterateSourceAdjacent visits every G_s neighbor of s.
	IterateSourceAdjacent(s graphset.VId, f func(graphset.VId) bool)

	// IterateTargetAdjacent visits every G_t neighbor of t.
	IterateTargetAdjacent(t graphset.VId, f func(graphset.VId) bool)

	// IterateTargetAdjacentReverseMapping visits, for every G_t
	// neighbor t' of t, every source vertex s with t' in Mapping(s).
	// A source may be visited more than once if it owns more than one
	// neighbor of t.
	IterateTargetAdjacentReverseMapping(t graphset.VId, f func(graphset.VId) bool)

	// IterateFreeTargetAdjacent visits every G_t neighbor of t that is
	// currently unmapped (a member of RemainingTargets).
	IterateFreeTargetAdjacent(t graphset.VId, f func(graphset.VId) bool)

	// TargetAdjGraph returns the underlying target graph G_t.
	TargetAdjGraph() *graphset.Graph
}
