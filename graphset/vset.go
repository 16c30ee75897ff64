package graphset

import "sort"

// VSet is an unordered set of VId. It is the representation used
// throughout this module for chains (super-vertices) and other vertex
// subsets. The zero value is a usable empty set only for reads; use
// NewVSet or make(VSet) before writing to it.
type VSet map[VId]struct{}

// NewVSet returns an empty VSet with capacity hint n.
func NewVSet(n int) VSet {
	return make(VSet, n)
}

// VSetOf returns a VSet containing exactly the given members.
func VSetOf(members ...VId) VSet {
	s := make(VSet, len(members))
	for _, m := range members {
		s[m] = struct{}{}
	}

	return s
}

// Add inserts v into the set.
func (s VSet) Add(v VId) { s[v] = struct{}{} }

// Remove deletes v from the set. No-op if absent.
func (s VSet) Remove(v VId) { delete(s, v) }

// Contains reports whether v is a member.
func (s VSet) Contains(v VId) bool {
	_, ok := s[v]

	return ok
}

// Clone returns an independent copy of s.
func (s VSet) Clone() VSet {
	out := make(VSet, len(s))
	for v := range s {
		out[v] = struct{}{}
	}

	return out
}

// Union mutates nothing; it returns a new VSet containing members of
// both s and other.
func (s VSet) Union(other VSet) VSet {
	out := make(VSet, len(s)+len(other))
	for v := range s {
		out[v] = struct{}{}
	}
	for v := range other {
		out[v] = struct{}{}
	}

	return out
}

// Sorted returns the members of s as a sorted slice.
func (s VSet) Sorted() []VId {
	out := make([]VId, 0, len(s))
	for v := range s {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}
