package graphutil

import "github.com/embedlib/minorembed/graphset"

// AreSetsConnected reports whether some vertex of a is adjacent, in g,
// to some vertex of b. The smaller of the two sets is iterated to keep
// this close to O(min(|a|,|b|) * avg-degree) rather than always O(|a|*d).
//
// Complexity: O(min(|a|,|b|) * d) where d is average degree.
func AreSetsConnected(g *graphset.Graph, a, b graphset.VSet) bool {
	iterate, probe := a, b
	if len(b) < len(a) {
		iterate, probe = b, a
	}

	connected := false
	for u := range iterate {
		g.IterateNeighbors(u, func(adj graphset.VId) bool {
			if probe.Contains(adj) {
				connected = true

				return false
			}

			return true
		})
		if connected {
			return true
		}
	}

	return false
}

// OverlappingSets reports whether a and b share at least one member.
//
// Complexity: O(min(|a|,|b|)).
func OverlappingSets(a, b graphset.VSet) bool {
	iterate, probe := a, b
	if len(b) < len(a) {
		iterate, probe = b, a
	}
	for v := range iterate {
		if probe.Contains(v) {
			return true
		}
	}

	return false
}
