package graphutil

import "github.com/embedlib/minorembed/graphset"

// IsCutVertex reports whether removing v from the induced subgraph
// g[S] disconnects it. By convention a set of size 0 or 1 has no cut
// vertex: there is nothing left to disconnect.
//
// Implementation: pick any vertex of S other than v as a DFS root,
// walk g restricted to S\{v} with an explicit stack, and compare the
// number of vertices reached against |S|-1. v itself is never pushed
// onto the stack, so it takes no part in the reachability count.
//
// Complexity: O(|S| + sum of degrees of S in g).
func IsCutVertex(g *graphset.Graph, s graphset.VSet, v graphset.VId) bool {
	if len(s) <= 1 {
		return false
	}

	var root graphset.VId
	found := false
	for u := range s {
		if u != v {
			root = u
			found = true
			break
		}
	}
	if !found {
		// s has exactly one member and it is v; nothing to disconnect.
		return false
	}

	visited := graphset.NewVSet(len(s))
	visited.Add(root)
	stack := []graphset.VId{root}

	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		g.IterateNeighbors(top, func(adj graphset.VId) bool {
			if adj == v || !s.Contains(adj) || visited.Contains(adj) {
				return true
			}
			visited.Add(adj)
			stack = append(stack, adj)

			return true
		})
	}

	// s minus v should all be reachable from root.
	return len(visited) != len(s)-1
}
