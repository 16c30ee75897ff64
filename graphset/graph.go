package graphset

import "sort"

// AddVertex inserts v into the graph if absent. Idempotent.
//
// Complexity: O(1).
func (g *Graph) AddVertex(v VId) {
	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.vertices[v]; ok {
		return
	}
	g.vertices[v] = struct{}{}
	g.adjacency[v] = make(map[VId]struct{})
}

// HasVertex reports whether v is present in the graph.
//
// Complexity: O(1).
func (g *Graph) HasVertex(v VId) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	_, ok := g.vertices[v]

	return ok
}

// AddEdge inserts an undirected edge between u and v, adding either
// endpoint that is not yet present. A self-loop (u == v) returns
// ErrSelfLoop and leaves the graph unchanged.
//
// Complexity: O(1) amortized.
func (g *Graph) AddEdge(u, v VId) error {
	if u == v {
		return ErrSelfLoop
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	if _, ok := g.vertices[u]; !ok {
		g.vertices[u] = struct{}{}
		g.adjacency[u] = make(map[VId]struct{})
	}
	if _, ok := g.vertices[v]; !ok {
		g.vertices[v] = struct{}{}
		g.adjacency[v] = make(map[VId]struct{})
	}
	g.adjacency[u][v] = struct{}{}
	g.adjacency[v][u] = struct{}{}

	return nil
}

// HasEdge reports whether an edge exists between u and v.
//
// Complexity: O(1).
func (g *Graph) HasEdge(u, v VId) bool {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[u]
	if !ok {
		return false
	}
	_, ok = nbrs[v]

	return ok
}

// Neighbors returns the sorted neighbor IDs of v, or ErrVertexNotFound
// if v is absent.
//
// Complexity: O(d log d).
func (g *Graph) Neighbors(v VId) ([]VId, error) {
	g.mu.RLock()
	defer g.mu.RUnlock()

	nbrs, ok := g.adjacency[v]
	if !ok {
		return nil, ErrVertexNotFound
	}

	out := make([]VId, 0, len(nbrs))
	for n := range nbrs {
		out = append(out, n)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out, nil
}

// IterateNeighbors calls f once for every neighbor of v, in sorted
// order, stopping early if f returns false. A missing vertex is
// treated as having no neighbors — callers that must distinguish
// "absent" from "isolated" should check HasVertex first.
//
// Complexity: O(d log d).
func (g *Graph) IterateNeighbors(v VId, f func(VId) bool) {
	nbrs, err := g.Neighbors(v)
	if err != nil {
		return
	}
	for _, n := range nbrs {
		if !f(n) {
			return
		}
	}
}

// VertexCount reports the number of vertices currently in the graph.
//
// Complexity: O(1).
func (g *Graph) VertexCount() int {
	g.mu.RLock()
	defer g.mu.RUnlock()

	return len(g.vertices)
}

// Vertices returns a sorted snapshot of all vertex IDs.
//
// Complexity: O(V log V).
func (g *Graph) Vertices() []VId {
	g.mu.RLock()
	defer g.mu.RUnlock()

	out := make([]VId, 0, len(g.vertices))
	for v := range g.vertices {
		out = append(out, v)
	}
	sort.Slice(out, func(i, j int) bool { return out[i] < out[j] })

	return out
}
