// Package graphset provides a small, concurrency-safe adjacency-multimap
// graph keyed by VId, used to represent both the source graph G_s and the
// target hardware graph G_t consumed by the embedding and csc packages.
//
// Graph is undirected-only and loop-free by construction — minor-embedding
// source and target graphs have no use for directedness or self-loops —
// and is safe for concurrent readers once built. Mutation methods take a
// write lock; every query takes a read lock. A Graph is typically built
// once (from a generator or a parsed topology, both out of this module's
// scope) and then shared read-only across many concurrent CSC reducers.
//
// Complexity:
//
//	AddVertex/AddEdge: O(1) amortized.
//	Neighbors/IterateNeighbors: O(d log d) where d is the vertex's degree.
package graphset
