// Package minorembed computes minor embeddings of a source graph into
// a target hardware graph: a mapping from each source vertex to a
// connected, vertex-disjoint "chain" of target vertices such that every
// source edge is realized by a target edge between the two chains.
//
// The module does not construct embeddings from scratch — that is the
// job of an external min-cost-flow pipeline. What lives here is the
// Evolutionary Chain-Size Contraction (CSC) Reducer: given a vertex
// whose chain is already valid, it runs a small genetic local search
// that shrinks the chain while preserving feasibility.
//
// Subpackages:
//
//	graphset/   — concurrency-safe adjacency-multimap graph over VId
//	graphutil/  — cut-vertex detection and set-connectivity predicates
//	embedding/  — read-only EmbeddingView over a graphset-backed Embedding
//	csc/        — EvolutionaryCSCReducer and CSCIndividual
//
// None of this package performs I/O, parsing, or visualization; it is a
// pure in-memory library.
package minorembed
