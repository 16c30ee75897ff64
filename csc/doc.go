// Package csc implements the Evolutionary Chain-Size Contraction Reducer:
// a mutate/reduce genetic local search that shrinks one source vertex's
// chain in an already-valid minor embedding, without ever breaking
// feasibility (connectivity of the chain, or coverage of the source's
// embedded neighbors).
//
// Reducer is constructed once per source vertex via New, runs its full
// search in one call to Optimize, and is then discarded; it keeps no
// state useful beyond BestChain/BestFitness/Improved. A Reducer never
// mutates the embedding.View it was built from — an outer scheduler
// (out of scope here) is responsible for writing BestChain back and for
// not running two reducers over overlapping chains concurrently.
package csc
