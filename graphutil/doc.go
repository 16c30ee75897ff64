// Package graphutil provides the small set of graph predicates the CSC
// reducer needs over a target graphset.Graph: cut-vertex detection and
// two flavors of set connectivity. None of it mutates its inputs.
//
// IsCutVertex uses an explicit-stack iterative depth-first search
// rather than recursion, matching the module's general preference for
// bounded, non-recursive traversal inside hot loops (see csc.mutate,
// which grows a chain with the same iterative-stack technique).
package graphutil
