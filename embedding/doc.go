// Package embedding models a minor embedding as it exists mid-optimization:
// a multimap from source vertices to target vertices (and its reverse),
// layered over two graphset.Graph instances for G_s and G_t.
//
// View is the read-only capability set the csc package consumes. It is
// kept as an interface — rather than exposing *Embedding directly — so
// the reducer's contract does not depend on how an embedding is stored;
// a future caller (e.g. the out-of-scope EmbeddingSuite) can supply any
// type satisfying View.
package embedding
