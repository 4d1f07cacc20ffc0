// Package dag builds the dependency graph over registry keys and resolves a
// dependency-respecting evaluation order for it.
//
// Nodes are registry keys. An edge a -> b exists when entry a's metadata
// references key b. A key that references itself forms a 1-cycle.
//
// ResolveOrder runs Kahn's algorithm with a min-heap ready set, so keys with
// no remaining ordering constraint come out in lexical order and the result
// is identical across runs. When no total order exists it fails with a
// circuserr CircularDependency error naming every key that sits in a cycle or
// depends on one, together with the cycles themselves.
package dag
