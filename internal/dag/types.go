package dag

import "sync"

// Graph is the dependency graph over registry keys. An edge a -> b records
// that entry a's metadata references key b, so b must be evaluated first.
// All operations on the graph are concurrency-safe.
type Graph struct {
	// mutex protects the nodes map during concurrent access.
	mutex sync.RWMutex
	// nodes stores all nodes in the graph, keyed by registry key.
	nodes map[string]*node
}

// node represents a single vertex in the graph. It is un-exported to
// enforce interaction with the graph via the public API (using string keys),
// not by direct struct manipulation.
type node struct {
	id string
	// deps holds the keys this node references (its dependencies).
	deps map[string]*node
	// dependents holds the nodes that reference this node.
	dependents map[string]*node
}

// Edge is a single dependency: From references To.
type Edge struct {
	From string
	To   string
}
