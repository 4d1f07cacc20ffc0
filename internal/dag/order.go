package dag

import (
	"container/heap"
	"context"
	"sort"

	"github.com/vk/pvcircus/internal/circuserr"
	"github.com/vk/pvcircus/internal/ctxlog"
)

// keyHeap is a min-heap of keys; it makes the ready set pop in lexical order.
type keyHeap []string

func (h keyHeap) Len() int           { return len(h) }
func (h keyHeap) Less(i, j int) bool { return h[i] < h[j] }
func (h keyHeap) Swap(i, j int)      { h[i], h[j] = h[j], h[i] }
func (h *keyHeap) Push(x any)        { *h = append(*h, x.(string)) }
func (h *keyHeap) Pop() any {
	old := *h
	n := len(old)
	x := old[n-1]
	*h = old[:n-1]
	return x
}

// ResolveOrder returns every key such that each key appears after all of the
// keys it depends on. Ties are broken lexically.
func (g *Graph) ResolveOrder(ctx context.Context) ([]string, error) {
	logger := ctxlog.FromContext(ctx)

	order, err := g.resolve()
	if err != nil {
		logger.Debug("ResolveOrder: graph is not acyclic.", "error", err)
		return nil, err
	}
	logger.Debug("ResolveOrder: order resolved.", "node_count", len(order))
	return order, nil
}

// Levels groups the resolved order by dependency depth. Level 0 holds keys
// with no dependencies; a key's level is one more than its deepest dependency.
func (g *Graph) Levels(ctx context.Context) ([][]string, error) {
	order, err := g.ResolveOrder(ctx)
	if err != nil {
		return nil, err
	}

	g.mutex.RLock()
	defer g.mutex.RUnlock()

	depth := make(map[string]int, len(order))
	var levels [][]string
	for _, id := range order {
		d := 0
		for depID := range g.nodes[id].deps {
			if depth[depID]+1 > d {
				d = depth[depID] + 1
			}
		}
		depth[id] = d
		for len(levels) <= d {
			levels = append(levels, nil)
		}
		levels[d] = append(levels[d], id)
	}
	for _, level := range levels {
		sort.Strings(level)
	}
	return levels, nil
}

// resolve is Kahn's algorithm over the dependency counts.
func (g *Graph) resolve() ([]string, error) {
	g.mutex.RLock()
	defer g.mutex.RUnlock()

	remaining := make(map[string]int, len(g.nodes))
	ready := &keyHeap{}
	for id, n := range g.nodes {
		remaining[id] = len(n.deps)
		if len(n.deps) == 0 {
			*ready = append(*ready, id)
		}
	}
	heap.Init(ready)

	order := make([]string, 0, len(g.nodes))
	for ready.Len() > 0 {
		id := heap.Pop(ready).(string)
		order = append(order, id)
		for depID := range g.nodes[id].dependents {
			remaining[depID]--
			if remaining[depID] == 0 {
				heap.Push(ready, depID)
			}
		}
	}

	if len(order) == len(g.nodes) {
		return order, nil
	}

	// Every node still holding a dependency is either on a cycle or
	// downstream of one.
	blocked := make([]string, 0, len(g.nodes)-len(order))
	for id, count := range remaining {
		if count > 0 {
			blocked = append(blocked, id)
		}
	}
	return nil, circuserr.CircularDependency(blocked, g.cyclesLocked())
}
