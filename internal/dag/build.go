package dag

import (
	"context"
	"fmt"
	"sort"

	"github.com/vk/pvcircus/internal/ctxlog"
)

// Build constructs the dependency graph from a key -> referenced-keys map.
// Every referenced key must itself be a key of refs; the registry guarantees
// this before it calls Build. The input is not modified.
func Build(ctx context.Context, refs map[string][]string) (*Graph, error) {
	logger := ctxlog.FromContext(ctx)
	logger.Debug("Build: Starting graph construction.", "node_count", len(refs))
	graph := New()

	keys := make([]string, 0, len(refs))
	for key := range refs {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	// First pass: one node per key.
	for _, key := range keys {
		graph.AddNode(key)
	}

	// Second pass: one edge per meta reference.
	edgeCount := 0
	for _, key := range keys {
		for _, ref := range refs[key] {
			if err := graph.AddEdge(key, ref); err != nil {
				return nil, fmt.Errorf("linking %q: %w", key, err)
			}
			edgeCount++
		}
	}
	logger.Debug("Build: Graph construction complete.", "node_count", len(keys), "edge_count", edgeCount)

	return graph, nil
}
