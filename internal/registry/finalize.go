package registry

import (
	"context"
	"fmt"

	"github.com/vk/pvcircus/internal/circuserr"
	"github.com/vk/pvcircus/internal/ctxlog"
	"github.com/vk/pvcircus/internal/dag"
)

// Finalized is the read-only view of a registry whose dependency graph has
// been built and whose evaluation order has been resolved. It is safe for
// concurrent use.
type Finalized struct {
	entries map[string]Entry
	keys    []string
	order   []string
	levels  [][]string
	graph   *dag.Graph
}

// Finalize builds the dependency graph, resolves the evaluation order, and
// freezes the registry. A CircularDependency failure leaves the registry
// unfinalized; nothing is repaired. Calling Finalize again after success
// returns the same view.
func (r *Registry) Finalize(ctx context.Context) (*Finalized, error) {
	logger := ctxlog.FromContext(ctx)

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.finalized != nil {
		return r.finalized, nil
	}

	refs := make(map[string][]string, len(r.entries))
	for key, e := range r.entries {
		refs[key] = e.MetaKeys()
	}

	graph, err := dag.Build(ctx, refs)
	if err != nil {
		return nil, fmt.Errorf("building dependency graph: %w", err)
	}

	order, err := graph.ResolveOrder(ctx)
	if err != nil {
		return nil, err
	}
	levels, err := graph.Levels(ctx)
	if err != nil {
		return nil, err
	}

	entries := make(map[string]Entry, len(r.entries))
	for k, e := range r.entries {
		entries[k] = e.clone()
	}

	r.finalized = &Finalized{
		entries: entries,
		keys:    sortedKeys(entries),
		order:   order,
		levels:  levels,
		graph:   graph,
	}
	r.state = StateFinalized
	logger.Debug("Registry finalized.", "entries", len(entries))
	return r.finalized, nil
}

// Get returns the entry for key, or a KeyNotFound error.
func (f *Finalized) Get(key string) (Entry, error) {
	e, ok := f.entries[key]
	if !ok {
		return Entry{}, circuserr.KeyNotFound(key)
	}
	return e.clone(), nil
}

// Keys returns every key in lexical order.
func (f *Finalized) Keys() []string {
	return append([]string(nil), f.keys...)
}

// Order returns the evaluation order: every key after all of its dependencies.
func (f *Finalized) Order() []string {
	return append([]string(nil), f.order...)
}

// Len returns the number of entries.
func (f *Finalized) Len() int {
	return len(f.entries)
}

// Graph returns a copy of the dependency graph; changes to it do not reach
// the finalized view.
func (f *Finalized) Graph() *dag.Graph {
	return f.graph.Clone()
}

// Levels groups the evaluation order by dependency depth.
func (f *Finalized) Levels() [][]string {
	out := make([][]string, len(f.levels))
	for i, level := range f.levels {
		out[i] = append([]string(nil), level...)
	}
	return out
}
