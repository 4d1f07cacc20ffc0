package dag

import "sort"

// cyclesLocked returns the strongly connected components that form cycles:
// components with more than one node, and single nodes with a self-loop.
// Callers must hold g.mutex.
func (g *Graph) cyclesLocked() [][]string {
	ids := make([]string, 0, len(g.nodes))
	for id := range g.nodes {
		ids = append(ids, id)
	}
	sort.Strings(ids)

	// Tarjan's algorithm, visiting nodes and edges in lexical order so the
	// result does not depend on map iteration.
	index := make(map[string]int, len(ids))
	lowlink := make(map[string]int, len(ids))
	onStack := make(map[string]bool, len(ids))
	var stack []string
	var cycles [][]string
	next := 0

	var strongConnect func(id string)
	strongConnect = func(id string) {
		index[id] = next
		lowlink[id] = next
		next++
		stack = append(stack, id)
		onStack[id] = true

		for _, depID := range sortedIDs(g.nodes[id].deps) {
			if _, seen := index[depID]; !seen {
				strongConnect(depID)
				lowlink[id] = min(lowlink[id], lowlink[depID])
			} else if onStack[depID] {
				lowlink[id] = min(lowlink[id], index[depID])
			}
		}

		if lowlink[id] != index[id] {
			return
		}

		var component []string
		for {
			top := stack[len(stack)-1]
			stack = stack[:len(stack)-1]
			onStack[top] = false
			component = append(component, top)
			if top == id {
				break
			}
		}

		_, selfLoop := g.nodes[id].deps[id]
		if len(component) > 1 || selfLoop {
			sort.Strings(component)
			cycles = append(cycles, component)
		}
	}

	for _, id := range ids {
		if _, seen := index[id]; !seen {
			strongConnect(id)
		}
	}

	sort.Slice(cycles, func(i, j int) bool { return cycles[i][0] < cycles[j][0] })
	return cycles
}
