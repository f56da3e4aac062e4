package depgraph

import "sort"

// TopoSortResult is the outcome of a topological sort.
//
// SortedFiles orders every node before every node it depends on
// (depender-before-dependency). When the graph has a cycle, HasCycle is true
// and CycleFiles holds the nodes the sort could not cover.
type TopoSortResult struct {
	SortedFiles []string
	HasCycle    bool
	CycleFiles  []string
}

// TopologicalSort runs Kahn's algorithm where a node's in-degree is its
// dependent count. Nodes nothing depends on seed the queue; emitting a node
// decrements the in-degree of each of its dependencies.
//
// The depender-first ordering is a contract downstream consumers rely on:
// for every edge (from, to), index(from) < index(to). It is deliberately the
// reverse of conventional build order.
func (g *Graph) TopologicalSort() TopoSortResult {
	inDegree := make(map[int]int, len(g.ids))
	var queue []int

	for _, id := range g.ids {
		inDegree[id] = len(g.in[id])
		if inDegree[id] == 0 {
			queue = append(queue, id)
		}
	}

	// Deterministic seeding keeps equal-rank nodes in path order.
	sort.Slice(queue, func(i, j int) bool {
		return g.paths[queue[i]] < g.paths[queue[j]]
	})

	sorted := make([]string, 0, len(g.ids))
	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]
		sorted = append(sorted, g.paths[current])

		targets := g.sortedPaths(idSetKeys(g.out[current]))
		for _, target := range targets {
			targetID := g.ids[target]
			inDegree[targetID]--
			if inDegree[targetID] == 0 {
				queue = append(queue, targetID)
			}
		}
	}

	if len(sorted) == len(g.ids) {
		return TopoSortResult{SortedFiles: sorted}
	}

	covered := make(map[string]bool, len(sorted))
	for _, path := range sorted {
		covered[path] = true
	}

	var cycleFiles []string
	for path := range g.ids {
		if !covered[path] {
			cycleFiles = append(cycleFiles, path)
		}
	}
	sort.Strings(cycleFiles)

	return TopoSortResult{
		SortedFiles: sorted,
		HasCycle:    true,
		CycleFiles:  cycleFiles,
	}
}
