package depgraph

import "sort"

// TransitiveDependencies returns every node reachable from path by following
// dependency edges, excluding path itself unless it sits on a cycle back to
// itself. The walk is an iterative depth-first search with a visited set, so
// it terminates on cyclic graphs.
func (g *Graph) TransitiveDependencies(path string) []string {
	return g.transitiveClosure(path, func(id int) map[int]struct{} {
		targets := make(map[int]struct{}, len(g.out[id]))
		for to := range g.out[id] {
			targets[to] = struct{}{}
		}
		return targets
	})
}

// TransitiveDependents returns every node that transitively depends on path.
func (g *Graph) TransitiveDependents(path string) []string {
	return g.transitiveClosure(path, func(id int) map[int]struct{} {
		return g.in[id]
	})
}

func (g *Graph) transitiveClosure(path string, neighbors func(int) map[int]struct{}) []string {
	start, ok := g.ids[path]
	if !ok {
		return nil
	}

	visited := make(map[int]bool)
	stack := []int{start}
	var result []string

	for len(stack) > 0 {
		current := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		for next := range neighbors(current) {
			if visited[next] {
				continue
			}
			visited[next] = true
			result = append(result, g.paths[next])
			stack = append(stack, next)
		}
	}

	sort.Strings(result)
	return result
}

// IsConnected reports whether the graph is weakly connected: every node is
// reachable from every other when edge direction is ignored. An empty graph
// and a single-node graph are both connected.
func (g *Graph) IsConnected() bool {
	if len(g.ids) <= 1 {
		return true
	}

	var start int
	for _, id := range g.ids {
		start = id
		break
	}

	visited := map[int]bool{start: true}
	queue := []int{start}

	for len(queue) > 0 {
		current := queue[0]
		queue = queue[1:]

		for to := range g.out[current] {
			if !visited[to] {
				visited[to] = true
				queue = append(queue, to)
			}
		}
		for from := range g.in[current] {
			if !visited[from] {
				visited[from] = true
				queue = append(queue, from)
			}
		}
	}

	return len(visited) == len(g.ids)
}
