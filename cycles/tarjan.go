package cycles

import (
	"sort"

	"github.com/depscope/depscope/depgraph"
)

// Component is a strongly connected component: a maximal set of nodes mutually
// reachable from one another. Acyclic nodes form trivial singleton components.
type Component struct {
	Nodes []string
	Size  int

	// CycleComplexity counts edges crossing the component boundary (edges
	// entering or leaving the component). Only populated for multi-node
	// components; it measures how entangled the component is with the rest
	// of the graph.
	CycleComplexity int
}

// adjacency is a compact integer-indexed view of a graph snapshot. The
// detector never touches the source graph after building one.
type adjacency struct {
	nodes []string
	index map[string]int
	out   [][]int
	self  []bool
}

func newAdjacency(g *depgraph.Graph) *adjacency {
	snapshot := g.Snapshot()

	a := &adjacency{
		nodes: snapshot.Nodes,
		index: make(map[string]int, len(snapshot.Nodes)),
		out:   make([][]int, len(snapshot.Nodes)),
		self:  make([]bool, len(snapshot.Nodes)),
	}
	for i, node := range snapshot.Nodes {
		a.index[node] = i
	}
	for _, edge := range snapshot.Edges {
		from := a.index[edge.From]
		to := a.index[edge.To]
		if from == to {
			a.self[from] = true
		}
		a.out[from] = append(a.out[from], to)
	}
	return a
}

// FindStronglyConnectedComponents runs Tarjan's algorithm over a snapshot of
// the graph. The search is iterative with an explicit frame stack so deep
// graphs cannot exhaust the call stack.
func FindStronglyConnectedComponents(g *depgraph.Graph) []Component {
	a := newAdjacency(g)
	componentSets := a.stronglyConnected()

	componentOf := make([]int, len(a.nodes))
	for compID, members := range componentSets {
		for _, v := range members {
			componentOf[v] = compID
		}
	}

	boundary := make([]int, len(componentSets))
	for v := range a.nodes {
		for _, w := range a.out[v] {
			if componentOf[v] != componentOf[w] {
				boundary[componentOf[v]]++
				boundary[componentOf[w]]++
			}
		}
	}

	components := make([]Component, 0, len(componentSets))
	for compID, members := range componentSets {
		nodes := make([]string, 0, len(members))
		for _, v := range members {
			nodes = append(nodes, a.nodes[v])
		}
		sort.Strings(nodes)

		c := Component{Nodes: nodes, Size: len(nodes)}
		if c.Size > 1 {
			c.CycleComplexity = boundary[compID]
		}
		components = append(components, c)
	}

	sort.Slice(components, func(i, j int) bool {
		return components[i].Nodes[0] < components[j].Nodes[0]
	})
	return components
}

type tarjanFrame struct {
	v    int
	next int
}

// stronglyConnected returns each component as a slice of node indices.
func (a *adjacency) stronglyConnected() [][]int {
	const unvisited = -1

	index := make([]int, len(a.nodes))
	lowLink := make([]int, len(a.nodes))
	onStack := make([]bool, len(a.nodes))
	for i := range index {
		index[i] = unvisited
	}

	counter := 0
	var stack []int
	var frames []tarjanFrame
	var components [][]int

	for root := range a.nodes {
		if index[root] != unvisited {
			continue
		}

		frames = append(frames[:0], tarjanFrame{v: root})
		for len(frames) > 0 {
			f := &frames[len(frames)-1]
			v := f.v

			if f.next == 0 {
				index[v] = counter
				lowLink[v] = counter
				counter++
				stack = append(stack, v)
				onStack[v] = true
			}

			advanced := false
			for f.next < len(a.out[v]) {
				w := a.out[v][f.next]
				f.next++

				if index[w] == unvisited {
					frames = append(frames, tarjanFrame{v: w})
					advanced = true
					break
				}
				if onStack[w] && index[w] < lowLink[v] {
					lowLink[v] = index[w]
				}
			}
			if advanced {
				continue
			}

			// All successors explored: close the frame.
			frames = frames[:len(frames)-1]
			if len(frames) > 0 {
				parent := frames[len(frames)-1].v
				if lowLink[v] < lowLink[parent] {
					lowLink[parent] = lowLink[v]
				}
			}

			if lowLink[v] != index[v] {
				continue
			}

			var component []int
			for {
				w := stack[len(stack)-1]
				stack = stack[:len(stack)-1]
				onStack[w] = false
				component = append(component, w)
				if w == v {
					break
				}
			}
			components = append(components, component)
		}
	}

	return components
}
