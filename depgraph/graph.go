package depgraph

import "sort"

// EdgeKind classifies how a dependency was expressed in source.
type EdgeKind string

const (
	KindImport  EdgeKind = "import"
	KindRequire EdgeKind = "require"
	KindInclude EdgeKind = "include"
)

type edgeProps struct {
	weight int
	kind   EdgeKind
}

// Graph is a directed dependency graph over file-path identities.
// Paths are interned to integer ids; adjacency is kept in both directions
// so dependents can be answered without scanning every node.
//
// Edges read "depender -> dependency": an edge from A to B means A imports B.
// Duplicate edges between the same ordered pair collapse to one.
type Graph struct {
	ids   map[string]int
	paths []string
	free  []int

	out []map[int]edgeProps
	in  []map[int]struct{}

	edgeCount int
}

// NewGraph creates an empty dependency graph.
func NewGraph() *Graph {
	return &Graph{
		ids: make(map[string]int),
	}
}

// intern returns the id for path, allocating a node slot if needed.
func (g *Graph) intern(path string) int {
	if id, ok := g.ids[path]; ok {
		return id
	}

	var id int
	if n := len(g.free); n > 0 {
		id = g.free[n-1]
		g.free = g.free[:n-1]
		g.paths[id] = path
		g.out[id] = make(map[int]edgeProps)
		g.in[id] = make(map[int]struct{})
	} else {
		id = len(g.paths)
		g.paths = append(g.paths, path)
		g.out = append(g.out, make(map[int]edgeProps))
		g.in = append(g.in, make(map[int]struct{}))
	}

	g.ids[path] = id
	return id
}

// AddNode ensures a node exists for path. Adding an existing node is a no-op.
func (g *Graph) AddNode(path string) {
	g.intern(path)
}

// RemoveNode deletes a node and every edge touching it in either direction.
// Removing an unknown node is a no-op.
func (g *Graph) RemoveNode(path string) {
	id, ok := g.ids[path]
	if !ok {
		return
	}

	for to := range g.out[id] {
		delete(g.in[to], id)
		g.edgeCount--
	}
	for from := range g.in[id] {
		// A self-loop was already removed through the out set above.
		if from == id {
			continue
		}
		delete(g.out[from], id)
		g.edgeCount--
	}

	delete(g.ids, path)
	g.paths[id] = ""
	g.out[id] = nil
	g.in[id] = nil
	g.free = append(g.free, id)
}

// AddDependency records that from depends on to, auto-creating missing
// nodes. Adding an existing edge is a no-op (set semantics).
func (g *Graph) AddDependency(from, to string) {
	g.AddDependencyKind(from, to, KindImport)
}

// AddDependencyKind is AddDependency with an explicit dependency kind.
func (g *Graph) AddDependencyKind(from, to string, kind EdgeKind) {
	fromID := g.intern(from)
	toID := g.intern(to)

	if _, exists := g.out[fromID][toID]; exists {
		return
	}

	g.out[fromID][toID] = edgeProps{weight: 1, kind: kind}
	g.in[toID][fromID] = struct{}{}
	g.edgeCount++
}

// RemoveDependency deletes the edge from -> to if it exists.
func (g *Graph) RemoveDependency(from, to string) {
	fromID, ok := g.ids[from]
	if !ok {
		return
	}
	toID, ok := g.ids[to]
	if !ok {
		return
	}
	if _, exists := g.out[fromID][toID]; !exists {
		return
	}

	delete(g.out[fromID], toID)
	delete(g.in[toID], fromID)
	g.edgeCount--
}

// SetDependencies replaces the entire outgoing edge set of from with the
// given dependency list. This is the re-analysis primitive: the node's edges
// always mirror the most recently analyzed version of the file.
func (g *Graph) SetDependencies(from string, deps []string) {
	g.ClearDependencies(from)
	for _, dep := range deps {
		g.AddDependency(from, dep)
	}
}

// ClearDependencies removes every outgoing edge of from, auto-creating the
// node if missing. Incoming edges are untouched.
func (g *Graph) ClearDependencies(from string) {
	fromID := g.intern(from)
	for to := range g.out[fromID] {
		delete(g.in[to], fromID)
		delete(g.out[fromID], to)
		g.edgeCount--
	}
}

// HasNode reports whether path is a node in the graph.
func (g *Graph) HasNode(path string) bool {
	_, ok := g.ids[path]
	return ok
}

// HasDependency reports whether the edge from -> to exists.
func (g *Graph) HasDependency(from, to string) bool {
	fromID, ok := g.ids[from]
	if !ok {
		return false
	}
	toID, ok := g.ids[to]
	if !ok {
		return false
	}
	_, exists := g.out[fromID][toID]
	return exists
}

// Dependencies returns the direct dependencies of path, sorted.
func (g *Graph) Dependencies(path string) []string {
	id, ok := g.ids[path]
	if !ok {
		return nil
	}
	return g.sortedPaths(idSetKeys(g.out[id]))
}

// Dependents returns the direct dependents of path, sorted.
func (g *Graph) Dependents(path string) []string {
	id, ok := g.ids[path]
	if !ok {
		return nil
	}
	ids := make([]int, 0, len(g.in[id]))
	for from := range g.in[id] {
		ids = append(ids, from)
	}
	return g.sortedPaths(ids)
}

// NodeInfo is an in/out degree snapshot for a single node.
type NodeInfo struct {
	Path      string
	InDegree  int
	OutDegree int
}

// GetNodeInfo returns degree information for path.
func (g *Graph) GetNodeInfo(path string) (NodeInfo, bool) {
	id, ok := g.ids[path]
	if !ok {
		return NodeInfo{}, false
	}
	return NodeInfo{
		Path:      path,
		InDegree:  len(g.in[id]),
		OutDegree: len(g.out[id]),
	}, true
}

// Nodes returns all node paths, sorted.
func (g *Graph) Nodes() []string {
	nodes := make([]string, 0, len(g.ids))
	for path := range g.ids {
		nodes = append(nodes, path)
	}
	sort.Strings(nodes)
	return nodes
}

// NodeCount returns the number of nodes.
func (g *Graph) NodeCount() int {
	return len(g.ids)
}

// EdgeCount returns the number of distinct edges.
func (g *Graph) EdgeCount() int {
	return g.edgeCount
}

// OrphanedNodes returns nodes with zero in-degree and zero out-degree, sorted.
func (g *Graph) OrphanedNodes() []string {
	var orphans []string
	for path, id := range g.ids {
		if len(g.in[id]) == 0 && len(g.out[id]) == 0 {
			orphans = append(orphans, path)
		}
	}
	sort.Strings(orphans)
	return orphans
}

func (g *Graph) sortedPaths(ids []int) []string {
	paths := make([]string, 0, len(ids))
	for _, id := range ids {
		paths = append(paths, g.paths[id])
	}
	sort.Strings(paths)
	return paths
}

func idSetKeys(set map[int]edgeProps) []int {
	ids := make([]int, 0, len(set))
	for id := range set {
		ids = append(ids, id)
	}
	return ids
}
