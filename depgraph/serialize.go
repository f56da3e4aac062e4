package depgraph

import (
	"encoding/json"
	"fmt"
	"sort"
	"time"
)

// SerializedGraph is the interchange format handed to presentation layers
// and used for round-trip cloning.
type SerializedGraph struct {
	Nodes    []string         `json:"nodes"`
	Edges    []SerializedEdge `json:"edges"`
	Metadata GraphMetadata    `json:"metadata"`
}

// SerializedEdge is one directed edge in the interchange format.
type SerializedEdge struct {
	From   string   `json:"from"`
	To     string   `json:"to"`
	Weight int      `json:"weight"`
	Kind   EdgeKind `json:"kind,omitempty"`
}

// GraphMetadata describes the snapshot itself.
type GraphMetadata struct {
	NodeCount    int       `json:"nodeCount"`
	EdgeCount    int       `json:"edgeCount"`
	SerializedAt time.Time `json:"serializedAt"`
}

// Snapshot captures the graph as a SerializedGraph value with nodes and
// edges in deterministic order.
func (g *Graph) Snapshot() SerializedGraph {
	nodes := g.Nodes()

	edges := make([]SerializedEdge, 0, g.edgeCount)
	for _, from := range nodes {
		fromID := g.ids[from]
		for _, to := range g.sortedPaths(idSetKeys(g.out[fromID])) {
			props := g.out[fromID][g.ids[to]]
			edges = append(edges, SerializedEdge{
				From:   from,
				To:     to,
				Weight: props.weight,
				Kind:   props.kind,
			})
		}
	}
	sort.Slice(edges, func(i, j int) bool {
		if edges[i].From != edges[j].From {
			return edges[i].From < edges[j].From
		}
		return edges[i].To < edges[j].To
	})

	return SerializedGraph{
		Nodes: nodes,
		Edges: edges,
		Metadata: GraphMetadata{
			NodeCount:    len(nodes),
			EdgeCount:    len(edges),
			SerializedAt: time.Now().UTC(),
		},
	}
}

// Serialize encodes the graph as JSON.
func (g *Graph) Serialize() ([]byte, error) {
	data, err := json.Marshal(g.Snapshot())
	if err != nil {
		return nil, fmt.Errorf("failed to serialize graph: %w", err)
	}
	return data, nil
}

// Deserialize rebuilds a graph from its JSON serialization.
func Deserialize(data []byte) (*Graph, error) {
	var snapshot SerializedGraph
	if err := json.Unmarshal(data, &snapshot); err != nil {
		return nil, fmt.Errorf("failed to deserialize graph: %w", err)
	}
	return FromSnapshot(snapshot), nil
}

// FromSnapshot rebuilds a graph from a SerializedGraph value.
func FromSnapshot(snapshot SerializedGraph) *Graph {
	g := NewGraph()
	for _, node := range snapshot.Nodes {
		g.AddNode(node)
	}
	for _, edge := range snapshot.Edges {
		kind := edge.Kind
		if kind == "" {
			kind = KindImport
		}
		g.AddDependencyKind(edge.From, edge.To, kind)
	}
	return g
}

// Clone returns an independent copy of the graph by round-tripping through
// the serialized format.
func (g *Graph) Clone() (*Graph, error) {
	data, err := g.Serialize()
	if err != nil {
		return nil, err
	}
	return Deserialize(data)
}
