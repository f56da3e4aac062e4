package formatters

import (
	"bytes"
	"errors"
	"fmt"

	"github.com/depscope/depscope/analyzer"
	graphlib "github.com/dominikbraun/graph"
	"github.com/dominikbraun/graph/draw"
)

// DOTFormatter formats dependency reports as Graphviz DOT.
type DOTFormatter struct{}

// Format converts the dependency report to Graphviz DOT format.
func (f *DOTFormatter) Format(r Report) (string, error) {
	g := graphlib.New(graphlib.StringHash, graphlib.Directed())

	nodeNames := BuildNodeNames(r.Snapshot.Nodes)
	inCycle := make(map[string]bool)
	for _, c := range r.Cycles {
		for _, node := range c.Nodes {
			inCycle[node] = true
		}
	}

	for _, path := range r.Snapshot.Nodes {
		color := "white"
		if analyzer.IsTestFile(path) {
			color = "lightgreen"
		} else if inCycle[path] {
			color = "lightpink"
		}
		err := g.AddVertex(path,
			graphlib.VertexAttribute("label", nodeNames[path]),
			graphlib.VertexAttribute("shape", "box"),
			graphlib.VertexAttribute("style", "filled"),
			graphlib.VertexAttribute("fillcolor", color),
		)
		if err != nil && !errors.Is(err, graphlib.ErrVertexAlreadyExists) {
			return "", fmt.Errorf("failed to add node %s: %w", path, err)
		}
	}

	onCycle := cycleEdges(r.Cycles)
	for _, edge := range r.Snapshot.Edges {
		opts := []func(*graphlib.EdgeProperties){graphlib.EdgeWeight(edge.Weight)}
		if onCycle[[2]string{edge.From, edge.To}] {
			opts = append(opts, graphlib.EdgeAttribute("color", "crimson"))
		}
		err := g.AddEdge(edge.From, edge.To, opts...)
		if err != nil && !errors.Is(err, graphlib.ErrEdgeAlreadyExists) {
			return "", fmt.Errorf("failed to add edge %s -> %s: %w", edge.From, edge.To, err)
		}
	}

	var buf bytes.Buffer
	var err error
	if r.Label != "" {
		err = draw.DOT(g, &buf,
			draw.GraphAttribute("rankdir", "LR"),
			draw.GraphAttribute("label", r.Label),
			draw.GraphAttribute("labelloc", "t"),
		)
	} else {
		err = draw.DOT(g, &buf, draw.GraphAttribute("rankdir", "LR"))
	}
	if err != nil {
		return "", fmt.Errorf("failed to render DOT graph: %w", err)
	}
	return buf.String(), nil
}
