package formatters

import (
	"fmt"

	"github.com/depscope/depscope/cycles"
	"github.com/depscope/depscope/depgraph"
)

// Report bundles a graph snapshot with its detected cycles for rendering.
type Report struct {
	// Snapshot is the serialized dependency graph to render.
	Snapshot depgraph.SerializedGraph
	// Cycles are the circular dependencies detected in the snapshot.
	Cycles []cycles.Cycle
	// Label is an optional title for the graph.
	Label string
}

// Formatter is the interface that all graph formatters must implement.
type Formatter interface {
	// Format converts a dependency report to a formatted string representation.
	Format(r Report) (string, error)
}

// NewFormatter creates a Formatter for the specified format type.
// Supported formats: "json", "dot", "mermaid"
func NewFormatter(format string) (Formatter, error) {
	switch format {
	case "json":
		return &JSONFormatter{}, nil
	case "dot":
		return &DOTFormatter{}, nil
	case "mermaid":
		return &MermaidFormatter{}, nil
	default:
		return nil, fmt.Errorf("unknown format: %s (valid options: dot, json, mermaid)", format)
	}
}

// cycleEdges returns the set of directed edges that lie on a reported cycle.
func cycleEdges(detected []cycles.Cycle) map[[2]string]bool {
	onCycle := make(map[[2]string]bool)
	for _, c := range detected {
		for i, from := range c.Nodes {
			to := c.Nodes[(i+1)%len(c.Nodes)]
			onCycle[[2]string{from, to}] = true
		}
	}
	return onCycle
}
