package formatters

import (
	"encoding/json"
	"time"

	"github.com/depscope/depscope/analyzer"
)

// JSONFormatter formats dependency reports as JSON.
type JSONFormatter struct{}

type jsonReport struct {
	Label    string       `json:"label,omitempty"`
	Nodes    []jsonNode   `json:"nodes"`
	Edges    []jsonEdge   `json:"edges"`
	Cycles   []jsonCycle  `json:"cycles"`
	Metadata jsonMetadata `json:"metadata"`
}

type jsonNode struct {
	Path       string   `json:"path"`
	Name       string   `json:"name"`
	Attributes []string `json:"attributes,omitempty"`
}

type jsonEdge struct {
	From    string `json:"from"`
	To      string `json:"to"`
	Weight  int    `json:"weight"`
	InCycle bool   `json:"inCycle"`
}

type jsonCycle struct {
	Path     []string `json:"path"`
	Severity string   `json:"severity"`
}

type jsonMetadata struct {
	NodeCount    int    `json:"nodeCount"`
	EdgeCount    int    `json:"edgeCount"`
	SerializedAt string `json:"serializedAt"`
}

// Format converts the dependency report to JSON format.
func (f *JSONFormatter) Format(r Report) (string, error) {
	nodeNames := BuildNodeNames(r.Snapshot.Nodes)
	onCycle := cycleEdges(r.Cycles)

	nodes := make([]jsonNode, 0, len(r.Snapshot.Nodes))
	for _, path := range r.Snapshot.Nodes {
		node := jsonNode{
			Path: path,
			Name: nodeNames[path],
		}
		if analyzer.IsTestFile(path) {
			node.Attributes = append(node.Attributes, "test")
		}
		nodes = append(nodes, node)
	}

	edges := make([]jsonEdge, 0, len(r.Snapshot.Edges))
	for _, edge := range r.Snapshot.Edges {
		edges = append(edges, jsonEdge{
			From:    edge.From,
			To:      edge.To,
			Weight:  edge.Weight,
			InCycle: onCycle[[2]string{edge.From, edge.To}],
		})
	}

	reportCycles := make([]jsonCycle, 0, len(r.Cycles))
	for _, c := range r.Cycles {
		reportCycles = append(reportCycles, jsonCycle{
			Path:     append([]string(nil), c.Nodes...),
			Severity: string(c.Severity),
		})
	}

	out := jsonReport{
		Label:  r.Label,
		Nodes:  nodes,
		Edges:  edges,
		Cycles: reportCycles,
		Metadata: jsonMetadata{
			NodeCount:    r.Snapshot.Metadata.NodeCount,
			EdgeCount:    r.Snapshot.Metadata.EdgeCount,
			SerializedAt: r.Snapshot.Metadata.SerializedAt.UTC().Format(time.RFC3339),
		},
	}

	data, err := json.MarshalIndent(out, "", "  ")
	if err != nil {
		return "", err
	}
	return string(data), nil
}
