package formatters

import (
	"fmt"
	"strings"

	"github.com/depscope/depscope/analyzer"
)

// MermaidFormatter formats dependency reports as Mermaid.js flowcharts.
type MermaidFormatter struct{}

// Format converts the dependency report to Mermaid.js flowchart format.
func (f *MermaidFormatter) Format(r Report) (string, error) {
	var sb strings.Builder

	if r.Label != "" {
		sb.WriteString("---\n")
		sb.WriteString(fmt.Sprintf("title: %s\n", r.Label))
		sb.WriteString("---\n")
	}

	sb.WriteString("flowchart LR\n")

	// Mermaid node IDs can't have dots or slashes, so each path gets a
	// synthetic id and the display name goes in the label.
	nodeNames := BuildNodeNames(r.Snapshot.Nodes)
	nodeIDs := make(map[string]string, len(r.Snapshot.Nodes))
	for i, path := range r.Snapshot.Nodes {
		nodeIDs[path] = fmt.Sprintf("n%d", i)
	}

	for _, path := range r.Snapshot.Nodes {
		label := strings.ReplaceAll(nodeNames[path], "\"", "#quot;")
		sb.WriteString(fmt.Sprintf("    %s[\"%s\"]\n", nodeIDs[path], label))
	}

	sb.WriteString("\n")

	onCycle := cycleEdges(r.Cycles)
	for _, edge := range r.Snapshot.Edges {
		arrow := "-->"
		if onCycle[[2]string{edge.From, edge.To}] {
			arrow = "==>"
		}
		sb.WriteString(fmt.Sprintf("    %s %s %s\n", nodeIDs[edge.From], arrow, nodeIDs[edge.To]))
	}

	sb.WriteString("\n")

	var testNodes []string
	var cycleNodes []string
	inCycle := make(map[string]bool)
	for _, c := range r.Cycles {
		for _, node := range c.Nodes {
			inCycle[node] = true
		}
	}
	for _, path := range r.Snapshot.Nodes {
		if analyzer.IsTestFile(path) {
			testNodes = append(testNodes, nodeIDs[path])
		} else if inCycle[path] {
			cycleNodes = append(cycleNodes, nodeIDs[path])
		}
	}

	sb.WriteString("    classDef testFile fill:#90EE90,stroke:#228B22,color:#000000\n")
	sb.WriteString("    classDef cycleFile fill:#FFB6C1,stroke:#DC143C\n")

	if len(testNodes) > 0 {
		sb.WriteString(fmt.Sprintf("    class %s testFile\n", strings.Join(testNodes, ",")))
	}
	if len(cycleNodes) > 0 {
		sb.WriteString(fmt.Sprintf("    class %s cycleFile\n", strings.Join(cycleNodes, ",")))
	}
	return sb.String(), nil
}
