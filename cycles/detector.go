// Package cycles finds elementary cycles and strongly connected components
// in a dependency graph. It operates on a graph snapshot and never mutates
// the graph it is given.
package cycles

import (
	"sort"

	"github.com/depscope/depscope/depgraph"
	"github.com/depscope/depscope/errdefs"
)

// Severity ranks how hard a cycle will be to untangle. The length thresholds
// are part of the contract: <=3 low, <=6 medium, >6 high.
type Severity string

const (
	SeverityLow    Severity = "low"
	SeverityMedium Severity = "medium"
	SeverityHigh   Severity = "high"
)

// SeverityForLength maps a cycle length to its severity.
func SeverityForLength(length int) Severity {
	switch {
	case length <= 3:
		return SeverityLow
	case length <= 6:
		return SeverityMedium
	default:
		return SeverityHigh
	}
}

// Options controls cycle detection.
type Options struct {
	// MaxCycleLength bounds the depth-first enumeration: no path is extended
	// past this many nodes. Must be positive.
	MaxCycleLength int

	// ReportAllCycles reports every elementary cycle discovered within the
	// bound. When false, only one representative cycle per strongly
	// connected subgraph is reported.
	ReportAllCycles bool

	// IgnoreSelfLoops drops length-1 cycles from the report.
	IgnoreSelfLoops bool
}

// DefaultOptions returns the detection defaults: representative cycles only,
// self-loops included, paths bounded at 10 nodes.
func DefaultOptions() Options {
	return Options{MaxCycleLength: 10}
}

// Cycle is an ordered node sequence c1..ck with edges ci -> ci+1 and ck -> c1.
type Cycle struct {
	Nodes    []string `json:"nodes"`
	Length   int      `json:"length"`
	Severity Severity `json:"severity"`
}

// DetectCycles enumerates cycles in the graph under the given options.
// Enumeration is depth-first and bounded by MaxCycleLength, so it terminates
// on arbitrarily dense graphs.
func DetectCycles(g *depgraph.Graph, opts Options) ([]Cycle, error) {
	if opts.MaxCycleLength <= 0 {
		return nil, errdefs.Validationf("maxCycleLength must be positive, got %d", opts.MaxCycleLength)
	}

	a := newAdjacency(g)
	var found []Cycle

	// Self-loops are length-1 cycles regardless of their component.
	if !opts.IgnoreSelfLoops {
		for v, hasSelf := range a.self {
			if hasSelf {
				found = append(found, newCycle([]string{a.nodes[v]}))
			}
		}
	}

	for _, component := range a.stronglyConnected() {
		if len(component) < 2 {
			continue
		}
		found = append(found, a.enumerateComponent(component, opts)...)
	}

	sort.Slice(found, func(i, j int) bool {
		if found[i].Nodes[0] != found[j].Nodes[0] {
			return found[i].Nodes[0] < found[j].Nodes[0]
		}
		return found[i].Length < found[j].Length
	})
	return found, nil
}

// CountCycles returns the number of cycles under default options. Used for
// statistics where the cycle paths themselves are not needed.
func CountCycles(g *depgraph.Graph) int {
	detected, err := DetectCycles(g, DefaultOptions())
	if err != nil {
		return 0
	}
	return len(detected)
}

func newCycle(nodes []string) Cycle {
	return Cycle{
		Nodes:    nodes,
		Length:   len(nodes),
		Severity: SeverityForLength(len(nodes)),
	}
}

// enumerateComponent finds elementary cycles of length >= 2 inside one
// strongly connected component. Each cycle is discovered exactly once,
// rooted at its lexicographically smallest node: the search only walks
// nodes ordered after the root, closing back at the root.
func (a *adjacency) enumerateComponent(component []int, opts Options) []Cycle {
	inComponent := make(map[int]bool, len(component))
	for _, v := range component {
		inComponent[v] = true
	}
	sort.Ints(component) // node indices follow sorted path order

	var cycles []Cycle
	for _, root := range component {
		path := []int{root}
		onPath := map[int]bool{root: true}

		var walk func(v int) bool
		walk = func(v int) bool {
			for _, w := range a.out[v] {
				if w == root && len(path) >= 2 {
					cycles = append(cycles, newCycle(a.pathNodes(path)))
					if !opts.ReportAllCycles {
						return true
					}
					continue
				}
				if w <= root || !inComponent[w] || onPath[w] {
					continue
				}
				if len(path) >= opts.MaxCycleLength {
					continue
				}
				path = append(path, w)
				onPath[w] = true
				done := walk(w)
				onPath[w] = false
				path = path[:len(path)-1]
				if done {
					return true
				}
			}
			return false
		}

		if walk(root) && !opts.ReportAllCycles {
			// One representative for this component is enough.
			break
		}
	}
	return cycles
}

func (a *adjacency) pathNodes(path []int) []string {
	nodes := make([]string, len(path))
	for i, v := range path {
		nodes[i] = a.nodes[v]
	}
	return nodes
}
