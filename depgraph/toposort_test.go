package depgraph

import "testing"

func indexOf(items []string, target string) int {
	for i, item := range items {
		if item == target {
			return i
		}
	}
	return -1
}

func TestTopologicalSortChainOrdersDependersFirst(t *testing.T) {
	g := NewGraph()
	g.AddDependency("/a", "/b")
	g.AddDependency("/b", "/c")

	result := g.TopologicalSort()

	if result.HasCycle {
		t.Fatalf("expected no cycle, got cycle files %v", result.CycleFiles)
	}
	want := []string{"/a", "/b", "/c"}
	if len(result.SortedFiles) != len(want) {
		t.Fatalf("TopologicalSort() = %v, want %v", result.SortedFiles, want)
	}
	for i, path := range want {
		if result.SortedFiles[i] != path {
			t.Fatalf("TopologicalSort() = %v, want %v", result.SortedFiles, want)
		}
	}
}

func TestTopologicalSortEdgeOrderingContract(t *testing.T) {
	g := NewGraph()
	g.AddDependency("/app.ts", "/lib/util.ts")
	g.AddDependency("/app.ts", "/lib/http.ts")
	g.AddDependency("/lib/http.ts", "/lib/util.ts")
	g.AddDependency("/cli.ts", "/app.ts")

	result := g.TopologicalSort()

	if result.HasCycle {
		t.Fatalf("expected acyclic graph, got cycle files %v", result.CycleFiles)
	}
	// For every edge (from, to): index(from) < index(to).
	edges := g.Snapshot().Edges
	for _, edge := range edges {
		fromIdx := indexOf(result.SortedFiles, edge.From)
		toIdx := indexOf(result.SortedFiles, edge.To)
		if fromIdx < 0 || toIdx < 0 {
			t.Fatalf("edge endpoint missing from sort output: %+v", edge)
		}
		if fromIdx >= toIdx {
			t.Fatalf("edge %s -> %s violates depender-first ordering in %v",
				edge.From, edge.To, result.SortedFiles)
		}
	}
}

func TestTopologicalSortDetectsCycle(t *testing.T) {
	g := NewGraph()
	g.AddDependency("/a", "/b")
	g.AddDependency("/b", "/a")
	g.AddDependency("/standalone", "/a")

	result := g.TopologicalSort()

	if !result.HasCycle {
		t.Fatal("expected HasCycle=true")
	}
	if len(result.SortedFiles) >= g.NodeCount() {
		t.Fatalf("sorted %d of %d nodes despite cycle", len(result.SortedFiles), g.NodeCount())
	}
	want := []string{"/a", "/b"}
	if len(result.CycleFiles) != len(want) || result.CycleFiles[0] != want[0] || result.CycleFiles[1] != want[1] {
		t.Fatalf("CycleFiles = %v, want %v", result.CycleFiles, want)
	}
}

func TestTopologicalSortEmptyGraph(t *testing.T) {
	g := NewGraph()

	result := g.TopologicalSort()

	if result.HasCycle {
		t.Fatal("empty graph must not report a cycle")
	}
	if len(result.SortedFiles) != 0 {
		t.Fatalf("expected empty order, got %v", result.SortedFiles)
	}
}

func TestTopologicalSortSelfLoopIsCycle(t *testing.T) {
	g := NewGraph()
	g.AddDependency("/a", "/a")

	result := g.TopologicalSort()

	if !result.HasCycle {
		t.Fatal("self-loop must report a cycle")
	}
	if len(result.CycleFiles) != 1 || result.CycleFiles[0] != "/a" {
		t.Fatalf("CycleFiles = %v, want [/a]", result.CycleFiles)
	}
}
