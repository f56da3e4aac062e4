package cycles

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/depscope/depscope/depgraph"
	"github.com/depscope/depscope/errdefs"
)

func TestDetectCyclesRejectsNonPositiveBound(t *testing.T) {
	g := depgraph.NewGraph()

	for _, bound := range []int{0, -1} {
		_, err := DetectCycles(g, Options{MaxCycleLength: bound})
		require.Error(t, err)
		assert.True(t, errdefs.IsValidation(err))
	}
}

func TestDetectCyclesTriangle(t *testing.T) {
	g := depgraph.NewGraph()
	g.AddDependency("/a", "/b")
	g.AddDependency("/b", "/c")
	g.AddDependency("/c", "/a")

	detected, err := DetectCycles(g, DefaultOptions())
	require.NoError(t, err)

	require.Len(t, detected, 1)
	assert.ElementsMatch(t, []string{"/a", "/b", "/c"}, detected[0].Nodes)
	assert.Equal(t, 3, detected[0].Length)
	assert.Equal(t, SeverityLow, detected[0].Severity)
}

func TestDetectCyclesDisjointCycles(t *testing.T) {
	g := depgraph.NewGraph()
	g.AddDependency("/a", "/b")
	g.AddDependency("/b", "/a")
	g.AddDependency("/c", "/d")
	g.AddDependency("/d", "/e")
	g.AddDependency("/e", "/c")

	detected, err := DetectCycles(g, DefaultOptions())
	require.NoError(t, err)

	require.Len(t, detected, 2)
	lengths := []int{detected[0].Length, detected[1].Length}
	assert.ElementsMatch(t, []int{2, 3}, lengths)
}

func TestDetectCyclesAcyclicGraph(t *testing.T) {
	g := depgraph.NewGraph()
	g.AddDependency("/a", "/b")
	g.AddDependency("/b", "/c")
	g.AddDependency("/a", "/c")

	detected, err := DetectCycles(g, DefaultOptions())
	require.NoError(t, err)
	assert.Empty(t, detected)
}

func TestSelfLoopReporting(t *testing.T) {
	g := depgraph.NewGraph()
	g.AddDependency("/a", "/a")

	detected, err := DetectCycles(g, DefaultOptions())
	require.NoError(t, err)
	require.Len(t, detected, 1)
	assert.Equal(t, []string{"/a"}, detected[0].Nodes)
	assert.Equal(t, 1, detected[0].Length)

	opts := DefaultOptions()
	opts.IgnoreSelfLoops = true
	detected, err = DetectCycles(g, opts)
	require.NoError(t, err)
	assert.Empty(t, detected)
}

func TestReportAllCyclesEnumeratesOverlaps(t *testing.T) {
	// Two overlapping cycles through /a: a->b->a and a->b->c->a.
	g := depgraph.NewGraph()
	g.AddDependency("/a", "/b")
	g.AddDependency("/b", "/a")
	g.AddDependency("/b", "/c")
	g.AddDependency("/c", "/a")

	opts := DefaultOptions()
	detected, err := DetectCycles(g, opts)
	require.NoError(t, err)
	assert.Len(t, detected, 1, "representative mode reports one cycle per component")

	opts.ReportAllCycles = true
	detected, err = DetectCycles(g, opts)
	require.NoError(t, err)
	assert.Len(t, detected, 2)
}

func TestMaxCycleLengthBoundsEnumeration(t *testing.T) {
	// A 4-cycle cannot be found with a bound of 3.
	g := depgraph.NewGraph()
	g.AddDependency("/a", "/b")
	g.AddDependency("/b", "/c")
	g.AddDependency("/c", "/d")
	g.AddDependency("/d", "/a")

	detected, err := DetectCycles(g, Options{MaxCycleLength: 3, ReportAllCycles: true})
	require.NoError(t, err)
	assert.Empty(t, detected)

	detected, err = DetectCycles(g, Options{MaxCycleLength: 4, ReportAllCycles: true})
	require.NoError(t, err)
	require.Len(t, detected, 1)
	assert.Equal(t, 4, detected[0].Length)
}

func TestSeverityThresholds(t *testing.T) {
	tests := []struct {
		length int
		want   Severity
	}{
		{1, SeverityLow},
		{2, SeverityLow},
		{3, SeverityLow},
		{4, SeverityMedium},
		{5, SeverityMedium},
		{6, SeverityMedium},
		{7, SeverityHigh},
		{8, SeverityHigh},
	}

	for _, tt := range tests {
		assert.Equal(t, tt.want, SeverityForLength(tt.length), "length %d", tt.length)
	}
}

func TestSeverityOnDetectedCycles(t *testing.T) {
	ring := func(n int) *depgraph.Graph {
		g := depgraph.NewGraph()
		names := make([]string, n)
		for i := range names {
			names[i] = string(rune('a' + i))
		}
		for i := range names {
			g.AddDependency("/"+names[i], "/"+names[(i+1)%n])
		}
		return g
	}

	for _, tt := range []struct {
		size int
		want Severity
	}{
		{2, SeverityLow},
		{5, SeverityMedium},
		{8, SeverityHigh},
	} {
		detected, err := DetectCycles(ring(tt.size), DefaultOptions())
		require.NoError(t, err)
		require.Len(t, detected, 1, "ring of %d", tt.size)
		assert.Equal(t, tt.want, detected[0].Severity, "ring of %d", tt.size)
	}
}

func TestCountCycles(t *testing.T) {
	g := depgraph.NewGraph()
	g.AddDependency("/a", "/b")
	g.AddDependency("/b", "/a")
	g.AddDependency("/c", "/c")

	assert.Equal(t, 2, CountCycles(g))
}
