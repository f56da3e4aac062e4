package depgraph

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSnapshotIsDeterministic(t *testing.T) {
	g := NewGraph()
	g.AddDependency("/b", "/a")
	g.AddDependency("/a", "/c")
	g.AddNode("/orphan")

	snapshot := g.Snapshot()

	assert.Equal(t, []string{"/a", "/b", "/c", "/orphan"}, snapshot.Nodes)
	require.Len(t, snapshot.Edges, 2)
	assert.Equal(t, "/a", snapshot.Edges[0].From)
	assert.Equal(t, "/c", snapshot.Edges[0].To)
	assert.Equal(t, 1, snapshot.Edges[0].Weight)
	assert.Equal(t, "/b", snapshot.Edges[1].From)
	assert.Equal(t, 4, snapshot.Metadata.NodeCount)
	assert.Equal(t, 2, snapshot.Metadata.EdgeCount)
	assert.False(t, snapshot.Metadata.SerializedAt.IsZero())
}

func TestSerializeRoundTrip(t *testing.T) {
	g := NewGraph()
	g.AddDependencyKind("/a", "/b", KindRequire)
	g.AddDependency("/b", "/c")
	g.AddNode("/orphan")

	data, err := g.Serialize()
	require.NoError(t, err)

	restored, err := Deserialize(data)
	require.NoError(t, err)

	assert.Equal(t, g.Nodes(), restored.Nodes())
	assert.Equal(t, g.EdgeCount(), restored.EdgeCount())
	assert.True(t, restored.HasDependency("/a", "/b"))
	assert.True(t, restored.HasDependency("/b", "/c"))
	assert.Equal(t, g.Snapshot().Edges, restored.Snapshot().Edges)
}

func TestCloneIsIndependent(t *testing.T) {
	g := NewGraph()
	g.AddDependency("/a", "/b")

	clone, err := g.Clone()
	require.NoError(t, err)

	clone.AddDependency("/a", "/c")
	clone.RemoveDependency("/a", "/b")

	assert.True(t, g.HasDependency("/a", "/b"))
	assert.False(t, g.HasNode("/c"))
	assert.True(t, clone.HasDependency("/a", "/c"))
}

func TestDeserializeRejectsGarbage(t *testing.T) {
	_, err := Deserialize([]byte("not json"))
	assert.Error(t, err)
}
