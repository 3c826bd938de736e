package flow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAddNodeAssignsUniqueIDs(t *testing.T) {
	g := NewGraph("test", "")
	a := g.AddNode(KindStep, Position{X: 1, Y: 2}, NodeData{Action: "one"})
	b := g.AddNode(KindStep, Position{}, NodeData{Action: "two"})

	assert.NotEmpty(t, a.ID)
	assert.NotEqual(t, a.ID, b.ID)
	assert.Equal(t, Position{X: 1, Y: 2}, a.Position)
	require.NotNil(t, g.Node(a.ID))
	assert.Equal(t, "one", g.Node(a.ID).Data.Action)
}

func TestUpdateNodeKeepsIdentityAndKind(t *testing.T) {
	g := NewGraph("test", "")
	n := g.AddNode(KindStep, Position{}, NodeData{Action: "before"})

	err := g.UpdateNode(n.ID, func(node *Node) {
		node.Data.Action = "after"
		node.ID = "hijacked"
		node.Kind = KindDecision
	})
	require.NoError(t, err)

	got := g.Node(n.ID)
	require.NotNil(t, got)
	assert.Equal(t, "after", got.Data.Action)
	assert.Equal(t, KindStep, got.Kind)
}

func TestUpdateNodeMissing(t *testing.T) {
	g := NewGraph("test", "")
	err := g.UpdateNode("nope", func(*Node) {})
	assert.ErrorIs(t, err, ErrNodeNotFound)
}

func TestRemoveNodeCascadesEdges(t *testing.T) {
	g := NewGraph("test", "")
	a := g.AddNode(KindStart, Position{}, NodeData{})
	b := g.AddNode(KindStep, Position{}, NodeData{})
	c := g.AddNode(KindEnd, Position{}, NodeData{})
	_, err := g.Connect(a.ID, "", b.ID, "", "")
	require.NoError(t, err)
	_, err = g.Connect(b.ID, "", c.ID, "", "")
	require.NoError(t, err)

	require.NoError(t, g.RemoveNode(b.ID))

	assert.Nil(t, g.Node(b.ID))
	assert.Empty(t, g.Edges)
	assertReferentialIntegrity(t, g)
}

func TestRemoveNodeMissing(t *testing.T) {
	g := NewGraph("test", "")
	assert.ErrorIs(t, g.RemoveNode("nope"), ErrNodeNotFound)
}

// Referential integrity holds under arbitrary add/remove interleavings.
func TestReferentialIntegrityUnderChurn(t *testing.T) {
	g := NewGraph("churn", "")
	var ids []string
	for i := 0; i < 10; i++ {
		n := g.AddNode(KindStep, Position{}, NodeData{})
		ids = append(ids, n.ID)
	}
	for i := 0; i < 9; i++ {
		_, err := g.Connect(ids[i], "", ids[i+1], "", "")
		require.NoError(t, err)
	}
	// Remove every other node; cascades must leave no dangling edge.
	for i := 0; i < 10; i += 2 {
		require.NoError(t, g.RemoveNode(ids[i]))
		assertReferentialIntegrity(t, g)
	}
	assert.Len(t, g.Nodes, 5)
	assert.Empty(t, g.Edges)
}

func TestUpdateEdgeKeepsEndpoints(t *testing.T) {
	g := NewGraph("test", "")
	a := g.AddNode(KindStep, Position{}, NodeData{})
	b := g.AddNode(KindStep, Position{}, NodeData{})
	e, err := g.Connect(a.ID, "", b.ID, "", "first")
	require.NoError(t, err)

	err = g.UpdateEdge(e.ID, func(edge *Edge) {
		edge.Label = "second"
		edge.Source = "hijacked"
		edge.Target = "hijacked"
	})
	require.NoError(t, err)

	got := g.Edge(e.ID)
	require.NotNil(t, got)
	assert.Equal(t, "second", got.Label)
	assert.Equal(t, a.ID, got.Source)
	assert.Equal(t, b.ID, got.Target)
}

func TestRemoveEdge(t *testing.T) {
	g := NewGraph("test", "")
	a := g.AddNode(KindStep, Position{}, NodeData{})
	b := g.AddNode(KindStep, Position{}, NodeData{})
	e, err := g.Connect(a.ID, "", b.ID, "", "")
	require.NoError(t, err)

	require.NoError(t, g.RemoveEdge(e.ID))
	assert.Empty(t, g.Edges)
	assert.ErrorIs(t, g.RemoveEdge(e.ID), ErrEdgeNotFound)
}

func TestSetSelection(t *testing.T) {
	g := NewGraph("test", "")
	a := g.AddNode(KindStep, Position{}, NodeData{})
	b := g.AddNode(KindStep, Position{}, NodeData{})
	e, err := g.Connect(a.ID, "", b.ID, "", "")
	require.NoError(t, err)

	g.SetSelection([]string{a.ID}, []string{e.ID})
	assert.True(t, g.Node(a.ID).Selected)
	assert.False(t, g.Node(b.ID).Selected)
	assert.True(t, g.Edge(e.ID).Selected)
	assert.Equal(t, []string{a.ID}, g.SelectedNodeIDs())

	// Node and edge selection coexist; replacing the set clears the rest.
	g.SetSelection([]string{b.ID}, nil)
	assert.False(t, g.Node(a.ID).Selected)
	assert.True(t, g.Node(b.ID).Selected)
	assert.False(t, g.Edge(e.ID).Selected)
}

func assertReferentialIntegrity(t *testing.T, g *Graph) {
	t.Helper()
	for _, e := range g.Edges {
		assert.NotNil(t, g.Node(e.Source), "edge %s references missing source %s", e.ID, e.Source)
		assert.NotNil(t, g.Node(e.Target), "edge %s references missing target %s", e.ID, e.Target)
	}
}
