package flow

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// threeNodeChain builds a → b → c and returns the graph with the node ids.
func threeNodeChain(t *testing.T) (*Graph, []string) {
	t.Helper()
	g := NewGraph("test", "")
	a := g.AddNode(KindStart, Position{X: 0, Y: 0}, NodeData{Action: "start"})
	b := g.AddNode(KindStep, Position{X: 0, Y: 100}, NodeData{Action: "work", People: []string{"p1"}})
	c := g.AddNode(KindEnd, Position{X: 0, Y: 200}, NodeData{Action: "end"})
	_, err := g.Connect(a.ID, "", b.ID, "", "")
	require.NoError(t, err)
	_, err = g.Connect(b.ID, "", c.ID, "", "")
	require.NoError(t, err)
	return g, []string{a.ID, b.ID, c.ID}
}

func TestCopyTakesInducedSubgraph(t *testing.T) {
	g, ids := threeNodeChain(t)

	var cb Clipboard
	// a and c are selected but the only edges touch b: no edge is induced.
	cb.Copy(g, []string{ids[0], ids[2]})
	cb.Paste(g, DefaultPasteOffset)

	assert.Len(t, g.Nodes, 5)
	assert.Len(t, g.Edges, 2)
}

func TestPasteMintsFreshIDs(t *testing.T) {
	g, ids := threeNodeChain(t)
	original := make(map[string]bool)
	for _, n := range g.Nodes {
		original[n.ID] = true
	}
	for _, e := range g.Edges {
		original[e.ID] = true
	}

	var cb Clipboard
	cb.Copy(g, ids)
	cb.Paste(g, DefaultPasteOffset)

	require.Len(t, g.Nodes, 6)
	require.Len(t, g.Edges, 4)

	pastedNodes := make(map[string]bool)
	for _, n := range g.Nodes[3:] {
		assert.False(t, original[n.ID], "pasted node reuses id %s", n.ID)
		pastedNodes[n.ID] = true
	}
	for _, e := range g.Edges[2:] {
		assert.False(t, original[e.ID], "pasted edge reuses id %s", e.ID)
		// Endpoint closure: pasted edges only reference pasted nodes.
		assert.True(t, pastedNodes[e.Source])
		assert.True(t, pastedNodes[e.Target])
	}
}

func TestPasteOffsetsPositions(t *testing.T) {
	g, ids := threeNodeChain(t)

	var cb Clipboard
	cb.Copy(g, ids[:1])
	cb.Paste(g, Position{X: 25, Y: 50})

	pasted := g.Nodes[len(g.Nodes)-1]
	assert.Equal(t, Position{X: 25, Y: 50}, pasted.Position)
}

func TestPasteSelectsOnlyPastedElements(t *testing.T) {
	g, ids := threeNodeChain(t)
	g.SetSelection(ids, nil)

	var cb Clipboard
	cb.Copy(g, ids)
	cb.Paste(g, DefaultPasteOffset)

	selected := g.SelectedNodeIDs()
	require.Len(t, selected, 3)
	for _, id := range ids {
		assert.NotContains(t, selected, id)
	}
	for _, e := range g.Edges[:2] {
		assert.False(t, e.Selected)
	}
	for _, e := range g.Edges[2:] {
		assert.True(t, e.Selected)
	}
}

func TestPasteEmptyClipboardIsNoOp(t *testing.T) {
	g, _ := threeNodeChain(t)

	var cb Clipboard
	assert.True(t, cb.Empty())
	cb.Paste(g, DefaultPasteOffset)

	assert.Len(t, g.Nodes, 3)
	assert.Len(t, g.Edges, 2)
}

func TestClipboardDetachedFromGraph(t *testing.T) {
	g, ids := threeNodeChain(t)

	var cb Clipboard
	cb.Copy(g, ids)

	// Gut the graph after copying; the clipboard must not notice.
	for _, id := range ids {
		require.NoError(t, g.RemoveNode(id))
	}
	require.Empty(t, g.Nodes)

	cb.Paste(g, DefaultPasteOffset)
	assert.Len(t, g.Nodes, 3)
	assert.Len(t, g.Edges, 2)
	assertReferentialIntegrity(t, g)
}

func TestCopyIgnoresUnknownIDs(t *testing.T) {
	g, ids := threeNodeChain(t)

	var cb Clipboard
	cb.Copy(g, append([]string{"ghost"}, ids[1]))
	cb.Paste(g, DefaultPasteOffset)

	assert.Len(t, g.Nodes, 4)
	assert.Len(t, g.Edges, 2)
}
