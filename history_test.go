package flow

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUndoRestoresExactPriorState(t *testing.T) {
	s := NewSession("test", "")
	a := s.AddNode(KindStep, Position{}, NodeData{Action: "a"})
	s.AddNode(KindStep, Position{}, NodeData{Action: "b"})

	require.True(t, s.Undo())
	require.Len(t, s.Graph().Nodes, 1)
	assert.Equal(t, a.ID, s.Graph().Nodes[0].ID)

	require.True(t, s.Redo())
	require.Len(t, s.Graph().Nodes, 2)
	assert.Equal(t, "b", s.Graph().Nodes[1].Data.Action)
}

func TestUndoAtFloorIsNoOp(t *testing.T) {
	s := NewSession("test", "")
	assert.False(t, s.CanUndo())
	assert.False(t, s.Undo())

	s.AddNode(KindStep, Position{}, NodeData{})
	require.True(t, s.Undo())
	assert.False(t, s.Undo())
	assert.Empty(t, s.Graph().Nodes)
}

func TestRedoAtTipIsNoOp(t *testing.T) {
	s := NewSession("test", "")
	s.AddNode(KindStep, Position{}, NodeData{})
	assert.False(t, s.CanRedo())
	assert.False(t, s.Redo())
}

func TestRecordTruncatesRedoTail(t *testing.T) {
	s := NewSession("test", "")
	s.AddNode(KindStep, Position{}, NodeData{Action: "a"})
	s.AddNode(KindStep, Position{}, NodeData{Action: "b"})

	require.True(t, s.Undo())
	assert.True(t, s.CanRedo())

	s.AddNode(KindStep, Position{}, NodeData{Action: "c"})
	assert.False(t, s.CanRedo())
	require.Len(t, s.Graph().Nodes, 2)
	assert.Equal(t, "c", s.Graph().Nodes[1].Data.Action)
}

func TestHistoryBoundedAtFifty(t *testing.T) {
	s := NewSession("test", "")
	for i := 0; i < 60; i++ {
		s.AddNode(KindStep, Position{}, NodeData{Action: fmt.Sprintf("n%d", i)})
	}

	undos := 0
	for s.Undo() {
		undos++
	}
	// 50 entries means at most 49 undo steps from the newest one.
	assert.Equal(t, MaxHistoryEntries-1, undos)
	// The floor is not the empty graph: the oldest entries were evicted.
	assert.Len(t, s.Graph().Nodes, 60-(MaxHistoryEntries-1))
}

func TestSnapshotsAreImmutable(t *testing.T) {
	s := NewSession("test", "")
	n := s.AddNode(KindStep, Position{}, NodeData{Action: "original", People: []string{"p1"}})
	require.NoError(t, s.UpdateNode(n.ID, func(node *Node) {
		node.Data.Action = "changed"
		node.Data.People[0] = "p2"
	}))

	require.True(t, s.Undo())
	got := s.Graph().Node(n.ID)
	require.NotNil(t, got)
	assert.Equal(t, "original", got.Data.Action)
	assert.Equal(t, []string{"p1"}, got.Data.People)

	// Mutating the restored graph must not corrupt the stored snapshot.
	got.Data.People[0] = "scribbled"
	require.True(t, s.Redo())
	require.True(t, s.Undo())
	assert.Equal(t, []string{"p1"}, s.Graph().Node(n.ID).Data.People)
}

func TestUndoOfRemoveRestoresEdges(t *testing.T) {
	s := NewSession("test", "")
	a := s.AddNode(KindStart, Position{}, NodeData{})
	b := s.AddNode(KindStep, Position{}, NodeData{})
	_, err := s.Connect(a.ID, "", b.ID, "", "")
	require.NoError(t, err)

	require.NoError(t, s.RemoveNode(b.ID))
	assert.Empty(t, s.Graph().Edges)

	require.True(t, s.Undo())
	assert.Len(t, s.Graph().Nodes, 2)
	assert.Len(t, s.Graph().Edges, 1)
}
