package flow

// MaxHistoryEntries bounds the undo stack. The oldest snapshot is evicted
// when a new entry would exceed it.
const MaxHistoryEntries = 50

// Snapshot is an immutable copy of the graph topology at a point in time.
// Name/description metadata is not snapshotted; undo covers authoring
// actions on the canvas, not the save dialog.
type Snapshot struct {
	Nodes []Node
	Edges []Edge
}

// snapshotOf deep-copies the graph's nodes and edges.
func snapshotOf(g *Graph) Snapshot {
	return Snapshot{
		Nodes: cloneNodes(g.Nodes),
		Edges: cloneEdges(g.Edges),
	}
}

// apply replaces the graph's nodes and edges with copies of the snapshot,
// leaving the snapshot itself untouched by later mutations.
func (s Snapshot) apply(g *Graph) {
	g.Nodes = cloneNodes(s.Nodes)
	g.Edges = cloneEdges(s.Edges)
}

// History is a bounded stack of snapshots with a cursor. entries[index] is
// the current state; everything past the index is redo territory.
type History struct {
	entries []Snapshot
	index   int
}

// NewHistory seeds the stack with the graph's current state so the first
// recorded mutation can be undone back to it.
func NewHistory(g *Graph) *History {
	return &History{entries: []Snapshot{snapshotOf(g)}}
}

// Record pushes the graph's current state, discarding any redo entries and
// evicting the oldest entry once the bound is exceeded.
func (h *History) Record(g *Graph) {
	h.entries = append(h.entries[:h.index+1], snapshotOf(g))
	if len(h.entries) > MaxHistoryEntries {
		h.entries = h.entries[len(h.entries)-MaxHistoryEntries:]
	}
	h.index = len(h.entries) - 1
}

// CanUndo reports whether an earlier snapshot exists.
func (h *History) CanUndo() bool { return h.index > 0 }

// CanRedo reports whether a later snapshot exists.
func (h *History) CanRedo() bool { return h.index < len(h.entries)-1 }

// Undo steps the cursor back and returns the snapshot to restore.
// At the oldest entry it is a no-op and reports false.
func (h *History) Undo() (Snapshot, bool) {
	if !h.CanUndo() {
		return Snapshot{}, false
	}
	h.index--
	return h.entries[h.index], true
}

// Redo steps the cursor forward and returns the snapshot to restore.
// At the newest entry it is a no-op and reports false.
func (h *History) Redo() (Snapshot, bool) {
	if !h.CanRedo() {
		return Snapshot{}, false
	}
	h.index++
	return h.entries[h.index], true
}

// Len returns the number of stored snapshots.
func (h *History) Len() int { return len(h.entries) }
