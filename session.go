package flow

import "context"

// Session is one editing session over one graph. It owns the undo history,
// the clipboard and the replay flag, and guarantees that every authoring
// action lands in history exactly once. The graph is owned exclusively by
// its session; nothing here is safe for concurrent use.
type Session struct {
	graph     *Graph
	history   *History
	clipboard Clipboard

	// replaying suppresses record() while undo/redo swaps state in, so the
	// swap itself is never pushed back onto the stack. Cleared immediately
	// after the swap.
	replaying bool
	// batching suppresses record() inside Batch so a multi-field edit
	// coalesces into a single history entry.
	batching bool
}

// NewSession starts a session over an empty graph.
func NewSession(name, description string) *Session {
	g := NewGraph(name, description)
	return &Session{graph: g, history: NewHistory(g)}
}

// OpenSession starts a session over a graph hydrated from a persisted
// document. Parse failures wrap ErrParse and produce no session.
func OpenSession(name, description string, document []byte) (*Session, Viewport, error) {
	g, vp, err := UnmarshalDocument(document)
	if err != nil {
		return nil, Viewport{}, err
	}
	g.Name = name
	g.Description = description
	return &Session{graph: g, history: NewHistory(g)}, vp, nil
}

// Graph exposes the live graph for reading. Mutate through the session, not
// through the returned pointer, or history will miss the change.
func (s *Session) Graph() *Graph { return s.graph }

// record pushes the current state unless a replay or batch is in flight.
func (s *Session) record() {
	if s.replaying || s.batching {
		return
	}
	s.history.Record(s.graph)
}

// AddNode creates a node and records one history entry.
func (s *Session) AddNode(kind NodeKind, pos Position, data NodeData) Node {
	n := s.graph.AddNode(kind, pos, data)
	s.record()
	return n
}

// UpdateNode edits a node's payload or position and records one entry.
func (s *Session) UpdateNode(id string, fn func(n *Node)) error {
	if err := s.graph.UpdateNode(id, fn); err != nil {
		return err
	}
	s.record()
	return nil
}

// RemoveNode deletes a node with its incident edges and records one entry.
func (s *Session) RemoveNode(id string) error {
	if err := s.graph.RemoveNode(id); err != nil {
		return err
	}
	s.record()
	return nil
}

// Connect creates an edge, inferring absent handles, and records one entry.
func (s *Session) Connect(sourceID, sourceHandle, targetID, targetHandle, label string) (Edge, error) {
	e, err := s.graph.Connect(sourceID, sourceHandle, targetID, targetHandle, label)
	if err != nil {
		return Edge{}, err
	}
	s.record()
	return e, nil
}

// UpdateEdge edits an edge's label or handles and records one entry.
func (s *Session) UpdateEdge(id string, fn func(e *Edge)) error {
	if err := s.graph.UpdateEdge(id, fn); err != nil {
		return err
	}
	s.record()
	return nil
}

// RemoveEdge deletes an edge and records one entry.
func (s *Session) RemoveEdge(id string) error {
	if err := s.graph.RemoveEdge(id); err != nil {
		return err
	}
	s.record()
	return nil
}

// SetSelection replaces the selection and records one entry.
func (s *Session) SetSelection(nodeIDs, edgeIDs []string) {
	s.graph.SetSelection(nodeIDs, edgeIDs)
	s.record()
}

// Batch runs fn over the graph and records a single history entry for the
// whole of it, however many mutations fn performs. Used for dialog saves
// that touch several fields of one node at once.
// The flag is cleared even if fn panics; only a normal return records.
func (s *Session) Batch(fn func(g *Graph)) {
	s.batching = true
	defer func() { s.batching = false }()
	fn(s.graph)
	s.batching = false
	s.record()
}

// Copy places the currently selected nodes and their induced edges on the
// clipboard. Copying mutates nothing, so nothing is recorded.
func (s *Session) Copy() {
	s.clipboard.Copy(s.graph, s.graph.SelectedNodeIDs())
}

// Paste inserts the clipboard content at the default offset, selects it and
// records one entry. A no-op with an empty clipboard.
func (s *Session) Paste() {
	if s.clipboard.Empty() {
		return
	}
	s.clipboard.Paste(s.graph, DefaultPasteOffset)
	s.record()
}

// Undo restores the previous snapshot. Reports false at the oldest entry.
func (s *Session) Undo() bool {
	snap, ok := s.history.Undo()
	if !ok {
		return false
	}
	s.replaying = true
	snap.apply(s.graph)
	s.replaying = false
	return true
}

// Redo restores the next snapshot. Reports false at the newest entry.
func (s *Session) Redo() bool {
	snap, ok := s.history.Redo()
	if !ok {
		return false
	}
	s.replaying = true
	snap.apply(s.graph)
	s.replaying = false
	return true
}

// CanUndo reports whether Undo would restore anything.
func (s *Session) CanUndo() bool { return s.history.CanUndo() }

// CanRedo reports whether Redo would restore anything.
func (s *Session) CanRedo() bool { return s.history.CanRedo() }

// Save serializes the graph and hands it to the store under the given
// metadata. The engine's contract ends at producing a correct document;
// failures are the store's to surface and retry.
func (s *Session) Save(ctx context.Context, store Store, name, description string, vp Viewport) (string, error) {
	data, err := MarshalDocument(s.graph, vp)
	if err != nil {
		return "", err
	}
	s.graph.Name = name
	s.graph.Description = description
	return store.SaveWorkflow(ctx, &Workflow{
		Name:        name,
		Description: description,
		Data:        data,
	})
}
