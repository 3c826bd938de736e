package flow

import (
	"encoding/json"
	"fmt"
)

// Viewport is the canvas camera, stored and returned verbatim.
type Viewport struct {
	X    float64 `json:"x"`
	Y    float64 `json:"y"`
	Zoom float64 `json:"zoom"`
}

// DefaultViewport is used when a document carries no viewport.
var DefaultViewport = Viewport{Zoom: 1}

// Document is the persisted workflow shape: what the storage collaborator
// keeps as a single text field.
type Document struct {
	Nodes    []DocumentNode `json:"nodes"`
	Edges    []DocumentEdge `json:"edges"`
	Viewport Viewport       `json:"viewport"`
}

// DocumentNode mirrors a node for persistence. Data carries the full
// kind-specific payload plus a label every consumer can show without
// knowing the kind.
type DocumentNode struct {
	ID       string           `json:"id"`
	Kind     NodeKind         `json:"kind"`
	Position Position         `json:"position"`
	Data     DocumentNodeData `json:"data"`
}

// DocumentNodeData is the node payload with the derived label merged in.
type DocumentNodeData struct {
	Label string `json:"label"`
	NodeData
}

// DocumentEdge mirrors an edge for persistence. Label is a string or
// absent, never any other JSON value.
type DocumentEdge struct {
	ID           string `json:"id"`
	Source       string `json:"source"`
	Target       string `json:"target"`
	SourceHandle string `json:"sourceHandle,omitempty"`
	TargetHandle string `json:"targetHandle,omitempty"`
	Type         string `json:"type,omitempty"`
	Label        string `json:"label,omitempty"`
}

// labelOf derives the human-readable name of a node: the title for notes,
// the action for everything else.
func labelOf(n Node) string {
	if n.Kind == KindNotes {
		return n.Data.Title
	}
	return n.Data.Action
}

// DocumentFromGraph converts the graph into its persisted shape.
func DocumentFromGraph(g *Graph, vp Viewport) Document {
	doc := Document{
		Nodes:    make([]DocumentNode, len(g.Nodes)),
		Edges:    make([]DocumentEdge, len(g.Edges)),
		Viewport: vp,
	}
	for i, n := range g.Nodes {
		doc.Nodes[i] = DocumentNode{
			ID:       n.ID,
			Kind:     n.Kind,
			Position: n.Position,
			Data: DocumentNodeData{
				Label:    labelOf(n),
				NodeData: cloneNode(n).Data,
			},
		}
	}
	for i, e := range g.Edges {
		doc.Edges[i] = DocumentEdge{
			ID:           e.ID,
			Source:       e.Source,
			Target:       e.Target,
			SourceHandle: e.SourceHandle,
			TargetHandle: e.TargetHandle,
			Type:         e.Type,
			Label:        e.Label,
		}
	}
	return doc
}

// GraphFromDocument rebuilds a graph from its persisted shape. Structural
// defects (duplicate or missing node ids, unknown kinds) are rejected with
// ErrParse; dangling edges are kept and left to validation.
func GraphFromDocument(doc Document) (*Graph, error) {
	g := NewGraph("", "")
	seen := make(map[string]bool, len(doc.Nodes))
	for _, dn := range doc.Nodes {
		if dn.ID == "" {
			return nil, fmt.Errorf("%w: node without id", ErrParse)
		}
		if seen[dn.ID] {
			return nil, fmt.Errorf("%w: duplicate node id %q", ErrParse, dn.ID)
		}
		if !KnownKind(dn.Kind) {
			return nil, fmt.Errorf("%w: unknown node kind %q", ErrParse, dn.Kind)
		}
		seen[dn.ID] = true

		data := dn.Data.NodeData
		if dn.Kind == KindNotes && !KnownNoteColor(data.Color) {
			data.Color = DefaultNoteColor
		}
		g.Nodes = append(g.Nodes, Node{
			ID:       dn.ID,
			Kind:     dn.Kind,
			Position: dn.Position,
			Data:     data,
		})
	}
	seenEdges := make(map[string]bool, len(doc.Edges))
	for _, de := range doc.Edges {
		if de.ID == "" || de.Source == "" || de.Target == "" {
			return nil, fmt.Errorf("%w: edge %q missing id or endpoint", ErrParse, de.ID)
		}
		if seenEdges[de.ID] {
			return nil, fmt.Errorf("%w: duplicate edge id %q", ErrParse, de.ID)
		}
		seenEdges[de.ID] = true
		g.Edges = append(g.Edges, Edge{
			ID:           de.ID,
			Source:       de.Source,
			Target:       de.Target,
			SourceHandle: de.SourceHandle,
			TargetHandle: de.TargetHandle,
			Type:         de.Type,
			Label:        de.Label,
		})
	}
	return g, nil
}

// MarshalDocument serializes the graph to the persisted JSON document.
func MarshalDocument(g *Graph, vp Viewport) ([]byte, error) {
	return json.Marshal(DocumentFromGraph(g, vp))
}

// UnmarshalDocument parses a persisted JSON document into a fresh graph.
// Malformed input fails with an error wrapping ErrParse and no graph; the
// caller keeps whatever state it had. A zero viewport is replaced with the
// default so a missing viewport never yields zoom 0.
func UnmarshalDocument(data []byte) (*Graph, Viewport, error) {
	var doc Document
	if err := json.Unmarshal(data, &doc); err != nil {
		return nil, Viewport{}, fmt.Errorf("%w: %v", ErrParse, err)
	}
	g, err := GraphFromDocument(doc)
	if err != nil {
		return nil, Viewport{}, err
	}
	vp := doc.Viewport
	if vp == (Viewport{}) {
		vp = DefaultViewport
	}
	return g, vp, nil
}
