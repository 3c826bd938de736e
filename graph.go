package flow

import (
	"github.com/google/uuid"
)

// NewGraph creates an empty graph with authoring metadata.
func NewGraph(name, description string) *Graph {
	return &Graph{
		Name:        name,
		Description: description,
		Nodes:       []Node{},
		Edges:       []Edge{},
	}
}

// Node returns a pointer to the node with the given id, or nil.
// The pointer is valid until the next node insertion.
func (g *Graph) Node(id string) *Node {
	for i := range g.Nodes {
		if g.Nodes[i].ID == id {
			return &g.Nodes[i]
		}
	}
	return nil
}

// Edge returns a pointer to the edge with the given id, or nil.
// The pointer is valid until the next edge insertion.
func (g *Graph) Edge(id string) *Edge {
	for i := range g.Edges {
		if g.Edges[i].ID == id {
			return &g.Edges[i]
		}
	}
	return nil
}

// AddNode appends a new node of the given kind and returns a copy of it.
// The id is auto-generated.
func (g *Graph) AddNode(kind NodeKind, pos Position, data NodeData) Node {
	n := Node{
		ID:       uuid.NewString(),
		Kind:     kind,
		Position: pos,
		Data:     data,
	}
	g.Nodes = append(g.Nodes, n)
	return n
}

// UpdateNode applies fn to the node with the given id. The node's ID and
// Kind are immutable: changes to them inside fn are discarded.
// Returns ErrNodeNotFound if the node doesn't exist.
func (g *Graph) UpdateNode(id string, fn func(n *Node)) error {
	n := g.Node(id)
	if n == nil {
		return ErrNodeNotFound
	}
	kind := n.Kind
	fn(n)
	n.ID = id
	n.Kind = kind
	return nil
}

// RemoveNode deletes a node and cascades: every edge referencing the node is
// removed with it, so the graph never holds a dangling edge.
// Returns ErrNodeNotFound if the node doesn't exist.
func (g *Graph) RemoveNode(id string) error {
	if g.Node(id) == nil {
		return ErrNodeNotFound
	}
	nodes := g.Nodes[:0]
	for _, n := range g.Nodes {
		if n.ID != id {
			nodes = append(nodes, n)
		}
	}
	g.Nodes = nodes

	edges := g.Edges[:0]
	for _, e := range g.Edges {
		if e.Source != id && e.Target != id {
			edges = append(edges, e)
		}
	}
	g.Edges = edges
	return nil
}

// UpdateEdge applies fn to the edge with the given id. The edge's ID and
// endpoints are immutable: changes to them inside fn are discarded. Label,
// handles and type may be rewritten.
// Returns ErrEdgeNotFound if the edge doesn't exist.
func (g *Graph) UpdateEdge(id string, fn func(e *Edge)) error {
	e := g.Edge(id)
	if e == nil {
		return ErrEdgeNotFound
	}
	source, target := e.Source, e.Target
	fn(e)
	e.ID = id
	e.Source = source
	e.Target = target
	return nil
}

// RemoveEdge deletes an edge by id.
// Returns ErrEdgeNotFound if the edge doesn't exist.
func (g *Graph) RemoveEdge(id string) error {
	for i := range g.Edges {
		if g.Edges[i].ID == id {
			g.Edges = append(g.Edges[:i], g.Edges[i+1:]...)
			return nil
		}
	}
	return ErrEdgeNotFound
}

// SetSelection marks exactly the listed nodes and edges as selected,
// clearing every other selection flag. Node and edge selection may coexist.
func (g *Graph) SetSelection(nodeIDs, edgeIDs []string) {
	nodeSet := make(map[string]bool, len(nodeIDs))
	for _, id := range nodeIDs {
		nodeSet[id] = true
	}
	edgeSet := make(map[string]bool, len(edgeIDs))
	for _, id := range edgeIDs {
		edgeSet[id] = true
	}
	for i := range g.Nodes {
		g.Nodes[i].Selected = nodeSet[g.Nodes[i].ID]
	}
	for i := range g.Edges {
		g.Edges[i].Selected = edgeSet[g.Edges[i].ID]
	}
}

// SelectedNodeIDs returns the ids of all selected nodes, in insertion order.
func (g *Graph) SelectedNodeIDs() []string {
	var ids []string
	for _, n := range g.Nodes {
		if n.Selected {
			ids = append(ids, n.ID)
		}
	}
	return ids
}

// cloneNode deep-copies a node, including its slice-valued payload fields.
func cloneNode(n Node) Node {
	c := n
	if n.Data.People != nil {
		c.Data.People = append([]string(nil), n.Data.People...)
	}
	if n.Data.Tools != nil {
		c.Data.Tools = append([]string(nil), n.Data.Tools...)
	}
	if n.Data.Links != nil {
		c.Data.Links = append([]Link(nil), n.Data.Links...)
	}
	return c
}

// cloneNodes deep-copies a node slice.
func cloneNodes(nodes []Node) []Node {
	out := make([]Node, len(nodes))
	for i, n := range nodes {
		out[i] = cloneNode(n)
	}
	return out
}

// cloneEdges copies an edge slice. Edges hold no reference types.
func cloneEdges(edges []Edge) []Edge {
	out := make([]Edge, len(edges))
	copy(out, edges)
	return out
}
