package flow

import "github.com/google/uuid"

// DefaultPasteOffset displaces pasted nodes so they never sit exactly on
// top of the originals.
var DefaultPasteOffset = Position{X: 40, Y: 40}

// Clipboard holds a detached copy of a node subset and its induced edges.
// It is independent of the live graph: mutations after Copy don't reach it.
type Clipboard struct {
	nodes []Node
	edges []Edge
}

// Copy extracts the nodes with the given ids plus every edge whose both
// endpoints are in the set (the induced subgraph), replacing any previous
// clipboard content. Unknown ids are ignored.
func (c *Clipboard) Copy(g *Graph, nodeIDs []string) {
	selected := make(map[string]bool, len(nodeIDs))
	for _, id := range nodeIDs {
		selected[id] = true
	}

	c.nodes = c.nodes[:0]
	for _, n := range g.Nodes {
		if selected[n.ID] {
			c.nodes = append(c.nodes, cloneNode(n))
		}
	}

	c.edges = c.edges[:0]
	for _, e := range g.Edges {
		if selected[e.Source] && selected[e.Target] {
			c.edges = append(c.edges, e)
		}
	}
}

// Empty reports whether the clipboard holds no nodes.
func (c *Clipboard) Empty() bool { return len(c.nodes) == 0 }

// Paste inserts offset copies of the clipboard content into the graph.
// Every node gets a fresh id; edges are rewritten through the old→new map in
// a second pass so no pasted edge can reference an original node. The pasted
// elements become the graph's sole selection. Pasting an empty clipboard is
// a no-op.
func (c *Clipboard) Paste(g *Graph, offset Position) {
	if c.Empty() {
		return
	}

	idMap := make(map[string]string, len(c.nodes))
	pastedNodes := make([]string, 0, len(c.nodes))
	for _, n := range c.nodes {
		pasted := cloneNode(n)
		pasted.ID = uuid.NewString()
		pasted.Position.X += offset.X
		pasted.Position.Y += offset.Y
		idMap[n.ID] = pasted.ID
		g.Nodes = append(g.Nodes, pasted)
		pastedNodes = append(pastedNodes, pasted.ID)
	}

	pastedEdges := make([]string, 0, len(c.edges))
	for _, e := range c.edges {
		pasted := e
		pasted.ID = uuid.NewString()
		pasted.Source = idMap[e.Source]
		pasted.Target = idMap[e.Target]
		g.Edges = append(g.Edges, pasted)
		pastedEdges = append(pastedEdges, pasted.ID)
	}

	g.SetSelection(pastedNodes, pastedEdges)
}
