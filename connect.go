package flow

import "github.com/google/uuid"

// Named connection handles. Decision nodes expose yes/no outputs; all other
// kinds use the compass handles.
const (
	HandleTop    = "top"
	HandleBottom = "bottom"
	HandleLeft   = "left"
	HandleRight  = "right"
	HandleYes    = "yes"
	HandleNo     = "no"
)

// DefaultSourceHandle returns the handle used when a connection is drawn
// from a node without naming a port. Pure function of the kind.
func DefaultSourceHandle(kind NodeKind) string {
	switch kind {
	case KindDecision:
		return HandleYes
	case KindStart:
		return HandleBottom
	default:
		return HandleBottom
	}
}

// DefaultTargetHandle returns the handle used when a connection is drawn
// into a node without naming a port. Pure function of the kind.
func DefaultTargetHandle(kind NodeKind) string {
	return HandleTop
}

// Connect creates an edge between two nodes. Empty handles are resolved from
// the endpoint kinds via DefaultSourceHandle/DefaultTargetHandle and written
// into the edge, so later changes to the defaults never rewrite stored
// edges. Self-loops are accepted; they surface through validation as a
// cycle. Returns ErrNodeNotFound if either endpoint is missing.
func (g *Graph) Connect(sourceID, sourceHandle, targetID, targetHandle, label string) (Edge, error) {
	source := g.Node(sourceID)
	if source == nil {
		return Edge{}, ErrNodeNotFound
	}
	target := g.Node(targetID)
	if target == nil {
		return Edge{}, ErrNodeNotFound
	}

	if sourceHandle == "" {
		sourceHandle = DefaultSourceHandle(source.Kind)
	}
	if targetHandle == "" {
		targetHandle = DefaultTargetHandle(target.Kind)
	}

	e := Edge{
		ID:           uuid.NewString(),
		Source:       sourceID,
		Target:       targetID,
		SourceHandle: sourceHandle,
		TargetHandle: targetHandle,
		Label:        label,
	}
	g.Edges = append(g.Edges, e)
	return e, nil
}
