package flow

// NodeKind discriminates the closed set of node variants. A node's kind is
// fixed at creation and never changes.
type NodeKind string

const (
	KindStep     NodeKind = "step"
	KindNotes    NodeKind = "notes"
	KindDecision NodeKind = "decision"
	KindStart    NodeKind = "start"
	KindEnd      NodeKind = "end"
	KindParallel NodeKind = "parallel"
)

// KnownKind reports whether k is one of the supported node kinds.
func KnownKind(k NodeKind) bool {
	switch k {
	case KindStep, KindNotes, KindDecision, KindStart, KindEnd, KindParallel:
		return true
	}
	return false
}

// Sentinel people tokens. The People list of a node holds real person ids,
// or one of these placeholders for parties outside the organisation.
const (
	PersonUser     = "user"
	PersonCustomer = "customer"
)

// NoteColor is the named color of a notes node.
type NoteColor string

const (
	ColorYellow NoteColor = "yellow"
	ColorBlue   NoteColor = "blue"
	ColorGreen  NoteColor = "green"
	ColorPink   NoteColor = "pink"
	ColorPurple NoteColor = "purple"
	ColorOrange NoteColor = "orange"
	ColorRed    NoteColor = "red"
	ColorGray   NoteColor = "gray"
)

// DefaultNoteColor is used when a document carries a color outside the set.
const DefaultNoteColor = ColorYellow

// KnownNoteColor reports whether c is one of the eight named note colors.
func KnownNoteColor(c NoteColor) bool {
	switch c {
	case ColorYellow, ColorBlue, ColorGreen, ColorPink, ColorPurple, ColorOrange, ColorRed, ColorGray:
		return true
	}
	return false
}

// Position holds x/y canvas coordinates. The engine passes them through
// untouched except for the paste offset.
type Position struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// Link is an external reference attached to a step.
type Link struct {
	URL         string `json:"url"`
	Description string `json:"description,omitempty"`
}

// NodeData is the kind-specific payload of a node. Which fields are
// meaningful depends on the kind: Action/Description/People/Tools/Links for
// step, decision and parallel nodes; Title/Content/Color for notes; Action
// alone for start and end markers.
type NodeData struct {
	Action      string    `json:"action,omitempty"`
	Description string    `json:"description,omitempty"`
	People      []string  `json:"people,omitempty"`
	Tools       []string  `json:"tools,omitempty"`
	Links       []Link    `json:"links,omitempty"`
	Title       string    `json:"title,omitempty"`
	Content     string    `json:"content,omitempty"`
	Color       NoteColor `json:"color,omitempty"`
}

// Node is a vertex of the authoring graph.
type Node struct {
	ID       string   `json:"id"`
	Kind     NodeKind `json:"kind"`
	Position Position `json:"position"`
	Data     NodeData `json:"data"`
	Selected bool     `json:"-"`
}

// Edge is a directed connection between two node handles.
type Edge struct {
	ID           string `json:"id"`
	Source       string `json:"source"`
	Target       string `json:"target"`
	SourceHandle string `json:"sourceHandle,omitempty"`
	TargetHandle string `json:"targetHandle,omitempty"`
	Type         string `json:"type,omitempty"`
	Label        string `json:"label,omitempty"`
	Selected     bool   `json:"-"`
}

// Graph is the authoring document for one workflow: nodes and edges in
// insertion order, plus name/description metadata. It is the unit of
// undo/redo snapshotting, copy/paste, validation and serialization.
type Graph struct {
	Name        string `json:"name"`
	Description string `json:"description"`
	Nodes       []Node `json:"nodes"`
	Edges       []Edge `json:"edges"`
}

// Person is an opaque external reference consumed by the engine. People are
// looked up by id only and never mutated here.
type Person struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Organisation string `json:"organisation"`
	Role         string `json:"role"`
}

// Tool is an opaque external reference consumed by the engine.
type Tool struct {
	ID       string `json:"id"`
	Name     string `json:"name"`
	Icon     string `json:"icon,omitempty"`
	Category string `json:"category"`
}
