package flow

import (
	"context"
	"encoding/json"
	"errors"
)

var (
	ErrNodeNotFound     = errors.New("flow: node not found")
	ErrEdgeNotFound     = errors.New("flow: edge not found")
	ErrParse            = errors.New("flow: malformed workflow document")
	ErrWorkflowNotFound = errors.New("flow: workflow not found")
)

// Workflow is a persisted authoring document plus its metadata. Data is the
// serialized Document produced by MarshalDocument.
type Workflow struct {
	ID          string          `json:"id,omitempty"`
	Name        string          `json:"name"`
	Description string          `json:"description,omitempty"`
	Data        json.RawMessage `json:"data"`
}

// Store defines the contract for the persistence collaborator. The engine
// hands it fully-formed documents and never retries; retry, if any, lives
// behind this interface.
type Store interface {
	// Schema
	CreateSchema(ctx context.Context) error
	DropSchema(ctx context.Context) error

	// Workflows
	SaveWorkflow(ctx context.Context, w *Workflow) (string, error)
	GetWorkflow(ctx context.Context, id string) (*Workflow, error)
	ListWorkflows(ctx context.Context) ([]Workflow, error)
	DeleteWorkflow(ctx context.Context, id string) error

	// Reference lists, read-only for the engine
	ListPeople(ctx context.Context) ([]Person, error)
	ListTools(ctx context.Context) ([]Tool, error)
}
