package postgres

import (
	"context"
	"fmt"

	"github.com/crewplan/flow"
	"github.com/google/uuid"
)

// SaveWorkflow upserts a workflow document with its metadata.
// If w.ID is empty, a UUID is auto-generated. Last write wins: there is no
// merge strategy for concurrent saves of the same workflow.
// Returns the workflow ID (generated or provided).
func (s *PGStore) SaveWorkflow(ctx context.Context, w *flow.Workflow) (string, error) {
	if w.ID == "" {
		w.ID = uuid.NewString()
	}

	_, err := s.db.Exec(ctx,
		`INSERT INTO workflows (id, name, description, data) VALUES ($1, $2, $3, $4)
		 ON CONFLICT (id) DO UPDATE
		 SET name = EXCLUDED.name, description = EXCLUDED.description,
		     data = EXCLUDED.data, updated_at = NOW()`,
		w.ID, w.Name, w.Description, w.Data,
	)
	if err != nil {
		return "", fmt.Errorf("flow: save workflow: %w", err)
	}

	return w.ID, nil
}

// GetWorkflow fetches a single workflow by its ID.
// Returns nil, nil if not found.
func (s *PGStore) GetWorkflow(ctx context.Context, id string) (*flow.Workflow, error) {
	var w flow.Workflow
	err := s.db.QueryRow(ctx,
		`SELECT id, name, description, data FROM workflows WHERE id = $1`, id,
	).Scan(&w.ID, &w.Name, &w.Description, &w.Data)

	if err != nil {
		if isNoRows(err) {
			return nil, nil
		}
		return nil, fmt.Errorf("flow: get workflow: %w", err)
	}

	return &w, nil
}

// ListWorkflows returns all workflows ordered by last update, newest first.
// Returns an empty slice (not nil) if none found.
func (s *PGStore) ListWorkflows(ctx context.Context) ([]flow.Workflow, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, name, description, data FROM workflows ORDER BY updated_at DESC`)
	if err != nil {
		return nil, fmt.Errorf("flow: list workflows: %w", err)
	}
	defer rows.Close()

	workflows := []flow.Workflow{}
	for rows.Next() {
		var w flow.Workflow
		if err := rows.Scan(&w.ID, &w.Name, &w.Description, &w.Data); err != nil {
			return nil, fmt.Errorf("flow: scan workflow: %w", err)
		}
		workflows = append(workflows, w)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("flow: rows workflows: %w", err)
	}

	return workflows, nil
}

// DeleteWorkflow removes a workflow by its ID.
// No error if the workflow doesn't exist.
func (s *PGStore) DeleteWorkflow(ctx context.Context, id string) error {
	_, err := s.db.Exec(ctx, `DELETE FROM workflows WHERE id = $1`, id)
	if err != nil {
		return fmt.Errorf("flow: delete workflow: %w", err)
	}
	return nil
}
