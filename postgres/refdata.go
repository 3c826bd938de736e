package postgres

import (
	"context"
	"fmt"

	"github.com/crewplan/flow"
)

// ListPeople returns the people reference list, ordered by name.
// The engine only reads it; rows are maintained by the surrounding
// application.
func (s *PGStore) ListPeople(ctx context.Context) ([]flow.Person, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, name, organisation, role FROM people ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("flow: list people: %w", err)
	}
	defer rows.Close()

	people := []flow.Person{}
	for rows.Next() {
		var p flow.Person
		if err := rows.Scan(&p.ID, &p.Name, &p.Organisation, &p.Role); err != nil {
			return nil, fmt.Errorf("flow: scan person: %w", err)
		}
		people = append(people, p)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("flow: rows people: %w", err)
	}

	return people, nil
}

// ListTools returns the tools reference list, ordered by name.
func (s *PGStore) ListTools(ctx context.Context) ([]flow.Tool, error) {
	rows, err := s.db.Query(ctx,
		`SELECT id, name, icon, category FROM tools ORDER BY name`)
	if err != nil {
		return nil, fmt.Errorf("flow: list tools: %w", err)
	}
	defer rows.Close()

	tools := []flow.Tool{}
	for rows.Next() {
		var t flow.Tool
		if err := rows.Scan(&t.ID, &t.Name, &t.Icon, &t.Category); err != nil {
			return nil, fmt.Errorf("flow: scan tool: %w", err)
		}
		tools = append(tools, t)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("flow: rows tools: %w", err)
	}

	return tools, nil
}
