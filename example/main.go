package main

import (
	"context"
	"encoding/json"
	"fmt"
	"log"
	"os"

	"github.com/crewplan/flow"
	"github.com/crewplan/flow/postgres"
	"github.com/jackc/pgx/v5/pgxpool"
)

func main() {
	ctx := context.Background()

	dbURL := os.Getenv("DATABASE_URL")
	if dbURL == "" {
		log.Fatal("DATABASE_URL is not set")
	}

	pool, err := pgxpool.New(ctx, dbURL)
	if err != nil {
		log.Fatalf("connect: %v", err)
	}
	defer pool.Close()

	// Wire up the postgres implementation behind the Store interface.
	var store flow.Store = postgres.New(pool)

	if err := store.CreateSchema(ctx); err != nil {
		log.Fatalf("schema: %v", err)
	}
	fmt.Println("schema created")

	// ── Author a small onboarding flow ────────────────────────────────
	s := flow.NewSession("Customer onboarding", "From signup to first invoice")

	start := s.AddNode(flow.KindStart, flow.Position{X: 100, Y: 0}, flow.NodeData{Action: "Start"})
	review := s.AddNode(flow.KindStep, flow.Position{X: 100, Y: 120}, flow.NodeData{
		Action:      "Review application",
		Description: "Check the signup form for completeness",
		People:      []string{flow.PersonUser},
		Tools:       []string{"crm"},
	})
	approve := s.AddNode(flow.KindDecision, flow.Position{X: 100, Y: 240}, flow.NodeData{
		Action: "Approved?",
		People: []string{flow.PersonUser},
	})
	end := s.AddNode(flow.KindEnd, flow.Position{X: 100, Y: 360}, flow.NodeData{Action: "End"})

	mustConnect(s, start.ID, review.ID)
	mustConnect(s, review.ID, approve.ID)
	// Decision without an explicit source handle connects from "yes".
	mustConnect(s, approve.ID, end.ID)

	// ── Undo/redo ─────────────────────────────────────────────────────
	s.Undo()
	fmt.Printf("after undo: %d edges\n", len(s.Graph().Edges))
	s.Redo()
	fmt.Printf("after redo: %d edges\n", len(s.Graph().Edges))

	// ── Copy/paste ────────────────────────────────────────────────────
	s.SetSelection([]string{review.ID, approve.ID}, nil)
	s.Copy()
	s.Paste()
	fmt.Printf("after paste: %d nodes, %d edges\n", len(s.Graph().Nodes), len(s.Graph().Edges))

	// ── Validate ──────────────────────────────────────────────────────
	for _, f := range flow.Validate(s.Graph()) {
		fmt.Printf("finding: %s\n", f.Message)
	}

	// ── Save ──────────────────────────────────────────────────────────
	id, err := s.Save(ctx, store, "Customer onboarding", "From signup to first invoice", flow.DefaultViewport)
	if err != nil {
		log.Fatalf("save: %v", err)
	}
	fmt.Printf("saved workflow: %s\n", id)

	// ── Load it back ──────────────────────────────────────────────────
	w, err := store.GetWorkflow(ctx, id)
	if err != nil {
		log.Fatalf("get workflow: %v", err)
	}
	reopened, _, err := flow.OpenSession(w.Name, w.Description, w.Data)
	if err != nil {
		log.Fatalf("open: %v", err)
	}
	fmt.Printf("reopened %q: %d nodes\n", w.Name, len(reopened.Graph().Nodes))
	printJSON(flow.DocumentFromGraph(reopened.Graph(), flow.DefaultViewport))

	// ── Cleanup ───────────────────────────────────────────────────────
	if err := store.DeleteWorkflow(ctx, id); err != nil {
		log.Fatalf("delete: %v", err)
	}
	fmt.Println("workflow deleted")
}

func mustConnect(s *flow.Session, source, target string) {
	if _, err := s.Connect(source, "", target, "", ""); err != nil {
		log.Fatalf("connect: %v", err)
	}
}

func printJSON(v any) {
	out, _ := json.MarshalIndent(v, "", "  ")
	fmt.Println(string(out))
}
