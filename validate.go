package flow

import (
	"fmt"
	"strings"
)

// FindingCode identifies a structural or content check.
type FindingCode string

const (
	FindingDisconnectedNodes FindingCode = "disconnected_nodes"
	FindingDanglingEdges     FindingCode = "dangling_edges"
	FindingCycle             FindingCode = "cycle"
	FindingUnassignedSteps   FindingCode = "unassigned_steps"
	FindingUnnamedSteps      FindingCode = "unnamed_steps"
)

// Finding is an advisory validation result. Findings never block a save;
// surfacing them to the author is the caller's concern.
type Finding struct {
	Code    FindingCode `json:"code"`
	Message string      `json:"message"`
	Count   int         `json:"count,omitempty"`
}

// Validate runs every structural and content check over the graph and
// returns the concatenated findings. It is read-only and never mutates.
func Validate(g *Graph) []Finding {
	findings := []Finding{}

	present := make(map[string]bool, len(g.Nodes))
	for _, n := range g.Nodes {
		present[n.ID] = true
	}

	if n := countDisconnected(g, present); n > 0 {
		findings = append(findings, Finding{
			Code:    FindingDisconnectedNodes,
			Message: fmt.Sprintf("%d node(s) are not connected to the flow", n),
			Count:   n,
		})
	}

	if n := countDangling(g, present); n > 0 {
		findings = append(findings, Finding{
			Code:    FindingDanglingEdges,
			Message: fmt.Sprintf("%d edge(s) reference a missing node", n),
			Count:   n,
		})
	}

	if hasCycle(g.Nodes, g.Edges) {
		findings = append(findings, Finding{
			Code:    FindingCycle,
			Message: "the flow contains a cycle",
		})
	}

	if n := countSteps(g, func(d NodeData) bool { return len(d.People) == 0 }); n > 0 {
		findings = append(findings, Finding{
			Code:    FindingUnassignedSteps,
			Message: fmt.Sprintf("%d step(s) have nobody assigned", n),
			Count:   n,
		})
	}

	if n := countSteps(g, func(d NodeData) bool { return strings.TrimSpace(d.Action) == "" }); n > 0 {
		findings = append(findings, Finding{
			Code:    FindingUnnamedSteps,
			Message: fmt.Sprintf("%d step(s) have no action set", n),
			Count:   n,
		})
	}

	return findings
}

// countDisconnected counts degree-zero nodes. Dangling edges grant no
// degree: an edge into a missing node doesn't connect anything. A
// single-node graph is never flagged: there is nothing to connect to yet.
func countDisconnected(g *Graph, present map[string]bool) int {
	if len(g.Nodes) <= 1 {
		return 0
	}
	connected := make(map[string]bool, len(g.Nodes))
	for _, e := range g.Edges {
		if present[e.Source] && present[e.Target] {
			connected[e.Source] = true
			connected[e.Target] = true
		}
	}
	n := 0
	for _, node := range g.Nodes {
		if !connected[node.ID] {
			n++
		}
	}
	return n
}

// countDangling counts edges with an absent source or target. Mutators
// can't produce them, but a hydrated document can carry them.
func countDangling(g *Graph, present map[string]bool) int {
	n := 0
	for _, e := range g.Edges {
		if !present[e.Source] || !present[e.Target] {
			n++
		}
	}
	return n
}

// countSteps counts step nodes whose payload matches the predicate.
func countSteps(g *Graph, match func(NodeData) bool) int {
	n := 0
	for _, node := range g.Nodes {
		if node.Kind == KindStep && match(node.Data) {
			n++
		}
	}
	return n
}

// hasCycle reports whether the directed edge set contains a cycle, using a
// three-color DFS. A back-edge into a node on the recursion stack signals
// the cycle; the specific cycle is not reported.
func hasCycle(nodes []Node, edges []Edge) bool {
	adj := make(map[string][]string)
	for _, e := range edges {
		adj[e.Source] = append(adj[e.Source], e.Target)
	}

	const (
		unvisited = 0
		visiting  = 1
		visited   = 2
	)

	state := make(map[string]int)
	for _, n := range nodes {
		state[n.ID] = unvisited
	}
	// Also include nodes referenced only in edges.
	for _, e := range edges {
		if _, ok := state[e.Source]; !ok {
			state[e.Source] = unvisited
		}
		if _, ok := state[e.Target]; !ok {
			state[e.Target] = unvisited
		}
	}

	var dfs func(id string) bool
	dfs = func(id string) bool {
		state[id] = visiting
		for _, next := range adj[id] {
			switch state[next] {
			case visiting:
				return true
			case unvisited:
				if dfs(next) {
					return true
				}
			}
		}
		state[id] = visited
		return false
	}

	for id, s := range state {
		if s == unvisited {
			if dfs(id) {
				return true
			}
		}
	}

	return false
}
