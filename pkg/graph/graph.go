package graph

import (
	"sort"

	"github.com/kje7713-dev/Grappling-Chainz/pkg/domain"
)

// Graph stores positions and the transitions between them. The zero value
// is not usable; construct with New.
type Graph struct {
	positions map[string]domain.Position
	edges     map[string][]domain.Transition

	// transitions keeps every edge in global insertion order, for
	// introspection and curriculum export.
	transitions []domain.Transition
}

// New creates an empty position graph.
func New() *Graph {
	return &Graph{
		positions: make(map[string]domain.Position),
		edges:     make(map[string][]domain.Transition),
	}
}

// AddPosition inserts a position, keyed by its ID. Adding a position with
// an existing ID overwrites the prior entry; transitions referencing that
// ID remain valid because edges link by ID, not by object identity.
func (g *Graph) AddPosition(p domain.Position) {
	g.positions[p.ID] = p
}

// AddTransition appends a transition to its source's edge list. No
// referential check is performed: edges may point at positions that were
// never added, and lookups from such IDs simply find nothing.
func (g *Graph) AddTransition(t domain.Transition) {
	g.transitions = append(g.transitions, t)
	g.edges[t.From] = append(g.edges[t.From], t)
}

// GetPosition returns the position for the given ID. Absence is a normal
// outcome, reported through the second return value.
func (g *Graph) GetPosition(id string) (domain.Position, bool) {
	p, ok := g.positions[id]
	return p, ok
}

// TransitionsFrom returns every transition whose source is id, in insertion
// order. Unknown IDs and positions without outgoing edges both yield an
// empty slice.
func (g *Graph) TransitionsFrom(id string) []domain.Transition {
	edges := g.edges[id]
	out := make([]domain.Transition, len(edges))
	copy(out, edges)
	return out
}

// DefaultDrills returns the position's default-drill list, or an empty
// slice if the position is absent.
func (g *Graph) DefaultDrills(id string) []domain.DrillPrescription {
	p, ok := g.positions[id]
	if !ok {
		return nil
	}
	return p.DefaultDrills
}

// Positions returns every stored position, sorted by ID for deterministic
// iteration. Used by introspection tools (catalog listing, MCP resources).
func (g *Graph) Positions() []domain.Position {
	out := make([]domain.Position, 0, len(g.positions))
	for _, p := range g.positions {
		out = append(out, p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].ID < out[j].ID })
	return out
}

// Transitions returns every transition in global insertion order.
func (g *Graph) Transitions() []domain.Transition {
	out := make([]domain.Transition, len(g.transitions))
	copy(out, g.transitions)
	return out
}

// Len returns the number of stored positions.
func (g *Graph) Len() int {
	return len(g.positions)
}
