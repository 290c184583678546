package session

import (
	"sort"

	"github.com/kje7713-dev/Grappling-Chainz/pkg/domain"
	"github.com/kje7713-dev/Grappling-Chainz/pkg/graph"
)

// HistoryEntry records one step of the walk: the position occupied when the
// action was chosen, and the action's label.
type HistoryEntry struct {
	PositionID string `json:"position_id"`
	Action     string `json:"action"`
}

// StepResult is the outcome of taking a transition. Position is nil when
// the destination ID is dangling; Drill is nil when the transition carried
// none. Neither absence is an error.
type StepResult struct {
	Position *domain.Position          `json:"position,omitempty"`
	Drill    *domain.DrillPrescription `json:"drill,omitempty"`
}

// Summary aggregates a finished (or in-flight) walk. PositionsVisited
// counts the starting position, so it is always len(ActionsTaken)+1.
type Summary struct {
	PositionsVisited int                        `json:"positions_visited"`
	ActionsTaken     []string                   `json:"actions_taken"`
	TotalDrills      int                        `json:"total_drills"`
	Drills           []domain.DrillPrescription `json:"drills"`
}

// Session is one walk through a position graph.
type Session struct {
	graph   *graph.Graph
	current string
	history []HistoryEntry
	drills  []domain.DrillPrescription
}

// New starts a session at the given position ID. The ID is not validated
// against the graph: starting on a dangling ID is legitimate, and the walk
// then terminates at the presentation layer.
func New(g *graph.Graph, startID string) *Session {
	return &Session{
		graph:   g,
		current: startID,
	}
}

// CurrentID returns the ID of the position the session currently occupies.
func (s *Session) CurrentID() string {
	return s.current
}

// CurrentPosition resolves the current ID through the graph. The ID may be
// dangling, in which case ok is false.
func (s *Session) CurrentPosition() (domain.Position, bool) {
	return s.graph.GetPosition(s.current)
}

// AvailableActions returns the outgoing transitions of the current
// position, ordered by the presentation policy: probability descending,
// ties keeping the graph's insertion order. An empty result is the
// designed terminal condition.
func (s *Session) AvailableActions() []domain.Transition {
	return OrderByProbability(s.graph.TransitionsFrom(s.current))
}

// TakeAction applies a transition previously returned by AvailableActions.
// A transition whose origin does not match the current position is refused
// with domain.ErrStaleTransition so a misbehaving caller cannot silently
// desynchronize the history from the graph topology.
//
// On success the step is recorded, any attached drill is collected, and the
// session moves to the transition's destination. The returned StepResult
// reports the new position (nil if the destination is dangling) and the
// drill (nil if none).
func (s *Session) TakeAction(t domain.Transition) (StepResult, error) {
	if t.From != s.current {
		return StepResult{}, domain.ErrStaleTransition
	}

	s.history = append(s.history, HistoryEntry{PositionID: s.current, Action: t.Action})
	if t.Drill != nil {
		s.drills = append(s.drills, *t.Drill)
	}
	s.current = t.To

	res := StepResult{Drill: t.Drill}
	if p, ok := s.graph.GetPosition(s.current); ok {
		res.Position = &p
	}
	return res, nil
}

// History returns the steps taken so far, oldest first.
func (s *Session) History() []HistoryEntry {
	out := make([]HistoryEntry, len(s.history))
	copy(out, s.history)
	return out
}

// Summary reports the walk so far. Drills appear in the order earned;
// duplicates are kept when several edges prescribe the same drill.
func (s *Session) Summary() Summary {
	actions := make([]string, len(s.history))
	for i, h := range s.history {
		actions[i] = h.Action
	}
	drills := make([]domain.DrillPrescription, len(s.drills))
	copy(drills, s.drills)
	return Summary{
		PositionsVisited: len(s.history) + 1,
		ActionsTaken:     actions,
		TotalDrills:      len(s.drills),
		Drills:           drills,
	}
}

// OrderByProbability sorts transitions by probability, highest first,
// preserving the relative order of equal probabilities. It returns a new
// slice; the input is not modified. Stateless adapters use it to apply the
// same ordering policy as a live session.
func OrderByProbability(ts []domain.Transition) []domain.Transition {
	out := make([]domain.Transition, len(ts))
	copy(out, ts)
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].Probability > out[j].Probability
	})
	return out
}
