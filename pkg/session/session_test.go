package session_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kje7713-dev/Grappling-Chainz/pkg/domain"
	"github.com/kje7713-dev/Grappling-Chainz/pkg/graph"
	"github.com/kje7713-dev/Grappling-Chainz/pkg/session"
)

func newTestGraph() *graph.Graph {
	g := graph.New()
	g.AddPosition(domain.Position{ID: "closed_guard", Name: "Closed Guard"})
	g.AddPosition(domain.Position{ID: "broken_posture", Name: "Broken Posture"})
	return g
}

func TestAvailableActions_OrderedByProbability(t *testing.T) {
	g := newTestGraph()
	// Insertion order A(0.3), B(0.7), C(0.7); expect B, C, A.
	g.AddTransition(domain.Transition{From: "closed_guard", To: "closed_guard", Action: "A", Probability: 0.3, Quality: domain.QualityPoor})
	g.AddTransition(domain.Transition{From: "closed_guard", To: "broken_posture", Action: "B", Probability: 0.7, Quality: domain.QualityGood})
	g.AddTransition(domain.Transition{From: "closed_guard", To: "broken_posture", Action: "C", Probability: 0.7, Quality: domain.QualityGood})

	sess := session.New(g, "closed_guard")

	got := sess.AvailableActions()
	require.Len(t, got, 3)
	assert.Equal(t, "B", got[0].Action, "highest probability first")
	assert.Equal(t, "C", got[1].Action, "ties keep insertion order")
	assert.Equal(t, "A", got[2].Action)
}

func TestTakeAction_HistoryGrowth(t *testing.T) {
	g := newTestGraph()
	// Self-loop so the walk can repeat indefinitely.
	g.AddTransition(domain.Transition{From: "closed_guard", To: "closed_guard", Action: "Weak posture break attempt", Probability: 0.3, Quality: domain.QualityPoor})

	sess := session.New(g, "closed_guard")

	const n = 5
	for i := 0; i < n; i++ {
		actions := sess.AvailableActions()
		require.NotEmpty(t, actions)
		_, err := sess.TakeAction(actions[0])
		require.NoError(t, err)
	}

	sum := sess.Summary()
	assert.Equal(t, n+1, sum.PositionsVisited, "starting position counts")
	assert.Len(t, sum.ActionsTaken, n)
}

func TestTakeAction_DrillAccumulation(t *testing.T) {
	g := newTestGraph()
	drill := domain.DrillPrescription{Name: "Posture Break Repetition Drill", Repetitions: 15}
	g.AddTransition(domain.Transition{From: "closed_guard", To: "broken_posture", Action: "break", Probability: 0.7, Quality: domain.QualityGood, Drill: &drill})
	g.AddTransition(domain.Transition{From: "broken_posture", To: "closed_guard", Action: "recover", Probability: 0.5, Quality: domain.QualityPoor})

	sess := session.New(g, "closed_guard")

	res, err := sess.TakeAction(sess.AvailableActions()[0])
	require.NoError(t, err)
	require.NotNil(t, res.Drill)
	assert.Equal(t, "Posture Break Repetition Drill", res.Drill.Name)

	sum := sess.Summary()
	require.Equal(t, 1, sum.TotalDrills)
	assert.Equal(t, drill, sum.Drills[0], "drill appears at the end of the log")

	// Drill-less transition leaves the count untouched.
	res, err = sess.TakeAction(sess.AvailableActions()[0])
	require.NoError(t, err)
	assert.Nil(t, res.Drill)
	assert.Equal(t, 1, sess.Summary().TotalDrills)
}

func TestTakeAction_StaleTransitionRejected(t *testing.T) {
	g := newTestGraph()
	g.AddTransition(domain.Transition{From: "closed_guard", To: "broken_posture", Action: "break", Probability: 0.7, Quality: domain.QualityGood})
	g.AddTransition(domain.Transition{From: "broken_posture", To: "closed_guard", Action: "recover", Probability: 0.5, Quality: domain.QualityPoor})

	sess := session.New(g, "closed_guard")
	foreign := g.TransitionsFrom("broken_posture")[0]

	_, err := sess.TakeAction(foreign)
	require.ErrorIs(t, err, domain.ErrStaleTransition)

	// The refused action must leave no trace.
	sum := sess.Summary()
	assert.Equal(t, 1, sum.PositionsVisited)
	assert.Empty(t, sum.ActionsTaken)
	assert.Equal(t, "closed_guard", sess.CurrentID())
}

func TestTakeAction_DanglingDestination(t *testing.T) {
	g := newTestGraph()
	g.AddTransition(domain.Transition{From: "closed_guard", To: "phantom", Action: "vanish", Probability: 0.9, Quality: domain.QualityFailure})

	sess := session.New(g, "closed_guard")
	res, err := sess.TakeAction(sess.AvailableActions()[0])
	require.NoError(t, err, "dangling destination is not an error")
	assert.Nil(t, res.Position)
	assert.Equal(t, "phantom", sess.CurrentID())
	assert.Empty(t, sess.AvailableActions())
}

func TestSession_DanglingStart(t *testing.T) {
	g := newTestGraph()
	sess := session.New(g, "nonexistent")

	_, ok := sess.CurrentPosition()
	assert.False(t, ok)
	assert.Empty(t, sess.AvailableActions())

	sum := sess.Summary()
	assert.Equal(t, 1, sum.PositionsVisited)
	assert.Zero(t, sum.TotalDrills)
}

func TestOrderByProbability_DoesNotMutateInput(t *testing.T) {
	in := []domain.Transition{
		{Action: "low", Probability: 0.1},
		{Action: "high", Probability: 0.9},
	}
	out := session.OrderByProbability(in)

	assert.Equal(t, "high", out[0].Action)
	assert.Equal(t, "low", in[0].Action, "input order untouched")
}

func TestHistory_RecordsOriginPosition(t *testing.T) {
	g := newTestGraph()
	g.AddTransition(domain.Transition{From: "closed_guard", To: "broken_posture", Action: "break", Probability: 0.7, Quality: domain.QualityGood})

	sess := session.New(g, "closed_guard")
	_, err := sess.TakeAction(sess.AvailableActions()[0])
	require.NoError(t, err)

	hist := sess.History()
	require.Len(t, hist, 1)
	assert.Equal(t, "closed_guard", hist[0].PositionID, "history records the origin, not the destination")
	assert.Equal(t, "break", hist[0].Action)
}
