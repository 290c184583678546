package tui

import (
	"strings"
	"testing"

	"github.com/kje7713-dev/Grappling-Chainz/pkg/domain"
	"github.com/kje7713-dev/Grappling-Chainz/pkg/session"
)

func TestFormatPosition(t *testing.T) {
	p := domain.Position{
		Name:           "Closed Guard",
		Description:    "Legs locked around the waist",
		Advantages:     []string{"Control posture"},
		CommonMistakes: []string{"Flat back"},
	}

	out := FormatPosition(p)
	for _, want := range []string{"Closed Guard", "Legs locked around the waist", "Control posture", "Flat back"} {
		if !strings.Contains(out, want) {
			t.Errorf("FormatPosition missing %q in:\n%s", want, out)
		}
	}
}

func TestFormatActions_OneIndexedMenu(t *testing.T) {
	ts := []domain.Transition{
		{Action: "Pull down the head", Reaction: "Posture breaks", Probability: 0.7, Quality: domain.QualityGood},
		{Action: "Weak attempt", Reaction: "Posture holds", Probability: 0.3, Quality: domain.QualityPoor},
	}

	out := FormatActions(ts)
	if !strings.Contains(out, "[1]") || !strings.Contains(out, "[2]") {
		t.Fatalf("menu must be 1-indexed:\n%s", out)
	}
	if strings.Index(out, "Pull down the head") > strings.Index(out, "Weak attempt") {
		t.Error("menu order must match slice order")
	}
	if !strings.Contains(out, "70%") {
		t.Errorf("probability rendered as percent, got:\n%s", out)
	}
	if !strings.Contains(out, "GOOD") {
		t.Errorf("quality rendered uppercase, got:\n%s", out)
	}
}

func TestFormatActions_Empty(t *testing.T) {
	out := FormatActions(nil)
	if !strings.Contains(out, "No transitions available") {
		t.Errorf("unexpected empty-menu text: %q", out)
	}
}

func TestFormatDrill_Absent(t *testing.T) {
	out := FormatDrill(nil)
	if !strings.Contains(out, "No specific drill") {
		t.Errorf("unexpected absent-drill text: %q", out)
	}
}

func TestFormatSummary(t *testing.T) {
	sum := session.Summary{
		PositionsVisited: 3,
		ActionsTaken:     []string{"break posture", "secure kimura"},
		TotalDrills:      1,
		Drills: []domain.DrillPrescription{
			{Name: "Kimura Entry Drill", Description: "Smooth entries", Repetitions: 12},
		},
	}

	out := FormatSummary(sum)
	for _, want := range []string{"Positions explored: 3", "Drills earned: 1", "Kimura Entry Drill", "12 repetitions"} {
		if !strings.Contains(out, want) {
			t.Errorf("FormatSummary missing %q in:\n%s", want, out)
		}
	}
}
