// Package tui formats engine output as markdown for terminal display.
// The strings produced here are plain markdown; pass them through
// NewRenderer for ANSI styling, or print them raw in headless mode.
package tui

import (
	"fmt"
	"strings"

	"github.com/kje7713-dev/Grappling-Chainz/pkg/domain"
	"github.com/kje7713-dev/Grappling-Chainz/pkg/session"
)

// FormatWelcome returns the session intro text.
func FormatWelcome() string {
	var b strings.Builder
	b.WriteString("# Grappling Chainz\n\n")
	b.WriteString("Welcome to the drill-through narrative trainer.\n")
	b.WriteString("Navigate through positions, explore opponent reactions, ")
	b.WriteString("and earn drill prescriptions to improve your game.\n\n")
	b.WriteString("Type `quit` at any prompt to end the session.\n")
	return b.String()
}

// FormatPosition renders a position with its coaching notes.
func FormatPosition(p domain.Position) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## Position: %s\n\n", p.Name)
	fmt.Fprintf(&b, "%s\n", p.Description)

	if len(p.Advantages) > 0 {
		b.WriteString("\n**Advantages**\n\n")
		for _, a := range p.Advantages {
			fmt.Fprintf(&b, "- %s\n", a)
		}
	}
	if len(p.CommonMistakes) > 0 {
		b.WriteString("\n**Common mistakes to avoid**\n\n")
		for _, m := range p.CommonMistakes {
			fmt.Fprintf(&b, "- %s\n", m)
		}
	}
	return b.String()
}

// FormatActions renders the 1-indexed action menu. The numbering matches
// the slice order exactly; hosts map a chosen index i back to actions[i-1].
func FormatActions(ts []domain.Transition) string {
	if len(ts) == 0 {
		return "No transitions available from this position.\n"
	}

	var b strings.Builder
	b.WriteString("## Available actions\n")
	for i, t := range ts {
		fmt.Fprintf(&b, "\n**[%d]** %s\n\n", i+1, t.Action)
		fmt.Fprintf(&b, "  - Likely reaction: %s\n", t.Reaction)
		fmt.Fprintf(&b, "  - Success probability: %.0f%%\n", t.Probability*100)
		fmt.Fprintf(&b, "  - Decision quality: %s\n", strings.ToUpper(t.Quality.String()))
	}
	return b.String()
}

// FormatDrill renders a drill prescription, or a placeholder when the
// transition carried none.
func FormatDrill(d *domain.DrillPrescription) string {
	if d == nil {
		return "No specific drill prescribed for this transition.\n"
	}

	var b strings.Builder
	b.WriteString("## Drill prescription\n\n")
	fmt.Fprintf(&b, "**%s**\n\n", d.Name)
	fmt.Fprintf(&b, "%s\n\n", d.Description)
	fmt.Fprintf(&b, "Repetitions: %d\n", d.Repetitions)
	if len(d.FocusPoints) > 0 {
		b.WriteString("\nFocus points:\n\n")
		for _, fp := range d.FocusPoints {
			fmt.Fprintf(&b, "- %s\n", fp)
		}
	}
	return b.String()
}

// FormatStep renders the outcome of a taken action: the opponent reaction
// followed by the earned drill, if any.
func FormatStep(t domain.Transition, drill *domain.DrillPrescription) string {
	var b strings.Builder
	fmt.Fprintf(&b, "## Result: %s\n\n", t.Reaction)
	b.WriteString(FormatDrill(drill))
	return b.String()
}

// FormatSummary renders the end-of-session report.
func FormatSummary(s session.Summary) string {
	var b strings.Builder
	b.WriteString("## Session summary\n\n")
	fmt.Fprintf(&b, "Positions explored: %d\n\n", s.PositionsVisited)
	fmt.Fprintf(&b, "Drills earned: %d\n", s.TotalDrills)

	if len(s.Drills) > 0 {
		b.WriteString("\n**Your drill program**\n")
		for i, d := range s.Drills {
			fmt.Fprintf(&b, "\n%d. %s\n", i+1, d.Name)
			fmt.Fprintf(&b, "   - %s\n", d.Description)
			fmt.Fprintf(&b, "   - %d repetitions\n", d.Repetitions)
		}
	}
	return b.String()
}

// FormatCatalog renders the full position catalog for the graph command.
func FormatCatalog(positions []domain.Position) string {
	var b strings.Builder
	b.WriteString("# Position catalog\n")
	for _, p := range positions {
		fmt.Fprintf(&b, "\n## %s (`%s`)\n\n", p.Name, p.ID)
		fmt.Fprintf(&b, "%s\n", p.Description)
		if len(p.DefaultDrills) > 0 {
			b.WriteString("\nDefault drills:\n\n")
			for _, d := range p.DefaultDrills {
				fmt.Fprintf(&b, "- %s\n", d.String())
			}
		}
	}
	return b.String()
}
