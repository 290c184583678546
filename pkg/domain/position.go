package domain

import "fmt"

// Position represents a grappling state in the position ontology.
// Positions are identified by a unique string ID and are immutable once
// added to a graph; the graph is the sole authority that stores them.
type Position struct {
	ID          string `json:"id" yaml:"id"`
	Name        string `json:"name" yaml:"name"`
	Description string `json:"description" yaml:"description"`

	// Advantages and CommonMistakes are coaching notes surfaced by the
	// presentation layer whenever the position is entered.
	Advantages     []string `json:"advantages,omitempty" yaml:"advantages,omitempty"`
	CommonMistakes []string `json:"common_mistakes,omitempty" yaml:"common_mistakes,omitempty"`

	// DefaultDrills are prescribed for the position itself, independent of
	// any transition taken out of it.
	DefaultDrills []DrillPrescription `json:"default_drills,omitempty" yaml:"default_drills,omitempty"`
}

func (p Position) String() string {
	return fmt.Sprintf("%s: %s", p.Name, p.Description)
}
