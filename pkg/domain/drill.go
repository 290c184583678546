package domain

import "fmt"

// DrillPrescription is a named practice recommendation. It is an immutable
// value object: the same drill may be referenced by several transitions and
// by a position's default-drill list.
type DrillPrescription struct {
	Name        string   `json:"name" yaml:"name"`
	Description string   `json:"description" yaml:"description"`
	Repetitions int      `json:"repetitions" yaml:"repetitions"`
	FocusPoints []string `json:"focus_points,omitempty" yaml:"focus_points,omitempty"`
}

func (d DrillPrescription) String() string {
	return fmt.Sprintf("%s (%d reps): %s", d.Name, d.Repetitions, d.Description)
}
