package domain

import "fmt"

// Transition is a directed edge between two positions. From and To are
// position IDs, not object references; a transition may reference IDs that
// were never added to the graph (the lookup then simply finds nothing).
// From may equal To (e.g. a failed attempt that keeps you in place).
type Transition struct {
	From   string `json:"from" yaml:"from"`
	To     string `json:"to" yaml:"to"`
	Action string `json:"action" yaml:"action"`

	// Reaction describes the expected opponent response to the action.
	Reaction string `json:"reaction" yaml:"reaction"`

	// Probability is a subjective success weight in [0.0, 1.0]. Sibling
	// transitions are not required to sum to 1; it is a quality score,
	// not a normalized distribution.
	Probability float64 `json:"probability" yaml:"probability"`

	Quality DecisionQuality `json:"quality" yaml:"quality"`

	// Drill, when present, is earned by taking this transition.
	Drill *DrillPrescription `json:"drill,omitempty" yaml:"drill,omitempty"`
}

func (t Transition) String() string {
	return fmt.Sprintf("%s -> %s (%.0f%%)", t.Action, t.Reaction, t.Probability*100)
}
