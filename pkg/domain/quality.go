package domain

import "fmt"

// DecisionQuality classifies how well the choice behind a transition was made.
// It is a closed set: use the exported constants, never free-form strings.
type DecisionQuality string

const (
	QualityExcellent DecisionQuality = "excellent"
	QualityGood      DecisionQuality = "good"
	QualityPoor      DecisionQuality = "poor"
	QualityFailure   DecisionQuality = "failure"
)

// Qualities lists every valid DecisionQuality, from best to worst.
func Qualities() []DecisionQuality {
	return []DecisionQuality{QualityExcellent, QualityGood, QualityPoor, QualityFailure}
}

// ParseQuality converts a raw tag into a DecisionQuality.
// Unknown tags are an error; the enum is closed.
func ParseQuality(s string) (DecisionQuality, error) {
	switch DecisionQuality(s) {
	case QualityExcellent, QualityGood, QualityPoor, QualityFailure:
		return DecisionQuality(s), nil
	}
	return "", fmt.Errorf("unknown decision quality %q", s)
}

// Valid reports whether q is one of the four known qualities.
func (q DecisionQuality) Valid() bool {
	_, err := ParseQuality(string(q))
	return err == nil
}

func (q DecisionQuality) String() string {
	return string(q)
}
