package curriculum_test

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kje7713-dev/Grappling-Chainz/pkg/adapters/curriculum"
	"github.com/kje7713-dev/Grappling-Chainz/pkg/domain"
)

const sampleDoc = `
positions:
  - id: closed_guard
    name: Closed Guard
    description: Legs locked around the waist
    advantages:
      - Control posture
    common_mistakes:
      - Flat back
    default_drills:
      - name: Posture Break Drill
        description: Break posture on repeat
        repetitions: 10
        focus_points:
          - Pull down on neck
  - id: broken_posture
    name: Broken Posture
    description: Chest pulled down

transitions:
  - from: closed_guard
    to: broken_posture
    action: Pull down the head
    reaction: Posture breaks forward
    probability: 0.7
    quality: good
    drill:
      name: Posture Break Repetition Drill
      description: Rapid fire posture breaks
      repetitions: 15
  - from: closed_guard
    to: closed_guard
    action: Weak attempt
    reaction: Posture holds
    probability: 0.3
    quality: poor
`

func TestLoad(t *testing.T) {
	doc, err := curriculum.Load(strings.NewReader(sampleDoc))
	require.NoError(t, err)

	require.Len(t, doc.Positions, 2)
	cg := doc.Positions[0]
	assert.Equal(t, "closed_guard", cg.ID)
	assert.Equal(t, []string{"Control posture"}, cg.Advantages)
	require.Len(t, cg.DefaultDrills, 1)
	assert.Equal(t, 10, cg.DefaultDrills[0].Repetitions)

	require.Len(t, doc.Transitions, 2)
	first := doc.Transitions[0]
	assert.Equal(t, domain.QualityGood, first.Quality)
	assert.InDelta(t, 0.7, first.Probability, 1e-9)
	require.NotNil(t, first.Drill)
	assert.Equal(t, 15, first.Drill.Repetitions)
	assert.Nil(t, doc.Transitions[1].Drill, "drill stays absent when omitted")
}

func TestLoad_UnknownQualityRejected(t *testing.T) {
	bad := `
transitions:
  - from: a
    to: b
    action: something
    probability: 0.5
    quality: mediocre
`
	_, err := curriculum.Load(strings.NewReader(bad))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown decision quality")
}

func TestLoad_ProbabilityOutOfRange(t *testing.T) {
	bad := `
transitions:
  - from: a
    to: b
    action: overconfident
    probability: 1.5
    quality: good
`
	_, err := curriculum.Load(strings.NewReader(bad))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "out of range")
}

func TestLoad_MissingPositionID(t *testing.T) {
	bad := `
positions:
  - name: Anonymous Position
`
	_, err := curriculum.Load(strings.NewReader(bad))
	require.Error(t, err)
	assert.Contains(t, err.Error(), "missing id")
}

func TestLoad_InvalidYAML(t *testing.T) {
	_, err := curriculum.Load(strings.NewReader("positions: ["))
	require.Error(t, err)
}

func TestBuildGraph_PreservesDocumentOrder(t *testing.T) {
	doc, err := curriculum.Load(strings.NewReader(sampleDoc))
	require.NoError(t, err)

	g := curriculum.BuildGraph(doc)
	require.Equal(t, 2, g.Len())

	ts := g.TransitionsFrom("closed_guard")
	require.Len(t, ts, 2)
	assert.Equal(t, "Pull down the head", ts[0].Action, "insertion order preserved before any sort")
	assert.Equal(t, "Weak attempt", ts[1].Action)
}
