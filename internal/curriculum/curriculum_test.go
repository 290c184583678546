package curriculum_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/kje7713-dev/Grappling-Chainz/internal/curriculum"
	"github.com/kje7713-dev/Grappling-Chainz/pkg/domain"
)

func TestDefault(t *testing.T) {
	g, err := curriculum.Default()
	require.NoError(t, err)

	assert.Equal(t, 5, g.Len())

	for _, id := range []string{"closed_guard", "broken_posture", "kimura_position", "sweep_position", "mount"} {
		_, ok := g.GetPosition(id)
		assert.True(t, ok, "bundled curriculum must contain %s", id)
	}

	// The attack chain reaches mount; mount is terminal.
	assert.Empty(t, g.TransitionsFrom("mount"))

	cg := g.TransitionsFrom("closed_guard")
	require.Len(t, cg, 2)
	assert.Equal(t, domain.QualityGood, cg[0].Quality)
	assert.Equal(t, "closed_guard", cg[1].To, "failed posture break loops back")

	drills := g.DefaultDrills("closed_guard")
	require.Len(t, drills, 1)
	assert.Equal(t, "Posture Break Drill", drills[0].Name)
}

func TestDefault_EveryTransitionCarriesADrill(t *testing.T) {
	g, err := curriculum.Default()
	require.NoError(t, err)

	for _, tr := range g.Transitions() {
		assert.NotNil(t, tr.Drill, "transition %q should prescribe a drill", tr.Action)
		assert.True(t, tr.Quality.Valid())
		assert.GreaterOrEqual(t, tr.Probability, 0.0)
		assert.LessOrEqual(t, tr.Probability, 1.0)
	}
}
