package cli

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewEngine_BundledCurriculum(t *testing.T) {
	engine, err := NewEngine(RunOptions{})
	require.NoError(t, err)
	assert.Equal(t, 5, engine.Graph().Len())
}

func TestNewEngine_CustomCurriculum(t *testing.T) {
	path := filepath.Join(t.TempDir(), "mini.yaml")
	doc := `
positions:
  - id: standing
    name: Standing
    description: Both players on their feet
transitions:
  - from: standing
    to: standing
    action: Circle and grip fight
    reaction: Stalemate
    probability: 0.5
    quality: good
`
	require.NoError(t, os.WriteFile(path, []byte(doc), 0644))

	engine, err := NewEngine(RunOptions{CurriculumPath: path})
	require.NoError(t, err)
	assert.Equal(t, 1, engine.Graph().Len())
	assert.Len(t, engine.ActionsFrom("standing"), 1)
}

func TestNewEngine_MissingFile(t *testing.T) {
	_, err := NewEngine(RunOptions{CurriculumPath: "/does/not/exist.yaml"})
	require.Error(t, err)
}
