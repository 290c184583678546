// Package curriculum embeds the default training curriculum and builds
// the position graph from it through the public Graph API.
package curriculum

import (
	_ "embed"
	"fmt"

	loader "github.com/kje7713-dev/Grappling-Chainz/pkg/adapters/curriculum"
	"github.com/kje7713-dev/Grappling-Chainz/pkg/graph"
)

//go:embed bjj.yaml
var defaultCurriculum []byte

// Default builds the bundled closed-guard curriculum graph.
func Default() (*graph.Graph, error) {
	doc, err := loader.Parse(defaultCurriculum)
	if err != nil {
		return nil, fmt.Errorf("bundled curriculum: %w", err)
	}
	return loader.BuildGraph(doc), nil
}
