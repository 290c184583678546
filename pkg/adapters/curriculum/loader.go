// Package curriculum loads position graphs from YAML curriculum documents.
//
// A curriculum file declares positions and transitions:
//
//	positions:
//	  - id: closed_guard
//	    name: Closed Guard
//	    description: ...
//	    advantages: [...]
//	    common_mistakes: [...]
//	    default_drills:
//	      - name: ...
//	        repetitions: 10
//	        focus_points: [...]
//	transitions:
//	  - from: closed_guard
//	    to: broken_posture
//	    action: ...
//	    reaction: ...
//	    probability: 0.7
//	    quality: good
//	    drill: {name: ..., repetitions: 15}
//
// The loader only consumes the public Graph API; the seed data stays an
// ordinary collaborator of the core, never part of it.
package curriculum

import (
	"fmt"
	"io"
	"os"
	"reflect"

	"github.com/mitchellh/mapstructure"
	"gopkg.in/yaml.v3"

	"github.com/kje7713-dev/Grappling-Chainz/pkg/domain"
	"github.com/kje7713-dev/Grappling-Chainz/pkg/graph"
)

// Document is the parsed form of one curriculum file.
type Document struct {
	Positions   []domain.Position   `yaml:"positions"`
	Transitions []domain.Transition `yaml:"transitions"`
}

// Load parses a curriculum document from r.
//
// YAML is first unmarshaled loosely, then decoded into typed records via
// mapstructure so the decision-quality tag can be checked against the
// closed enum at load time instead of surfacing as a bad string later.
func Load(r io.Reader) (*Document, error) {
	data, err := io.ReadAll(r)
	if err != nil {
		return nil, fmt.Errorf("read curriculum: %w", err)
	}
	return Parse(data)
}

// LoadFile parses the curriculum file at path.
func LoadFile(path string) (*Document, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open curriculum: %w", err)
	}
	defer f.Close()

	doc, err := Load(f)
	if err != nil {
		return nil, fmt.Errorf("curriculum %s: %w", path, err)
	}
	return doc, nil
}

// Parse decodes raw YAML bytes into a Document.
func Parse(data []byte) (*Document, error) {
	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parse yaml: %w", err)
	}

	var doc Document
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		TagName:          "yaml",
		WeaklyTypedInput: true,
		DecodeHook:       qualityHook,
		Result:           &doc,
	})
	if err != nil {
		return nil, fmt.Errorf("build decoder: %w", err)
	}
	if err := dec.Decode(raw); err != nil {
		return nil, fmt.Errorf("decode curriculum: %w", err)
	}

	if err := validate(&doc); err != nil {
		return nil, err
	}
	return &doc, nil
}

// qualityHook converts raw decision-quality tags into the closed enum,
// rejecting unknown tags.
func qualityHook(from, to reflect.Type, data any) (any, error) {
	if to != reflect.TypeOf(domain.DecisionQuality("")) || from.Kind() != reflect.String {
		return data, nil
	}
	return domain.ParseQuality(data.(string))
}

func validate(doc *Document) error {
	for _, t := range doc.Transitions {
		if t.Probability < 0 || t.Probability > 1 {
			return fmt.Errorf("transition %q: probability %v out of range [0,1]", t.Action, t.Probability)
		}
	}
	for _, p := range doc.Positions {
		if p.ID == "" {
			return fmt.Errorf("position %q: missing id", p.Name)
		}
	}
	return nil
}

// Populate feeds the document into a graph through its public API, in
// document order.
func Populate(g *graph.Graph, doc *Document) {
	for _, p := range doc.Positions {
		g.AddPosition(p)
	}
	for _, t := range doc.Transitions {
		g.AddTransition(t)
	}
}

// BuildGraph is a convenience wrapper: a fresh graph populated from doc.
func BuildGraph(doc *Document) *graph.Graph {
	g := graph.New()
	Populate(g, doc)
	return g
}
