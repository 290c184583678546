package chainz

import (
	"io"
	"log/slog"

	"github.com/kje7713-dev/Grappling-Chainz/pkg/domain"
	"github.com/kje7713-dev/Grappling-Chainz/pkg/graph"
	"github.com/kje7713-dev/Grappling-Chainz/pkg/session"
)

// DefaultStartPosition is where sessions begin when no explicit starting
// position is given. It matches the entry point of the bundled curriculum.
const DefaultStartPosition = "closed_guard"

// Engine is the high-level entry point for the Grappling Chainz library.
// It binds a position graph and hands out sessions that walk it. The
// Engine itself holds no mutable state beyond the graph reference, so a
// single Engine may be shared across many sessions as long as the graph
// is no longer being populated.
type Engine struct {
	graph  *graph.Graph
	logger *slog.Logger
}

// Option defines a functional option for configuring the Engine.
type Option func(*Engine)

// WithLogger sets a custom structured logger for the engine.
func WithLogger(logger *slog.Logger) Option {
	return func(e *Engine) {
		e.logger = logger
	}
}

// NewEngine creates an Engine bound to the given graph.
func NewEngine(g *graph.Graph, opts ...Option) *Engine {
	e := &Engine{
		graph:  g,
		logger: slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// StartSession begins a new walk at startID. An empty startID falls back
// to DefaultStartPosition. The ID is deliberately not validated against
// the graph: a session may start on a dangling ID, in which case
// CurrentPosition reports absence and the walk ends at the host.
func (e *Engine) StartSession(startID string) *session.Session {
	if startID == "" {
		startID = DefaultStartPosition
	}
	e.logger.Debug("session started", "start", startID)
	return session.New(e.graph, startID)
}

// ActionsFrom returns the outgoing transitions of a position in
// presentation order (probability descending, stable). It applies the same
// ordering policy as Session.AvailableActions, for hosts that browse the
// graph without a live session.
func (e *Engine) ActionsFrom(id string) []domain.Transition {
	return session.OrderByProbability(e.graph.TransitionsFrom(id))
}

// Graph returns the underlying position graph, for introspection and
// adapters. Callers must treat it as read-only once sessions exist.
func (e *Engine) Graph() *graph.Graph {
	return e.graph
}
