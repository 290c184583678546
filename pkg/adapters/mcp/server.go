// Package mcp exposes the engine as a Model Context Protocol server, so
// agents can browse the position ontology and drill through sessions.
package mcp

import (
	"context"
	"encoding/json"
	"fmt"
	"sync"

	"github.com/mark3labs/mcp-go/mcp"
	"github.com/mark3labs/mcp-go/server"

	chainz "github.com/kje7713-dev/Grappling-Chainz"
	"github.com/kje7713-dev/Grappling-Chainz/pkg/domain"
	"github.com/kje7713-dev/Grappling-Chainz/pkg/session"
)

// SessionView is the unified structure returned by session tools.
type SessionView struct {
	SessionID  string                    `json:"session_id" jsonschema_description:"Identifier of the session"`
	PositionID string                    `json:"position_id" jsonschema_description:"ID of the current position"`
	Position   *domain.Position          `json:"position,omitempty" jsonschema_description:"The current position, absent if the ID is dangling"`
	Actions    []domain.Transition       `json:"actions" jsonschema_description:"Available actions in presentation order"`
	Terminal   bool                      `json:"terminal" jsonschema_description:"True when no actions remain"`
	Drill      *domain.DrillPrescription `json:"drill,omitempty" jsonschema_description:"Drill earned by the last action, if any"`
	Summary    session.Summary           `json:"summary" jsonschema_description:"Walk summary so far"`
}

// Server wraps the engine and exposes it as an MCP server.
type Server struct {
	engine    *chainz.Engine
	mcpServer *server.MCPServer

	mu       sync.Mutex
	sessions map[string]*session.Session
	nextID   int
}

// NewServer creates a new MCP server instance around the engine.
func NewServer(engine *chainz.Engine) *Server {
	s := &Server{
		engine:    engine,
		mcpServer: server.NewMCPServer("grappling-chainz", chainz.Version),
		sessions:  make(map[string]*session.Session),
	}
	s.registerTools()
	s.registerResources()
	return s
}

// ServeStdio starts the server on Stdin/Stdout.
func (s *Server) ServeStdio() error {
	return server.ServeStdio(s.mcpServer)
}

func (s *Server) registerTools() {
	s.mcpServer.AddTool(mcp.NewTool("list_positions",
		mcp.WithDescription("List every position in the ontology."),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		jsonBytes, _ := json.Marshal(s.engine.Graph().Positions())
		return mcp.NewToolResultText(string(jsonBytes)), nil
	})

	s.mcpServer.AddTool(mcp.NewTool("inspect_position",
		mcp.WithDescription("Inspect one position: coaching notes, default drills, and outgoing actions in presentation order."),
		mcp.WithString("position_id", mcp.Required(), mcp.Description("ID of the position to inspect")),
	), func(ctx context.Context, request mcp.CallToolRequest) (*mcp.CallToolResult, error) {
		id := request.GetString("position_id", "")
		p, ok := s.engine.Graph().GetPosition(id)
		if !ok {
			return mcp.NewToolResultError(fmt.Sprintf("position %q not found", id)), nil
		}
		payload := map[string]any{
			"position": p,
			"actions":  s.engine.ActionsFrom(id),
		}
		jsonBytes, _ := json.Marshal(payload)
		return mcp.NewToolResultText(string(jsonBytes)), nil
	})

	startTool := mcp.NewTool("start_session",
		mcp.WithDescription("Start a drill-through session. Returns the session view with available actions."),
		mcp.WithString("start_position", mcp.Description("Starting position ID (defaults to closed_guard)")),
		mcp.WithOutputSchema[SessionView](),
	)
	s.mcpServer.AddTool(startTool, mcp.NewStructuredToolHandler(s.handleStartSession))

	actionsTool := mcp.NewTool("available_actions",
		mcp.WithDescription("Get the current view of a session, including ordered available actions."),
		mcp.WithString("session_id", mcp.Required(), mcp.Description("Session identifier")),
		mcp.WithOutputSchema[SessionView](),
	)
	s.mcpServer.AddTool(actionsTool, mcp.NewStructuredToolHandler(s.handleAvailableActions))

	takeTool := mcp.NewTool("take_action",
		mcp.WithDescription("Take an action by 1-based index into the session's current action list."),
		mcp.WithString("session_id", mcp.Required(), mcp.Description("Session identifier")),
		mcp.WithNumber("choice", mcp.Required(), mcp.Description("1-based index of the action to take")),
		mcp.WithOutputSchema[SessionView](),
	)
	s.mcpServer.AddTool(takeTool, mcp.NewStructuredToolHandler(s.handleTakeAction))

	summaryTool := mcp.NewTool("session_summary",
		mcp.WithDescription("Get the summary of a session: positions visited, actions taken, drills earned."),
		mcp.WithString("session_id", mcp.Required(), mcp.Description("Session identifier")),
		mcp.WithOutputSchema[session.Summary](),
	)
	s.mcpServer.AddTool(summaryTool, mcp.NewStructuredToolHandler(s.handleSessionSummary))
}

func (s *Server) handleStartSession(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (SessionView, error) {
	start, _ := args["start_position"].(string)

	s.mu.Lock()
	defer s.mu.Unlock()

	s.nextID++
	id := fmt.Sprintf("session-%d", s.nextID)
	sess := s.engine.StartSession(start)
	s.sessions[id] = sess

	return s.viewLocked(id, sess, nil), nil
}

func (s *Server) handleAvailableActions(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, _ := args["session_id"].(string)
	sess, ok := s.sessions[id]
	if !ok {
		return SessionView{}, fmt.Errorf("%w: %s", domain.ErrSessionNotFound, id)
	}
	return s.viewLocked(id, sess, nil), nil
}

func (s *Server) handleTakeAction(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (SessionView, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, _ := args["session_id"].(string)
	sess, ok := s.sessions[id]
	if !ok {
		return SessionView{}, fmt.Errorf("%w: %s", domain.ErrSessionNotFound, id)
	}

	choiceRaw, _ := args["choice"].(float64)
	choice := int(choiceRaw)

	actions := sess.AvailableActions()
	if choice < 1 || choice > len(actions) {
		return SessionView{}, fmt.Errorf("choice must be between 1 and %d", len(actions))
	}

	res, err := sess.TakeAction(actions[choice-1])
	if err != nil {
		return SessionView{}, fmt.Errorf("take action: %w", err)
	}
	return s.viewLocked(id, sess, res.Drill), nil
}

func (s *Server) handleSessionSummary(ctx context.Context, request mcp.CallToolRequest, args map[string]interface{}) (session.Summary, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	id, _ := args["session_id"].(string)
	sess, ok := s.sessions[id]
	if !ok {
		return session.Summary{}, fmt.Errorf("%w: %s", domain.ErrSessionNotFound, id)
	}
	return sess.Summary(), nil
}

// viewLocked assembles a session view. Caller holds s.mu.
func (s *Server) viewLocked(id string, sess *session.Session, drill *domain.DrillPrescription) SessionView {
	v := SessionView{
		SessionID:  id,
		PositionID: sess.CurrentID(),
		Drill:      drill,
		Summary:    sess.Summary(),
	}
	if p, ok := sess.CurrentPosition(); ok {
		v.Position = &p
	}
	v.Actions = sess.AvailableActions()
	v.Terminal = len(v.Actions) == 0
	return v
}

func (s *Server) registerResources() {
	s.mcpServer.AddResource(mcp.NewResource("chainz://catalog", "Position Catalog",
		mcp.WithMIMEType("application/json"),
	), func(ctx context.Context, request mcp.ReadResourceRequest) ([]mcp.ResourceContents, error) {
		payload := map[string]any{
			"positions":   s.engine.Graph().Positions(),
			"transitions": s.engine.Graph().Transitions(),
		}
		jsonBytes, err := json.Marshal(payload)
		if err != nil {
			return nil, fmt.Errorf("failed to marshal catalog: %w", err)
		}
		return []mcp.ResourceContents{
			mcp.TextResourceContents{
				URI:      "chainz://catalog",
				MIMEType: "application/json",
				Text:     string(jsonBytes),
			},
		}, nil
	})
}
