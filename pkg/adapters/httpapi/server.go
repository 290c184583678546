// Package httpapi exposes the engine over HTTP for non-terminal hosts.
//
// Sessions live in process memory only; they are not persisted across
// restarts. Actions are taken by 1-based index into the ordered action
// list the server last computed, so the index-to-transition mapping can
// never drift between client and core.
package httpapi

import (
	"encoding/json"
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"sync"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"
	"github.com/prometheus/client_golang/prometheus/promhttp"

	chainz "github.com/kje7713-dev/Grappling-Chainz"
	"github.com/kje7713-dev/Grappling-Chainz/internal/logging"
	"github.com/kje7713-dev/Grappling-Chainz/pkg/domain"
	"github.com/kje7713-dev/Grappling-Chainz/pkg/session"
)

// Server hosts an Engine and an in-process session registry.
type Server struct {
	engine  *chainz.Engine
	logger  *slog.Logger
	metrics *metrics

	mu       sync.Mutex
	sessions map[string]*session.Session
}

// Option configures the Server.
type Option func(*Server)

// WithLogger sets a structured logger for request handling.
func WithLogger(logger *slog.Logger) Option {
	return func(s *Server) {
		s.logger = logger
	}
}

// NewServer creates a Server around the engine.
func NewServer(engine *chainz.Engine, opts ...Option) *Server {
	s := &Server{
		engine:   engine,
		logger:   logging.NewNop(),
		metrics:  newMetrics(),
		sessions: make(map[string]*session.Session),
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// NewHandler creates an HTTP handler for the engine with default options.
func NewHandler(engine *chainz.Engine, opts ...Option) http.Handler {
	return NewServer(engine, opts...).Routes()
}

// Routes builds the chi router.
func (s *Server) Routes() http.Handler {
	r := chi.NewRouter()

	r.Get("/healthz", s.handleHealth)
	r.Get("/metrics", promhttp.HandlerFor(s.metrics.registry, promhttp.HandlerOpts{}).ServeHTTP)

	r.Route("/positions", func(r chi.Router) {
		r.Get("/", s.handleListPositions)
		r.Get("/{id}", s.handleGetPosition)
		r.Get("/{id}/actions", s.handlePositionActions)
	})

	r.Route("/sessions", func(r chi.Router) {
		r.Post("/", s.handleCreateSession)
		r.Get("/{id}", s.handleGetSession)
		r.Post("/{id}/actions", s.handleTakeAction)
		r.Delete("/{id}", s.handleDeleteSession)
	})

	return r
}

// sessionResponse is the wire representation of a session's live view.
type sessionResponse struct {
	ID         string              `json:"id"`
	PositionID string              `json:"position_id"`
	Position   *domain.Position    `json:"position,omitempty"`
	Actions    []domain.Transition `json:"actions"`
	Terminal   bool                `json:"terminal"`
	Summary    session.Summary     `json:"summary"`
}

type createSessionRequest struct {
	StartPosition string `json:"start_position,omitempty"`
}

type takeActionRequest struct {
	// Choice is a 1-based index into the actions array of the previous
	// session view.
	Choice int `json:"choice"`
}

type stepResponse struct {
	Reaction string                    `json:"reaction"`
	Position *domain.Position          `json:"position,omitempty"`
	Drill    *domain.DrillPrescription `json:"drill,omitempty"`
	Actions  []domain.Transition       `json:"actions"`
	Terminal bool                      `json:"terminal"`
}

func (s *Server) handleHealth(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, map[string]string{"status": "ok"})
}

func (s *Server) handleListPositions(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, s.engine.Graph().Positions())
}

func (s *Server) handleGetPosition(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	p, ok := s.engine.Graph().GetPosition(id)
	if !ok {
		http.Error(w, fmt.Sprintf("position %q not found", id), http.StatusNotFound)
		return
	}
	writeJSON(w, http.StatusOK, p)
}

// handlePositionActions returns the ordered outgoing transitions. Unknown
// IDs yield an empty list, not an error: absence of neighbors is a normal
// outcome in the core contract.
func (s *Server) handlePositionActions(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")
	writeJSON(w, http.StatusOK, s.engine.ActionsFrom(id))
}

func (s *Server) handleCreateSession(w http.ResponseWriter, r *http.Request) {
	var body createSessionRequest
	if r.ContentLength > 0 {
		if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
			http.Error(w, "invalid request body", http.StatusBadRequest)
			return
		}
	}

	id := uuid.NewString()

	s.mu.Lock()
	sess := s.engine.StartSession(body.StartPosition)
	s.sessions[id] = sess
	resp := s.viewLocked(id, sess)
	s.mu.Unlock()

	s.metrics.sessionsStarted.Inc()
	s.logger.Info("session created", "session_id", id, "start", sess.CurrentID())
	writeJSON(w, http.StatusCreated, resp)
}

func (s *Server) handleGetSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s.mu.Lock()
	sess, err := s.lookupLocked(id)
	if err != nil {
		s.mu.Unlock()
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	resp := s.viewLocked(id, sess)
	s.mu.Unlock()

	writeJSON(w, http.StatusOK, resp)
}

func (s *Server) handleTakeAction(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	var body takeActionRequest
	if err := json.NewDecoder(r.Body).Decode(&body); err != nil {
		http.Error(w, "invalid request body", http.StatusBadRequest)
		return
	}

	s.mu.Lock()
	sess, err := s.lookupLocked(id)
	if err != nil {
		s.mu.Unlock()
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}

	actions := sess.AvailableActions()
	if body.Choice < 1 || body.Choice > len(actions) {
		s.mu.Unlock()
		http.Error(w, fmt.Sprintf("choice must be between 1 and %d", len(actions)), http.StatusBadRequest)
		return
	}

	chosen := actions[body.Choice-1]
	res, err := sess.TakeAction(chosen)
	if err != nil {
		// Unreachable with index-based choice, but fail closed anyway.
		s.mu.Unlock()
		http.Error(w, err.Error(), http.StatusConflict)
		return
	}
	next := sess.AvailableActions()
	s.mu.Unlock()

	s.metrics.actionsTaken.WithLabelValues(chosen.Quality.String()).Inc()
	if res.Drill != nil {
		s.metrics.drillsEarned.Inc()
	}
	s.logger.Debug("action taken", "session_id", id, "action", chosen.Action, "to", chosen.To)

	writeJSON(w, http.StatusOK, stepResponse{
		Reaction: chosen.Reaction,
		Position: res.Position,
		Drill:    res.Drill,
		Actions:  next,
		Terminal: len(next) == 0,
	})
}

func (s *Server) handleDeleteSession(w http.ResponseWriter, r *http.Request) {
	id := chi.URLParam(r, "id")

	s.mu.Lock()
	_, err := s.lookupLocked(id)
	if err == nil {
		delete(s.sessions, id)
	}
	s.mu.Unlock()

	if err != nil {
		http.Error(w, err.Error(), http.StatusNotFound)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// lookupLocked resolves a session ID. Caller holds s.mu.
func (s *Server) lookupLocked(id string) (*session.Session, error) {
	sess, ok := s.sessions[id]
	if !ok {
		return nil, fmt.Errorf("%w: %s", domain.ErrSessionNotFound, id)
	}
	return sess, nil
}

// viewLocked assembles the live view of a session. Caller holds s.mu.
func (s *Server) viewLocked(id string, sess *session.Session) sessionResponse {
	resp := sessionResponse{
		ID:         id,
		PositionID: sess.CurrentID(),
		Summary:    sess.Summary(),
	}
	if p, ok := sess.CurrentPosition(); ok {
		resp.Position = &p
	}
	resp.Actions = sess.AvailableActions()
	resp.Terminal = len(resp.Actions) == 0
	return resp
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := json.NewEncoder(w).Encode(v); err != nil && !errors.Is(err, http.ErrBodyNotAllowed) {
		slog.Error("response encode failed", "error", err)
	}
}
