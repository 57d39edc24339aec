package calc

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/codealpha/showcase/internal/session"
)

// Service hands out one Calculator per client session.
type Service struct {
	opts      []Option
	precision int
	sessions  *session.Registry[*Calculator]
}

// NewService creates a Service whose calculators are built with opts.
func NewService(opts ...Option) *Service {
	return &Service{
		opts:      opts,
		precision: New(opts...).Precision(),
		sessions:  session.NewRegistry[*Calculator](),
	}
}

// Sessions exposes the registry, e.g. for pruning.
func (s *Service) Sessions() *session.Registry[*Calculator] { return s.sessions }

// NewSession creates a calculator and returns its session ID.
func (s *Service) NewSession() (string, State) {
	c := New(s.opts...)
	return s.sessions.Create(c), c.State()
}

// SessionState is a calculator's display state together with its history.
type SessionState struct {
	ID      string  `json:"id"`
	State   State   `json:"state"`
	History []Entry `json:"history"`
}

// Press feeds keys to a session's calculator in order.
func (s *Service) Press(id string, keys ...string) (SessionState, error) {
	return s.with(id, func(c *Calculator) {
		for _, k := range keys {
			c.Press(k)
		}
	})
}

// ClearHistory empties a session's history.
func (s *Service) ClearHistory(id string) (SessionState, error) {
	return s.with(id, func(c *Calculator) { c.ClearHistory() })
}

// Get returns a session's state.
func (s *Service) Get(id string) (SessionState, error) {
	return s.with(id, nil)
}

func (s *Service) with(id string, fn func(*Calculator)) (SessionState, error) {
	out := SessionState{ID: id}
	err := s.sessions.With(id, func(c *Calculator) error {
		if fn != nil {
			fn(c)
		}
		out.State = c.State()
		out.History = c.History()
		return nil
	})
	return out, err
}

// RegisterRoutes mounts calculator endpoints under /api/calc on the given router.
func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/api/calc", func(r chi.Router) {
		r.Post("/eval", handleEval(svc))
		r.Get("/ws", handleWebSocket(svc))
		r.Post("/sessions", handleCreateSession(svc))
		r.Route("/sessions/{id}", func(r chi.Router) {
			r.Get("/", handleGetSession(svc))
			r.Delete("/", handleDeleteSession(svc))
			r.Post("/keys", handlePressKeys(svc))
			r.Delete("/history", handleClearHistory(svc))
		})
	})
}

type evalRequest struct {
	Expression string `json:"expression"`
}

type evalResponse struct {
	Expression string  `json:"expression"`
	Result     float64 `json:"result"`
	Display    string  `json:"display"`
}

func handleEval(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req evalRequest
		if status, err := decodeBody(w, r, &req); err != nil {
			writeError(w, status, errors.New("invalid request body"))
			return
		}
		v, err := Evaluate(req.Expression)
		if err != nil {
			writeError(w, http.StatusUnprocessableEntity, err)
			return
		}
		v = Round(v, svc.precision)
		writeJSON(w, http.StatusOK, evalResponse{
			Expression: req.Expression,
			Result:     v,
			Display:    FormatNumber(v),
		})
	}
}

func handleCreateSession(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id, state := svc.NewSession()
		writeJSON(w, http.StatusCreated, SessionState{ID: id, State: state, History: []Entry{}})
	}
}

func handleGetSession(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st, err := svc.Get(chi.URLParam(r, "id"))
		writeSession(w, st, err)
	}
}

func handleDeleteSession(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		if !svc.sessions.Delete(chi.URLParam(r, "id")) {
			writeError(w, http.StatusNotFound, session.ErrNotFound)
			return
		}
		w.WriteHeader(http.StatusNoContent)
	}
}

type keysRequest struct {
	Keys []string `json:"keys"`
}

func handlePressKeys(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req keysRequest
		if status, err := decodeBody(w, r, &req); err != nil {
			writeError(w, status, errors.New("invalid keys body"))
			return
		}
		st, err := svc.Press(chi.URLParam(r, "id"), req.Keys...)
		writeSession(w, st, err)
	}
}

func handleClearHistory(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		st, err := svc.ClearHistory(chi.URLParam(r, "id"))
		writeSession(w, st, err)
	}
}

func writeSession(w http.ResponseWriter, st SessionState, err error) {
	if errors.Is(err, session.ErrNotFound) {
		writeError(w, http.StatusNotFound, err)
		return
	}
	if err != nil {
		writeError(w, http.StatusInternalServerError, err)
		return
	}
	writeJSON(w, http.StatusOK, st)
}

// maxBodyBytes caps JSON request bodies.
const maxBodyBytes = 1 << 20

// decodeBody decodes a size-capped JSON body into v. On failure it returns
// the status to reply with.
func decodeBody(w http.ResponseWriter, r *http.Request, v any) (int, error) {
	err := json.NewDecoder(http.MaxBytesReader(w, r.Body, maxBodyBytes)).Decode(v)
	if err == nil {
		return http.StatusOK, nil
	}
	var tooBig *http.MaxBytesError
	if errors.As(err, &tooBig) {
		return http.StatusRequestEntityTooLarge, err
	}
	return http.StatusBadRequest, err
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
