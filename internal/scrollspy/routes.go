package scrollspy

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/codealpha/showcase/internal/session"
)

// DefaultLayoutWidth is the terminal width used when a client does not send
// its own measurements.
const DefaultLayoutWidth = 80

// Service serves one page to many independently scrolling clients.
type Service struct {
	page      *Page
	html      []byte
	threshold float64
	sessions  *session.Registry[*Tracker]
}

// NewService renders page once and prepares the session registry.
func NewService(page *Page, threshold float64, theme string) (*Service, error) {
	var buf bytes.Buffer
	if err := page.RenderHTML(&buf, RenderOptions{Theme: theme, SessionsURL: "/api/portfolio/sessions"}); err != nil {
		return nil, err
	}
	return &Service{
		page:      page,
		html:      buf.Bytes(),
		threshold: threshold,
		sessions:  session.NewRegistry[*Tracker](),
	}, nil
}

// Sessions exposes the registry, e.g. for pruning.
func (s *Service) Sessions() *session.Registry[*Tracker] { return s.sessions }

// RegisterRoutes mounts the portfolio page and its scroll API.
func RegisterRoutes(r chi.Router, svc *Service) {
	r.Get("/portfolio", handlePage(svc))
	r.Route("/api/portfolio", func(r chi.Router) {
		r.Get("/outline", handleOutline(svc))
		r.Post("/sessions", handleCreateSession(svc))
		r.Post("/sessions/{id}/scroll", handleScroll(svc))
		r.Delete("/sessions/{id}", handleDeleteSession(svc))
	})
}

func handlePage(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "text/html; charset=utf-8")
		w.Write(svc.html)
	}
}

type outlineResponse struct {
	Title    string    `json:"title"`
	Links    []NavLink `json:"links"`
	Intro    []Block   `json:"intro"`
	Sections []Section `json:"sections"`
}

func handleOutline(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, outlineResponse{
			Title:    svc.page.Title,
			Links:    svc.page.NavLinks(),
			Intro:    svc.page.Intro,
			Sections: svc.page.Sections,
		})
	}
}

type createSessionResponse struct {
	ID    string    `json:"id"`
	Links []NavLink `json:"links"`
}

// handleCreateSession accepts the client's measured block and section
// extents. An empty body falls back to the terminal layout.
func handleCreateSession(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var m Measurements
		body, err := io.ReadAll(io.LimitReader(r.Body, 1<<20))
		if err != nil {
			writeError(w, http.StatusBadRequest, err)
			return
		}
		if len(bytes.TrimSpace(body)) > 0 {
			if err := json.Unmarshal(body, &m); err != nil {
				writeError(w, http.StatusBadRequest, errors.New("invalid measurements"))
				return
			}
		} else {
			m = svc.page.Layout(DefaultLayoutWidth).Measurements
		}

		t := NewTracker(svc.page.NavLinks(), m, svc.threshold)
		id := svc.sessions.Create(t)
		writeJSON(w, http.StatusCreated, createSessionResponse{ID: id, Links: t.Links()})
	}
}

func handleScroll(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var vp Viewport
		if err := json.NewDecoder(http.MaxBytesReader(w, r.Body, 1<<20)).Decode(&vp); err != nil || vp.Height < 0 {
			writeError(w, http.StatusBadRequest, errors.New("invalid viewport"))
			return
		}

		var u Update
		err := svc.sessions.With(chi.URLParam(r, "id"), func(t *Tracker) error {
			u = t.Scroll(vp)
			return nil
		})
		if err != nil {
			writeError(w, http.StatusNotFound, err)
			return
		}
		writeJSON(w, http.StatusOK, u)
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

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
}

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
