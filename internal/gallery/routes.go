package gallery

import (
	"encoding/json"
	"errors"
	"net/http"
	"strconv"

	"github.com/go-chi/chi/v5"

	"github.com/codealpha/showcase/internal/session"
)

// Service serves one shared catalog to many independent gallery sessions.
type Service struct {
	catalog  *Catalog
	sessions *session.Registry[*Gallery]
}

// NewService creates a Service over catalog.
func NewService(catalog *Catalog) *Service {
	return &Service{catalog: catalog, sessions: session.NewRegistry[*Gallery]()}
}

// Sessions exposes the registry, e.g. for pruning.
func (s *Service) Sessions() *session.Registry[*Gallery] { return s.sessions }

// RegisterRoutes mounts gallery endpoints under /api/gallery on the given router.
func RegisterRoutes(r chi.Router, svc *Service) {
	r.Route("/api/gallery", func(r chi.Router) {
		r.Get("/categories", handleCategories(svc))
		r.Get("/items", handleItems(svc))
		r.Post("/sessions", handleCreateSession(svc))
		r.Route("/sessions/{id}", func(r chi.Router) {
			r.Get("/", handleSession(svc, nil))
			r.Delete("/", handleDeleteSession(svc))
			r.Post("/filter", handleFilter(svc))
			r.Post("/open", handleOpen(svc))
			r.Post("/next", handleSession(svc, func(g *Gallery) { g.Viewer().Next() }))
			r.Post("/previous", handleSession(svc, func(g *Gallery) { g.Viewer().Previous() }))
			r.Post("/close", handleSession(svc, func(g *Gallery) { g.Viewer().Close() }))
			r.Post("/backdrop", handleSession(svc, func(g *Gallery) { g.Viewer().ClickBackdrop() }))
			r.Post("/keys", handleKeys(svc))
			r.Post("/fullscreen", handleFullscreen(svc))
		})
	})
}

func handleCategories(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		writeJSON(w, http.StatusOK, append([]string{CategoryAll}, svc.catalog.Categories()...))
	}
}

// handleItems is the stateless form of the filter: it returns the visible
// items for ?category=&q=.
func handleItems(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		q := r.URL.Query()
		view := svc.catalog.Apply(Filter{Category: q.Get("category"), Search: q.Get("q")})

		limit := view.Len()
		if v := q.Get("limit"); v != "" {
			if n, err := strconv.Atoi(v); err == nil && n >= 0 && n < limit {
				limit = n
			}
		}

		items := make([]Item, 0, limit)
		for i := 0; i < limit; i++ {
			it, _ := svc.catalog.Item(view.At(i))
			items = append(items, it)
		}
		writeJSON(w, http.StatusOK, map[string]any{
			"filter": view.Filter(),
			"total":  view.Len(),
			"items":  items,
		})
	}
}

type createSessionResponse struct {
	ID    string   `json:"id"`
	State Snapshot `json:"state"`
}

func handleCreateSession(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		g := New(svc.catalog, WithFullscreen(&StateFullscreen{}))
		id := svc.sessions.Create(g)
		writeJSON(w, http.StatusCreated, createSessionResponse{ID: id, State: g.Snapshot()})
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

// handleSession applies fn (if any) to the session and replies with its state.
func handleSession(svc *Service, fn func(*Gallery)) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		withSession(w, r, svc, func(g *Gallery) (int, error) {
			if fn != nil {
				fn(g)
			}
			return http.StatusOK, nil
		})
	}
}

func handleFilter(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var f Filter
		if status, err := decodeBody(w, r, &f); err != nil {
			writeError(w, status, errors.New("invalid filter body"))
			return
		}
		withSession(w, r, svc, func(g *Gallery) (int, error) {
			g.SetFilter(f)
			return http.StatusOK, nil
		})
	}
}

type openRequest struct {
	ID ItemID `json:"id"`
}

func handleOpen(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req openRequest
		if status, err := decodeBody(w, r, &req); err != nil {
			writeError(w, status, errors.New("invalid open body"))
			return
		}
		if req.ID == "" {
			writeError(w, http.StatusBadRequest, errors.New("id is required"))
			return
		}
		withSession(w, r, svc, func(g *Gallery) (int, error) {
			if _, ok := g.Catalog().Item(req.ID); !ok {
				return http.StatusNotFound, ErrItemNotFound
			}
			// Hidden items are ignored, as a click on them would be.
			g.Open(req.ID)
			return http.StatusOK, nil
		})
	}
}

type keysRequest struct {
	Keys []string `json:"keys"`
}

func handleKeys(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var req keysRequest
		if status, err := decodeBody(w, r, &req); err != nil {
			writeError(w, status, errors.New("invalid keys body"))
			return
		}
		withSession(w, r, svc, func(g *Gallery) (int, error) {
			for _, k := range req.Keys {
				g.Viewer().HandleKey(k)
			}
			return http.StatusOK, nil
		})
	}
}

func handleFullscreen(svc *Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		withSession(w, r, svc, func(g *Gallery) (int, error) {
			if err := g.Viewer().ToggleFullscreen(r.Context()); err != nil {
				return http.StatusConflict, err
			}
			return http.StatusOK, nil
		})
	}
}

func withSession(w http.ResponseWriter, r *http.Request, svc *Service, fn func(*Gallery) (int, error)) {
	var (
		status int
		snap   Snapshot
	)
	err := svc.sessions.With(chi.URLParam(r, "id"), func(g *Gallery) error {
		var err error
		status, err = fn(g)
		snap = g.Snapshot()
		return err
	})
	switch {
	case errors.Is(err, session.ErrNotFound):
		writeError(w, http.StatusNotFound, err)
	case err != nil:
		writeError(w, status, err)
	default:
		writeJSON(w, status, snap)
	}
}

func writeJSON(w http.ResponseWriter, status int, v any) {
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	json.NewEncoder(w).Encode(v)
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

func writeError(w http.ResponseWriter, status int, err error) {
	writeJSON(w, status, map[string]string{"error": err.Error()})
}
