// Package server hosts the HTTP surfaces of the gallery, calculator and
// portfolio engines.
package server

import (
	"context"
	"errors"
	"fmt"
	"net"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/chi/v5/middleware"
	"github.com/go-chi/cors"

	"github.com/codealpha/showcase/internal/db"
	"github.com/codealpha/showcase/internal/logging"
)

// Config holds server configuration.
type Config struct {
	Port     int
	AllowAll bool          // allow all CORS origins (dev mode)
	PruneTTL time.Duration // idle session lifetime; 0 disables pruning
}

// Pruner drops idle sessions. Feature services register their session
// registries so one janitor serves them all.
type Pruner interface {
	Prune(ttl time.Duration) int
}

// Server is the showcase HTTP server.
type Server struct {
	cfg        Config
	db         *db.DB
	router     chi.Router
	httpServer *http.Server
	pruners    map[string]Pruner
}

// New creates a server. database may be nil for surfaces that do not persist
// anything.
func New(cfg Config, database *db.DB) *Server {
	s := &Server{
		cfg:     cfg,
		db:      database,
		pruners: make(map[string]Pruner),
	}

	s.router = s.buildRouter()
	return s
}

// buildRouter creates and configures the chi router with all routes.
func (s *Server) buildRouter() chi.Router {
	r := chi.NewRouter()

	// Middleware
	r.Use(middleware.RequestID)
	r.Use(middleware.RealIP)
	r.Use(logging.RequestLogger)
	r.Use(middleware.Recoverer)

	// CORS
	corsOpts := cors.Options{
		AllowedOrigins:   []string{"http://localhost:*", "http://127.0.0.1:*"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	if s.cfg.AllowAll {
		corsOpts.AllowedOrigins = []string{"*"}
	}
	r.Use(cors.Handler(corsOpts))

	// Health check
	r.Get("/healthz", func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json")
		w.WriteHeader(http.StatusOK)
		w.Write([]byte(`{"status":"ok"}`))
	})

	// API routes are registered by feature packages via RegisterRoutes.
	// The keypad WebSocket is long-lived, so the request timeout is applied
	// per feature group rather than here.

	return r
}

// Router returns the chi router for registering additional routes.
func (s *Server) Router() chi.Router { return s.router }

// Database returns the database connection.
func (s *Server) Database() *db.DB { return s.db }

// ServerConfig returns the server configuration.
func (s *Server) ServerConfig() Config { return s.cfg }

// AddPruner registers a session registry for idle pruning.
func (s *Server) AddPruner(name string, p Pruner) { s.pruners[name] = p }

// Run serves until ctx is cancelled, then shuts down gracefully. Idle
// sessions are pruned every minute while it runs.
func (s *Server) Run(ctx context.Context) error {
	ln, err := net.Listen("tcp", fmt.Sprintf(":%d", s.cfg.Port))
	if err != nil {
		return fmt.Errorf("listening on port %d: %w", s.cfg.Port, err)
	}
	return s.Serve(ctx, ln)
}

// Serve is Run on an existing listener.
func (s *Server) Serve(ctx context.Context, ln net.Listener) error {
	log := logging.With("server")
	s.httpServer = &http.Server{
		Handler:           s.router,
		ReadHeaderTimeout: 10 * time.Second,
		IdleTimeout:       120 * time.Second,
	}

	errc := make(chan error, 1)
	go func() {
		log.Info().Str("addr", ln.Addr().String()).Msg("showcase server listening")
		errc <- s.httpServer.Serve(ln)
	}()

	var tick <-chan time.Time
	if s.cfg.PruneTTL > 0 {
		ticker := time.NewTicker(time.Minute)
		defer ticker.Stop()
		tick = ticker.C
	}

	for {
		select {
		case err := <-errc:
			if errors.Is(err, http.ErrServerClosed) {
				return nil
			}
			return err
		case <-tick:
			s.prune()
		case <-ctx.Done():
			log.Info().Msg("shutting down server")
			shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
			defer cancel()
			if err := s.httpServer.Shutdown(shutdownCtx); err != nil {
				return fmt.Errorf("shutting down: %w", err)
			}
			return nil
		}
	}
}

func (s *Server) prune() {
	log := logging.With("server")
	for name, p := range s.pruners {
		if n := p.Prune(s.cfg.PruneTTL); n > 0 {
			log.Debug().Str("sessions", name).Int("removed", n).Msg("pruned idle sessions")
		}
	}
}

// Shutdown gracefully shuts down the server.
func (s *Server) Shutdown(ctx context.Context) error {
	if s.httpServer != nil {
		return s.httpServer.Shutdown(ctx)
	}
	return nil
}
