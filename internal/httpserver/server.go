// apps/go-server/internal/httpserver/server.go
//
// HTTP server wiring for the Trisudoku engine.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs).
//   - Public endpoints: "/", "/health".
//   - Level endpoints: single-layer and combined puzzle loads, board checks.
//   - Progress endpoints: completions, sessions, per-category stats,
//     mode totals, and the token-gated bulk clear.
//
// Notes:
//   - CORS is origin-aware and credentials-enabled (so cookies work).
//   - Parse/validation failures surface as typed JSON errors with
//     distinct status codes; the client can tell corrupt data from a
//     missing pack.

package httpserver

import (
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"

	"github.com/robalobadob/trisudoku/apps/go-server/internal/level"
	"github.com/robalobadob/trisudoku/apps/go-server/internal/progress"
	"github.com/robalobadob/trisudoku/apps/go-server/internal/stats"
)

// Options carries the injected dependencies and settings.
type Options struct {
	Levels *level.Service
	Store  progress.Store
	Stats  *stats.Aggregator

	// ClientOrigin is the single origin allowed by CORS.
	ClientOrigin string
	// JWTSecret signs device tokens.
	JWTSecret []byte
}

// Server bundles the router with the engine services.
type Server struct {
	r      *chi.Mux
	levels *level.Service
	store  progress.Store
	stats  *stats.Aggregator
	secret []byte
}

// New constructs a Server, installs middleware, and registers routes.
func New(opts Options) *Server {
	s := &Server{
		r:      chi.NewRouter(),
		levels: opts.Levels,
		store:  opts.Store,
		stats:  opts.Stats,
		secret: opts.JWTSecret,
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(corsForOrigin(opts.ClientOrigin))

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"trisudoku-go","endpoints":["/health","/levels","/crazy","/stats","/progress"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	// Levels
	s.r.Get("/levels/{mode}/{difficulty}/{level}", s.handleLoadPuzzle)
	s.r.Get("/crazy/{tier}/{level}", s.handleLoadCombined)
	s.r.Post("/check/{mode}/{difficulty}/{level}", s.handleCheck)

	// Progress + stats
	s.r.Post("/progress/complete", s.handleComplete)
	s.r.Get("/stats/{mode}/{difficulty}", s.handleCategoryStats)
	s.r.Get("/stats/{mode}", s.handleTotalCompleted)
	s.r.Route("/session/{mode}/{difficulty}", func(r chi.Router) {
		r.Put("/", s.handleSaveSession)
		r.Get("/", s.handleLoadSession)
		r.Delete("/", s.handleClearSession)
	})

	// Device identity + destructive clear
	s.r.Post("/device", s.handleNewDevice)
	s.r.With(s.requireDevice()).Delete("/progress", s.handleClearProgress)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, `{"error":"not_found","path":"`+r.URL.Path+`"}`, http.StatusNotFound)
	})

	return s
}

// Start begins serving HTTP on addr.
func (s *Server) Start(addr string) error { return http.ListenAndServe(addr, s.r) }

// Router exposes the internal router (useful for tests).
func (s *Server) Router() chi.Router { return s.r }

// ----------------------------- middleware ----------------------------------

// jsonContentType sets a default JSON Content-Type header on all responses.
func jsonContentType(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Header().Set("Content-Type", "application/json; charset=utf-8")
		next.ServeHTTP(w, r)
	})
}

// corsForOrigin enables credentialed CORS for a single origin.
func corsForOrigin(origin string) func(http.Handler) http.Handler {
	if origin == "" {
		origin = "http://localhost:5173"
	}
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,PUT,DELETE,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}
