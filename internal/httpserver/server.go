// internal/httpserver/server.go
//
// HTTP server wiring for the Word Scramble backend.
// Responsibilities:
//   - Router + middleware (JSON, CORS, timeouts, panic recovery, request IDs, access log).
//   - Public endpoints: "/", "/health".
//   - Game endpoints: POST /game/new, and token-gated /game/{id}, /game/{id}/submit,
//     /game/{id}/restart (routes_game.go).
//   - Debug endpoint guarded by basic auth (debug.go).
//   - Expired games and their limiters are swept on a ticker (sweep.go).
//
// Notes:
//   - CORS is origin-aware and credentials-enabled (so the game cookie works).
//   - Validation rejections are normal game results (HTTP 200), not transport errors.

package httpserver

import (
	"context"
	"encoding/json"
	"net/http"
	"sync"
	"time"

	"github.com/go-chi/chi/v5"
	chimw "github.com/go-chi/chi/v5/middleware"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/robalobadob/scramble/apps/go-server/internal/config"
	"github.com/robalobadob/scramble/apps/go-server/internal/dictionary"
	"github.com/robalobadob/scramble/apps/go-server/internal/store"
	"github.com/robalobadob/scramble/apps/go-server/internal/words"
)

// Deps are the collaborators the server needs.
type Deps struct {
	Store      store.Store
	Words      *words.Source
	Dictionary dictionary.Dictionary
	Config     config.Config

	// DictionaryCount reports the dictionary size for /debug/words; optional.
	DictionaryCount func(ctx context.Context) (int, error)
}

// Server bundles router, game registry and game settings.
type Server struct {
	r      *chi.Mux
	deps   Deps
	cfg    config.Config
	tokens *tokenSigner

	limMu    sync.Mutex
	limiters map[string]*rate.Limiter // per game ID
}

// New constructs a Server, installs middleware, and registers routes.
func New(deps Deps) *Server {
	s := &Server{
		r:        chi.NewRouter(),
		deps:     deps,
		cfg:      deps.Config,
		tokens:   newTokenSigner(deps.Config.JWTSecret, deps.Config.GameTokenTTL),
		limiters: make(map[string]*rate.Limiter),
	}

	// --- middleware ---
	s.r.Use(chimw.RequestID)                 // add X-Request-ID
	s.r.Use(chimw.RealIP)                    // set RemoteAddr from X-Forwarded-For etc.
	s.r.Use(accessLog)                       // zerolog access line per request
	s.r.Use(chimw.Recoverer)                 // recover from panics
	s.r.Use(chimw.Timeout(10 * time.Second)) // bound handler time
	s.r.Use(jsonContentType)                 // default JSON responses
	s.r.Use(cors(s.cfg.ClientOrigin))        // credentials-friendly CORS

	// --- diagnostics ---
	s.r.Get("/", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"service":"scramble-go","endpoints":["/health","POST /game/new","GET /game/{id}","POST /game/{id}/submit","POST /game/{id}/restart"]}`))
	})
	s.r.Get("/health", func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusOK)
		_, _ = w.Write([]byte(`{"ok":true}`))
	})

	s.mountGame(s.r)
	s.mountDebug(s.r)

	// JSON 404 for easier debugging
	s.r.NotFound(func(w http.ResponseWriter, r *http.Request) {
		writeError(w, http.StatusNotFound, "not_found")
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

// cors enables credentialed CORS for a single origin.
func cors(origin string) func(http.Handler) http.Handler {
	return func(next http.Handler) http.Handler {
		return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
			w.Header().Set("Vary", "Origin")
			w.Header().Set("Access-Control-Allow-Origin", origin)
			w.Header().Set("Access-Control-Allow-Credentials", "true")
			w.Header().Set("Access-Control-Allow-Methods", "GET,POST,OPTIONS")
			w.Header().Set("Access-Control-Allow-Headers", "Content-Type, Authorization")
			if r.Method == http.MethodOptions {
				w.WriteHeader(http.StatusNoContent)
				return
			}
			next.ServeHTTP(w, r)
		})
	}
}

// accessLog writes one debug line per request.
func accessLog(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		ww := chimw.NewWrapResponseWriter(w, r.ProtoMajor)
		start := time.Now()
		next.ServeHTTP(ww, r)
		log.Debug().
			Str("requestId", chimw.GetReqID(r.Context())).
			Str("method", r.Method).
			Str("path", r.URL.Path).
			Int("status", ww.Status()).
			Dur("elapsed", time.Since(start)).
			Msg("request")
	})
}

// ------------------------------- helpers -----------------------------------

// writeJSON encodes v with the given status.
func writeJSON(w http.ResponseWriter, status int, v any) {
	w.WriteHeader(status)
	_ = json.NewEncoder(w).Encode(v)
}

// writeError writes {"error": code}.
func writeError(w http.ResponseWriter, status int, code string) {
	writeJSON(w, status, map[string]string{"error": code})
}
