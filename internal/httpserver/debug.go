package httpserver

import (
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/crypto/bcrypt"
)

// mountDebug registers /debug/words when DEBUG_PASSWORD_HASH is configured.
func (s *Server) mountDebug(r chi.Router) {
	if s.cfg.DebugPasswordHash == "" {
		return
	}
	r.With(s.requireDebugAuth).Get("/debug/words", s.handleDebugWords)
}

// requireDebugAuth checks HTTP basic auth against the bcrypt hash.
// Any username is accepted.
func (s *Server) requireDebugAuth(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		_, pw, ok := r.BasicAuth()
		if !ok || !checkPassword(s.cfg.DebugPasswordHash, pw) {
			w.Header().Set("WWW-Authenticate", `Basic realm="debug"`)
			writeError(w, http.StatusUnauthorized, "unauthorized")
			return
		}
		next.ServeHTTP(w, r)
	})
}

// checkPassword is a bcrypt verifier.
func checkPassword(hash, pw string) bool {
	return bcrypt.CompareHashAndPassword([]byte(hash), []byte(pw)) == nil
}

// handleDebugWords reports word list and registry sizes.
func (s *Server) handleDebugWords(w http.ResponseWriter, r *http.Request) {
	out := map[string]int{
		"roots": s.deps.Words.Len(),
		"games": s.deps.Store.Len(),
	}
	if s.deps.DictionaryCount != nil {
		n, err := s.deps.DictionaryCount(r.Context())
		if err != nil {
			log.Warn().Err(err).Msg("count dictionary")
		} else {
			out["dictionary"] = n
		}
	}
	writeJSON(w, http.StatusOK, out)
}
