// internal/httpserver/routes_game.go
//
// HTTP routes for playing a game.
//   - POST /game/new              → create a game, return its token and snapshot
//   - GET  /game/{id}             → current snapshot
//   - POST /game/{id}/submit      → submit a word
//   - POST /game/{id}/restart     → start a new round
//
// Every /game/{id} route requires the token issued by /game/new, either as
// `Authorization: Bearer <token>` or the game cookie. Submissions are rate
// limited per game.

package httpserver

import (
	"context"
	"encoding/json"
	"errors"
	"io"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
	"golang.org/x/time/rate"

	"github.com/robalobadob/scramble/apps/go-server/internal/game"
	"github.com/robalobadob/scramble/apps/go-server/internal/store"
)

// ctxGameKey is the context key type for the resolved *game.Game.
type ctxGameKey struct{}

// mountGame registers all /game routes.
func (s *Server) mountGame(r chi.Router) {
	r.Post("/game/new", s.handleNewGame)
	r.Route("/game/{id}", func(r chi.Router) {
		r.Use(s.requireGameToken)
		r.Get("/", s.handleGetGame)
		r.Post("/submit", s.handleSubmit)
		r.Post("/restart", s.handleRestart)
	})
}

// -----------------------------------------------------------------------------
// /game/new

// newGameReq is the request payload for /game/new.
type newGameReq struct {
	Mode string `json:"mode"` // "random" (default) | "daily"
}

// newGameRes is returned by /game/new.
type newGameRes struct {
	GameID string        `json:"gameId"`
	Token  string        `json:"token"`
	Game   game.Snapshot `json:"game"`
}

// handleNewGame creates a game, registers it until its token expires, and
// issues the token. An empty body starts a random game.
func (s *Server) handleNewGame(w http.ResponseWriter, r *http.Request) {
	var req newGameReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil && !errors.Is(err, io.EOF) {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}

	mode := game.ModeRandom
	switch req.Mode {
	case "", string(game.ModeRandom):
	case string(game.ModeDaily):
		mode = game.ModeDaily
	default:
		writeError(w, http.StatusBadRequest, "invalid_mode")
		return
	}

	g := game.New(game.Options{
		Words:      s.deps.Words,
		Dictionary: s.deps.Dictionary,
		Locale:     s.cfg.DictionaryLocale,
		Score:      game.ScoreRuleFor(s.cfg.ScoreMode),
		Mode:       mode,
		DailySalt:  s.cfg.DailySalt,
	})

	tok, exp, err := s.tokens.sign(g.ID)
	if err != nil {
		log.Error().Err(err).Str("gameId", g.ID).Msg("sign game token")
		writeError(w, http.StatusInternalServerError, "sign_failed")
		return
	}
	if err := s.deps.Store.Save(r.Context(), g, exp); err != nil {
		log.Error().Err(err).Msg("save game")
		writeError(w, http.StatusInternalServerError, "save_failed")
		return
	}
	setGameCookie(w, tok, exp, s.cfg.CookieSecure)

	snap := g.Snapshot()
	log.Info().Str("gameId", g.ID).Str("mode", string(mode)).Str("root", snap.RootWord).Msg("game started")
	writeJSON(w, http.StatusOK, newGameRes{GameID: g.ID, Token: tok, Game: snap})
}

// -----------------------------------------------------------------------------
// token gate

// requireGameToken checks the token matches {id} and loads the game into context.
func (s *Server) requireGameToken(next http.Handler) http.Handler {
	return http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "id")
		tok := bearerOrCookie(r)
		if tok == "" {
			writeError(w, http.StatusUnauthorized, "missing_token")
			return
		}
		sub, err := s.tokens.verify(tok)
		if err != nil {
			writeError(w, http.StatusUnauthorized, "invalid_token")
			return
		}
		if sub != id {
			writeError(w, http.StatusForbidden, "wrong_game")
			return
		}
		g, err := s.deps.Store.Get(r.Context(), id)
		if errors.Is(err, store.ErrNotFound) {
			writeError(w, http.StatusNotFound, "not_found")
			return
		}
		if err != nil {
			log.Error().Err(err).Str("gameId", id).Msg("load game")
			writeError(w, http.StatusInternalServerError, "load_failed")
			return
		}
		next.ServeHTTP(w, r.WithContext(context.WithValue(r.Context(), ctxGameKey{}, g)))
	})
}

// gameFrom returns the game placed in context by requireGameToken.
func gameFrom(r *http.Request) *game.Game {
	g, _ := r.Context().Value(ctxGameKey{}).(*game.Game)
	return g
}

// -----------------------------------------------------------------------------
// /game/{id}

func (s *Server) handleGetGame(w http.ResponseWriter, r *http.Request) {
	writeJSON(w, http.StatusOK, gameFrom(r).Snapshot())
}

// -----------------------------------------------------------------------------
// /game/{id}/submit

// submitReq is the request payload for /game/{id}/submit.
type submitReq struct {
	Word string `json:"word"`
}

// submitRes is the response payload for /game/{id}/submit.
type submitRes struct {
	Result game.Result   `json:"result"`
	Game   game.Snapshot `json:"game"`
}

// handleSubmit runs one word through the game.
// Rejections are returned with 200 and a `rejection` object; blank input
// comes back as `ignored`.
func (s *Server) handleSubmit(w http.ResponseWriter, r *http.Request) {
	g := gameFrom(r)
	if !s.limiter(g.ID).Allow() {
		writeError(w, http.StatusTooManyRequests, "slow_down")
		return
	}

	var req submitReq
	if err := json.NewDecoder(r.Body).Decode(&req); err != nil {
		writeError(w, http.StatusBadRequest, "bad_json")
		return
	}

	res, err := g.Submit(r.Context(), req.Word)
	if err != nil {
		log.Warn().Err(err).Str("gameId", g.ID).Msg("submit")
		writeError(w, http.StatusServiceUnavailable, "dictionary_unavailable")
		return
	}

	ev := log.Debug().Str("gameId", g.ID)
	switch {
	case res.Accepted:
		ev.Str("word", res.Word).Int("points", res.Points).Msg("word accepted")
	case res.Rejection != nil:
		ev.Str("kind", string(res.Rejection.Kind)).Msg("word rejected")
	default:
		ev.Msg("blank submission ignored")
	}

	writeJSON(w, http.StatusOK, submitRes{Result: res, Game: g.Snapshot()})
}

// limiter returns the submission limiter for gameID, creating it on first use.
func (s *Server) limiter(gameID string) *rate.Limiter {
	s.limMu.Lock()
	defer s.limMu.Unlock()
	l, ok := s.limiters[gameID]
	if !ok {
		limit := rate.Limit(s.cfg.SubmitRate)
		if s.cfg.SubmitRate <= 0 {
			limit = rate.Inf
		}
		burst := s.cfg.SubmitBurst
		if burst < 1 {
			burst = 1
		}
		l = rate.NewLimiter(limit, burst)
		s.limiters[gameID] = l
	}
	return l
}

// -----------------------------------------------------------------------------
// /game/{id}/restart

func (s *Server) handleRestart(w http.ResponseWriter, r *http.Request) {
	g := gameFrom(r)
	snap := g.Restart()
	log.Info().Str("gameId", g.ID).Str("root", snap.RootWord).Int("round", snap.Rounds).Msg("round restarted")
	writeJSON(w, http.StatusOK, snap)
}
