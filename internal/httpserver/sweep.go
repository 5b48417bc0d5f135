package httpserver

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
)

// Sweep deletes games whose token lifetime has ended and drops their
// submission limiters. It returns the number of games removed.
func (s *Server) Sweep(ctx context.Context, now time.Time) int {
	ids, err := s.deps.Store.Expired(ctx, now)
	if err != nil {
		log.Warn().Err(err).Msg("list expired games")
		return 0
	}
	removed := 0
	for _, id := range ids {
		if err := s.deps.Store.Delete(ctx, id); err != nil {
			log.Warn().Err(err).Str("gameId", id).Msg("delete expired game")
			continue
		}
		s.limMu.Lock()
		delete(s.limiters, id)
		s.limMu.Unlock()
		removed++
	}
	if removed > 0 {
		log.Debug().Int("removed", removed).Int("live", s.deps.Store.Len()).Msg("expired games swept")
	}
	return removed
}

// RunSweeper calls Sweep every interval until ctx is done.
func (s *Server) RunSweeper(ctx context.Context, every time.Duration) {
	if every <= 0 {
		every = time.Minute
	}
	ticker := time.NewTicker(every)
	defer ticker.Stop()
	for {
		select {
		case <-ctx.Done():
			return
		case now := <-ticker.C:
			s.Sweep(ctx, now)
		}
	}
}
