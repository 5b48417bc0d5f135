// internal/game/engine.go
//
// Game session: the boundary the presentation layer talks to.
// Responsibilities:
//   - Create games and start their first round.
//   - Run submissions through the validation pipeline and apply accepted words.
//   - Restart rounds with a fresh root word.
//   - Hand out snapshots of the visible state.
//
// Notes:
//   - Root words come from the words package (random or daily pick).
//   - Each Game serializes its own submissions; the round is never shared.
package game

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/robalobadob/scramble/apps/go-server/internal/dictionary"
	"github.com/robalobadob/scramble/apps/go-server/internal/words"
)

// Options configures a new Game.
type Options struct {
	Words      *words.Source
	Dictionary dictionary.Dictionary
	Locale     string    // dictionary locale; empty → dictionary.DefaultLocale
	Score      ScoreRule // nil → ScoreNormalized
	Mode       Mode      // empty → ModeRandom
	DailySalt  string
	Root       string           // optional fixed root for the first round (testing)
	Now        func() time.Time // nil → time.Now
}

// Game holds one player's session.
type Game struct {
	ID   string
	Mode Mode

	mu     sync.Mutex
	opts   Options
	round  Round
	rounds int
}

// New constructs a game and starts its first round.
func New(opts Options) *Game {
	if opts.Score == nil {
		opts.Score = ScoreNormalized
	}
	if opts.Mode == "" {
		opts.Mode = ModeRandom
	}
	if opts.Locale == "" {
		opts.Locale = dictionary.DefaultLocale
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}
	g := &Game{ID: uuid.NewString(), Mode: opts.Mode, opts: opts}

	root := Normalize(opts.Root)
	if root == "" {
		root = g.pickRoot()
	}
	g.start(root)
	return g
}

// pickRoot chooses the next root word for the game's mode.
func (g *Game) pickRoot() string {
	if g.Mode == ModeDaily {
		_, w := g.opts.Words.Daily(g.opts.Now(), g.opts.DailySalt)
		return w
	}
	return g.opts.Words.Pick()
}

func (g *Game) start(root string) {
	g.round.Start(root)
	g.rounds++
}

// Restart begins a new round: score 0, no used words, new root word.
// Daily games get the day's root word again.
func (g *Game) Restart() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.start(g.pickRoot())
	return g.snapshot()
}

// Submit validates raw and, if accepted, records it.
//
// Outcomes:
//   - blank input        → Result{Ignored: true}, state unchanged.
//   - rejected word      → Result{Rejection: ...}, state unchanged.
//   - accepted word      → Result{Accepted: true, Word, Points}; word prepended, score bumped.
//   - dictionary failure → error, state unchanged.
func (g *Game) Submit(ctx context.Context, raw string) (Result, error) {
	g.mu.Lock()
	defer g.mu.Unlock()

	word, err := g.round.Validate(ctx, raw, g.opts.Dictionary, g.opts.Locale)
	if err != nil {
		var ve *ValidationError
		if errors.As(err, &ve) {
			return Result{Rejection: ve}, nil
		}
		return Result{}, err
	}
	if word == "" {
		return Result{Ignored: true}, nil
	}

	points := g.opts.Score(word, raw)
	g.round.Accept(word, points)
	return Result{Accepted: true, Word: word, Points: points}, nil
}

// Snapshot returns a copy of the visible state.
func (g *Game) Snapshot() Snapshot {
	g.mu.Lock()
	defer g.mu.Unlock()
	return g.snapshot()
}

func (g *Game) snapshot() Snapshot {
	return Snapshot{
		ID:        g.ID,
		Mode:      g.Mode,
		RootWord:  g.round.Root,
		UsedWords: append([]string{}, g.round.Used...),
		Score:     g.round.Score,
		Rounds:    g.rounds,
	}
}
