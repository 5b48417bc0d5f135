// internal/store/memory.go
//
// In-memory registry of live games.
// Games live only as long as the process; nothing is written to disk.
//
// Characteristics:
//   - Stores *game.Game objects keyed by ID in a map, each with an expiry.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - ErrNotFound is returned for unknown or expired IDs.
//   - Expired entries stay in the map until Delete is called for them;
//     Expired lists the candidates for a sweep.

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/robalobadob/scramble/apps/go-server/internal/game"
)

// ErrNotFound is returned when no live game has the requested ID.
var ErrNotFound = errors.New("game not found")

// Store defines the registry interface for game sessions.
type Store interface {
	// Save adds or replaces a game. It is dropped from view at expiresAt;
	// a zero expiresAt never expires.
	Save(ctx context.Context, g *game.Game, expiresAt time.Time) error

	// Get retrieves a live game by ID.
	Get(ctx context.Context, id string) (*game.Game, error)

	// Delete drops a game. Deleting an unknown ID is not an error.
	Delete(ctx context.Context, id string) error

	// Expired lists the IDs of games whose expiry is at or before now.
	Expired(ctx context.Context, now time.Time) ([]string, error)

	// Len reports the number of stored games, expired or not.
	Len() int
}

type entry struct {
	game      *game.Game
	expiresAt time.Time
}

func (e entry) expired(now time.Time) bool {
	return !e.expiresAt.IsZero() && !now.Before(e.expiresAt)
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu    sync.RWMutex     // guards games map
	games map[string]entry // keyed by Game.ID
	now   func() time.Time
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore() Store {
	return &memory{games: make(map[string]entry), now: time.Now}
}

func (m *memory) Save(ctx context.Context, g *game.Game, expiresAt time.Time) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.games[g.ID] = entry{game: g, expiresAt: expiresAt}
	return nil
}

func (m *memory) Get(ctx context.Context, id string) (*game.Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if e, ok := m.games[id]; ok && !e.expired(m.now()) {
		return e.game, nil
	}
	return nil, ErrNotFound
}

func (m *memory) Delete(ctx context.Context, id string) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	delete(m.games, id)
	return nil
}

func (m *memory) Expired(ctx context.Context, now time.Time) ([]string, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var ids []string
	for id, e := range m.games {
		if e.expired(now) {
			ids = append(ids, id)
		}
	}
	return ids, nil
}

func (m *memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}
