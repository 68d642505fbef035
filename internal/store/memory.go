// internal/store/memory.go
//
// In-memory game session store.
//
// Characteristics:
//   - Stores *round.Game values keyed by ID in a map.
//   - Concurrency-safe via RWMutex (concurrent reads allowed, writes exclusive).
//   - State is lost when the process restarts; scores are never persisted.
//   - Get returns ErrNotFound for unknown IDs.
//   - With WithTTL, a game expires that long after it was saved. Expired
//     games are invisible to Get and are swept out on every Save.

package store

import (
	"context"
	"errors"
	"sync"
	"time"

	"github.com/robalobadob/cfgmaze/internal/round"
)

// ErrNotFound: no game with that ID.
var ErrNotFound = errors.New("store: game not found")

// Store defines the session interface for games.
type Store interface {
	// Save adds or replaces a game.
	Save(ctx context.Context, g *round.Game) error

	// Get retrieves a game by ID.
	Get(ctx context.Context, id string) (*round.Game, error)

	// Delete forgets a game. Unknown IDs are ignored.
	Delete(ctx context.Context, id string) error

	// Len reports how many games are held.
	Len() int
}

// Option customises a memory store.
type Option func(*memory)

// WithTTL expires games ttl after they were saved. 0 keeps games forever.
func WithTTL(ttl time.Duration) Option {
	return func(m *memory) { m.ttl = ttl }
}

// WithClock replaces time.Now.
func WithClock(now func() time.Time) Option {
	return func(m *memory) { m.now = now }
}

type entry struct {
	game  *round.Game
	saved time.Time
}

// memory is an in-memory map-based Store implementation.
type memory struct {
	mu    sync.RWMutex
	games map[string]entry
	ttl   time.Duration
	now   func() time.Time
}

// NewMemoryStore constructs a new in-memory Store.
func NewMemoryStore(opts ...Option) Store {
	m := &memory{games: make(map[string]entry), now: time.Now}
	for _, o := range opts {
		o(m)
	}
	return m
}

func (m *memory) Save(ctx context.Context, g *round.Game) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	now := m.now()
	m.sweep(now)
	m.games[g.ID] = entry{game: g, saved: now}
	return nil
}

func (m *memory) Get(ctx context.Context, id string) (*round.Game, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	if e, ok := m.games[id]; ok && !m.expired(e, m.now()) {
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

func (m *memory) Len() int {
	m.mu.RLock()
	defer m.mu.RUnlock()
	return len(m.games)
}

// sweep drops expired games. Callers hold m.mu for writing.
func (m *memory) sweep(now time.Time) {
	if m.ttl <= 0 {
		return
	}
	for id, e := range m.games {
		if m.expired(e, now) {
			delete(m.games, id)
		}
	}
}

func (m *memory) expired(e entry, now time.Time) bool {
	return m.ttl > 0 && now.Sub(e.saved) >= m.ttl
}
