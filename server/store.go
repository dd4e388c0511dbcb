package server

import (
	"crypto/rand"
	"encoding/hex"
	"errors"
	"sync"

	"github.com/rs/zerolog"

	"github.com/plus3/garden/garden"
	"github.com/plus3/garden/scoreboard"
)

// ErrSessionNotFound is returned when no session has the requested ID.
var ErrSessionNotFound = errors.New("session not found")

// Session is one player's game. All access to the game goes through the
// session so concurrent requests are applied one at a time.
type Session struct {
	ID     string
	Player string

	mu   sync.Mutex
	game *garden.Game
	hub  *hub
}

// Move is the outcome of one placement request.
type Move struct {
	Placement garden.Placement
	Accepted  bool
	State     garden.State
	// Finished is the round's result when this placement ended it. Only the
	// placement that ends a round carries it.
	Finished *scoreboard.Result
}

// State returns a snapshot of the game.
func (s *Session) State() garden.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.game.State()
}

// Place applies a placement at a cell.
func (s *Session) Place(pos garden.Coord) Move {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.game.HandlePlacement(pos)
	return s.move(p, ok)
}

// PlaceAt applies a placement at a world position.
func (s *Session) PlaceAt(pt garden.Point) Move {
	s.mu.Lock()
	defer s.mu.Unlock()
	p, ok := s.game.HandlePlacementAt(pt)
	return s.move(p, ok)
}

// move snapshots the game after a placement. s.mu must be held.
func (s *Session) move(p garden.Placement, ok bool) Move {
	m := Move{Placement: p, Accepted: ok, State: s.game.State()}
	if ok && p.GameOver {
		m.Finished = &scoreboard.Result{
			Player:     s.Player,
			Score:      m.State.Score,
			Tiles:      m.State.FinalTileCount,
			BonusTiles: m.State.BonusTiles,
			Seed:       s.game.Seed(),
		}
	}
	return m
}

// Restart deals a new round.
func (s *Session) Restart() garden.State {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.game.Restart()
	return s.game.State()
}

// Store keeps sessions in memory. State is lost on restart.
type Store struct {
	mu       sync.RWMutex
	sessions map[string]*Session
	base     []garden.Option
	logger   zerolog.Logger
}

// NewStore returns an empty store. Every game it creates starts from base.
func NewStore(logger zerolog.Logger, base ...garden.Option) *Store {
	return &Store{
		sessions: make(map[string]*Session),
		base:     base,
		logger:   logger,
	}
}

// Create starts a game for player. extra is applied after the store's base
// options.
func (st *Store) Create(player string, extra ...garden.Option) *Session {
	id := newID()
	opts := make([]garden.Option, 0, len(st.base)+len(extra)+1)
	opts = append(opts, st.base...)
	opts = append(opts, extra...)
	opts = append(opts, garden.WithLogger(st.logger.With().Str("game", id).Logger()))

	s := &Session{
		ID:     id,
		Player: player,
		game:   garden.New(opts...),
		hub:    newHub(),
	}

	st.mu.Lock()
	st.sessions[id] = s
	st.mu.Unlock()
	return s
}

// Get looks up a session by ID.
func (st *Store) Get(id string) (*Session, error) {
	st.mu.RLock()
	defer st.mu.RUnlock()
	if s, ok := st.sessions[id]; ok {
		return s, nil
	}
	return nil, ErrSessionNotFound
}

// Len is the number of live sessions.
func (st *Store) Len() int {
	st.mu.RLock()
	defer st.mu.RUnlock()
	return len(st.sessions)
}

func newID() string {
	var b [8]byte
	_, _ = rand.Read(b[:])
	return hex.EncodeToString(b[:])
}
