// Package garden implements the tile-placement core of the garden game: an
// unbounded grid with a placement frontier, neighbor-matching scores and a
// two-phase game loop fed by a queue of random tile types.
//
// The core is synchronous. Every call to HandlePlacement or Restart is fully
// applied before it returns, and the package starts no goroutines.
package garden

import (
	"fmt"
	"math/rand/v2"

	"github.com/rs/zerolog"
)

const (
	// DefaultQueueSize is the number of tiles dealt at the start of a round.
	DefaultQueueSize = 30
	// BasePoints is awarded for every accepted placement.
	BasePoints = 5
	// BonusTileThreshold is the match bonus that starts granting extra tiles.
	BonusTileThreshold = 20
	// previewLength is how many upcoming types State reports.
	previewLength = 5
)

// Phase is the game loop state.
type Phase int

const (
	Playing Phase = iota
	GameOver
)

func (p Phase) String() string {
	switch p {
	case Playing:
		return "playing"
	case GameOver:
		return "game_over"
	default:
		return "unknown"
	}
}

func (p Phase) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

func (p *Phase) UnmarshalText(text []byte) error {
	switch string(text) {
	case "playing":
		*p = Playing
	case "game_over":
		*p = GameOver
	default:
		return fmt.Errorf("garden: unknown phase %q", text)
	}
	return nil
}

// Placement describes an accepted placement.
type Placement struct {
	Tile       PlacedTile `json:"tile"`
	Bonus      int        `json:"bonus"`
	Points     int        `json:"points"`
	BonusTiles int        `json:"bonus_tiles"`
	GameOver   bool       `json:"game_over"`
}

// Option configures a Game.
type Option func(*options)

type options struct {
	queueSize int
	rng       RandomSource
	seed      uint64
	seeded    bool
	spacing   Spacing
	logger    zerolog.Logger
}

// WithQueueSize sets how many tiles are dealt per round.
func WithQueueSize(n int) Option {
	return func(o *options) { o.queueSize = n }
}

// WithRand injects the random source used for every tile draw.
func WithRand(rng RandomSource) Option {
	return func(o *options) { o.rng = rng }
}

// WithSeed seeds the default PCG source. Ignored when WithRand is given.
func WithSeed(seed uint64) Option {
	return func(o *options) {
		o.seed = seed
		o.seeded = true
	}
}

// WithSpacing sets the world distance between cell centers.
func WithSpacing(s Spacing) Option {
	return func(o *options) { o.spacing = s }
}

// WithLogger attaches a logger. The default discards everything.
func WithLogger(logger zerolog.Logger) Option {
	return func(o *options) { o.logger = logger }
}

// NewRand returns the PCG source a seeded Game uses.
func NewRand(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))
}

// Game owns the grid, the tile queue and the score of one garden.
type Game struct {
	grid      *Grid
	queue     *TileQueue
	rng       RandomSource
	seed      uint64
	queueSize int
	logger    zerolog.Logger

	phase          Phase
	current        TileType
	score          int
	moves          int
	bonusTiles     int
	finalTileCount int
	round          int
}

// New deals a fresh round and returns the game in the Playing phase.
// It panics if the queue size is not positive.
func New(opts ...Option) *Game {
	o := options{
		queueSize: DefaultQueueSize,
		spacing:   Spacing{X: DefaultSpacing, Y: DefaultSpacing},
		logger:    zerolog.Nop(),
	}
	for _, opt := range opts {
		opt(&o)
	}
	if o.queueSize <= 0 {
		panic("garden: queue size must be positive")
	}

	rng := o.rng
	seed := o.seed
	if rng == nil {
		if !o.seeded {
			seed = rand.Uint64()
		}
		rng = NewRand(seed)
	}

	g := &Game{
		grid:      NewGrid(o.spacing),
		queue:     &TileQueue{},
		rng:       rng,
		seed:      seed,
		queueSize: o.queueSize,
		logger:    o.logger,
	}
	g.deal()
	return g
}

// deal refills the queue and draws the first tile.
func (g *Game) deal() {
	g.queue.Clear()
	g.queue.Fill(g.rng, g.queueSize)
	g.current, _ = g.queue.Pop()
	g.phase = Playing
	g.score = 0
	g.moves = 0
	g.bonusTiles = 0
	g.finalTileCount = 0
}

// HandlePlacement places the current tile at pos. Requests at cells outside
// the frontier, at occupied cells or after the game ended are ignored and
// report false; the game state is unchanged.
func (g *Game) HandlePlacement(pos Coord) (Placement, bool) {
	if g.phase != Playing {
		return Placement{}, false
	}

	tile, ok := g.grid.Place(g.current, pos)
	if !ok {
		return Placement{}, false
	}

	bonus := MatchBonus(tile.Type, g.grid.Neighbors(pos))
	points := BasePoints + bonus
	g.score += points
	g.moves++

	extra := 0
	if bonus >= BonusTileThreshold {
		extra = bonus / ExactMatchBonus
		g.queue.Fill(g.rng, extra)
		g.bonusTiles += extra
		g.logger.Info().
			Int("bonus", bonus).
			Int("extra_tiles", extra).
			Stringer("pos", pos).
			Msg("bonus tiles granted")
	}

	g.logger.Debug().
		Stringer("type", tile.Type).
		Stringer("pos", pos).
		Int("bonus", bonus).
		Int("score", g.score).
		Msg("tile placed")

	next, ok := g.queue.Pop()
	if !ok {
		g.phase = GameOver
		g.finalTileCount = g.grid.TileCount()
		g.logger.Info().
			Int("score", g.score).
			Int("tiles", g.finalTileCount).
			Int("round", g.round).
			Msg("game over")
	} else {
		g.current = next
	}

	return Placement{
		Tile:       tile,
		Bonus:      bonus,
		Points:     points,
		BonusTiles: extra,
		GameOver:   g.phase == GameOver,
	}, true
}

// HandlePlacementAt converts a world position to its cell and places there.
// Positions that are not finite, or that map outside the grid, are ignored.
func (g *Game) HandlePlacementAt(p Point) (Placement, bool) {
	pos, ok := g.grid.spacing.cellOf(p)
	if !ok {
		return Placement{}, false
	}
	return g.HandlePlacement(pos)
}

// Restart discards the current garden and deals a new round. It is valid in
// either phase.
func (g *Game) Restart() {
	g.grid.Reset()
	g.round++
	g.deal()
	g.logger.Debug().Int("round", g.round).Msg("game restarted")
}

// Phase returns the current loop state.
func (g *Game) Phase() Phase { return g.phase }

// IsGameOver reports whether the round has ended.
func (g *Game) IsGameOver() bool { return g.phase == GameOver }

// Score is the running total for the round.
func (g *Game) Score() int { return g.score }

// TilesRemaining is the number of tiles waiting behind the current one.
func (g *Game) TilesRemaining() int { return g.queue.Len() }

// CurrentType is the type the next accepted placement will use.
func (g *Game) CurrentType() TileType { return g.current }

// Upcoming returns up to n types queued after the current one.
func (g *Game) Upcoming(n int) []TileType { return g.queue.Peek(n) }

// FinalTileCount is the number of tiles on the grid when the round ended.
// It is zero while the game is still playing.
func (g *Game) FinalTileCount() int { return g.finalTileCount }

// Frontier returns the cells that accept the next placement.
func (g *Game) Frontier() []Coord { return g.grid.Frontier() }

// Grid exposes the grid read-only.
func (g *Game) Grid() GridView { return g.grid }

// Moves is the number of accepted placements this round.
func (g *Game) Moves() int { return g.moves }

// BonusTiles is the number of extra tiles granted this round.
func (g *Game) BonusTiles() int { return g.bonusTiles }

// Round counts restarts since the game was created.
func (g *Game) Round() int { return g.round }

// Seed is the seed of the default random source, or zero when a source was
// injected with WithRand.
func (g *Game) Seed() uint64 { return g.seed }

// QueueSize is the number of tiles dealt per round.
func (g *Game) QueueSize() int { return g.queueSize }

// State is a point-in-time copy of every observable of a game.
type State struct {
	Phase          Phase        `json:"phase"`
	Score          int          `json:"score"`
	TilesRemaining int          `json:"tiles_remaining"`
	CurrentType    TileType     `json:"current_type"`
	Upcoming       []TileType   `json:"upcoming"`
	IsGameOver     bool         `json:"is_game_over"`
	FinalTileCount int          `json:"final_tile_count"`
	TileCount      int          `json:"tile_count"`
	Moves          int          `json:"moves"`
	BonusTiles     int          `json:"bonus_tiles"`
	Round          int          `json:"round"`
	Frontier       []Coord      `json:"frontier"`
	Tiles          []PlacedTile `json:"tiles"`
}

// State captures the observables. The result shares nothing with the game.
func (g *Game) State() State {
	return State{
		Phase:          g.phase,
		Score:          g.score,
		TilesRemaining: g.queue.Len(),
		CurrentType:    g.current,
		Upcoming:       g.queue.Peek(previewLength),
		IsGameOver:     g.phase == GameOver,
		FinalTileCount: g.finalTileCount,
		TileCount:      g.grid.TileCount(),
		Moves:          g.moves,
		BonusTiles:     g.bonusTiles,
		Round:          g.round,
		Frontier:       g.grid.Frontier(),
		Tiles:          g.grid.Tiles(),
	}
}
