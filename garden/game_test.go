package garden_test

import (
	"math"
	"math/rand/v2"
	"testing"

	"github.com/plus3/garden/garden"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewGameDealsQueue(t *testing.T) {
	g := garden.New(garden.WithSeed(1))

	assert.Equal(t, garden.Playing, g.Phase())
	assert.False(t, g.IsGameOver())
	assert.Equal(t, 0, g.Score())
	assert.Equal(t, garden.DefaultQueueSize-1, g.TilesRemaining())
	assert.True(t, g.CurrentType().Valid())
	assert.Equal(t, []garden.Coord{garden.Origin}, g.Frontier())
	assert.Equal(t, uint64(1), g.Seed())
}

func TestQueueSizePanics(t *testing.T) {
	assert.Panics(t, func() { garden.New(garden.WithQueueSize(0)) })
}

func TestSeededGamesAreDeterministic(t *testing.T) {
	a := garden.New(garden.WithSeed(99), garden.WithQueueSize(10))
	b := garden.New(garden.WithSeed(99), garden.WithQueueSize(10))

	assert.Equal(t, a.CurrentType(), b.CurrentType())
	assert.Equal(t, a.Upcoming(10), b.Upcoming(10))
}

func TestFlowersThenGrassScoresFifteen(t *testing.T) {
	g := garden.New(
		garden.WithQueueSize(2),
		garden.WithRand(newSequence(garden.Flowers, garden.Grass)),
	)
	require.Equal(t, garden.Flowers, g.CurrentType())

	first, ok := g.HandlePlacement(garden.Origin)
	require.True(t, ok)
	assert.Equal(t, 0, first.Bonus)
	assert.Equal(t, 5, first.Points)
	assert.Equal(t, 5, g.Score())
	assert.Equal(t, garden.Grass, g.CurrentType())

	second, ok := g.HandlePlacement(garden.Coord{X: 1, Y: 0})
	require.True(t, ok)
	assert.Equal(t, 5, second.Bonus)
	assert.Equal(t, 10, second.Points)
	assert.Equal(t, 15, g.Score())

	assert.True(t, second.GameOver)
	assert.True(t, g.IsGameOver())
	assert.Equal(t, 2, g.FinalTileCount())
}

func TestExactMatchIsTen(t *testing.T) {
	g := garden.New(
		garden.WithQueueSize(3),
		garden.WithRand(newSequence(garden.Grass)),
	)

	placeAll(t, g, garden.Origin)
	p, ok := g.HandlePlacement(garden.Coord{X: 0, Y: 1})
	require.True(t, ok)

	assert.Equal(t, 10, p.Bonus)
	assert.Equal(t, 15, p.Points)
}

func TestStrongMatchGrantsBonusTiles(t *testing.T) {
	// The last placement is Grass at (1,0) with Grass above, Flowers below
	// and Grass to the left: 10 + 5 + 10 = 25.
	g := garden.New(
		garden.WithQueueSize(6),
		garden.WithRand(newSequence(
			garden.Grass, garden.Trees, garden.Grass,
			garden.Path, garden.Flowers, garden.Grass,
		)),
	)

	placeAll(t, g,
		garden.Coord{X: 0, Y: 0},
		garden.Coord{X: 0, Y: 1},
		garden.Coord{X: 1, Y: 1},
		garden.Coord{X: 0, Y: -1},
		garden.Coord{X: 1, Y: -1},
	)
	require.Equal(t, garden.Grass, g.CurrentType())
	require.Equal(t, 0, g.TilesRemaining())

	p, ok := g.HandlePlacement(garden.Coord{X: 1, Y: 0})
	require.True(t, ok)

	assert.Equal(t, 25, p.Bonus)
	assert.Equal(t, 2, p.BonusTiles)
	assert.False(t, p.GameOver)
	assert.False(t, g.IsGameOver())
	assert.Equal(t, 1, g.TilesRemaining())
	assert.Equal(t, 2, g.BonusTiles())
	assert.Equal(t, 5+10+10+5+10+30, g.Score())
}

func TestWeakMatchGrantsNothing(t *testing.T) {
	g := garden.New(
		garden.WithQueueSize(4),
		garden.WithRand(newSequence(garden.Grass, garden.Flowers, garden.Trees, garden.Grass)),
	)

	placeAll(t, g, garden.Origin, garden.Coord{X: 1, Y: 0}, garden.Coord{X: 1, Y: 1})
	// Grass at (0,1): right Trees 5, down Grass 10.
	p, ok := g.HandlePlacement(garden.Coord{X: 0, Y: 1})
	require.True(t, ok)

	assert.Equal(t, 15, p.Bonus)
	assert.Equal(t, 0, p.BonusTiles)
	assert.True(t, g.IsGameOver())
}

func TestGameOverIsPermanent(t *testing.T) {
	g := garden.New(garden.WithQueueSize(1), garden.WithSeed(4))

	p, ok := g.HandlePlacement(garden.Origin)
	require.True(t, ok)
	require.True(t, p.GameOver)

	before := g.State()
	for _, c := range before.Frontier {
		_, ok := g.HandlePlacement(c)
		assert.False(t, ok)
	}
	_, ok = g.HandlePlacementAt(garden.Point{X: 1, Y: 0})
	assert.False(t, ok)

	assert.Equal(t, before, g.State())
	assert.Equal(t, 1, g.FinalTileCount())
	assert.Equal(t, garden.GameOver, g.Phase())
}

func TestInvalidPlacementIsNoOp(t *testing.T) {
	g := garden.New(garden.WithSeed(8), garden.WithQueueSize(12))
	placeAll(t, g, garden.Origin, garden.Coord{X: 1, Y: 0})

	before := g.State()

	for _, c := range []garden.Coord{
		garden.Origin,
		{X: 1, Y: 0},
		{X: 3, Y: 3},
		{X: -2, Y: 0},
		{X: 2, Y: 1},
	} {
		_, ok := g.HandlePlacement(c)
		assert.False(t, ok, "placement at %s", c)
	}

	assert.Equal(t, before, g.State())
}

func TestHandlePlacementAtRoundsToCell(t *testing.T) {
	g := garden.New(garden.WithSeed(2), garden.WithSpacing(garden.Spacing{X: 2, Y: 2}))

	_, ok := g.HandlePlacementAt(garden.Point{X: 0.9, Y: -0.6})
	require.True(t, ok)

	p, ok := g.HandlePlacementAt(garden.Point{X: 2.4, Y: 0.3})
	require.True(t, ok)
	assert.Equal(t, garden.Coord{X: 1, Y: 0}, p.Tile.Pos)
}

func TestHandlePlacementAtIgnoresUnmappablePoints(t *testing.T) {
	g := garden.New(garden.WithSeed(2))
	before := g.State()

	for _, p := range []garden.Point{
		{X: math.NaN(), Y: 0},
		{X: 0, Y: math.NaN()},
		{X: math.Inf(1), Y: 0},
		{X: 0, Y: math.Inf(-1)},
		{X: 1 << 32, Y: 0},
		{X: 0, Y: -1e300},
	} {
		_, ok := g.HandlePlacementAt(p)
		assert.False(t, ok, "point %v", p)
	}
	assert.Equal(t, before, g.State())

	_, ok := g.HandlePlacementAt(garden.Point{X: 0.2, Y: -0.3})
	assert.True(t, ok)
}

func TestRestart(t *testing.T) {
	g := garden.New(garden.WithSeed(5), garden.WithQueueSize(4))
	placeAll(t, g, garden.Origin, garden.Coord{X: 0, Y: 1}, garden.Coord{X: 0, Y: 2})

	g.Restart()

	assert.Equal(t, 0, g.Grid().TileCount())
	assert.Equal(t, 0, g.Score())
	assert.Equal(t, []garden.Coord{garden.Origin}, g.Frontier())
	assert.False(t, g.IsGameOver())
	assert.Equal(t, 3, g.TilesRemaining())
	assert.Equal(t, 0, g.Moves())
	assert.Equal(t, 1, g.Round())
}

func TestRestartAfterGameOver(t *testing.T) {
	g := garden.New(garden.WithSeed(5), garden.WithQueueSize(1))
	placeAll(t, g, garden.Origin)
	require.True(t, g.IsGameOver())

	g.Restart()

	assert.Equal(t, garden.Playing, g.Phase())
	assert.Equal(t, 0, g.FinalTileCount())
	assert.Equal(t, 0, g.Grid().TileCount())
	assert.Equal(t, 0, g.Score())

	_, ok := g.HandlePlacement(garden.Origin)
	assert.True(t, ok)
}

func TestRandomGameInvariants(t *testing.T) {
	rng := rand.New(rand.NewPCG(21, 42))
	g := garden.New(garden.WithSeed(21), garden.WithQueueSize(40))

	placements := 0
	for !g.IsGameOver() {
		frontier := g.Frontier()
		_, ok := g.HandlePlacement(frontier[rng.IntN(len(frontier))])
		require.True(t, ok)
		placements++

		state := g.State()
		occupied := make(map[garden.Coord]bool, len(state.Tiles))
		for _, tile := range state.Tiles {
			occupied[tile.Pos] = true
		}
		for _, c := range state.Frontier {
			require.False(t, occupied[c], "frontier cell %s is occupied", c)
		}
		require.GreaterOrEqual(t, state.Score, 5*placements)
	}

	assert.Equal(t, placements, g.FinalTileCount())
	assert.Equal(t, 40+g.BonusTiles(), placements)
}
