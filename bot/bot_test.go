package bot_test

import (
	"testing"

	"github.com/plus3/garden/bot"
	"github.com/plus3/garden/frame"
	"github.com/plus3/garden/garden"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type fixed []garden.TileType

func (f fixed) IntN(n int) int { return int(f[0]) % n }

func TestGreedyPrefersExactMatches(t *testing.T) {
	game := garden.New(garden.WithQueueSize(5), garden.WithRand(fixed{garden.Grass}))

	_, ok := game.HandlePlacement(garden.Origin)
	require.True(t, ok)

	pos, ok := bot.Greedy{}.Choose(game)
	require.True(t, ok)
	// Every frontier cell touches the origin once; the lowest wins the tie.
	assert.Equal(t, garden.Coord{X: -1, Y: 0}, pos)

	game.HandlePlacement(pos)
	game.HandlePlacement(garden.Coord{X: -1, Y: 1})

	// (0,1) now touches Grass on two sides.
	pos, ok = bot.Greedy{}.Choose(game)
	require.True(t, ok)
	assert.Equal(t, garden.Coord{X: 0, Y: 1}, pos)
}

func TestPlayFinishesGame(t *testing.T) {
	strategies := []bot.Strategy{
		bot.Greedy{},
		bot.Random{Rand: garden.NewRand(9)},
	}

	for _, s := range strategies {
		t.Run(s.Name(), func(t *testing.T) {
			game := garden.New(garden.WithSeed(17), garden.WithQueueSize(25))
			result := bot.Play(game, s)

			assert.True(t, game.IsGameOver())
			assert.Equal(t, game.FinalTileCount(), result.Tiles)
			assert.Equal(t, 25+result.BonusTiles, result.Moves)
			assert.Equal(t, game.Score(), result.Score)
			assert.GreaterOrEqual(t, result.Score, 5*result.Moves)

			_, ok := s.Choose(game)
			assert.False(t, ok)
		})
	}
}

func TestGreedyBeatsRandomOnAverage(t *testing.T) {
	var greedy, random int
	for seed := uint64(1); seed <= 20; seed++ {
		greedy += bot.Play(garden.New(garden.WithSeed(seed)), bot.Greedy{}).Score
		random += bot.Play(garden.New(garden.WithSeed(seed)), bot.Random{Rand: garden.NewRand(seed)}).Score
	}
	assert.Greater(t, greedy, random)
}

func TestByName(t *testing.T) {
	s, ok := bot.ByName("greedy", nil)
	require.True(t, ok)
	assert.Equal(t, "greedy", s.Name())

	s, ok = bot.ByName("random", garden.NewRand(1))
	require.True(t, ok)
	assert.Equal(t, "random", s.Name())

	_, ok = bot.ByName("oracle", nil)
	assert.False(t, ok)
}

func TestSystemDrivesScheduler(t *testing.T) {
	game := garden.New(garden.WithSeed(5), garden.WithQueueSize(10))
	scheduler := frame.NewScheduler(game)
	sys := &bot.System{Strategy: bot.Greedy{}, Paused: true}
	scheduler.Register(sys)

	scheduler.Once(0.016)
	assert.Equal(t, 0, game.Moves())

	sys.Paused = false
	for i := 0; i < 100 && !game.IsGameOver(); i++ {
		scheduler.Once(0.016)
	}

	require.True(t, game.IsGameOver())
	assert.Equal(t, int64(game.Moves()), scheduler.Stats().Placements)

	want := bot.Play(garden.New(garden.WithSeed(5), garden.WithQueueSize(10)), bot.Greedy{})
	assert.Equal(t, want.Score, game.Score())
}
