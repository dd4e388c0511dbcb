package main

import (
	"errors"
	"fmt"
	"time"

	"github.com/plus3/garden/bot"
	"github.com/plus3/garden/frame"
	"github.com/plus3/garden/garden"
)

// maxIdleFrames is how many frames in a row may pass without a placement
// before a round is abandoned.
const maxIdleFrames = 3

// ErrStalled is returned when a strategy stops placing before the round ends.
var ErrStalled = errors.New("strategy stopped placing")

type Options struct {
	Games     int
	Strategy  string
	Seed      uint64
	QueueSize int
}

// GameResult is one simulated round.
type GameResult struct {
	Seed uint64
	bot.Result
	Frames   int64
	Duration time.Duration
}

// Simulate plays opts.Games rounds, each on its own scheduler, with seeds
// opts.Seed, opts.Seed+1 and so on.
func Simulate(opts Options) ([]GameResult, error) {
	if opts.Games <= 0 {
		return nil, fmt.Errorf("games must be positive, got %d", opts.Games)
	}
	if opts.QueueSize <= 0 {
		return nil, fmt.Errorf("queue size must be positive, got %d", opts.QueueSize)
	}

	results := make([]GameResult, 0, opts.Games)
	for i := 0; i < opts.Games; i++ {
		seed := opts.Seed + uint64(i)
		strategy, ok := bot.ByName(opts.Strategy, garden.NewRand(^seed))
		if !ok {
			return nil, fmt.Errorf("unknown strategy %q", opts.Strategy)
		}

		res, err := simulateGame(seed, opts.QueueSize, strategy)
		if err != nil {
			return nil, err
		}
		results = append(results, res)
	}
	return results, nil
}

// simulateGame runs one round to game over. Rounds of any length are played
// out as long as every few frames place a tile.
func simulateGame(seed uint64, queueSize int, strategy bot.Strategy) (GameResult, error) {
	game := garden.New(garden.WithSeed(seed), garden.WithQueueSize(queueSize))
	scheduler := frame.NewScheduler(game)
	scheduler.Register(&bot.System{Strategy: strategy})

	start := time.Now()
	idle := 0
	for !game.IsGameOver() {
		moves := game.Moves()
		scheduler.Once(0)
		if game.Moves() > moves {
			idle = 0
			continue
		}
		if idle++; idle >= maxIdleFrames {
			return GameResult{}, fmt.Errorf("%w: %s on seed %d after %d moves", ErrStalled, strategy.Name(), seed, moves)
		}
	}

	return GameResult{
		Seed: seed,
		Result: bot.Result{
			Score:      game.Score(),
			Tiles:      game.Grid().TileCount(),
			Moves:      game.Moves(),
			BonusTiles: game.BonusTiles(),
		},
		Frames:   scheduler.Stats().Frames,
		Duration: time.Since(start),
	}, nil
}
