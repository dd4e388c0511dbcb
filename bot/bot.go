// Package bot contains automated garden players used by the simulator and
// by tests that need complete games.
package bot

import (
	"github.com/plus3/garden/garden"
)

// Strategy picks where the current tile goes.
type Strategy interface {
	// Name identifies the strategy in reports.
	Name() string
	// Choose returns a frontier cell, or false when there is nothing to do.
	Choose(game *garden.Game) (garden.Coord, bool)
}

// Greedy maximizes the points of each placement. Ties go to the lowest
// coordinate, so the choice is deterministic.
type Greedy struct{}

func (Greedy) Name() string { return "greedy" }

func (Greedy) Choose(game *garden.Game) (garden.Coord, bool) {
	if game.IsGameOver() {
		return garden.Coord{}, false
	}

	grid := game.Grid()
	current := game.CurrentType()

	best, bestBonus, found := garden.Coord{}, -1, false
	// Frontier is sorted, so the first maximum is the lowest coordinate.
	for _, c := range grid.Frontier() {
		bonus := garden.MatchBonus(current, grid.Neighbors(c))
		if bonus > bestBonus {
			best, bestBonus, found = c, bonus, true
		}
	}
	return best, found
}

// Random picks a frontier cell uniformly.
type Random struct {
	Rand garden.RandomSource
}

func (Random) Name() string { return "random" }

func (r Random) Choose(game *garden.Game) (garden.Coord, bool) {
	if game.IsGameOver() {
		return garden.Coord{}, false
	}
	frontier := game.Frontier()
	if len(frontier) == 0 {
		return garden.Coord{}, false
	}
	return frontier[r.Rand.IntN(len(frontier))], true
}

// Result summarizes a finished round.
type Result struct {
	Score      int
	Tiles      int
	Moves      int
	BonusTiles int
}

// Play drives the game until it ends and returns the outcome. It stops early
// if the strategy gives up or proposes a cell the game rejects.
func Play(game *garden.Game, strategy Strategy) Result {
	for !game.IsGameOver() {
		pos, ok := strategy.Choose(game)
		if !ok {
			break
		}
		if _, ok := game.HandlePlacement(pos); !ok {
			break
		}
	}

	return Result{
		Score:      game.Score(),
		Tiles:      game.Grid().TileCount(),
		Moves:      game.Moves(),
		BonusTiles: game.BonusTiles(),
	}
}

// ByName resolves a strategy from its report name.
func ByName(name string, rng garden.RandomSource) (Strategy, bool) {
	switch name {
	case Greedy{}.Name():
		return Greedy{}, true
	case Random{}.Name():
		return Random{Rand: rng}, true
	default:
		return nil, false
	}
}
