package debugui

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/plus3/garden/garden"
)

type grassOnly struct{}

func (grassOnly) IntN(int) int { return int(garden.Grass) }

func TestFrontierRowsBestFirst(t *testing.T) {
	game := garden.New(garden.WithRand(grassOnly{}), garden.WithQueueSize(10))
	for _, c := range []garden.Coord{garden.Origin, {X: 1, Y: 0}, {X: 1, Y: 1}} {
		_, ok := game.HandlePlacement(c)
		assert.True(t, ok)
	}

	gi := &GameInspector{}
	rows := gi.rows(game)
	assert.Len(t, rows, game.Grid().FrontierLen())
	assert.Equal(t, game.Frontier()[0], rows[0].pos)

	gi.BestFirst = true
	rows = gi.rows(game)
	// (0,1) touches Grass at the origin and at (1,1)
	assert.Equal(t, garden.Coord{X: 0, Y: 1}, rows[0].pos)
	assert.Equal(t, 20, rows[0].bonus)
	for i := 1; i < len(rows); i++ {
		assert.GreaterOrEqual(t, rows[i-1].bonus, rows[i].bonus)
	}
}

func TestFrontierRowsBestFirstKeepsFrontierOrderOnTies(t *testing.T) {
	const n = 2000
	game := garden.New(garden.WithRand(grassOnly{}), garden.WithQueueSize(n+1))
	for x := 0; x < n; x++ {
		_, ok := game.HandlePlacement(garden.Coord{X: x, Y: 0})
		assert.True(t, ok)
	}

	gi := &GameInspector{BestFirst: true}
	rows := gi.rows(game)
	frontier := game.Frontier()
	assert.Len(t, rows, 2*n+2)
	for i, row := range rows {
		// every frontier cell of a straight row touches exactly one tile
		assert.Equal(t, garden.ExactMatchBonus, row.bonus)
		assert.Equal(t, frontier[i], row.pos)
	}
}
