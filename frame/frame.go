// Package frame drives a garden game from a host loop. A Scheduler runs
// registered systems once per frame and then applies the placement and
// restart requests they queued, one at a time, to the game.
package frame

import "github.com/plus3/garden/garden"

// Frame is handed to every system during one scheduler pass.
type Frame struct {
	DeltaTime float64
	Commands  *Commands
	Game      *garden.Game
}

func newFrame(dt float64, game *garden.Game, commands *Commands) *Frame {
	return &Frame{
		DeltaTime: dt,
		Commands:  commands,
		Game:      game,
	}
}
