package frame

import "github.com/plus3/garden/garden"

// Commands buffers game requests made during a frame. Requests are applied
// in the order they were queued when the buffer is flushed.
type Commands struct {
	requests []request
	defers   []func()
}

// NewCommands returns an empty buffer.
func NewCommands() *Commands {
	return &Commands{}
}

type requestKind int

const (
	placeRequest requestKind = iota
	placeAtRequest
	restartRequest
)

type request struct {
	kind  requestKind
	pos   garden.Coord
	point garden.Point
}

// Place queues a placement of the current tile at a grid cell.
func (c *Commands) Place(pos garden.Coord) {
	c.requests = append(c.requests, request{kind: placeRequest, pos: pos})
}

// PlaceAt queues a placement at the cell nearest to a world position.
func (c *Commands) PlaceAt(p garden.Point) {
	c.requests = append(c.requests, request{kind: placeAtRequest, point: p})
}

// Restart queues a restart of the game.
func (c *Commands) Restart() {
	c.requests = append(c.requests, request{kind: restartRequest})
}

// Defer queues a function to run after every request has been applied.
func (c *Commands) Defer(fn func()) {
	c.defers = append(c.defers, fn)
}

// Len is the number of queued requests, excluding deferred functions.
func (c *Commands) Len() int {
	return len(c.requests)
}

// Flush applies every queued request to the game, runs deferred functions
// and resets the buffer. It returns the placements the game accepted.
// Requests and functions queued by a deferred function are kept for the
// next flush.
func (c *Commands) Flush(game *garden.Game) []garden.Placement {
	var accepted []garden.Placement

	for _, req := range c.requests {
		switch req.kind {
		case placeRequest:
			if p, ok := game.HandlePlacement(req.pos); ok {
				accepted = append(accepted, p)
			}
		case placeAtRequest:
			if p, ok := game.HandlePlacementAt(req.point); ok {
				accepted = append(accepted, p)
			}
		case restartRequest:
			game.Restart()
		}
	}
	c.requests = c.requests[:0]

	defers := c.defers
	c.defers = nil
	for _, fn := range defers {
		fn()
	}

	return accepted
}
