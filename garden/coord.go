package garden

import (
	"cmp"
	"fmt"
	"math"
)

// Coord is an integer cell on the garden grid. The grid grows in every
// direction from the origin; each axis is limited to the int32 range.
type Coord struct {
	X int `json:"x"`
	Y int `json:"y"`
}

// Origin is the seed coordinate of every fresh grid.
var Origin = Coord{}

// Key packs the coordinate into a single integer: X in the upper 32 bits,
// Y in the lower 32 bits.
func (c Coord) Key() uint64 {
	return uint64(uint32(int32(c.X)))<<32 | uint64(uint32(int32(c.Y)))
}

// Keyable reports whether both axes fit the 32 bits Key packs them into.
// Cells outside that range are never placeable.
func (c Coord) Keyable() bool {
	return c.X >= math.MinInt32 && c.X <= math.MaxInt32 &&
		c.Y >= math.MinInt32 && c.Y <= math.MaxInt32
}

// CoordFromKey reverses Key.
func CoordFromKey(key uint64) Coord {
	return Coord{
		X: int(int32(uint32(key >> 32))),
		Y: int(int32(uint32(key & 0xFFFFFFFF))),
	}
}

// Add returns the coordinate offset by d.
func (c Coord) Add(d Coord) Coord {
	return Coord{X: c.X + d.X, Y: c.Y + d.Y}
}

func (c Coord) String() string {
	return fmt.Sprintf("(%d,%d)", c.X, c.Y)
}

// CompareCoords orders coordinates by X, then Y.
func CompareCoords(a, b Coord) int {
	if n := cmp.Compare(a.X, b.X); n != 0 {
		return n
	}
	return cmp.Compare(a.Y, b.Y)
}

// Direction names one of the four orthogonal neighbor slots.
type Direction int

const (
	Up Direction = iota
	Down
	Left
	Right
)

// Directions lists the neighbor slots in the order Neighbors reports them.
var Directions = [4]Direction{Up, Down, Left, Right}

var directionOffsets = [4]Coord{
	Up:    {X: 0, Y: 1},
	Down:  {X: 0, Y: -1},
	Left:  {X: -1, Y: 0},
	Right: {X: 1, Y: 0},
}

// Offset is the unit step for the direction.
func (d Direction) Offset() Coord {
	return directionOffsets[d]
}

// Neighbor returns the adjacent coordinate in direction d.
func (c Coord) Neighbor(d Direction) Coord {
	return c.Add(d.Offset())
}

// Point is a continuous position in world space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// DefaultSpacing is the world distance between adjacent cell centers.
const DefaultSpacing = 1.0

// Spacing is the per-axis distance between adjacent cell centers.
type Spacing struct {
	X, Y float64
}

func (s Spacing) toWorld(c Coord) Point {
	return Point{X: float64(c.X) * s.X, Y: float64(c.Y) * s.Y}
}

// Finite reports whether neither axis is NaN or infinite.
func (p Point) Finite() bool {
	return !math.IsNaN(p.X) && !math.IsInf(p.X, 0) &&
		!math.IsNaN(p.Y) && !math.IsInf(p.Y, 0)
}

// validSpacing reports whether v can serve as a spacing axis.
func validSpacing(v float64) bool {
	return v > 0 && !math.IsInf(v, 0)
}

// toGrid rounds half away from zero on each axis. p must be finite.
func (s Spacing) toGrid(p Point) Coord {
	return Coord{
		X: int(math.Round(p.X / s.X)),
		Y: int(math.Round(p.Y / s.Y)),
	}
}

// cellOf is toGrid for untrusted positions. It reports false when p is not
// finite or rounds to a cell outside the keyable range.
func (s Spacing) cellOf(p Point) (Coord, bool) {
	if !p.Finite() {
		return Coord{}, false
	}
	x, y := math.Round(p.X/s.X), math.Round(p.Y/s.Y)
	if x < math.MinInt32 || x > math.MaxInt32 || y < math.MinInt32 || y > math.MaxInt32 {
		return Coord{}, false
	}
	return Coord{X: int(x), Y: int(y)}, true
}
