package garden

import (
	"errors"
	"fmt"
	"slices"

	"github.com/kamstrup/intmap"
)

// ErrInvalidLayout is returned when a set of placed tiles cannot form a grid.
var ErrInvalidLayout = errors.New("invalid tile layout")

const initialGridCapacity = 64

// GridView is the read-only surface of a Grid handed to presentation code.
type GridView interface {
	CanPlace(pos Coord) bool
	InFrontier(pos Coord) bool
	Tile(pos Coord) (PlacedTile, bool)
	Neighbors(pos Coord) [4]*PlacedTile
	Frontier() []Coord
	FrontierLen() int
	Tiles() []PlacedTile
	TileCount() int
	Spacing() Spacing
	ToWorld(pos Coord) Point
	ToGrid(p Point) Coord
}

// Grid tracks placed tiles and the frontier of empty cells that accept the
// next placement. A coordinate is never in both sets.
type Grid struct {
	spacing  Spacing
	placed   *intmap.Map[uint64, PlacedTile]
	frontier *intmap.Set[uint64]
}

var _ GridView = (*Grid)(nil)

// NewGrid creates an empty grid whose frontier holds only the origin.
// A spacing axis that is not positive and finite falls back to DefaultSpacing.
func NewGrid(spacing Spacing) *Grid {
	if !validSpacing(spacing.X) {
		spacing.X = DefaultSpacing
	}
	if !validSpacing(spacing.Y) {
		spacing.Y = DefaultSpacing
	}

	g := &Grid{
		spacing:  spacing,
		placed:   intmap.New[uint64, PlacedTile](initialGridCapacity),
		frontier: intmap.NewSet[uint64](initialGridCapacity),
	}
	g.frontier.Add(Origin.Key())
	return g
}

// NewGridFromTiles rebuilds a grid from its placed tiles alone. The frontier
// is recomputed, so the result equals the grid the tiles were taken from.
func NewGridFromTiles(spacing Spacing, tiles []PlacedTile) (*Grid, error) {
	g := NewGrid(spacing)
	if len(tiles) == 0 {
		return g, nil
	}

	g.frontier.Clear()
	for _, t := range tiles {
		if !t.Type.Valid() {
			return nil, fmt.Errorf("%w: tile at %s has type %d", ErrInvalidLayout, t.Pos, int(t.Type))
		}
		if !t.Pos.Keyable() {
			return nil, fmt.Errorf("%w: tile at %s is out of range", ErrInvalidLayout, t.Pos)
		}
		if g.placed.Has(t.Pos.Key()) {
			return nil, fmt.Errorf("%w: duplicate tile at %s", ErrInvalidLayout, t.Pos)
		}
		g.placed.Put(t.Pos.Key(), t)
	}

	for _, t := range tiles {
		g.growFrontier(t.Pos)
	}
	return g, nil
}

// Spacing returns the world distance between adjacent cell centers.
func (g *Grid) Spacing() Spacing {
	return g.spacing
}

// CanPlace reports whether pos is an empty frontier cell.
func (g *Grid) CanPlace(pos Coord) bool {
	if !pos.Keyable() {
		return false
	}
	key := pos.Key()
	return g.frontier.Has(key) && !g.placed.Has(key)
}

// InFrontier reports whether pos is in the frontier.
func (g *Grid) InFrontier(pos Coord) bool {
	return pos.Keyable() && g.frontier.Has(pos.Key())
}

// Place puts a tile of type t at pos. It returns false and leaves the grid
// untouched when pos is not placeable.
func (g *Grid) Place(t TileType, pos Coord) (PlacedTile, bool) {
	if !g.CanPlace(pos) {
		return PlacedTile{}, false
	}

	tile := PlacedTile{Type: t, Pos: pos}
	g.placed.Put(pos.Key(), tile)
	g.frontier.Del(pos.Key())
	g.growFrontier(pos)
	return tile, true
}

// growFrontier adds every empty orthogonal neighbor of pos that fits a key.
func (g *Grid) growFrontier(pos Coord) {
	for _, d := range Directions {
		n := pos.Neighbor(d)
		if !n.Keyable() {
			continue
		}
		key := n.Key()
		if !g.placed.Has(key) {
			g.frontier.Add(key)
		}
	}
}

// Tile returns the tile at pos, if any.
func (g *Grid) Tile(pos Coord) (PlacedTile, bool) {
	if !pos.Keyable() {
		return PlacedTile{}, false
	}
	return g.placed.Get(pos.Key())
}

// Neighbors returns the tiles adjacent to pos in the order up, down, left,
// right. Empty slots are nil.
func (g *Grid) Neighbors(pos Coord) [4]*PlacedTile {
	var out [4]*PlacedTile
	for i, d := range Directions {
		if t, ok := g.Tile(pos.Neighbor(d)); ok {
			out[i] = &t
		}
	}
	return out
}

// Frontier returns a sorted copy of the placeable cells.
func (g *Grid) Frontier() []Coord {
	out := make([]Coord, 0, g.frontier.Len())
	for key := range g.frontier.All() {
		out = append(out, CoordFromKey(key))
	}
	slices.SortFunc(out, CompareCoords)
	return out
}

// FrontierLen is the number of placeable cells.
func (g *Grid) FrontierLen() int {
	return g.frontier.Len()
}

// Tiles returns every placed tile sorted by position.
func (g *Grid) Tiles() []PlacedTile {
	out := make([]PlacedTile, 0, g.placed.Len())
	for t := range g.placed.Values() {
		out = append(out, t)
	}
	slices.SortFunc(out, func(a, b PlacedTile) int {
		return CompareCoords(a.Pos, b.Pos)
	})
	return out
}

// TileCount is the number of placed tiles.
func (g *Grid) TileCount() int {
	return g.placed.Len()
}

// ToWorld maps a cell to the world position of its center.
func (g *Grid) ToWorld(pos Coord) Point {
	return g.spacing.toWorld(pos)
}

// ToGrid maps a world position to the nearest cell. Positions that are not
// finite have no cell; callers check Point.Finite first.
func (g *Grid) ToGrid(p Point) Coord {
	return g.spacing.toGrid(p)
}

// Reset removes every tile and restores the seed frontier.
func (g *Grid) Reset() {
	g.placed.Clear()
	g.frontier.Clear()
	g.frontier.Add(Origin.Key())
}
