package garden

import (
	"fmt"
	"strings"
)

//go:generate go tool stringer -type=TileType

// TileType is the category of a garden tile. The set is closed.
type TileType int

const (
	Grass TileType = iota
	Flowers
	Trees
	Water
	Vegetables
	Path
)

// TileTypeCount is the number of tile categories.
const TileTypeCount = 6

// TileTypes lists every tile category in declaration order.
var TileTypes = [TileTypeCount]TileType{Grass, Flowers, Trees, Water, Vegetables, Path}

// Valid reports whether t is one of the six categories.
func (t TileType) Valid() bool {
	return t >= Grass && t <= Path
}

// ParseTileType resolves a category by name, ignoring case.
func ParseTileType(name string) (TileType, error) {
	for _, t := range TileTypes {
		if strings.EqualFold(t.String(), name) {
			return t, nil
		}
	}
	return 0, fmt.Errorf("unknown tile type %q", name)
}

func (t TileType) MarshalText() ([]byte, error) {
	if !t.Valid() {
		return nil, fmt.Errorf("invalid tile type %d", int(t))
	}
	return []byte(t.String()), nil
}

func (t *TileType) UnmarshalText(text []byte) error {
	parsed, err := ParseTileType(string(text))
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}
