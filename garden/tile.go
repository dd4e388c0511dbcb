package garden

const (
	// ExactMatchBonus is awarded per neighbor of the same type.
	ExactMatchBonus = 10
	// CompatibleBonus is awarded per neighbor whose type pairs with ours.
	CompatibleBonus = 5
	// MaxMatchBonus is four exact-match neighbors.
	MaxMatchBonus = 4 * ExactMatchBonus
)

// PlacedTile is a tile that has been accepted onto the grid.
type PlacedTile struct {
	Type TileType `json:"type"`
	Pos  Coord    `json:"pos"`
}

// compatible is symmetric; both orders of every pair are stored.
var compatible = func() [TileTypeCount][TileTypeCount]bool {
	var table [TileTypeCount][TileTypeCount]bool
	pairs := [][2]TileType{
		{Flowers, Grass},
		{Trees, Grass},
		{Water, Grass},
		{Vegetables, Water},
		{Path, Flowers},
	}
	for _, p := range pairs {
		table[p[0]][p[1]] = true
		table[p[1]][p[0]] = true
	}
	return table
}()

// Compatible reports whether two different types award a partial match.
func Compatible(a, b TileType) bool {
	if !a.Valid() || !b.Valid() {
		return false
	}
	return compatible[a][b]
}

// NeighborScore is the bonus a tile of type t earns from one neighbor.
func NeighborScore(t, neighbor TileType) int {
	switch {
	case t == neighbor:
		return ExactMatchBonus
	case Compatible(t, neighbor):
		return CompatibleBonus
	default:
		return 0
	}
}

// MatchBonus sums NeighborScore over the present neighbors. Nil slots are
// empty cells.
func MatchBonus(t TileType, neighbors [4]*PlacedTile) int {
	bonus := 0
	for _, n := range neighbors {
		if n == nil {
			continue
		}
		bonus += NeighborScore(t, n.Type)
	}
	return bonus
}

// MatchBonus scores the tile against its neighbors.
func (p PlacedTile) MatchBonus(neighbors [4]*PlacedTile) int {
	return MatchBonus(p.Type, neighbors)
}
