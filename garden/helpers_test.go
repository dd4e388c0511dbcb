package garden_test

import (
	"testing"

	"github.com/plus3/garden/garden"
	"github.com/stretchr/testify/require"
)

// sequence replays fixed draws, cycling when exhausted.
type sequence struct {
	values []garden.TileType
	next   int
}

func newSequence(values ...garden.TileType) *sequence {
	return &sequence{values: values}
}

func (s *sequence) IntN(n int) int {
	v := int(s.values[s.next%len(s.values)]) % n
	s.next++
	return v
}

func placeAll(t testing.TB, g *garden.Game, cells ...garden.Coord) {
	t.Helper()
	for _, c := range cells {
		_, ok := g.HandlePlacement(c)
		require.True(t, ok, "placement rejected at %s", c)
	}
}
