package main

import (
	"image/color"
	"math/rand/v2"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/plus3/garden/debugui"
	"github.com/plus3/garden/garden"
)

// TextureAtlas holds one generated image per tile type.
type TextureAtlas struct {
	Size  int
	tiles [garden.TileTypeCount]*ebiten.Image
}

// NewTextureAtlas paints every tile texture at size x size pixels. The
// decorations are seeded so every run looks the same.
func NewTextureAtlas(size int) *TextureAtlas {
	atlas := &TextureAtlas{Size: size}
	rng := rand.New(rand.NewPCG(7, 11))
	for _, t := range garden.TileTypes {
		img := ebiten.NewImage(size, size)
		img.Fill(debugui.TileColor(t))
		decorate(img, t, float32(size), rng)
		atlas.tiles[t] = img
	}
	return atlas
}

// Tile returns the texture of t.
func (a *TextureAtlas) Tile(t garden.TileType) *ebiten.Image {
	if !t.Valid() {
		return nil
	}
	return a.tiles[t]
}

func shade(c color.RGBA, f float32) color.RGBA {
	scale := func(v uint8) uint8 {
		return uint8(min(float32(v)*f, 255))
	}
	return color.RGBA{scale(c.R), scale(c.G), scale(c.B), c.A}
}

func decorate(img *ebiten.Image, t garden.TileType, size float32, rng *rand.Rand) {
	base := debugui.TileColor(t)
	at := func() (float32, float32) {
		return size*0.1 + rng.Float32()*size*0.8, size*0.1 + rng.Float32()*size*0.8
	}

	switch t {
	case garden.Grass:
		for range 14 {
			x, y := at()
			vector.DrawFilledRect(img, x, y, size*0.03, size*0.1, shade(base, 0.75), false)
		}
	case garden.Flowers:
		petals := []color.RGBA{{255, 240, 120, 255}, {255, 255, 255, 255}, shade(base, 1.2)}
		for i := range 9 {
			x, y := at()
			vector.DrawFilledCircle(img, x, y, size*0.06, petals[i%len(petals)], false)
			vector.DrawFilledCircle(img, x, y, size*0.02, color.RGBA{250, 200, 40, 255}, false)
		}
	case garden.Trees:
		for range 3 {
			x, y := at()
			vector.DrawFilledCircle(img, x, y, size*0.2, shade(base, 1.3), false)
			vector.DrawFilledCircle(img, x, y, size*0.1, shade(base, 0.8), false)
		}
	case garden.Water:
		for i := range 5 {
			y := size * (0.15 + float32(i)*0.17)
			vector.DrawFilledRect(img, size*0.15+rng.Float32()*size*0.2, y, size*0.4, size*0.03, shade(base, 1.25), false)
		}
	case garden.Vegetables:
		for row := range 3 {
			y := size * (0.25 + float32(row)*0.25)
			vector.DrawFilledRect(img, size*0.05, y+size*0.05, size*0.9, size*0.04, shade(base, 0.6), false)
			for col := range 4 {
				x := size * (0.17 + float32(col)*0.22)
				vector.DrawFilledCircle(img, x, y, size*0.05, color.RGBA{90, 160, 60, 255}, false)
			}
		}
	case garden.Path:
		for range 10 {
			x, y := at()
			vector.DrawFilledCircle(img, x, y, size*0.04, shade(base, 0.8), false)
		}
	}

	vector.StrokeRect(img, 0, 0, size, size, 2, shade(base, 0.6), false)
}
