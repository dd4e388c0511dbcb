package main

import (
	"fmt"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/ebitenutil"
	"github.com/hajimehoshi/ebiten/v2/vector"

	"github.com/plus3/garden/garden"
)

var (
	backgroundColor = color.RGBA{236, 232, 220, 255}
	frontierColor   = color.RGBA{150, 140, 120, 255}
	hoverColor      = color.RGBA{40, 40, 40, 255}
)

// tileInset is the share of a cell a tile covers, leaving a seam between
// neighbors.
const tileInset = 0.94

// Renderer draws the garden, the frontier and the placement preview.
type Renderer struct {
	Atlas  *TextureAtlas
	Camera *Camera
	Input  *InputSystem
}

func (r *Renderer) cellRect(grid garden.GridView, c garden.Coord) (x, y, w, h float32) {
	spacing := grid.Spacing()
	sx, sy := r.Camera.WorldToScreen(grid.ToWorld(c))
	w = float32(spacing.X * r.Camera.scale())
	h = float32(spacing.Y * r.Camera.scale())
	return float32(sx) - w/2, float32(sy) - h/2, w, h
}

func (r *Renderer) drawTile(screen *ebiten.Image, grid garden.GridView, t garden.TileType, c garden.Coord, alpha float32) {
	img := r.Atlas.Tile(t)
	if img == nil {
		return
	}
	x, y, w, h := r.cellRect(grid, c)
	size := float64(r.Atlas.Size)

	opts := &ebiten.DrawImageOptions{}
	opts.GeoM.Scale(float64(w)*tileInset/size, float64(h)*tileInset/size)
	opts.GeoM.Translate(float64(x+w*(1-tileInset)/2), float64(y+h*(1-tileInset)/2))
	opts.ColorScale.ScaleAlpha(alpha)
	screen.DrawImage(img, opts)
}

func (r *Renderer) Draw(screen *ebiten.Image, game *garden.Game) {
	screen.Fill(backgroundColor)
	grid := game.Grid()

	for _, tile := range grid.Tiles() {
		r.drawTile(screen, grid, tile.Type, tile.Pos, 1)
	}

	for _, c := range grid.Frontier() {
		x, y, w, h := r.cellRect(grid, c)
		vector.StrokeRect(screen, x+2, y+2, w-4, h-4, 1, frontierColor, false)
	}

	if r.Input == nil || !r.Input.HoverValid || game.IsGameOver() {
		return
	}
	hover := r.Input.Hover
	if !grid.InFrontier(hover) {
		return
	}

	r.drawTile(screen, grid, game.CurrentType(), hover, 0.55)
	x, y, w, h := r.cellRect(grid, hover)
	vector.StrokeRect(screen, x, y, w, h, 2, hoverColor, false)

	bonus := garden.MatchBonus(game.CurrentType(), grid.Neighbors(hover))
	ebitenutil.DebugPrintAt(screen, fmt.Sprintf("+%d", garden.BasePoints+bonus), int(x+4), int(y+4))
}
