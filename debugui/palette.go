package debugui

import (
	"image/color"

	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/garden/garden"
)

// TileColors is the fill color of each tile type.
var TileColors = [garden.TileTypeCount]color.RGBA{
	garden.Grass:      {124, 185, 92, 255},
	garden.Flowers:    {232, 128, 176, 255},
	garden.Trees:      {46, 110, 58, 255},
	garden.Water:      {84, 154, 222, 255},
	garden.Vegetables: {230, 160, 60, 255},
	garden.Path:       {190, 170, 130, 255},
}

// TileColor returns the fill color of t, or gray for an invalid type.
func TileColor(t garden.TileType) color.RGBA {
	if !t.Valid() {
		return color.RGBA{128, 128, 128, 255}
	}
	return TileColors[t]
}

func tileVec4(t garden.TileType) imgui.Vec4 {
	c := TileColor(t)
	return imgui.NewVec4(float32(c.R)/255, float32(c.G)/255, float32(c.B)/255, 1)
}
