package main

import "github.com/plus3/garden/garden"

const (
	// CellPixels is the on-screen size of one world unit at zoom 1.
	CellPixels = 48
	minZoom    = 0.25
	maxZoom    = 4.0
)

// Camera maps world space (y up) to screen space (y down). X and Y are the
// world position shown at the center of the screen.
type Camera struct {
	X       float64
	Y       float64
	Zoom    float64
	ScreenW int
	ScreenH int
}

func (c *Camera) scale() float64 {
	return c.Zoom * CellPixels
}

// WorldToScreen returns the pixel position of a world point.
func (c *Camera) WorldToScreen(p garden.Point) (float64, float64) {
	sx := (p.X-c.X)*c.scale() + float64(c.ScreenW)/2
	sy := -(p.Y-c.Y)*c.scale() + float64(c.ScreenH)/2
	return sx, sy
}

// ScreenToWorld returns the world point under a pixel.
func (c *Camera) ScreenToWorld(sx, sy float64) garden.Point {
	return garden.Point{
		X: c.X + (sx-float64(c.ScreenW)/2)/c.scale(),
		Y: c.Y - (sy-float64(c.ScreenH)/2)/c.scale(),
	}
}

// ZoomAt changes the zoom by delta while keeping the world point under the
// pixel (sx, sy) fixed.
func (c *Camera) ZoomAt(delta, sx, sy float64) {
	before := c.ScreenToWorld(sx, sy)
	c.Zoom = min(max(c.Zoom+delta, minZoom), maxZoom)
	after := c.ScreenToWorld(sx, sy)
	c.X += before.X - after.X
	c.Y += before.Y - after.Y
}
