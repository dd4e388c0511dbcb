package main

import (
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/plus3/garden/garden"
)

func TestCameraRoundTrip(t *testing.T) {
	cam := &Camera{X: 2, Y: -1, Zoom: 1.5, ScreenW: 800, ScreenH: 600}

	sx, sy := cam.WorldToScreen(garden.Point{X: 2, Y: -1})
	assert.InDelta(t, 400, sx, 1e-9)
	assert.InDelta(t, 300, sy, 1e-9)

	// world y grows upward
	_, above := cam.WorldToScreen(garden.Point{X: 2, Y: 0})
	assert.Less(t, above, sy)

	p := cam.ScreenToWorld(123, 456)
	sx, sy = cam.WorldToScreen(p)
	assert.InDelta(t, 123, sx, 1e-9)
	assert.InDelta(t, 456, sy, 1e-9)
}

func TestCameraZoomKeepsAnchor(t *testing.T) {
	cam := &Camera{Zoom: 1, ScreenW: 800, ScreenH: 600}
	anchor := cam.ScreenToWorld(650, 120)

	cam.ZoomAt(0.5, 650, 120)
	assert.Equal(t, 1.5, cam.Zoom)
	got := cam.ScreenToWorld(650, 120)
	assert.InDelta(t, anchor.X, got.X, 1e-9)
	assert.InDelta(t, anchor.Y, got.Y, 1e-9)

	cam.ZoomAt(100, 0, 0)
	assert.Equal(t, maxZoom, cam.Zoom)
	cam.ZoomAt(-100, 0, 0)
	assert.Equal(t, minZoom, cam.Zoom)
}
