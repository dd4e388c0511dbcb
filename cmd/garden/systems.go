package main

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"

	"github.com/plus3/garden/bot"
	"github.com/plus3/garden/debugui"
	"github.com/plus3/garden/frame"
	"github.com/plus3/garden/garden"
)

// InputSystem turns clicks into placements and handles the game hotkeys.
type InputSystem struct {
	Camera   *Camera
	Imgui    *debugui.InputState
	DebugUI  *debugui.System
	Autoplay *bot.System

	// Hover is the cell under the cursor.
	Hover      garden.Coord
	HoverValid bool
}

func (s *InputSystem) Execute(f *frame.Frame) {
	if !s.Imgui.WantCaptureKeyboard {
		if inpututil.IsKeyJustPressed(ebiten.KeyR) {
			f.Commands.Restart()
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyF1) {
			s.DebugUI.Hidden = !s.DebugUI.Hidden
		}
		if inpututil.IsKeyJustPressed(ebiten.KeySpace) {
			s.Autoplay.Paused = !s.Autoplay.Paused
		}
	}

	if s.Imgui.WantCaptureMouse {
		s.HoverValid = false
		return
	}

	mx, my := ebiten.CursorPosition()
	world := s.Camera.ScreenToWorld(float64(mx), float64(my))
	s.Hover = f.Game.Grid().ToGrid(world)
	s.HoverValid = true

	if inpututil.IsMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		f.Commands.PlaceAt(world)
	}
}

// CameraControlSystem pans with the right mouse button or the arrow keys,
// zooms with the wheel and recenters on Home.
type CameraControlSystem struct {
	Camera *Camera
	Imgui  *debugui.InputState

	dragging   bool
	dragStartX float64
	dragStartY float64
	lastMouseX int
	lastMouseY int
}

const keyPanSpeed = 8.0 // world units per second at zoom 1

func (s *CameraControlSystem) Execute(f *frame.Frame) {
	camera := s.Camera

	if !s.Imgui.WantCaptureKeyboard {
		step := keyPanSpeed * f.DeltaTime / camera.Zoom
		if ebiten.IsKeyPressed(ebiten.KeyArrowLeft) {
			camera.X -= step
		}
		if ebiten.IsKeyPressed(ebiten.KeyArrowRight) {
			camera.X += step
		}
		if ebiten.IsKeyPressed(ebiten.KeyArrowUp) {
			camera.Y += step
		}
		if ebiten.IsKeyPressed(ebiten.KeyArrowDown) {
			camera.Y -= step
		}
		if inpututil.IsKeyJustPressed(ebiten.KeyHome) {
			camera.X, camera.Y, camera.Zoom = 0, 0, 1
		}
	}

	if s.Imgui.WantCaptureMouse {
		s.dragging = false
		return
	}

	mx, my := ebiten.CursorPosition()
	pressed := ebiten.IsMouseButtonPressed(ebiten.MouseButtonRight)

	if pressed && !s.dragging {
		s.dragging = true
		s.dragStartX = camera.X
		s.dragStartY = camera.Y
		s.lastMouseX = mx
		s.lastMouseY = my
	}
	if !pressed {
		s.dragging = false
	}

	if s.dragging {
		dx := float64(mx - s.lastMouseX)
		dy := float64(my - s.lastMouseY)
		camera.X = s.dragStartX - dx/camera.scale()
		camera.Y = s.dragStartY + dy/camera.scale()
	}

	if _, dy := ebiten.Wheel(); dy != 0 {
		camera.ZoomAt(dy*0.2, float64(mx), float64(my))
	}
}
