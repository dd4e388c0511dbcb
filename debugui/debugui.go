// Package debugui renders Dear ImGui windows that inspect and drive a
// running garden. Windows are drawn through the frame scheduler so they see
// the game after the frame's requests were applied.
package debugui

import (
	"github.com/AllenDang/cimgui-go/imgui"

	"github.com/plus3/garden/frame"
)

// Window draws one ImGui window per frame.
type Window interface {
	Render(f *frame.Frame)
}

// WindowFunc adapts a plain function to Window.
type WindowFunc func(f *frame.Frame)

func (fn WindowFunc) Render(f *frame.Frame) { fn(f) }

// InputState tracks whether ImGui is consuming mouse or keyboard input.
// Systems that read the mouse should check it before acting.
type InputState struct {
	WantCaptureMouse    bool
	WantCaptureKeyboard bool
}

// System refreshes Input and defers every window's render function.
type System struct {
	Windows []Window
	Input   *InputState
	Hidden  bool
}

func (s *System) Execute(f *frame.Frame) {
	if s.Input != nil {
		io := imgui.CurrentIO()
		s.Input.WantCaptureMouse = !s.Hidden && io.WantCaptureMouse()
		s.Input.WantCaptureKeyboard = !s.Hidden && io.WantCaptureKeyboard()
	}
	if s.Hidden {
		return
	}

	for _, w := range s.Windows {
		f.Commands.Defer(func() { w.Render(f) })
	}
}
