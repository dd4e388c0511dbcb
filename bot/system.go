package bot

import "github.com/plus3/garden/frame"

// System queues one placement per frame chosen by Strategy. It does nothing
// while Paused or once the strategy gives up.
type System struct {
	Strategy Strategy
	Paused   bool
}

func (s *System) Execute(f *frame.Frame) {
	if s.Paused || s.Strategy == nil {
		return
	}
	if pos, ok := s.Strategy.Choose(f.Game); ok {
		f.Commands.Place(pos)
	}
}
